// Copyright 2017 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tinylang is the default, deliberately shallow concrete
// implementation of internal/elaborate's Parser and Elaborator (SPEC_FULL
// §6.2): a one-statement-per-line grammar of `use "path";` dependency
// declarations and `stmt <name>;` top-level declarations. It exists so
// internal/worker and internal/lspserver have a real tenant to drive, not
// to implement HIR/MIR construction, which stays out of scope (spec.md
// §1).
//
// Grounded on the teacher's lang/parse.go cursor-over-tokens parser
// structure and lang/check.go's phase loop over top-level declarations,
// restyled for this toy grammar.
package tinylang

import (
	"strings"

	"github.com/mslang/mslsp/internal/elaborate"
	"github.com/mslang/mslsp/lang/types"
)

// Parser is the default elaborate.Parser.
type Parser struct{}

// Elaborator is the default elaborate.Elaborator.
type Elaborator struct{}

// parser walks the lines of a single source file, matching the teacher's
// habit of a small cursor struct rather than free functions operating on a
// slice index.
type parser struct {
	lines []string
	errs  []*types.Diagnostic
}

// Parse implements elaborate.Parser.
func (Parser) Parse(text elaborate.Text, old *elaborate.OldAST) (int, []*types.Diagnostic, *elaborate.AST) {
	src := text.String()
	p := &parser{lines: splitLines(src)}
	stmts := make([]elaborate.Stmt, 0, len(p.lines))
	for i, line := range p.lines {
		if stmt, ok := p.parseLine(line, i); ok {
			stmts = append(stmts, stmt)
		}
	}
	ast := &elaborate.AST{Source: src, Stmts: stmts}
	return reusePrefix(old, stmts), p.errs, ast
}

// parseLine recognizes one line of the toy grammar, returning ok == false
// for blank lines and comments (which are not statements at all, so they
// neither produce a Stmt nor an error).
func (p *parser) parseLine(line string, n int) (elaborate.Stmt, bool) {
	t := strings.TrimSpace(line)
	if t == "" || strings.HasPrefix(t, "//") {
		return elaborate.Stmt{}, false
	}
	t = strings.TrimSuffix(t, ";")
	switch {
	case strings.HasPrefix(t, "use "):
		path := strings.TrimSpace(strings.TrimPrefix(t, "use "))
		path = strings.Trim(path, `"`)
		if path == "" {
			p.errs = append(p.errs, types.Errorf(n, 0, "empty use path"))
			return elaborate.Stmt{}, false
		}
		return elaborate.Stmt{Kind: elaborate.Use, Name: path, Line: n}, true
	case strings.HasPrefix(t, "stmt "):
		name := strings.TrimSpace(strings.TrimPrefix(t, "stmt "))
		if name == "" {
			p.errs = append(p.errs, types.Errorf(n, 0, "empty stmt name"))
			return elaborate.Stmt{}, false
		}
		return elaborate.Stmt{Kind: elaborate.Decl, Name: name, Line: n}, true
	default:
		p.errs = append(p.errs, types.Errorf(n, 0, "unrecognized statement: %q", t))
		return elaborate.Stmt{}, false
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// reusePrefix computes the longest run of leading statements shared
// unchanged between old and new, capped at the earliest line touched by an
// edit (spec.md §6 "reuse_idx is the count of statements from the prior
// AST that survive unchanged").
func reusePrefix(old *elaborate.OldAST, stmts []elaborate.Stmt) int {
	if old == nil || old.AST == nil {
		return 0
	}
	limit := len(old.AST.Stmts)
	if n := len(stmts); n < limit {
		limit = n
	}
	i := 0
	for i < limit && old.AST.Stmts[i].Line < old.Start.Line && old.AST.Stmts[i] == stmts[i] {
		i++
	}
	return i
}

// Elaborate implements elaborate.Elaborator.
func (Elaborator) Elaborate(ast *elaborate.AST, old *elaborate.OldEnv) (*elaborate.Env, []string) {
	var deps []string
	entries := make([]elaborate.EnvEntry, 0, len(ast.Stmts))
	declIdx := 0
	for si, stmt := range ast.Stmts {
		if stmt.Kind == elaborate.Use {
			deps = append(deps, stmt.Name)
			continue
		}
		if old != nil && old.Env != nil && si < old.ReuseIdx && declIdx < len(old.Env.Entries) {
			entries = append(entries, old.Env.Entries[declIdx])
		} else {
			entries = append(entries, elaborate.EnvEntry{Name: stmt.Name, Line: stmt.Line})
		}
		declIdx++
	}
	return &elaborate.Env{Entries: entries}, deps
}
