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

// Package elaborate declares the narrow shim the server requires from the
// compiler (spec.md §2 item 9, §6 "Parser contract" / "Elaborator
// contract"): parse(text, old_ast) -> (idx, errs, ast) and
// elaborate(ast, old_env_with_reuse_idx) -> (env, deps). HIR construction,
// typechecking and MIR lowering live behind these two interfaces and are
// out of scope (spec.md §1).
package elaborate

import (
	lsp "github.com/sourcegraph/go-lsp"

	"github.com/mslang/mslsp/lang/types"
)

// Text is the minimal text-buffer contract Parse needs: line-indexed
// source content. It is satisfied by *vfs.LinedString without this package
// importing internal/vfs, which itself holds *AST/*Env fields and would
// otherwise form an import cycle.
type Text interface {
	String() string
}

// StmtKind distinguishes the two statement shapes the default grammar
// recognizes (spec.md §6.2, SPEC_FULL §6.2): a dependency declaration and
// everything else.
type StmtKind uint8

const (
	// Use is a `use "path";` dependency declaration.
	Use StmtKind = iota
	// Decl is any other top-level statement, contributing one Env entry.
	Decl
)

// Stmt is one top-level statement of an AST, one per source line in the
// default grammar (SPEC_FULL §6.2).
type Stmt struct {
	Kind StmtKind
	Name string // Use: the dependency path; Decl: the declared name.
	Line int
}

// AST is a parsed file: the source text plus its flat statement list
// (spec.md §6 "ast.stmts.len() >= reuse_idx").
type AST struct {
	Source string
	Stmts  []Stmt
}

// OldAST pairs a prior AST with the earliest position touched by edits
// since it was produced, the input a reparse needs to decide how big a
// prefix of statements it may reuse (spec.md §4.6).
type OldAST struct {
	Start lsp.Position
	AST   *AST
}

// EnvEntry is one elaborated top-level declaration.
type EnvEntry struct {
	Name string
	Line int
}

// Env is the elaborated environment produced from an AST (spec.md §3.6
// "Environment").
type Env struct {
	Entries []EnvEntry
}

// OldEnv pairs a prior environment with the statement-prefix length that
// may be reused verbatim (spec.md §6 "Implementations may reuse prior
// environment entries for indices < reuse_idx").
type OldEnv struct {
	ReuseIdx int
	Env      *Env
}

// Parser is the compiler's parse half of the elaboration shim.
type Parser interface {
	// Parse re-lexes text, reusing as much of old's AST as safely possible,
	// and returns the count of leading statements that survive unchanged,
	// any parse diagnostics, and the fresh AST.
	Parse(text Text, old *OldAST) (reuseIdx int, errs []*types.Diagnostic, ast *AST)
}

// Elaborator is the compiler's elaborate half of the elaboration shim.
type Elaborator interface {
	// Elaborate walks ast into an Env and its file dependency list, reusing
	// entries from old.Env at indices below old.ReuseIdx when old is set.
	Elaborate(ast *AST, old *OldEnv) (env *Env, deps []string)
}
