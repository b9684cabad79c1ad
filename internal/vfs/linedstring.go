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

// Package vfs holds the server's virtual file system: line-indexed text
// buffers, per-file parse/elaborate caches, and the dependency graph that
// drives reparsing when a file's dependencies change.
package vfs

import (
	"strings"

	lsp "github.com/sourcegraph/go-lsp"
)

// LinedString is an immutable line-indexed text buffer. Applying an edit
// never mutates the receiver: it returns a new LinedString, so a previous
// version can still be read by a goroutine holding it (spec.md §4.4).
type LinedString struct {
	text  string
	lines []int // byte offset of the start of each line; lines[0] == 0
}

// NewLinedString builds a LinedString from plain text.
func NewLinedString(text string) *LinedString {
	ls := &LinedString{text: text, lines: []int{0}}
	for i, c := range text {
		if c == '\n' {
			ls.lines = append(ls.lines, i+1)
		}
	}
	return ls
}

func (ls *LinedString) String() string { return ls.text }

// Offset converts a zero-based LSP Position into a byte offset into the
// text, clamping out-of-range lines/columns to the nearest valid offset.
func (ls *LinedString) Offset(pos lsp.Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(ls.lines) {
		return len(ls.text)
	}
	start := ls.lines[pos.Line]
	end := len(ls.text)
	if pos.Line+1 < len(ls.lines) {
		end = ls.lines[pos.Line+1]
	}
	off := start + pos.Character
	if off > end {
		off = end
	}
	return off
}

// Position converts a byte offset into a zero-based LSP Position.
func (ls *LinedString) Position(offset int) lsp.Position {
	// Binary search for the last line start <= offset.
	lo, hi := 0, len(ls.lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if ls.lines[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lsp.Position{Line: lo, Character: offset - ls.lines[lo]}
}

// ApplyChanges applies a sequence of LSP content-change events (either
// full-document replacements or incremental range edits) in order,
// returning the earliest-starting Position touched by any change (used to
// decide how much of a reused AST can be kept) and the resulting text.
func (ls *LinedString) ApplyChanges(changes []lsp.TextDocumentContentChangeEvent) (lsp.Position, *LinedString) {
	cur := ls
	start := lsp.Position{Line: 1<<31 - 1, Character: 1<<31 - 1}
	for _, ch := range changes {
		if ch.Range == nil {
			cur = NewLinedString(ch.Text)
			start = lsp.Position{Line: 0, Character: 0}
			continue
		}
		lo := cur.Offset(ch.Range.Start)
		hi := cur.Offset(ch.Range.End)
		var b strings.Builder
		b.WriteString(cur.text[:lo])
		b.WriteString(ch.Text)
		b.WriteString(cur.text[hi:])
		cur = NewLinedString(b.String())
		if before(ch.Range.Start, start) {
			start = ch.Range.Start
		}
	}
	return start, cur
}

func before(a, b lsp.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Character < b.Character
}
