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

// Package ident holds the opaque identifier types shared by the MIR and the
// elaboration server: variable, type-variable, atom, term, block and
// context-buffer identifiers.
package ident

import "fmt"

// VarId is a local variable identifier, scoped to a single procedure or
// top-level declaration. It is compared structurally.
type VarId uint32

func (v VarId) String() string { return fmt.Sprintf("_%d", uint32(v)) }

// TyVarId names a type variable, resolved via an external environment.
type TyVarId uint32

// AtomId names an interned atom (a user constant, function, or type-former
// name), resolved via an external environment.
type AtomId uint32

// TermId names a term in the embedded proof assistant, resolved via an
// external environment.
type TermId uint32

// BlockId indexes a basic block within a single Cfg. Block 0 is the entry
// block.
type BlockId uint32

// Entry is the block ID of a Cfg's entry block.
const Entry BlockId = 0

func (b BlockId) String() string { return fmt.Sprintf("bb%d", uint32(b)) }

// CtxBufId indexes a context buffer within a Contexts vector. Buffer 0 is
// the root buffer, and is its own parent.
type CtxBufId uint32

// Root is the context-buffer ID of the root buffer.
const Root CtxBufId = 0

// CtxId is a context handle: "all ancestors of Buf up to root, plus the
// first N variables of Buf".
type CtxId struct {
	Buf CtxBufId
	N   uint32
}

// RootCtx is the empty context.
var RootCtx = CtxId{Buf: Root, N: 0}

func (c CtxId) String() string { return fmt.Sprintf("ctx(%d,%d)", uint32(c.Buf), c.N) }

// Span is a half-open source-text range, Line/Column zero-based as in
// types.Diagnostic.
type Span struct {
	Line, Column       int
	EndLine, EndColumn int
}

// Spanned pairs a value with the span it was parsed from (spec.md §3.5
// "name: Spanned<AtomId>").
type Spanned[T any] struct {
	Span  Span
	Value T
}
