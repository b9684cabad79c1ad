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

package mir

import (
	"github.com/mslang/mslsp/lang/ident"
	"github.com/mslang/mslsp/lang/types"
)

// ProcKind distinguishes a top-level declaration's calling convention.
type ProcKind uint8

const (
	// ProcFunc is a pure function: no side effects, callable from pure
	// expressions.
	ProcFunc ProcKind = iota
	// ProcProc is an ordinary procedure.
	ProcProc
	// ProcIntrinsic is implemented by the elaborator itself, with no body
	// supplied by the source file.
	ProcIntrinsic
)

// Proc is a procedure (function, proc, or intrinsic), a top level item
// similar to a function declaration (spec.md §3.6).
type Proc struct {
	Kind   ProcKind
	Name   ident.Spanned[ident.AtomId]
	TyArgs uint32
	Args   []types.Arg
	Rets   []types.Arg
	Body   *Cfg
}
