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

// ExElimKind distinguishes the forms of existential-elimination pattern
// (spec.md §3.6). Own is the only current form: "Own(x, T, p, &sn x)"
// destructures an (own T) into a value and a pointer to it.
type ExElimKind uint8

const (
	ExElimOwn ExElimKind = iota
)

// ExElimBinding is one (variable, type) pair bound by an ExElimKind.
type ExElimBinding struct {
	Var ident.VarId
	Ty  *types.Ty
}

type ExElim struct {
	Kind     ExElimKind
	Bindings [2]ExElimBinding
}

func NewExElimOwn(val, ptr ExElimBinding) ExElim {
	return ExElim{Kind: ExElimOwn, Bindings: [2]ExElimBinding{val, ptr}}
}

// StmtKind distinguishes the two statement forms.
type StmtKind uint8

const (
	// StmtLet declares a variable with a value: "let x: T = rv;".
	StmtLet StmtKind = iota
	// StmtExElim destructures an existential: "let (x, h): (exists x: T, P x) = rv;".
	StmtExElim
)

// Statement is an operation in a basic block that cannot fail and always
// steps to the following statement (spec.md §3.6).
type Statement struct {
	Kind   StmtKind
	Var    ident.VarId  // StmtLet
	Ety    types.ExprTy // StmtLet
	ExElim ExElim       // StmtExElim
	Ty     *types.Ty    // StmtExElim
	RV     RValue
}

func NewLet(v ident.VarId, ety types.ExprTy, rv RValue) Statement {
	return Statement{Kind: StmtLet, Var: v, Ety: ety, RV: rv}
}

func NewExElimStmt(ek ExElim, ty *types.Ty, rv RValue) Statement {
	return Statement{Kind: StmtExElim, ExElim: ek, Ty: ty, RV: rv}
}
