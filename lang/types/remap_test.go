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

package types

import (
	"testing"

	"github.com/mslang/mslsp/lang/ident"
)

// offsetRemapper shifts every AtomId/TermId by a fixed, nonzero amount: a
// non-identity stand-in for rewriting a Ty/Expr built against one
// ident.Map into the namespace of another (spec.md §9 "Remapping across environments": "do not
// treat remap as identity").
type offsetRemapper struct {
	atomOff ident.AtomId
	termOff ident.TermId
}

func (r offsetRemapper) RemapAtom(a ident.AtomId) ident.AtomId { return a + r.atomOff }
func (r offsetRemapper) RemapTerm(t ident.TermId) ident.TermId { return t + r.termOff }

// TestRemapTyUser checks that RemapTy rewrites a TyUser's atom and its
// nested expression/type arguments, leaving the tree shape intact.
func TestRemapTyUser(tt *testing.T) {
	r := offsetRemapper{atomOff: 100, termOff: 1000}

	inner := NewECall(ident.AtomId(1), nil, nil)
	ty := NewUser(ident.AtomId(5), []*Ty{NewIntTy(IntTy{Signed: true, Sz: S32})}, []*Expr{inner})

	got := RemapTy(r, ty)

	if got.Kind != TyUser || got.Atom != 105 {
		tt.Fatalf("RemapTy(User) atom = %+v, want Atom=105", got)
	}
	if len(got.Exprs) != 1 || got.Exprs[0].Kind != ECall || got.Exprs[0].Atom != 101 {
		tt.Fatalf("RemapTy(User) did not remap nested ECall atom: %+v", got.Exprs)
	}
	if len(got.Tys) != 1 || !got.Tys[0].Equal(NewIntTy(IntTy{Signed: true, Sz: S32})) {
		tt.Fatalf("RemapTy(User) dropped or altered a non-atom type argument: %+v", got.Tys)
	}
	// The source tree is untouched: remap never mutates in place.
	if ty.Atom != 5 || ty.Exprs[0].Atom != 1 {
		tt.Fatalf("RemapTy mutated its input: %+v", ty)
	}
}

// TestRemapExprCall checks that RemapExpr rewrites an ECall's function atom
// and recurses into its type and value arguments.
func TestRemapExprCall(tt *testing.T) {
	r := offsetRemapper{atomOff: 7}

	arg := NewEConst(ident.AtomId(2))
	call := NewECall(ident.AtomId(10), []*Ty{NewUser(ident.AtomId(3), nil, nil)}, []*Expr{arg})

	got := RemapExpr(r, call)

	if got.Kind != ECall || got.Atom != 17 {
		tt.Fatalf("RemapExpr(ECall) atom = %+v, want Atom=17", got)
	}
	if len(got.List) != 1 || got.List[0].Atom != 9 {
		tt.Fatalf("RemapExpr(ECall) did not remap its EConst argument: %+v", got.List)
	}
	if len(got.Tys) != 1 || got.Tys[0].Atom != 10 {
		tt.Fatalf("RemapExpr(ECall) did not remap its type argument: %+v", got.Tys)
	}
}

// TestRemapMm0App checks that remapping an Mm0 expression rewrites the
// TermId of an Mm0App node and recurses through its substitution and
// argument list, per original_source's Remap impl for Mm0Expr/Mm0ExprNode.
func TestRemapMm0App(tt *testing.T) {
	r := offsetRemapper{termOff: 50}

	node := &Mm0ExprNode{
		Kind: Mm0App,
		Term: ident.TermId(1),
		Args: []*Mm0ExprNode{
			{Kind: Mm0Var, Idx: 0},
			{Kind: Mm0Const, Lisp: "(foo)"},
		},
	}
	e := &Expr{Kind: EMm0, Mm0: &Mm0Expr{Subst: []*Expr{NewEConst(ident.AtomId(4))}, Expr: node}}

	got := RemapExpr(r, e)

	if got.Kind != EMm0 || got.Mm0.Expr.Kind != Mm0App || got.Mm0.Expr.Term != 51 {
		tt.Fatalf("RemapExpr(Mm0App) term = %+v, want Term=51", got.Mm0.Expr)
	}
	if len(got.Mm0.Expr.Args) != 2 || !got.Mm0.Expr.Args[0].Equal(&Mm0ExprNode{Kind: Mm0Var, Idx: 0}) {
		tt.Fatalf("RemapExpr(Mm0App) altered a non-term arg: %+v", got.Mm0.Expr.Args)
	}
	if len(got.Mm0.Subst) != 1 || got.Mm0.Subst[0].Atom != 4 {
		tt.Fatalf("RemapExpr(Mm0App) changed a Subst atom under a term-only remapper: %+v", got.Mm0.Subst)
	}
	// The input node is not mutated.
	if node.Term != 1 {
		tt.Fatalf("RemapExpr mutated its input node: %+v", node)
	}
}
