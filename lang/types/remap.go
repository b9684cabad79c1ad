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

import "github.com/mslang/mslsp/lang/ident"

// Remapper translates the AtomId and TermId namespace of a Ty/Expr tree built
// against one file's interning table into the namespace of another (spec.md
// §9 "Remapping across environments"). Ty/Expr values built against one
// ident.Map need their atoms and terms rewritten before they are safe to
// compare or reuse under another.
type Remapper interface {
	RemapAtom(ident.AtomId) ident.AtomId
	RemapTerm(ident.TermId) ident.TermId
}

// RemapTy rewrites every AtomId reachable from ty under r, returning a new
// tree (ty itself, and any substructure untouched by the remap, may be
// shared with the result: remapping is a pure function of identity, so
// sharing is safe without a rewrite).
func RemapTy(r Remapper, ty *Ty) *Ty {
	if ty == nil {
		return nil
	}
	switch ty.Kind {
	case TyArray:
		return &Ty{Kind: TyArray, Elem: RemapTy(r, ty.Elem), Len: RemapExpr(r, ty.Len)}
	case TyOwn, TyGhost, TyUninit, TyNot, TyMoved:
		return &Ty{Kind: ty.Kind, Elem: RemapTy(r, ty.Elem)}
	case TyRef:
		return &Ty{Kind: TyRef, Lifetime: ty.Lifetime, Elem: RemapTy(r, ty.Elem)}
	case TyRefSn:
		return &Ty{Kind: TyRefSn, Ex: RemapExpr(r, ty.Ex)}
	case TyPure:
		return &Ty{Kind: TyPure, Ex: RemapExpr(r, ty.Ex)}
	case TySn, TyHasTy:
		return &Ty{Kind: ty.Kind, Ex: RemapExpr(r, ty.Ex), Elem: RemapTy(r, ty.Elem)}
	case TyStruct:
		args := make([]Arg, len(ty.Args))
		for i, a := range ty.Args {
			args[i] = Arg{Attr: a.Attr, Var: a.Var, Ty: RemapTy(r, a.Ty)}
		}
		return &Ty{Kind: TyStruct, Args: args}
	case TyAll:
		return &Ty{Kind: TyAll, Var: ty.Var, Left: RemapTy(r, ty.Left), Right: RemapTy(r, ty.Right)}
	case TyImp, TyWand:
		return &Ty{Kind: ty.Kind, Left: RemapTy(r, ty.Left), Right: RemapTy(r, ty.Right)}
	case TyAnd, TyOr:
		return &Ty{Kind: ty.Kind, Tys: remapTySlice(r, ty.Tys)}
	case TyIf:
		return &Ty{Kind: TyIf, Ex: RemapExpr(r, ty.Ex), Left: RemapTy(r, ty.Left), Right: RemapTy(r, ty.Right)}
	case TyUser:
		exprs := make([]*Expr, len(ty.Exprs))
		for i, e := range ty.Exprs {
			exprs[i] = RemapExpr(r, e)
		}
		return &Ty{Kind: TyUser, Atom: r.RemapAtom(ty.Atom), Tys: remapTySlice(r, ty.Tys), Exprs: exprs}
	case TyHeap:
		return &Ty{Kind: TyHeap, Ex: RemapExpr(r, ty.Ex), Ex2: RemapExpr(r, ty.Ex2), Elem: RemapTy(r, ty.Elem)}
	default: // Unit, True, False, Bool, Var, Int, Input, Output: no atoms.
		return ty
	}
}

func remapTySlice(r Remapper, xs []*Ty) []*Ty {
	out := make([]*Ty, len(xs))
	for i, x := range xs {
		out[i] = RemapTy(r, x)
	}
	return out
}

// RemapExpr rewrites every AtomId/TermId reachable from e under r.
func RemapExpr(r Remapper, e *Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case EConst:
		return &Expr{Kind: EConst, Atom: r.RemapAtom(e.Atom)}
	case EUnop:
		return &Expr{Kind: EUnop, Unop: e.Unop, A: RemapExpr(r, e.A)}
	case EBinop:
		return &Expr{Kind: EBinop, Binop: e.Binop, A: RemapExpr(r, e.A), B: RemapExpr(r, e.B)}
	case EIndex:
		return &Expr{Kind: EIndex, A: RemapExpr(r, e.A), B: RemapExpr(r, e.B)}
	case ESlice:
		return &Expr{Kind: ESlice, A: RemapExpr(r, e.A), B: RemapExpr(r, e.B), C: RemapExpr(r, e.C)}
	case EProj:
		return &Expr{Kind: EProj, A: RemapExpr(r, e.A), Proj: e.Proj}
	case EUpdateIndex:
		return &Expr{Kind: EUpdateIndex, A: RemapExpr(r, e.A), B: RemapExpr(r, e.B), C: RemapExpr(r, e.C)}
	case EUpdateSlice:
		return &Expr{Kind: EUpdateSlice, A: RemapExpr(r, e.A), B: RemapExpr(r, e.B), C: RemapExpr(r, e.C), D: RemapExpr(r, e.D)}
	case EUpdateProj:
		return &Expr{Kind: EUpdateProj, A: RemapExpr(r, e.A), Proj: e.Proj, B: RemapExpr(r, e.B)}
	case EList, EArray:
		return &Expr{Kind: e.Kind, List: remapExprSlice(r, e.List)}
	case ESizeof:
		return &Expr{Kind: ESizeof, Ty: RemapTy(r, e.Ty)}
	case ERef:
		return &Expr{Kind: ERef, A: RemapExpr(r, e.A)}
	case EMm0:
		return &Expr{Kind: EMm0, Mm0: remapMm0(r, e.Mm0)}
	case ECall:
		return &Expr{Kind: ECall, Atom: r.RemapAtom(e.Atom), Tys: remapTySlice(r, e.Tys), List: remapExprSlice(r, e.List)}
	case EIf:
		return &Expr{Kind: EIf, A: RemapExpr(r, e.A), B: RemapExpr(r, e.B), C: RemapExpr(r, e.C)}
	default: // Unit, Var, Bool, Int: no atoms.
		return e
	}
}

func remapExprSlice(r Remapper, xs []*Expr) []*Expr {
	out := make([]*Expr, len(xs))
	for i, x := range xs {
		out[i] = RemapExpr(r, x)
	}
	return out
}

func remapMm0(r Remapper, m *Mm0Expr) *Mm0Expr {
	if m == nil {
		return nil
	}
	return &Mm0Expr{Subst: remapExprSlice(r, m.Subst), Expr: remapMm0Node(r, m.Expr)}
}

func remapMm0Node(r Remapper, n *Mm0ExprNode) *Mm0ExprNode {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case Mm0App:
		args := make([]*Mm0ExprNode, len(n.Args))
		for i, a := range n.Args {
			args[i] = remapMm0Node(r, a)
		}
		return &Mm0ExprNode{Kind: Mm0App, Term: r.RemapTerm(n.Term), Args: args}
	default:
		return n
	}
}
