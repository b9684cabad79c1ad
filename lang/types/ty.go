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

// TyKind is the tag of a Ty node (spec.md §3.2).
type TyKind uint8

const (
	TyUnit TyKind = iota
	TyTrue
	TyFalse
	TyBool
	TyVar
	TyInt
	TyArray
	TyOwn
	TyRef
	TyRefSn
	TySn
	TyStruct
	TyAll
	TyImp
	TyWand
	TyNot
	TyAnd
	TyOr
	TyIf
	TyGhost
	TyUninit
	TyPure
	TyUser
	TyHeap
	TyHasTy
	TyInput
	TyOutput
	TyMoved
)

// Lifetime names a borrow's lifetime, resolved via an external environment
// (spec.md §3.2 "Ref(Lifetime, Ty)").
type Lifetime struct {
	Extern bool // the 'extern lifetime, outliving the whole procedure
	Var    ident.VarId
}

// Ty is a node of the shared, immutable type tree (spec.md §3.2). Like the
// teacher's ast.Node, a single struct carries generic slots (Elem, Left,
// Right, Tys, Exprs, ...) that are reused across variants rather than one
// Go type per TyKind; which fields are meaningful is determined by Kind.
// A *Ty must never be mutated after construction: it may be shared by many
// parents, exactly as the original's Rc<TyKind> is.
type Ty struct {
	Kind TyKind

	TyVar    ident.TyVarId // Var
	IntTy    IntTy         // Int
	Elem     *Ty           // Array/Own/Sn/Ghost/Uninit/Moved/Not/Ref/HasTy: the wrapped type
	Len      *Expr         // Array: the length expression
	Lifetime Lifetime      // Ref
	Ex       *Expr         // RefSn/Sn/Pure/HasTy/Heap(first)/If(cond): an expression operand
	Ex2      *Expr         // Heap: the second expression (v)
	Args     []Arg         // Struct
	Var      ident.VarId   // All: the bound variable
	Left     *Ty           // All(pat)/Imp/Wand/If(then)
	Right    *Ty           // All(body)/Imp/Wand/If(else)
	Tys      []*Ty         // And/Or/User(type args)
	Exprs    []*Expr       // User(expr args)
	Atom     ident.AtomId  // User
}

func NewUnit() *Ty  { return &Ty{Kind: TyUnit} }
func NewTrue() *Ty  { return &Ty{Kind: TyTrue} }
func NewFalse() *Ty { return &Ty{Kind: TyFalse} }
func NewBool() *Ty  { return &Ty{Kind: TyBool} }
func NewInput() *Ty { return &Ty{Kind: TyInput} }
func NewOutput() *Ty { return &Ty{Kind: TyOutput} }

func NewTyVar(v ident.TyVarId) *Ty { return &Ty{Kind: TyVar, TyVar: v} }
func NewIntTy(t IntTy) *Ty         { return &Ty{Kind: TyInt, IntTy: t} }
func NewArray(elem *Ty, n *Expr) *Ty { return &Ty{Kind: TyArray, Elem: elem, Len: n} }
func NewOwn(elem *Ty) *Ty           { return &Ty{Kind: TyOwn, Elem: elem} }
func NewRef(lft Lifetime, elem *Ty) *Ty {
	return &Ty{Kind: TyRef, Lifetime: lft, Elem: elem}
}
func NewRefSn(e *Expr) *Ty       { return &Ty{Kind: TyRefSn, Ex: e} }
func NewSn(e *Expr, ty *Ty) *Ty  { return &Ty{Kind: TySn, Ex: e, Elem: ty} }
func NewStruct(args []Arg) *Ty   { return &Ty{Kind: TyStruct, Args: args} }
func NewAll(v ident.VarId, pat, body *Ty) *Ty {
	return &Ty{Kind: TyAll, Var: v, Left: pat, Right: body}
}
func NewImp(p, q *Ty) *Ty  { return &Ty{Kind: TyImp, Left: p, Right: q} }
func NewWand(p, q *Ty) *Ty { return &Ty{Kind: TyWand, Left: p, Right: q} }
func NewTyNot(p *Ty) *Ty   { return &Ty{Kind: TyNot, Elem: p} }
func NewAnd(ps []*Ty) *Ty  { return &Ty{Kind: TyAnd, Tys: ps} }
func NewOr(ps []*Ty) *Ty   { return &Ty{Kind: TyOr, Tys: ps} }
func NewTyIf(cond *Expr, t, e *Ty) *Ty {
	return &Ty{Kind: TyIf, Ex: cond, Left: t, Right: e}
}
func NewGhost(ty *Ty) *Ty  { return &Ty{Kind: TyGhost, Elem: ty} }
func NewUninit(ty *Ty) *Ty { return &Ty{Kind: TyUninit, Elem: ty} }
func NewPure(e *Expr) *Ty  { return &Ty{Kind: TyPure, Ex: e} }
func NewUser(f ident.AtomId, tys []*Ty, es []*Expr) *Ty {
	return &Ty{Kind: TyUser, Atom: f, Tys: tys, Exprs: es}
}
func NewHeap(l, v *Expr, ty *Ty) *Ty {
	return &Ty{Kind: TyHeap, Ex: l, Ex2: v, Elem: ty}
}
func NewHasTy(e *Expr, ty *Ty) *Ty { return &Ty{Kind: TyHasTy, Ex: e, Elem: ty} }
func NewMoved(ty *Ty) *Ty          { return &Ty{Kind: TyMoved, Elem: ty} }

// Equal reports whether x and y are structurally equal (spec.md §3.2:
// "equality is structural").
func (x *Ty) Equal(y *Ty) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil || x.Kind != y.Kind {
		return false
	}
	switch x.Kind {
	case TyVar:
		return x.TyVar == y.TyVar
	case TyInt:
		return x.IntTy == y.IntTy
	case TyArray:
		return x.Elem.Equal(y.Elem) && x.Len.Equal(y.Len)
	case TyOwn, TyGhost, TyUninit, TyNot, TyMoved:
		return x.Elem.Equal(y.Elem)
	case TyRef:
		return x.Lifetime == y.Lifetime && x.Elem.Equal(y.Elem)
	case TyRefSn, TyPure:
		return x.Ex.Equal(y.Ex)
	case TySn, TyHasTy:
		return x.Ex.Equal(y.Ex) && x.Elem.Equal(y.Elem)
	case TyStruct:
		if len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !x.Args[i].Equal(&y.Args[i]) {
				return false
			}
		}
		return true
	case TyAll:
		return x.Var == y.Var && x.Left.Equal(y.Left) && x.Right.Equal(y.Right)
	case TyImp, TyWand:
		return x.Left.Equal(y.Left) && x.Right.Equal(y.Right)
	case TyAnd, TyOr:
		return tySliceEqual(x.Tys, y.Tys)
	case TyIf:
		return x.Ex.Equal(y.Ex) && x.Left.Equal(y.Left) && x.Right.Equal(y.Right)
	case TyUser:
		if x.Atom != y.Atom || !tySliceEqual(x.Tys, y.Tys) || len(x.Exprs) != len(y.Exprs) {
			return false
		}
		for i := range x.Exprs {
			if !x.Exprs[i].Equal(y.Exprs[i]) {
				return false
			}
		}
		return true
	case TyHeap:
		return x.Ex.Equal(y.Ex) && x.Ex2.Equal(y.Ex2) && x.Elem.Equal(y.Elem)
	default: // Unit, True, False, Bool, Input, Output: no payload.
		return true
	}
}

func tySliceEqual(xs, ys []*Ty) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !xs[i].Equal(ys[i]) {
			return false
		}
	}
	return true
}

// ArgAttr is a bit set of properties on a dependent-tuple binding
// (spec.md §3.2).
type ArgAttr uint8

const (
	NONDEP ArgAttr = 1 << iota
	EXISTENTIAL
	SINGLETON
	GHOST
)

func (a ArgAttr) Has(bit ArgAttr) bool { return a&bit != 0 }

// Arg is a binding in a Struct dependent tuple: later Args' Ty may refer to
// earlier Args' Var.
type Arg struct {
	Attr ArgAttr
	Var  ident.VarId
	Ty   *Ty
}

func (a *Arg) Equal(b *Arg) bool {
	return a.Attr == b.Attr && a.Var == b.Var && a.Ty.Equal(b.Ty)
}

// Projectable reports whether a witness of this argument may be projected
// out: always true for a sigma (non-EXISTENTIAL) binding, and true for an
// existential binding iff it is also SINGLETON (spec.md §3.2).
func (a *Arg) Projectable() bool {
	return !a.Attr.Has(EXISTENTIAL) || a.Attr.Has(SINGLETON)
}
