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
	"math/big"

	"github.com/mslang/mslsp/lang/ident"
)

// ExprKind is the tag of an Expr node (spec.md §3.3).
type ExprKind uint8

const (
	EUnit ExprKind = iota
	EVar
	EConst
	EBool
	EInt
	EUnop
	EBinop
	EIndex
	ESlice
	EProj
	EUpdateIndex
	EUpdateSlice
	EUpdateProj
	EList
	EArray
	ESizeof
	ERef
	EMm0
	ECall
	EIf
)

// Expr is a node of the shared, immutable pure-expression tree
// (spec.md §3.3). As with Ty, generic slots are reused across variants.
type Expr struct {
	Kind ExprKind

	Var   ident.VarId  // EVar
	Atom  ident.AtomId // EConst, ECall's f
	Bool  bool         // EBool
	Int   *big.Int     // EInt
	Unop  Unop         // EUnop
	Binop Binop        // EBinop
	A     *Expr        // EUnop's e, EIndex/ESlice/EProj/EUpdate*'s base, ERef, EIf's cond
	B     *Expr        // EIndex/ESlice/EUpdateIndex/EUpdateSlice's i, EUpdateProj's v, EIf's then
	C     *Expr        // ESlice/EUpdateSlice's l, EUpdateIndex's e, EIf's els
	D     *Expr        // EUpdateSlice's e
	Proj  uint32        // EProj, EUpdateProj
	List  []*Expr       // EList, EArray, ECall's args
	Ty    *Ty           // ESizeof
	Tys   []*Ty         // ECall's type args
	Mm0   *Mm0Expr      // EMm0
}

func NewEUnit() *Expr            { return &Expr{Kind: EUnit} }
func NewEVar(v ident.VarId) *Expr { return &Expr{Kind: EVar, Var: v} }
func NewEConst(a ident.AtomId) *Expr { return &Expr{Kind: EConst, Atom: a} }
func NewEBool(b bool) *Expr       { return &Expr{Kind: EBool, Bool: b} }
func NewEInt(n *big.Int) *Expr    { return &Expr{Kind: EInt, Int: n} }
func NewEUnop(op Unop, e *Expr) *Expr { return &Expr{Kind: EUnop, Unop: op, A: e} }
func NewEBinop(op Binop, e1, e2 *Expr) *Expr {
	return &Expr{Kind: EBinop, Binop: op, A: e1, B: e2}
}
func NewEIndex(a, i *Expr) *Expr { return &Expr{Kind: EIndex, A: a, B: i} }
func NewESlice(a, i, l *Expr) *Expr {
	return &Expr{Kind: ESlice, A: a, B: i, C: l}
}
func NewEProj(a *Expr, i uint32) *Expr { return &Expr{Kind: EProj, A: a, Proj: i} }
func NewEUpdateIndex(a, i, e *Expr) *Expr {
	return &Expr{Kind: EUpdateIndex, A: a, B: i, C: e}
}
func NewEUpdateSlice(a, i, l, e *Expr) *Expr {
	return &Expr{Kind: EUpdateSlice, A: a, B: i, C: l, D: e}
}
func NewEUpdateProj(a *Expr, i uint32, e *Expr) *Expr {
	return &Expr{Kind: EUpdateProj, A: a, Proj: i, B: e}
}
func NewEList(es []*Expr) *Expr  { return &Expr{Kind: EList, List: es} }
func NewEArray(es []*Expr) *Expr { return &Expr{Kind: EArray, List: es} }
func NewESizeof(ty *Ty) *Expr    { return &Expr{Kind: ESizeof, Ty: ty} }
func NewERef(e *Expr) *Expr      { return &Expr{Kind: ERef, A: e} }
func NewEMm0(e *Mm0Expr) *Expr   { return &Expr{Kind: EMm0, Mm0: e} }
func NewECall(f ident.AtomId, tys []*Ty, args []*Expr) *Expr {
	return &Expr{Kind: ECall, Atom: f, Tys: tys, List: args}
}
func NewEIf(cond, then, els *Expr) *Expr {
	return &Expr{Kind: EIf, A: cond, B: then, C: els}
}

// Equal reports whether x and y are structurally equal.
func (x *Expr) Equal(y *Expr) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil || x.Kind != y.Kind {
		return false
	}
	switch x.Kind {
	case EUnit:
		return true
	case EVar:
		return x.Var == y.Var
	case EConst:
		return x.Atom == y.Atom
	case EBool:
		return x.Bool == y.Bool
	case EInt:
		return x.Int.Cmp(y.Int) == 0
	case EUnop:
		return x.Unop == y.Unop && x.A.Equal(y.A)
	case EBinop:
		return x.Binop == y.Binop && x.A.Equal(y.A) && x.B.Equal(y.B)
	case EIndex:
		return x.A.Equal(y.A) && x.B.Equal(y.B)
	case ESlice:
		return x.A.Equal(y.A) && x.B.Equal(y.B) && x.C.Equal(y.C)
	case EProj:
		return x.Proj == y.Proj && x.A.Equal(y.A)
	case EUpdateIndex:
		return x.A.Equal(y.A) && x.B.Equal(y.B) && x.C.Equal(y.C)
	case EUpdateSlice:
		return x.A.Equal(y.A) && x.B.Equal(y.B) && x.C.Equal(y.C) && x.D.Equal(y.D)
	case EUpdateProj:
		return x.Proj == y.Proj && x.A.Equal(y.A) && x.B.Equal(y.B)
	case EList, EArray:
		return exprSliceEqual(x.List, y.List)
	case ESizeof:
		return x.Ty.Equal(y.Ty)
	case ERef:
		return x.A.Equal(y.A)
	case EMm0:
		return x.Mm0.Equal(y.Mm0)
	case ECall:
		return x.Atom == y.Atom && tySliceEqual(x.Tys, y.Tys) && exprSliceEqual(x.List, y.List)
	case EIf:
		return x.A.Equal(y.A) && x.B.Equal(y.B) && x.C.Equal(y.C)
	default:
		return false
	}
}

func exprSliceEqual(xs, ys []*Expr) bool {
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

// ExprTy pairs an optional pure-value witness with its type (spec.md §3.3).
// The expression is absent for computationally determined values.
type ExprTy struct {
	E  *Expr
	Ty *Ty
}

// Mm0ExprNodeKind tags an embedded proof-assistant expression node.
type Mm0ExprNodeKind uint8

const (
	Mm0Const Mm0ExprNodeKind = iota
	Mm0Var
	Mm0App
)

// Mm0ExprNode is a node of an embedded MM0 expression (spec.md §3.3).
type Mm0ExprNode struct {
	Kind  Mm0ExprNodeKind
	Lisp  string // Mm0Const: an opaque rendering of the literal s-expression.
	Idx   uint32 // Mm0Var
	Term  ident.TermId
	Args  []*Mm0ExprNode // Mm0App
}

func (n *Mm0ExprNode) Equal(m *Mm0ExprNode) bool {
	if n == m {
		return true
	}
	if n == nil || m == nil || n.Kind != m.Kind {
		return false
	}
	switch n.Kind {
	case Mm0Const:
		return n.Lisp == m.Lisp
	case Mm0Var:
		return n.Idx == m.Idx
	case Mm0App:
		if n.Term != m.Term || len(n.Args) != len(m.Args) {
			return false
		}
		for i := range n.Args {
			if !n.Args[i].Equal(m.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Mm0Expr carries an explicit named substitution over a shared Mm0ExprNode
// tree (spec.md §3.3).
type Mm0Expr struct {
	Subst []*Expr
	Expr  *Mm0ExprNode
}

func (x *Mm0Expr) Equal(y *Mm0Expr) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return exprSliceEqual(x.Subst, y.Subst) && x.Expr.Equal(y.Expr)
}
