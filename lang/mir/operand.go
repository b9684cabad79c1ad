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
	"math/big"

	"github.com/mslang/mslsp/lang/ident"
	"github.com/mslang/mslsp/lang/types"
)

// ConstKind distinguishes the shapes of constant value a Constant carries.
type ConstKind uint8

const (
	ConstUnit ConstKind = iota
	ConstITrue
	ConstBool
	ConstInt
	ConstUninit
	ConstNamed
)

// Constant is a synthesized constant value together with its (witness,
// type) pair (spec.md §3.6).
type Constant struct {
	Ety  types.ExprTy
	Kind ConstKind
	Atom ident.AtomId // ConstNamed
}

// ConstUnitVal returns the unit constant.
func ConstUnitVal() Constant {
	return Constant{
		Ety:  types.ExprTy{E: types.NewEUnit(), Ty: types.NewUnit()},
		Kind: ConstUnit,
	}
}

// ConstITrueVal returns the "true proposition" constant.
func ConstITrueVal() Constant {
	return Constant{
		Ety:  types.ExprTy{E: types.NewEUnit(), Ty: types.NewTrue()},
		Kind: ConstITrue,
	}
}

// ConstUninitVal returns the uninit constant of the given type.
func ConstUninitVal(ty *types.Ty) Constant {
	return Constant{
		Ety:  types.ExprTy{E: types.NewEUnit(), Ty: types.NewUninit(ty)},
		Kind: ConstUninit,
	}
}

// ConstBoolVal returns a boolean constant.
func ConstBoolVal(b bool) Constant {
	return Constant{
		Ety:  types.ExprTy{E: types.NewEBool(b), Ty: types.NewBool()},
		Kind: ConstBool,
	}
}

// ConstIntVal returns an integral constant.
func ConstIntVal(ty types.IntTy, n *big.Int) Constant {
	return Constant{
		Ety:  types.ExprTy{E: types.NewEInt(n), Ty: types.NewIntTy(ty)},
		Kind: ConstInt,
	}
}

// Operand is the right hand side of a copy, move, reference, or a
// synthesized constant (spec.md §3.6).
type OperandKind uint8

const (
	OperCopy OperandKind = iota
	OperMove
	OperRef
	OperConst
)

type Operand struct {
	Kind  OperandKind
	Place Place    // OperCopy, OperMove, OperRef
	Const Constant // OperConst
}

func NewOperCopy(p Place) Operand  { return Operand{Kind: OperCopy, Place: p} }
func NewOperMove(p Place) Operand  { return Operand{Kind: OperMove, Place: p} }
func NewOperRef(p Place) Operand   { return Operand{Kind: OperRef, Place: p} }
func NewOperConst(c Constant) Operand { return Operand{Kind: OperConst, Const: c} }

// OperandOfVar builds the default "move this local" operand for a bare
// variable reference.
func OperandOfVar(v ident.VarId) Operand { return NewOperMove(NewPlaceLocal(v)) }

// RV converts this operand to an rvalue.
func (o Operand) RV() RValue { return NewRVUse(o) }
