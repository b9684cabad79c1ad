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
	"testing"

	"github.com/mslang/mslsp/lang/ident"
	"github.com/mslang/mslsp/lang/types"
)

// TestPlaceProjections checks each Projection constructor tags the right
// StepKind and carries its operands (spec.md §3.6).
func TestPlaceProjections(tt *testing.T) {
	idx, ln, h := ident.VarId(1), ident.VarId(2), ident.VarId(3)

	if p := NewProjConst(ProjArray, 3); p.Step != StepConst || p.ConstKind != ProjArray || p.Const != 3 {
		tt.Errorf("NewProjConst = %+v, want Step=StepConst ConstKind=ProjArray Const=3", p)
	}
	if p := NewProjIndex(idx, h); p.Step != StepIndex || p.Idx != idx || p.Hyp != h {
		tt.Errorf("NewProjIndex = %+v, want Step=StepIndex Idx=%v Hyp=%v", p, idx, h)
	}
	if p := NewProjSlice(idx, ln, h); p.Step != StepSlice || p.Idx != idx || p.Len != ln || p.Hyp != h {
		tt.Errorf("NewProjSlice = %+v, want Step=StepSlice Idx=%v Len=%v Hyp=%v", p, idx, ln, h)
	}
	if p := NewProjDeref(); p.Step != StepDeref {
		tt.Errorf("NewProjDeref = %+v, want Step=StepDeref", p)
	}

	place := NewPlaceLocal(ident.VarId(7))
	if place.Local != 7 || len(place.Proj) != 0 {
		tt.Errorf("NewPlaceLocal = %+v, want Local=7 and no projections", place)
	}
}

// TestOperandConstructors checks each Operand constructor tags the right
// OperandKind and carries the Place/Constant it was given.
func TestOperandConstructors(tt *testing.T) {
	p := NewPlaceLocal(ident.VarId(4))

	if o := NewOperCopy(p); o.Kind != OperCopy || o.Place.Local != p.Local {
		tt.Errorf("NewOperCopy = %+v, want Kind=OperCopy Place.Local=%v", o, p.Local)
	}
	if o := NewOperMove(p); o.Kind != OperMove || o.Place.Local != p.Local {
		tt.Errorf("NewOperMove = %+v, want Kind=OperMove Place.Local=%v", o, p.Local)
	}
	if o := NewOperRef(p); o.Kind != OperRef || o.Place.Local != p.Local {
		tt.Errorf("NewOperRef = %+v, want Kind=OperRef Place.Local=%v", o, p.Local)
	}

	c := ConstBoolVal(true)
	if o := NewOperConst(c); o.Kind != OperConst || o.Const.Kind != ConstBool {
		tt.Errorf("NewOperConst = %+v, want Kind=OperConst Const.Kind=ConstBool", o)
	}

	if o := OperandOfVar(ident.VarId(9)); o.Kind != OperMove || o.Place.Local != 9 {
		tt.Errorf("OperandOfVar = %+v, want a move of local 9", o)
	}
}

// TestConstantConstructors exercises each Constant factory's (Kind, Ty)
// pairing.
func TestConstantConstructors(tt *testing.T) {
	if c := ConstUnitVal(); c.Kind != ConstUnit {
		tt.Errorf("ConstUnitVal.Kind = %v, want ConstUnit", c.Kind)
	}
	if c := ConstITrueVal(); c.Kind != ConstITrue {
		tt.Errorf("ConstITrueVal.Kind = %v, want ConstITrue", c.Kind)
	}
	if c := ConstUninitVal(types.NewUnit()); c.Kind != ConstUninit {
		tt.Errorf("ConstUninitVal.Kind = %v, want ConstUninit", c.Kind)
	}
	if c := ConstBoolVal(false); c.Kind != ConstBool {
		tt.Errorf("ConstBoolVal.Kind = %v, want ConstBool", c.Kind)
	}
	if c := ConstIntVal(types.Int(types.S8), big.NewInt(5)); c.Kind != ConstInt {
		tt.Errorf("ConstIntVal.Kind = %v, want ConstInt", c.Kind)
	}
}

// TestRValueConstructors checks each RValue constructor's tag and payload.
// Comparisons go through each operand's Place.Local rather than struct
// equality: Operand embeds a Place, and Place's Proj field is a slice, so
// Operand values are not comparable with ==.
func TestRValueConstructors(tt *testing.T) {
	o1 := OperandOfVar(ident.VarId(1))
	o2 := OperandOfVar(ident.VarId(2))

	if rv := NewRVUse(o1); rv.Kind != RVUse || rv.Oper.Place.Local != o1.Place.Local {
		tt.Errorf("NewRVUse = %+v, want Kind=RVUse Oper=%+v", rv, o1)
	}
	if rv := NewRVUnop(types.NewNeg(), o1); rv.Kind != RVUnop || rv.Op1.Place.Local != o1.Place.Local {
		tt.Errorf("NewRVUnop = %+v, want Kind=RVUnop Op1=%+v", rv, o1)
	}
	if rv := NewRVBinop(types.Add, o1, o2); rv.Kind != RVBinop ||
		rv.Op1.Place.Local != o1.Place.Local || rv.Op2.Place.Local != o2.Place.Local {
		tt.Errorf("NewRVBinop = %+v, want Kind=RVBinop Op1/Op2 set", rv)
	}
	place := NewPlaceLocal(ident.VarId(3))
	cast := Cast{Kind: CastSn}
	if rv := NewRVCast(place, cast); rv.Kind != RVCast || rv.Place.Local != place.Local {
		tt.Errorf("NewRVCast = %+v, want Kind=RVCast Place=%+v", rv, place)
	}
	if rv := NewRVGhost(o1); rv.Kind != RVGhost || rv.Oper.Place.Local != o1.Place.Local {
		tt.Errorf("NewRVGhost = %+v, want Kind=RVGhost Oper=%+v", rv, o1)
	}

	// Operand.RV is the inverse of NewRVUse.
	if rv := o1.RV(); rv.Kind != RVUse || rv.Oper.Place.Local != o1.Place.Local {
		tt.Errorf("Operand.RV() = %+v, want NewRVUse(o1)", rv)
	}
}

// TestStatementConstructors checks NewLet and NewExElimStmt tag their
// StmtKind correctly and carry the right fields.
func TestStatementConstructors(tt *testing.T) {
	v := ident.VarId(5)
	ety := types.ExprTy{Ty: types.NewUnit()}
	rv := OperandOfVar(v).RV()

	let := NewLet(v, ety, rv)
	if let.Kind != StmtLet || let.Var != v || let.RV.Kind != rv.Kind {
		tt.Errorf("NewLet = %+v, want Kind=StmtLet Var=%v", let, v)
	}

	ek := NewExElimOwn(
		ExElimBinding{Var: ident.VarId(1), Ty: types.NewUnit()},
		ExElimBinding{Var: ident.VarId(2), Ty: types.NewUnit()},
	)
	stmt := NewExElimStmt(ek, types.NewUnit(), rv)
	if stmt.Kind != StmtExElim || stmt.ExElim.Kind != ExElimOwn {
		tt.Errorf("NewExElimStmt = %+v, want Kind=StmtExElim ExElim.Kind=ExElimOwn", stmt)
	}
	if stmt.ExElim.Bindings[0].Var != ident.VarId(1) || stmt.ExElim.Bindings[1].Var != ident.VarId(2) {
		tt.Errorf("ExElim.Bindings = %+v, want [var1, var2]", stmt.ExElim.Bindings)
	}
}
