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

import "github.com/mslang/mslsp/lang/types"

// CastKind is a proof that a retyping of an operand is valid.
type CastKind uint8

const (
	// CastSn proves that x: sn x (or x: sn y given a witness h: x = y).
	CastSn CastKind = iota
)

// Cast pairs a CastKind with its optional witness operand.
type Cast struct {
	Kind CastKind
	H    *Operand // CastSn's optional h: x = y witness; nil means x: sn x.
}

// RValueKind distinguishes the forms an RValue can take.
type RValueKind uint8

const (
	RVUse RValueKind = iota
	RVUnop
	RVBinop
	RVCast
	RVGhost
)

// RValue is an expression usable as the right hand side of a Let statement
// (spec.md §3.6).
type RValue struct {
	Kind  RValueKind
	Oper  Operand  // RVUse, RVGhost
	Unop  types.Unop
	Binop types.Binop
	Op1   Operand // RVUnop, RVBinop's first operand
	Op2   Operand // RVBinop's second operand
	Place Place   // RVCast
	Cast  Cast    // RVCast
}

func NewRVUse(o Operand) RValue { return RValue{Kind: RVUse, Oper: o} }
func NewRVUnop(op types.Unop, o Operand) RValue {
	return RValue{Kind: RVUnop, Unop: op, Op1: o}
}
func NewRVBinop(op types.Binop, o1, o2 Operand) RValue {
	return RValue{Kind: RVBinop, Binop: op, Op1: o1, Op2: o2}
}
func NewRVCast(p Place, c Cast) RValue { return RValue{Kind: RVCast, Place: p, Cast: c} }
func NewRVGhost(o Operand) RValue      { return RValue{Kind: RVGhost, Oper: o} }
