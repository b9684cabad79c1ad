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

import "github.com/mslang/mslsp/lang/ident"

// TermKind distinguishes the five ways a basic block can end (spec.md
// §3.6).
type TermKind uint8

const (
	// TermJump unconditionally jumps to another block, assigning values to
	// some of its entry variables.
	TermJump TermKind = iota
	// TermReturn unconditionally returns from the enclosing procedure.
	TermReturn
	// TermUnreachable cancels this block, given a proof of false.
	TermUnreachable
	// TermIf branches on a condition to one of two blocks.
	TermIf
	// TermAssert is a branch with no explicit else block: failure aborts
	// elaboration of the enclosing procedure rather than jumping anywhere.
	TermAssert
)

// Assign is one "x -> arg" binding carried by a Jump or Return terminator.
type Assign struct {
	Var ident.VarId
	Arg Operand
}

// IfArm is one arm of an If terminator: the hypothesis variable bound to
// the branch condition (or its negation) in the target block's context,
// and the target block itself.
type IfArm struct {
	Var   ident.VarId
	Block ident.BlockId
}

// Terminator is the final statement in a basic block (spec.md §3.6).
type Terminator struct {
	Kind TermKind

	Block   ident.BlockId // TermJump
	Assigns []Assign      // TermJump, TermReturn

	Cond Operand // TermUnreachable, TermIf, TermAssert

	Arms [2]IfArm // TermIf

	AssertVar   ident.VarId   // TermAssert
	AssertBlock ident.BlockId // TermAssert
}

func NewJump(block ident.BlockId, assigns []Assign) Terminator {
	return Terminator{Kind: TermJump, Block: block, Assigns: assigns}
}

func NewReturn(assigns []Assign) Terminator {
	return Terminator{Kind: TermReturn, Assigns: assigns}
}

func NewUnreachable(proof Operand) Terminator {
	return Terminator{Kind: TermUnreachable, Cond: proof}
}

func NewIf(cond Operand, arms [2]IfArm) Terminator {
	return Terminator{Kind: TermIf, Cond: cond, Arms: arms}
}

func NewAssert(cond Operand, v ident.VarId, block ident.BlockId) Terminator {
	return Terminator{Kind: TermAssert, Cond: cond, AssertVar: v, AssertBlock: block}
}
