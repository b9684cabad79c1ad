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

// ConstProjKind distinguishes the ways a constant Projection step can view
// a tuple-shaped value (spec.md §3.6).
type ConstProjKind uint8

const (
	// ProjStruct views a tuple value at its i'th element.
	ProjStruct ConstProjKind = iota
	// ProjArray views an array value at its i'th element.
	ProjArray
	// ProjAnd views an intersection-typed value as one of its conjuncts.
	ProjAnd
	// ProjSn views a value of type (sn {x : T}) as its underlying T.
	ProjSn
)

// StepKind tags a single Projection step.
type StepKind uint8

const (
	// StepConst is a constant struct/array/and/sn projection.
	StepConst StepKind = iota
	// StepIndex is a variable-indexed array access, (index _ i h).
	StepIndex
	// StepSlice is a variable-bounded array slice, (slice _ i l h).
	StepSlice
	// StepDeref is a pointer dereference, (* _).
	StepDeref
)

// Projection is one step of a Place.
type Projection struct {
	Step StepKind

	ConstKind ConstProjKind // StepConst
	Const     uint32        // StepConst
	Idx       ident.VarId   // StepIndex, StepSlice: the index variable
	Len       ident.VarId   // StepSlice: the length variable
	Hyp       ident.VarId   // StepIndex, StepSlice: the bounds-proof variable
}

func NewProjConst(kind ConstProjKind, i uint32) Projection {
	return Projection{Step: StepConst, ConstKind: kind, Const: i}
}

// NewProjIndex is a variable-indexed array access (index _ i h): idx names
// the index value, h the proof that idx is in bounds (spec.md §3.5 "the
// projection carries its safety witness").
func NewProjIndex(idx, h ident.VarId) Projection {
	return Projection{Step: StepIndex, Idx: idx, Hyp: h}
}

// NewProjSlice is a variable-bounded array slice (slice _ i l h): idx and
// length name the index and length values, h the proof that idx+length is
// in bounds (spec.md §3.5 "the projection carries its safety witness").
func NewProjSlice(idx, length, h ident.VarId) Projection {
	return Projection{Step: StepSlice, Idx: idx, Len: length, Hyp: h}
}

func NewProjDeref() Projection { return Projection{Step: StepDeref} }

// Place is a sequence of projections rooted at a local variable: a
// location that can be read from and written to (spec.md §3.6).
type Place struct {
	Local ident.VarId
	Proj  []Projection
}

// NewPlaceLocal constructs a place directly from a local, with no
// projections.
func NewPlaceLocal(v ident.VarId) Place { return Place{Local: v} }
