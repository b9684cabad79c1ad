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

// Package types holds the MIR's value kinds: integer types and operators,
// the shared Ty and Expr trees, and the Arg/ArgAttr dependent-tuple
// machinery.
package types

import (
	"math/big"

	"github.com/mslang/mslsp/lang/interval"
)

// Size is the bit width of an integer type, or Inf for the unbounded ghost
// cases (nat, int).
type Size uint8

const (
	S8 Size = iota
	S16
	S32
	S64
	Inf
)

func (s Size) String() string {
	switch s {
	case S8:
		return "8"
	case S16:
		return "16"
	case S32:
		return "32"
	case S64:
		return "64"
	case Inf:
		return "inf"
	default:
		return "?"
	}
}

// Bits returns the number of bits of s, or (0, false) for Inf.
func (s Size) Bits() (n uint, ok bool) {
	switch s {
	case S8:
		return 8, true
	case S16:
		return 16, true
	case S32:
		return 32, true
	case S64:
		return 64, true
	default:
		return 0, false
	}
}

// less reports whether s is strictly narrower than t, with Inf the widest.
func (s Size) less(t Size) bool {
	rank := func(sz Size) int {
		if sz == Inf {
			return 5
		}
		return int(sz)
	}
	return rank(s) < rank(t)
}

// IntTy is an integer type: a signed or unsigned range, possibly unbounded.
type IntTy struct {
	Signed bool
	Sz     Size
}

// Int constructs a signed integer type of the given size.
func Int(sz Size) IntTy { return IntTy{Signed: true, Sz: sz} }

// UInt constructs an unsigned integer type of the given size.
func UInt(sz Size) IntTy { return IntTy{Signed: false, Sz: sz} }

func (t IntTy) String() string {
	if t.Signed {
		if t.Sz == Inf {
			return "int"
		}
		return "i" + t.Sz.String()
	}
	if t.Sz == Inf {
		return "nat"
	}
	return "u" + t.Sz.String()
}

// Le is the IntTy partial order from spec.md §3.4: UInt(s1) <= Int(s2) iff
// s1 < s2; Int(s1) <= UInt(s2) never; same-sign comparisons are size
// comparisons.
func (t IntTy) Le(u IntTy) bool {
	switch {
	case !t.Signed && u.Signed:
		return t.Sz.less(u.Sz)
	case t.Signed && !u.Signed:
		return false
	default:
		return t.Sz == u.Sz || t.Sz.less(u.Sz)
	}
}

// Range returns the inclusive bounds of t as an interval.Int (nil bound
// means unbounded), adapted from the teacher's lang/interval package, which
// already represents exactly this shape of "inclusive range with optional
// infinite ends" for a different purpose (proving array-index expressions
// safe rather than classifying MIR integer constants).
func (t IntTy) Range() interval.Int {
	bits, finite := t.Sz.Bits()
	if !finite {
		if t.Signed {
			return interval.Int{nil, nil}
		}
		return interval.Int{big.NewInt(0), nil}
	}
	if t.Signed {
		lo := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), bits-1))
		hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits-1), big.NewInt(1))
		return interval.Int{lo, hi}
	}
	hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
	return interval.Int{big.NewInt(0), hi}
}

// Contains reports whether n is a value of type t (spec.md §3.4, testable
// property 4).
func (t IntTy) Contains(n *big.Int) bool { return t.Range().Contains(n) }

// modulus returns 2^bits for a finite size, used by truncating casts.
func modulus(bits uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), bits)
}
