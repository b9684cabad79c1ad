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

import "math/big"

// UnopKind distinguishes the four Unop variants (spec.md §3.4).
type UnopKind uint8

const (
	Neg UnopKind = iota
	Not
	BitNot
	As
)

// Unop is a unary operator. BitNot and As carry an operand-relevant type:
// BitNot's Size (Inf for signed bitnot) and As's target IntTy.
type Unop struct {
	Kind UnopKind
	Size Size  // valid when Kind == BitNot
	AsTy IntTy // valid when Kind == As
}

func NewNeg() Unop           { return Unop{Kind: Neg} }
func NewNot() Unop           { return Unop{Kind: Not} }
func NewBitNot(sz Size) Unop { return Unop{Kind: BitNot, Size: sz} }
func NewAs(ty IntTy) Unop    { return Unop{Kind: As, AsTy: ty} }

func (u Unop) String() string {
	switch u.Kind {
	case Neg:
		return "-"
	case Not:
		return "not"
	case BitNot:
		return "bnot"
	case As:
		return "as " + u.AsTy.String()
	default:
		return "?"
	}
}

// IntInOut reports whether this op takes and returns integers (true) as
// opposed to booleans (false).
func (u Unop) IntInOut() bool { return u.Kind != Not }

// ApplyBool applies u as a bool -> bool function. Panics if u is not Not:
// a category-mismatched fold is a programmer invariant violation (spec.md §7).
func (u Unop) ApplyBool(b bool) bool {
	if u.Kind != Not {
		panic("types: not a bool op")
	}
	return !b
}

// ApplyInt applies u as an int -> int function (spec.md §3.4, §4.2).
// It returns (nil, false) when the input is out of range for the operation
// (e.g. a BitNot(S8) applied to a value outside the u8 range), and panics for
// category mismatches or the invalid As(UInt(Inf)) case.
func (u Unop) ApplyInt(n *big.Int) (*big.Int, bool) {
	switch u.Kind {
	case Neg:
		return new(big.Int).Neg(n), true
	case Not:
		panic("types: not an int op")
	case BitNot:
		if u.Size == Inf {
			// !n, i.e. -n-1.
			return new(big.Int).Sub(new(big.Int).Neg(n), big.NewInt(1)), true
		}
		bits, _ := u.Size.Bits()
		rng := IntTy{Signed: false, Sz: u.Size}.Range()
		if !rng.Contains(n) {
			return nil, false
		}
		// 2^bits - n - 1.
		return new(big.Int).Sub(new(big.Int).Sub(modulus(bits), n), big.NewInt(1)), true
	case As:
		return asInt(u.AsTy, n)
	default:
		panic("types: unknown unop")
	}
}

// asInt implements Unop::As's truncation semantics (spec.md §3.4).
func asInt(ty IntTy, n *big.Int) (*big.Int, bool) {
	bits, finite := ty.Sz.Bits()
	if !finite {
		if ty.Signed {
			return new(big.Int).Set(n), true // As(Int(Inf)) is identity.
		}
		panic("types: As(UInt(Inf)) is not meaningful") // no truncation exists for nat.
	}
	m := modulus(bits)
	um := new(big.Int).Mod(n, m) // Euclidean mod, result in [0, 2^bits).
	if !ty.Signed {
		return um, true
	}
	half := new(big.Int).Lsh(big.NewInt(1), bits-1)
	if um.Cmp(half) < 0 {
		return um, true
	}
	return new(big.Int).Sub(um, m), true
}
