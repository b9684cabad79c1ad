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
	"testing"

	"github.com/mslang/mslsp/lang/interval"
)

func bi(n int64) *big.Int { return big.NewInt(n) }

// TestBitNotTruncation is spec.md §8 scenario (a).
func TestBitNotTruncation(tt *testing.T) {
	got, ok := NewBitNot(S8).ApplyInt(bi(0x12))
	if !ok || got.Cmp(bi(0xED)) != 0 {
		tt.Fatalf("BitNot(S8).ApplyInt(0x12) = (%v, %v), want (0xED, true)", got, ok)
	}

	got, ok = NewBitNot(Inf).ApplyInt(bi(-1))
	if !ok || got.Cmp(bi(0)) != 0 {
		tt.Fatalf("BitNot(Inf).ApplyInt(-1) = (%v, %v), want (0, true)", got, ok)
	}
}

// TestCastToI8 is spec.md §8 scenario (b): two's-complement wraparound.
func TestCastToI8(tt *testing.T) {
	got, ok := NewAs(Int(S8)).ApplyInt(bi(130))
	if !ok || got.Cmp(bi(-126)) != 0 {
		tt.Fatalf("As(i8).ApplyInt(130) = (%v, %v), want (-126, true)", got, ok)
	}
}

// TestAsUIntInfPanics: As(UInt(Inf)) is not meaningful and must panic
// (spec.md §3.4, §4.2, §7).
func TestAsUIntInfPanics(tt *testing.T) {
	defer func() {
		if recover() == nil {
			tt.Fatal("expected a panic for As(UInt(Inf))")
		}
	}()
	NewAs(UInt(Inf)).ApplyInt(bi(5))
}

// TestSubBreaksNat is spec.md §8 scenario (c).
func TestSubBreaksNat(tt *testing.T) {
	if Sub.PreservesNat() {
		tt.Fatal("Sub.PreservesNat() = true, want false")
	}
	got, ok := Sub.ApplyIntInt(bi(3), bi(5))
	if !ok || got.Cmp(bi(-2)) != 0 {
		tt.Fatalf("Sub.ApplyIntInt(3, 5) = (%v, %v), want (-2, true)", got, ok)
	}
}

// TestPreservesNat is testable property 5: for every nat-preserving binop
// and nonnegative n1, n2, the result is nonnegative.
func TestPreservesNat(tt *testing.T) {
	natPreserving := []Binop{Add, Mul, Max, Min, BitAnd, BitOr, BitXor, Shl, Shr}
	pairs := [][2]int64{{0, 0}, {1, 0}, {0, 7}, {3, 4}, {255, 1}, {1000, 3}}
	for _, b := range natPreserving {
		if !b.PreservesNat() {
			tt.Errorf("%v.PreservesNat() = false, want true", b)
			continue
		}
		for _, p := range pairs {
			got, ok := b.ApplyIntInt(bi(p[0]), bi(p[1]))
			if !ok {
				continue // Shl/Shr may reject an out-of-range count; not this property's concern.
			}
			if got.Sign() < 0 {
				tt.Errorf("%v.ApplyIntInt(%d, %d) = %v, want >= 0", b, p[0], p[1], got)
			}
		}
	}
}

// TestIntTyContainsMatchesAs is testable property 4: for every n and
// integer type T, T.Contains(n) iff As(T).ApplyInt(n) == n (restricted to
// the integer-returning As cases, i.e. excluding As(UInt(Inf))).
func TestIntTyContainsMatchesAs(tt *testing.T) {
	tys := []IntTy{Int(S8), UInt(S8), Int(S16), UInt(S16), Int(S64), UInt(S64), Int(Inf)}
	values := []int64{-300, -129, -128, -1, 0, 1, 127, 128, 255, 256, 1 << 20, -(1 << 20)}
	for _, ty := range tys {
		for _, v := range values {
			n := bi(v)
			contains := ty.Contains(n)
			got, ok := NewAs(ty).ApplyInt(n)
			if !ok {
				tt.Fatalf("As(%v).ApplyInt(%d) unexpectedly rejected", ty, v)
			}
			roundTrips := got.Cmp(n) == 0
			if contains != roundTrips {
				tt.Errorf("%v.Contains(%d) = %v, but As(%v).ApplyInt(%d) round-trips = %v (got %v)",
					ty, v, contains, ty, v, roundTrips, got)
			}
		}
	}
}

// TestIntTyLe exercises the partial order from spec.md §3.4.
func TestIntTyLe(tt *testing.T) {
	if !UInt(S8).Le(Int(S16)) {
		tt.Error("UInt(S8) <= Int(S16) should hold (s1 < s2)")
	}
	if UInt(S16).Le(Int(S16)) {
		tt.Error("UInt(S16) <= Int(S16) should not hold (s1 == s2)")
	}
	if Int(S8).Le(UInt(S16)) {
		tt.Error("Int(s1) <= UInt(s2) should never hold")
	}
	if !Int(S8).Le(Int(S16)) {
		tt.Error("Int(S8) <= Int(S16) should hold (same sign, size comparison)")
	}
}

// TestRangeOfSoundness is a property test: for every Add, Sub and Mul,
// and every pair of concrete operands drawn from two finite ranges,
// RangeOf's computed bound must contain ApplyIntInt's concrete result
// (spec.md §3.4's static bounds must never be unsound).
func TestRangeOfSoundness(tt *testing.T) {
	r1 := interval.Int{bi(-3), bi(5)}
	r2 := interval.Int{bi(-2), bi(4)}
	ops := []Binop{Add, Sub, Mul}
	for n1 := int64(-3); n1 <= 5; n1++ {
		for n2 := int64(-2); n2 <= 4; n2++ {
			for _, op := range ops {
				rng, ok := op.RangeOf(r1, r2)
				if !ok {
					tt.Fatalf("%v.RangeOf = not ok, want a bound", op)
				}
				got, ok := op.ApplyIntInt(bi(n1), bi(n2))
				if !ok {
					tt.Fatalf("%v.ApplyIntInt(%d, %d) = not ok", op, n1, n2)
				}
				if !rng.Contains(got) {
					tt.Errorf("%v.RangeOf(%v, %v) = %v, does not contain ApplyIntInt(%d, %d) = %v",
						op, r1, r2, rng, n1, n2, got)
				}
			}
		}
	}
}

// TestRangeOfUnbounded checks the infinite-bound cases: an Inf-sized IntTy's
// Range feeds into RangeOf without a nil-pointer fault, and Add with an
// operand unbounded on both sides is unbounded on both sides.
func TestRangeOfUnbounded(tt *testing.T) {
	nat := Int(Inf).Range() // (-inf, +inf)
	rng, ok := Add.RangeOf(nat, nat)
	if !ok || rng[0] != nil || rng[1] != nil {
		tt.Fatalf("Add.RangeOf(inf, inf) = (%v, %v), want an unbounded range", rng, ok)
	}

	u8 := UInt(S8).Range() // [0, 255]
	rng, ok = Add.RangeOf(u8, nat)
	if !ok || rng[0] != nil || rng[1] != nil {
		tt.Fatalf("Add.RangeOf(u8, inf) = (%v, %v), want an unbounded range (inf's [nil,nil] dominates)", rng, ok)
	}
}

// TestRangeOfMaxMin checks the Max/Min bound-combination rules directly
// against hand-computed expectations.
func TestRangeOfMaxMin(tt *testing.T) {
	r1 := interval.Int{bi(1), bi(10)}
	r2 := interval.Int{bi(5), bi(8)}

	maxRng, ok := Max.RangeOf(r1, r2)
	if !ok || maxRng[0].Cmp(bi(5)) != 0 || maxRng[1].Cmp(bi(10)) != 0 {
		tt.Errorf("Max.RangeOf([1,10], [5,8]) = %v, want [5, 10]", maxRng)
	}

	minRng, ok := Min.RangeOf(r1, r2)
	if !ok || minRng[0].Cmp(bi(1)) != 0 || minRng[1].Cmp(bi(8)) != 0 {
		tt.Errorf("Min.RangeOf([1,10], [5,8]) = %v, want [1, 8]", minRng)
	}
}

// TestRangeOfBitwiseUnsupported documents that bitwise ops report no bound
// rather than a potentially unsound one.
func TestRangeOfBitwiseUnsupported(tt *testing.T) {
	r := interval.Int{bi(0), bi(255)}
	if _, ok := BitAnd.RangeOf(r, r); ok {
		tt.Error("BitAnd.RangeOf should report ok=false")
	}
}
