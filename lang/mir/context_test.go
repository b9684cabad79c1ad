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
	"testing"

	"github.com/mslang/mslsp/lang/ident"
	"github.com/mslang/mslsp/lang/types"
)

// TestContextDivergence reproduces spec.md §8 scenario (d): two divergent
// extensions of the same prefix must allocate separate buffers, and
// reverse iteration must see only its own branch's history.
func TestContextDivergence(tt *testing.T) {
	ctxs := NewContexts()
	unit := types.ExprTy{Ty: types.NewUnit()}

	v1, v2, v3 := ident.VarId(1), ident.VarId(2), ident.VarId(3)

	c1 := ctxs.Extend(ident.RootCtx, v1, unit)
	if c1.Buf != ident.Root || c1.N != 1 {
		tt.Fatalf("c1 = %v, want (root, 1)", c1)
	}

	c2 := ctxs.Extend(c1, v2, unit)
	if c2.Buf != ident.Root || c2.N != 2 {
		tt.Fatalf("c2 = %v, want (root, 2): in-place growth expected", c2)
	}

	c3 := ctxs.Extend(c1, v3, unit)
	if c3.Buf == ident.Root {
		tt.Fatalf("c3 = %v, want a fresh buffer distinct from root", c3)
	}
	if c3.N != 1 {
		tt.Fatalf("c3.N = %d, want 1", c3.N)
	}

	wantVars := func(got []CtxVar, want ...ident.VarId) {
		tt.Helper()
		if len(got) != len(want) {
			tt.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
		}
		for i, w := range want {
			if got[i].Var != w {
				tt.Fatalf("got[%d] = %v, want %v", i, got[i].Var, w)
			}
		}
	}

	wantVars(ctxs.RevIter(c3), v3, v1)
	wantVars(ctxs.RevIter(c2), v2, v1)
	wantVars(ctxs.RevIter(c1), v1)
	wantVars(ctxs.RevIter(ident.RootCtx))
}

// TestContextIdInvariant is testable property 3: for every context id
// (buf, i), i <= len(buf.Vars) at rest, and the parent chain terminates at
// root.
func TestContextIdInvariant(tt *testing.T) {
	ctxs := NewContexts()
	unit := types.ExprTy{Ty: types.NewUnit()}
	ctx := ident.RootCtx
	for i := 0; i < 5; i++ {
		ctx = ctxs.Extend(ctx, ident.VarId(i), unit)
		buf := ctxs.Buf(ctx.Buf)
		if ctx.N > uint32(len(buf.Vars)) {
			tt.Fatalf("ctx.N = %d > len(buf.Vars) = %d", ctx.N, len(buf.Vars))
		}
	}
	seen := map[ident.CtxBufId]bool{}
	buf := ctx.Buf
	for {
		if seen[buf] {
			tt.Fatalf("parent chain cycles without reaching root")
		}
		seen[buf] = true
		if buf == ident.Root {
			break
		}
		buf = ctxs.Buf(buf).Parent.Buf
	}
}
