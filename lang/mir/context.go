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

// Package mir holds the mid-level, basic-block-based representation used
// for incremental elaboration: the persistent context tree, the per-
// procedure control flow graph, and the statements, terminators and
// operands that populate a basic block.
package mir

import (
	"github.com/mslang/mslsp/lang/ident"
	"github.com/mslang/mslsp/lang/types"
)

// CtxVar is one binding added by a CtxBuf: a variable together with its
// (optional pure witness, type) pair.
type CtxVar struct {
	Var ident.VarId
	Ety types.ExprTy
}

// CtxBuf is one node of the context tree: a parent context plus the
// variables this buffer adds on top of it (spec.md §3.5).
type CtxBuf struct {
	Parent ident.CtxId
	Vars   []CtxVar
}

// Contexts is a persistent, copy-on-branch tree of variable contexts,
// stored as a flat slice of CtxBuf nodes. Buffer 0 is the root, and is its
// own parent. A CtxId names "all ancestors of Buf up to the root, plus the
// first N variables of Buf" (spec.md §3.5, §4.1).
type Contexts struct {
	bufs []CtxBuf
}

// NewContexts returns a Contexts containing only the empty root buffer.
func NewContexts() *Contexts {
	return &Contexts{bufs: []CtxBuf{{}}}
}

func (c *Contexts) Buf(id ident.CtxBufId) *CtxBuf { return &c.bufs[id] }

// Unshare returns a buffer that id can be directly extended into, mutating
// *id in place if a new buffer had to be allocated (spec.md §4.1: "copy on
// branch" — a buffer is only extended in place when id addresses exactly
// its current length, i.e. no sibling has branched off it since).
func (c *Contexts) Unshare(id *ident.CtxId) *CtxBuf {
	buf := &c.bufs[id.Buf]
	if uint32(len(buf.Vars)) == id.N {
		return buf
	}
	newID := ident.CtxBufId(len(c.bufs))
	c.bufs = append(c.bufs, CtxBuf{Parent: *id})
	*id = ident.CtxId{Buf: newID, N: 1}
	return &c.bufs[newID]
}

// Extend pushes a new variable onto ctx, returning the extended context
// (spec.md §4.1, testable property (d)).
func (c *Contexts) Extend(ctx ident.CtxId, v ident.VarId, ety types.ExprTy) ident.CtxId {
	buf := c.Unshare(&ctx)
	buf.Vars = append(buf.Vars, CtxVar{Var: v, Ety: ety})
	ctx.N = uint32(len(buf.Vars))
	return ctx
}

// RevIter returns the (var, ExprTy) pairs reachable from ctx, from most
// recently added to least recent. This walks each buffer's prefix back
// to front, then follows the parent pointer, which is cheaper than
// assembling the full ancestor chain up front.
func (c *Contexts) RevIter(ctx ident.CtxId) []CtxVar {
	var out []CtxVar
	buf, n := ctx.Buf, ctx.N
	for {
		vars := c.bufs[buf].Vars[:n]
		for i := len(vars) - 1; i >= 0; i-- {
			out = append(out, vars[i])
		}
		if buf == ident.Root {
			return out
		}
		parent := c.bufs[buf].Parent
		buf, n = parent.Buf, parent.N
	}
}
