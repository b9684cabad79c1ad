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

// BasicBlock is an initial context, a list of statements that may extend
// it, and a terminator (spec.md §3.6, §4.1). Term is nil only while the
// block is still under construction; a finished Cfg has no nil terms.
type BasicBlock struct {
	Ctx   ident.CtxId
	Stmts []Statement
	Term  *Terminator
}

func newBasicBlock(ctx ident.CtxId) *BasicBlock {
	return &BasicBlock{Ctx: ctx}
}

// Terminate fills in this block's terminator. It is a bug to terminate a
// block that is already terminated.
func (b *BasicBlock) Terminate(term Terminator) {
	if b.Term != nil {
		panic("mir: block already terminated")
	}
	b.Term = &term
}

// Cfg is a control flow graph for one procedure's body: a set of basic
// blocks (block 0 is the entry) plus the context tree supplying each
// block's logical entry context (spec.md §3.5, §4.1).
type Cfg struct {
	Ctxs   *Contexts
	Blocks []*BasicBlock
}

// NewCfg returns an empty Cfg with a fresh, empty context tree.
func NewCfg() *Cfg {
	return &Cfg{Ctxs: NewContexts()}
}

// NewBlock starts a new, unterminated basic block with the given initial
// context, returning its ID.
func (c *Cfg) NewBlock(parent ident.CtxId) ident.BlockId {
	id := ident.BlockId(len(c.Blocks))
	c.Blocks = append(c.Blocks, newBasicBlock(parent))
	return id
}

func (c *Cfg) Block(id ident.BlockId) *BasicBlock { return c.Blocks[id] }
