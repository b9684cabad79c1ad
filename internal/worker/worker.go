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

// Package worker drains internal/jobs' queue, parsing and elaborating each
// affected file through internal/elaborate's shim and publishing the
// result back into internal/vfs (spec.md §4.6).
package worker

import (
	lsp "github.com/sourcegraph/go-lsp"

	"github.com/mslang/mslsp/internal/elaborate"
	"github.com/mslang/mslsp/internal/jobs"
	"github.com/mslang/mslsp/internal/vfs"
	"github.com/mslang/mslsp/lang/types"
)

// Publisher is the narrow slice of the LSP dispatcher the worker needs: the
// ability to emit textDocument/publishDiagnostics (spec.md §4.6 "Publish
// diagnostics"). Kept as an interface, rather than a direct dependency on
// internal/lspserver, to avoid a package cycle (lspserver spawns the
// worker).
type Publisher interface {
	PublishDiagnostics(uri string, diags []*types.Diagnostic)
}

// Worker owns the long-running goroutine that drains a Jobs queue
// (spec.md §2 item 7, §4.6). The original spawns exactly one
// (spec.md §9 "Open question — worker count"; DESIGN.md).
type Worker struct {
	VFS    *vfs.VFS
	Jobs   *jobs.Jobs
	Parser elaborate.Parser
	Elab   elaborate.Elaborator
	Pub    Publisher
}

// Run drains w.Jobs until it is stopped, processing one job at a time. It
// is meant to run in its own goroutine; it returns when Jobs.Stop is
// called.
func (w *Worker) Run() {
	for {
		job, ok := w.Jobs.Wait()
		if !ok {
			return
		}
		w.process(job)
	}
}

func (w *Worker) process(job jobs.Job) {
	file := w.VFS.Get(job.Path)
	if file == nil {
		return
	}

	cache := file.TakeCache()

	switch job.Kind {
	case jobs.Elaborate:
		w.reparse(file, job.Path, job.Start, cache)
		w.dirtyDownstream(file)
	case jobs.DepChange:
		w.reelaborate(file, job.Path, cache)
	}
}

// dirtyDownstream propagates a content change to the file's dependents
// (spec.md §8 scenario (e): an edit to C enqueues DepChange jobs for B then
// A, in that order, when A depends on B depends on C). It is only run after
// a full Job::Elaborate, not after a Job::DepChange, so a chain settles in
// one pass per edit rather than re-dirtying itself forever.
func (w *Worker) dirtyDownstream(file *vfs.VirtualFile) {
	var q []jobs.Job
	for _, dep := range file.Downstream() {
		w.VFS.Dirty(&q, dep)
	}
	if len(q) > 0 {
		w.Jobs.Extend(q)
	}
}

// reparse implements the Job::Elaborate arm of the original's new_worker:
// text changed, so both parse and elaborate run (spec.md §4.6).
func (w *Worker) reparse(file *vfs.VirtualFile, path string, start lsp.Position, cache *vfs.FileCache) {
	var oldAST *elaborate.OldAST
	var oldEnv *elaborate.OldEnv
	var oldDeps []string

	switch {
	case cache == nil:
		// Reparse from scratch.
	case cache.State == vfs.Dirty:
		oldAST = &elaborate.OldAST{Start: start, AST: cache.AST}
	default: // vfs.Ready
		oldAST = &elaborate.OldAST{Start: start, AST: cache.AST}
		oldDeps = cache.Deps
	}

	_, text := file.Text()
	reuseIdx, errs, ast := w.Parser.Parse(text, oldAST)
	if cache != nil && cache.State == vfs.Ready {
		oldEnv = &elaborate.OldEnv{ReuseIdx: reuseIdx, Env: cache.Env}
	}
	env, deps := w.Elab.Elaborate(ast, oldEnv)

	w.finish(file, path, ast, env, deps, oldDeps, errs)
}

// reelaborate implements the Job::DepChange arm: a dependency changed, so
// parsing is skipped whenever a cached AST already exists (spec.md §4.6
// "parse is skipped when a cached AST exists").
func (w *Worker) reelaborate(file *vfs.VirtualFile, path string, cache *vfs.FileCache) {
	var ast *elaborate.AST
	var errs []*types.Diagnostic
	var oldEnv *elaborate.OldEnv
	var oldDeps []string

	switch {
	case cache == nil:
		_, text := file.Text()
		_, errs, ast = w.Parser.Parse(text, nil)
	default: // Dirty or Ready: reuse the whole AST, re-elaborate only.
		ast = cache.AST
		if cache.State == vfs.Ready {
			oldEnv = &elaborate.OldEnv{ReuseIdx: len(ast.Stmts), Env: cache.Env}
			oldDeps = cache.Deps
		}
	}

	env, deps := w.Elab.Elaborate(ast, oldEnv)
	w.finish(file, path, ast, env, deps, oldDeps, errs)
}

func (w *Worker) finish(file *vfs.VirtualFile, path string, ast *elaborate.AST, env *elaborate.Env, deps, oldDeps []string, errs []*types.Diagnostic) {
	if w.Pub != nil {
		w.Pub.PublishDiagnostics(file.URI, errs)
	}
	// Dependency edges are updated only after elaboration succeeds, so a
	// partial failure (a panic recovered upstream, say) leaves the previous
	// graph intact (spec.md §5 "Ordering guarantees").
	w.VFS.UpdateDownstream(oldDeps, deps, path)
	file.SetCache(&vfs.FileCache{State: vfs.Ready, AST: ast, Env: env, Deps: deps})
}
