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

package vfs

import (
	"sync"

	lsp "github.com/sourcegraph/go-lsp"

	"github.com/mslang/mslsp/internal/elaborate"
	"github.com/mslang/mslsp/internal/jobs"
)

// FileCacheState distinguishes a file's parse/elaborate cache states
// (spec.md §4.4).
type FileCacheState uint8

const (
	// Dirty holds a previous AST whose environment is stale: one of the
	// file's dependencies changed, or the file has never been elaborated.
	Dirty FileCacheState = iota
	// Ready holds a fully up to date AST, environment and dependency set.
	Ready
)

// FileCache is a file's parse/elaborate result, if any.
type FileCache struct {
	State FileCacheState
	AST   *elaborate.AST
	Env   *elaborate.Env  // valid when State == Ready
	Deps  []string        // valid when State == Ready; paths exactly as the Elaborator returned them
}

// VirtualFile is one file known to the server: its text, its most recent
// parse/elaborate cache, and the set of files that depend on it (spec.md
// §4.4).
type VirtualFile struct {
	URI string

	textMu sync.Mutex
	saved  bool
	text   *LinedString

	parsedMu sync.Mutex
	cond     *sync.Cond
	cache    *FileCache

	downstreamMu sync.Mutex
	downstream   map[string]bool
}

func newVirtualFile(uri, text string) *VirtualFile {
	vf := &VirtualFile{
		URI:        uri,
		saved:      true,
		text:       NewLinedString(text),
		downstream: make(map[string]bool),
	}
	vf.cond = sync.NewCond(&vf.parsedMu)
	return vf
}

// Text returns the file's current (saved, text) pair.
func (vf *VirtualFile) Text() (bool, *LinedString) {
	vf.textMu.Lock()
	defer vf.textMu.Unlock()
	return vf.saved, vf.text
}

// ApplyChanges updates the file's text in place, marking it unsaved, and
// returns the earliest Position touched.
func (vf *VirtualFile) ApplyChanges(changes []lsp.TextDocumentContentChangeEvent) lsp.Position {
	vf.textMu.Lock()
	defer vf.textMu.Unlock()
	vf.saved = false
	start, next := vf.text.ApplyChanges(changes)
	vf.text = next
	return start
}

// TakeCache returns and clears the file's current parse cache, matching the
// original's Option::take semantics: the caller is expected to compute a
// fresh cache and store it back with SetCache.
func (vf *VirtualFile) TakeCache() *FileCache {
	vf.parsedMu.Lock()
	defer vf.parsedMu.Unlock()
	c := vf.cache
	vf.cache = nil
	return c
}

// SetCache installs a new cache and wakes any goroutine waiting on the
// file's condition variable.
func (vf *VirtualFile) SetCache(c *FileCache) {
	vf.parsedMu.Lock()
	vf.cache = c
	vf.parsedMu.Unlock()
	vf.cond.Broadcast()
}

// MarkDirty downgrades a Ready cache to Dirty in place, or leaves a Dirty
// or absent cache untouched (spec.md §4.4 "dirty").
func (vf *VirtualFile) MarkDirty() {
	vf.parsedMu.Lock()
	defer vf.parsedMu.Unlock()
	if vf.cache != nil {
		vf.cache = &FileCache{State: Dirty, AST: vf.cache.AST}
	}
}

// Downstream returns a snapshot of the files depending on vf.
func (vf *VirtualFile) Downstream() []string {
	vf.downstreamMu.Lock()
	defer vf.downstreamMu.Unlock()
	out := make([]string, 0, len(vf.downstream))
	for p := range vf.downstream {
		out = append(out, p)
	}
	return out
}

func (vf *VirtualFile) setDownstream(path string, val bool) {
	vf.downstreamMu.Lock()
	defer vf.downstreamMu.Unlock()
	if val {
		vf.downstream[path] = true
	} else {
		delete(vf.downstream, path)
	}
}

// VFS is the server's virtual file system: a path-to-VirtualFile map plus
// the dependency-graph operations that turn a dependency change into a
// reparse job (spec.md §4.4).
type VFS struct {
	mu    sync.Mutex
	files map[string]*VirtualFile
}

// NewVFS returns an empty VFS.
func NewVFS() *VFS {
	return &VFS{files: make(map[string]*VirtualFile)}
}

// Get looks up a file by path, without creating it.
func (v *VFS) Get(path string) *VirtualFile {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.files[path]
}

// OpenVirt opens or reopens path with the given text, appending an
// Elaborate job at the start of the document and, if the file already
// existed, a DepChange job (via Dirty) for every downstream dependent
// (spec.md §4.4 "open").
func (v *VFS) OpenVirt(queue *[]jobs.Job, path, text string) *VirtualFile {
	*queue = append(*queue, jobs.Job{Kind: jobs.Elaborate, Path: path, Start: lsp.Position{}})

	file := newVirtualFile(path, text)
	v.mu.Lock()
	existing, ok := v.files[path]
	if !ok {
		v.files[path] = file
	}
	v.mu.Unlock()

	if ok {
		existing.textMu.Lock()
		existing.saved = true
		existing.text = NewLinedString(text)
		existing.textMu.Unlock()
		for _, dep := range existing.Downstream() {
			v.Dirty(queue, dep)
		}
		return existing
	}
	return file
}

// Close removes path from the VFS. If the file had unsaved edits, its
// dependents are marked dirty: an unsaved buffer's environment may be based
// on text that no longer exists anywhere once the editor drops it (spec.md
// §4.4 "close").
func (v *VFS) Close(queue *[]jobs.Job, path string) {
	v.mu.Lock()
	file, ok := v.files[path]
	if ok {
		delete(v.files, path)
	}
	v.mu.Unlock()
	if !ok {
		return
	}
	if saved, _ := file.Text(); !saved {
		for _, dep := range file.Downstream() {
			v.Dirty(queue, dep)
		}
	}
}

func (v *VFS) setDownstream(from, to string, val bool) {
	v.mu.Lock()
	file := v.files[from]
	v.mu.Unlock()
	if file != nil {
		file.setDownstream(to, val)
	}
}

// UpdateDownstream reconciles a file's downstream edge set against its
// previous and current dependency lists (spec.md §4.4).
func (v *VFS) UpdateDownstream(oldDeps, deps []string, to string) {
	oldSet := make(map[string]bool, len(oldDeps))
	for _, d := range oldDeps {
		oldSet[d] = true
	}
	newSet := make(map[string]bool, len(deps))
	for _, d := range deps {
		newSet[d] = true
	}
	for _, from := range oldDeps {
		if !newSet[from] {
			v.setDownstream(from, to, false)
		}
	}
	for _, from := range deps {
		if !oldSet[from] {
			v.setDownstream(from, to, true)
		}
	}
}

// Dirty marks path and everything transitively downstream of it as dirty,
// queueing a DepChange job for each (spec.md §4.4). It clones the
// downstream set before recursing, matching the original's
// "clone before recursing" rule so a concurrent SetCache/setDownstream on
// an ancestor never deadlocks against a held lock.
func (v *VFS) Dirty(queue *[]jobs.Job, path string) {
	*queue = append(*queue, jobs.Job{Kind: jobs.DepChange, Path: path})
	v.mu.Lock()
	file := v.files[path]
	v.mu.Unlock()
	if file == nil {
		return
	}
	file.MarkDirty()
	for _, dep := range file.Downstream() {
		v.Dirty(queue, dep)
	}
}
