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
	"testing"

	lsp "github.com/sourcegraph/go-lsp"

	"github.com/mslang/mslsp/internal/elaborate"
	"github.com/mslang/mslsp/internal/jobs"
)

func ready(v *VFS, path string, deps []string) {
	f := v.Get(path)
	f.SetCache(&FileCache{State: Ready, AST: &elaborate.AST{}, Env: &elaborate.Env{}, Deps: deps})
}

// TestDirtyPropagation is spec.md §8 scenario (e): files A, B, C with edges
// A -> B -> C (A depends on B depends on C). A change to C must dirty B
// then A, in that order, via DepChange jobs.
func TestDirtyPropagation(tt *testing.T) {
	v := NewVFS()
	var q []jobs.Job
	v.OpenVirt(&q, "a", "")
	v.OpenVirt(&q, "b", "")
	v.OpenVirt(&q, "c", "")
	q = nil

	ready(v, "a", []string{"b"})
	ready(v, "b", []string{"c"})
	ready(v, "c", nil)
	v.UpdateDownstream(nil, []string{"b"}, "a")
	v.UpdateDownstream(nil, []string{"c"}, "b")

	v.Dirty(&q, "c")

	if len(q) != 3 {
		tt.Fatalf("queue = %v, want 3 DepChange jobs (c, b, a)", q)
	}
	wantOrder := []string{"c", "b", "a"}
	for i, w := range wantOrder {
		if q[i].Kind != jobs.DepChange || q[i].Path != w {
			tt.Errorf("q[%d] = %+v, want DepChange(%s)", i, q[i], w)
		}
	}

	for _, p := range []string{"a", "b"} {
		cache := v.Get(p).TakeCache()
		if cache == nil || cache.State != Dirty {
			tt.Errorf("file %q cache = %+v, want State == Dirty", p, cache)
		}
		v.Get(p).SetCache(cache)
	}
}

// TestCloseUnsavedDirtiesDownstream is spec.md §4.4: closing an unsaved
// file with dependents marks them dirty.
func TestCloseUnsavedDirtiesDownstream(tt *testing.T) {
	v := NewVFS()
	var q []jobs.Job
	v.OpenVirt(&q, "up", "")
	v.OpenVirt(&q, "down", "")
	q = nil

	ready(v, "up", []string{"down"})
	v.UpdateDownstream(nil, []string{"down"}, "up")

	downFile := v.Get("down")
	downFile.ApplyChanges([]lsp.TextDocumentContentChangeEvent{{Text: "edited"}})

	v.Close(&q, "down")

	found := false
	for _, j := range q {
		if j.Kind == jobs.DepChange && j.Path == "up" {
			found = true
		}
	}
	if !found {
		tt.Errorf("queue = %v, want a DepChange(up) from closing unsaved dependency", q)
	}
	if v.Get("down") != nil {
		tt.Error("closed file still present in VFS")
	}
}

// TestCloseSavedDoesNotDirty: closing a saved (unedited) file with
// dependents must not dirty them (spec.md §4.4 state machine: "didClose
// (saved) -> Absent", no downstream fanout).
func TestCloseSavedDoesNotDirty(tt *testing.T) {
	v := NewVFS()
	var q []jobs.Job
	v.OpenVirt(&q, "up", "")
	v.OpenVirt(&q, "down", "")
	q = nil

	ready(v, "up", []string{"down"})
	v.UpdateDownstream(nil, []string{"down"}, "up")

	v.Close(&q, "down")

	for _, j := range q {
		if j.Path == "up" {
			tt.Errorf("closing a saved file dirtied %q unexpectedly: %+v", "up", j)
		}
	}
}
