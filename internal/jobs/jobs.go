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

// Package jobs holds the worker's work queue: a deduplicating, condition-
// variable-guarded list of per-path reparse/re-elaborate requests.
package jobs

import (
	"sync"

	lsp "github.com/sourcegraph/go-lsp"
)

// Kind distinguishes the two reasons a path needs (re-)elaboration
// (spec.md §4.5).
type Kind uint8

const (
	// Elaborate means the file's own text changed, starting at Start.
	Elaborate Kind = iota
	// DepChange means one of the file's dependencies changed; the cached
	// AST is re-elaborated without reparsing when one exists.
	DepChange
)

// Job is one unit of work: reparse/re-elaborate a path.
type Job struct {
	Kind  Kind
	Path  string
	Start lsp.Position // valid when Kind == Elaborate
}

// Jobs is a mutex-and-condvar-guarded work queue, directly modeled on the
// original's `Mutex<Option<VecDeque<Job>>>` plus `Condvar` pair: the queue
// is wrapped in a pointer so Stop can signal "no more work, ever" by
// setting it nil, distinguishing a stopped queue from a merely empty one.
type Jobs struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   *[]Job
}

// NewJobs returns a running, empty Jobs queue.
func NewJobs() *Jobs {
	q := make([]Job, 0)
	j := &Jobs{queue: &q}
	j.cond = sync.NewCond(&j.mu)
	return j
}

// Extend merges new jobs into the queue, deduplicating by path: any queued
// job for a path also present in new is dropped, except that an Elaborate
// job's Start position is preserved as the minimum of the dropped and
// incoming starts (spec.md §9 Open Question: dedup lossiness, resolved to
// preserve the earliest edit position rather than the newest, so a reparse
// never starts later than the first unprocessed edit).
func (j *Jobs) Extend(newJobs []Job) {
	if len(newJobs) == 0 {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.queue == nil {
		return
	}
	byPath := make(map[string]int, len(newJobs))
	for i, nj := range newJobs {
		byPath[nj.Path] = i
	}
	kept := (*j.queue)[:0]
	for _, old := range *j.queue {
		i, isNew := byPath[old.Path]
		if !isNew {
			kept = append(kept, old)
			continue
		}
		if old.Kind == Elaborate && newJobs[i].Kind == Elaborate && before(old.Start, newJobs[i].Start) {
			newJobs[i].Start = old.Start
		}
	}
	*j.queue = append(kept, newJobs...)
	j.cond.Signal()
}

func before(a, b lsp.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Character < b.Character
}

// Wait blocks until a job is available or the queue is stopped, returning
// (job, true) or (Job{}, false) respectively.
func (j *Jobs) Wait() (Job, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for {
		if j.queue == nil {
			return Job{}, false
		}
		if len(*j.queue) > 0 {
			job := (*j.queue)[0]
			*j.queue = (*j.queue)[1:]
			return job, true
		}
		j.cond.Wait()
	}
}

// Stop discards all pending work and wakes every waiter permanently.
func (j *Jobs) Stop() {
	j.mu.Lock()
	j.queue = nil
	j.mu.Unlock()
	j.cond.Broadcast()
}
