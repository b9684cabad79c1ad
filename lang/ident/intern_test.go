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

package ident

import "testing"

func TestMapInsertIsIdempotent(tt *testing.T) {
	var m Map
	id1, err := m.Insert("foo")
	if err != nil {
		tt.Fatal(err)
	}
	id2, err := m.Insert("foo")
	if err != nil {
		tt.Fatal(err)
	}
	if id1 != id2 {
		tt.Fatalf("Insert(foo) = %d then %d, want equal", id1, id2)
	}
	if id1 < firstDynamicID {
		tt.Fatalf("Insert(foo) = %d, want >= firstDynamicID (%d)", id1, firstDynamicID)
	}
}

func TestMapInsertDistinctNames(tt *testing.T) {
	var m Map
	foo, _ := m.Insert("foo")
	bar, _ := m.Insert("bar")
	if foo == bar {
		tt.Fatalf("distinct names got the same id %d", foo)
	}
	if got := m.ByName("foo"); got != foo {
		tt.Errorf("ByName(foo) = %d, want %d", got, foo)
	}
	if got := m.ByID(bar); got != "bar" {
		tt.Errorf("ByID(%d) = %q, want bar", bar, got)
	}
}

func TestMapByNameUnknown(tt *testing.T) {
	var m Map
	if got := m.ByName("nope"); got != 0 {
		tt.Errorf("ByName(nope) = %d, want 0", got)
	}
}

func TestCtxIdStrings(tt *testing.T) {
	if RootCtx.Buf != Root || RootCtx.N != 0 {
		tt.Fatalf("RootCtx = %v, want (Root, 0)", RootCtx)
	}
	if got := VarId(3).String(); got != "_3" {
		tt.Errorf("VarId(3).String() = %q, want _3", got)
	}
}
