// Copyright 2018 The Wuffs Authors.
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

package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootFindsMarkerInAncestor(tt *testing.T) {
	Reset()
	root := tt.TempDir()
	if err := os.WriteFile(filepath.Join(root, markerFile), nil, 0o644); err != nil {
		tt.Fatal(err)
	}
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		tt.Fatal(err)
	}
	file := filepath.Join(sub, "main.mod")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		tt.Fatal(err)
	}

	got, err := Root(file)
	if err != nil {
		tt.Fatalf("Root: %v", err)
	}
	want, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != want {
		tt.Errorf("Root(%q) = %q, want %q", file, got, root)
	}
}

func TestRootCachesFirstResult(tt *testing.T) {
	Reset()
	root := tt.TempDir()
	if err := os.WriteFile(filepath.Join(root, markerFile), nil, 0o644); err != nil {
		tt.Fatal(err)
	}
	first, err := Root(root)
	if err != nil {
		tt.Fatal(err)
	}

	other := tt.TempDir()
	got, err := Root(other)
	if err != nil {
		tt.Fatal(err)
	}
	if got != first {
		tt.Errorf("Root(%q) = %q after caching, want the cached %q", other, got, first)
	}
}

func TestRootNoMarkerFound(tt *testing.T) {
	Reset()
	dir := tt.TempDir()
	if _, err := Root(dir); err == nil {
		tt.Fatal("expected an error when no marker file exists in any ancestor")
	}
}
