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

// Package workspace locates the root directory of an open LSP workspace:
// the nearest ancestor of a given file that contains a marker file. When no
// ancestor contains the marker, Root returns an error; there is no fallback
// root.
package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const markerFile = "mslsp-root.txt"

var cache struct {
	mu    sync.Mutex
	value string
}

func setValue(value string) (string, error) {
	cache.mu.Lock()
	cache.value = value
	cache.mu.Unlock()

	return value, nil
}

// Reset clears the cached root, so a later Root call re-searches the
// filesystem. Tests call this between scenarios that set up distinct
// temporary workspaces.
func Reset() {
	cache.mu.Lock()
	cache.value = ""
	cache.mu.Unlock()
}

// Root returns the workspace root containing start, found by walking
// start's ancestors looking for markerFile. The first successful lookup is
// cached for the process's lifetime (a workspace does not move while the
// server is attached to it).
func Root(start string) (string, error) {
	cache.mu.Lock()
	value := cache.value
	cache.mu.Unlock()

	if value != "" {
		return value, nil
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(abs); err == nil && !fi.IsDir() {
		abs = filepath.Dir(abs)
	}

	for p, q := abs, ""; p != q; p, q = filepath.Dir(p), p {
		if _, err := os.Stat(filepath.Join(p, markerFile)); err == nil {
			return setValue(p)
		}
	}

	return "", errors.New("workspace: could not find a root directory above " + start)
}
