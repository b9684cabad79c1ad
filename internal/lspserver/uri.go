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

package lspserver

import (
	"fmt"
	"net/url"
	"path/filepath"

	lsp "github.com/sourcegraph/go-lsp"
)

// uriToPath converts a file:// DocumentURI into a canonical absolute path,
// the Go equivalent of the original's Url::to_file_path (spec.md §7 "Bad
// URI / bad path").
func uriToPath(uri lsp.DocumentURI) (string, error) {
	u, err := url.Parse(string(uri))
	if err != nil {
		return "", fmt.Errorf("bad URI %q: %w", uri, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("bad URI %q: not a file:// URI", uri)
	}
	path := filepath.FromSlash(u.Path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("bad URI %q: %w", uri, err)
	}
	return abs, nil
}

// pathToURI is uriToPath's inverse, used when publishing diagnostics for a
// path the VFS tracks internally.
func pathToURI(path string) lsp.DocumentURI {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return lsp.DocumentURI(u.String())
}
