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
	"testing"

	lsp "github.com/sourcegraph/go-lsp"

	"github.com/mslang/mslsp/lang/types"
)

func TestURIToPathRoundTrip(tt *testing.T) {
	path, err := uriToPath(lsp.DocumentURI("file:///tmp/a/b.mod"))
	if err != nil {
		tt.Fatalf("uriToPath: %v", err)
	}
	if path != "/tmp/a/b.mod" {
		tt.Errorf("uriToPath = %q, want /tmp/a/b.mod", path)
	}
	if got := pathToURI(path); got != lsp.DocumentURI("file:///tmp/a/b.mod") {
		tt.Errorf("pathToURI(%q) = %q, want file:///tmp/a/b.mod", path, got)
	}
}

func TestURIToPathRejectsNonFileScheme(tt *testing.T) {
	if _, err := uriToPath(lsp.DocumentURI("http://example.com/a")); err == nil {
		tt.Fatal("expected an error for a non-file:// URI")
	}
}

func TestURIToPathRejectsUnparseable(tt *testing.T) {
	if _, err := uriToPath(lsp.DocumentURI("://%zz")); err == nil {
		tt.Fatal("expected an error for an unparseable URI")
	}
}

func TestCancelFlag(tt *testing.T) {
	var c cancelFlag
	if c.isSet() {
		tt.Fatal("zero-value cancelFlag must start unset")
	}
	c.set()
	if !c.isSet() {
		tt.Fatal("isSet() == false after set()")
	}
}

func TestSeverityToLSP(tt *testing.T) {
	cases := []struct {
		in   types.Severity
		want lsp.DiagnosticSeverity
	}{
		{types.Error, lsp.Error},
		{types.Warning, lsp.Warning},
		{types.Information, lsp.Information},
		{types.Hint, lsp.Hint},
	}
	for _, c := range cases {
		if got := severityToLSP(c.in); got != c.want {
			tt.Errorf("severityToLSP(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
