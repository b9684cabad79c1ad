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

package types

import "fmt"

// Severity classifies a Diagnostic, mirroring the LSP DiagnosticSeverity
// levels (spec.md §7).
type Severity uint8

const (
	Error Severity = iota
	Warning
	Information
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Information:
		return "info"
	case Hint:
		return "hint"
	default:
		return "?"
	}
}

// Diagnostic is a single elaboration error or warning, carrying enough
// position information to translate into an LSP Diagnostic without the
// types package importing an LSP library itself (spec.md §7). Line and
// Column are zero-based, matching LSP's Position convention.
type Diagnostic struct {
	Severity    Severity
	Line        int
	Column      int
	EndLine     int
	EndColumn   int
	Message     string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line+1, d.Column+1, d.Severity, d.Message)
}

// Errorf builds an Error-severity Diagnostic at a point position (EndLine/
// EndColumn equal to Line/Column), the common case for a single-token fault.
func Errorf(line, col int, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Line:     line, Column: col,
		EndLine: line, EndColumn: col,
		Message: fmt.Sprintf(format, args...),
	}
}

// Warningf builds a Warning-severity Diagnostic at a point position.
func Warningf(line, col int, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Line:     line, Column: col,
		EndLine: line, EndColumn: col,
		Message: fmt.Sprintf(format, args...),
	}
}
