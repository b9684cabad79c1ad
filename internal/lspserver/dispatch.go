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
	"context"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/mslang/mslsp/internal/jobs"
)

// Handle implements jsonrpc2.Handler, demultiplexing Request and
// Notification messages (spec.md §4.7; Response messages used as a
// cancellation reverse-signal in the original are superseded here by
// jsonrpc2's own request/response correlation, which already delivers a
// server-initiated call's reply to the caller of conn.Call directly,
// leaving $/cancelRequest as this server's sole cancellation input).
func (s *Server) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	switch req.Method {
	case "initialize":
		s.handleInitialize(ctx, req)
	case "shutdown":
		s.jobs.Stop()
		conn.Reply(ctx, req.ID, nil)
	case "exit":
		conn.Close()
	case "$/cancelRequest":
		s.handleCancel(req)
	case "textDocument/didOpen":
		s.handleDidOpen(req)
	case "textDocument/didChange":
		s.handleDidChange(req)
	case "textDocument/didClose":
		s.handleDidClose(req)
	case "textDocument/completion", "textDocument/hover",
		"textDocument/definition", "textDocument/documentSymbol":
		s.spawnRequest(ctx, req)
	default:
		if !req.Notif {
			conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: "method not found: " + req.Method,
			})
		}
	}
}

// handleInitialize advertises the capabilities spec.md §6 lists:
// Incremental sync, hover, completion with resolve, definition and
// document symbols.
func (s *Server) handleInitialize(ctx context.Context, req *jsonrpc2.Request) {
	sync := lsp.TDSKIncremental
	result := lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{Kind: &sync},
			HoverProvider:    true,
			CompletionProvider: &lsp.CompletionOptions{
				ResolveProvider: true,
			},
			DefinitionProvider:     true,
			DocumentSymbolProvider: true,
		},
	}
	s.conn.Reply(ctx, req.ID, result)
}

// handleCancel sets the cancellation flag of the referenced request id
// (spec.md §4.7 "$/cancelRequest: set the flag for the referenced id").
func (s *Server) handleCancel(req *jsonrpc2.Request) {
	var params struct {
		ID jsonrpc2.ID `json:"id"`
	}
	if err := unmarshalParams(req.Params, &params); err != nil {
		s.logf("bad cancelRequest params: %v", err)
		return
	}
	s.reqsMu.Lock()
	flag := s.reqs[params.ID]
	s.reqsMu.Unlock()
	if flag != nil {
		flag.set()
	}
}

// handleDidOpen creates or replaces a virtual file, enqueues an Elaborate
// job at (0,0), and dirties downstream dependents of a prior version of
// the same path (spec.md §4.7 "didOpen").
func (s *Server) handleDidOpen(req *jsonrpc2.Request) {
	var params lsp.DidOpenTextDocumentParams
	if err := unmarshalParams(req.Params, &params); err != nil {
		s.logf("bad didOpen params: %v", err)
		return
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		s.showMessage(lsp.MTError, err.Error())
		return
	}
	var queue []jobs.Job
	s.vfs.OpenVirt(&queue, path, params.TextDocument.Text)
	s.jobs.Extend(queue)
}

// handleDidChange applies incremental edits to the file's text and
// enqueues an Elaborate job starting at the earliest touched position
// (spec.md §4.7 "didChange").
func (s *Server) handleDidChange(req *jsonrpc2.Request) {
	var params lsp.DidChangeTextDocumentParams
	if err := unmarshalParams(req.Params, &params); err != nil {
		s.logf("bad didChange params: %v", err)
		return
	}
	if len(params.ContentChanges) == 0 {
		return
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		s.showMessage(lsp.MTError, err.Error())
		return
	}
	file := s.vfs.Get(path)
	if file == nil {
		s.logf("changed nonexistent file: %s", path)
		return
	}
	start := file.ApplyChanges(params.ContentChanges)
	s.jobs.Extend([]jobs.Job{{Kind: jobs.Elaborate, Path: path, Start: start}})
}

// handleDidClose removes the file from the VFS, dirtying downstream
// dependents if the closed copy had unsaved edits (spec.md §4.7
// "didClose").
func (s *Server) handleDidClose(req *jsonrpc2.Request) {
	var params lsp.DidCloseTextDocumentParams
	if err := unmarshalParams(req.Params, &params); err != nil {
		s.logf("bad didClose params: %v", err)
		return
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		s.showMessage(lsp.MTError, err.Error())
		return
	}
	var queue []jobs.Job
	s.vfs.Close(&queue, path)
	s.jobs.Extend(queue)
}
