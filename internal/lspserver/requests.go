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
	"encoding/json"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
)

// requestHandler processes one spawned LSP request against a snapshot of
// the VFS, polling its cancellation flag at coarse-grained checkpoints
// (spec.md §5 "Cancellation is cooperative"). It mirrors the original's
// RequestHandler<'a>, a thin wrapper that always removes its id from
// OpenRequests on the way out (spec.md §3.6 "OpenRequests").
type requestHandler struct {
	server *Server
	id     jsonrpc2.ID
	cancel *cancelFlag
}

// spawnRequest inserts a fresh cancellation flag into the open-requests
// table before spawning the handler goroutine, so a $/cancelRequest
// arriving immediately after is never lost to a race (spec.md §4.7
// "Recognized requests are parsed into RequestType and spawned with a
// fresh cancellation flag; the id is inserted into OpenRequests before the
// worker starts").
func (s *Server) spawnRequest(ctx context.Context, req *jsonrpc2.Request) {
	flag := &cancelFlag{}
	s.reqsMu.Lock()
	s.reqs[req.ID] = flag
	s.reqsMu.Unlock()

	h := &requestHandler{server: s, id: req.ID, cancel: flag}
	method, params := req.Method, req.Params
	go h.handle(method, params)
}

// handle computes a response for one of the four recognized request
// methods. Building the actual answer (resolving a hover string, a
// completion list, a definition location, document symbols) requires HIR
// typechecking, which is out of scope (spec.md §1): each branch below
// returns the zero-value response shape between its two cancellation
// checkpoints, which is exactly how far the original's own `match req {
// _ => {} }` goes before calling finish.
func (h *requestHandler) handle(method string, rawParams *json.RawMessage) {
	if h.cancel.isSet() {
		h.finish(nil, nil)
		return
	}

	var result interface{}
	switch method {
	case "textDocument/completion":
		var params lsp.CompletionParams
		unmarshalParams(rawParams, &params)
		result = lsp.CompletionList{IsIncomplete: false, Items: []lsp.CompletionItem{}}
	case "textDocument/hover":
		var params lsp.TextDocumentPositionParams
		unmarshalParams(rawParams, &params)
		result = lsp.Hover{Contents: []lsp.MarkedString{}}
	case "textDocument/definition":
		var params lsp.TextDocumentPositionParams
		unmarshalParams(rawParams, &params)
		result = []lsp.Location{}
	case "textDocument/documentSymbol":
		var params lsp.DocumentSymbolParams
		unmarshalParams(rawParams, &params)
		result = []lsp.SymbolInformation{}
	}

	if h.cancel.isSet() {
		h.finish(nil, nil)
		return
	}
	h.finish(result, nil)
}

// finish removes id from OpenRequests and sends the response (spec.md §7
// "Cancelled requests finish with a successful empty response and remove
// their entry from OpenRequests").
func (h *requestHandler) finish(result interface{}, rpcErr *jsonrpc2.Error) {
	h.server.reqsMu.Lock()
	delete(h.server.reqs, h.id)
	h.server.reqsMu.Unlock()

	ctx := context.Background()
	if rpcErr != nil {
		h.server.conn.ReplyWithError(ctx, h.id, rpcErr)
		return
	}
	h.server.conn.Reply(ctx, h.id, result)
}
