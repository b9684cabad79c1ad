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

// mslsp is the incremental elaboration server for MSL: an LSP driver over
// stdio (spec.md §6 "CLI").
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mslang/mslsp/internal/lspserver"
	"github.com/mslang/mslsp/internal/tinylang"
)

func usage() {
	fmt.Fprintf(os.Stderr, `mslsp is the MSL incremental elaboration server.

Usage:

	mslsp [--debug]

Speaks the Language Server Protocol over stdin/stdout. With --debug, also
writes debug-level logs to lsp.log in the current directory.
`)
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// main1 mirrors the teacher's cmd/wuffs main/main1 split: main prints a
// bare error and exits 1, main1 returns an error for main to report. The
// --debug flag is read positionally (matching the original's
// `args.next().map_or(false, |s| s == "--debug")`) rather than via
// flag.Bool, since spec.md §6 specifies it as the first CLI argument.
func main1() error {
	flag.Usage = usage

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	if args := os.Args[1:]; len(args) > 0 && args[0] == "--debug" {
		f, err := os.Create("lsp.log")
		if err != nil {
			return err
		}
		log.SetLevel(logrus.DebugLevel)
		log.SetOutput(f)
	}

	server := lspserver.NewServer(stdio{}, log, tinylang.Parser{}, tinylang.Elaborator{})
	server.Run()
	return nil
}

// stdio adapts os.Stdin/os.Stdout into a single io.ReadWriteCloser, the
// shape jsonrpc2.NewBufferedStream wants for a stdio transport (spec.md §6
// "LSP. JSON-RPC 2.0 over stdio").
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdio) Close() error {
	serr := os.Stdin.Close()
	if err := os.Stdout.Close(); err != nil {
		return err
	}
	return serr
}
