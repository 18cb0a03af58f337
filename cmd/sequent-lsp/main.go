// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sequent/internal/lsp"
)

const lsName = "sequent" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	var (
		verbosity int
		logFile   string
	)

	cmd := &cobra.Command{
		Use:           "sequent-lsp",
		Short:         "Language server for sequent files over stdio",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbosity, path)
			return run()
		},
	}
	cmd.Flags().IntVar(&verbosity, "verbosity", 1, "log verbosity (0 = warnings, 1 = info, 2 = debug)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	if err := cmd.Execute(); err != nil {
		commonlog.GetLogger("sequent.lsp").Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}

func run() error {
	log := commonlog.GetLogger("sequent.lsp")
	sequentHandler := lsp.NewSequentHandler(version)

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     sequentHandler.Initialize,
		Initialized:                    sequentHandler.Initialized,
		Shutdown:                       sequentHandler.Shutdown,
		SetTrace:                       sequentHandler.SetTrace,
		TextDocumentDidOpen:            sequentHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           sequentHandler.TextDocumentDidClose,
		TextDocumentDidChange:          sequentHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: sequentHandler.TextDocumentSemanticTokensFull,
		TextDocumentDocumentSymbol:     sequentHandler.TextDocumentDocumentSymbol,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)

	// Editors talk to the server over standard input/output
	return s.RunStdio()
}
