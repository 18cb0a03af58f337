package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sequent/internal/ir"
	"sequent/internal/parser"
)

var log = commonlog.GetLogger("sequent.lsp")

// Define the set of supported semantic token types, in legend order
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"parameter",
	"variable",
	"type",
	"number",
	"string",
	"operator",
}

// Define the set of supported semantic token modifiers, in bit order
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
}

// document is the last known state of an open file.
type document struct {
	text    string
	program ir.Program[string]
	err     error
}

// SequentHandler implements the LSP server handlers for sequent files
type SequentHandler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
	version   string
}

// NewSequentHandler creates and returns a new SequentHandler instance
func NewSequentHandler(version string) *SequentHandler {
	return &SequentHandler{
		documents: make(map[protocol.DocumentUri]*document),
		version:   version,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *SequentHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
			DocumentSymbolProvider: ptrBool(true),
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "sequent",
			Version: &h.version,
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities
func (h *SequentHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *SequentHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *SequentHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened text and publishes its diagnostics
func (h *SequentHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)

	doc := h.update(params.TextDocument.URI, params.TextDocument.Text)
	publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

// TextDocumentDidChange applies the changes in order and re-parses the result
func (h *SequentHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	h.mu.RLock()
	var text string
	if doc, ok := h.documents[uri]; ok {
		text = doc.text
	}
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			start, end := offsetOf(text, c.Range.Start), offsetOf(text, c.Range.End)
			text = text[:start] + c.Text + text[max(start, end):]
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	doc := h.update(uri, text)
	publishDiagnostics(ctx, uri, doc)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *SequentHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()

	publishDiagnostics(ctx, params.TextDocument.URI, &document{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *SequentHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.document(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.text)),
	}, nil
}

// TextDocumentDocumentSymbol lists the definitions of a document
func (h *SequentHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, err := h.document(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return documentSymbols(doc.text, doc.program), nil
}

// document returns the open document for uri, reading it from disk if the
// client has not opened it.
func (h *SequentHandler) document(ctx *glsp.Context, uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	doc, ok := h.documents[uri]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc = h.update(uri, string(content))
	publishDiagnostics(ctx, uri, doc)
	return doc, nil
}

func (h *SequentHandler) update(uri protocol.DocumentUri, text string) *document {
	doc := &document{text: text}
	doc.program, doc.err = parser.ParseSource(uri, text)
	if doc.err != nil {
		log.Debugf("%s: %s", uri, doc.err)
	}

	h.mu.Lock()
	h.documents[uri] = doc
	h.mu.Unlock()

	return doc
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return "", fmt.Errorf("unsupported URI scheme %q", u.Scheme)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	diagnostics := ConvertParseError(doc.text, doc.err)
	log.Debugf("publishing %d diagnostic(s) for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
