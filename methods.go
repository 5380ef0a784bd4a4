package lsp

import (
	"encoding/json"
	"sort"
)

// Request method names.
const (
	MethodInitialize                      = "initialize"
	MethodShutdown                        = "shutdown"
	MethodWindowShowMessageRequest        = "window/showMessageRequest"
	MethodClientRegisterCapability        = "client/registerCapability"
	MethodClientUnregisterCapability      = "client/unregisterCapability"
	MethodWorkspaceSymbol                 = "workspace/symbol"
	MethodWorkspaceExecuteCommand         = "workspace/executeCommand"
	MethodWorkspaceApplyEdit              = "workspace/applyEdit"
	MethodTextDocumentWillSaveWaitUntil   = "textDocument/willSaveWaitUntil"
	MethodTextDocumentCompletion          = "textDocument/completion"
	MethodCompletionItemResolve           = "completionItem/resolve"
	MethodTextDocumentHover               = "textDocument/hover"
	MethodTextDocumentSignatureHelp       = "textDocument/signatureHelp"
	MethodTextDocumentDeclaration         = "textDocument/declaration"
	MethodTextDocumentDefinition          = "textDocument/definition"
	MethodTextDocumentTypeDefinition      = "textDocument/typeDefinition"
	MethodTextDocumentImplementation      = "textDocument/implementation"
	MethodTextDocumentReferences          = "textDocument/references"
	MethodTextDocumentDocumentHighlight   = "textDocument/documentHighlight"
	MethodTextDocumentDocumentSymbol      = "textDocument/documentSymbol"
	MethodTextDocumentCodeAction          = "textDocument/codeAction"
	MethodTextDocumentCodeLens            = "textDocument/codeLens"
	MethodCodeLensResolve                 = "codeLens/resolve"
	MethodTextDocumentDocumentLink        = "textDocument/documentLink"
	MethodDocumentLinkResolve             = "documentLink/resolve"
	MethodTextDocumentFormatting          = "textDocument/formatting"
	MethodTextDocumentRangeFormatting     = "textDocument/rangeFormatting"
	MethodTextDocumentOnTypeFormatting    = "textDocument/onTypeFormatting"
	MethodTextDocumentRename              = "textDocument/rename"
	MethodTextDocumentPrepareRename       = "textDocument/prepareRename"
	MethodTextDocumentOnTypeRename        = "textDocument/onTypeRename"
	MethodTextDocumentFoldingRange        = "textDocument/foldingRange"
	MethodTextDocumentSelectionRange      = "textDocument/selectionRange"
	MethodTextDocumentSemanticTokensFull  = "textDocument/semanticTokens/full"
	MethodTextDocumentSemanticTokensDelta = "textDocument/semanticTokens/full/delta"
	MethodTextDocumentSemanticTokensRange = "textDocument/semanticTokens/range"
)

// Notification method names.
const (
	MethodCancelRequest                      = "$/cancelRequest"
	MethodInitialized                        = "initialized"
	MethodExit                               = "exit"
	MethodWindowShowMessage                  = "window/showMessage"
	MethodWindowLogMessage                   = "window/logMessage"
	MethodTelemetryEvent                     = "telemetry/event"
	MethodTextDocumentDidOpen                = "textDocument/didOpen"
	MethodTextDocumentDidChange              = "textDocument/didChange"
	MethodTextDocumentWillSave               = "textDocument/willSave"
	MethodTextDocumentDidSave                = "textDocument/didSave"
	MethodTextDocumentDidClose               = "textDocument/didClose"
	MethodTextDocumentPublishDiagnostics     = "textDocument/publishDiagnostics"
	MethodTextDocumentSemanticHighlighting   = "textDocument/semanticHighlighting"
	MethodNotebookDocumentDidOpen            = "notebookDocument/didOpen"
	MethodNotebookDocumentDidChange          = "notebookDocument/didChange"
	MethodNotebookDocumentDidSave            = "notebookDocument/didSave"
	MethodNotebookDocumentDidClose           = "notebookDocument/didClose"
	MethodWorkspaceDidChangeConfiguration    = "workspace/didChangeConfiguration"
	MethodWorkspaceDidChangeWatchedFiles     = "workspace/didChangeWatchedFiles"
	MethodWorkspaceDidChangeWorkspaceFolders = "workspace/didChangeWorkspaceFolders"
)

// MethodInfo binds a method name to its parameter and result types.
// NewParams and NewResult allocate fresh values for decoding into;
// either is nil when the method has no params or, for notifications,
// no result at all.
type MethodInfo struct {
	Method       string
	Notification bool
	NewParams    func() interface{}
	NewResult    func() interface{}
}

var methods = map[string]MethodInfo{}

func request(method string, newParams, newResult func() interface{}) {
	methods[method] = MethodInfo{Method: method, NewParams: newParams, NewResult: newResult}
}

func notification(method string, newParams func() interface{}) {
	methods[method] = MethodInfo{Method: method, Notification: true, NewParams: newParams}
}

func init() {
	request(MethodInitialize,
		func() interface{} { return &InitializeParams{} },
		func() interface{} { return &InitializeResult{} })
	request(MethodShutdown, nil, nil)
	request(MethodWindowShowMessageRequest,
		func() interface{} { return &ShowMessageRequestParams{} },
		func() interface{} { return &MessageActionItem{} })
	request(MethodClientRegisterCapability,
		func() interface{} { return &RegistrationParams{} }, nil)
	request(MethodClientUnregisterCapability,
		func() interface{} { return &UnregistrationParams{} }, nil)
	request(MethodWorkspaceSymbol,
		func() interface{} { return &WorkspaceSymbolParams{} },
		func() interface{} { return &[]SymbolInformation{} })
	request(MethodWorkspaceExecuteCommand,
		func() interface{} { return &ExecuteCommandParams{} },
		func() interface{} { return &json.RawMessage{} })
	request(MethodWorkspaceApplyEdit,
		func() interface{} { return &ApplyWorkspaceEditParams{} },
		func() interface{} { return &ApplyWorkspaceEditResponse{} })
	request(MethodTextDocumentWillSaveWaitUntil,
		func() interface{} { return &WillSaveTextDocumentParams{} },
		func() interface{} { return &[]TextEdit{} })
	request(MethodTextDocumentCompletion,
		func() interface{} { return &CompletionParams{} },
		func() interface{} { return &CompletionResponse{} })
	request(MethodCompletionItemResolve,
		func() interface{} { return &CompletionItem{} },
		func() interface{} { return &CompletionItem{} })
	request(MethodTextDocumentHover,
		func() interface{} { return &HoverParams{} },
		func() interface{} { return &Hover{} })
	request(MethodTextDocumentSignatureHelp,
		func() interface{} { return &SignatureHelpParams{} },
		func() interface{} { return &SignatureHelp{} })
	request(MethodTextDocumentDeclaration,
		func() interface{} { return &TextDocumentPositionParams{} },
		func() interface{} { return &GotoDeclarationResponse{} })
	request(MethodTextDocumentDefinition,
		func() interface{} { return &TextDocumentPositionParams{} },
		func() interface{} { return &GotoDefinitionResponse{} })
	request(MethodTextDocumentTypeDefinition,
		func() interface{} { return &TextDocumentPositionParams{} },
		func() interface{} { return &GotoTypeDefinitionResponse{} })
	request(MethodTextDocumentImplementation,
		func() interface{} { return &TextDocumentPositionParams{} },
		func() interface{} { return &GotoImplementationResponse{} })
	request(MethodTextDocumentReferences,
		func() interface{} { return &ReferenceParams{} },
		func() interface{} { return &[]Location{} })
	request(MethodTextDocumentDocumentHighlight,
		func() interface{} { return &TextDocumentPositionParams{} },
		func() interface{} { return &[]DocumentHighlight{} })
	request(MethodTextDocumentDocumentSymbol,
		func() interface{} { return &DocumentSymbolParams{} },
		func() interface{} { return &DocumentSymbolResponse{} })
	request(MethodTextDocumentCodeAction,
		func() interface{} { return &CodeActionParams{} },
		func() interface{} { return &CodeActionResponse{} })
	request(MethodTextDocumentCodeLens,
		func() interface{} { return &CodeLensParams{} },
		func() interface{} { return &[]CodeLens{} })
	request(MethodCodeLensResolve,
		func() interface{} { return &CodeLens{} },
		func() interface{} { return &CodeLens{} })
	request(MethodTextDocumentDocumentLink,
		func() interface{} { return &DocumentLinkParams{} },
		func() interface{} { return &[]DocumentLink{} })
	request(MethodDocumentLinkResolve,
		func() interface{} { return &DocumentLink{} },
		func() interface{} { return &DocumentLink{} })
	request(MethodTextDocumentFormatting,
		func() interface{} { return &DocumentFormattingParams{} },
		func() interface{} { return &[]TextEdit{} })
	request(MethodTextDocumentRangeFormatting,
		func() interface{} { return &DocumentRangeFormattingParams{} },
		func() interface{} { return &[]TextEdit{} })
	request(MethodTextDocumentOnTypeFormatting,
		func() interface{} { return &DocumentOnTypeFormattingParams{} },
		func() interface{} { return &[]TextEdit{} })
	request(MethodTextDocumentRename,
		func() interface{} { return &RenameParams{} },
		func() interface{} { return &WorkspaceEdit{} })
	request(MethodTextDocumentPrepareRename,
		func() interface{} { return &TextDocumentPositionParams{} },
		func() interface{} { return &PrepareRenameResponse{} })
	request(MethodTextDocumentOnTypeRename,
		func() interface{} { return &OnTypeRenameParams{} },
		func() interface{} { return &OnTypeRenameRanges{} })
	request(MethodTextDocumentFoldingRange,
		func() interface{} { return &FoldingRangeParams{} },
		func() interface{} { return &[]FoldingRange{} })
	request(MethodTextDocumentSelectionRange,
		func() interface{} { return &SelectionRangeParams{} },
		func() interface{} { return &[]SelectionRange{} })
	request(MethodTextDocumentSemanticTokensFull,
		func() interface{} { return &SemanticTokensParams{} },
		func() interface{} { return &SemanticTokens{} })
	request(MethodTextDocumentSemanticTokensDelta,
		func() interface{} { return &SemanticTokensDeltaParams{} },
		func() interface{} { return &SemanticTokensDelta{} })
	request(MethodTextDocumentSemanticTokensRange,
		func() interface{} { return &SemanticTokensRangeParams{} },
		func() interface{} { return &SemanticTokens{} })

	notification(MethodCancelRequest, func() interface{} { return &CancelParams{} })
	notification(MethodInitialized, func() interface{} { return &InitializedParams{} })
	notification(MethodExit, nil)
	notification(MethodWindowShowMessage, func() interface{} { return &ShowMessageParams{} })
	notification(MethodWindowLogMessage, func() interface{} { return &LogMessageParams{} })
	notification(MethodTelemetryEvent, func() interface{} { return &json.RawMessage{} })
	notification(MethodTextDocumentDidOpen, func() interface{} { return &DidOpenTextDocumentParams{} })
	notification(MethodTextDocumentDidChange, func() interface{} { return &DidChangeTextDocumentParams{} })
	notification(MethodTextDocumentWillSave, func() interface{} { return &WillSaveTextDocumentParams{} })
	notification(MethodTextDocumentDidSave, func() interface{} { return &DidSaveTextDocumentParams{} })
	notification(MethodTextDocumentDidClose, func() interface{} { return &DidCloseTextDocumentParams{} })
	notification(MethodTextDocumentPublishDiagnostics, func() interface{} { return &PublishDiagnosticsParams{} })
	notification(MethodTextDocumentSemanticHighlighting, func() interface{} { return &SemanticHighlightingParams{} })
	notification(MethodNotebookDocumentDidOpen, func() interface{} { return &DidOpenNotebookDocumentParams{} })
	notification(MethodNotebookDocumentDidChange, func() interface{} { return &DidChangeNotebookDocumentParams{} })
	notification(MethodNotebookDocumentDidSave, func() interface{} { return &DidSaveNotebookDocumentParams{} })
	notification(MethodNotebookDocumentDidClose, func() interface{} { return &DidCloseNotebookDocumentParams{} })
	notification(MethodWorkspaceDidChangeConfiguration, func() interface{} { return &DidChangeConfigurationParams{} })
	notification(MethodWorkspaceDidChangeWatchedFiles, func() interface{} { return &DidChangeWatchedFilesParams{} })
	notification(MethodWorkspaceDidChangeWorkspaceFolders, func() interface{} { return &DidChangeWorkspaceFoldersParams{} })
}

// MethodInfoFor returns the registry entry for method.
func MethodInfoFor(method string) (MethodInfo, bool) {
	info, ok := methods[method]
	return info, ok
}

// Methods returns every registered method, sorted by name.
func Methods() []MethodInfo {
	out := make([]MethodInfo, 0, len(methods))
	for _, info := range methods {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out
}

// DecodeParams decodes raw into the parameter type registered for
// method. It returns nil for methods without parameters and
// *UnknownMethodError for methods the registry does not know.
func DecodeParams(method string, raw json.RawMessage) (interface{}, error) {
	info, ok := methods[method]
	if !ok {
		return nil, &UnknownMethodError{Method: method}
	}
	if info.NewParams == nil || len(raw) == 0 || isJSONNull(raw) {
		return nil, nil
	}
	params := info.NewParams()
	if err := json.Unmarshal(raw, params); err != nil {
		return nil, err
	}
	return params, nil
}

// DecodeResult decodes a response body for the request named by method.
func DecodeResult(method string, raw json.RawMessage) (interface{}, error) {
	info, ok := methods[method]
	if !ok {
		return nil, &UnknownMethodError{Method: method}
	}
	if info.NewResult == nil || len(raw) == 0 || isJSONNull(raw) {
		return nil, nil
	}
	result := info.NewResult()
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// JSON-RPC 2.0 error codes used by the protocol.
const (
	CodeParseError           = -32700
	CodeInvalidRequest       = -32600
	CodeMethodNotFound       = -32601
	CodeInvalidParams        = -32602
	CodeInternalError        = -32603
	CodeServerNotInitialized = -32002
	CodeUnknownError         = -32001
	CodeContentModified      = -32801
	CodeRequestCancelled     = -32800
)
