package lsp

import "encoding/json"

// DynamicRegistrationCapability is the common shape of capabilities
// that only announce dynamic-registration support.
type DynamicRegistrationCapability struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
}

type WorkspaceClientCapabilities struct {
	ApplyEdit              bool                               `json:"applyEdit,omitempty"`
	WorkspaceEdit          *WorkspaceEditClientCapabilities   `json:"workspaceEdit,omitempty"`
	DidChangeConfiguration *DynamicRegistrationCapability     `json:"didChangeConfiguration,omitempty"`
	DidChangeWatchedFiles  *DynamicRegistrationCapability     `json:"didChangeWatchedFiles,omitempty"`
	Symbol                 *WorkspaceSymbolClientCapabilities `json:"symbol,omitempty"`
	ExecuteCommand         *DynamicRegistrationCapability     `json:"executeCommand,omitempty"`
	WorkspaceFolders       bool                               `json:"workspaceFolders,omitempty"`
	Configuration          bool                               `json:"configuration,omitempty"`
}

type TextDocumentClientCapabilities struct {
	Synchronization    *TextDocumentSynchronizationClientCapabilities `json:"synchronization,omitempty"`
	Completion         *CompletionClientCapabilities                  `json:"completion,omitempty"`
	Hover              *HoverClientCapabilities                       `json:"hover,omitempty"`
	SignatureHelp      *SignatureHelpClientCapabilities               `json:"signatureHelp,omitempty"`
	References         *DynamicRegistrationCapability                 `json:"references,omitempty"`
	DocumentHighlight  *DynamicRegistrationCapability                 `json:"documentHighlight,omitempty"`
	DocumentSymbol     *DocumentSymbolClientCapabilities              `json:"documentSymbol,omitempty"`
	Formatting         *DocumentFormattingClientCapabilities          `json:"formatting,omitempty"`
	RangeFormatting    *DocumentFormattingClientCapabilities          `json:"rangeFormatting,omitempty"`
	OnTypeFormatting   *DocumentFormattingClientCapabilities          `json:"onTypeFormatting,omitempty"`
	Declaration        *GotoCapability                                `json:"declaration,omitempty"`
	Definition         *GotoCapability                                `json:"definition,omitempty"`
	TypeDefinition     *GotoCapability                                `json:"typeDefinition,omitempty"`
	Implementation     *GotoCapability                                `json:"implementation,omitempty"`
	CodeAction         *CodeActionClientCapabilities                  `json:"codeAction,omitempty"`
	CodeLens           *CodeLensClientCapabilities                    `json:"codeLens,omitempty"`
	DocumentLink       *DocumentLinkClientCapabilities                `json:"documentLink,omitempty"`
	Rename             *RenameClientCapabilities                      `json:"rename,omitempty"`
	PublishDiagnostics *PublishDiagnosticsClientCapabilities          `json:"publishDiagnostics,omitempty"`
	FoldingRange       *FoldingRangeClientCapabilities                `json:"foldingRange,omitempty"`
	SelectionRange     *SelectionRangeClientCapabilities              `json:"selectionRange,omitempty"`
	OnTypeRename       *OnTypeRenameClientCapabilities                `json:"onTypeRename,omitempty"`

	SemanticHighlightingCapabilities *SemanticHighlightingClientCapability `json:"semanticHighlightingCapabilities,omitempty"`
}

// ClientCapabilities is the capability tree a client announces in the
// initialize request. Experimental stays opaque JSON.
type ClientCapabilities struct {
	Workspace        *WorkspaceClientCapabilities        `json:"workspace,omitempty"`
	TextDocument     *TextDocumentClientCapabilities     `json:"textDocument,omitempty"`
	NotebookDocument *NotebookDocumentClientCapabilities `json:"notebookDocument,omitempty"`
	Window           *WindowClientCapabilities           `json:"window,omitempty"`
	Experimental     json.RawMessage                     `json:"experimental,omitempty"`
}
