package lsp

import "encoding/json"

// Capabilities a server may announce either as a bare boolean or as an
// options object.
type (
	HoverProviderCapability                   = BoolOr[HoverOptions]
	DeclarationProviderCapability             = BoolOr[DeclarationOptions]
	DefinitionProviderCapability              = BoolOr[DefinitionOptions]
	TypeDefinitionProviderCapability          = BoolOr[TypeDefinitionOptions]
	ImplementationProviderCapability          = BoolOr[ImplementationOptions]
	ReferencesProviderCapability              = BoolOr[ReferenceOptions]
	DocumentHighlightProviderCapability       = BoolOr[DocumentHighlightOptions]
	DocumentSymbolProviderCapability          = BoolOr[DocumentSymbolOptions]
	WorkspaceSymbolProviderCapability         = BoolOr[WorkspaceSymbolOptions]
	CodeActionProviderCapability              = BoolOr[CodeActionOptions]
	DocumentFormattingProviderCapability      = BoolOr[DocumentFormattingOptions]
	DocumentRangeFormattingProviderCapability = BoolOr[DocumentRangeFormattingOptions]
	RenameProviderCapability                  = BoolOr[RenameOptions]
	FoldingRangeProviderCapability            = BoolOr[FoldingRangeOptions]
	SelectionRangeProviderCapability          = BoolOr[SelectionRangeOptions]
	SemanticTokensProviderCapability          = BoolOr[SemanticTokensOptions]
)

type DeclarationOptions struct {
	WorkDoneProgressOptions
}

type DefinitionOptions struct {
	WorkDoneProgressOptions
}

type TypeDefinitionOptions struct {
	WorkDoneProgressOptions
}

type ImplementationOptions struct {
	WorkDoneProgressOptions
}

type ReferenceOptions struct {
	WorkDoneProgressOptions
}

type DocumentHighlightOptions struct {
	WorkDoneProgressOptions
}

type ServerWorkspaceCapabilities struct {
	WorkspaceFolders *WorkspaceFoldersServerCapabilities `json:"workspaceFolders,omitempty"`
}

// ServerCapabilities is what a server announces in the initialize
// result.
type ServerCapabilities struct {
	TextDocumentSync                 *TextDocumentSyncCapability                `json:"textDocumentSync,omitempty"`
	NotebookDocumentSync             *NotebookDocumentSyncServerCapabilities    `json:"notebookDocumentSync,omitempty"`
	CompletionProvider               *CompletionOptions                         `json:"completionProvider,omitempty"`
	HoverProvider                    *HoverProviderCapability                   `json:"hoverProvider,omitempty"`
	SignatureHelpProvider            *SignatureHelpOptions                      `json:"signatureHelpProvider,omitempty"`
	DeclarationProvider              *DeclarationProviderCapability             `json:"declarationProvider,omitempty"`
	DefinitionProvider               *DefinitionProviderCapability              `json:"definitionProvider,omitempty"`
	TypeDefinitionProvider           *TypeDefinitionProviderCapability          `json:"typeDefinitionProvider,omitempty"`
	ImplementationProvider           *ImplementationProviderCapability          `json:"implementationProvider,omitempty"`
	ReferencesProvider               *ReferencesProviderCapability              `json:"referencesProvider,omitempty"`
	DocumentHighlightProvider        *DocumentHighlightProviderCapability       `json:"documentHighlightProvider,omitempty"`
	DocumentSymbolProvider           *DocumentSymbolProviderCapability          `json:"documentSymbolProvider,omitempty"`
	WorkspaceSymbolProvider          *WorkspaceSymbolProviderCapability         `json:"workspaceSymbolProvider,omitempty"`
	CodeActionProvider               *CodeActionProviderCapability              `json:"codeActionProvider,omitempty"`
	CodeLensProvider                 *CodeLensOptions                           `json:"codeLensProvider,omitempty"`
	DocumentLinkProvider             *DocumentLinkOptions                       `json:"documentLinkProvider,omitempty"`
	DocumentFormattingProvider       *DocumentFormattingProviderCapability      `json:"documentFormattingProvider,omitempty"`
	DocumentRangeFormattingProvider  *DocumentRangeFormattingProviderCapability `json:"documentRangeFormattingProvider,omitempty"`
	DocumentOnTypeFormattingProvider *DocumentOnTypeFormattingOptions           `json:"documentOnTypeFormattingProvider,omitempty"`
	RenameProvider                   *RenameProviderCapability                  `json:"renameProvider,omitempty"`
	FoldingRangeProvider             *FoldingRangeProviderCapability            `json:"foldingRangeProvider,omitempty"`
	SelectionRangeProvider           *SelectionRangeProviderCapability          `json:"selectionRangeProvider,omitempty"`
	OnTypeRenameProvider             *OnTypeRenameServerCapabilities            `json:"onTypeRenameProvider,omitempty"`
	SemanticTokensProvider           *SemanticTokensProviderCapability          `json:"semanticTokensProvider,omitempty"`
	ExecuteCommandProvider           *ExecuteCommandOptions                     `json:"executeCommandProvider,omitempty"`
	SemanticHighlighting             *SemanticHighlightingServerCapability      `json:"semanticHighlighting,omitempty"`
	Workspace                        *ServerWorkspaceCapabilities               `json:"workspace,omitempty"`
	Experimental                     json.RawMessage                            `json:"experimental,omitempty"`
}
