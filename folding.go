package lsp

// FoldingRangeKind is the kind of a folding range. The set is open;
// these are the predefined values.
type FoldingRangeKind string

const (
	FoldingRangeKindComment FoldingRangeKind = "comment"
	FoldingRangeKindImports FoldingRangeKind = "imports"
	FoldingRangeKindRegion  FoldingRangeKind = "region"
)

type FoldingRangeParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// FoldingRange is a foldable span. Character offsets are optional; when
// absent the fold covers the whole lines.
type FoldingRange struct {
	StartLine      int               `json:"startLine"`
	StartCharacter *int              `json:"startCharacter,omitempty"`
	EndLine        int               `json:"endLine"`
	EndCharacter   *int              `json:"endCharacter,omitempty"`
	Kind           *FoldingRangeKind `json:"kind,omitempty"`
}

type FoldingRangeOptions struct {
	WorkDoneProgressOptions
}

type FoldingRangeClientCapabilities struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
	RangeLimit          *int `json:"rangeLimit,omitempty"`
	LineFoldingOnly     bool `json:"lineFoldingOnly,omitempty"`
}
