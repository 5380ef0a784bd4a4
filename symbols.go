package lsp

import "encoding/json"

// SymbolKind is the kind of a document or workspace symbol.
type SymbolKind int

const (
	SymbolKindFile          SymbolKind = 1
	SymbolKindModule        SymbolKind = 2
	SymbolKindNamespace     SymbolKind = 3
	SymbolKindPackage       SymbolKind = 4
	SymbolKindClass         SymbolKind = 5
	SymbolKindMethod        SymbolKind = 6
	SymbolKindProperty      SymbolKind = 7
	SymbolKindField         SymbolKind = 8
	SymbolKindConstructor   SymbolKind = 9
	SymbolKindEnum          SymbolKind = 10
	SymbolKindInterface     SymbolKind = 11
	SymbolKindFunction      SymbolKind = 12
	SymbolKindVariable      SymbolKind = 13
	SymbolKindConstant      SymbolKind = 14
	SymbolKindString        SymbolKind = 15
	SymbolKindNumber        SymbolKind = 16
	SymbolKindBoolean       SymbolKind = 17
	SymbolKindArray         SymbolKind = 18
	SymbolKindObject        SymbolKind = 19
	SymbolKindKey           SymbolKind = 20
	SymbolKindNull          SymbolKind = 21
	SymbolKindEnumMember    SymbolKind = 22
	SymbolKindStruct        SymbolKind = 23
	SymbolKindEvent         SymbolKind = 24
	SymbolKindOperator      SymbolKind = 25
	SymbolKindTypeParameter SymbolKind = 26

	// SymbolKindUnknown stands in for kinds introduced by protocol
	// versions newer than this package. Unlike the other numeric enums,
	// decoding an out-of-range symbol kind does not fail.
	SymbolKindUnknown SymbolKind = 255
)

func (k *SymbolKind) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(SymbolKindFile) || v > int(SymbolKindTypeParameter) {
		*k = SymbolKindUnknown
		return nil
	}
	*k = SymbolKind(v)
	return nil
}

// SymbolTag adds extra rendering hints to a symbol.
type SymbolTag int

const (
	SymbolTagDeprecated SymbolTag = 1
)

func (t *SymbolTag) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v != int(SymbolTagDeprecated) {
		return &InvalidEnumValueError{Type: "SymbolTag", Value: v, Expected: "1"}
	}
	*t = SymbolTag(v)
	return nil
}

type DocumentSymbolParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentSymbol is a hierarchical symbol: Range spans the whole
// definition, SelectionRange the part to reveal (e.g. the name), and
// SelectionRange must be contained in Range.
type DocumentSymbol struct {
	Name           string           `json:"name"`
	Detail         string           `json:"detail,omitempty"`
	Kind           SymbolKind       `json:"kind"`
	Tags           []SymbolTag      `json:"tags,omitempty"`
	Deprecated     bool             `json:"deprecated,omitempty"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// SymbolInformation is a flat symbol with a location.
type SymbolInformation struct {
	Name          string      `json:"name"`
	Kind          SymbolKind  `json:"kind"`
	Tags          []SymbolTag `json:"tags,omitempty"`
	Deprecated    bool        `json:"deprecated,omitempty"`
	Location      Location    `json:"location"`
	ContainerName string      `json:"containerName,omitempty"`
}

// DocumentSymbolResponse is either a hierarchical or a flat symbol
// list. The hierarchical variant is tried first; the shapes are told
// apart by the keys only one of them has (selectionRange versus
// location).
type DocumentSymbolResponse struct {
	Nested *[]DocumentSymbol
	Flat   *[]SymbolInformation
}

func (r DocumentSymbolResponse) MarshalJSON() ([]byte, error) {
	if r.Nested != nil {
		return json.Marshal(*r.Nested)
	}
	if r.Flat != nil {
		return json.Marshal(*r.Flat)
	}
	return []byte("null"), nil
}

func (r *DocumentSymbolResponse) UnmarshalJSON(data []byte) error {
	*r = DocumentSymbolResponse{}
	if jsonKind(data) != '[' {
		return &NoVariantMatchedError{Type: "DocumentSymbolResponse"}
	}
	nested := new([]DocumentSymbol)
	if err := strictUnmarshal(data, nested); err == nil {
		r.Nested = nested
		return nil
	}
	flat := new([]SymbolInformation)
	if err := strictUnmarshal(data, flat); err == nil {
		r.Flat = flat
		return nil
	}
	return &NoVariantMatchedError{Type: "DocumentSymbolResponse"}
}

type WorkspaceSymbolParams struct {
	WorkDoneProgressParams
	PartialResultParams
	Query string `json:"query"`
}

type SymbolKindCapability struct {
	ValueSet []SymbolKind `json:"valueSet,omitempty"`
}

type DocumentSymbolClientCapabilities struct {
	DynamicRegistration               bool                  `json:"dynamicRegistration,omitempty"`
	SymbolKind                        *SymbolKindCapability `json:"symbolKind,omitempty"`
	HierarchicalDocumentSymbolSupport bool                  `json:"hierarchicalDocumentSymbolSupport,omitempty"`
}

type WorkspaceSymbolClientCapabilities struct {
	DynamicRegistration bool                  `json:"dynamicRegistration,omitempty"`
	SymbolKind          *SymbolKindCapability `json:"symbolKind,omitempty"`
}

type DocumentSymbolOptions struct {
	WorkDoneProgressOptions
}

type WorkspaceSymbolOptions struct {
	WorkDoneProgressOptions
}
