package lsp

import "encoding/json"

// GotoDefinitionResponse is a single location, several locations, or
// several location links, tried in that order. An empty array matches
// the plain location-array variant.
type GotoDefinitionResponse struct {
	Scalar *Location
	Array  *[]Location
	Links  *[]LocationLink
}

// GotoDeclarationResponse, GotoTypeDefinitionResponse and
// GotoImplementationResponse share the definition response shape.
type (
	GotoDeclarationResponse    = GotoDefinitionResponse
	GotoTypeDefinitionResponse = GotoDefinitionResponse
	GotoImplementationResponse = GotoDefinitionResponse
)

func (r GotoDefinitionResponse) MarshalJSON() ([]byte, error) {
	if r.Scalar != nil {
		return json.Marshal(*r.Scalar)
	}
	if r.Array != nil {
		return json.Marshal(*r.Array)
	}
	if r.Links != nil {
		return json.Marshal(*r.Links)
	}
	return []byte("null"), nil
}

func (r *GotoDefinitionResponse) UnmarshalJSON(data []byte) error {
	*r = GotoDefinitionResponse{}
	switch jsonKind(data) {
	case '{':
		r.Scalar = new(Location)
		return strictUnmarshal(data, r.Scalar)
	case '[':
		locs := new([]Location)
		if err := strictUnmarshal(data, locs); err == nil {
			r.Array = locs
			return nil
		}
		links := new([]LocationLink)
		if err := strictUnmarshal(data, links); err == nil {
			r.Links = links
			return nil
		}
	}
	return &NoVariantMatchedError{Type: "GotoDefinitionResponse"}
}

type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}

type ReferenceParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
	Context ReferenceContext `json:"context"`
}

// DocumentHighlightKind distinguishes read and write accesses from
// textual matches.
type DocumentHighlightKind int

const (
	HighlightText  DocumentHighlightKind = 1
	HighlightRead  DocumentHighlightKind = 2
	HighlightWrite DocumentHighlightKind = 3
)

func (k *DocumentHighlightKind) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(HighlightText) || v > int(HighlightWrite) {
		return &InvalidEnumValueError{Type: "DocumentHighlightKind", Value: v, Expected: "1, 2 or 3"}
	}
	*k = DocumentHighlightKind(v)
	return nil
}

type DocumentHighlight struct {
	Range Range                  `json:"range"`
	Kind  *DocumentHighlightKind `json:"kind,omitempty"`
}

// GotoCapability is shared by the declaration, definition,
// typeDefinition and implementation client capabilities.
type GotoCapability struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
	LinkSupport         bool `json:"linkSupport,omitempty"`
}
