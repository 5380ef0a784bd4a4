package lsp

import "encoding/json"

type SignatureHelpParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

type SignatureHelp struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature *int                   `json:"activeSignature,omitempty"`
	ActiveParameter *int                   `json:"activeParameter,omitempty"`
}

type SignatureInformation struct {
	Label         string                 `json:"label"`
	Documentation *Documentation         `json:"documentation,omitempty"`
	Parameters    []ParameterInformation `json:"parameters,omitempty"`
}

// ParameterLabel is either a substring of the signature label or a
// half-open [start, end) offset pair into it. The string variant is
// tried first.
type ParameterLabel struct {
	Str     *string
	Offsets *[2]int
}

func (l ParameterLabel) MarshalJSON() ([]byte, error) {
	if l.Str != nil {
		return json.Marshal(*l.Str)
	}
	if l.Offsets != nil {
		return json.Marshal(*l.Offsets)
	}
	return []byte("null"), nil
}

func (l *ParameterLabel) UnmarshalJSON(data []byte) error {
	*l = ParameterLabel{}
	switch jsonKind(data) {
	case '"':
		l.Str = new(string)
		return json.Unmarshal(data, l.Str)
	case '[':
		l.Offsets = new([2]int)
		return json.Unmarshal(data, l.Offsets)
	}
	return &NoVariantMatchedError{Type: "ParameterLabel"}
}

type ParameterInformation struct {
	Label         ParameterLabel `json:"label"`
	Documentation *Documentation `json:"documentation,omitempty"`
}

type SignatureHelpOptions struct {
	WorkDoneProgressOptions
	TriggerCharacters   []string `json:"triggerCharacters,omitempty"`
	RetriggerCharacters []string `json:"retriggerCharacters,omitempty"`
}

type SignatureInformationCapability struct {
	DocumentationFormat  []MarkupKind                    `json:"documentationFormat,omitempty"`
	ParameterInformation *ParameterInformationCapability `json:"parameterInformation,omitempty"`
}

type ParameterInformationCapability struct {
	LabelOffsetSupport bool `json:"labelOffsetSupport,omitempty"`
}

type SignatureHelpClientCapabilities struct {
	DynamicRegistration  bool                            `json:"dynamicRegistration,omitempty"`
	SignatureInformation *SignatureInformationCapability `json:"signatureInformation,omitempty"`
}
