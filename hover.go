package lsp

import "encoding/json"

type HoverParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// Hover is the result of a hover request.
type Hover struct {
	Contents HoverContents `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

// LanguageString is a code block tagged with a language identifier.
type LanguageString struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// MarkedString renders either as plain markdown (the string variant) or
// as a fenced code block (the language/value variant). The string
// variant is tried first.
//
// Deprecated in the protocol in favour of MarkupContent, but still
// produced by older servers.
type MarkedString struct {
	Str  *string
	Code *LanguageString
}

func (m MarkedString) MarshalJSON() ([]byte, error) {
	if m.Str != nil {
		return json.Marshal(*m.Str)
	}
	if m.Code != nil {
		return json.Marshal(*m.Code)
	}
	return []byte("null"), nil
}

func (m *MarkedString) UnmarshalJSON(data []byte) error {
	*m = MarkedString{}
	switch jsonKind(data) {
	case '"':
		m.Str = new(string)
		return json.Unmarshal(data, m.Str)
	case '{':
		code := new(LanguageString)
		if err := strictUnmarshal(data, code); err == nil && hasKey(data, "language") {
			m.Code = code
			return nil
		}
	}
	return &NoVariantMatchedError{Type: "MarkedString"}
}

// HoverContents is one marked string, several marked strings, or markup
// content, tried in that order. The object variants do not overlap: a
// marked-string object requires a "language" key, markup content a
// "kind" key.
type HoverContents struct {
	Scalar *MarkedString
	Array  *[]MarkedString
	Markup *MarkupContent
}

func (h HoverContents) MarshalJSON() ([]byte, error) {
	if h.Scalar != nil {
		return json.Marshal(*h.Scalar)
	}
	if h.Array != nil {
		return json.Marshal(*h.Array)
	}
	if h.Markup != nil {
		return json.Marshal(*h.Markup)
	}
	return []byte("null"), nil
}

func (h *HoverContents) UnmarshalJSON(data []byte) error {
	*h = HoverContents{}
	switch jsonKind(data) {
	case '"':
		h.Scalar = &MarkedString{Str: new(string)}
		return json.Unmarshal(data, h.Scalar.Str)
	case '[':
		h.Array = new([]MarkedString)
		return json.Unmarshal(data, h.Array)
	case '{':
		// Both object shapes leave their fields optional under a plain
		// decode, so an empty object would match either; requiring the
		// one key unique to each keeps them apart and rejects {}.
		code := new(LanguageString)
		if err := strictUnmarshal(data, code); err == nil && hasKey(data, "language") {
			h.Scalar = &MarkedString{Code: code}
			return nil
		}
		markup := new(MarkupContent)
		if err := strictUnmarshal(data, markup); err == nil && hasKey(data, "kind") {
			h.Markup = markup
			return nil
		}
	}
	return &NoVariantMatchedError{Type: "HoverContents"}
}

type HoverClientCapabilities struct {
	DynamicRegistration bool         `json:"dynamicRegistration,omitempty"`
	ContentFormat       []MarkupKind `json:"contentFormat,omitempty"`
}

type HoverOptions struct {
	WorkDoneProgressOptions
}
