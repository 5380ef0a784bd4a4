package lsp

import "encoding/json"

// FormattingProperty is one formatting option value: a boolean, a
// number or a string, tried in that order.
type FormattingProperty struct {
	Bool *bool
	Num  *float64
	Str  *string
}

func (p FormattingProperty) MarshalJSON() ([]byte, error) {
	if p.Bool != nil {
		return json.Marshal(*p.Bool)
	}
	if p.Num != nil {
		return json.Marshal(*p.Num)
	}
	if p.Str != nil {
		return json.Marshal(*p.Str)
	}
	return []byte("null"), nil
}

func (p *FormattingProperty) UnmarshalJSON(data []byte) error {
	*p = FormattingProperty{}
	switch jsonKind(data) {
	case 't', 'f':
		p.Bool = new(bool)
		return json.Unmarshal(data, p.Bool)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.Num = new(float64)
		return json.Unmarshal(data, p.Num)
	case '"':
		p.Str = new(string)
		return json.Unmarshal(data, p.Str)
	}
	return &NoVariantMatchedError{Type: "FormattingProperty"}
}

// FormattingOptions carries the well-known tabSize/insertSpaces pair
// plus any further client-defined key/value properties.
type FormattingOptions map[string]FormattingProperty

type DocumentFormattingParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Options      FormattingOptions      `json:"options"`
}

type DocumentRangeFormattingParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Options      FormattingOptions      `json:"options"`
}

type DocumentOnTypeFormattingParams struct {
	TextDocumentPositionParams
	Ch      string            `json:"ch"`
	Options FormattingOptions `json:"options"`
}

type DocumentFormattingOptions struct {
	WorkDoneProgressOptions
}

type DocumentRangeFormattingOptions struct {
	WorkDoneProgressOptions
}

type DocumentOnTypeFormattingOptions struct {
	FirstTriggerCharacter string   `json:"firstTriggerCharacter"`
	MoreTriggerCharacter  []string `json:"moreTriggerCharacter,omitempty"`
}

type DocumentFormattingClientCapabilities struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
}
