package lsp

import "encoding/json"

type OnTypeRenameParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// OnTypeRenameRanges is a set of ranges that rename together as the
// user types. The ranges have identical length and content and do not
// overlap.
type OnTypeRenameRanges struct {
	Ranges []Range `json:"ranges"`
	// WordPattern is a regular expression describing valid contents for
	// the ranges. When absent the client's word pattern applies.
	WordPattern string `json:"wordPattern,omitempty"`
}

type OnTypeRenameOptions struct {
	WorkDoneProgressOptions
}

type OnTypeRenameRegistrationOptions struct {
	TextDocumentRegistrationOptions
	OnTypeRenameOptions
	StaticRegistrationOptions
}

type OnTypeRenameClientCapabilities = DynamicRegistrationCapability

// OnTypeRenameServerCapabilities is either plain options or
// registration options carrying a document selector. The plain variant
// is tried first.
type OnTypeRenameServerCapabilities struct {
	Options             *OnTypeRenameOptions
	RegistrationOptions *OnTypeRenameRegistrationOptions
}

func (c OnTypeRenameServerCapabilities) MarshalJSON() ([]byte, error) {
	if c.Options != nil {
		return json.Marshal(*c.Options)
	}
	if c.RegistrationOptions != nil {
		return json.Marshal(*c.RegistrationOptions)
	}
	return []byte("null"), nil
}

func (c *OnTypeRenameServerCapabilities) UnmarshalJSON(data []byte) error {
	*c = OnTypeRenameServerCapabilities{}
	if jsonKind(data) != '{' {
		return &NoVariantMatchedError{Type: "OnTypeRenameServerCapabilities"}
	}
	opts := new(OnTypeRenameOptions)
	if err := strictUnmarshal(data, opts); err == nil {
		c.Options = opts
		return nil
	}
	reg := new(OnTypeRenameRegistrationOptions)
	if err := strictUnmarshal(data, reg); err == nil {
		c.RegistrationOptions = reg
		return nil
	}
	return &NoVariantMatchedError{Type: "OnTypeRenameServerCapabilities"}
}
