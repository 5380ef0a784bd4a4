package lsp

import "encoding/json"

type RenameParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	NewName string `json:"newName"`
}

type RenameOptions struct {
	WorkDoneProgressOptions
	PrepareProvider bool `json:"prepareProvider,omitempty"`
}

type RenameClientCapabilities struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
	PrepareSupport      bool `json:"prepareSupport,omitempty"`
}

// RangeWithPlaceholder is the prepare-rename result carrying the text
// to pre-fill the rename input with.
type RangeWithPlaceholder struct {
	Range       Range  `json:"range"`
	Placeholder string `json:"placeholder"`
}

// DefaultRenameBehavior tells the client to compute the rename range
// itself.
type DefaultRenameBehavior struct {
	DefaultBehavior bool `json:"defaultBehavior"`
}

// PrepareRenameResponse is a bare range, a range with placeholder, or
// the default-behavior marker, tried in that order.
type PrepareRenameResponse struct {
	Range           *Range
	Placeholder     *RangeWithPlaceholder
	DefaultBehavior *DefaultRenameBehavior
}

func (r PrepareRenameResponse) MarshalJSON() ([]byte, error) {
	if r.Range != nil {
		return json.Marshal(*r.Range)
	}
	if r.Placeholder != nil {
		return json.Marshal(*r.Placeholder)
	}
	if r.DefaultBehavior != nil {
		return json.Marshal(*r.DefaultBehavior)
	}
	return []byte("null"), nil
}

func (r *PrepareRenameResponse) UnmarshalJSON(data []byte) error {
	*r = PrepareRenameResponse{}
	if jsonKind(data) != '{' {
		return &NoVariantMatchedError{Type: "PrepareRenameResponse"}
	}
	rng := new(Range)
	if err := strictUnmarshal(data, rng); err == nil {
		r.Range = rng
		return nil
	}
	ph := new(RangeWithPlaceholder)
	if err := strictUnmarshal(data, ph); err == nil {
		r.Placeholder = ph
		return nil
	}
	def := new(DefaultRenameBehavior)
	if err := strictUnmarshal(data, def); err == nil {
		r.DefaultBehavior = def
		return nil
	}
	return &NoVariantMatchedError{Type: "PrepareRenameResponse"}
}
