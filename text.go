package lsp

import "encoding/json"

// TextDocumentSyncKind says how document changes are sent to a server.
type TextDocumentSyncKind int

const (
	SyncNone        TextDocumentSyncKind = 0
	SyncFull        TextDocumentSyncKind = 1
	SyncIncremental TextDocumentSyncKind = 2
)

func (k *TextDocumentSyncKind) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(SyncNone) || v > int(SyncIncremental) {
		return &InvalidEnumValueError{Type: "TextDocumentSyncKind", Value: v, Expected: "0, 1 or 2"}
	}
	*k = TextDocumentSyncKind(v)
	return nil
}

// TextDocumentSaveReason says why a save was triggered.
type TextDocumentSaveReason int

const (
	// SaveReasonManual marks a save triggered explicitly, e.g. by the
	// user or a keybinding.
	SaveReasonManual     TextDocumentSaveReason = 1
	SaveReasonAfterDelay TextDocumentSaveReason = 2
	SaveReasonFocusOut   TextDocumentSaveReason = 3
)

func (r *TextDocumentSaveReason) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(SaveReasonManual) || v > int(SaveReasonFocusOut) {
		return &InvalidEnumValueError{Type: "TextDocumentSaveReason", Value: v, Expected: "1, 2 or 3"}
	}
	*r = TextDocumentSaveReason(v)
	return nil
}

type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// TextDocumentContentChangeEvent describes one change to a document. A
// nil Range means the event carries the full new text.
type TextDocumentContentChangeEvent struct {
	Range       *Range `json:"range,omitempty"`
	RangeLength int    `json:"rangeLength,omitempty"`
	Text        string `json:"text"`
}

type WillSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Reason       TextDocumentSaveReason `json:"reason"`
}

type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Text         string                 `json:"text,omitempty"`
}

type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type SaveOptions struct {
	IncludeText bool `json:"includeText,omitempty"`
}

type TextDocumentSyncOptions struct {
	OpenClose         bool                 `json:"openClose,omitempty"`
	Change            TextDocumentSyncKind `json:"change,omitempty"`
	WillSave          bool                 `json:"willSave,omitempty"`
	WillSaveWaitUntil bool                 `json:"willSaveWaitUntil,omitempty"`
	Save              *SaveOptions         `json:"save,omitempty"`
}

// TextDocumentSyncCapability is either a bare sync kind or a full
// options object. The kind variant is tried first.
type TextDocumentSyncCapability struct {
	Kind    *TextDocumentSyncKind
	Options *TextDocumentSyncOptions
}

func (c TextDocumentSyncCapability) MarshalJSON() ([]byte, error) {
	if c.Kind != nil {
		return json.Marshal(*c.Kind)
	}
	if c.Options != nil {
		return json.Marshal(*c.Options)
	}
	return []byte("null"), nil
}

func (c *TextDocumentSyncCapability) UnmarshalJSON(data []byte) error {
	*c = TextDocumentSyncCapability{}
	switch jsonKind(data) {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		c.Kind = new(TextDocumentSyncKind)
		return json.Unmarshal(data, c.Kind)
	case '{':
		c.Options = new(TextDocumentSyncOptions)
		return strictUnmarshal(data, c.Options)
	}
	return &NoVariantMatchedError{Type: "TextDocumentSyncCapability"}
}

// TextDocumentSynchronizationClientCapabilities is the client side of
// document sync.
type TextDocumentSynchronizationClientCapabilities struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
	WillSave            bool `json:"willSave,omitempty"`
	WillSaveWaitUntil   bool `json:"willSaveWaitUntil,omitempty"`
	DidSave             bool `json:"didSave,omitempty"`
}
