package lsp

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
)

// SemanticHighlightingToken is one highlighted span on a line: a
// character offset, a length, and an index into the server's scope
// lookup table.
type SemanticHighlightingToken struct {
	Character uint32
	Length    uint16
	Scope     uint16
}

// SemanticHighlightingTokens is packed on the wire as a base64 string
// of consecutive 8-byte big-endian records (4-byte character, 2-byte
// length, 2-byte scope).
type SemanticHighlightingTokens []SemanticHighlightingToken

func (t SemanticHighlightingTokens) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(t)*8)
	for _, tok := range t {
		var rec [8]byte
		binary.BigEndian.PutUint32(rec[0:4], tok.Character)
		binary.BigEndian.PutUint16(rec[4:6], tok.Length)
		binary.BigEndian.PutUint16(rec[6:8], tok.Scope)
		buf = append(buf, rec[:]...)
	}
	return json.Marshal(base64.StdEncoding.EncodeToString(buf))
}

func (t *SemanticHighlightingTokens) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	// A trailing partial record means the input is corrupt; it is
	// rejected rather than dropped.
	if len(raw)%8 != 0 {
		return &TokenBlobLengthError{Length: len(raw)}
	}
	out := make(SemanticHighlightingTokens, 0, len(raw)/8)
	for i := 0; i < len(raw); i += 8 {
		out = append(out, SemanticHighlightingToken{
			Character: binary.BigEndian.Uint32(raw[i : i+4]),
			Length:    binary.BigEndian.Uint16(raw[i+4 : i+6]),
			Scope:     binary.BigEndian.Uint16(raw[i+6 : i+8]),
		})
	}
	*t = out
	return nil
}

// SemanticHighlightingInformation is the highlighting of one line. A
// nil token list means the line's previous highlighting still stands
// and omits the key on the wire; an empty non-nil list explicitly
// clears the line.
type SemanticHighlightingInformation struct {
	Line   int
	Tokens SemanticHighlightingTokens
}

func (i SemanticHighlightingInformation) MarshalJSON() ([]byte, error) {
	if i.Tokens == nil {
		return json.Marshal(struct {
			Line int `json:"line"`
		}{i.Line})
	}
	return json.Marshal(struct {
		Line   int                        `json:"line"`
		Tokens SemanticHighlightingTokens `json:"tokens"`
	}{i.Line, i.Tokens})
}

func (i *SemanticHighlightingInformation) UnmarshalJSON(data []byte) error {
	aux := struct {
		Line   int                         `json:"line"`
		Tokens *SemanticHighlightingTokens `json:"tokens"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	i.Line = aux.Line
	i.Tokens = nil
	if aux.Tokens != nil {
		i.Tokens = *aux.Tokens
	}
	return nil
}

// SemanticHighlightingParams is the server push notification decorating
// a document with highlighting information.
type SemanticHighlightingParams struct {
	TextDocument VersionedTextDocumentIdentifier   `json:"textDocument"`
	Lines        []SemanticHighlightingInformation `json:"lines"`
}

type SemanticHighlightingClientCapability struct {
	SemanticHighlighting bool `json:"semanticHighlighting"`
}

// SemanticHighlightingServerCapability announces the scope lookup
// table. An absent or empty table means the feature is unsupported.
type SemanticHighlightingServerCapability struct {
	Scopes [][]string `json:"scopes,omitempty"`
}
