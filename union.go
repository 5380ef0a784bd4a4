package lsp

import (
	"bytes"
	"encoding/json"
)

// The protocol is full of fields whose JSON value is "either A or B"
// with no discriminator. Such fields decode by trying each variant in
// declared order and taking the first one whose shape fits. Object
// variants are decoded strictly (unknown keys rejected) so that two
// object shapes never shadow each other.

// strictUnmarshal decodes data into v, rejecting unknown object keys.
func strictUnmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// jsonKind reports the first significant byte of a JSON value, which is
// enough to tell apart null, booleans, numbers, strings, arrays and
// objects.
func jsonKind(data []byte) byte {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return c
	}
	return 0
}

func isJSONNull(data []byte) bool {
	return jsonKind(data) == 'n'
}

// hasKey reports whether the JSON object in data carries key. Variants
// whose fields are all optional use it to claim only objects that have
// their required key.
func hasKey(data []byte, key string) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

// BoolOr holds a capability that a server may announce either as a bare
// boolean or as an options object, e.g. `hoverProvider: true` versus
// `hoverProvider: {workDoneProgress: true}`. The boolean variant is
// tried first.
type BoolOr[T any] struct {
	Enabled *bool
	Options *T
}

func (v BoolOr[T]) MarshalJSON() ([]byte, error) {
	if v.Enabled != nil {
		return json.Marshal(*v.Enabled)
	}
	if v.Options != nil {
		return json.Marshal(*v.Options)
	}
	return []byte("null"), nil
}

func (v *BoolOr[T]) UnmarshalJSON(data []byte) error {
	*v = BoolOr[T]{}
	switch jsonKind(data) {
	case 't', 'f':
		v.Enabled = new(bool)
		return json.Unmarshal(data, v.Enabled)
	case '{':
		v.Options = new(T)
		return strictUnmarshal(data, v.Options)
	}
	return &NoVariantMatchedError{Type: "capability"}
}

// IntOrString holds a protocol value documented as `number | string`,
// such as diagnostic codes, request identifiers and progress tokens.
type IntOrString struct {
	Num      int
	Str      string
	IsString bool
}

func (v IntOrString) MarshalJSON() ([]byte, error) {
	if v.IsString {
		return json.Marshal(v.Str)
	}
	return json.Marshal(v.Num)
}

func (v *IntOrString) UnmarshalJSON(data []byte) error {
	*v = IntOrString{}
	switch jsonKind(data) {
	case '"':
		v.IsString = true
		return json.Unmarshal(data, &v.Str)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return json.Unmarshal(data, &v.Num)
	}
	return &NoVariantMatchedError{Type: "IntOrString"}
}

// BoolOrString holds a `boolean | string` value, such as the workspace
// folder change-notification registration id.
type BoolOrString struct {
	Bool *bool
	Str  *string
}

func (v BoolOrString) MarshalJSON() ([]byte, error) {
	if v.Bool != nil {
		return json.Marshal(*v.Bool)
	}
	if v.Str != nil {
		return json.Marshal(*v.Str)
	}
	return []byte("null"), nil
}

func (v *BoolOrString) UnmarshalJSON(data []byte) error {
	*v = BoolOrString{}
	switch jsonKind(data) {
	case 't', 'f':
		v.Bool = new(bool)
		return json.Unmarshal(data, v.Bool)
	case '"':
		v.Str = new(string)
		return json.Unmarshal(data, v.Str)
	}
	return &NoVariantMatchedError{Type: "BoolOrString"}
}

// TagSupport announces which tags of some enum type a client handles,
// e.g. deprecated-diagnostic tags.
type TagSupport[T any] struct {
	ValueSet []T `json:"valueSet"`
}

// decodeTagSupport applies the protocol-evolution compatibility rule for
// tagSupport fields: the field was historically a plain boolean and is
// now an object. Absent, null or false mean "not supported" (nil); true
// means supported with an empty value set; an object is decoded as-is.
func decodeTagSupport[T any](raw json.RawMessage) (*TagSupport[T], error) {
	if len(raw) == 0 || isJSONNull(raw) {
		return nil, nil
	}
	switch jsonKind(raw) {
	case 'f':
		return nil, nil
	case 't':
		return &TagSupport[T]{ValueSet: []T{}}, nil
	case '{':
		ts := new(TagSupport[T])
		if err := json.Unmarshal(raw, ts); err != nil {
			return nil, err
		}
		return ts, nil
	}
	return nil, &InvalidTagSupportShapeError{}
}
