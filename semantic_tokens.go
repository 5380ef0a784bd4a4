package lsp

import "encoding/json"

// SemanticToken is one token of the newer, flat-array highlighting
// scheme. Line and start are deltas against the previous token.
type SemanticToken struct {
	DeltaLine      uint32
	DeltaStart     uint32
	Length         uint32
	TokenType      uint32
	TokenModifiers uint32
}

// SemanticTokenData is packed on the wire as one flat integer array,
// five consecutive integers per token in the field order of
// SemanticToken.
type SemanticTokenData []SemanticToken

func (d SemanticTokenData) MarshalJSON() ([]byte, error) {
	flat := make([]uint32, 0, len(d)*5)
	for _, t := range d {
		flat = append(flat, t.DeltaLine, t.DeltaStart, t.Length, t.TokenType, t.TokenModifiers)
	}
	return json.Marshal(flat)
}

func (d *SemanticTokenData) UnmarshalJSON(data []byte) error {
	var flat []uint32
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	if len(flat)%5 != 0 {
		return &TokenArrayLengthError{Length: len(flat)}
	}
	out := make(SemanticTokenData, 0, len(flat)/5)
	for i := 0; i < len(flat); i += 5 {
		out = append(out, SemanticToken{
			DeltaLine:      flat[i],
			DeltaStart:     flat[i+1],
			Length:         flat[i+2],
			TokenType:      flat[i+3],
			TokenModifiers: flat[i+4],
		})
	}
	*d = out
	return nil
}

// Predefined semantic token types.
const (
	TokenTypeNamespace     = "namespace"
	TokenTypeType          = "type"
	TokenTypeClass         = "class"
	TokenTypeEnum          = "enum"
	TokenTypeInterface     = "interface"
	TokenTypeStruct        = "struct"
	TokenTypeTypeParameter = "typeParameter"
	TokenTypeParameter     = "parameter"
	TokenTypeVariable      = "variable"
	TokenTypeProperty      = "property"
	TokenTypeEnumMember    = "enumMember"
	TokenTypeEvent         = "event"
	TokenTypeFunction      = "function"
	TokenTypeMethod        = "method"
	TokenTypeMacro         = "macro"
	TokenTypeKeyword       = "keyword"
	TokenTypeModifier      = "modifier"
	TokenTypeComment       = "comment"
	TokenTypeString        = "string"
	TokenTypeNumber        = "number"
	TokenTypeRegexp        = "regexp"
	TokenTypeOperator      = "operator"
)

// Predefined semantic token modifiers, one bit each in a token's
// modifier bitset.
const (
	TokenModifierDeclaration    = "declaration"
	TokenModifierDefinition     = "definition"
	TokenModifierReadonly       = "readonly"
	TokenModifierStatic         = "static"
	TokenModifierDeprecated     = "deprecated"
	TokenModifierAbstract       = "abstract"
	TokenModifierAsync          = "async"
	TokenModifierModification   = "modification"
	TokenModifierDocumentation  = "documentation"
	TokenModifierDefaultLibrary = "defaultLibrary"
)

// SemanticTokensLegend maps the integers in the token data to type and
// modifier names.
type SemanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

type SemanticTokensParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type SemanticTokensDeltaParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument     TextDocumentIdentifier `json:"textDocument"`
	PreviousResultID string                 `json:"previousResultId"`
}

type SemanticTokensRangeParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}

type SemanticTokens struct {
	ResultID string            `json:"resultId,omitempty"`
	Data     SemanticTokenData `json:"data"`
}

type SemanticTokensPartialResult struct {
	Data SemanticTokenData `json:"data"`
}

// SemanticTokensEdit splices Data over DeleteCount tokens' worth of
// integers starting at Start.
type SemanticTokensEdit struct {
	Start       int               `json:"start"`
	DeleteCount int               `json:"deleteCount"`
	Data        SemanticTokenData `json:"data,omitempty"`
}

type SemanticTokensDelta struct {
	ResultID string               `json:"resultId,omitempty"`
	Edits    []SemanticTokensEdit `json:"edits"`
}

type SemanticTokensOptions struct {
	WorkDoneProgressOptions
	Legend SemanticTokensLegend `json:"legend"`
	Range  bool                 `json:"range,omitempty"`
	Full   bool                 `json:"full,omitempty"`
}
