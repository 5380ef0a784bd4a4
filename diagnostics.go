package lsp

import "encoding/json"

// DiagnosticSeverity says how prominently a client should render a
// diagnostic. When absent the client decides.
type DiagnosticSeverity int

const (
	SeverityError       DiagnosticSeverity = 1
	SeverityWarning     DiagnosticSeverity = 2
	SeverityInformation DiagnosticSeverity = 3
	SeverityHint        DiagnosticSeverity = 4
)

func (s *DiagnosticSeverity) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(SeverityError) || v > int(SeverityHint) {
		return &InvalidEnumValueError{Type: "DiagnosticSeverity", Value: v, Expected: "1, 2, 3 or 4"}
	}
	*s = DiagnosticSeverity(v)
	return nil
}

// DiagnosticTag adds extra rendering hints to a diagnostic.
type DiagnosticTag int

const (
	// DiagnosticTagUnnecessary marks unused or unneeded code, typically
	// rendered faded out.
	DiagnosticTagUnnecessary DiagnosticTag = 1
	// DiagnosticTagDeprecated marks deprecated code, typically rendered
	// struck through.
	DiagnosticTagDeprecated DiagnosticTag = 2
)

func (t *DiagnosticTag) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(DiagnosticTagUnnecessary) || v > int(DiagnosticTagDeprecated) {
		return &InvalidEnumValueError{Type: "DiagnosticTag", Value: v, Expected: "1 or 2"}
	}
	*t = DiagnosticTag(v)
	return nil
}

// Diagnostic is a compiler error, warning or similar, attached to a
// range of a document.
type Diagnostic struct {
	Range              Range                          `json:"range"`
	Severity           *DiagnosticSeverity            `json:"severity,omitempty"`
	Code               *IntOrString                   `json:"code,omitempty"`
	Source             string                         `json:"source,omitempty"`
	Message            string                         `json:"message"`
	Tags               []DiagnosticTag                `json:"tags,omitempty"`
	RelatedInformation []DiagnosticRelatedInformation `json:"relatedInformation,omitempty"`
}

type DiagnosticRelatedInformation struct {
	Location Location `json:"location"`
	Message  string   `json:"message"`
}

type PublishDiagnosticsParams struct {
	URI DocumentURI `json:"uri"`
	// Version of the document the diagnostics were computed for.
	Version     *int         `json:"version,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// PublishDiagnosticsClientCapabilities describes what a client can do
// with published diagnostics. TagSupport accepts both the historical
// boolean form and the structured form.
type PublishDiagnosticsClientCapabilities struct {
	RelatedInformation bool                       `json:"relatedInformation,omitempty"`
	TagSupport         *TagSupport[DiagnosticTag] `json:"tagSupport,omitempty"`
	VersionSupport     bool                       `json:"versionSupport,omitempty"`
}

func (c *PublishDiagnosticsClientCapabilities) UnmarshalJSON(data []byte) error {
	type alias PublishDiagnosticsClientCapabilities
	aux := struct {
		*alias
		TagSupport json.RawMessage `json:"tagSupport"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	ts, err := decodeTagSupport[DiagnosticTag](aux.TagSupport)
	if err != nil {
		return err
	}
	c.TagSupport = ts
	return nil
}
