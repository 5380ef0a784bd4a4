package lsp

import (
	"encoding/json"
	"testing"
)

func TestOnTypeRenameRangesSerialization(t *testing.T) {
	testSerialization(t,
		&OnTypeRenameRanges{
			Ranges: []Range{
				{Start: Position{Line: 1, Character: 4}, End: Position{Line: 1, Character: 8}},
				{Start: Position{Line: 3, Character: 4}, End: Position{Line: 3, Character: 8}},
			},
			WordPattern: "[A-Za-z_]+",
		},
		`{"ranges":[{"start":{"line":1,"character":4},"end":{"line":1,"character":8}},`+
			`{"start":{"line":3,"character":4},"end":{"line":3,"character":8}}],"wordPattern":"[A-Za-z_]+"}`,
		&OnTypeRenameRanges{})
}

func TestOnTypeRenameParamsSerialization(t *testing.T) {
	testSerialization(t,
		&OnTypeRenameParams{
			TextDocumentPositionParams: TextDocumentPositionParams{
				TextDocument: TextDocumentIdentifier{URI: "file:///main.go"},
				Position:     Position{Line: 7, Character: 12},
			},
		},
		`{"textDocument":{"uri":"file:///main.go"},"position":{"line":7,"character":12}}`,
		&OnTypeRenameParams{})
}

func TestOnTypeRenameServerCapabilitiesUnion(t *testing.T) {
	var c OnTypeRenameServerCapabilities
	if err := json.Unmarshal([]byte(`{"workDoneProgress":true}`), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if c.Options == nil || !c.Options.WorkDoneProgress {
		t.Fatalf("want plain options, got %+v", c)
	}

	reg := `{"documentSelector":[{"language":"go"}],"id":"otr-1"}`
	if err := json.Unmarshal([]byte(reg), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if c.RegistrationOptions == nil || c.RegistrationOptions.ID != "otr-1" {
		t.Fatalf("want registration options, got %+v", c)
	}
	if len(c.RegistrationOptions.DocumentSelector) != 1 || c.RegistrationOptions.DocumentSelector[0].Language != "go" {
		t.Errorf("unmatched selector: %+v", c.RegistrationOptions.DocumentSelector)
	}
}
