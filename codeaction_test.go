package lsp

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCodeActionOrCommandUnion(t *testing.T) {
	var c CodeActionOrCommand
	if err := json.Unmarshal([]byte(`{"title":"Run tests","command":"test.run"}`), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if c.Command == nil || c.Command.Command != "test.run" {
		t.Fatalf("want bare command, got %+v", c)
	}

	kind := QuickFix
	input := `{"title":"Remove unused variable","kind":"quickfix",` +
		`"edit":{"changes":{"file:///a.go":[]}}}`
	if err := json.Unmarshal([]byte(input), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	want := CodeActionOrCommand{Action: &CodeAction{
		Title: "Remove unused variable",
		Kind:  &kind,
		Edit:  &WorkspaceEdit{Changes: map[DocumentURI][]TextEdit{"file:///a.go": {}}},
	}}
	if d := cmp.Diff(want, c); d != "" {
		t.Errorf("unmatched value: %s", d)
	}
}

func TestCodeActionOrCommandTitleOnly(t *testing.T) {
	// Without a command key the object can only be a code action, even
	// though a bare title also fits the command shape.
	var c CodeActionOrCommand
	if err := json.Unmarshal([]byte(`{"title":"Fix it"}`), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	want := CodeActionOrCommand{Action: &CodeAction{Title: "Fix it"}}
	if d := cmp.Diff(want, c); d != "" {
		t.Errorf("unmatched value: %s", d)
	}
}

func TestCodeActionResponseDecode(t *testing.T) {
	input := `[{"title":"Organize imports","command":"imports.organize"},` +
		`{"title":"Extract function","kind":"refactor.extract"}]`
	var got CodeActionResponse
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 entries, got %d", len(got))
	}
	if got[0].Command == nil {
		t.Errorf("first entry should be a command: %+v", got[0])
	}
	if got[1].Action == nil || *got[1].Action.Kind != RefactorExtract {
		t.Errorf("second entry should be a refactor action: %+v", got[1])
	}
}

func TestCodeLensSerialization(t *testing.T) {
	testSerialization(t,
		&CodeLens{
			Range: Range{
				Start: Position{Line: 9, Character: 0},
				End:   Position{Line: 9, Character: 12},
			},
			Data: json.RawMessage(`{"id":"lens-1"}`),
		},
		`{"range":{"start":{"line":9,"character":0},"end":{"line":9,"character":12}},"data":{"id":"lens-1"}}`,
		&CodeLens{})
}
