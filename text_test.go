package lsp

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDidChangeTextDocumentParamsSerialization(t *testing.T) {
	version := 2
	testSerialization(t,
		&DidChangeTextDocumentParams{
			TextDocument: VersionedTextDocumentIdentifier{URI: "file:///a.go", Version: &version},
			ContentChanges: []TextDocumentContentChangeEvent{
				{
					Range: &Range{
						Start: Position{Line: 0, Character: 0},
						End:   Position{Line: 0, Character: 3},
					},
					RangeLength: 3,
					Text:        "foo",
				},
				{Text: "full text"},
			},
		},
		`{"textDocument":{"uri":"file:///a.go","version":2},`+
			`"contentChanges":[{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":3}},"rangeLength":3,"text":"foo"},`+
			`{"text":"full text"}]}`,
		&DidChangeTextDocumentParams{})
}

func TestTextDocumentSyncCapabilityUnion(t *testing.T) {
	var c TextDocumentSyncCapability
	if err := json.Unmarshal([]byte(`2`), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if c.Kind == nil || *c.Kind != SyncIncremental {
		t.Fatalf("want bare kind, got %+v", c)
	}

	if err := json.Unmarshal([]byte(`{"openClose":true,"change":1,"save":{"includeText":true}}`), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	want := TextDocumentSyncCapability{Options: &TextDocumentSyncOptions{
		OpenClose: true,
		Change:    SyncFull,
		Save:      &SaveOptions{IncludeText: true},
	}}
	if d := cmp.Diff(want, c); d != "" {
		t.Errorf("unmatched value: %s", d)
	}
}

func TestWillSaveTextDocumentParamsSerialization(t *testing.T) {
	testSerialization(t,
		&WillSaveTextDocumentParams{
			TextDocument: TextDocumentIdentifier{URI: "file:///a.go"},
			Reason:       SaveReasonFocusOut,
		},
		`{"textDocument":{"uri":"file:///a.go"},"reason":3}`,
		&WillSaveTextDocumentParams{})
}
