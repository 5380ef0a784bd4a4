package lsp

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNotebookCellKindOutOfRange(t *testing.T) {
	var k NotebookCellKind
	err := json.Unmarshal([]byte(`3`), &k)
	var invalid *InvalidEnumValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidEnumValueError, got %+v", err)
	}
	if invalid.Expected != "1 or 2" {
		t.Errorf("unmatched expected set: %s", invalid.Expected)
	}
}

func TestDidOpenNotebookDocumentParamsSerialization(t *testing.T) {
	success := true
	testSerialization(t,
		&DidOpenNotebookDocumentParams{
			NotebookDocument: NotebookDocument{
				URI:          "file:///analysis.ipynb",
				NotebookType: "jupyter-notebook",
				Version:      1,
				Cells: []NotebookCell{
					{Kind: NotebookCellKindMarkup, Document: "file:///analysis.ipynb#cell0"},
					{
						Kind:             NotebookCellKindCode,
						Document:         "file:///analysis.ipynb#cell1",
						ExecutionSummary: &ExecutionSummary{ExecutionOrder: 4, Success: &success},
					},
				},
			},
			CellTextDocuments: []TextDocumentItem{
				{URI: "file:///analysis.ipynb#cell1", LanguageID: "python", Version: 1, Text: "print(1)"},
			},
		},
		`{"notebookDocument":{"uri":"file:///analysis.ipynb","notebookType":"jupyter-notebook","version":1,`+
			`"cells":[{"kind":1,"document":"file:///analysis.ipynb#cell0"},`+
			`{"kind":2,"document":"file:///analysis.ipynb#cell1","executionSummary":{"executionOrder":4,"success":true}}]},`+
			`"cellTextDocuments":[{"uri":"file:///analysis.ipynb#cell1","languageId":"python","version":1,"text":"print(1)"}]}`,
		&DidOpenNotebookDocumentParams{})
}

func TestDidChangeNotebookDocumentParamsSerialization(t *testing.T) {
	version := 3
	testSerialization(t,
		&DidChangeNotebookDocumentParams{
			NotebookDocument: VersionedNotebookDocumentIdentifier{Version: 8, URI: "file:///analysis.ipynb"},
			Change: NotebookDocumentChangeEvent{
				Cells: &NotebookDocumentCellChange{
					Structure: &NotebookDocumentCellChangeStructure{
						Array: NotebookCellArrayChange{
							Start:       1,
							DeleteCount: 0,
							Cells:       []NotebookCell{{Kind: NotebookCellKindCode, Document: "file:///analysis.ipynb#cell2"}},
						},
						DidOpen: []TextDocumentItem{
							{URI: "file:///analysis.ipynb#cell2", LanguageID: "python", Version: 1, Text: ""},
						},
					},
					TextContent: []NotebookDocumentChangeTextContent{
						{
							Document: VersionedTextDocumentIdentifier{URI: "file:///analysis.ipynb#cell1", Version: &version},
							Changes:  []TextDocumentContentChangeEvent{{Text: "print(2)"}},
						},
					},
				},
			},
		},
		`{"notebookDocument":{"version":8,"uri":"file:///analysis.ipynb"},`+
			`"change":{"cells":{"structure":{"array":{"start":1,"deleteCount":0,`+
			`"cells":[{"kind":2,"document":"file:///analysis.ipynb#cell2"}]},`+
			`"didOpen":[{"uri":"file:///analysis.ipynb#cell2","languageId":"python","version":1,"text":""}]},`+
			`"textContent":[{"document":{"uri":"file:///analysis.ipynb#cell1","version":3},`+
			`"changes":[{"text":"print(2)"}]}]}}}`,
		&DidChangeNotebookDocumentParams{})
}

func TestNotebookFilterUnion(t *testing.T) {
	var f NotebookFilter
	if err := json.Unmarshal([]byte(`"jupyter-notebook"`), &f); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if f.Type == nil || *f.Type != "jupyter-notebook" {
		t.Fatalf("want type string, got %+v", f)
	}

	if err := json.Unmarshal([]byte(`{"scheme":"untitled","pattern":"**/*.ipynb"}`), &f); err != nil {
		t.Fatalf("error: %+v", err)
	}
	want := NotebookFilter{Filter: &NotebookDocumentFilter{Scheme: "untitled", Pattern: "**/*.ipynb"}}
	if d := cmp.Diff(want, f); d != "" {
		t.Errorf("unmatched value: %s", d)
	}
}

func TestNotebookDocumentSyncServerCapabilitiesUnion(t *testing.T) {
	selector := `{"notebookSelector":[{"notebook":"*","cells":[{"language":"python"}]}]}`
	var c NotebookDocumentSyncServerCapabilities
	if err := json.Unmarshal([]byte(selector), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if c.Options == nil || c.RegistrationOptions != nil {
		t.Fatalf("want plain options, got %+v", c)
	}

	withID := `{"notebookSelector":[{"cells":[{"language":"python"}]}],"save":true,"id":"nb-1"}`
	if err := json.Unmarshal([]byte(withID), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if c.RegistrationOptions == nil || c.RegistrationOptions.ID != "nb-1" {
		t.Fatalf("want registration options, got %+v", c)
	}
}

func TestDidCloseNotebookDocumentParamsSerialization(t *testing.T) {
	testSerialization(t,
		&DidCloseNotebookDocumentParams{
			NotebookDocument:  NotebookDocumentIdentifier{URI: "file:///analysis.ipynb"},
			CellTextDocuments: []TextDocumentIdentifier{{URI: "file:///analysis.ipynb#cell0"}},
		},
		`{"notebookDocument":{"uri":"file:///analysis.ipynb"},"cellTextDocuments":[{"uri":"file:///analysis.ipynb#cell0"}]}`,
		&DidCloseNotebookDocumentParams{})
}
