package lsp

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInitializeParamsNullFields(t *testing.T) {
	// processId and rootUri stay on the wire as explicit nulls.
	b, err := json.Marshal(&InitializeParams{})
	if err != nil {
		t.Fatalf("error: %+v", err)
	}
	want := `{"processId":null,"rootUri":null,"capabilities":{}}`
	if d := cmp.Diff(want, string(b)); d != "" {
		t.Errorf("unmatched wire form: %s", d)
	}
}

func TestInitializeParamsSerialization(t *testing.T) {
	pid := 1234
	root := DocumentURI("file:///home/user/project")
	testSerialization(t,
		&InitializeParams{
			ProcessID:  &pid,
			ClientInfo: &ClientInfo{Name: "editor", Version: "1.50"},
			RootURI:    &root,
			Trace:      TraceMessages,
			WorkspaceFolders: []WorkspaceFolder{
				{URI: "file:///home/user/project", Name: "project"},
			},
		},
		`{"processId":1234,"clientInfo":{"name":"editor","version":"1.50"},`+
			`"rootUri":"file:///home/user/project","capabilities":{},"trace":"messages",`+
			`"workspaceFolders":[{"uri":"file:///home/user/project","name":"project"}]}`,
		&InitializeParams{})
}

func TestCancelParamsSerialization(t *testing.T) {
	testSerialization(t,
		&CancelParams{ID: IntOrString{Num: 7}},
		`{"id":7}`,
		&CancelParams{})

	testSerialization(t,
		&CancelParams{ID: IntOrString{Str: "req-7", IsString: true}},
		`{"id":"req-7"}`,
		&CancelParams{})
}

func TestUnregistrationParamsKey(t *testing.T) {
	testSerialization(t,
		&UnregistrationParams{
			Unregisterations: []Unregistration{{ID: "1", Method: MethodTextDocumentCompletion}},
		},
		`{"unregisterations":[{"id":"1","method":"textDocument/completion"}]}`,
		&UnregistrationParams{})
}
