package lsp

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompletionItemKindOutOfRange(t *testing.T) {
	var k CompletionItemKind
	err := json.Unmarshal([]byte(`26`), &k)
	var invalid *InvalidEnumValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidEnumValueError, got %+v", err)
	}
	if invalid.Expected != "a value between 1 and 25" {
		t.Errorf("unmatched expected set: %s", invalid.Expected)
	}
}

func TestCompletionItemSerialization(t *testing.T) {
	kind := FunctionCompletion
	format := SnippetTextFormat
	testSerialization(t,
		&CompletionItem{
			Label:            "append",
			Kind:             &kind,
			Detail:           "func append(slice []T, elems ...T) []T",
			InsertText:       "append(${1:slice}, ${2:elems})",
			InsertTextFormat: &format,
		},
		`{"label":"append","kind":3,"detail":"func append(slice []T, elems ...T) []T",`+
			`"insertText":"append(${1:slice}, ${2:elems})","insertTextFormat":2}`,
		&CompletionItem{})
}

func TestDocumentationUnion(t *testing.T) {
	testcases := []struct {
		name  string
		input string
		want  Documentation
	}{
		{
			name:  "plain string",
			input: `"sorts a slice"`,
			want:  Documentation{Str: strPtr("sorts a slice")},
		},
		{
			name:  "markup content",
			input: `{"kind":"markdown","value":"**sorts** a slice"}`,
			want:  Documentation{Markup: &MarkupContent{Kind: Markdown, Value: "**sorts** a slice"}},
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			var got Documentation
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("error: %+v", err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("unmatched value: %s", d)
			}
		})
	}
}

func TestCompletionTextEditUnion(t *testing.T) {
	var e CompletionTextEdit
	if err := json.Unmarshal([]byte(`{"newText":"x","range":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}}}`), &e); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if e.Edit == nil || e.ReplaceEdit != nil {
		t.Fatalf("want plain edit, got %+v", e)
	}

	if err := json.Unmarshal([]byte(`{"newText":"x","insert":{"start":{"line":0,"character":0},"end":{"line":0,"character":0}},"replace":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}}}`), &e); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if e.ReplaceEdit == nil || e.Edit != nil {
		t.Fatalf("want insert/replace edit, got %+v", e)
	}

	var noMatch *NoVariantMatchedError
	if err := json.Unmarshal([]byte(`{"bogus":1}`), &e); !errors.As(err, &noMatch) {
		t.Fatalf("want NoVariantMatchedError, got %+v", err)
	}
}

func TestCompletionResponseUnion(t *testing.T) {
	var r CompletionResponse
	if err := json.Unmarshal([]byte(`[{"label":"a"},{"label":"b"}]`), &r); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if r.Items == nil || len(*r.Items) != 2 {
		t.Fatalf("want bare array of two items, got %+v", r)
	}

	if err := json.Unmarshal([]byte(`{"isIncomplete":true,"items":[{"label":"a"}]}`), &r); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if r.List == nil || !r.List.IsIncomplete {
		t.Fatalf("want incomplete list, got %+v", r)
	}
}

func TestCompletionItemCapabilityTagSupport(t *testing.T) {
	var c CompletionItemCapability
	if err := json.Unmarshal([]byte(`{"snippetSupport":true,"tagSupport":true}`), &c); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if !c.SnippetSupport {
		t.Errorf("snippetSupport lost during decode")
	}
	want := &TagSupport[CompletionItemTag]{ValueSet: []CompletionItemTag{}}
	if d := cmp.Diff(want, c.TagSupport); d != "" {
		t.Errorf("unmatched value: %s", d)
	}
}

func strPtr(s string) *string { return &s }
