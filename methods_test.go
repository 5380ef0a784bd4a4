package lsp

import (
	"encoding/json"
	"errors"
	"sort"
	"testing"
)

func TestMethodInfoFor(t *testing.T) {
	info, ok := MethodInfoFor(MethodTextDocumentHover)
	if !ok {
		t.Fatalf("hover method missing from the registry")
	}
	if info.Notification {
		t.Errorf("hover registered as a notification")
	}
	if _, ok := info.NewParams().(*HoverParams); !ok {
		t.Errorf("unexpected params type %T", info.NewParams())
	}
	if _, ok := info.NewResult().(*Hover); !ok {
		t.Errorf("unexpected result type %T", info.NewResult())
	}

	if _, ok := MethodInfoFor("textDocument/bogus"); ok {
		t.Errorf("unknown method resolved")
	}
}

func TestMethodsSortedAndComplete(t *testing.T) {
	all := Methods()
	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Method < all[j].Method }) {
		t.Errorf("methods not sorted by name")
	}

	var requests, notifications int
	for _, info := range all {
		if info.Notification {
			notifications++
		} else {
			requests++
		}
	}
	if requests != 36 {
		t.Errorf("want 36 requests, got %d", requests)
	}
	if notifications != 20 {
		t.Errorf("want 20 notifications, got %d", notifications)
	}
}

func TestDecodeParams(t *testing.T) {
	raw := json.RawMessage(`{"textDocument":{"uri":"file:///a.go"},"position":{"line":1,"character":2}}`)
	v, err := DecodeParams(MethodTextDocumentHover, raw)
	if err != nil {
		t.Fatalf("error: %+v", err)
	}
	params, ok := v.(*HoverParams)
	if !ok {
		t.Fatalf("unexpected params type %T", v)
	}
	if params.TextDocument.URI != "file:///a.go" || params.Position.Line != 1 {
		t.Errorf("unmatched params: %+v", params)
	}
}

func TestDecodeParamsNoParams(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`)} {
		v, err := DecodeParams(MethodTextDocumentHover, raw)
		if err != nil {
			t.Fatalf("error: %+v", err)
		}
		if v != nil {
			t.Errorf("want nil params, got %+v", v)
		}
	}

	v, err := DecodeParams(MethodShutdown, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("error: %+v", err)
	}
	if v != nil {
		t.Errorf("shutdown has no params, got %+v", v)
	}
}

func TestDecodeParamsUnknownMethod(t *testing.T) {
	_, err := DecodeParams("textDocument/bogus", nil)
	var unknown *UnknownMethodError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownMethodError, got %+v", err)
	}
	if unknown.Method != "textDocument/bogus" {
		t.Errorf("unmatched method: %s", unknown.Method)
	}
}

func TestDecodeResult(t *testing.T) {
	raw := json.RawMessage(`{"contents":"docs"}`)
	v, err := DecodeResult(MethodTextDocumentHover, raw)
	if err != nil {
		t.Fatalf("error: %+v", err)
	}
	hover, ok := v.(*Hover)
	if !ok {
		t.Fatalf("unexpected result type %T", v)
	}
	if hover.Contents.Scalar == nil || *hover.Contents.Scalar.Str != "docs" {
		t.Errorf("unmatched result: %+v", hover)
	}

	v, err = DecodeResult(MethodTextDocumentDidOpen, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("error: %+v", err)
	}
	if v != nil {
		t.Errorf("notifications have no result, got %+v", v)
	}
}
