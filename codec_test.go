package lsp

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testSerialization marshals v, checks the exact wire form, decodes it
// back into out (a fresh pointer of v's type) and checks the round
// trip.
func testSerialization(t *testing.T, v interface{}, want string, out interface{}) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("error: %+v", err)
	}
	if d := cmp.Diff(want, string(b)); d != "" {
		t.Fatalf("unmatched wire form: %s", d)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if d := cmp.Diff(v, out); d != "" {
		t.Errorf("unmatched round trip: %s", d)
	}
}
