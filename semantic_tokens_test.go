package lsp

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSemanticTokenDataSerialization(t *testing.T) {
	data := SemanticTokenData{
		{DeltaLine: 2, DeltaStart: 5, Length: 3, TokenType: 0, TokenModifiers: 3},
		{DeltaLine: 0, DeltaStart: 5, Length: 4, TokenType: 1, TokenModifiers: 0},
	}
	testSerialization(t, &data, `[2,5,3,0,3,0,5,4,1,0]`, &SemanticTokenData{})
}

func TestSemanticTokenDataBadLength(t *testing.T) {
	var d SemanticTokenData
	err := json.Unmarshal([]byte(`[1]`), &d)
	var bad *TokenArrayLengthError
	if !errors.As(err, &bad) {
		t.Fatalf("want TokenArrayLengthError, got %+v", err)
	}
	if bad.Length != 1 {
		t.Errorf("want reported length 1, got %d", bad.Length)
	}
	if d := cmp.Diff("semantic tokens: data length 1 is not divisible by 5", bad.Error()); d != "" {
		t.Errorf("unmatched message: %s", d)
	}
}

func TestSemanticTokensSerialization(t *testing.T) {
	testSerialization(t,
		&SemanticTokens{
			ResultID: "3",
			Data:     SemanticTokenData{{DeltaLine: 1, DeltaStart: 0, Length: 7, TokenType: 12, TokenModifiers: 0}},
		},
		`{"resultId":"3","data":[1,0,7,12,0]}`,
		&SemanticTokens{})
}

func TestSemanticTokensDeltaSerialization(t *testing.T) {
	testSerialization(t,
		&SemanticTokensDelta{
			ResultID: "4",
			Edits: []SemanticTokensEdit{
				{Start: 5, DeleteCount: 5, Data: SemanticTokenData{{DeltaLine: 0, DeltaStart: 2, Length: 1, TokenType: 8, TokenModifiers: 0}}},
			},
		},
		`{"resultId":"4","edits":[{"start":5,"deleteCount":5,"data":[0,2,1,8,0]}]}`,
		&SemanticTokensDelta{})
}
