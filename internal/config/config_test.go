package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `include:
  - textDocument/hover
exclude:
  - $/cancelRequest
maxPayload: 1024
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatalf("error: %+v", err)
	}

	cfg, err := GetConfig(path)
	if err != nil {
		t.Fatalf("error: %+v", err)
	}
	want := &Config{
		Include:    []string{"textDocument/hover"},
		Exclude:    []string{"$/cancelRequest"},
		MaxPayload: 1024,
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("unmatched value: %s", d)
	}
}

func TestLoadRejectsNegativeMaxPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("maxPayload: -1\n"), 0o600); err != nil {
		t.Fatalf("error: %+v", err)
	}

	cfg := &Config{}
	if err := cfg.Load(path); err == nil {
		t.Errorf("want error for negative maxPayload")
	}
}

func TestAllowed(t *testing.T) {
	testcases := []struct {
		name   string
		cfg    Config
		method string
		want   bool
	}{
		{
			name:   "empty config allows everything",
			cfg:    Config{},
			method: "textDocument/hover",
			want:   true,
		},
		{
			name:   "include restricts",
			cfg:    Config{Include: []string{"textDocument/hover"}},
			method: "textDocument/completion",
			want:   false,
		},
		{
			name:   "exclude wins over include",
			cfg:    Config{Include: []string{"textDocument/hover"}, Exclude: []string{"textDocument/hover"}},
			method: "textDocument/hover",
			want:   false,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Allowed(tt.method); got != tt.want {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}
