package catalogue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voxline/delog/internal/config"
)

func writeCatalogue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalogue(t, `rules:
  - category: Init
    severity: info
    expr: logger\.info\('HELLO'\);
  - category: Events
    severity: warn
    expr: logger\.warn\('ODD',.*?\);
    multiline: true
`)

	rules, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("Load() returned %d rules, want 2", len(rules))
	}

	if rules[0].Category != "Init" || rules[0].Severity != config.SeverityInfo || rules[0].Multiline {
		t.Errorf("rule 0 = %+v", rules[0])
	}
	if rules[1].Category != "Events" || rules[1].Severity != config.SeverityWarn || !rules[1].Multiline {
		t.Errorf("rule 1 = %+v", rules[1])
	}
	if rules[1].Expr != `logger\.warn\('ODD',.*?\);` {
		t.Errorf("rule 1 expr = %q", rules[1].Expr)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no rules",
			content: "rules: []\n",
			wantErr: "contains no rules",
		},
		{
			name: "missing expr",
			content: `rules:
  - category: Init
    severity: info
`,
			wantErr: "rule 1: expr is required",
		},
		{
			name: "unknown severity",
			content: `rules:
  - severity: fatal
    expr: logger\.info\('X'\);
`,
			wantErr: `rule 1: unknown severity "fatal"`,
		},
		{
			name: "broken expression",
			content: `rules:
  - severity: info
    expr: logger\.info\('X(
`,
			wantErr: "rule 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalogue(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}
