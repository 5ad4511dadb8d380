package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/voxline/delog/internal/catalogue"
	"github.com/voxline/delog/internal/config"
)

var testRules = []catalogue.Rule{
	{Category: "Init", Severity: config.SeverityInfo, Expr: `logger\.info\('HELLO'\);`},
	{Category: "Events", Severity: config.SeverityWarn, Expr: `logger\.warn\('ODD',.*?\);`, Multiline: true},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"table", FormatTable},
		{"", FormatText},
		{"bogus", FormatText},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWriteRules_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatText).WriteRules(testRules); err != nil {
		t.Fatalf("WriteRules() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if want := `[Init] info logger\.info\('HELLO'\); (single-line)`; lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[1], "(multi-line)") {
		t.Errorf("line 1 = %q, want multi-line mode label", lines[1])
	}
}

func TestWriteRules_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatJSON).WriteRules(testRules); err != nil {
		t.Fatalf("WriteRules() error = %v", err)
	}

	var got []catalogue.Rule
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rules, want 2", len(got))
	}
	if got[0].Severity != config.SeverityInfo {
		t.Errorf("rule 0 severity = %v, want info", got[0].Severity)
	}
	if got[1].Expr != testRules[1].Expr || !got[1].Multiline {
		t.Errorf("rule 1 = %+v", got[1])
	}
}

func TestWriteRules_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatTable).WriteRules(testRules); err != nil {
		t.Fatalf("WriteRules() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"CATEGORY", "SEVERITY", "MODE", "EXPR", "Init", "multi-line"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestColorizeSeverity(t *testing.T) {
	tests := []struct {
		severity config.Severity
		colored  bool
	}{
		{config.SeverityDebug, true},
		{config.SeverityWarn, true},
		{config.SeverityError, true},
		{config.SeverityInfo, false},
	}

	for _, tt := range tests {
		got := ColorizeSeverity(tt.severity, "x")
		if colored := strings.Contains(got, "\033["); colored != tt.colored {
			t.Errorf("ColorizeSeverity(%v) = %q, colored = %v, want %v", tt.severity, got, colored, tt.colored)
		}
	}
}

func TestFormatRule(t *testing.T) {
	plain := FormatRule(testRules[1], false)
	if want := `[Events] warn logger\.warn\('ODD',.*?\); (multi-line)`; plain != want {
		t.Errorf("FormatRule() = %q, want %q", plain, want)
	}

	colored := FormatRule(testRules[1], true)
	if !strings.HasPrefix(colored, "\033[33m") || !strings.HasSuffix(colored, "\033[0m") {
		t.Errorf("FormatRule() colored = %q, want yellow wrapping", colored)
	}
}

func TestWriteColoredRule_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	wr := New(&buf, FormatText)
	if err := wr.WriteColoredRule(testRules[1], ColorAuto); err != nil {
		t.Fatalf("WriteColoredRule() error = %v", err)
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("ColorAuto wrote ANSI codes to a non-TTY writer: %q", buf.String())
	}

	buf.Reset()
	if err := wr.WriteColoredRule(testRules[1], ColorAlways); err != nil {
		t.Fatalf("WriteColoredRule() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\033[33m") {
		t.Errorf("ColorAlways did not colorize: %q", buf.String())
	}
}
