package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxline/delog/internal/catalogue"
	"github.com/voxline/delog/internal/config"
)

func newRulesTestCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "rules"}
	cmd.Flags().String("category", "", "")
	cmd.Flags().StringP("severity", "s", "", "")
	cmd.Flags().Bool("no-color", false, "")

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func TestRunRules(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd, buf := newRulesTestCmd()
	if err := runRules(cmd, nil); err != nil {
		t.Fatalf("runRules() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 73 {
		t.Errorf("got %d lines, want 73", len(lines))
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("output to a buffer carries ANSI codes")
	}
}

func TestRunRules_SeverityFilter(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	warnRules := 0
	for _, r := range catalogue.Default() {
		if r.Severity == config.SeverityWarn {
			warnRules++
		}
	}
	if warnRules == 0 {
		t.Fatal("built-in catalogue has no warn rules; filter test is vacuous")
	}

	cmd, buf := newRulesTestCmd()
	if err := cmd.Flags().Set("severity", "warn"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := runRules(cmd, nil); err != nil {
		t.Fatalf("runRules() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != warnRules {
		t.Errorf("got %d lines, want %d", len(lines), warnRules)
	}
	for _, line := range lines {
		if !strings.Contains(line, " warn ") {
			t.Errorf("non-warn rule in filtered output: %q", line)
		}
	}
}

func TestRunRules_CategoryFilter(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd, buf := newRulesTestCmd()
	if err := cmd.Flags().Set("category", "VAD"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := runRules(cmd, nil); err != nil {
		t.Fatalf("runRules() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatal("category filter returned no rules")
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[VAD]") {
			t.Errorf("non-VAD rule in filtered output: %q", line)
		}
	}
}

func TestRunRules_JSON(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("format", "json")

	cmd, buf := newRulesTestCmd()
	if err := runRules(cmd, nil); err != nil {
		t.Fatalf("runRules() error = %v", err)
	}

	var rules []catalogue.Rule
	if err := json.Unmarshal(buf.Bytes(), &rules); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(rules) != 73 {
		t.Errorf("got %d rules, want 73", len(rules))
	}
}

func TestRunRules_InvalidSeverity(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd, _ := newRulesTestCmd()
	if err := cmd.Flags().Set("severity", "fatal"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	err := runRules(cmd, nil)
	if err == nil {
		t.Fatal("runRules() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "invalid severity") {
		t.Errorf("runRules() error = %q, want invalid severity", err)
	}
}
