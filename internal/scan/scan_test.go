package scan

import (
	"testing"

	"github.com/voxline/delog/internal/catalogue"
	"github.com/voxline/delog/internal/config"
	"github.com/voxline/delog/internal/stripper"
)

func TestCalls(t *testing.T) {
	text := "init();\nlogger.info('hello', { a: 1 });\ncode();\nlogger.error('boom');\nlogger.debug( 'spaced' );\n"

	calls := Calls(text)
	if len(calls) != 3 {
		t.Fatalf("Calls() returned %d calls, want 3", len(calls))
	}

	want := []Call{
		{Severity: config.SeverityInfo, Message: "hello", Line: 2},
		{Severity: config.SeverityError, Message: "boom", Line: 4},
		{Severity: config.SeverityDebug, Message: "spaced", Line: 5},
	}
	for i, c := range calls {
		if c != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, c, want[i])
		}
	}
}

func TestCalls_EscapedQuote(t *testing.T) {
	calls := Calls(`logger.warn('it\'s fine', x);`)
	if len(calls) != 1 {
		t.Fatalf("Calls() returned %d calls, want 1", len(calls))
	}
	if calls[0].Message != `it\'s fine` {
		t.Errorf("Message = %q", calls[0].Message)
	}
}

func TestCalls_Empty(t *testing.T) {
	if calls := Calls("const x = 1;\n"); calls != nil {
		t.Errorf("Calls() = %+v, want nil", calls)
	}
}

func TestPreserved(t *testing.T) {
	tests := []struct {
		name string
		call Call
		want bool
	}{
		{name: "error call", call: Call{Severity: config.SeverityError, Message: "boom"}, want: true},
		{name: "stopwatch call", call: Call{Severity: config.SeverityDebug, Message: "⏱️ STT latency"}, want: true},
		{name: "plain info call", call: Call{Severity: config.SeverityInfo, Message: "hello"}, want: false},
		{name: "plain warn call", call: Call{Severity: config.SeverityWarn, Message: "odd state"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.call.Preserved(); got != tt.want {
				t.Errorf("Preserved() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSurvivorsAndCandidates(t *testing.T) {
	s, err := stripper.New(catalogue.Default())
	if err != nil {
		t.Fatalf("stripper.New() error = %v", err)
	}

	text := "logger.info('✅ STARTING SESSION (v3)');\n" +
		"logger.error('boom');\n" +
		"logger.debug('⏱️ PERF', 5);\n" +
		"logger.info('NEW THING', data);\n"

	survivors := Survivors(s, text)
	if len(survivors) != 3 {
		t.Fatalf("Survivors() returned %d calls, want 3", len(survivors))
	}

	candidates := Candidates(survivors)
	if len(candidates) != 1 {
		t.Fatalf("Candidates() returned %d calls, want 1", len(candidates))
	}
	if candidates[0].Message != "NEW THING" {
		t.Errorf("candidate message = %q, want %q", candidates[0].Message, "NEW THING")
	}
	if candidates[0].Severity != config.SeverityInfo {
		t.Errorf("candidate severity = %v, want info", candidates[0].Severity)
	}
}
