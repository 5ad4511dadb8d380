// Package scan finds logger call sites in source text.
//
// It locates call heads of the form logger.<severity>('message', ...) and is
// deliberately shallow: no syntax tree, just the same pattern-level view of
// the source that the stripper itself has.
package scan

import (
	"regexp"
	"strings"

	"github.com/voxline/delog/internal/config"
	"github.com/voxline/delog/internal/stripper"
)

// StopwatchPrefix marks performance log messages. Calls whose message starts
// with it are never candidates for removal.
const StopwatchPrefix = "⏱️"

// callPattern matches a logger call head through its single-quoted message.
var callPattern = regexp.MustCompile(`logger\.(debug|info|warn|error)\(\s*'((?:[^'\\]|\\.)*)'`)

// Call is one logger call site found in a buffer.
type Call struct {
	Severity config.Severity `json:"severity"`
	Message  string          `json:"message"`
	Line     int             `json:"line"`
}

// Preserved reports whether the call belongs to a class the stripper keeps
// by design: error-severity calls and stopwatch-prefixed performance calls.
func (c Call) Preserved() bool {
	return c.Severity == config.SeverityError || strings.HasPrefix(c.Message, StopwatchPrefix)
}

// Calls returns every logger call site in the text, in order of appearance,
// with 1-based line numbers.
func Calls(text string) []Call {
	matches := callPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	calls := make([]Call, 0, len(matches))
	line := 1
	last := 0
	for _, m := range matches {
		line += strings.Count(text[last:m[0]], "\n")
		last = m[0]
		calls = append(calls, Call{
			Severity: config.ParseSeverity(text[m[2]:m[3]]),
			Message:  text[m[4]:m[5]],
			Line:     line,
		})
	}
	return calls
}

// Survivors returns the calls that remain after the stripper has run over
// the text. Line numbers refer to the stripped buffer.
func Survivors(s *stripper.Stripper, text string) []Call {
	return Calls(s.Strip(text))
}

// Candidates filters calls down to those the catalogue could be extended to
// cover: everything except the deliberately preserved classes.
func Candidates(calls []Call) []Call {
	var candidates []Call
	for _, c := range calls {
		if c.Preserved() {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates
}
