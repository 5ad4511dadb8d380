// Package catalogue defines the removal-rule catalogue for delog.
//
// A rule describes one specific logger call shape to strip from a source
// file. Rules are declarative data: the stripper engine applies them in
// order without knowing anything about their content, and `delog rules`
// renders them for inspection.
package catalogue

import (
	"fmt"
	"regexp"

	"github.com/voxline/delog/internal/config"
)

// Rule describes a single logger call shape to remove.
type Rule struct {
	// Category groups related rules for display. It carries no matching
	// behavior; only the order of rules in the catalogue matters.
	Category string `mapstructure:"category" json:"category"`

	// Severity is the method name of the targeted call (debug/info/warn).
	// Informational: matching is driven entirely by Expr.
	Severity config.Severity `json:"severity"`

	// Expr is the regular expression matching the call, from the leading
	// identifier through the closing `);`. Trailing arguments are written
	// with a lazy `.*?`.
	Expr string `mapstructure:"expr" json:"expr"`

	// Multiline selects the trailing-content match mode. When true the
	// rule compiles with (?s) so `.*?` spans newlines, stopping at the
	// first `);` — required for calls whose argument object is formatted
	// across lines. When false `.` stops at a newline, so the rule only
	// matches calls that stay on one line. Choosing the wrong mode causes
	// under- or over-matching; the flag is set per rule by hand and never
	// inferred.
	Multiline bool `mapstructure:"multiline" json:"multiline"`
}

// Compile builds the rule's regular expression, applying the multi-line
// match mode when set.
func (r Rule) Compile() (*regexp.Regexp, error) {
	expr := r.Expr
	if r.Multiline {
		expr = "(?s)" + expr
	}
	// A newline directly after the call is consumed too, so removing a
	// call that sits on its own line deletes the whole line instead of
	// leaving a blank one behind.
	expr += "\n?"
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", r.Expr, err)
	}
	return re, nil
}

// Filter returns the rules matching the given category and severity.
// An empty category matches all categories; severityActive gates the
// severity comparison so callers can filter on any severity including none.
func Filter(rules []Rule, category string, severity config.Severity, severityActive bool) []Rule {
	if category == "" && !severityActive {
		return rules
	}

	filtered := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if category != "" && r.Category != category {
			continue
		}
		if severityActive && r.Severity != severity {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Categories returns the distinct categories of the catalogue in first-seen
// order.
func Categories(rules []Rule) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, r := range rules {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		categories = append(categories, r.Category)
	}
	return categories
}
