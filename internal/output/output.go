// Package output provides formatted output rendering for catalogue rules
// and strip reports. It supports text, JSON, and table formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/voxline/delog/internal/catalogue"
)

// Format represents an output format type.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Writer handles writing formatted output.
type Writer struct {
	w      io.Writer
	format Format
}

// New creates a new output Writer.
func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// WriteRules outputs a rule catalogue in the configured format.
func (wr *Writer) WriteRules(rules []catalogue.Rule) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(rules)
	case FormatTable:
		return wr.writeTable(rules)
	default:
		return wr.writeText(rules)
	}
}

// WriteJSON outputs any value as indented JSON.
func (wr *Writer) WriteJSON(v interface{}) error {
	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (wr *Writer) writeText(rules []catalogue.Rule) error {
	for _, r := range rules {
		fmt.Fprintln(wr.w, FormatRule(r, false))
	}
	return nil
}

func (wr *Writer) writeTable(rules []catalogue.Rule) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSEVERITY\tMODE\tEXPR")
	fmt.Fprintln(tw, "--------\t--------\t----\t----")

	for _, r := range rules {
		expr := r.Expr
		if len(expr) > 80 {
			expr = expr[:77] + "..."
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Category, r.Severity, modeLabel(r), expr)
	}

	return tw.Flush()
}

// modeLabel names the trailing-content match mode of a rule.
func modeLabel(r catalogue.Rule) string {
	if r.Multiline {
		return "multi-line"
	}
	return "single-line"
}
