package output

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/voxline/delog/internal/catalogue"
	"github.com/voxline/delog/internal/config"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // Auto-detect based on TTY
	ColorAlways                  // Always use colors
	ColorNever                   // Never use colors
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// shouldColorize determines if output should be colorized based on mode and TTY detection.
func shouldColorize(mode ColorMode, w interface{}) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		if f, ok := w.(*os.File); ok {
			return isTerminal(f)
		}
		return false
	}
	return false
}

// ColorizeSeverity adds color to text based on a rule's severity.
func ColorizeSeverity(severity config.Severity, text string) string {
	switch severity {
	case config.SeverityDebug:
		return colorGray + text + colorReset
	case config.SeverityWarn:
		return colorYellow + text + colorReset
	case config.SeverityError:
		return colorRed + text + colorReset
	default:
		return text // info and unknown use default color
	}
}

// FormatRule formats a single rule as a text line with optional coloring.
func FormatRule(rule catalogue.Rule, colorize bool) string {
	line := fmt.Sprintf("[%s] %s %s (%s)", rule.Category, rule.Severity, rule.Expr, modeLabel(rule))
	if colorize {
		return ColorizeSeverity(rule.Severity, line)
	}
	return line
}

// WriteColoredRule writes a rule to the writer with color based on ColorMode.
func (wr *Writer) WriteColoredRule(rule catalogue.Rule, mode ColorMode) error {
	colorize := shouldColorize(mode, wr.w)
	_, err := fmt.Fprintln(wr.w, FormatRule(rule, colorize))
	return err
}
