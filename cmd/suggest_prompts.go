package cmd

import (
	"fmt"
	"strings"

	"github.com/voxline/delog/internal/scan"
)

// buildSuggestSystemPrompt creates the system prompt for the suggest command.
func buildSuggestSystemPrompt() string {
	return `You are a code cleanup reviewer for a voice-call backend. You are given a
list of logger calls that a log-stripping catalogue does not yet cover.
Classify each call as STRIP (safe to add to the removal catalogue) or KEEP,
with a one-line reason.

Rules:
- Never suggest stripping logger.error calls.
- Never suggest stripping performance logs (messages starting with ⏱️).
- Keep logs that record operational state changes, external failures, or
  anything an on-call engineer would grep for during an incident.
- Strip progress chatter, per-chunk/per-event noise, and success
  confirmations that duplicate adjacent logs.
- Do not invent calls that are not in the list.
- If a call's arguments likely span multiple source lines (objects, long
  expressions), say so: the catalogue entry will need its multi-line mode.`
}

// buildSuggestUserPrompt lists the candidate calls for classification.
func buildSuggestUserPrompt(filePath string, candidates []scan.Call) string {
	var sb strings.Builder

	sb.WriteString("File: ")
	sb.WriteString(filePath)
	sb.WriteString("\n\nUncatalogued logger calls:\n")

	for _, c := range candidates {
		sb.WriteString(fmt.Sprintf("  line %d: logger.%s('%s', ...)\n", c.Line, c.Severity, c.Message))
	}

	return sb.String()
}
