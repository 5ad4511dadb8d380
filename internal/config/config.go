// Package config provides configuration types and helpers for delog.
package config

import (
	"encoding/json"
	"strings"
)

// Config holds the application-wide configuration.
type Config struct {
	Format    string    `mapstructure:"format"`
	Verbose   bool      `mapstructure:"verbose"`
	Catalogue string    `mapstructure:"catalogue"`
	LLM       LLMConfig `mapstructure:"llm"`
}

// LLMConfig holds configuration for the LLM provider used by `delog suggest`.
type LLMConfig struct {
	// Provider selects which LLM to use. Only "ollama" is supported.
	Provider string `mapstructure:"provider"`

	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`

	Ollama OllamaConfig `mapstructure:"ollama"`
}

// OllamaConfig holds Ollama-specific settings.
type OllamaConfig struct {
	Host  string `mapstructure:"host"`  // API endpoint
	Model string `mapstructure:"model"` // Default model name
}

// Severity represents a logger call's method name (debug/info/warn/error).
//
// The stripper only ever targets debug, info, and warn calls; error calls are
// preserved by omission from the catalogue. Severity on a rule is
// informational and used for display filtering, never for matching.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
	SeverityUnknown
)

// String returns the string representation of a Severity.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler for Severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ParseSeverity(str)
	return nil
}

// ParseSeverity converts a string to a Severity.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "debug", "dbg":
		return SeverityDebug
	case "info", "inf":
		return SeverityInfo
	case "warn", "warning":
		return SeverityWarn
	case "error", "err":
		return SeverityError
	default:
		return SeverityUnknown
	}
}
