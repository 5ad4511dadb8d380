package llm

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/voxline/delog/internal/config"
)

func testConfig(provider string) *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Provider: provider,
			Ollama: config.OllamaConfig{
				Host:  "http://localhost:11434",
				Model: "llama3.2",
			},
		},
	}
}

func TestNewProvider(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	provider, err := NewProvider(testConfig("ollama"), logger)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if provider == nil {
		t.Fatal("NewProvider() returned nil provider")
	}
}

func TestNewProvider_CaseInsensitive(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	if _, err := NewProvider(testConfig("Ollama"), logger); err != nil {
		t.Errorf("NewProvider() error = %v", err)
	}
}

func TestNewProvider_Errors(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name    string
		cfg     *config.Config
		logger  *slog.Logger
		wantErr string
	}{
		{name: "nil config", cfg: nil, logger: logger, wantErr: "config cannot be nil"},
		{name: "nil logger", cfg: testConfig("ollama"), logger: nil, wantErr: "logger cannot be nil"},
		{name: "empty provider", cfg: testConfig(""), logger: logger, wantErr: "not specified"},
		{name: "unknown provider", cfg: testConfig("openai"), logger: logger, wantErr: "unknown llm provider: openai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.cfg, tt.logger)
			if err == nil {
				t.Fatal("NewProvider() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewProvider() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
