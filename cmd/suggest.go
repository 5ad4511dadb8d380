package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxline/delog/internal/config"
	"github.com/voxline/delog/internal/llm"
	"github.com/voxline/delog/internal/output"
	"github.com/voxline/delog/internal/scan"
	"github.com/voxline/delog/internal/stripper"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <file>",
	Short: "Ask an LLM which remaining logger calls could join the catalogue",
	Long: `Suggest runs the active catalogue over the file in memory (the file is not
modified), scans the result for logger calls that survived, drops the
deliberately kept classes (logger.error and ⏱️-prefixed performance logs),
and asks an LLM to classify the remainder as strip or keep.

Suggestions are advisory text: whether a new rule needs the multi-line
argument mode is a per-call judgement that stays with you.

Examples:
  delog suggest src/handler.ts
  delog suggest --format json src/handler.ts`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format := output.ParseFormat(viper.GetString("format"))
	verbose := viper.GetBool("verbose")
	ctx := context.Background()

	rules, err := activeCatalogue()
	if err != nil {
		return err
	}

	s, err := stripper.New(rules)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%s: %w", filePath, stripper.ErrNotUTF8)
	}

	survivors := scan.Survivors(s, string(data))
	candidates := scan.Candidates(survivors)

	if len(candidates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "The catalogue already covers every strippable logger call in this file.")
		return nil
	}

	if format == output.FormatText && verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Found %d uncatalogued logger call(s)...\n\n", len(candidates))
	}

	// Initialize LLM provider
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	cfg := &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	provider, err := llm.NewProvider(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w\n\nTroubleshooting:\n- Ensure Ollama is running: ollama serve\n- Check provider config in ~/.delog.yaml", err)
	}

	// Health check
	if err := provider.Heartbeat(ctx); err != nil {
		if cfg.LLM.Provider == "ollama" {
			return fmt.Errorf("cannot connect to Ollama at %s: %w\n\nStart Ollama with: ollama serve",
				cfg.LLM.Ollama.Host, err)
		}
		return fmt.Errorf("LLM provider %s unavailable: %w", cfg.LLM.Provider, err)
	}

	messages := []llm.Message{
		{Role: "system", Content: buildSuggestSystemPrompt()},
		{Role: "user", Content: buildSuggestUserPrompt(filePath, candidates)},
	}

	chatOpts := &llm.ChatOptions{
		Model:       cfg.LLM.Ollama.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}

	stream, err := provider.ChatStream(ctx, messages, chatOpts)
	if err != nil {
		return fmt.Errorf("failed to start LLM stream: %w", err)
	}

	if format == output.FormatText {
		fmt.Fprintln(cmd.OutOrStdout(), "=== Suggestions ===")
		fmt.Fprintln(cmd.OutOrStdout())
	}

	var fullResponse strings.Builder
	for event := range stream {
		if event.Error != nil {
			if fullResponse.Len() > 0 {
				fmt.Fprintf(os.Stderr, "\n\nError during streaming: %v\n", event.Error)
			}
			return event.Error
		}

		if event.Content != "" {
			if format == output.FormatText {
				fmt.Fprint(cmd.OutOrStdout(), event.Content)
			}
			fullResponse.WriteString(event.Content)
		}
	}

	if format == output.FormatText {
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	result := map[string]interface{}{
		"file":        filePath,
		"candidates":  candidates,
		"suggestions": fullResponse.String(),
		"metadata": map[string]interface{}{
			"provider":  cfg.LLM.Provider,
			"model":     chatOpts.Model,
			"rules":     len(rules),
			"survivors": len(survivors),
		},
	}

	return output.New(cmd.OutOrStdout(), output.FormatJSON).WriteJSON(result)
}
