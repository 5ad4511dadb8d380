package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxline/delog/internal/stripper"
	"github.com/voxline/delog/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-strip a source file whenever it changes",
	Long: `Watch strips the file once, then keeps watching it and re-strips on every
change. Useful while a code generator or upstream tool keeps rewriting the
file with the verbose logging back in.

The watcher debounces write bursts and recognizes its own write-back by
content hash, so stripping never triggers itself.

Examples:
  delog watch src/handler.ts
  delog watch --debounce 500ms src/handler.ts`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period after a change before re-stripping")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	debounce, _ := cmd.Flags().GetDuration("debounce")

	// Validate file exists
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %s", filePath)
	}

	rules, err := activeCatalogue()
	if err != nil {
		return err
	}

	s, err := stripper.New(rules)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	watcher := watch.New(watch.Options{
		FilePath: filePath,
		Stripper: s,
		Debounce: debounce,
		Logger:   logger,
	})

	// Set up context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- watcher.Run(ctx)
	}()

	select {
	case <-sigChan:
		// Signal received, cancel context and wait for the watcher to finish
		cancel()
		<-errChan
		return nil
	case err := <-errChan:
		return err
	}
}
