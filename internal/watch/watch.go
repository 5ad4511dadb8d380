// Package watch re-strips a source file whenever it changes on disk.
//
// It wraps fsnotify with a debounce for editor/generator write bursts and a
// content hash check so the stripper's own write-back does not retrigger a
// strip.
package watch

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/voxline/delog/internal/stripper"
)

// DefaultDebounce is the quiet period waited after an event burst before
// re-stripping.
const DefaultDebounce = 200 * time.Millisecond

// Options configures the watcher behavior.
type Options struct {
	FilePath string                       // Path to the source file
	Stripper *stripper.Stripper           // Engine run on each change
	Debounce time.Duration                // Quiet period after an event burst
	OnStrip  func(*stripper.Report) error // Called after each completed strip
	Logger   *slog.Logger
}

// Watcher strips a file on every real content change.
type Watcher struct {
	opts    Options
	watcher *fsnotify.Watcher

	// lastSum is the hash of the file content after our most recent
	// write-back; events whose content matches it are our own.
	lastSum [sha256.Size]byte
	hasSum  bool
}

// New creates a new Watcher with the given options.
func New(opts Options) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{opts: opts}
}

// Run strips the file once, then re-strips it on every change. It blocks
// until the context is cancelled or an error occurs.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.strip(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to setup watcher: %w", err)
	}
	w.watcher = watcher
	defer watcher.Close()

	// Watch the directory rather than the file: editors and generators
	// often replace the file wholesale, which silently drops a file-level
	// watch.
	dir := filepath.Dir(w.opts.FilePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return w.watch(ctx)
}

// watch monitors the directory for changes to the target file.
func (w *Watcher) watch(ctx context.Context) error {
	debounce := time.NewTimer(w.opts.Debounce)
	debounce.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed unexpectedly")
			}
			if !w.relevant(event) {
				continue
			}
			w.opts.Logger.Debug("file event", "op", event.Op.String(), "path", event.Name)
			debounce.Stop()
			debounce.Reset(w.opts.Debounce)
			pending = true

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			if err := w.stripIfChanged(); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// relevant reports whether an event concerns the target file and can change
// its content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.opts.FilePath) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// stripIfChanged strips the file unless its content still matches our last
// write-back. A missing file is not an error: a generator may have removed
// it ahead of a rewrite, and the recreate event will bring us back here.
func (w *Watcher) stripIfChanged() error {
	data, err := os.ReadFile(w.opts.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			w.opts.Logger.Debug("file missing, waiting for recreate", "path", w.opts.FilePath)
			return nil
		}
		return fmt.Errorf("read %s: %w", w.opts.FilePath, err)
	}

	if w.hasSum && sha256.Sum256(data) == w.lastSum {
		w.opts.Logger.Debug("content unchanged since last strip", "path", w.opts.FilePath)
		return nil
	}

	return w.strip()
}

// strip runs the stripper over the file and records the hash of what was
// written.
func (w *Watcher) strip() error {
	report, err := w.opts.Stripper.StripFile(w.opts.FilePath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(w.opts.FilePath)
	if err != nil {
		return fmt.Errorf("read back %s: %w", w.opts.FilePath, err)
	}
	w.lastSum = sha256.Sum256(data)
	w.hasSum = true

	w.opts.Logger.Info("stripped file",
		"path", report.Path,
		"removed", report.Removed,
		"bytes_before", report.BytesBefore,
		"bytes_after", report.BytesAfter)

	if w.opts.OnStrip != nil {
		return w.opts.OnStrip(report)
	}
	return nil
}
