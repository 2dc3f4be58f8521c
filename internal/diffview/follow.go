package diffview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FollowOptions configures continuous diff rendering.
type FollowOptions struct {
	// File is the watched source file.
	File string

	// Baseline is the comparison file.
	Baseline string

	// Context is the number of unchanged lines shown around each hunk.
	Context int

	// Color enables ANSI colors on the rendered diff.
	Color bool

	// Debounce is the quiet period before re-rendering.
	Debounce time.Duration

	// Out receives the rendered diffs.
	Out io.Writer

	// Status receives one-line status updates.
	Status io.Writer

	// Logger is used for structured logging.
	Logger *slog.Logger
}

// Follow renders the diff once and then re-renders it every time either
// file changes, until the context is cancelled or a SIGINT/SIGTERM
// signal is received.
func Follow(ctx context.Context, opts FollowOptions) error {
	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}

	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Status == nil {
		opts.Status = os.Stderr
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files on save, which drops a watch registered on
	// the file itself, so the parent directories are watched instead.
	for _, dir := range watchDirs(opts.File, opts.Baseline) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	// Trap SIGINT / SIGTERM for graceful shutdown.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(opts.Status, "following %s against %s (debounce=%s)\n",
		opts.File, opts.Baseline, opts.Debounce)

	// Initial render.
	render(opts)

	debouncer := NewDebouncer(opts.Debounce, func() {
		render(opts)
	})
	defer debouncer.Stop()

	for {
		select {
		case <-sigCtx.Done():
			fmt.Fprintln(opts.Status, "\nshutting down")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if concerns(event, opts.File, opts.Baseline) {
				debouncer.Trigger()
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			opts.Logger.Error("watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

// render computes the current diff and writes one status line plus the
// diff body.
func render(opts FollowOptions) {
	now := time.Now().Format("15:04:05")

	unified, err := Unified(opts.Baseline, opts.File, opts.Context)
	if err != nil {
		fmt.Fprintf(opts.Status, "[%s] ERROR: %v\n", now, err)
		return
	}

	if unified == "" {
		fmt.Fprintf(opts.Status, "[%s] no differences\n", now)
		return
	}

	fmt.Fprintf(opts.Status, "[%s] changed\n", now)
	Write(opts.Out, unified, opts.Color)
}

// watchDirs returns the unique parent directories of the given paths.
func watchDirs(paths ...string) []string {
	seen := make(map[string]struct{}, len(paths))

	var dirs []string

	for _, p := range paths {
		dir := filepath.Dir(p)
		if _, ok := seen[dir]; ok {
			continue
		}

		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	return dirs
}

// concerns reports whether the event touches one of the followed paths
// with an operation worth a re-render.
func concerns(event fsnotify.Event, paths ...string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Clean(event.Name)
	for _, p := range paths {
		if name == filepath.Clean(p) {
			return true
		}
	}

	return false
}
