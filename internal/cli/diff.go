package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/watchpick/internal/baseline"
	"github.com/hupe1980/watchpick/internal/config"
	"github.com/hupe1980/watchpick/internal/diffview"
	"github.com/hupe1980/watchpick/internal/logging"
	"github.com/hupe1980/watchpick/internal/picker"
)

type diffOptions struct {
	// Keep re-rendering while either file changes.
	follow bool

	// Unchanged lines shown around each hunk.
	contextLines int

	// Colorize the rendered diff.
	color bool

	// Quiet period between a change and the re-render.
	debounce time.Duration
}

func newDiffCommand() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff [query]",
		Short: "Show how a picked file differs from its baseline",
		Long: `Diff picks a file the same way the root command does, resolves its
baseline, and prints a unified diff of baseline versus file.

With --follow the diff is re-rendered whenever either file changes,
until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = strings.TrimSpace(args[0])
			}

			return runDiff(cmd.Context(), cmd, query, opts)
		},
	}

	registerSearchFlags(cmd)
	registerBaselineFlags(cmd)

	f := cmd.Flags()
	f.BoolVar(&opts.follow, "follow", false, "re-render the diff on file changes")
	f.IntVar(&opts.contextLines, "context", 3, "unchanged lines shown around each hunk")
	f.BoolVar(&opts.color, "color", false, "colorize the diff output")
	f.DurationVar(&opts.debounce, "debounce", 500*time.Millisecond, "quiet period before re-rendering with --follow")

	return cmd
}

func runDiff(ctx context.Context, cmd *cobra.Command, query string, opts *diffOptions) error {
	logger := logging.FromContext(ctx)

	settings, err := config.ResolveSettings(cmd)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	settings.Query = query

	root, err := checkRoot(settings.Root)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	settings.Root = root

	entries, err := candidates(settings, logger)
	if err != nil {
		return err
	}

	sel, err := picker.Default(cmd.InOrStdin(), cmd.ErrOrStderr()).Pick(ctx, entries)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	if sel.Cancelled {
		return nil
	}

	file, err := filepath.Abs(sel.Path)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("resolving %s: %w", sel.Path, err)}
	}

	policy := baseline.Policy{
		Suppress: settings.NoBaseline,
		Override: settings.Baseline,
		Root:     settings.BaselineRoot,
	}

	base := policy.Resolve(file)
	if base == "" {
		return &ExitError{Code: 1, Err: errors.New("nothing to diff against with --no-baseline")}
	}

	if _, err := os.Stat(base); err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("baseline not found: %s", base)}
	}

	if opts.follow {
		err := diffview.Follow(ctx, diffview.FollowOptions{
			File:     file,
			Baseline: base,
			Context:  opts.contextLines,
			Color:    opts.color,
			Debounce: opts.debounce,
			Out:      cmd.OutOrStdout(),
			Status:   cmd.ErrOrStderr(),
			Logger:   logger,
		})
		if err != nil {
			return &ExitError{Code: 1, Err: err}
		}

		return nil
	}

	unified, err := diffview.Unified(base, file, opts.contextLines)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	diffview.Write(cmd.OutOrStdout(), unified, opts.color)

	return nil
}
