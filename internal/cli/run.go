package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hupe1980/watchpick/internal/baseline"
	"github.com/hupe1980/watchpick/internal/clipboard"
	"github.com/hupe1980/watchpick/internal/config"
	"github.com/hupe1980/watchpick/internal/logging"
	"github.com/hupe1980/watchpick/internal/picker"
	"github.com/hupe1980/watchpick/internal/scan"
	"github.com/hupe1980/watchpick/internal/watchcmd"
)

// runPick drives the pick pipeline: enumerate candidates, rank them,
// pick one, assemble the watch command, and dispatch it.
func runPick(ctx context.Context, cmd *cobra.Command, query string, passthrough []string) error {
	logger := logging.FromContext(ctx)

	settings, err := config.ResolveSettings(cmd)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	settings.Query = query
	settings.Passthrough = passthrough

	root, err := checkRoot(settings.Root)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	settings.Root = root

	if _, err := os.Stat(settings.WatchTS); err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf(
			"watch.ts not found: %s (set $SUB_WATCH_TS or --watch-ts)", settings.WatchTS)}
	}

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
	argv := watchcmd.Build(settings.WatchTS, file, settings.FileType, settings.NoWarn, base, settings.Passthrough)

	logger.Debug("watch command assembled",
		slog.String("file", file),
		slog.String("baseline", base),
		slog.Int("argvLen", len(argv)),
	)

	return dispatch(ctx, cmd, settings, argv)
}

// checkRoot verifies the search root and returns it as an absolute path.
// Error messages keep the root as the user spelled it.
func checkRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("--root does not exist: %s", root)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("--root is not a directory: %s", root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving --root: %w", err)
	}

	return abs, nil
}

// candidates enumerates, filters, and ranks the files offered to the
// picker.
func candidates(settings *config.Settings, logger *slog.Logger) ([]scan.Entry, error) {
	entries, err := scan.List(settings.Root, settings.Recursive)
	if err != nil {
		return nil, &ExitError{Code: 1, Err: fmt.Errorf("listing %s: %w", settings.Root, err)}
	}

	entries = scan.FilterExt(entries, settings.Ext)
	if len(entries) == 0 {
		return nil, &ExitError{Code: 1, Err: fmt.Errorf("no files found under %s", settings.Root)}
	}

	scan.Rank(entries)

	if settings.Query != "" {
		entries = scan.FilterQuery(entries, settings.Query)
		if len(entries) == 0 {
			return nil, &ExitError{Code: 1, Err: fmt.Errorf(
				"no matches for query=%q under %s", settings.Query, settings.Root)}
		}
	}

	logger.Debug("candidates ready",
		slog.Int("count", len(entries)),
		slog.Bool("recursive", settings.Recursive),
		slog.String("root", settings.Root),
	)

	return entries, nil
}

// dispatch prints, copies, and/or runs the assembled watch command
// according to the settings.
func dispatch(ctx context.Context, cmd *cobra.Command, settings *config.Settings, argv []string) error {
	command := watchcmd.Join(argv)

	if settings.Print || settings.Copy || settings.NoRun {
		fmt.Fprintln(cmd.OutOrStdout(), command)
	}

	if settings.Copy {
		if err := clipboard.New(settings.CopyCmd).Copy(ctx, command); err != nil {
			return &ExitError{Code: 3, Err: err}
		}
	}

	if settings.NoRun {
		return nil
	}

	child := exec.CommandContext(ctx, argv[0], argv[1:]...)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The child's exit status becomes ours, with no extra message.
			return &ExitError{Code: exitErr.ExitCode()}
		}

		return &ExitError{Code: 1, Err: fmt.Errorf("running %s: %w", argv[0], err)}
	}

	return nil
}
