// Package cli implements the cobra command tree for watchpick.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/watchpick/internal/config"
	"github.com/hupe1980/watchpick/internal/logging"
)

// ExitError wraps an error with a specific process exit code. A nil Err
// propagates the code without printing anything.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it, and returns the exit code.
// Failures are reported as a single "error:" line on stderr.
func Execute() int {
	cmd := NewRootCommand()

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", exitErr.Err)
			}

			return exitErr.Code
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		return 1
	}

	return 0
}

// NewRootCommand constructs the top-level cobra.Command with all
// subcommands attached.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchpick [query] [-- passthrough...]",
		Short: "Pick a text file interactively and launch the watch CLI on it",
		Long: `watchpick lists the text files under a root directory, newest first,
lets you pick one with fzf (or a numbered list when fzf is missing),
and launches the watch CLI on the picked file with a derived baseline.

The optional query narrows the candidates by filename before the picker
opens, so a short ASCII fragment is enough to reach files whose names
are hard to type. Arguments after -- are handed to the watch CLI
verbatim.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			logger := logging.Setup(cfg)

			ctx := cmd.Context()
			ctx = config.NewContext(ctx, cfg)
			ctx = logging.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug("configuration loaded",
				slog.String("logLevel", cfg.LogLevel),
				slog.String("logFormat", cfg.LogFormat),
			)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			query, passthrough := splitPositionals(cmd, args)

			return runPick(cmd.Context(), cmd, query, passthrough)
		},
	}

	// Flag parsing stops at the first positional argument; anything after
	// it belongs to the watch CLI.
	cmd.Flags().SetInterspersed(false)

	registerSearchFlags(cmd)
	registerLaunchFlags(cmd)
	registerBaselineFlags(cmd)
	registerDispatchFlags(cmd)

	// Global persistent flags.
	pf := cmd.PersistentFlags()
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text, json")

	// Flag parsing errors return exit code 2.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	// Register subcommands.
	cmd.AddCommand(
		newVersionCommand(),
		newDiffCommand(),
		newCompletionCommand(),
	)

	return cmd
}

// splitPositionals separates the optional query from the passthrough
// arguments. Everything after -- is passthrough even when no query was
// given.
func splitPositionals(cmd *cobra.Command, args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	if cmd.ArgsLenAtDash() == 0 {
		return "", args
	}

	return strings.TrimSpace(args[0]), args[1:]
}
