// Package clipboard places the generated command line on the system
// clipboard, either through an external command or an in-process backend.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	atotto "github.com/atotto/clipboard"

	"github.com/hupe1980/watchpick/internal/watchcmd"
)

// Builtin selects the in-process clipboard backend instead of an external
// command.
const Builtin = "builtin"

// Copier puts text on the system clipboard.
type Copier interface {
	Copy(ctx context.Context, text string) error
}

// New returns the Copier for the given copy command. The Builtin sentinel
// picks the in-process backend; anything else is parsed with shell rules
// and run as an external command receiving the text on stdin.
func New(command string) Copier {
	if command == Builtin {
		return builtinCopier{}
	}

	return &commandCopier{command: command}
}

type builtinCopier struct{}

func (builtinCopier) Copy(_ context.Context, text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}

	return nil
}

type commandCopier struct {
	command string
}

// Copy pipes text plus a trailing newline into the configured command.
func (c *commandCopier) Copy(ctx context.Context, text string) error {
	argv, err := watchcmd.Split(c.command)
	if err != nil || len(argv) == 0 {
		return fmt.Errorf("invalid copy command %q", c.command)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text + "\n")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError

		switch {
		case errors.As(err, &exitErr):
			return fmt.Errorf("copy failed (exit %d): %s", exitErr.ExitCode(), c.command)
		case errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("copy command not found: %s", c.command)
		default:
			return fmt.Errorf("running copy command %s: %w", c.command, err)
		}
	}

	return nil
}
