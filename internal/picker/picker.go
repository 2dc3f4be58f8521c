// Package picker presents the ranked candidates and returns the user's
// choice, preferring fzf and falling back to a numbered list when it is
// not installed.
package picker

import (
	"context"
	"io"
	"os/exec"

	"github.com/hupe1980/watchpick/internal/scan"
)

// Selection is the outcome of a pick: a chosen path or a cancellation.
type Selection struct {
	Path      string
	Cancelled bool
}

// Picker asks the user to choose one of the offered entries.
type Picker interface {
	Pick(ctx context.Context, entries []scan.Entry) (Selection, error)
}

// Default returns the interactive picker for this environment: fzf when
// it is on PATH, otherwise a numbered list reading from in and prompting
// on out.
func Default(in io.Reader, out io.Writer) Picker {
	if path, err := exec.LookPath("fzf"); err == nil {
		return &Fzf{Path: path}
	}

	return &List{In: in, Out: out}
}
