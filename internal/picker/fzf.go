package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hupe1980/watchpick/internal/scan"
)

// fzfArgs keeps the finder usable for CJK filenames: matching and display
// run on the relative name in field one while the preview reads the
// absolute path in field two.
var fzfArgs = []string{
	"--delimiter=\t",
	"--with-nth=1",
	"--nth=1",
	"--prompt=watch> ",
	"--preview", "sed -n '1,60p' {2}",
	"--preview-window=right:60%:wrap",
	"--cycle",
}

// Fzf pipes the candidates through the fzf binary at Path.
//
// The exit status is ignored: only the emitted output decides between a
// selection and a cancellation, so cancelling inside fzf ends the pick
// instead of falling through to another picker.
type Fzf struct {
	Path string
}

// Pick runs fzf over the entries and parses whatever it printed.
func (f *Fzf) Pick(ctx context.Context, entries []scan.Entry) (Selection, error) {
	var input strings.Builder
	for _, e := range entries {
		input.WriteString(e.Display)
		input.WriteByte('\t')
		input.WriteString(e.Path)
		input.WriteByte('\n')
	}

	var out bytes.Buffer

	cmd := exec.CommandContext(ctx, f.Path, fzfArgs...)
	cmd.Stdin = strings.NewReader(input.String())
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Selection{}, fmt.Errorf("running fzf: %w", err)
		}
	}

	return ParseOutput(out.String()), nil
}

// ParseOutput maps fzf's stdout to a Selection. Empty output is a
// cancellation; otherwise the path is everything after the first tab, or
// the whole line when no tab is present.
func ParseOutput(out string) Selection {
	line := strings.TrimRight(out, "\n")
	if line == "" {
		return Selection{Cancelled: true}
	}

	if _, path, ok := strings.Cut(line, "\t"); ok {
		return Selection{Path: path}
	}

	return Selection{Path: line}
}
