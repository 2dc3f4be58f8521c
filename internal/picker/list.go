package picker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/watchpick/internal/scan"
)

// maxListed caps how many candidates the numbered fallback prints.
const maxListed = 50

// List is the picker used when fzf is not installed: it prints a numbered
// menu on Out and reads one choice from In.
type List struct {
	In  io.Reader
	Out io.Writer
}

// Pick prints up to maxListed entries and resolves the number typed by
// the user. Any input problem counts as a cancellation, not an error.
func (l *List) Pick(_ context.Context, entries []scan.Entry) (Selection, error) {
	shown := entries
	if len(shown) > maxListed {
		shown = shown[:maxListed]
	}

	for i, e := range shown {
		fmt.Fprintf(l.Out, "%2d. %s\n", i+1, e.Display)
	}

	fmt.Fprint(l.Out, "Select a file by number (empty to cancel): ")

	line, err := bufio.NewReader(l.In).ReadString('\n')
	if err != nil && line == "" {
		return Selection{Cancelled: true}, nil
	}

	choice := strings.TrimSpace(line)
	if choice == "" {
		return Selection{Cancelled: true}, nil
	}

	index, err := strconv.Atoi(choice)
	if err != nil {
		fmt.Fprintln(l.Out, "error: please enter a number")

		return Selection{Cancelled: true}, nil
	}

	if index < 1 || index > len(shown) {
		fmt.Fprintf(l.Out, "error: please enter 1..%d\n", len(shown))

		return Selection{Cancelled: true}, nil
	}

	return Selection{Path: shown[index-1].Path}, nil
}
