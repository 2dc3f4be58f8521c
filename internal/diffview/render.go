// Package diffview renders unified diffs between a picked file and its
// baseline, one-shot or continuously while the files change.
package diffview

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified reads both files and returns their unified diff with the
// baseline on the left. An empty string means the files are identical.
func Unified(baselinePath, filePath string, contextLines int) (string, error) {
	baselineText, err := os.ReadFile(baselinePath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", baselinePath, err)
	}

	fileText, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filePath, err)
	}

	diff := difflib.UnifiedDiff{
		A:        splitLines(string(baselineText)),
		B:        splitLines(string(fileText)),
		FromFile: baselinePath,
		ToFile:   filePath,
		Context:  contextLines,
	}

	unified, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("computing diff: %w", err)
	}

	return unified, nil
}

// Write renders a unified diff to w, optionally with ANSI colors. An
// empty diff writes nothing.
func Write(w io.Writer, unified string, color bool) {
	if unified == "" {
		return
	}

	for _, line := range strings.Split(strings.TrimSuffix(unified, "\n"), "\n") {
		if color {
			writeColorLine(w, line)
		} else {
			_, _ = fmt.Fprintln(w, line)
		}
	}
}

// writeColorLine writes a single diff line with ANSI color codes.
func writeColorLine(w io.Writer, line string) {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		cyan  = "\033[36m"
		bold  = "\033[1m"
		reset = "\033[0m"
	)

	switch {
	case strings.HasPrefix(line, "---"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", bold, line, reset)
	case strings.HasPrefix(line, "+++"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", bold, line, reset)
	case strings.HasPrefix(line, "@@"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", cyan, line, reset)
	case strings.HasPrefix(line, "-"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", red, line, reset)
	case strings.HasPrefix(line, "+"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", green, line, reset)
	default:
		_, _ = fmt.Fprintln(w, line)
	}
}

// splitLines splits a string into lines for diff processing.
// Each element keeps its trailing newline for difflib compatibility.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}

	return strings.SplitAfter(s, "\n")
}
