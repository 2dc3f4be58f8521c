// Package scan enumerates and ranks the candidate files offered for
// interactive selection.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// skipDirNames are directory names never descended into during recursive
// enumeration.
var skipDirNames = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"dist":         {},
	"build":        {},
	"__pycache__":  {},
}

// Entry is one candidate file: its absolute path, its display form relative
// to the search root, and its modification time.
type Entry struct {
	Path    string
	Display string
	ModTime time.Time
}

// List returns the regular files under root. In flat mode only direct
// children are considered. In recursive mode the walk prunes, before
// descending, directories that are hidden, end in ".tmp", or belong to the
// fixed skip-set. Entries that fail to stat are skipped silently.
func List(root string, recursive bool) ([]Entry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	if recursive {
		return listRecursive(absRoot)
	}

	return listFlat(absRoot)
}

func listFlat(root string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var entries []Entry

	for _, de := range dirEntries {
		if e, ok := statEntry(root, filepath.Join(root, de.Name())); ok {
			entries = append(entries, e)
		}
	}

	return entries, nil
}

func listRecursive(root string) ([]Entry, error) {
	var entries []Entry

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			// Unreadable subtree — treated as empty, not fatal.
			return nil
		}

		if d.IsDir() {
			if path != root && pruneDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if e, ok := statEntry(root, path); ok {
			entries = append(entries, e)
		}

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", root, walkErr)
	}

	return entries, nil
}

// statEntry stats path (following symlinks) and builds an Entry for regular
// files. Stat failures and non-regular files report ok=false.
func statEntry(root, path string) (Entry, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Entry{}, false
	}

	return Entry{
		Path:    path,
		Display: displayPath(root, path),
		ModTime: info.ModTime(),
	}, true
}

// pruneDir reports whether a directory name is excluded from recursive
// descent.
func pruneDir(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".tmp") {
		return true
	}

	_, skip := skipDirNames[name]

	return skip
}

// displayPath renders path relative to root, falling back to the bare
// filename when path is not under root.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(path)
	}

	return rel
}

// FilterExt keeps entries whose final suffix equals ext exactly
// (case-sensitive). An empty or "*" ext disables filtering; a leading dot on
// ext is optional.
func FilterExt(entries []Entry, ext string) []Entry {
	if ext == "" || ext == "*" {
		return entries
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var kept []Entry

	for _, e := range entries {
		if filepath.Ext(e.Path) == ext {
			kept = append(kept, e)
		}
	}

	return kept
}

// Rank sorts entries in place by modification time, most recent first. The
// sort is stable: entries with equal timestamps keep their enumeration order.
func Rank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})
}

// FilterQuery keeps entries whose filename contains query as a
// case-insensitive substring. Only the base name is matched, never the
// parent directories.
func FilterQuery(entries []Entry, query string) []Entry {
	q := strings.ToLower(query)

	var kept []Entry

	for _, e := range entries {
		if strings.Contains(strings.ToLower(filepath.Base(e.Path)), q) {
			kept = append(kept, e)
		}
	}

	return kept
}
