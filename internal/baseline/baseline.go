// Package baseline derives the companion baseline path that accompanies a
// selected file on the watch command line.
package baseline

import (
	"path/filepath"
	"strings"
)

// Policy selects how the baseline path for a picked file is derived.
// The zero value derives a sibling baseline next to the file.
type Policy struct {
	// Suppress drops the baseline entirely and wins over the other fields.
	Suppress bool

	// Override names the baseline verbatim, already absolute.
	Override string

	// Root places the derived baseline name under this directory instead
	// of next to the file.
	Root string
}

// Resolve computes the baseline path for file, or the empty string when
// the baseline is suppressed. It is pure path computation; nothing is
// checked against the filesystem.
func (p Policy) Resolve(file string) string {
	switch {
	case p.Suppress:
		return ""
	case p.Override != "":
		return p.Override
	case p.Root != "":
		return filepath.Join(p.Root, Name(filepath.Base(file)))
	default:
		return For(file)
	}
}

// Name returns the baseline file name for fileName: the stem gains a
// ".baseline" infix ahead of the original extension, so "a.txt" becomes
// "a.baseline.txt" and "noext" becomes "noext.baseline".
func Name(fileName string) string {
	stem, ext := splitStem(fileName)

	return stem + ".baseline" + ext
}

// For returns the baseline path placed next to file.
func For(file string) string {
	return filepath.Join(filepath.Dir(file), Name(filepath.Base(file)))
}

// splitStem splits a file name into stem and extension. A dot in the
// first or last position never starts an extension, so ".hidden" and
// "name." both have an empty extension.
func splitStem(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i >= len(name)-1 {
		return name, ""
	}

	return name[:i], name[i:]
}
