package diffview

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// ---------------------------------------------------------------------------
// Unified
// ---------------------------------------------------------------------------

func TestUnified_ReportsChanges(t *testing.T) {
	dir := t.TempDir()
	baseline := writeFile(t, dir, "a.baseline.txt", "line one\nline two\nline three\n")
	file := writeFile(t, dir, "a.txt", "line one\nline 2\nline three\n")

	unified, err := Unified(baseline, file, 3)
	require.NoError(t, err)

	assert.Contains(t, unified, "--- "+baseline)
	assert.Contains(t, unified, "+++ "+file)
	assert.Contains(t, unified, "@@")
	assert.Contains(t, unified, "-line two")
	assert.Contains(t, unified, "+line 2")
}

func TestUnified_IdenticalFiles(t *testing.T) {
	dir := t.TempDir()
	baseline := writeFile(t, dir, "a.baseline.txt", "same\ncontent\n")
	file := writeFile(t, dir, "a.txt", "same\ncontent\n")

	unified, err := Unified(baseline, file, 3)
	require.NoError(t, err)
	assert.Empty(t, unified)
}

func TestUnified_MissingBaseline(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "a.txt", "content\n")

	_, err := Unified(filepath.Join(dir, "missing.baseline.txt"), file, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestUnified_SeparateHunks(t *testing.T) {
	var middle strings.Builder
	for i := 0; i < 20; i++ {
		middle.WriteString("filler\n")
	}

	dir := t.TempDir()
	baseline := writeFile(t, dir, "a.baseline.txt", "top old\n"+middle.String()+"bottom old\n")
	file := writeFile(t, dir, "a.txt", "top new\n"+middle.String()+"bottom new\n")

	unified, err := Unified(baseline, file, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(unified, "@@ "))
}

// ---------------------------------------------------------------------------
// Write
// ---------------------------------------------------------------------------

func TestWrite_Plain(t *testing.T) {
	unified := "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n"

	var out bytes.Buffer
	Write(&out, unified, false)

	assert.Equal(t, unified, out.String())
}

func TestWrite_Color(t *testing.T) {
	unified := "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n context\n"

	var out bytes.Buffer
	Write(&out, unified, true)

	got := out.String()
	assert.Contains(t, got, "\033[1m--- a\033[0m")
	assert.Contains(t, got, "\033[1m+++ b\033[0m")
	assert.Contains(t, got, "\033[36m@@ -1 +1 @@\033[0m")
	assert.Contains(t, got, "\033[31m-old\033[0m")
	assert.Contains(t, got, "\033[32m+new\033[0m")
	assert.Contains(t, got, " context\n")
}

func TestWrite_EmptyWritesNothing(t *testing.T) {
	var out bytes.Buffer
	Write(&out, "", true)

	assert.Empty(t, out.String())
}

// ---------------------------------------------------------------------------
// splitLines
// ---------------------------------------------------------------------------

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{""}, splitLines(""))
	assert.Equal(t, []string{"a\n", "b\n", ""}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a\n", "b"}, splitLines("a\nb"))
}
