package clipboard

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "fake-copy")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))

	return path
}

func TestNew_BuiltinSentinel(t *testing.T) {
	assert.IsType(t, builtinCopier{}, New(Builtin))
	assert.IsType(t, &commandCopier{}, New("wl-copy"))
}

func TestCommandCopier_PipesTextWithNewline(t *testing.T) {
	captured := filepath.Join(t.TempDir(), "captured")
	t.Setenv("COPY_CAPTURE_FILE", captured)

	script := writeScript(t, `cat > "$COPY_CAPTURE_FILE"`+"\n")

	err := New(script).Copy(context.Background(), "npx tsx watch.ts a.txt")
	require.NoError(t, err)

	got, err := os.ReadFile(captured)
	require.NoError(t, err)
	assert.Equal(t, "npx tsx watch.ts a.txt\n", string(got))
}

func TestCommandCopier_SplitsShellWords(t *testing.T) {
	captured := filepath.Join(t.TempDir(), "captured")
	t.Setenv("COPY_CAPTURE_FILE", captured)

	script := writeScript(t, `printf '%s\n' "$@" > "$COPY_CAPTURE_FILE"`+"\ncat > /dev/null\n")

	err := New(script+" -selection 'clip board'").Copy(context.Background(), "text")
	require.NoError(t, err)

	got, err := os.ReadFile(captured)
	require.NoError(t, err)
	assert.Equal(t, "-selection\nclip board\n", string(got))
}

func TestCommandCopier_ExitFailure(t *testing.T) {
	script := writeScript(t, "cat > /dev/null\nexit 2\n")

	err := New(script).Copy(context.Background(), "text")
	require.Error(t, err)
	assert.Equal(t, "copy failed (exit 2): "+script, err.Error())
}

func TestCommandCopier_MissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-copy-cmd")

	err := New(missing).Copy(context.Background(), "text")
	require.Error(t, err)
	assert.Equal(t, "copy command not found: "+missing, err.Error())
}

func TestCommandCopier_NotOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := New("no-such-copy-cmd").Copy(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy command not found: no-such-copy-cmd")
}

func TestCommandCopier_InvalidCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unterminated quote", "echo 'oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.command).Copy(context.Background(), "text")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid copy command")
		})
	}
}
