package watchcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		noWarn      bool
		baseline    string
		passthrough []string
		want        []string
	}{
		{
			name:     "full invocation",
			noWarn:   true,
			baseline: "/abs/a.baseline.txt",
			want: []string{
				"npx", "tsx", "/abs/watch.ts", "/abs/a.txt",
				"--type", "subs", "--no-warn", "--baseline", "/abs/a.baseline.txt",
			},
		},
		{
			name:     "warnings enabled",
			noWarn:   false,
			baseline: "/abs/a.baseline.txt",
			want: []string{
				"npx", "tsx", "/abs/watch.ts", "/abs/a.txt",
				"--type", "subs", "--baseline", "/abs/a.baseline.txt",
			},
		},
		{
			name:   "baseline omitted",
			noWarn: true,
			want: []string{
				"npx", "tsx", "/abs/watch.ts", "/abs/a.txt",
				"--type", "subs", "--no-warn",
			},
		},
		{
			name:        "passthrough appended last",
			noWarn:      true,
			baseline:    "/abs/a.baseline.txt",
			passthrough: []string{"--speed", "2", "--verbose"},
			want: []string{
				"npx", "tsx", "/abs/watch.ts", "/abs/a.txt",
				"--type", "subs", "--no-warn", "--baseline", "/abs/a.baseline.txt",
				"--speed", "2", "--verbose",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build("/abs/watch.ts", "/abs/a.txt", "subs", tt.noWarn, tt.baseline, tt.passthrough)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_CustomType(t *testing.T) {
	got := Build("/w.ts", "/f.txt", "lyrics", false, "", nil)
	assert.Equal(t, []string{"npx", "tsx", "/w.ts", "/f.txt", "--type", "lyrics"}, got)
}
