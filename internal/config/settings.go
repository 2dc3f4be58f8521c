package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Environment variables consulted when the matching flag is not given.
// Empty values count as unset.
const (
	// EnvRoot overrides the default search root.
	EnvRoot = "TEXT_ROOT"

	// EnvWatchTS points at the watch.ts entrypoint.
	EnvWatchTS = "SUB_WATCH_TS"

	// EnvBaselineRoot relocates derived baseline files.
	EnvBaselineRoot = "BASELINE_ROOT"
)

// DefaultWatchTS is the watch.ts location used when neither --watch-ts
// nor $SUB_WATCH_TS is set.
const DefaultWatchTS = "~/node/sub/src/cli/watch.ts"

// Settings holds the per-invocation options of a pick run, resolved from
// flags and environment variables.
type Settings struct {
	Root         string `mapstructure:"root"`
	Recursive    bool   `mapstructure:"recursive"`
	Ext          string `mapstructure:"ext"`
	WatchTS      string `mapstructure:"watch-ts"`
	FileType     string `mapstructure:"type"`
	NoWarn       bool   `mapstructure:"no-warn"`
	BaselineRoot string `mapstructure:"baseline-root"`
	Baseline     string `mapstructure:"baseline"`
	NoBaseline   bool   `mapstructure:"no-baseline"`
	Copy         bool   `mapstructure:"copy"`
	CopyCmd      string `mapstructure:"copy-cmd"`
	Print        bool   `mapstructure:"print"`
	NoRun        bool   `mapstructure:"no-run"`

	// Query and Passthrough come from positional arguments, not flags.
	Query       string   `mapstructure:"-"`
	Passthrough []string `mapstructure:"-"`
}

// ResolveSettings reads the pick settings from cmd's flags. A changed
// flag beats its environment variable, which beats the flag default. A
// fresh viper instance is used on every call.
func ResolveSettings(cmd *cobra.Command) (*Settings, error) {
	v := viper.New()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	_ = v.BindEnv("root", EnvRoot)
	_ = v.BindEnv("watch-ts", EnvWatchTS)
	_ = v.BindEnv("baseline-root", EnvBaselineRoot)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	// The negated twins override their positive flags when given.
	if flagChanged(cmd, "no-recursive") {
		s.Recursive = false
	}

	if flagChanged(cmd, "warn") {
		s.NoWarn = false
	}

	s.Root = ExpandUser(s.Root)
	s.WatchTS = ExpandUser(s.WatchTS)
	s.BaselineRoot = ExpandUser(s.BaselineRoot)
	s.Baseline = ExpandUser(s.Baseline)

	// Paths handed to the watch CLI must be absolute. Root stays as typed
	// until its existence check.
	for _, p := range []*string{&s.WatchTS, &s.BaselineRoot, &s.Baseline} {
		if *p == "" {
			continue
		}

		abs, err := filepath.Abs(*p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", *p, err)
		}

		*p = abs
	}

	return &s, nil
}

// ExpandUser replaces a leading ~ with the current user's home directory.
// ~user forms are left untouched.
func ExpandUser(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)

	return f != nil && f.Changed
}
