package cli

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/watchpick/internal/config"
)

// registerSearchFlags adds the candidate enumeration flags to a cobra
// command. Values are read back through config.ResolveSettings so that
// environment fallbacks apply.
func registerSearchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("root", ".", "search root (default: $TEXT_ROOT or the current directory)")
	f.Bool("recursive", false, "search subdirectories of --root")
	f.Bool("no-recursive", false, "search only direct children of --root")
	f.String("ext", "txt", "file extension filter; '*' disables it")
}

// registerLaunchFlags adds the watch CLI invocation flags to a cobra
// command.
func registerLaunchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("watch-ts", config.DefaultWatchTS, "path to watch.ts (default: $SUB_WATCH_TS)")
	f.String("type", "subs", "value passed to the watch CLI as --type")
	f.Bool("no-warn", true, "include --no-warn in the generated command")
	f.Bool("warn", false, "leave --no-warn out of the generated command")
}

// registerBaselineFlags adds the baseline derivation flags to a cobra
// command.
func registerBaselineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("baseline-root", "", "derive the baseline under this directory (default: $BASELINE_ROOT)")
	f.String("baseline", "", "explicit baseline path, overriding derivation")
	f.Bool("no-baseline", false, "omit the baseline entirely")
}

// registerDispatchFlags adds the flags deciding what happens to the
// generated command.
func registerDispatchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("copy", false, "copy the generated command to the clipboard")
	f.String("copy-cmd", "wl-copy", "clipboard command; 'builtin' uses the in-process clipboard")
	f.Bool("print", false, "print the generated command to stdout")
	f.Bool("no-run", false, "skip executing the generated command")
}
