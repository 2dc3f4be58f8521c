// Package watchcmd assembles the watch CLI invocation for a picked file
// and renders it as a copy-pasteable shell command.
package watchcmd

// Build returns the argv that launches the watch CLI on file. The
// baseline flag is omitted when baselinePath is empty, and passthrough
// arguments are appended verbatim at the end.
func Build(watchTS, file, fileType string, noWarn bool, baselinePath string, passthrough []string) []string {
	argv := []string{"npx", "tsx", watchTS, file, "--type", fileType}

	if noWarn {
		argv = append(argv, "--no-warn")
	}

	if baselinePath != "" {
		argv = append(argv, "--baseline", baselinePath)
	}

	return append(argv, passthrough...)
}
