package watchcmd

import (
	"errors"
	"strings"
)

// Quote returns s in a form safe to paste into a POSIX shell. Strings made
// of unambiguous characters pass through unchanged, everything else is
// wrapped in single quotes with embedded single quotes escaped.
func Quote(s string) string {
	if s == "" {
		return "''"
	}

	if allSafe(s) {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// Join renders argv as a single shell command line with each argument
// individually quoted.
func Join(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = Quote(arg)
	}

	return strings.Join(quoted, " ")
}

// Split tokenizes a command string using POSIX shell rules: whitespace
// separates words, single quotes preserve their content literally, double
// quotes preserve everything except backslash-escaped `"` and `\`, and a
// backslash outside quotes escapes the next character.
func Split(s string) ([]string, error) {
	var (
		args   []string
		buf    strings.Builder
		inWord bool
	)

	flush := func() {
		if inWord {
			args = append(args, buf.String())
			buf.Reset()
			inWord = false
		}
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ' ', '\t', '\n':
			flush()
		case '\\':
			i++
			if i >= len(s) {
				return nil, errors.New("trailing backslash")
			}

			buf.WriteByte(s[i])
			inWord = true
		case '\'':
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return nil, errors.New("unterminated single quote")
			}

			buf.WriteString(s[i+1 : i+1+end])
			i += end + 1
			inWord = true
		case '"':
			i++

			closed := false
			for i < len(s) {
				if s[i] == '"' {
					closed = true
					break
				}

				if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
					i++
				}

				buf.WriteByte(s[i])
				i++
			}

			if !closed {
				return nil, errors.New("unterminated double quote")
			}

			inWord = true
		default:
			buf.WriteByte(c)
			inWord = true
		}
	}

	flush()

	return args, nil
}

func allSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		if !safeShellByte(s[i]) {
			return false
		}
	}

	return true
}

// safeShellByte reports whether b never needs quoting in a POSIX shell.
// Non-ASCII bytes always get quoted.
func safeShellByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	}

	switch b {
	case '_', '@', '%', '+', '=', ':', ',', '.', '/', '-':
		return true
	}

	return false
}
