package cli

import (
	"strconv"
	"strings"
)

// Flags whose value is optional. The following token is taken as the
// value unless it looks like another flag, so paths go before them.
var optionalCountFlags = map[string]bool{
	"--head":   true,
	"--tail":   true,
	"--latest": true,
}

// ExpandArgs rewrites the multi-value and optional-value forms that pflag
// cannot parse on its own into --flag=value tokens:
//
//	--head 3             -> --head=3
//	--line-range 2 9     -> --line-range=2 --line-range=9
//	--keywords foo bar   -> --keywords=foo --keywords=bar
//
// Everything after a bare "--" is passed through untouched.
func ExpandArgs(args []string) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return append(out, args[i:]...)

		case optionalCountFlags[arg]:
			if i+1 < len(args) && isValue(args[i+1]) {
				out = append(out, arg+"="+args[i+1])
				i++
				continue
			}
			out = append(out, arg)

		case arg == "--line-range":
			taken := 0
			for taken < 2 && i+1 < len(args) && isInteger(args[i+1]) {
				out = append(out, arg+"="+args[i+1])
				i++
				taken++
			}
			if taken == 0 {
				out = append(out, arg)
			}

		case arg == "--keywords":
			taken := 0
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				out = append(out, arg+"="+args[i+1])
				i++
				taken++
			}
			if taken == 0 {
				out = append(out, arg)
			}

		default:
			out = append(out, arg)
		}
	}
	return out
}

// isValue reports whether s is an argument rather than a flag. Negative
// numbers count as values so they are rejected as invalid counts.
func isValue(s string) bool {
	return !strings.HasPrefix(s, "-") || isInteger(s)
}

// isInteger accepts negative values too so that --line-range -1 reports an
// invalid value instead of an unknown shorthand flag.
func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil && !strings.HasPrefix(s, "+")
}
