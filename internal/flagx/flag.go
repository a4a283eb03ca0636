// Package flagx contains helpers that let each config layer parse only the
// command-line flags it owns.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args that belongs to allowedFlags,
// keeping flag values that follow as a separate token.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      -config=conf.toml
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// a following token that is not itself a flag is the value
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFileFlag returns the config file path given with -c or -config,
// or an empty string. The file may be JSON or TOML; callers pick the decoder
// by extension.
func ConfigFileFlag() string {
	return stringFlag([]string{"-c", "-config"}, "config", "c")
}

// EnvFileFlag returns the dotenv path given with -e or -env, or an empty string.
func EnvFileFlag() string {
	return stringFlag([]string{"-e", "-env"}, "env", "e")
}

func stringFlag(allowed []string, long, short string) string {
	var value string

	args := FilterArgs(os.Args[1:], allowed)

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.StringVar(&value, long, "", "")
	fs.StringVar(&value, short, "", "")
	_ = fs.Parse(args)

	return value
}
