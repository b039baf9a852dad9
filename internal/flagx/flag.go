// Package flagx lets several components parse their own flags from the same
// argument list without tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Filter keeps only the named flags (given without dashes) and their
// values. Both -name and --name are matched, as "-name value" or
// "-name=value". A value is only taken from the next argument when it does
// not itself look like a flag.
func Filter(args []string, names ...string) []string {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[strings.TrimLeft(n, "-")] = true
	}

	out := []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !known[name] {
			continue
		}
		out = append(out, arg)
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigPath returns the value of -c/-config, or "" when neither is given.
func ConfigPath(args []string) string {
	var path string
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(Filter(args, "c", "config"))
	return path
}
