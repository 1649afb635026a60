package tintty

import (
	"os"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/tintty/tintty/src/attr"
)

const usage = `usage: tintty [options] [text...]

  Prints the given text on the console under the requested style and
  restores the previous attribute state afterwards. Without text, runs
  a showcase of the style catalogue.

    --style=SPEC      Change only the named fields and keep the rest
                      (e.g. "text:blue,bar:bottom")
    --set=SPEC        Replace the whole attribute state; unnamed fields
                      revert to their defaults (e.g. "text:blue,background:white")
    --list            List the named style catalogue
    --no-color        Pass text through without touching the console
    --version         Display version information and exit

  Environment variable
    TINTTY_DEFAULT_OPTS  Default options (e.g. "--style text:aqua")
`

// Options stores the values of command-line options
type Options struct {
	Style   *attr.Change
	Set     *attr.Word
	List    bool
	Color   bool
	Version bool
	Text    []string
}

func defaultOptions() *Options {
	return &Options{Color: true}
}

func help(code int) {
	os.Stdout.WriteString(usage)
	os.Exit(code)
}

func errorExit(msg string) {
	os.Stderr.WriteString(msg + "\n")
	os.Exit(exitError)
}

func optString(arg string, prefixes ...string) (bool, string) {
	for _, prefix := range prefixes {
		if strings.HasPrefix(arg, prefix) {
			return true, arg[len(prefix):]
		}
	}
	return false, ""
}

func nextString(args []string, i *int, message string) string {
	if len(args) > *i+1 {
		*i++
	} else {
		errorExit(message)
	}
	return args[*i]
}

func parseStyle(spec string) *attr.Change {
	change, err := attr.ParseChange(spec)
	if err != nil {
		errorExit(err.Error())
	}
	return &change
}

func parseSet(spec string) *attr.Word {
	word, err := attr.ParseWord(spec)
	if err != nil {
		errorExit(err.Error())
	}
	return &word
}

func parseOptions(opts *Options, allArgs []string) {
	for i := 0; i < len(allArgs); i++ {
		arg := allArgs[i]
		switch arg {
		case "-h", "--help":
			help(exitOk)
		case "--list":
			opts.List = true
		case "--color":
			opts.Color = true
		case "--no-color":
			opts.Color = false
		case "--version":
			opts.Version = true
		case "--style":
			opts.Style = parseStyle(nextString(allArgs, &i, "style spec required"))
		case "--set":
			opts.Set = parseSet(nextString(allArgs, &i, "style spec required"))
		case "--":
			opts.Text = append(opts.Text, allArgs[i+1:]...)
			return
		default:
			if match, value := optString(arg, "--style="); match {
				opts.Style = parseStyle(value)
			} else if match, value := optString(arg, "--set="); match {
				opts.Set = parseSet(value)
			} else if strings.HasPrefix(arg, "-") && len(arg) > 1 {
				errorExit("unknown option: " + arg)
			} else {
				opts.Text = append(opts.Text, arg)
			}
		}
	}
}

// ParseOptions parses command-line options
func ParseOptions() *Options {
	opts := defaultOptions()

	// Options from Env var
	words, _ := shellwords.Parse(os.Getenv("TINTTY_DEFAULT_OPTS"))
	if len(words) > 0 {
		parseOptions(opts, words)
	}

	// Options from command-line arguments
	parseOptions(opts, os.Args[1:])
	return opts
}
