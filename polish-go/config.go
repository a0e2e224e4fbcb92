package polish_go

import (
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
)

const kLogLevelEnv = "POLISH_LOG_LEVEL"

// Config is the process-wide configuration. It is filled once at startup
// and read-only afterwards.
type Config struct {
	LogLevel LogLevel

	/// -d stats: print per-command timing when the shell exits.
	ShowStats bool

	/// -d journal: print the session journal when the shell exits.
	DumpJournal bool

	/// -d nojournal: do not record executed commands at all.
	NoJournal bool
}

// / NewConfig returns the defaults, with the log level taken from
// / POLISH_LOG_LEVEL when it names a valid level.
func NewConfig() *Config {
	ret := Config{}
	ret.LogLevel = WARNING
	if env := os.Getenv(kLogLevelEnv); env != "" {
		if level, ok := ParseLogLevel(env); ok {
			ret.LogLevel = level
		}
	}
	return &ret
}

// / Enable a debugging mode. Returns false if the mode is unknown or was
// / just a request to list modes.
func DebugEnable(name string, config *Config, out io.Writer) bool {
	switch name {
	case "list":
		fmt.Fprintf(out, "debugging modes:\n"+
			"  stats        print per-command timing info on exit\n"+
			"  journal      print the session journal on exit\n"+
			"  nojournal    don't record executed commands\n"+
			"multiple modes can be enabled via -d FOO -d BAR\n")
		return false
	case "stats":
		config.ShowStats = true
		return true
	case "journal":
		config.DumpJournal = true
		return true
	case "nojournal":
		config.NoJournal = true
		return true
	}
	suggestion := SpellcheckString(name, "stats", "journal", "nojournal")
	if suggestion != "" {
		fmt.Fprintf(out, "polish: error: unknown debug setting '%s', did you mean '%s'?\n", name, suggestion)
	} else {
		fmt.Fprintf(out, "polish: error: unknown debug setting '%s'\n", name)
	}
	return false
}

// / Parse argv for command-line options.
// / Returns an exit code, or -1 if the shell should start.
func ReadFlags(args *[]string, config *Config, out io.Writer) int {
	opts, optind, err := getopt.Getopts(*args, "d:l:qvhV")
	if err != nil {
		fmt.Fprintf(out, "polish: error: %v\n", err)
		UsageMain(out)
		return 2
	}
	*args = (*args)[optind:]
	for _, optV := range opts {
		optarg := optV.Value
		switch optV.Option {
		case 'd':
			if !DebugEnable(optarg, config, out) {
				return 1
			}
		case 'l':
			level, ok := ParseLogLevel(optarg)
			if !ok {
				fmt.Fprintf(out, "polish: error: unknown log level '%s' (want one of %s)\n",
					optarg, strings.Join(kLogLevelNames, ", "))
				return 1
			}
			config.LogLevel = level
		case 'q':
			config.LogLevel = ERROR
		case 'v':
			config.LogLevel = VERBOSE
		case 'V':
			fmt.Fprintf(out, "%s\n", kPolishVersion)
			return 0
		default: // case 'h':
			UsageMain(out)
			return 1
		}
	}
	if len(*args) > 0 {
		fmt.Fprintf(out, "polish: error: unexpected argument '%s'\n", (*args)[0])
		UsageMain(out)
		return 2
	}
	return -1
}

// / Print usage information.
func UsageMain(out io.Writer) {
	fmt.Fprintf(out,
		"usage: polish [options]\n"+
			"\n"+
			"interactive converter and calculator for direct and inverse polish notation.\n"+
			"\n"+
			"options:\n"+
			"  -V        print polish version (\"%s\")\n"+
			"  -v        log everything (same as -l verbose)\n"+
			"  -q        log errors only (same as -l error)\n"+
			"  -l LEVEL  minimum log level: verbose, debug, info, warning, error, silent\n"+
			"            [default=warning, or $%s]\n"+
			"  -d MODE   enable debugging (use '-d list' to list modes)\n",
		kPolishVersion, kLogLevelEnv)
}
