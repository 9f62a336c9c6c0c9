package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/yashkumarverma/cronparser/src/expander"
	"github.com/yashkumarverma/cronparser/src/utils"
)

// ArgsMarker separates flags from the cron fields on the command line
const ArgsMarker = "-args"

// ErrMissingFields is returned when fewer than six field tokens are given
var ErrMissingFields = errors.New("expected 5 time fields followed by a command")

// Options are the command line switches
type Options struct {
	Output  string
	Strict  bool
	NoCache bool
}

// SplitFlags separates flag tokens from field tokens at ArgsMarker.
// Without the marker every token goes to the flag parser.
func SplitFlags(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == ArgsMarker {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// SplitArguments assigns the tokens following ArgsMarker (or all tokens
// when it is absent) to the cron fields in order. Tokens past the sixth
// belong to the command.
func SplitArguments(args []string) (expander.Fields, error) {
	start := 0
	for i, arg := range args {
		if arg == ArgsMarker {
			start = i + 1
			break
		}
	}
	parts := args[start:]
	if len(parts) < len(expander.FieldOrder) {
		return nil, fmt.Errorf("%w: got %d arguments", ErrMissingFields, len(parts))
	}

	fields := make(expander.Fields, len(expander.FieldOrder))
	for i, field := range expander.TimeFields {
		fields[field] = parts[i]
	}
	fields[expander.Command] = strings.Join(parts[len(expander.TimeFields):], " ")
	return fields, nil
}

// ParseCommandLine parses flags and fields. Defaults come from cfg; usage
// and flag errors are written to output.
func ParseCommandLine(name string, args []string, cfg *utils.Config, output io.Writer) (*Options, expander.Fields, error) {
	opts := &Options{}
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.Output, "output", "o", cfg.OutputFormat, "output format: table, json or yaml")
	flags.BoolVar(&opts.Strict, "strict", cfg.StrictBounds, "reject values outside each field's bounds")
	flags.BoolVar(&opts.NoCache, "no-cache", !cfg.CacheEnabled, "do not consult the schedule cache")
	flags.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags] [-args] <minute> <hour> <day of month> <month> <day of week> <command>\n", name)
		flags.PrintDefaults()
	}

	flagArgs, fieldArgs := SplitFlags(args)
	if err := flags.Parse(flagArgs); err != nil {
		return nil, nil, err
	}
	if fieldArgs == nil {
		fieldArgs = flags.Args()
	} else if flags.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments before %s: %v", ArgsMarker, flags.Args())
	}

	fields, err := SplitArguments(fieldArgs)
	if err != nil {
		return nil, nil, err
	}
	return opts, fields, nil
}
