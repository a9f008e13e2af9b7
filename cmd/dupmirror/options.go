package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	dupmirror "github.com/mattkeenan/dupmirror/pkg"
)

const arguments = "-s input_dir -o output_dir [-t {n|s|h}] [-x]"

// options holds the parsed command line
type options struct {
	Source     string
	Dest       string
	Type       string
	Execute    bool
	ConfigPath string
	Verbose    int
	Debug      string
	Overrides  []string
}

// newRootCommand builds the command; runFn receives the parsed options
// once flag parsing succeeds.
func newRootCommand(runFn func(cmd *cobra.Command, opts *options) error) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dupmirror " + arguments,
		Short: "Find duplicate files and move them into a mirrored tree",
		Long: `Scans the source tree and groups duplicate files by one attribute:
  n  same base name
  s  same size in bytes (default)
  h  same content digest

The first file seen in each group is kept in place. Without -x the
duplicates and their destination directories are only listed; with -x
each duplicate is moved to the same relative directory under the
destination root.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFn(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Source, "source", "s", "", "root directory to scan")
	flags.StringVarP(&opts.Dest, "dest", "o", "", "root directory duplicates are moved under")
	flags.StringVarP(&opts.Type, "type", "t", dupmirror.DefaultStrategyCode, "compare by n (name), s (size) or h (hash)")
	flags.BoolVarP(&opts.Execute, "execute", "x", false, "move duplicates (default is report only)")
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "INI configuration file")
	flags.CountVarP(&opts.Verbose, "verbose", "v", "increase diagnostic output on stderr")
	flags.StringVar(&opts.Debug, "debug", "", "comma-separated debug flags (scan, registry, relocate)")
	flags.StringArrayVar(&opts.Overrides, "set", nil, "config override key:value (repeatable)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if isMissingTypeValue(err) {
			return allowedTypesError()
		}
		return &dupmirror.ArgumentError{
			Msg:  fmt.Sprintf("error: %v\n%s", err, c.UsageString()),
			Code: dupmirror.ExitUsage,
		}
	})

	return cmd
}

// resolveStrategy picks -t when given on the command line, otherwise the
// configured default.
func resolveStrategy(flags *pflag.FlagSet, opts *options, cfg *dupmirror.Config) (dupmirror.Strategy, error) {
	code := cfg.GetCompareConfig().Strategy
	if flags.Changed("type") {
		code = opts.Type
	}

	strategy, err := dupmirror.ParseStrategy(code)
	if err != nil {
		return nil, allowedTypesError()
	}
	return strategy, nil
}

func allowedTypesError() error {
	return &dupmirror.ArgumentError{
		Msg:  "allowed values for argument -t: " + strings.Join(dupmirror.AllowedStrategyCodes, ","),
		Code: dupmirror.ExitUsage,
	}
}

// isMissingTypeValue matches pflag's "flag needs an argument" error for
// -t or --type.
func isMissingTypeValue(err error) bool {
	msg := err.Error()
	if !strings.HasPrefix(msg, "flag needs an argument:") {
		return false
	}
	return strings.Contains(msg, "'t' in -t") || strings.HasSuffix(msg, "--type")
}
