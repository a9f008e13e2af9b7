package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	dupmirror "github.com/mattkeenan/dupmirror/pkg"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer, fs afero.Fs) int {
	cmd := newRootCommand(func(cmd *cobra.Command, opts *options) error {
		return execute(cmd, opts, stdout, fs)
	})
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return dupmirror.ExitOK
	}

	var argErr *dupmirror.ArgumentError
	if errors.As(err, &argErr) {
		if argErr.Code == dupmirror.ExitOK {
			fmt.Fprintln(stdout, argErr.Msg)
		} else {
			fmt.Fprintln(stderr, argErr.Msg)
		}
		return argErr.Code
	}

	fmt.Fprintf(stderr, "dupmirror: %v\n", err)
	return dupmirror.ExitError
}

func execute(cmd *cobra.Command, opts *options, stdout io.Writer, fs afero.Fs) error {
	cfg, err := dupmirror.LoadConfig(opts.ConfigPath)
	if err != nil {
		return &dupmirror.ArgumentError{Msg: err.Error(), Code: dupmirror.ExitUsage}
	}
	if len(opts.Overrides) > 0 {
		if err := cfg.ApplyOverrides(opts.Overrides); err != nil {
			return &dupmirror.ArgumentError{Msg: err.Error(), Code: dupmirror.ExitUsage}
		}
	}

	verboseConfig := cfg.GetVerboseConfig()
	level := verboseConfig.Level
	if cmd.Flags().Changed("verbose") {
		level = opts.Verbose
	}
	dupmirror.SetVerboseLevel(level)
	debug := verboseConfig.Debug
	if cmd.Flags().Changed("debug") {
		debug = opts.Debug
	}
	dupmirror.SetDebugFlags(debug)

	strategy, err := resolveStrategy(cmd.Flags(), opts, cfg)
	if err != nil {
		return err
	}

	dupmirror.Logger().WithFields(logrus.Fields{
		"source":   opts.Source,
		"dest":     opts.Dest,
		"strategy": strategy.Name(),
		"config":   cfg.Path(),
	}).Info("options resolved")

	// The header is always printed once -t is valid. Missing roots then exit
	// 0, unlike a bad -t which exits 2. Both codes are kept as the tool has
	// always returned them.
	if opts.Source == "" || opts.Dest == "" {
		header := dupmirror.NewReporter(stdout, opts.Source, opts.Dest)
		if err := header.Header(strategy, opts.Execute); err != nil {
			return err
		}
		return &dupmirror.ArgumentError{
			Msg:  "arguments required: " + arguments,
			Code: dupmirror.ExitOK,
		}
	}

	_, err = dupmirror.Run(dupmirror.Options{
		SourceRoot: opts.Source,
		DestRoot:   opts.Dest,
		Strategy:   strategy,
		Execute:    opts.Execute,
		Fs:         fs,
		Out:        stdout,
		Config:     cfg,
	})
	return err
}
