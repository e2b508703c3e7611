// Package cmd implements the mdcombine command line.
package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

func rootCmd(opts *options, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "mdcombine",
		Short: "Combine the fenced code blocks of Markdown documents",
		Long:  rootHelp,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.createStatus(cmd.ErrOrStderr())
			opts.createLogger(cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,

		DisableAutoGenTag: true,
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "settings file (default is $XDG_CONFIG_HOME/mdcombine/config.yaml)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "don't print status messages")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug logs")

	root.AddCommand(combineCmd(opts), listCmd(opts), configCmd(opts))

	return root
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := rootCmd(new(options), stdin, stdout, stderr)
	root.SetArgs(args)

	return root.Execute()
}

// Execute runs the command line with args and exits the process on error.
func Execute(args []string, stdout, stderr io.Writer) {
	if err := run(args, os.Stdin, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		os.Exit(1)
	}
}
