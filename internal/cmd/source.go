package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const stdinName = "-"

var (
	errTooManyArgs   = errors.New("too many arguments")
	errRepeatedStdin = errors.New("standard input (\"-\") given more than once")
)

func checkargs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errTooManyArgs
	}

	return nil
}

// checksources rejects argument lists that read the standard input twice.
func checksources(_ *cobra.Command, args []string) error {
	seen := false

	for _, arg := range args {
		if arg != stdinName {
			continue
		}

		if seen {
			return errRepeatedStdin
		}

		seen = true
	}

	return nil
}

// sources returns the file arguments, or stdin when there are none.
func sources(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}

	return args
}

func readSource(name string, stdin io.Reader) ([]byte, error) {
	if name == stdinName {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(name)
}
