package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ezerfernandes/mdcombine/internal/settings"
	"github.com/spf13/cobra"
)

type statusFunc func(format string, args ...any)

type options struct {
	configFile string
	quiet      bool
	verbose    bool
	lang       []string
	meta       map[string]string
	filter     filterFunc
	status     statusFunc
	logger     *slog.Logger
}

func (opts *options) createStatus(w io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...any) {}

		return
	}

	opts.status = func(format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	}
}

func (opts *options) createLogger(w io.Writer) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	opts.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (opts *options) store() (*settings.FileStore, error) {
	return settings.NewFileStore(opts.configFile)
}

// base loads the persisted settings. A broken settings file is reported and
// replaced by the defaults.
func (opts *options) base() settings.Settings {
	store, err := opts.store()
	if err != nil {
		opts.logger.Warn("using default settings", slog.Any("error", err))

		return settings.Default()
	}

	cfg, err := store.Load()
	if err != nil {
		opts.logger.Warn("using default settings", slog.String("path", store.Path()), slog.Any("error", err))
	}

	return cfg
}

func langFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringSliceVarP(&opts.lang, "lang", "l", []string{"*"}, "language glob patterns of the blocks to keep")
}

func metaFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringToStringVarP(&opts.meta, "meta", "m", nil, "metadata glob patterns of the blocks to keep (key=pattern)")
}
