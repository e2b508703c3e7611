package cmd

import (
	_ "embed"
	"fmt"

	"github.com/ezerfernandes/mdcombine/internal/settings"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed help/config.md
var configHelp string

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "config",
		Short: "Show or change the persisted settings",
		Long:  configHelp,

		DisableAutoGenTag: true,
	}

	show := &cobra.Command{ //nolint:exhaustruct
		Use:   "show",
		Short: "Print the persisted settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}

			cfg, err := store.Load()
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()

			return enc.Encode(cfg.Map())
		},

		DisableAutoGenTag: true,
	}

	set := &cobra.Command{ //nolint:exhaustruct
		Use:       "set key value",
		Short:     "Change one persisted setting",
		Args:      cobra.ExactArgs(2), //nolint:gomnd
		ValidArgs: settings.Keys,
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}

			cfg, err := store.Load()
			if err != nil {
				opts.status("warning: %v, starting from the defaults\n", err)
			}

			if cfg, err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}

			if err := store.Save(cfg); err != nil {
				return err
			}

			opts.status("saved %s in %s\n", args[0], store.Path())

			return nil
		},

		DisableAutoGenTag: true,
	}

	path := &cobra.Command{ //nolint:exhaustruct
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), store.Path())

			return err
		},

		DisableAutoGenTag: true,
	}

	cmd.AddCommand(show, set, path)

	return cmd
}
