package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/ezerfernandes/mdcombine/internal/combine"
	"github.com/ezerfernandes/mdcombine/internal/mdcode"
	"github.com/ezerfernandes/mdcombine/internal/settings"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename]",
		Aliases: []string{"ls"},
		Short:   "List the code blocks of a Markdown document",
		Long:    listHelp,
		Args:    checkargs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			opts.filter, err = filter(opts.lang, opts.meta)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := sources(args)[0]

			src, err := readSource(name, cmd.InOrStdin())
			if err != nil {
				return err
			}

			return listRun(string(src), opts.base(), cmd.OutOrStdout(), opts)
		},

		DisableAutoGenTag: true,
	}

	langFlag(cmd, opts)
	metaFlag(cmd, opts)

	return cmd
}

func listRun(document string, base settings.Settings, out io.Writer, opts *options) error {
	effective, err := settings.Resolve(document, base)
	if err != nil {
		opts.logger.Debug("ignoring frontmatter overrides", slog.Any("error", err))
	}

	blocks, err := mdcode.Unfence([]byte(document))
	if err != nil {
		return err
	}

	kept := make(map[*mdcode.Block]bool)
	for _, block := range combine.Filter(blocks, effective.LanguageIncludeList, effective.LanguageExcludeList) {
		kept[block] = true
	}

	tbl := table.New("#", "Lang", "Lines", "Meta", "Ignored", "Kept").WithWriter(out)

	rows := 0

	for idx, block := range blocks {
		if !opts.filter(block.Lang, block.Meta) {
			continue
		}

		tbl.AddRow(idx, langLabel(block.Lang), fmt.Sprintf("%d-%d", block.StartLine, block.EndLine),
			block.Meta.String(), yesNo(block.Ignored), yesNo(kept[block]))

		rows++
	}

	if rows == 0 {
		opts.status("no code blocks\n")

		return nil
	}

	tbl.Print()

	return nil
}

func langLabel(lang string) string {
	if len(lang) == 0 {
		return "-"
	}

	return lang
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
