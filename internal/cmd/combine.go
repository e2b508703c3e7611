package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ezerfernandes/mdcombine/internal/combine"
	"github.com/ezerfernandes/mdcombine/internal/host"
	"github.com/ezerfernandes/mdcombine/internal/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

//go:embed help/combine.md
var combineHelp string

// settingFlags maps flag names to the setting they override.
var settingFlags = map[string]string{
	"separator":   "separatorText",
	"detect":      "languageDetection",
	"include":     "languageIncludeList",
	"exclude":     "languageExcludeList",
	"group":       "groupByLanguage",
	"source-ref":  "includeSourceReference",
	"callout":     "calloutType",
	"layout":      "calloutFormatting",
	"icon":        "customHeaderIcon",
	"labels":      "showLanguageLabels",
	"collapsible": "useCollapsibleSections",
	"placement":   "outputPlacement",
	"heading":     "outputHeadingText",
	"target":      "targetHeading",
	"replace":     "replacePrevious",
}

var (
	errUnknownStyle = errors.New("unknown style")
	errUpdateStdin  = errors.New("--update needs a file argument")
)

var unescape = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\\`, `\`)

func combineCmd(opts *options) *cobra.Command {
	var (
		update bool
		style  string
		cursor int
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "combine [flags] [filename...]",
		Aliases: []string{"c"},
		Short:   "Combine the code blocks of Markdown documents",
		Long:    combineHelp,
		Args:    checksources,
		RunE: func(cmd *cobra.Command, args []string) error {
			override := func(s settings.Settings) (settings.Settings, error) {
				return applyFlags(s, cmd.Flags(), style)
			}

			base := opts.base()
			if _, err := override(base); err != nil {
				return err
			}

			for _, name := range sources(args) {
				var err error

				if !update {
					err = combinePrint(name, base, override, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
				} else {
					err = combineUpdate(name, base, override, cursor, opts)
				}

				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}

			return nil
		},

		DisableAutoGenTag: true,
	}

	flags := cmd.Flags()
	flags.BoolVarP(&update, "update", "u", false, "write the combined block into the document")
	flags.IntVar(&cursor, "cursor", 0, "byte offset used by the atCursor placement")
	flags.StringVar(&style, "style", "", `presentation style ("callout", "enhanced" or "plain")`)

	flags.String("separator", "", `text between blocks, \n and \t are unescaped`)
	flags.Bool("detect", true, "tag the combined fence with the most common language")
	flags.String("include", "", "comma separated languages to keep")
	flags.String("exclude", "", "comma separated languages to drop")
	flags.BoolP("group", "g", false, "group blocks by language")
	flags.Bool("source-ref", false, "annotate blocks with their source lines")
	flags.String("callout", "", "callout type (info, tip, success, warning, error, example, quote, note)")
	flags.String("layout", "", `callout layout ("header-only", "full-content" or "compact")`)
	flags.String("icon", "", "header icon")
	flags.Bool("labels", true, "show a language label in the enhanced style")
	flags.Bool("collapsible", false, "wrap the block in a collapsible section in the enhanced style")
	flags.StringP("placement", "p", "", `where --update inserts ("top", "bottom", "afterHeading" or "atCursor")`)
	flags.String("heading", "", "heading of the combined block")
	flags.String("target", "", "heading searched by the afterHeading placement")
	flags.BoolP("replace", "r", false, "remove the previously combined section before inserting")

	return cmd
}

// applyFlags overrides base with the flags set on the command line.
func applyFlags(base settings.Settings, flags *pflag.FlagSet, style string) (settings.Settings, error) {
	var err error

	flags.Visit(func(flag *pflag.Flag) {
		key, ok := settingFlags[flag.Name]
		if !ok || err != nil {
			return
		}

		value := flag.Value.String()
		if flag.Name == "separator" {
			value = unescape.Replace(value)
		}

		base, err = base.Set(key, value)
	})

	if err != nil {
		return base, err
	}

	switch style {
	case "":
	case "callout":
		base.UseCalloutStyle = true
	case "enhanced":
		base.UseCalloutStyle, base.EnhancedStyling = false, true
	case "plain":
		base.UseCalloutStyle, base.EnhancedStyling = false, false
	default:
		return base, fmt.Errorf("%w: %q", errUnknownStyle, style)
	}

	return base, nil
}

type overrideFunc func(settings.Settings) (settings.Settings, error)

func combinePrint(name string, base settings.Settings, override overrideFunc, stdin io.Reader, stdout io.Writer,
	opts *options,
) error {
	src, err := readSource(name, stdin)
	if err != nil {
		return err
	}

	document := string(src)

	effective, err := settings.Resolve(document, base)
	if err != nil {
		opts.logger.Debug("ignoring frontmatter overrides", slog.String("file", name), slog.Any("error", err))
	}

	if effective, err = override(effective); err != nil {
		return err
	}

	out, ok := combine.Resolved(document, effective)
	if !ok {
		opts.status("%s: %s\n", name, host.MsgNoBlocks)

		return nil
	}

	_, err = fmt.Fprintln(stdout, out)

	return err
}

func combineUpdate(name string, base settings.Settings, override overrideFunc, cursor int, opts *options) error {
	if name == stdinName {
		return errUpdateStdin
	}

	runner := &host.Runner{
		Notify: func(format string, args ...any) {
			opts.status("%s: "+format, append([]any{name}, args...)...)
		},
		Logger:   opts.logger.With(slog.String("file", name)),
		Override: override,
	}

	_, err := runner.Run(host.NewFileDocument(name, cursor), base)

	return err
}
