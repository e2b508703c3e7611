package combine

import (
	"sort"
	"strings"

	"github.com/ezerfernandes/mdcombine/internal/mdcode"
	"github.com/ezerfernandes/mdcombine/internal/settings"
)

// Body merges the contents of blocks into one string: a plain concatenation,
// or one fenced section per language when grouping is enabled.
func Body(blocks mdcode.Blocks, s settings.Settings) string {
	if s.GroupByLanguage {
		return grouped(blocks, s)
	}

	parts := make([]string, len(blocks))
	for i, block := range blocks {
		parts[i] = content(block, block.Lang, s)
	}

	return strings.Join(parts, s.SeparatorText)
}

func content(block *mdcode.Block, lang string, s settings.Settings) string {
	if !s.IncludeSourceReference {
		return string(block.Code)
	}

	return SourceReference(lang, block.StartLine, block.EndLine) + "\n" + string(block.Code)
}

func grouped(blocks mdcode.Blocks, s settings.Settings) string {
	groups := make(map[string]mdcode.Blocks)

	for _, block := range blocks {
		key := block.Key()
		groups[key] = append(groups[key], block)
	}

	langs := make([]string, 0, len(groups))
	for lang := range groups {
		langs = append(langs, lang)
	}

	sort.Strings(langs)

	sections := make([]string, len(langs))

	for i, lang := range langs {
		parts := make([]string, len(groups[lang]))
		for j, block := range groups[lang] {
			parts[j] = content(block, lang, s)
		}

		sections[i] = groupHeading(lang, s) + "\n\n" + fenced(strings.Join(parts, s.SeparatorText), lang)
	}

	return strings.Join(sections, "\n\n")
}

func groupHeading(lang string, s settings.Settings) string {
	if s.EnhancedStyling || s.UseCalloutStyle {
		return "### " + LanguageIcon(lang) + " " + strings.ToUpper(lang)
	}

	return "### " + lang
}
