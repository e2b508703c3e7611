package combine

import (
	"fmt"
	"strings"

	"github.com/ezerfernandes/mdcombine/internal/settings"
)

type style int

const (
	plainStyle style = iota
	enhancedStyle
	calloutStyle
)

// selectStyle picks the presentation by priority: callout, enhanced, plain.
func selectStyle(s settings.Settings) style {
	switch {
	case s.UseCalloutStyle:
		return calloutStyle
	case s.EnhancedStyling:
		return enhancedStyle
	default:
		return plainStyle
	}
}

type renderFunc func(body, lang string, s settings.Settings) string

var renderers = map[style]renderFunc{
	plainStyle:    renderPlain,
	enhancedStyle: renderEnhanced,
	calloutStyle:  renderCallout,
}

// Render wraps a combined body in the presentation selected by s. lang tags
// the single fence of an ungrouped body and may be empty; grouped bodies
// already carry one fence per language.
func Render(body, lang string, s settings.Settings) string {
	return renderers[selectStyle(s)](body, lang, s)
}

func renderPlain(body, lang string, s settings.Settings) string {
	header := "## " + s.Heading()

	if s.GroupByLanguage {
		return header + "\n\n" + body
	}

	return header + "\n\n" + fenced(body, lang)
}

func renderEnhanced(body, lang string, s settings.Settings) string {
	header := fmt.Sprintf("---\n\n## %s %s\n\n---", s.Icon(), s.Heading())

	if s.GroupByLanguage {
		return header + "\n\n" + body
	}

	inner := fenced(body, lang)

	if s.ShowLanguageLabels && len(lang) != 0 {
		inner = languageLabel(lang) + "\n\n" + inner
	}

	if s.UseCollapsibleSections {
		inner = collapsible(inner, lang)
	}

	return header + "\n\n" + inner
}

func renderCallout(body, lang string, s settings.Settings) string {
	header := fmt.Sprintf("> [!%s]+ %s %s", s.Callout(), s.Icon(), s.Heading())

	if !s.GroupByLanguage {
		body = fenced(body, lang)
	}

	if s.Layout() == settings.HeaderOnly {
		return header + "\n\n" + body
	}

	return header + "\n> \n" + quote(body)
}

func fenced(body, lang string) string {
	return "```" + lang + "\n" + body + "\n```"
}

// quote prefixes every line, fence delimiters included, with "> ".
func quote(text string) string {
	return "> " + strings.ReplaceAll(text, "\n", "\n> ")
}

func languageLabel(lang string) string {
	return "**Language:** `" + lang + "`"
}

func collapsible(inner, lang string) string {
	title := "CODE"
	if len(lang) != 0 {
		title = strings.ToUpper(lang)
	}

	return "<details>\n<summary><strong>Click to expand " + title + "</strong></summary>\n\n" +
		inner + "\n\n</details>"
}
