// Package combine turns the fenced code blocks of a Markdown document into a
// single combined block.
//
// The pipeline is a pure function of the document text and the settings:
// resolve the frontmatter overrides, scan the fences, filter, merge the
// contents and render the result.
package combine

import (
	"github.com/ezerfernandes/mdcombine/internal/mdcode"
	"github.com/ezerfernandes/mdcombine/internal/settings"
)

// Combine runs the whole pipeline with base overlaid by the document
// frontmatter. It returns false when no block survives filtering. Malformed
// frontmatter is ignored.
func Combine(document string, base settings.Settings) (string, bool) {
	effective, _ := settings.Resolve(document, base)

	return Resolved(document, effective)
}

// Resolved is like [Combine] but uses effective as is, without looking at the
// document frontmatter.
func Resolved(document string, effective settings.Settings) (string, bool) {
	blocks := Filter(mdcode.Scan([]byte(document)), effective.LanguageIncludeList, effective.LanguageExcludeList)
	if len(blocks) == 0 {
		return "", false
	}

	var lang string
	if effective.LanguageDetection {
		lang = DetectLanguage(blocks)
	}

	return Render(Body(blocks, effective), lang, effective), true
}
