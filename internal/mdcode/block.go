package mdcode

import "strings"

// Block is a top-level fenced code block found in a Markdown document.
// Code excludes the fence delimiter lines; StartLine and EndLine are 1-based
// and point at the opening and closing fences.
type Block struct {
	Lang      string
	Meta      Meta
	Code      []byte
	StartLine int
	EndLine   int
	// Ignored is set when a combine:ignore sentinel preceded the block.
	Ignored bool
}

// Key returns the canonical language key used for comparison and grouping.
// Untagged blocks map to [PlainLang].
func (b *Block) Key() string {
	return LangKey(b.Lang)
}

// PlainLang is the language key of blocks without a language tag.
const PlainLang = "plain"

// LangKey lower-cases lang and maps the empty tag to [PlainLang].
func LangKey(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if len(lang) == 0 {
		return PlainLang
	}

	return lang
}

type Blocks []*Block
