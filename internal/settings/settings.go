// Package settings holds the configuration of the combine pipeline, its
// defaults, per-document frontmatter overrides and the persisted store.
package settings

import (
	"slices"
	"strings"
)

// Settings is an immutable snapshot of the combine configuration. Methods
// that change a field return a modified copy.
type Settings struct {
	SeparatorText          string   `yaml:"separatorText" mapstructure:"separatorText"`
	LanguageDetection      bool     `yaml:"languageDetection" mapstructure:"languageDetection"`
	LanguageIncludeList    []string `yaml:"languageIncludeList" mapstructure:"languageIncludeList"`
	LanguageExcludeList    []string `yaml:"languageExcludeList" mapstructure:"languageExcludeList"`
	GroupByLanguage        bool     `yaml:"groupByLanguage" mapstructure:"groupByLanguage"`
	IncludeSourceReference bool     `yaml:"includeSourceReference" mapstructure:"includeSourceReference"`

	UseCalloutStyle        bool       `yaml:"useCalloutStyle" mapstructure:"useCalloutStyle"`
	CalloutType            string     `yaml:"calloutType" mapstructure:"calloutType"`
	CalloutFormatting      Formatting `yaml:"calloutFormatting" mapstructure:"calloutFormatting"`
	EnhancedStyling        bool       `yaml:"enhancedStyling" mapstructure:"enhancedStyling"`
	CustomHeaderIcon       string     `yaml:"customHeaderIcon" mapstructure:"customHeaderIcon"`
	ShowLanguageLabels     bool       `yaml:"showLanguageLabels" mapstructure:"showLanguageLabels"`
	UseCollapsibleSections bool       `yaml:"useCollapsibleSections" mapstructure:"useCollapsibleSections"`

	OutputPlacement   Placement `yaml:"outputPlacement" mapstructure:"outputPlacement"`
	OutputHeadingText string    `yaml:"outputHeadingText" mapstructure:"outputHeadingText"`
	TargetHeading     string    `yaml:"targetHeading" mapstructure:"targetHeading"`
	ReplacePrevious   bool      `yaml:"replacePrevious" mapstructure:"replacePrevious"`
}

// Formatting selects how a callout wraps the combined body.
type Formatting string

const (
	// HeaderOnly emits the callout title and keeps the body as a normal fence.
	HeaderOnly  Formatting = "header-only"
	// FullContent prefixes every body line with a block-quote marker. Long
	// lines may wrap badly in some renderers.
	FullContent Formatting = "full-content"
	// Compact is rendered like FullContent.
	Compact     Formatting = "compact"
)

// Placement selects where the combined block lands in the document.
type Placement string

const (
	Top          Placement = "top"
	Bottom       Placement = "bottom"
	AfterHeading Placement = "afterHeading"
	AtCursor     Placement = "atCursor"
)

// CalloutTypes lists the accepted callout kinds.
var CalloutTypes = []string{"info", "tip", "success", "warning", "error", "example", "quote", "note"}

const (
	DefaultSeparator   = "\n\n// --- Next Code Block ---\n\n"
	DefaultHeading     = "🧩 Combined Code Blocks"
	DefaultIcon        = "⚡"
	DefaultCalloutType = "example"
)

// Default returns the settings used when nothing has been persisted.
func Default() Settings {
	return Settings{
		SeparatorText:          DefaultSeparator,
		LanguageDetection:      true,
		LanguageIncludeList:    []string{},
		LanguageExcludeList:    []string{},
		GroupByLanguage:        false,
		IncludeSourceReference: false,
		UseCalloutStyle:        true,
		CalloutType:            DefaultCalloutType,
		CalloutFormatting:      HeaderOnly,
		EnhancedStyling:        true,
		CustomHeaderIcon:       DefaultIcon,
		ShowLanguageLabels:     true,
		UseCollapsibleSections: false,
		OutputPlacement:        Bottom,
		OutputHeadingText:      DefaultHeading,
	}
}

// Clone returns a copy that shares no slices with s.
func (s Settings) Clone() Settings {
	s.LanguageIncludeList = slices.Clone(s.LanguageIncludeList)
	s.LanguageExcludeList = slices.Clone(s.LanguageExcludeList)

	return s
}

// WithLanguages returns a copy with the given include and exclude lists,
// lower-cased. A nil list keeps the current one.
func (s Settings) WithLanguages(include, exclude []string) Settings {
	s = s.Clone()

	if include != nil {
		s.LanguageIncludeList = NormalizeLanguages(include)
	}

	if exclude != nil {
		s.LanguageExcludeList = NormalizeLanguages(exclude)
	}

	return s
}

// Heading returns the configured output heading, or the default one.
func (s Settings) Heading() string {
	if len(s.OutputHeadingText) == 0 {
		return DefaultHeading
	}

	return s.OutputHeadingText
}

// Icon returns the configured header icon, or the default one.
func (s Settings) Icon() string {
	if len(s.CustomHeaderIcon) == 0 {
		return DefaultIcon
	}

	return s.CustomHeaderIcon
}

// Callout returns the configured callout kind, or the default one.
func (s Settings) Callout() string {
	if len(s.CalloutType) == 0 {
		return DefaultCalloutType
	}

	return s.CalloutType
}

// Layout returns the callout formatting, defaulting to [HeaderOnly].
func (s Settings) Layout() Formatting {
	if len(s.CalloutFormatting) == 0 {
		return HeaderOnly
	}

	return s.CalloutFormatting
}

// Placement returns the output placement, defaulting to [Bottom].
func (s Settings) Placement() Placement {
	if len(s.OutputPlacement) == 0 {
		return Bottom
	}

	return s.OutputPlacement
}

// NormalizeLanguages trims and lower-cases every entry, dropping empty ones.
func NormalizeLanguages(langs []string) []string {
	out := make([]string, 0, len(langs))

	for _, lang := range langs {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if len(lang) != 0 {
			out = append(out, lang)
		}
	}

	return out
}

// SplitLanguages parses a comma separated language list.
func SplitLanguages(value string) []string {
	return NormalizeLanguages(strings.Split(value, ","))
}
