package settings

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// Keys lists the setting names in the order they are displayed.
var Keys = []string{
	"separatorText",
	"languageDetection",
	"languageIncludeList",
	"languageExcludeList",
	"groupByLanguage",
	"includeSourceReference",
	"useCalloutStyle",
	"calloutType",
	"calloutFormatting",
	"enhancedStyling",
	"customHeaderIcon",
	"showLanguageLabels",
	"useCollapsibleSections",
	"outputPlacement",
	"outputHeadingText",
	"targetHeading",
	"replacePrevious",
}

var (
	ErrUnknownKey = errors.New("unknown setting")
	ErrBadValue   = errors.New("invalid value")
)

// Map returns the settings keyed by their persisted names.
func (s Settings) Map() map[string]any {
	return map[string]any{
		"separatorText":          s.SeparatorText,
		"languageDetection":      s.LanguageDetection,
		"languageIncludeList":    slices.Clone(s.LanguageIncludeList),
		"languageExcludeList":    slices.Clone(s.LanguageExcludeList),
		"groupByLanguage":        s.GroupByLanguage,
		"includeSourceReference": s.IncludeSourceReference,
		"useCalloutStyle":        s.UseCalloutStyle,
		"calloutType":            s.CalloutType,
		"calloutFormatting":      string(s.CalloutFormatting),
		"enhancedStyling":        s.EnhancedStyling,
		"customHeaderIcon":       s.CustomHeaderIcon,
		"showLanguageLabels":     s.ShowLanguageLabels,
		"useCollapsibleSections": s.UseCollapsibleSections,
		"outputPlacement":        string(s.OutputPlacement),
		"outputHeadingText":      s.OutputHeadingText,
		"targetHeading":          s.TargetHeading,
		"replacePrevious":        s.ReplacePrevious,
	}
}

// Set returns a copy of s with the named setting parsed from value. Language
// lists are comma separated.
func (s Settings) Set(key, value string) (Settings, error) {
	s = s.Clone()

	var err error

	switch key {
	case "separatorText":
		s.SeparatorText = value
	case "languageDetection":
		s.LanguageDetection, err = parseBool(key, value)
	case "languageIncludeList":
		s.LanguageIncludeList = SplitLanguages(value)
	case "languageExcludeList":
		s.LanguageExcludeList = SplitLanguages(value)
	case "groupByLanguage":
		s.GroupByLanguage, err = parseBool(key, value)
	case "includeSourceReference":
		s.IncludeSourceReference, err = parseBool(key, value)
	case "useCalloutStyle":
		s.UseCalloutStyle, err = parseBool(key, value)
	case "calloutType":
		s.CalloutType = value
	case "calloutFormatting":
		s.CalloutFormatting = Formatting(value)
	case "enhancedStyling":
		s.EnhancedStyling, err = parseBool(key, value)
	case "customHeaderIcon":
		s.CustomHeaderIcon = value
	case "showLanguageLabels":
		s.ShowLanguageLabels, err = parseBool(key, value)
	case "useCollapsibleSections":
		s.UseCollapsibleSections, err = parseBool(key, value)
	case "outputPlacement":
		s.OutputPlacement = Placement(value)
	case "outputHeadingText":
		s.OutputHeadingText = value
	case "targetHeading":
		s.TargetHeading = value
	case "replacePrevious":
		s.ReplacePrevious, err = parseBool(key, value)
	default:
		return s, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err != nil {
		return s, err
	}

	return s, s.Validate()
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w for %s: %q", ErrBadValue, key, value)
	}

	return b, nil
}

// Validate checks the enumerated settings. Empty values are accepted and
// fall back to their defaults.
func (s Settings) Validate() error {
	if len(s.CalloutType) != 0 && !slices.Contains(CalloutTypes, s.CalloutType) {
		return fmt.Errorf("%w for calloutType: %q", ErrBadValue, s.CalloutType)
	}

	switch s.CalloutFormatting {
	case "", HeaderOnly, FullContent, Compact:
	default:
		return fmt.Errorf("%w for calloutFormatting: %q", ErrBadValue, s.CalloutFormatting)
	}

	switch s.OutputPlacement {
	case "", Top, Bottom, AfterHeading, AtCursor:
	default:
		return fmt.Errorf("%w for outputPlacement: %q", ErrBadValue, s.OutputPlacement)
	}

	return nil
}
