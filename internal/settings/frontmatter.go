package settings

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Namespace is the frontmatter key holding per-document overrides.
const Namespace = "combine-code-blocks"

var reFrontmatter = regexp.MustCompile(`(?s)\A---\n(.*?)\n---(?:\n|\z)`)

// ErrOverridesNotMapping is reported when the namespace key is not a mapping.
var ErrOverridesNotMapping = errors.New(Namespace + " is not a mapping")

type frontmatter struct {
	Overrides yaml.Node `yaml:"combine-code-blocks"`
}

// Frontmatter returns the body of the metadata header at the very start of
// document, with line endings normalized to LF.
func Frontmatter(document string) (string, bool) {
	match := reFrontmatter.FindStringSubmatch(strings.ReplaceAll(document, "\r\n", "\n"))
	if match == nil {
		return "", false
	}

	return match[1], true
}

// Resolve overlays the overrides found in the document frontmatter onto base
// and returns the effective settings. It always returns usable settings: when
// the header is missing or malformed, base is returned together with an error
// describing the problem, which callers may log and otherwise ignore.
func Resolve(document string, base Settings) (Settings, error) {
	body, ok := Frontmatter(document)
	if !ok {
		return base, nil
	}

	var fm frontmatter

	if err := yaml.Unmarshal([]byte(body), &fm); err != nil {
		return base, fmt.Errorf("frontmatter: %w", err)
	}

	switch fm.Overrides.Kind {
	case 0:
		return base, nil
	case yaml.MappingNode:
	case yaml.ScalarNode:
		if fm.Overrides.Tag == "!!null" {
			return base, nil
		}

		return base, ErrOverridesNotMapping
	default:
		return base, ErrOverridesNotMapping
	}

	merged := base.Clone()

	if err := fm.Overrides.Decode(&merged); err != nil {
		return base, fmt.Errorf("frontmatter %s: %w", Namespace, err)
	}

	for i := 0; i+1 < len(fm.Overrides.Content); i += 2 {
		switch fm.Overrides.Content[i].Value {
		case "languageIncludeList":
			merged.LanguageIncludeList = NormalizeLanguages(merged.LanguageIncludeList)
		case "languageExcludeList":
			merged.LanguageExcludeList = NormalizeLanguages(merged.LanguageExcludeList)
		}
	}

	if err := merged.Validate(); err != nil {
		return base, fmt.Errorf("frontmatter %s: %w", Namespace, err)
	}

	return merged, nil
}
