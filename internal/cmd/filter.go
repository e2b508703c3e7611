package cmd

import (
	"github.com/ezerfernandes/mdcombine/internal/mdcode"
	"github.com/gobwas/glob"
)

type filterFunc func(lang string, meta mdcode.Meta) bool

// filter returns a predicate matching blocks whose language matches one of
// the lang patterns and whose metadata matches every meta pattern.
func filter(lang []string, meta map[string]string) (filterFunc, error) {
	langGlobs := make([]glob.Glob, 0, len(lang))

	for _, pattern := range lang {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		langGlobs = append(langGlobs, g)
	}

	metaGlobs := make(map[string]glob.Glob, len(meta))

	for key, pattern := range meta {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		metaGlobs[key] = g
	}

	return func(blockLang string, blockMeta mdcode.Meta) bool {
		if !matchAny(langGlobs, blockLang) {
			return false
		}

		for key, g := range metaGlobs {
			if !g.Match(blockMeta.Get(key)) {
				return false
			}
		}

		return true
	}, nil
}

func matchAny(globs []glob.Glob, value string) bool {
	if len(globs) == 0 {
		return true
	}

	for _, g := range globs {
		if g.Match(value) {
			return true
		}
	}

	return false
}
