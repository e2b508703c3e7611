package combine

import (
	"slices"

	"github.com/ezerfernandes/mdcombine/internal/mdcode"
	"github.com/ezerfernandes/mdcombine/internal/settings"
)

// Filter drops ignored blocks and applies the include and exclude language
// lists. A non-empty include list keeps only the listed languages; the
// exclude list always wins. Untagged blocks match the name "plain".
func Filter(blocks mdcode.Blocks, include, exclude []string) mdcode.Blocks {
	include = settings.NormalizeLanguages(include)
	exclude = settings.NormalizeLanguages(exclude)

	var kept mdcode.Blocks

	for _, block := range blocks {
		if block.Ignored {
			continue
		}

		key := block.Key()

		if len(include) != 0 && !slices.Contains(include, key) {
			continue
		}

		if slices.Contains(exclude, key) {
			continue
		}

		kept = append(kept, block)
	}

	return kept
}
