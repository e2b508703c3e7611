package combine

import (
	"strings"

	"github.com/ezerfernandes/mdcombine/internal/mdcode"
)

// DetectLanguage returns the most frequent language tag among blocks,
// lower-cased. Untagged blocks do not count. On a tie the language whose
// count reached the maximum first wins.
func DetectLanguage(blocks mdcode.Blocks) string {
	counts := make(map[string]int)

	var (
		best  string
		count int
	)

	for _, block := range blocks {
		lang := strings.ToLower(strings.TrimSpace(block.Lang))
		if len(lang) == 0 {
			continue
		}

		counts[lang]++

		if counts[lang] > count {
			best, count = lang, counts[lang]
		}
	}

	return best
}
