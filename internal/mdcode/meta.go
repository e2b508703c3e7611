package mdcode

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from the text following the language
// tag on a fence line, e.g. ```go file=main.go title="entry point".
type Meta map[string]any

// Get returns the metadata value for the given key as a string.
// It returns an empty string if the key is missing or the Meta is nil.
func (m Meta) Get(name string) string {
	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// String renders the metadata as space separated key=value pairs sorted by key.
func (m Meta) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + m.Get(k)
	}

	return strings.Join(pairs, " ")
}

var (
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}$`)
)

// parseMeta accepts either a JSON object or shell-like words, where only the
// key=value words are kept.
func parseMeta(input []byte) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.Match(input) {
		var meta Meta

		if err := json.Unmarshal(input, &meta); err != nil {
			return nil, err
		}

		return meta, nil
	}

	if subs := reBrackets.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, err
	}

	dict := make(Meta)

	for _, word := range words {
		if key, value, ok := strings.Cut(word, "="); ok && len(key) != 0 {
			dict[key] = value
		}
	}

	return dict, nil
}
