package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNoFrontmatter(t *testing.T) {
	t.Parallel()

	base := Default()

	got, err := Resolve("# title\n\n```go\nx\n```\n", base)

	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestResolveOverrides(t *testing.T) {
	t.Parallel()

	doc := "---\n" +
		"title: notes\n" +
		"combine-code-blocks:\n" +
		"  groupByLanguage: true\n" +
		"  separatorText: \"\\n---\\n\"\n" +
		"  languageIncludeList: [Python, GO]\n" +
		"---\n" +
		"body\n"

	base := Default().WithLanguages([]string{"rust"}, []string{"sql"})

	got, err := Resolve(doc, base)

	require.NoError(t, err)
	assert.True(t, got.GroupByLanguage)
	assert.Equal(t, "\n---\n", got.SeparatorText)
	assert.Equal(t, []string{"python", "go"}, got.LanguageIncludeList)
	assert.Equal(t, []string{"sql"}, got.LanguageExcludeList)
	assert.Equal(t, base.OutputHeadingText, got.OutputHeadingText)

	assert.Equal(t, []string{"rust"}, base.LanguageIncludeList, "base must not change")
}

func TestResolveCRLF(t *testing.T) {
	t.Parallel()

	doc := "---\r\ncombine-code-blocks:\r\n  useCalloutStyle: false\r\n---\r\ntext\r\n"

	got, err := Resolve(doc, Default())

	require.NoError(t, err)
	assert.False(t, got.UseCalloutStyle)
}

func TestResolveFrontmatterAtEOF(t *testing.T) {
	t.Parallel()

	got, err := Resolve("---\ncombine-code-blocks:\n  enhancedStyling: false\n---", Default())

	require.NoError(t, err)
	assert.False(t, got.EnhancedStyling)
}

func TestResolveDegradesToBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "malformed yaml", doc: "---\ncombine-code-blocks: [unclosed\n---\n", wantErr: true},
		{name: "not a mapping", doc: "---\ncombine-code-blocks: 3\n---\n", wantErr: true},
		{name: "bad field type", doc: "---\ncombine-code-blocks:\n  groupByLanguage: [1, 2]\n---\n", wantErr: true},
		{name: "unknown layout", doc: "---\ncombine-code-blocks:\n  calloutFormatting: bogus\n---\n", wantErr: true},
		{name: "unknown placement", doc: "---\ncombine-code-blocks:\n  outputPlacement: sideways\n---\n", wantErr: true},
		{name: "unknown callout", doc: "---\ncombine-code-blocks:\n  calloutType: shout\n  groupByLanguage: true\n---\n", wantErr: true},
		{name: "null namespace", doc: "---\ncombine-code-blocks:\n---\n"},
		{name: "no namespace", doc: "---\ntitle: x\n---\n"},
		{name: "not at start", doc: "\n---\ncombine-code-blocks:\n  groupByLanguage: true\n---\n"},
		{name: "unterminated", doc: "---\ncombine-code-blocks:\n  groupByLanguage: true\n"},
	}

	base := Default()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.doc, base)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, base, got)
		})
	}
}

func TestResolveUnknownKeysIgnored(t *testing.T) {
	t.Parallel()

	got, err := Resolve("---\ncombine-code-blocks:\n  nope: 1\n  calloutType: tip\n---\n", Default())

	require.NoError(t, err)
	assert.Equal(t, "tip", got.CalloutType)
}

func TestFrontmatter(t *testing.T) {
	t.Parallel()

	body, ok := Frontmatter("---\na: 1\nb: 2\n---\nrest")

	require.True(t, ok)
	assert.Equal(t, "a: 1\nb: 2", body)

	_, ok = Frontmatter("no header")
	assert.False(t, ok)
}

func TestResolveRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	base := Default()
	base.GroupByLanguage = true

	got, err := Resolve("---\ncombine-code-blocks:\n  useCalloutStyle: false\n  outputPlacement: sideways\n---\n", base)

	require.ErrorIs(t, err, ErrBadValue)
	assert.Equal(t, base, got)
}
