package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	s := Default()

	assert.Equal(t, DefaultSeparator, s.SeparatorText)
	assert.True(t, s.LanguageDetection)
	assert.True(t, s.UseCalloutStyle)
	assert.True(t, s.EnhancedStyling)
	assert.Equal(t, HeaderOnly, s.Layout())
	assert.Equal(t, Bottom, s.Placement())
	require.NoError(t, s.Validate())
}

func TestFallbacks(t *testing.T) {
	t.Parallel()

	var s Settings

	assert.Equal(t, DefaultHeading, s.Heading())
	assert.Equal(t, DefaultIcon, s.Icon())
	assert.Equal(t, DefaultCalloutType, s.Callout())
	assert.Equal(t, HeaderOnly, s.Layout())
	assert.Equal(t, Bottom, s.Placement())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	s := Default().WithLanguages([]string{"go"}, nil)
	c := s.Clone()
	c.LanguageIncludeList[0] = "rust"

	assert.Equal(t, []string{"go"}, s.LanguageIncludeList)
}

func TestWithLanguages(t *testing.T) {
	t.Parallel()

	s := Default().WithLanguages([]string{" Python ", "", "GO"}, []string{"SQL"})

	assert.Equal(t, []string{"python", "go"}, s.LanguageIncludeList)
	assert.Equal(t, []string{"sql"}, s.LanguageExcludeList)

	s = s.WithLanguages(nil, []string{})
	assert.Equal(t, []string{"python", "go"}, s.LanguageIncludeList)
	assert.Empty(t, s.LanguageExcludeList)
}

func TestSplitLanguages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"python", "javascript"}, SplitLanguages("Python, javascript,,"))
	assert.Empty(t, SplitLanguages(""))
}

func TestSet(t *testing.T) {
	t.Parallel()

	s, err := Default().Set("groupByLanguage", "true")
	require.NoError(t, err)
	assert.True(t, s.GroupByLanguage)

	s, err = s.Set("languageExcludeList", "Markdown,SQL")
	require.NoError(t, err)
	assert.Equal(t, []string{"markdown", "sql"}, s.LanguageExcludeList)

	s, err = s.Set("outputPlacement", "afterHeading")
	require.NoError(t, err)
	assert.Equal(t, AfterHeading, s.OutputPlacement)

	_, err = s.Set("nope", "1")
	require.ErrorIs(t, err, ErrUnknownKey)

	_, err = s.Set("useCalloutStyle", "maybe")
	require.ErrorIs(t, err, ErrBadValue)

	_, err = s.Set("calloutType", "banana")
	require.ErrorIs(t, err, ErrBadValue)

	_, err = s.Set("calloutFormatting", "wide")
	require.ErrorIs(t, err, ErrBadValue)
}

func TestMapCoversKeys(t *testing.T) {
	t.Parallel()

	m := Default().Map()

	assert.Len(t, m, len(Keys))

	for _, key := range Keys {
		assert.Contains(t, m, key)
	}
}
