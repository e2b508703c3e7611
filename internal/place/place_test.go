package place

import (
	"strings"
	"testing"

	"github.com/ezerfernandes/mdcombine/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(doc string) []string {
	return strings.Split(doc, "\n")
}

func TestFindLastCombinedHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want int
	}{
		{name: "none", doc: "# Title\n\ntext", want: -1},
		{name: "atx", doc: "# Title\n\n## 🧩 Combined Code Blocks\n\n```go\nx\n```", want: 2},
		{name: "case and separators", doc: "text\n\n### combined - code  blocks!", want: 2},
		{name: "inside other words", doc: "## Recombined decode blocksy", want: -1},
		{name: "wrong order", doc: "## Code Blocks Combined", want: -1},
		{name: "last wins", doc: "## Combined Code Blocks\n\nx\n\n## Combined code blocks\n", want: 4},
		{name: "callout", doc: "intro\n\n> [!example]+ ⚡ 🧩 Combined Code Blocks\n\n```go\nx\n```", want: 2},
		{name: "inside fence", doc: "```md\n## Combined Code Blocks\n```", want: -1},
		{name: "plain text line", doc: "Combined code blocks are nice", want: -1},
		{name: "setext", doc: "Combined Code Blocks\n====\n", want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FindLastCombinedHeading(split(tt.doc)))
		})
	}
}

func TestFindLastCombinedHeadingSkipsFrontmatter(t *testing.T) {
	t.Parallel()

	doc := "---\ntitle: Combined Code Blocks\n---\n# Notes\n"

	assert.Equal(t, -1, FindLastCombinedHeading(split(doc)))
}

func TestRemovePrevious(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
		ok   bool
	}{
		{
			name: "nothing to remove",
			doc:  "# T\n\ntext\n",
			want: "# T\n\ntext\n",
		},
		{
			name: "plain at bottom",
			doc:  "# T\n\ntext\n\n## Combined Code Blocks\n\n```go\nx\n```",
			want: "# T\n\ntext\n",
			ok:   true,
		},
		{
			name: "enhanced with rules",
			doc:  "# T\n\ntext\n\n---\n\n## ⚡ Combined Code Blocks\n\n---\n\n```go\nx\n```",
			want: "# T\n\ntext\n",
			ok:   true,
		},
		{
			name: "grouped callout keeps following section",
			doc: "> [!example]+ ⚡ Combined Code Blocks\n\n### 🐹 GO\n\n```go\nx\n```\n\n" +
				"## Next\n\nmore",
			want: "## Next\n\nmore",
			ok:   true,
		},
		{
			name: "between sections",
			doc:  "# A\n\na\n\n## Combined Code Blocks\n\n```\nx\n```\n\n# B\n\nb",
			want: "# A\n\na\n\n# B\n\nb",
			ok:   true,
		},
		{
			name: "top keeps the paragraphs that follow",
			doc:  "## Combined Code Blocks\n\n```go\nx := 1\n```\n\nIntro.\n\n```go\nx := 1\n```\n",
			want: "Intro.\n\n```go\nx := 1\n```\n",
			ok:   true,
		},
		{
			name: "full content callout",
			doc:  "> [!example]+ ⚡ Combined Code Blocks\n> \n> ```go\n> x\n> ```\n\ntext\n",
			want: "text\n",
			ok:   true,
		},
		{
			name: "collapsible with label",
			doc: "---\n\n## ⚡ Combined Code Blocks\n\n---\n\n<details>\n<summary><strong>Click to expand GO</strong></summary>\n\n" +
				"**Language:** `go`\n\n```go\nx\n```\n\n</details>\n\n```go\nx\n```\n",
			want: "```go\nx\n```\n",
			ok:   true,
		},
		{
			name: "grouped stops at a user heading",
			doc:  "## Combined Code Blocks\n\n### go\n\n```go\nx\n```\n\n### Setup\n\n```sh\nmake\n```\n",
			want: "### Setup\n\n```sh\nmake\n```\n",
			ok:   true,
		},
		{
			name: "whole document",
			doc:  "## Combined Code Blocks\n\n```\nx\n```",
			want: "",
			ok:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := RemovePrevious(tt.doc)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInsert(t *testing.T) {
	t.Parallel()

	const block = "## Combined\n\n```\nx\n```"

	tests := []struct {
		name   string
		doc    string
		mode   settings.Placement
		target string
		cursor int
		want   string
	}{
		{name: "bottom", doc: "# T\n\ntext", mode: settings.Bottom, want: "# T\n\ntext\n\n" + block},
		{name: "bottom trailing newline", doc: "text\n", mode: settings.Bottom, want: "text\n\n" + block},
		{name: "unknown mode is bottom", doc: "text", mode: "sideways", want: "text\n\n" + block},
		{name: "empty doc", doc: "", mode: settings.Bottom, want: block},
		{name: "top", doc: "# T\n\ntext", mode: settings.Top, want: block + "\n\n# T\n\ntext"},
		{
			name: "top after frontmatter",
			doc:  "---\na: 1\n---\n# T",
			mode: settings.Top,
			want: "---\na: 1\n---\n\n" + block + "\n\n# T",
		},
		{
			name:   "after heading",
			doc:    "# Intro\n\nhello\n\n## Code Summary!\n\n## Other",
			mode:   settings.AfterHeading,
			target: "code summary",
			want:   "# Intro\n\nhello\n\n## Code Summary!\n\n" + block + "\n\n## Other",
		},
		{
			name:   "after setext heading",
			doc:    "Summary\n=======\ntext",
			mode:   settings.AfterHeading,
			target: "summary",
			want:   "Summary\n=======\n\n" + block + "\n\ntext",
		},
		{
			name:   "after heading falls back to bottom",
			doc:    "# Intro",
			mode:   settings.AfterHeading,
			target: "missing",
			want:   "# Intro\n\n" + block,
		},
		{
			name: "after heading without target",
			doc:  "# Intro",
			mode: settings.AfterHeading,
			want: "# Intro\n\n" + block,
		},
		{name: "cursor between paragraphs", doc: "a\n\nb", mode: settings.AtCursor, cursor: 2, want: "a\n\n" + block + "\n\nb"},
		{name: "cursor mid line", doc: "ab", mode: settings.AtCursor, cursor: 1, want: "a\n\n" + block + "\n\nb"},
		{name: "cursor clamped", doc: "ab", mode: settings.AtCursor, cursor: 99, want: "ab\n\n" + block},
		{name: "cursor negative", doc: "ab", mode: settings.AtCursor, cursor: -5, want: block + "\n\nab"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Insert(tt.doc, block, tt.mode, tt.target, tt.cursor))
		})
	}
}

func TestInsertThenRemove(t *testing.T) {
	t.Parallel()

	doc := "# Notes\n\n```go\nx\n```\n"
	block := "> [!example]+ ⚡ 🧩 Combined Code Blocks\n\n```go\nx\n```"

	twice := Insert(Insert(doc, block, settings.Bottom, "", 0), block, settings.Bottom, "", 0)
	assert.Equal(t, 2, strings.Count(twice, "Combined Code Blocks"))

	once, ok := RemovePrevious(twice)
	require.True(t, ok)
	assert.Equal(t, 1, strings.Count(once, "Combined Code Blocks"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "combined codeblocks", normalize("  🧩 Combined,  Code-Blocks! "))
	assert.Empty(t, normalize("!!!"))
}
