package place

import (
	"bytes"
	"strings"

	"github.com/ezerfernandes/mdcombine/internal/settings"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// calloutLevel is the level given to callout titles, which open a section
// like a second level heading does.
const calloutLevel = 2

type heading struct {
	line  int // 0-based
	level int
	text  string
}

// headings returns the ATX and setext headings of a document, plus callout
// title lines, in document order. Headings inside code blocks and the
// frontmatter are not reported.
func headings(lines []string) []heading {
	source := []byte(strings.Join(maskFrontmatter(lines), "\n"))
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var found []heading

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			if h, ok := headingOf(n, n.Level, source); ok {
				found = append(found, h)
			}
		case *ast.Blockquote:
			if h, ok := calloutTitle(n, source); ok {
				found = append(found, h)
			}
		}

		return ast.WalkContinue, nil
	})

	return found
}

func headingOf(node ast.Node, level int, source []byte) (heading, bool) {
	lines := node.Lines()
	if lines.Len() == 0 {
		return heading{}, false
	}

	first := lines.At(0)

	return heading{
		line:  lineAt(source, first.Start) - 1,
		level: level,
		text:  strings.TrimSpace(string(first.Value(source))),
	}, true
}

// calloutTitle reports the "[!kind] title" line opening a block quote.
func calloutTitle(bq *ast.Blockquote, source []byte) (heading, bool) {
	para, ok := bq.FirstChild().(*ast.Paragraph)
	if !ok {
		return heading{}, false
	}

	h, ok := headingOf(para, calloutLevel, source)
	if !ok || !strings.HasPrefix(h.text, "[!") {
		return heading{}, false
	}

	return h, true
}

func lineAt(source []byte, offset int) int {
	return bytes.Count(source[:min(offset, len(source))], []byte("\n")) + 1
}

// maskFrontmatter blanks the leading metadata header so its delimiters are not
// taken for a thematic break and a setext heading.
func maskFrontmatter(lines []string) []string {
	n := frontmatterLines(lines)
	if n == 0 {
		return lines
	}

	masked := make([]string, len(lines))
	copy(masked[n:], lines[n:])

	return masked
}

// frontmatterLines returns the number of lines taken by the leading metadata
// header, closing delimiter included.
func frontmatterLines(lines []string) int {
	body, ok := settings.Frontmatter(strings.Join(lines, "\n"))
	if !ok {
		return 0
	}

	return strings.Count(body, "\n") + 3
}
