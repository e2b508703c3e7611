// Package place inserts a combined block into a Markdown document and finds
// the section a previous run inserted.
package place

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ezerfernandes/mdcombine/internal/mdcode"
	"github.com/ezerfernandes/mdcombine/internal/settings"
)

var (
	reCombinedHeading = regexp.MustCompile(`(?i)\bcombined\b.*\bcode\b.*\bblocks\b`)
	reSetextUnderline = regexp.MustCompile(`^ {0,3}(=+|-+)[ \t]*$`)
)

// FindLastCombinedHeading returns the index of the last heading or callout
// title line that reads like "Combined Code Blocks", or -1.
func FindLastCombinedHeading(lines []string) int {
	hs := headings(lines)

	for i := len(hs) - 1; i >= 0; i-- {
		if reCombinedHeading.MatchString(hs[i].text) {
			return hs[i].line
		}
	}

	return -1
}

// RemovePrevious cuts the last combined section out of document. The section
// is the heading, with the rule and blank lines above it, and the body the
// renderer writes under it: quoted callout lines, or the fences with their
// group headings, language label and collapsible wrapper. Anything after that
// body is kept. It reports whether a section was found.
func RemovePrevious(document string) (string, bool) {
	lines := strings.Split(document, "\n")

	idx := FindLastCombinedHeading(lines)
	if idx < 0 {
		return document, false
	}

	start := idx
	ruled := false

	if start >= 2 && isBlank(lines[start-1]) && strings.TrimSpace(lines[start-2]) == "---" {
		start -= 2
		ruled = true
	}

	for start > 0 && isBlank(lines[start-1]) {
		start--
	}

	end := sectionEnd(lines, idx, ruled, fences(document))

	for end < len(lines) && isBlank(lines[end]) {
		end++
	}

	before := strings.Join(lines[:start], "\n")
	after := strings.Join(lines[end:], "\n")

	switch {
	case len(after) == 0 && len(before) == 0:
		return "", true
	case len(after) == 0:
		return before + "\n", true
	case len(before) == 0:
		return after, true
	default:
		return before + "\n\n" + after, true
	}
}

// fences indexes the fenced blocks of document by their opening line, 0-based.
func fences(document string) map[int]*mdcode.Block {
	found := make(map[int]*mdcode.Block)

	for _, block := range mdcode.Scan([]byte(document)) {
		found[block.StartLine-1] = block
	}

	return found
}

// sectionEnd returns the line after the body of the combined section headed
// at line idx.
func sectionEnd(lines []string, idx int, ruled bool, blocks map[int]*mdcode.Block) int {
	end := idx + 1

	if strings.HasPrefix(lines[idx], ">") {
		for end < len(lines) && strings.HasPrefix(lines[end], ">") {
			end++
		}

		if end > idx+1 {
			return end
		}
	}

	if end < len(lines) && reSetextUnderline.MatchString(lines[end]) {
		end++
	}

	next := func(from int) int {
		for from < len(lines) && isBlank(lines[from]) {
			from++
		}

		return from
	}

	if i := next(end); ruled && i < len(lines) && strings.TrimSpace(lines[i]) == "---" {
		end = i + 1
	}

	var details, grouped bool

	for i := next(end); i < len(lines); i = next(end) {
		line := strings.TrimSpace(lines[i])

		switch {
		case line == "<details>" && !details && !grouped:
			details = true
			end = i + 1
		case strings.HasPrefix(line, "<summary>") && details:
			end = i + 1
		case line == "</details>" && details:
			return i + 1
		case strings.HasPrefix(line, "**Language:**") && !grouped:
			end = i + 1
		case strings.HasPrefix(line, "### ") && !details:
			block, ok := blocks[next(i+1)]
			if !ok || !groupOf(line, block) {
				return end
			}

			grouped = true
			end = block.EndLine
		default:
			block, ok := blocks[i]
			if !ok || grouped {
				return end
			}

			end = block.EndLine
			if !details {
				return end
			}
		}
	}

	return end
}

// groupOf reports whether heading is the group heading written for block.
func groupOf(heading string, block *mdcode.Block) bool {
	words := strings.Fields(heading)

	return strings.EqualFold(words[len(words)-1], mdcode.LangKey(block.Lang))
}

// Insert places block into document according to mode. AfterHeading looks
// for the first heading matching target and falls back to Bottom; AtCursor
// inserts at the byte offset cursor, clamped to the document.
func Insert(document, block string, mode settings.Placement, target string, cursor int) string {
	switch mode {
	case settings.Top:
		lines := strings.Split(document, "\n")
		offset := lineOffset(lines, frontmatterLines(lines))

		return pad(document[:offset], block, document[offset:])
	case settings.AfterHeading:
		lines := strings.Split(document, "\n")
		if idx := findHeading(lines, target); idx >= 0 {
			next := idx + 1
			if next < len(lines) && reSetextUnderline.MatchString(lines[next]) {
				next++
			}

			offset := lineOffset(lines, next)

			return pad(document[:offset], block, document[offset:])
		}
	case settings.AtCursor:
		cursor = max(0, min(cursor, len(document)))

		return pad(document[:cursor], block, document[cursor:])
	}

	return pad(document, block, "")
}

// pad joins the parts, adding newlines so that block is separated from its
// neighbours by a blank line.
func pad(before, block, after string) string {
	var lead, trail string

	switch {
	case len(before) == 0, strings.HasSuffix(before, "\n\n"):
	case strings.HasSuffix(before, "\n"):
		lead = "\n"
	default:
		lead = "\n\n"
	}

	switch {
	case len(after) == 0, strings.HasPrefix(after, "\n\n"):
	case strings.HasPrefix(after, "\n"):
		trail = "\n"
	default:
		trail = "\n\n"
	}

	return before + lead + block + trail + after
}

// lineOffset returns the byte offset where line n starts.
func lineOffset(lines []string, n int) int {
	offset := 0

	for i := 0; i < n && i < len(lines); i++ {
		offset += len(lines[i]) + 1
	}

	total := len(strings.Join(lines, "\n"))

	return min(offset, total)
}

func findHeading(lines []string, target string) int {
	want := normalize(target)
	if len(want) == 0 {
		return -1
	}

	for _, h := range headings(lines) {
		got := normalize(h.text)
		if len(got) != 0 && (strings.Contains(got, want) || strings.Contains(want, got)) {
			return h.line
		}
	}

	return -1
}

// normalize lower-cases s, drops punctuation and symbols and collapses
// white space.
func normalize(s string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)

	return strings.Join(strings.Fields(clean), " ")
}

func isBlank(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}
