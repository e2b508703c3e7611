package combine

import (
	"fmt"
	"strings"
)

type commentStyle struct {
	open  string
	close string
}

var (
	hashComment  = commentStyle{open: "#"}
	htmlComment  = commentStyle{open: "<!--", close: "-->"}
	sqlComment   = commentStyle{open: "--"}
	cssComment   = commentStyle{open: "/*", close: "*/"}
	slashComment = commentStyle{open: "//"}
)

var commentStyles = map[string]commentStyle{
	"python":   hashComment,
	"ruby":     hashComment,
	"perl":     hashComment,
	"bash":     hashComment,
	"shell":    hashComment,
	"yaml":     hashComment,
	"r":        hashComment,
	"html":     htmlComment,
	"xml":      htmlComment,
	"markdown": htmlComment,
	"sql":      sqlComment,
	"css":      cssComment,
	"scss":     cssComment,
	"less":     cssComment,
}

// SourceReference returns a comment line, in the syntax of lang, naming the
// document lines a block came from.
func SourceReference(lang string, startLine, endLine int) string {
	style, ok := commentStyles[strings.ToLower(lang)]
	if !ok {
		style = slashComment
	}

	text := fmt.Sprintf("%s Source: lines %d-%d", style.open, startLine, endLine)
	if len(style.close) != 0 {
		text += " " + style.close
	}

	return text
}
