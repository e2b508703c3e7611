package mdcode

import (
	"bytes"
	"regexp"
	"strings"
)

const fence = "```"

var (
	reOpen   = regexp.MustCompile("^```(\\w*)(.*)$")
	reIgnore = regexp.MustCompile(`^<!--\s*combine:ignore\s*-->$`)
)

// Walker is a callback invoked, in document order, for each top-level fenced
// code block found in a Markdown document.
type Walker func(block *Block) error

type scanner struct {
	in      bool
	depth   int
	ignore  bool
	current *Block
	code    []string
}

// Walk scans a Markdown document line by line and calls walker for every
// top-level fenced code block. Fences nested inside a block are kept verbatim
// as part of its content. A fence left open at the end of the document does
// not produce a block. Walk stops at the first error returned by walker.
func Walk(source []byte, walker Walker) error {
	var sc scanner

	for idx, raw := range bytes.Split(source, []byte("\n")) {
		line := strings.TrimSuffix(string(raw), "\r")

		block := sc.line(line, idx+1)
		if block == nil {
			continue
		}

		if err := walker(block); err != nil {
			return err
		}
	}

	return nil
}

// line feeds one line to the scanner and returns the block it closes, if any.
func (sc *scanner) line(line string, num int) *Block {
	trimmed := strings.TrimSpace(line)

	if !sc.in {
		if reIgnore.MatchString(trimmed) {
			sc.ignore = true

			return nil
		}

		if match := reOpen.FindStringSubmatch(line); match != nil {
			sc.open(match[1], match[2], num)
		}

		return nil
	}

	if trimmed == fence && sc.depth == 1 {
		return sc.close(num)
	}

	switch {
	case trimmed == fence && sc.depth > 1:
		sc.depth--
	case strings.HasPrefix(trimmed, fence):
		sc.depth++
	}

	sc.code = append(sc.code, line)

	return nil
}

func (sc *scanner) open(lang, info string, num int) {
	meta, err := parseMeta([]byte(strings.TrimSpace(info)))
	if err != nil {
		meta = Meta{}
	}

	sc.in = true
	sc.depth = 1
	sc.current = &Block{Lang: strings.TrimSpace(lang), Meta: meta, StartLine: num}
	sc.code = sc.code[:0]
}

func (sc *scanner) close(num int) *Block {
	block := sc.current
	block.EndLine = num
	block.Code = []byte(strings.Join(sc.code, "\n"))
	block.Ignored = sc.ignore

	sc.in = false
	sc.depth = 0
	sc.ignore = false
	sc.current = nil
	sc.code = nil

	return block
}
