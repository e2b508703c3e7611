package mdcode

// Unfence returns all top-level fenced code blocks of a Markdown document,
// ignored ones included, without modifying the source.
func Unfence(source []byte) (Blocks, error) {
	var blocks Blocks

	err := Walk(source, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

// Scan is like [Unfence] but never fails, which suits callers that cannot
// report errors.
func Scan(source []byte) Blocks {
	blocks, _ := Unfence(source)

	return blocks
}
