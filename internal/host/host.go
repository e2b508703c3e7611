// Package host runs the combine command against a document owned by a host,
// such as a file on disk.
package host

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ezerfernandes/mdcombine/internal/combine"
	"github.com/ezerfernandes/mdcombine/internal/place"
	"github.com/ezerfernandes/mdcombine/internal/settings"
)

// Document is the text the combine command reads and rewrites.
type Document interface {
	Text() (string, error)
	Replace(text string) error
	// CursorOffset is the byte offset used by the atCursor placement.
	CursorOffset() int
}

// Store loads and saves the base settings.
type Store interface {
	Load() (settings.Settings, error)
	Save(cfg settings.Settings) error
}

// Notifier shows a short message to the user.
type Notifier func(format string, args ...any)

const (
	MsgEmpty        = "Document is empty or contains no content."
	MsgNoBlocks     = "No code blocks found to combine."
	MsgCombined     = "Code blocks combined successfully!"
	MsgInsertFailed = "Error inserting combined block. Please try again."
)

// Runner executes the combine command.
type Runner struct {
	Notify Notifier
	Logger *slog.Logger
	// Override, when set, is applied to the settings resolved from the
	// document frontmatter.
	Override func(settings.Settings) (settings.Settings, error)
}

// Run combines the code blocks of doc with base overlaid by the document
// frontmatter and then by Override, and writes the result back into doc. It reports whether the
// document was changed. Empty documents and documents without blocks are not
// errors; the user is notified instead.
func (r *Runner) Run(doc Document, base settings.Settings) (bool, error) {
	text, err := doc.Text()
	if err != nil {
		return false, fmt.Errorf("read document: %w", err)
	}

	if len(strings.TrimSpace(text)) == 0 {
		r.notify(MsgEmpty)

		return false, nil
	}

	effective, err := settings.Resolve(text, base)
	if err != nil {
		r.logger().Debug("ignoring frontmatter overrides", slog.Any("error", err))
	}

	if r.Override != nil {
		if effective, err = r.Override(effective); err != nil {
			return false, err
		}
	}

	if effective.ReplacePrevious {
		var removed bool

		text, removed = place.RemovePrevious(text)
		r.logger().Debug("previous combined section", slog.Bool("removed", removed))
	}

	block, ok := combine.Resolved(text, effective)
	if !ok {
		r.notify(MsgNoBlocks)

		return false, nil
	}

	mode := effective.Placement()
	out := place.Insert(text, block, mode, effective.TargetHeading, doc.CursorOffset())

	r.logger().Debug("inserting combined block", slog.String("placement", string(mode)), slog.Int("bytes", len(block)))

	if err := doc.Replace(out); err != nil {
		r.notify(MsgInsertFailed)

		return false, fmt.Errorf("insert combined block: %w", err)
	}

	r.notify(MsgCombined)

	return true, nil
}

func (r *Runner) notify(msg string) {
	if r.Notify != nil {
		r.Notify("%s\n", msg)
	}
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return r.Logger
}
