package host

import (
	"io/fs"
	"os"
)

const fileMode = 0o644

// FS is a file system the combine command can read and write.
type FS interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// OSFS is the operating system file system. Names are used as given.
type OSFS struct{}

func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// FileDocument is a Markdown file seen as a host document.
type FileDocument struct {
	FS     FS
	Name   string
	Cursor int
}

// NewFileDocument returns the document stored in name on the OS file system.
func NewFileDocument(name string, cursor int) *FileDocument {
	return &FileDocument{FS: OSFS{}, Name: name, Cursor: cursor}
}

func (d *FileDocument) Text() (string, error) {
	data, err := fs.ReadFile(d.FS, d.Name)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (d *FileDocument) Replace(text string) error {
	return d.FS.WriteFile(d.Name, []byte(text), fileMode)
}

func (d *FileDocument) CursorOffset() int {
	return d.Cursor
}
