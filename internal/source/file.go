package source

import (
	"errors"
	"fmt"

	"github.com/TimelordUK/logcli/internal/index"
	logio "github.com/TimelordUK/logcli/internal/io"
)

// ErrFileUnreadable is returned when a path does not exist or cannot be read
var ErrFileUnreadable = errors.New("file unreadable")

// File is an opened, line-indexed input file
type File struct {
	mapped  *logio.File
	offsets *index.Offsets
}

// Open maps and indexes path. Errors wrap ErrFileUnreadable.
func Open(path string) (*File, error) {
	mapped, err := logio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}

	offsets, err := index.Scan(mapped)
	if err != nil {
		mapped.Close()
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	return &File{mapped: mapped, offsets: offsets}, nil
}

// LineCount returns the number of lines in the file
func (f *File) LineCount() int {
	return f.offsets.Count()
}

// Lines returns every line, numbered from 0
func (f *File) Lines() ([]Line, error) {
	raw, err := f.offsets.All()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}

	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Index: i, Text: string(text)}
	}
	return lines, nil
}

// Path returns the path the file was opened with
func (f *File) Path() string {
	return f.mapped.Name()
}

// Close releases the mapping
func (f *File) Close() error {
	return f.mapped.Close()
}

// ReadFile reads all lines of path into memory
func ReadFile(path string) ([]Line, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Lines()
}
