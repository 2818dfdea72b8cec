// Package io gives read-only, memory-mapped access to input files.
package io

import (
	"fmt"
	"os"

	"golang.org/x/exp/mmap"
)

// File is a read-only mapping of a whole file
type File struct {
	r    *mmap.ReaderAt
	name string
}

// Open maps the file at path
func Open(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	switch {
	case info.IsDir():
		return nil, &os.PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	case !info.Mode().IsRegular():
		return nil, &os.PathError{Op: "open", Path: path, Err: ErrNotRegular}
	}

	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{r: r, name: path}, nil
}

// Name returns the path the file was opened with
func (f *File) Name() string {
	return f.name
}

// Len returns the mapped length in bytes
func (f *File) Len() int64 {
	return int64(f.r.Len())
}

// ReadAt implements io.ReaderAt
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.r.ReadAt(p, off)
}

// Slice copies bytes [start, end) out of the mapping. end is clamped to
// the file length; an empty range yields nil.
func (f *File) Slice(start, end int64) ([]byte, error) {
	end = min(end, f.Len())
	if start < 0 || start >= end {
		return nil, nil
	}

	buf := make([]byte, end-start)
	if _, err := f.r.ReadAt(buf, start); err != nil {
		return nil, fmt.Errorf("read %s [%d, %d): %w", f.name, start, end, err)
	}
	return buf, nil
}

// Close unmaps the file
func (f *File) Close() error {
	return f.r.Close()
}
