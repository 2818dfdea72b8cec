// Package index records where each line of a mapped file starts so that
// lines can be read back without rescanning.
package index

import (
	"bytes"
	"fmt"

	logio "github.com/TimelordUK/logcli/internal/io"
)

// chunkSize is the read size used while scanning for newlines
const chunkSize = 64 * 1024

// Offsets holds the byte offset of every line start in a file
type Offsets struct {
	starts []int64
	file   *logio.File
}

// Scan reads the whole file once and records line starts.
// An empty file has no lines; a trailing newline does not start a new one.
func Scan(file *logio.File) (*Offsets, error) {
	size := file.Len()
	o := &Offsets{file: file}
	if size == 0 {
		return o, nil
	}

	// Assume ~100 bytes per line
	o.starts = make([]int64, 1, size/100+1)

	buf := make([]byte, chunkSize)
	for pos := int64(0); pos < size; {
		n, err := file.ReadAt(buf[:min(int64(chunkSize), size-pos)], pos)
		if err != nil {
			return nil, fmt.Errorf("scan %s at offset %d: %w", file.Name(), pos, err)
		}
		o.starts = appendStarts(o.starts, buf[:n], pos, size)
		pos += int64(n)
	}
	return o, nil
}

// appendStarts adds the offset following every newline in chunk, which
// begins at base, unless that offset is the end of the file
func appendStarts(starts []int64, chunk []byte, base, size int64) []int64 {
	off := 0
	for {
		i := bytes.IndexByte(chunk[off:], '\n')
		if i < 0 {
			return starts
		}
		off += i + 1
		if next := base + int64(off); next < size {
			starts = append(starts, next)
		}
	}
}

// Count returns the number of lines
func (o *Offsets) Count() int {
	return len(o.starts)
}

// Start returns the byte offset of line n, -1 when out of range
func (o *Offsets) Start(n int) int64 {
	if n < 0 || n >= len(o.starts) {
		return -1
	}
	return o.starts[n]
}

// end is the offset just past line n-1
func (o *Offsets) end(n int) int64 {
	if n < len(o.starts) {
		return o.starts[n]
	}
	return o.file.Len()
}

// Line returns line n without its terminator, nil when out of range
func (o *Offsets) Line(n int) ([]byte, error) {
	lines, err := o.Range(n, 1)
	if err != nil || len(lines) == 0 {
		return nil, err
	}
	return lines[0], nil
}

// Range returns up to count lines starting at line start with a single
// read of the underlying bytes
func (o *Offsets) Range(start, count int) ([][]byte, error) {
	start = max(start, 0)
	stop := min(start+count, len(o.starts))
	if start >= stop {
		return nil, nil
	}

	base := o.starts[start]
	data, err := o.file.Slice(base, o.end(stop))
	if err != nil {
		return nil, err
	}

	lines := make([][]byte, 0, stop-start)
	for n := start; n < stop; n++ {
		lines = append(lines, trimEOL(data[o.starts[n]-base:o.end(n+1)-base]))
	}
	return lines, nil
}

// All returns every line in file order
func (o *Offsets) All() ([][]byte, error) {
	return o.Range(0, len(o.starts))
}

// trimEOL removes a trailing "\n" or "\r\n"
func trimEOL(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte("\n"))
	return bytes.TrimSuffix(b, []byte("\r"))
}
