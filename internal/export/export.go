// Package export writes selected lines back to disk so a selection can
// be kept or queried again.
package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TimelordUK/logcli/internal/source"
)

// Suffix is appended to the base name of every exported file
const Suffix = ".selected"

// Info describes one exported file
type Info struct {
	SourcePath string // Original file path
	OutputPath string // Written file
	Lines      int    // Number of lines written
	FirstLine  int    // Original index of the first line, -1 when empty
	LastLine   int    // Original index of the last line, -1 when empty
}

// Exporter writes selections into a directory
type Exporter struct {
	dir     string
	written map[string]bool
}

// NewExporter creates an exporter for dir, creating it when missing
func NewExporter(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	return &Exporter{dir: dir, written: make(map[string]bool)}, nil
}

// Dir returns the export directory
func (e *Exporter) Dir() string {
	return e.dir
}

// PathFor returns the path the next Write of sourcePath will use:
// <base>.selected, or <base>.<n>.selected when an earlier Write of this
// exporter already took that name
func (e *Exporter) PathFor(sourcePath string) string {
	base := filepath.Base(sourcePath)
	path := filepath.Join(e.dir, base+Suffix)
	for n := 2; e.written[path]; n++ {
		path = filepath.Join(e.dir, fmt.Sprintf("%s.%d%s", base, n, Suffix))
	}
	return path
}

// Write stores the raw text of lines, one per line, replacing any file
// left by a previous run. A partial file is removed on error.
func (e *Exporter) Write(sourcePath string, lines []source.Line) (*Info, error) {
	outPath := e.PathFor(sourcePath)

	outFile, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create export file: %w", err)
	}

	w := bufio.NewWriter(outFile)
	for _, line := range lines {
		if _, err := w.WriteString(line.Text); err != nil {
			return nil, e.abort(outFile, outPath, fmt.Errorf("failed to write line %d: %w", line.Index, err))
		}
		if err := w.WriteByte('\n'); err != nil {
			return nil, e.abort(outFile, outPath, fmt.Errorf("failed to write newline: %w", err))
		}
	}
	if err := w.Flush(); err != nil {
		return nil, e.abort(outFile, outPath, fmt.Errorf("failed to flush export file: %w", err))
	}
	if err := outFile.Close(); err != nil {
		os.Remove(outPath)
		return nil, fmt.Errorf("failed to close export file: %w", err)
	}

	e.written[outPath] = true

	info := &Info{
		SourcePath: sourcePath,
		OutputPath: outPath,
		Lines:      len(lines),
		FirstLine:  -1,
		LastLine:   -1,
	}
	if len(lines) > 0 {
		info.FirstLine = lines[0].Index
		info.LastLine = lines[len(lines)-1].Index
	}
	return info, nil
}

func (e *Exporter) abort(f *os.File, path string, err error) error {
	f.Close()
	os.Remove(path)
	return err
}
