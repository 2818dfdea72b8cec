package source

// LogLevel represents a log severity level
type LogLevel int

const (
	LevelUnknown LogLevel = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the upper-case level name
func (l LogLevel) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Line is a single line of a file.
// Index is the 0-based position in the original file and is never renumbered.
type Line struct {
	Index int
	Text  string
}

// LineProvider is the core abstraction for accessing lines
// The viewport only interacts with this interface
type LineProvider interface {
	// LineCount returns total number of lines
	LineCount() int

	// GetLine returns line at position (0-based)
	GetLine(pos int) (*Line, error)

	// GetLines returns a range of lines efficiently
	GetLines(start, count int) ([]*Line, error)
}

// SliceProvider serves an already selected set of lines.
// Positions address the slice; each Line keeps its original Index.
type SliceProvider struct {
	lines []Line
}

// NewSliceProvider wraps lines without copying them
func NewSliceProvider(lines []Line) *SliceProvider {
	return &SliceProvider{lines: lines}
}

// LineCount returns the number of selected lines
func (p *SliceProvider) LineCount() int {
	return len(p.lines)
}

// GetLine returns the line at position, or nil when out of range
func (p *SliceProvider) GetLine(pos int) (*Line, error) {
	if pos < 0 || pos >= len(p.lines) {
		return nil, nil
	}
	line := p.lines[pos]
	return &line, nil
}

// GetLines returns up to count lines starting at position start
func (p *SliceProvider) GetLines(start, count int) ([]*Line, error) {
	if start < 0 {
		start = 0
	}
	if start >= len(p.lines) || count <= 0 {
		return nil, nil
	}
	end := start + count
	if end > len(p.lines) {
		end = len(p.lines)
	}

	lines := make([]*Line, 0, end-start)
	for i := start; i < end; i++ {
		line := p.lines[i]
		lines = append(lines, &line)
	}
	return lines, nil
}

// PositionOf returns the position of the line with the given original
// index, or the position of the next line after it. ok is false when no
// line at or after index exists.
func (p *SliceProvider) PositionOf(index int) (pos int, ok bool) {
	for i, line := range p.lines {
		if line.Index >= index {
			return i, true
		}
	}
	return 0, false
}
