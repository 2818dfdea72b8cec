package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/TimelordUK/logcli/internal/config"
	"github.com/TimelordUK/logcli/internal/source"
)

// NewLipglossRenderer returns a lipgloss renderer for w honouring the
// color mode: always forces 256 colors, never and non-terminal writers in
// auto mode get no escape sequences.
func NewLipglossRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		f, ok := w.(*os.File)
		if !ok || !isatty.IsTerminal(f.Fd()) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

// ColorEnabled reports whether r emits color
func ColorEnabled(r *lipgloss.Renderer) bool {
	return r.ColorProfile() != termenv.Ascii
}

// Width is the number of decimal digits of the largest index in lines
func Width(lines []source.Line) int {
	largest := 0
	for _, line := range lines {
		largest = max(largest, line.Index)
	}
	return len(strconv.Itoa(largest))
}

// LineNumber formats index as ln<index zero-padded to width>
func LineNumber(index, width int) string {
	return fmt.Sprintf("ln%0*d", width, index)
}

// Header identifies file i (1-based) of n
func Header(i, n int, path string) string {
	return fmt.Sprintf("File (%d/%d): %s", i, n, path)
}

// Styles for the parts of the output that are not line content
type Styles struct {
	LineNumber lipgloss.Style
	Header     lipgloss.Style
}

// NewStyles builds styles from the theme
func NewStyles(r *lipgloss.Renderer, theme config.ThemeConfig) Styles {
	return Styles{
		LineNumber: r.NewStyle().Foreground(lipgloss.Color(theme.LineNumbers)),
		Header:     r.NewStyle().Foreground(lipgloss.Color(theme.Header)).Bold(true),
	}
}

// Formatter writes selected lines as "ln<padded index> <text>"
type Formatter struct {
	styles       Styles
	alwaysHeader bool
}

// NewFormatter creates a formatter
func NewFormatter(styles Styles, alwaysHeader bool) *Formatter {
	return &Formatter{styles: styles, alwaysHeader: alwaysHeader}
}

// FormatLines returns one output line per selected line. An empty
// selection formats to nothing.
func (f *Formatter) FormatLines(lines []source.Line, content Renderer) []string {
	if len(lines) == 0 {
		return nil
	}
	if content == nil {
		content = NewPlainRenderer()
	}

	width := Width(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = f.styles.LineNumber.Render(LineNumber(line.Index, width)) + " " + content.Render(line)
	}
	return out
}

// WriteSection writes file i of n. The header is written when more than
// one file is shown or always_header is set; sections after the first
// are separated by a blank line.
func (f *Formatter) WriteSection(w io.Writer, i, n int, path string, lines []source.Line, content Renderer) error {
	bw := bufio.NewWriter(w)

	if n > 1 || f.alwaysHeader {
		if i > 1 {
			bw.WriteString("\n")
		}
		bw.WriteString(f.styles.Header.Render(Header(i, n, path)))
		bw.WriteString("\n")
	}

	for _, line := range f.FormatLines(lines, content) {
		bw.WriteString(line)
		bw.WriteString("\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// String renders a single section
func (f *Formatter) String(i, n int, path string, lines []source.Line, content Renderer) string {
	var sb strings.Builder
	_ = f.WriteSection(&sb, i, n, path, lines, content)
	return sb.String()
}

// ForFile picks the content renderer for path. Without color every file
// is plain; syntax highlighting wins over level colors for source-like files.
func ForFile(r *lipgloss.Renderer, cfg *config.Config, path string, syntax bool) Renderer {
	switch {
	case !ColorEnabled(r):
		return NewPlainRenderer()
	case syntax && IsSyntaxHighlightable(path):
		return NewSyntaxRenderer(path)
	case cfg.Display.LevelColors:
		return NewLogLevelRenderer(r, cfg)
	default:
		return NewPlainRenderer()
	}
}
