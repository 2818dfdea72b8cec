// Package view draws a window onto a selection of lines.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TimelordUK/logcli/internal/render"
	"github.com/TimelordUK/logcli/internal/source"
)

const noMark = -1

// Viewport shows height consecutive positions of a LineProvider, starting
// at top. Line numbers are the original file indices.
type Viewport struct {
	provider source.LineProvider
	content  render.Renderer

	width  int
	height int
	top    int

	numberStyle lipgloss.Style
	markStyle   lipgloss.Style
	numbers     bool

	// original index of the marked line, noMark for none
	marked int
}

// NewViewport creates a viewport of the given size with plain content
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:       width,
		height:      max(height, 1),
		content:     render.NewPlainRenderer(),
		numberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		markStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		numbers:     true,
		marked:      noMark,
	}
}

// SetStyles replaces the line number and highlight styles
func (v *Viewport) SetStyles(lineNumber, highlight lipgloss.Style) {
	v.numberStyle = lineNumber
	v.markStyle = highlight
}

// SetHighlightedLine highlights the number of the line with the given
// original index
func (v *Viewport) SetHighlightedLine(index int) {
	v.marked = index
}

// ClearHighlight removes any line highlight
func (v *Viewport) ClearHighlight() {
	v.marked = noMark
}

// SetRenderer sets how line text is styled. nil means plain.
func (v *Viewport) SetRenderer(r render.Renderer) {
	if r == nil {
		r = render.NewPlainRenderer()
	}
	v.content = r
}

// SetProvider swaps the selection shown and scrolls to the top
func (v *Viewport) SetProvider(provider source.LineProvider) {
	v.provider = provider
	v.top = 0
}

// SetSize updates viewport dimensions
func (v *Viewport) SetSize(width, height int) {
	v.width = width
	v.height = max(height, 1)
	v.GotoPosition(v.top)
}

// Height returns the number of visible rows
func (v *Viewport) Height() int {
	return v.height
}

// SetShowLineNumbers toggles the line number gutter
func (v *Viewport) SetShowLineNumbers(show bool) {
	v.numbers = show
}

// ShowLineNumbers reports whether the gutter is shown
func (v *Viewport) ShowLineNumbers() bool {
	return v.numbers
}

func (v *Viewport) count() int {
	if v.provider == nil {
		return 0
	}
	return v.provider.LineCount()
}

// GotoPosition makes pos the top row, clamped so the last page stays full
func (v *Viewport) GotoPosition(pos int) {
	v.top = min(max(pos, 0), max(v.count()-v.height, 0))
}

// ScrollDown scrolls down by n lines
func (v *Viewport) ScrollDown(n int) { v.GotoPosition(v.top + n) }

// ScrollUp scrolls up by n lines
func (v *Viewport) ScrollUp(n int) { v.GotoPosition(v.top - n) }

// PageDown scrolls by one page less one line of overlap
func (v *Viewport) PageDown() { v.ScrollDown(max(v.height-1, 1)) }

// PageUp scrolls back by one page less one line of overlap
func (v *Viewport) PageUp() { v.ScrollUp(max(v.height-1, 1)) }

// GotoTop scrolls to the first line
func (v *Viewport) GotoTop() { v.GotoPosition(0) }

// GotoBottom scrolls to the last page
func (v *Viewport) GotoBottom() { v.GotoPosition(v.count()) }

// CurrentPosition returns the position of the top row
func (v *Viewport) CurrentPosition() int {
	return v.top
}

// TopLine returns the line in the top row, nil when there is none
func (v *Viewport) TopLine() *source.Line {
	if v.count() == 0 {
		return nil
	}
	line, err := v.provider.GetLine(v.top)
	if err != nil {
		return nil
	}
	return line
}

// PercentScrolled returns how far through the selection the top row is
func (v *Viewport) PercentScrolled() float64 {
	total := v.count()
	switch {
	case total == 0:
		return 0
	case total <= v.height:
		return 100
	}
	return float64(v.top) / float64(total-v.height) * 100
}

// numberWidth is computed over the whole selection so the gutter does not
// change width while scrolling. The last line has the largest index.
func (v *Viewport) numberWidth() int {
	last, err := v.provider.GetLine(v.count() - 1)
	if err != nil || last == nil {
		return 1
	}
	return len(strconv.Itoa(last.Index))
}

// Render draws the visible rows; rows past the end show "~"
func (v *Viewport) Render() string {
	if v.provider == nil {
		return ""
	}

	var sb strings.Builder
	if v.count() == 0 {
		sb.WriteString(v.numberStyle.Render("(no matching lines)"))
		v.padRows(&sb, 1)
		return sb.String()
	}

	lines, err := v.provider.GetLines(v.top, v.height)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	width := v.numberWidth()
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if v.numbers {
			style := v.numberStyle
			if line.Index == v.marked {
				style = v.markStyle
			}
			sb.WriteString(style.Render(render.LineNumber(line.Index, width) + " "))
		}
		sb.WriteString(v.content.Render(*line))
	}
	v.padRows(&sb, len(lines))

	return sb.String()
}

func (v *Viewport) padRows(sb *strings.Builder, from int) {
	for i := from; i < v.height; i++ {
		sb.WriteString("\n~")
	}
}
