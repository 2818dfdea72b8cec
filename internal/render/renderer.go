package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/TimelordUK/logcli/internal/config"
	"github.com/TimelordUK/logcli/internal/source"
	"github.com/TimelordUK/logcli/pkg/logformat"
)

// Renderer applies styling to the text of a line
type Renderer interface {
	Render(line source.Line) string
}

// LogLevelRenderer colors lines based on log level
type LogLevelRenderer struct {
	detector *logformat.LevelDetector
	styles   map[source.LogLevel]lipgloss.Style
}

// NewLogLevelRenderer creates a renderer with config, drawing styles from r
func NewLogLevelRenderer(r *lipgloss.Renderer, cfg *config.Config) *LogLevelRenderer {
	levels := cfg.Theme.Levels
	// Log lines keep their tabs
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	color := func(c string) lipgloss.Style {
		return base.Foreground(lipgloss.Color(c))
	}

	return &LogLevelRenderer{
		detector: logformat.NewLevelDetector(&cfg.LogLevels),
		styles: map[source.LogLevel]lipgloss.Style{
			source.LevelUnknown: base,
			source.LevelTrace:   color(levels.Trace),
			source.LevelDebug:   color(levels.Debug),
			source.LevelInfo:    color(levels.Info),
			source.LevelWarn:    color(levels.Warn),
			source.LevelError:   color(levels.Error),
			source.LevelFatal:   color(levels.Fatal).Bold(true),
		},
	}
}

// Render applies log level styling to a line
func (r *LogLevelRenderer) Render(line source.Line) string {
	return r.styles[r.detector.Detect(line.Text)].Render(line.Text)
}

// PlainRenderer renders without styling
type PlainRenderer struct{}

// NewPlainRenderer creates a plain renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// Render returns the line content as-is
func (r *PlainRenderer) Render(line source.Line) string {
	return line.Text
}
