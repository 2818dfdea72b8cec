// Package logformat recognises common log line conventions: severity
// markers and timestamps.
package logformat

import (
	"strings"

	"github.com/TimelordUK/logcli/internal/config"
	"github.com/TimelordUK/logcli/internal/source"
)

type levelRule struct {
	level   source.LogLevel
	markers []string
}

// LevelDetector finds the severity marker in a line
type LevelDetector struct {
	rules []levelRule
}

// NewLevelDetector builds a detector from the configured markers. Rules
// are checked most severe first, so "ERROR: retrying after WARN" is an error.
func NewLevelDetector(cfg *config.LogLevelConfig) *LevelDetector {
	return &LevelDetector{rules: []levelRule{
		{source.LevelFatal, cfg.FatalPatterns},
		{source.LevelError, cfg.ErrorPatterns},
		{source.LevelWarn, cfg.WarnPatterns},
		{source.LevelInfo, cfg.InfoPatterns},
		{source.LevelDebug, cfg.DebugPatterns},
		{source.LevelTrace, cfg.TracePatterns},
	}}
}

// Detect returns the level of line, LevelUnknown when no marker matches
func (d *LevelDetector) Detect(line string) source.LogLevel {
	for _, rule := range d.rules {
		for _, marker := range rule.markers {
			if strings.Contains(line, marker) {
				return rule.level
			}
		}
	}
	return source.LevelUnknown
}
