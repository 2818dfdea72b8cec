package logformat

import (
	"regexp"
	"strconv"
	"time"
)

// dateFill describes which parts of a parsed time come from the clock
type dateFill int

const (
	fillNone dateFill = iota
	fillYear
	fillDate
)

type timestampPattern struct {
	regex   *regexp.Regexp
	layouts []string
	fill    dateFill
	unix    time.Duration // non-zero for numeric epoch formats
}

// TimestampParser detects and parses timestamps from log lines
type TimestampParser struct {
	now      func() time.Time
	patterns []timestampPattern
}

// NewTimestampParser creates a parser with common timestamp formats.
// Formats without a date are placed on the current date.
func NewTimestampParser() *TimestampParser {
	return NewTimestampParserAt(time.Now)
}

// NewTimestampParserAt is NewTimestampParser with a custom clock
func NewTimestampParserAt(now func() time.Time) *TimestampParser {
	return &TimestampParser{
		now: now,
		patterns: []timestampPattern{
			// 2024-01-15T10:30:45.123Z, 2024-01-15T10:30:45+00:00, 2024-01-15T10:30:45
			{
				regex:   regexp.MustCompile(`(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})?)`),
				layouts: []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"},
			},
			// [2024-01-15 10:30:45.123] and 2024-01-15 10:30:45.123
			{
				regex:   regexp.MustCompile(`(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d+)`),
				layouts: []string{"2006-01-02 15:04:05.999999999"},
			},
			// 2024-01-15 10:30:45,123 (python logging); the fraction is dropped
			// 2024-01-15 10:30:45
			{
				regex:   regexp.MustCompile(`(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`),
				layouts: []string{"2006-01-02 15:04:05"},
			},
			// 15/Jan/2024:10:30:45 +0000
			{
				regex:   regexp.MustCompile(`(\d{2}/[A-Z][a-z]{2}/\d{4}:\d{2}:\d{2}:\d{2} [+-]\d{4})`),
				layouts: []string{"02/Jan/2006:15:04:05 -0700"},
			},
			// Jan 15 10:30:45 (syslog, no year)
			{
				regex:   regexp.MustCompile(`([A-Z][a-z]{2} +\d{1,2} \d{2}:\d{2}:\d{2})`),
				layouts: []string{"Jan _2 15:04:05", "Jan 2 15:04:05"},
				fill:    fillYear,
			},
			// 1705315845123
			{
				regex: regexp.MustCompile(`^(\d{13})(?:\D|$)`),
				unix:  time.Millisecond,
			},
			// 1705315845
			{
				regex: regexp.MustCompile(`^(\d{10})(?:\D|$)`),
				unix:  time.Second,
			},
			// 10:30:45.123 at line start
			{
				regex:   regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}(?:\.\d+)?)`),
				layouts: []string{"15:04:05.999999999"},
				fill:    fillDate,
			},
		},
	}
}

// Parse attempts to extract a timestamp from a log line
func (p *TimestampParser) Parse(line string) *time.Time {
	for _, pattern := range p.patterns {
		matches := pattern.regex.FindStringSubmatch(line)
		if len(matches) < 2 {
			continue
		}
		if t, ok := p.parse(pattern, matches[1]); ok {
			return &t
		}
	}
	return nil
}

func (p *TimestampParser) parse(pattern timestampPattern, value string) (time.Time, bool) {
	if pattern.unix != 0 {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		if pattern.unix == time.Millisecond {
			return time.UnixMilli(n), true
		}
		return time.Unix(n, 0), true
	}

	for _, layout := range pattern.layouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		now := p.now()
		switch pattern.fill {
		case fillYear:
			t = time.Date(now.Year(), t.Month(), t.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, time.Local)
		case fillDate:
			t = time.Date(now.Year(), now.Month(), now.Day(),
				t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
		}
		return t, true
	}
	return time.Time{}, false
}

// FormatTimeWithDate formats a timestamp with date for display
func FormatTimeWithDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
