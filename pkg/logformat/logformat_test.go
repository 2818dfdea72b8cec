package logformat

import (
	"testing"
	"time"

	"github.com/TimelordUK/logcli/internal/config"
	"github.com/TimelordUK/logcli/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelDetector_Detect(t *testing.T) {
	d := NewLevelDetector(&config.DefaultConfig().LogLevels)

	tests := []struct {
		line string
		want source.LogLevel
	}{
		{line: "2022-01-01 07:00:00,0 [info] module1  Message", want: source.LevelInfo},
		{line: "2022-01-01 09:00:00,0 [debug] module2  Message", want: source.LevelDebug},
		{line: "2022-01-02 00:00:00,0 [warning] module1  Message", want: source.LevelWarn},
		{line: "ERROR: retrying after WARN", want: source.LevelError},
		{line: "FATAL disk gone", want: source.LevelFatal},
		{line: "plain text", want: source.LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.line))
		})
	}
}

func TestTimestampParser_Parse(t *testing.T) {
	clock := func() time.Time { return time.Date(2030, 6, 7, 0, 0, 0, 0, time.Local) }
	p := NewTimestampParserAt(clock)

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "rfc3339", line: "2024-01-15T10:30:45Z started", want: "2024-01-15 10:30:45"},
		{name: "iso no zone", line: "at 2024-01-15T10:30:45.5 ok", want: "2024-01-15 10:30:45"},
		{name: "millis", line: "[2024-01-15 10:30:45.123] ready", want: "2024-01-15 10:30:45"},
		{name: "python comma", line: "2022-01-01 07:00:00,0 [info] module1", want: "2022-01-01 07:00:00"},
		{name: "apache", line: `127.0.0.1 - - [15/Jan/2024:10:30:45 +0000] "GET /"`, want: "2024-01-15 10:30:45"},
		{name: "syslog", line: "Jan  5 10:30:45 host sshd[1]: ok", want: "2030-01-05 10:30:45"},
		{name: "time only", line: "10:30:45 tick", want: "2030-06-07 10:30:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := p.Parse(tt.line)
			require.NotNil(t, ts)
			assert.Equal(t, tt.want, FormatTimeWithDate(ts))
		})
	}
}

func TestTimestampParser_Unix(t *testing.T) {
	p := NewTimestampParser()

	ts := p.Parse("1705315845 event")
	require.NotNil(t, ts)
	assert.Equal(t, int64(1705315845), ts.Unix())

	ts = p.Parse("1705315845123 event")
	require.NotNil(t, ts)
	assert.Equal(t, int64(1705315845123), ts.UnixMilli())
}

func TestTimestampParser_NoMatch(t *testing.T) {
	assert.Nil(t, NewTimestampParser().Parse("no time here"))
	assert.Equal(t, "", FormatTimeWithDate(nil))
}
