package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\r\nthird\n"), 0644))

	lines, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{Index: 0, Text: "first"},
		{Index: 1, Text: "second"},
		{Index: 2, Text: "third"},
	}, lines)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc"), 0644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, path, f.Path())
	assert.Equal(t, 3, f.LineCount())
}

func TestReadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.log")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	lines, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadFile_Unreadable(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: filepath.Join(dir, "missing.log")},
		{name: "directory", path: dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFileUnreadable))
		})
	}
}

func TestSliceProvider(t *testing.T) {
	p := NewSliceProvider([]Line{
		{Index: 2, Text: "c"},
		{Index: 5, Text: "f"},
		{Index: 9, Text: "j"},
	})

	assert.Equal(t, 3, p.LineCount())

	line, err := p.GetLine(1)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Index)

	line, err = p.GetLine(3)
	require.NoError(t, err)
	assert.Nil(t, line)

	lines, err := p.GetLines(1, 10)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "j", lines[1].Text)

	pos, ok := p.PositionOf(6)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	_, ok = p.PositionOf(10)
	assert.False(t, ok)
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LevelUnknown.String())
}
