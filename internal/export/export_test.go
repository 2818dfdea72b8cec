package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TimelordUK/logcli/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	e, err := NewExporter(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, e.Dir())

	info, err := e.Write("/var/log/app.log", []source.Line{
		{Index: 3, Text: "third"},
		{Index: 8, Text: "eighth"},
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "app.log.selected"), info.OutputPath)
	assert.Equal(t, 2, info.Lines)
	assert.Equal(t, 3, info.FirstLine)
	assert.Equal(t, 8, info.LastLine)

	data, err := os.ReadFile(info.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "third\neighth\n", string(data))

	// The exported file reads back with fresh indices
	lines, err := source.ReadFile(info.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, []source.Line{{Index: 0, Text: "third"}, {Index: 1, Text: "eighth"}}, lines)
}

func TestExporter_WriteEmpty(t *testing.T) {
	e, err := NewExporter(t.TempDir())
	require.NoError(t, err)

	info, err := e.Write("empty.log", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, info.Lines)
	assert.Equal(t, -1, info.FirstLine)

	data, err := os.ReadFile(info.OutputPath)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewExporter_DirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := NewExporter(file)
	assert.Error(t, err)
}

func TestExporter_SameBaseName(t *testing.T) {
	dir := t.TempDir()
	e, err := NewExporter(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "app.log.selected"), e.PathFor("/a/app.log"))

	first, err := e.Write("/a/app.log", []source.Line{{Index: 0, Text: "a"}})
	require.NoError(t, err)
	second, err := e.Write("/b/app.log", []source.Line{{Index: 0, Text: "b"}})
	require.NoError(t, err)
	third, err := e.Write("/c/app.log", nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "app.log.selected"), first.OutputPath)
	assert.Equal(t, filepath.Join(dir, "app.log.2.selected"), second.OutputPath)
	assert.Equal(t, filepath.Join(dir, "app.log.3.selected"), third.OutputPath)

	data, err := os.ReadFile(first.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(data))
}
