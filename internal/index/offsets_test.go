package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	logio "github.com/TimelordUK/logcli/internal/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, content string) *Offsets {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	file, err := logio.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	o, err := Scan(file)
	require.NoError(t, err)
	return o
}

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty file", content: "", want: nil},
		{name: "single line no newline", content: "only", want: []string{"only"}},
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", content: "a\nb", want: []string{"a", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", content: "a\n\nc\n", want: []string{"a", "", "c"}},
		{name: "lone newline", content: "\n", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := scan(t, tt.content)
			assert.Equal(t, len(tt.want), o.Count())

			all, err := o.All()
			require.NoError(t, err)

			var got []string
			for _, line := range all {
				got = append(got, string(line))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOffsets_Line(t *testing.T) {
	o := scan(t, "a\nbb\nccc\n")

	line, err := o.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "bb", string(line))

	for _, n := range []int{-1, 3, 10} {
		line, err := o.Line(n)
		require.NoError(t, err)
		assert.Nil(t, line, "line %d", n)
	}
}

func TestOffsets_Range(t *testing.T) {
	o := scan(t, "a\nb\nc\nd\n")

	lines, err := o.Range(2, 10)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "c", string(lines[0]))
	assert.Equal(t, "d", string(lines[1]))

	lines, err = o.Range(1, 0)
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestOffsets_Start(t *testing.T) {
	o := scan(t, "ab\ncd\n")

	assert.Equal(t, int64(0), o.Start(0))
	assert.Equal(t, int64(3), o.Start(1))
	assert.Equal(t, int64(-1), o.Start(2))
}

func TestScan_SpansChunks(t *testing.T) {
	line := strings.Repeat("x", chunkSize-1)
	o := scan(t, line+"\n"+line+"\nlast")
	require.Equal(t, 3, o.Count())

	last, err := o.Line(2)
	require.NoError(t, err)
	assert.Equal(t, "last", string(last))

	first, err := o.Line(0)
	require.NoError(t, err)
	assert.Len(t, first, chunkSize-1)
}
