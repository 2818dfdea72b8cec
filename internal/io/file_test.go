package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, path, f.Name())
	assert.Equal(t, int64(12), f.Len())

	b, err := f.Slice(6, 100)
	require.NoError(t, err)
	assert.Equal(t, "world\n", string(b))

	b, err = f.Slice(5, 5)
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(dir)
	assert.ErrorIs(t, err, ErrIsDirectory)

	_, err = Open(filepath.Join(dir, "missing.log"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
