package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSReadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	s := NewOS()

	require.NoError(t, s.Write(path, []byte("hello\n")))
	data, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestOSReadMissing(t *testing.T) {
	_, err := NewOS().Read(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOSReadDirectoryIsNotNotFound(t *testing.T) {
	_, err := NewOS().Read(t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestOSWriteKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	require.NoError(t, NewOS().Write(path, []byte("#!/bin/sh\necho hi\n")))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestOSWriteIntoMissingDirectory(t *testing.T) {
	err := NewOS().Write(filepath.Join(t.TempDir(), "nope", "a.txt"), []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write ")
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	_, err := m.Read("a")
	assert.ErrorIs(t, err, ErrNotFound)

	data := []byte("abc")
	require.NoError(t, m.Write("a", data))
	data[0] = 'X'
	got, err := m.Read("a")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	m.FailWrites = errors.New("disk full")
	assert.EqualError(t, m.Write("a", []byte("z")), "write a: disk full")
}

func TestMemoryZeroValue(t *testing.T) {
	var m Memory
	_, err := m.Read("a")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Write("a", []byte("abc")))
	got, err := m.Read("a")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
