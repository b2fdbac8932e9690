package ioutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.wav"))
	touch(t, filepath.Join(dir, "a.wav"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "upper.WAV"))
	touch(t, filepath.Join(dir, "wav"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.wav"), 0755))
	touch(t, filepath.Join(dir, "nested.wav", "inner.wav"))

	got, err := ListFiles(dir, ".wav")
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.wav"),
		filepath.Join(dir, "b.wav"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListFiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestListFiles_EmptyDirectory(t *testing.T) {
	got, err := ListFiles(t.TempDir(), ".wav")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListFiles_EmptyExtensionMatchesAll(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.wav"))
	touch(t, filepath.Join(dir, "b.txt"))

	got, err := ListFiles(dir, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListFiles_MissingDirectory(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "does-not-exist"), ".wav")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

func TestEnsureDir_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.wav")
	touch(t, path)

	err := EnsureDir(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
	assert.Contains(t, err.Error(), "is not a directory")
}
