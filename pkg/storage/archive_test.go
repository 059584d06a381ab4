package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveSaveAndList(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	path, err := archive.Save("run-1", "schedule.csv", []byte("Date,Role\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Role\n", string(data))

	_, err = archive.Save("run-1", "schedule.pdf", []byte("%PDF"))
	require.NoError(t, err)

	names, err := archive.List("run-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"schedule.csv", "schedule.pdf"}, names)
}

func TestArchiveListUnknownRun(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	names, err := archive.List("nope")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestArchiveRejectsTraversal(t *testing.T) {
	base := t.TempDir()
	archive, err := NewArchive(base)
	require.NoError(t, err)

	_, err = archive.Save("..", "escape.csv", []byte("x"))
	require.Error(t, err)

	_, err = archive.Save("run-1", "../../escape.csv", []byte("x"))
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(filepath.Dir(base), "escape.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestArchiveRequiresRunID(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	_, err = archive.Save("", "schedule.csv", []byte("x"))
	require.Error(t, err)
}
