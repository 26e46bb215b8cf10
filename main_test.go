package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntilNextRun(t *testing.T) {
	before := time.Date(2026, 8, 28, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, 30*time.Minute, untilNextRun(before, 2))

	// Exactly on the hour waits a full day
	onTheHour := time.Date(2026, 8, 28, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, 24*time.Hour, untilNextRun(onTheHour, 2))

	evening := time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 3*time.Hour, untilNextRun(evening, 2))
}

func TestArchiveUploads(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "uploads")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "products"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "products", "mug.png"), []byte("png"), 0644))

	dest := filepath.Join(root, "backup", "2026-08-28")
	require.NoError(t, archiveUploads(src, dest))

	data, err := os.ReadFile(filepath.Join(dest, "products", "mug.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	// A source that does not exist yet is not an error
	require.NoError(t, archiveUploads(filepath.Join(root, "missing"), dest))
}

func TestPruneArchives(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2026-08-20", "2026-08-21", "2026-08-22"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0755))
	}

	pruneArchives(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.Equal(t, []string{"2026-08-21", "2026-08-22"}, names)
}
