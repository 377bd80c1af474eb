package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOutputFileName(t *testing.T) {
	now := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		format string
		runID  string
		want   string
	}{
		{"plain", "dashboard_estatico.html", "id", "dashboard_estatico.html"},
		{"date", "dashboard_{date}.html", "id", "dashboard_20250102.html"},
		{"timestamp", "out/{timestamp}.html", "id", "out/20250102_150405.html"},
		{"time", "{time}.html", "", "150405.html"},
		{"uuid", "dash-{uuid}.html", "run-1", "dash-run-1.html"},
		{"unknown placeholder", "{other}.html", "id", "{other}.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateOutputFileName(tt.format, tt.runID, now))
		})
	}
}

func TestGenerateOutputFileName_GeneratesUUID(t *testing.T) {
	name := GenerateOutputFileName("{uuid}", "", time.Now())

	_, err := uuid.Parse(name)
	assert.NoError(t, err)
}

func TestWriteOutputFile_CreatesParentAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "page.html")

	assert.False(t, FileExists(path))
	require.NoError(t, WriteOutputFile(path, []byte("first version")))
	assert.True(t, FileExists(path))

	size, err := GetFileSize(path)
	require.NoError(t, err)
	assert.EqualValues(t, 13, size)

	require.NoError(t, WriteOutputFile(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	size, err = GetFileSize(path)
	require.NoError(t, err)
	assert.EqualValues(t, 6, size)
}

func TestWriteOutputFile_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	assert.Error(t, WriteOutputFile(filepath.Join(blocker, "page.html"), []byte("x")))
}

func TestFileExists_Missing(t *testing.T) {
	assert.False(t, FileExists(filepath.Join(t.TempDir(), "nope")))
}

func TestGetFileSize_Missing(t *testing.T) {
	_, err := GetFileSize(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
