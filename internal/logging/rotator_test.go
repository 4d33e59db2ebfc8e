package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backupsIn(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), defaultLogFileName+".") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestRotatingFile_AppendsWithoutRotation(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotatingFile(FileConfig{Dir: dir})
	require.NoError(t, err)

	_, err = r.Write([]byte("one\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("two\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(filepath.Join(dir, defaultLogFileName))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
	assert.Empty(t, backupsIn(t, dir))
}

func TestRotatingFile_RotatesBySize(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotatingFile(FileConfig{Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	assert.Len(t, backupsIn(t, dir), 1)
	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestRotatingFile_CompressesAndPrunesBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotatingFile(FileConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 1, Compress: true})
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	chunk := bytes.Repeat([]byte("y"), 700*1024)
	for i := 0; i < 3; i++ {
		_, err = r.Write(chunk)
		require.NoError(t, err)
	}

	backups := backupsIn(t, dir)
	require.Len(t, backups, 1)
	assert.True(t, strings.HasSuffix(backups[0], ".gz"))
}

func TestRotatingFile_RequiresDir(t *testing.T) {
	_, err := NewRotatingFile(FileConfig{})
	require.Error(t, err)
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "console"},
		FileConfig{Dir: dir},
		false,
	)
	require.NoError(t, err)

	logger.Info().Str("bang", "w").Msg("resolved")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, defaultLogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bang":"w"`)
	assert.Contains(t, string(data), `"message":"resolved"`)
}
