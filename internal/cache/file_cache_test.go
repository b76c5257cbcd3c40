package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileCacheRoundTrip(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	fc := NewFileCache[[]string]("invalid_dates")
	key := fc.GenerateKey("talhao-norte", "2023-01-01")

	_, ok := fc.Get(key)
	require.False(t, ok)

	require.NoError(t, fc.Set(key, []string{"2023-01-06", "2023-01-16"}))

	got, ok := fc.Get(key)
	require.True(t, ok)
	require.Equal(t, []string{"2023-01-06", "2023-01-16"}, got)
}

func TestFileCacheKeyIsStable(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	fc := NewFileCache[int]("stats")
	require.Equal(t, fc.GenerateKey("a", 1, true), fc.GenerateKey("a", 1, true))
	require.NotEqual(t, fc.GenerateKey("a", 1, true), fc.GenerateKey("a", 2, true))
}

func TestFileCacheChecksumMismatchIsAMiss(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ROOT_PATH", root)

	fc := NewFileCache[[]string]("invalid_dates")
	key := fc.GenerateKey("corrupted")
	require.NoError(t, fc.Set(key, []string{"2023-02-01"}))

	cacheFile := filepath.Join(root, "data", "cache", "invalid_dates", key+".json")
	raw, err := os.ReadFile(cacheFile)
	require.NoError(t, err)
	tampered := strings.Replace(string(raw), "2023-02-01", "2024-09-09", 1)
	require.NoError(t, os.WriteFile(cacheFile, []byte(tampered), 0644))

	_, ok := fc.Get(key)
	require.False(t, ok)
}
