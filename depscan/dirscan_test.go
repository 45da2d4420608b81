package depscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
}

func TestScanDirectories_CollectsSourcesAndHeaders(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "main.c", "util.h", "legacy.C", "README.md")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	table := NewPathTable()
	files, err := ScanDirectories([]string{dir}, table)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "legacy.C"),
		filepath.Join(dir, "main.c"),
		filepath.Join(dir, "util.h"),
	}, files)
}

func TestScanDirectories_RegistersHeadersUnderBothNames(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "util.h")

	table := NewPathTable()
	_, err := ScanDirectories([]string{dir}, table)
	require.NoError(t, err)

	canonical := filepath.Join(dir, "util.h")

	byBareName, err := table.Resolve("util.h")
	require.NoError(t, err)
	assert.Equal(t, canonical, byBareName)

	byFullPath, err := table.Resolve(canonical)
	require.NoError(t, err)
	assert.Equal(t, canonical, byFullPath)
}

func TestScanDirectories_MissingDirectory(t *testing.T) {
	table := NewPathTable()
	_, err := ScanDirectories([]string{filepath.Join(t.TempDir(), "nope")}, table)
	assert.Error(t, err)
}

func TestIsSourceFile(t *testing.T) {
	assert.True(t, IsSourceFile("main.c"))
	assert.True(t, IsSourceFile("main.C"))
	assert.False(t, IsSourceFile("main.h"))
	assert.False(t, IsSourceFile("main.cc"))
	assert.False(t, IsSourceFile(".c"))
	assert.False(t, IsSourceFile("c"))
}

func TestIsHeaderFile(t *testing.T) {
	assert.True(t, IsHeaderFile("util.h"))
	assert.False(t, IsHeaderFile("util.H"))
	assert.False(t, IsHeaderFile("util.c"))
	assert.False(t, IsHeaderFile(".h"))
}
