package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/pscan/service"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("dummy"), 0o644))
	return path
}

func TestIsValidDatasetFile(t *testing.T) {
	r := service.NewFileReader()
	require.True(t, r.IsValidDatasetFile("graph.csr"))
	require.True(t, r.IsValidDatasetFile("graph.graph"))
	require.True(t, r.IsValidDatasetFile("dump.pscan"))
	require.False(t, r.IsValidDatasetFile("graph.txt"))
	require.False(t, r.IsValidDatasetFile("graph"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	f := writeDataset(t, dir, "a.csr")

	r := service.NewFileReader()
	exists, err := r.FileExists(f)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = r.FileExists(filepath.Join(dir, "missing.csr"))
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = r.FileExists(dir)
	require.NoError(t, err)
	require.False(t, exists, "a directory is not a file")
}

func TestCollectDatasetFilesFromSinglePath(t *testing.T) {
	dir := t.TempDir()
	f := writeDataset(t, dir, "a.csr")

	r := service.NewFileReader()
	files, err := r.CollectDatasetFiles([]string{f}, false, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []string{f}, files)
}

func TestCollectDatasetFilesRecursesDirectories(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "top.csr")
	writeDataset(t, dir, "nested/deep.csr")
	writeDataset(t, dir, "ignore.txt")

	r := service.NewFileReader()

	nonRecursive, err := r.CollectDatasetFiles([]string{dir}, false, nil, nil)
	require.NoError(t, err)
	require.Len(t, nonRecursive, 1)

	recursive, err := r.CollectDatasetFiles([]string{dir}, true, nil, nil)
	require.NoError(t, err)
	require.Len(t, recursive, 2)
}

func TestCollectDatasetFilesSkipsDotDirectories(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "keep.csr")
	writeDataset(t, dir, ".git/skip.csr")

	r := service.NewFileReader()
	files, err := r.CollectDatasetFiles([]string{dir}, true, nil, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestCollectDatasetFilesGlobstarInclude(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "a/b/c.csr")
	writeDataset(t, dir, "a/d.graph")

	r := service.NewFileReader()
	files, err := r.CollectDatasetFiles([]string{dir}, true, []string{"**/*.csr"}, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Contains(t, files[0], "c.csr")
}

func TestCollectDatasetFilesExcludePattern(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "keep.csr")
	writeDataset(t, dir, "skip.csr")

	r := service.NewFileReader()
	files, err := r.CollectDatasetFiles([]string{dir}, true, nil, []string{"skip.csr"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Contains(t, files[0], "keep.csr")
}

func TestCollectDatasetFilesRejectsEmptyPattern(t *testing.T) {
	dir := t.TempDir()
	r := service.NewFileReader()
	_, err := r.CollectDatasetFiles([]string{dir}, true, []string{""}, nil)
	require.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	r := service.NewFileReader()
	_, err := r.ReadFile("/nonexistent/path/graph.csr")
	require.Error(t, err)
}

func TestValidatePathsMissing(t *testing.T) {
	r := service.NewFileReader()
	err := r.ValidatePaths([]string{"/nonexistent/path"})
	require.Error(t, err)
}
