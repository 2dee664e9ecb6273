package pyext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestCollectArtifactsFindsNativeModules(t *testing.T) {
	workspace := t.TempDir()

	writeFile(t, filepath.Join(workspace, "pybundle.cpython-312-x86_64-linux-gnu.so"), "elf")
	writeFile(t, filepath.Join(workspace, "geo", "pygeo.so"), "elf")
	writeFile(t, filepath.Join(workspace, "Release", "pyfeatures.pyd"), "pe")
	writeFile(t, filepath.Join(workspace, "CMakeFiles", "probe.so"), "scratch")
	writeFile(t, filepath.Join(workspace, "Makefile"), "all:")
	writeFile(t, filepath.Join(workspace, "libfoundation.a"), "ar")

	artifacts, err := CollectArtifacts(workspace)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Release/pyfeatures.pyd",
		"geo/pygeo.so",
		"pybundle.cpython-312-x86_64-linux-gnu.so",
	}, artifacts)
}

func TestCollectArtifactsMissingWorkspace(t *testing.T) {
	artifacts, err := CollectArtifacts(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestInstallArtifactsCopiesIntoDestination(t *testing.T) {
	workspace := t.TempDir()
	dest := filepath.Join(t.TempDir(), "site-packages", "opensfm")

	writeFile(t, filepath.Join(workspace, "pymap.so"), "binary")
	writeFile(t, filepath.Join(workspace, "sub", "pysfm.so"), "binary")

	installed, err := InstallArtifacts(workspace, []string{"pymap.so", "sub/pysfm.so", "pymap.so", "gone.so"}, dest)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dest, "pymap.so"),
		filepath.Join(dest, "sub", "pysfm.so"),
	}, installed)

	data, err := os.ReadFile(filepath.Join(dest, "sub", "pysfm.so"))
	require.NoError(t, err)
	assert.Equal(t, "binary", string(data))
}

func TestSafeRelativePath(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b.so"), safeRelativePath(filepath.Join("a", "b.so")))
	assert.Equal(t, "b.so", safeRelativePath(filepath.Join("..", "b.so")))
	assert.Equal(t, "b.so", safeRelativePath(filepath.Join("..", "..", "x", "b.so")))
}
