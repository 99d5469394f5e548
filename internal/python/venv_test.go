package python

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeVenvMarker creates the pyvenv.cfg file that the venv module
// writes into every environment it creates. Tests use it to simulate
// an existing environment without needing a real Python install.
func writeVenvMarker(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	cfg := filepath.Join(dir, "pyvenv.cfg")
	require.NoError(t, os.WriteFile(cfg, []byte("home = /usr/bin\n"), 0o644))
}

// TestVenv_Exists_FreshDir verifies that a nonexistent directory does
// not count as an environment.
func TestVenv_Exists_FreshDir(t *testing.T) {
	v := NewVenv(filepath.Join(t.TempDir(), "venv"))
	assert.False(t, v.Exists())
}

// TestVenv_Exists_BareDirectory verifies that a directory without
// pyvenv.cfg is not mistaken for an environment. The marker file, not
// the directory name, is what identifies a venv.
func TestVenv_Exists_BareDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	v := NewVenv(dir)
	assert.False(t, v.Exists())
}

// TestVenv_Exists_WithMarker verifies detection of a real environment.
func TestVenv_Exists_WithMarker(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	writeVenvMarker(t, dir)

	v := NewVenv(dir)
	assert.True(t, v.Exists())
}

// TestVenv_BinDir verifies the per-platform executable directory layout
// that the venv module produces.
func TestVenv_BinDir(t *testing.T) {
	v := NewVenv("venv")

	if runtime.GOOS == "windows" {
		assert.Equal(t, filepath.Join("venv", "Scripts"), v.BinDir())
		assert.Equal(t, filepath.Join("venv", "Scripts", "python.exe"), v.PythonPath())
	} else {
		assert.Equal(t, filepath.Join("venv", "bin"), v.BinDir())
		assert.Equal(t, filepath.Join("venv", "bin", "python"), v.PythonPath())
	}
}

// TestVenv_Remove verifies the environment directory is deleted
// recursively and that removing a nonexistent environment is not an
// error (RemoveAll semantics).
func TestVenv_Remove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	writeVenvMarker(t, dir)

	v := NewVenv(dir)
	require.True(t, v.Exists())

	require.NoError(t, v.Remove())
	assert.False(t, v.Exists())

	// Second removal is a no-op, not a failure.
	assert.NoError(t, v.Remove())
}

// TestVenv_Activate_MissingInterpreter verifies that activating an
// environment whose interpreter is absent fails with a diagnostic
// naming the expected path.
func TestVenv_Activate_MissingInterpreter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	writeVenvMarker(t, dir)

	v := NewVenv(dir)
	interp, err := v.Activate()
	require.Error(t, err)
	assert.Nil(t, interp)
	assert.Contains(t, err.Error(), v.PythonPath())
}

// TestVenv_InstallRequirements_MissingManifest verifies the manifest
// pre-check: a missing requirements.txt fails before pip is invoked,
// with the manifest path in the diagnostic.
func TestVenv_InstallRequirements_MissingManifest(t *testing.T) {
	v := NewVenv(filepath.Join(t.TempDir(), "venv"))
	interp := &Interpreter{Path: "definitely-not-a-python-interpreter"}

	manifest := filepath.Join(t.TempDir(), "requirements.txt")
	err := v.InstallRequirements(interp, manifest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), manifest)
}
