package configfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindFile_SearchOrder verifies the project root is preferred over
// the environment directories when a file exists in more than one place.
func TestFindFile_SearchOrder(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "venv"), 0o755))
	writeFile(t, filepath.Join(root, ".env"), "a=1\n")
	writeFile(t, filepath.Join(root, "venv", ".env"), "a=2\n")

	path, found := FindFile(root, "venv", ".env")
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, ".env"), path)
}

// TestFindFile_VenvFallback verifies the historical locations inside
// venv/ and .venv/ are searched when the project root has no match.
func TestFindFile_VenvFallback(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".venv"), 0o755))
	writeFile(t, filepath.Join(root, ".venv", "firebase-credentials.json"), "{}")

	path, found := FindFile(root, "venv", "firebase-credentials.json")
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, ".venv", "firebase-credentials.json"), path)
}

// TestFindFile_ConfiguredVenvDir verifies a renamed environment
// directory (via genup.yaml) is searched too, alongside the fixed
// fallbacks.
func TestFindFile_ConfiguredVenvDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "env312"), 0o755))
	writeFile(t, filepath.Join(root, "env312", ".env"), "a=1\n")

	path, found := FindFile(root, "env312", ".env")
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "env312", ".env"), path)

	// The fixed fallbacks still apply with a renamed venv configured.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "venv"), 0o755))
	writeFile(t, filepath.Join(root, "venv", "legacy.txt"), "c=3\n")
	legacy, found := FindFile(root, "env312", "legacy.txt")
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "venv", "legacy.txt"), legacy)
}

// TestFindFile_NotFound verifies the miss case.
func TestFindFile_NotFound(t *testing.T) {
	_, found := FindFile(t.TempDir(), "venv", ".env")
	assert.False(t, found)
}

// TestValidateEnv_Configured verifies a fully configured .env passes.
func TestValidateEnv_Configured(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path,
		"aiTonnelKey=sk-real-key\nFIREBASE_DATABASE_URL=https://example.firebaseio.com\n")

	assert.NoError(t, ValidateEnv(path))
}

// TestValidateEnv_PlaceholderValues verifies keys still set to their
// sample placeholders are reported as not configured.
func TestValidateEnv_PlaceholderValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path,
		"aiTonnelKey=your_aitunnel_key_here\nFIREBASE_DATABASE_URL=https://example.firebaseio.com\n")

	err := ValidateEnv(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aiTonnelKey")
	assert.NotContains(t, err.Error(), "FIREBASE_DATABASE_URL")
}

// TestValidateEnv_MissingKeys verifies absent keys are reported.
func TestValidateEnv_MissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "UNRELATED=value\n")

	err := ValidateEnv(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aiTonnelKey")
	assert.Contains(t, err.Error(), "FIREBASE_DATABASE_URL")
}

// TestValidateEnv_EmptyValue verifies an empty value counts as not
// configured even though the key is present.
func TestValidateEnv_EmptyValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path,
		"aiTonnelKey=\nFIREBASE_DATABASE_URL=https://example.firebaseio.com\n")

	err := ValidateEnv(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aiTonnelKey")
}

// TestValidateEnv_FileMissing verifies a missing file is an error, not
// a pass.
func TestValidateEnv_FileMissing(t *testing.T) {
	err := ValidateEnv(filepath.Join(t.TempDir(), ".env"))
	assert.Error(t, err)
}
