package configfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okabe-dev/genup/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile is a small fixture helper for creating a file with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestMaterialize_CopiesWhenAbsent verifies the first-run behavior:
// the live file is created byte-identical to its sample.
func TestMaterialize_CopiesWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, ".env.sample")
	target := filepath.Join(dir, ".env")
	writeFile(t, sample, "aiTonnelKey=your_aitunnel_key_here\n")

	action, err := Materialize(sample, target, true)
	require.NoError(t, err)
	assert.Equal(t, model.ActionCopied, action)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	want, err := os.ReadFile(sample)
	require.NoError(t, err)
	assert.Equal(t, want, got, "live file must be byte-identical to the sample")
}

// TestMaterialize_NeverOverwrites verifies the idempotence contract:
// an existing live file is left byte-for-byte untouched, even when the
// sample differs.
func TestMaterialize_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, ".env.sample")
	target := filepath.Join(dir, ".env")
	writeFile(t, sample, "aiTonnelKey=placeholder\n")
	writeFile(t, target, "aiTonnelKey=real-secret-value\n")

	action, err := Materialize(sample, target, true)
	require.NoError(t, err)
	assert.Equal(t, model.ActionKept, action)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "aiTonnelKey=real-secret-value\n", string(got))
}

// TestMaterialize_RequiredSampleMissing verifies that a required file
// whose sample is absent aborts with an error naming the sample.
func TestMaterialize_RequiredSampleMissing(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, ".env.sample")
	target := filepath.Join(dir, ".env")

	_, err := Materialize(sample, target, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), sample)

	// The failed materialization must not have created the target.
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

// TestMaterialize_OptionalSampleMissing verifies the credentials case:
// no sample and no target means nothing is created and nothing fails.
func TestMaterialize_OptionalSampleMissing(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "firebase-credentials.json.sample")
	target := filepath.Join(dir, "firebase-credentials.json")

	action, err := Materialize(sample, target, false)
	require.NoError(t, err)
	assert.Equal(t, model.ActionSkipped, action)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "target must not exist after a skip")
}

// TestMaterialize_OptionalCopies verifies the credentials sample is
// copied when present and the target is absent.
func TestMaterialize_OptionalCopies(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "firebase-credentials.json.sample")
	target := filepath.Join(dir, "firebase-credentials.json")
	writeFile(t, sample, `{"type": "service_account"}`)

	action, err := Materialize(sample, target, false)
	require.NoError(t, err)
	assert.Equal(t, model.ActionCopied, action)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, `{"type": "service_account"}`, string(got))
}

// TestMaterialize_SecondRunKeeps verifies running the copy twice leaves
// the same final state as running it once.
func TestMaterialize_SecondRunKeeps(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, ".env.sample")
	target := filepath.Join(dir, ".env")
	writeFile(t, sample, "FIREBASE_DATABASE_URL=your_firebase_database_url_here\n")

	first, err := Materialize(sample, target, true)
	require.NoError(t, err)
	assert.Equal(t, model.ActionCopied, first)

	second, err := Materialize(sample, target, true)
	require.NoError(t, err)
	assert.Equal(t, model.ActionKept, second)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "FIREBASE_DATABASE_URL=your_firebase_database_url_here\n", string(got))
}
