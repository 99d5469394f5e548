package python

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFind_PreferredMissing verifies that naming a preferred interpreter
// that does not exist is an error, not a silent fallback to the system
// default. A misconfigured genup.yaml must surface immediately.
func TestFind_PreferredMissing(t *testing.T) {
	interp, err := Find("definitely-not-a-python-interpreter")
	require.Error(t, err)
	assert.Nil(t, interp)
	assert.Contains(t, err.Error(), "definitely-not-a-python-interpreter")
}

// TestInterpreter_Run_MissingBinary verifies the exec wrapper surfaces
// a failure for a binary that cannot be started at all.
func TestInterpreter_Run_MissingBinary(t *testing.T) {
	interp := &Interpreter{Path: "definitely-not-a-python-interpreter"}

	out, err := interp.Run("--version")
	require.Error(t, err)
	assert.Empty(t, out)
}

// TestInterpreter_ImportCheck_Failure verifies the import probe
// surfaces a failure naming the modules it tried to import. An
// interpreter that cannot start exercises the same error path as a
// missing package.
func TestInterpreter_ImportCheck_Failure(t *testing.T) {
	interp := &Interpreter{Path: "definitely-not-a-python-interpreter"}

	err := interp.ImportCheck("firebase_admin", "faker", "openai", "dotenv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firebase_admin, faker, openai, dotenv")
}

// TestRunCommand_ErrorIncludesCommand verifies that the error message
// names the command that failed, so bootstrap diagnostics identify
// which external tool broke.
func TestRunCommand_ErrorIncludesCommand(t *testing.T) {
	_, err := runCommand("definitely-not-a-python-interpreter", "-m", "venv", "venv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-python-interpreter -m venv venv failed")
}
