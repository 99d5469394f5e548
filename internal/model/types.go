// Package model defines the domain types for the genup CLI.
//
// The bootstrap procedure is a fixed, ordered sequence of steps. Each
// step either succeeds and hands off to the next, or fails and aborts
// the whole run. These types name the steps, their failure kinds, the
// outcomes of configuration-file materialization, and the error type
// that carries an exit code up to the CLI layer.
package model

import (
	"fmt"
)

// Step identifies one stage of the bootstrap sequence. The sequence is
// strictly ordered:
//
//	ProbeInterpreter → CreateEnv → ActivateEnv → InstallDeps →
//	MaterializeConfig → (success banner)
//
// Any step may transition to the terminal Aborted state by returning
// an error; there are no retries and no recovery paths.
type Step string

const (
	// StepProbeInterpreter verifies a Python executable is reachable
	// on the search path.
	StepProbeInterpreter Step = "probe-interpreter"

	// StepCreateEnv creates the isolated virtual environment directory.
	StepCreateEnv Step = "create-env"

	// StepActivateEnv resolves the virtual environment's own interpreter
	// and verifies it can execute pip. This is the process-level
	// equivalent of sourcing the activation script: every subsequent
	// step uses the isolated interpreter, not the system one.
	StepActivateEnv Step = "activate-env"

	// StepInstallDeps installs the dependency manifest into the
	// virtual environment.
	StepInstallDeps Step = "install-deps"

	// StepMaterializeConfig copies sample configuration files to their
	// live names when absent. Copy failures abort the run just like
	// the process-invocation steps.
	StepMaterializeConfig Step = "materialize-config"
)

// String returns the string representation of Step.
func (s Step) String() string {
	return string(s)
}

// IsValid checks whether the Step value is one of the defined steps.
func (s Step) IsValid() bool {
	switch s {
	case StepProbeInterpreter, StepCreateEnv, StepActivateEnv,
		StepInstallDeps, StepMaterializeConfig:
		return true
	default:
		return false
	}
}

// FailureKind returns the diagnostic name for a failure of this step.
// These names form the error taxonomy surfaced to the user: every
// checked failure maps to exactly one kind.
func (s Step) FailureKind() string {
	switch s {
	case StepProbeInterpreter:
		return "InterpreterMissing"
	case StepCreateEnv:
		return "EnvironmentCreationFailed"
	case StepActivateEnv:
		return "ActivationFailed"
	case StepInstallDeps:
		return "DependencyInstallFailed"
	case StepMaterializeConfig:
		return "ConfigMaterializationFailed"
	default:
		return "UnknownFailure"
	}
}

// FileAction describes what the materialization of a single
// configuration file did. The copy steps are idempotent: a file that
// already exists is never touched again.
type FileAction string

const (
	// ActionCopied means the live file was absent and has been created
	// from its sample. The user still has to edit it.
	ActionCopied FileAction = "copied"

	// ActionKept means the live file already existed and was left
	// byte-for-byte untouched.
	ActionKept FileAction = "kept"

	// ActionSkipped means neither the live file nor its sample exists,
	// so there was nothing to copy. Only optional files (the Firebase
	// credentials) may end up in this state.
	ActionSkipped FileAction = "skipped"
)

// String returns the string representation of FileAction.
func (a FileAction) String() string {
	return string(a)
}

// ExitCode defines the CLI exit codes. The bootstrap contract is
// deliberately narrow: 0 for full success, 1 for any checked failure.
// The failure taxonomy lives in Step.FailureKind, not in the exit code,
// so scripts only need to test for zero/non-zero.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitFailure indicates any checked failure, including all four
	// process-invocation failure kinds and checked copy failures.
	ExitFailure ExitCode = 1
)

// CLIError is a custom error type that carries an exit code and,
// for bootstrap failures, the step that failed. This allows the CLI
// layer to translate domain errors into process exit codes and to
// prefix diagnostics with the failure kind.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Step is the bootstrap step that failed. Empty for errors that
	// are not tied to a specific step (e.g. flag validation).
	Step Step

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. Step failures are prefixed with
// their failure kind so the diagnostic names which contract was broken.
func (e *CLIError) Error() string {
	msg := e.Message
	if e.Step != "" {
		msg = fmt.Sprintf("%s: %s", e.Step.FailureKind(), e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// WrapStepError creates a CLIError for a failed bootstrap step.
// All step failures exit with status 1.
func WrapStepError(step Step, message string, err error) *CLIError {
	return &CLIError{Code: ExitFailure, Step: step, Message: message, Err: err}
}

// Probe is the outcome of a single verification performed by the check
// command (interpreter reachable, venv usable, .env configured, and so
// on). A report is just an ordered list of probes.
type Probe struct {
	// Name identifies what was verified (e.g. "interpreter", "env-file").
	Name string `json:"name"`

	// OK reports whether the verification passed.
	OK bool `json:"ok"`

	// Detail is a human-readable elaboration: the resolved path and
	// version on success, the reason on failure.
	Detail string `json:"detail,omitempty"`
}

// FailedProbes returns how many probes in the report did not pass.
func FailedProbes(probes []Probe) int {
	failed := 0
	for _, p := range probes {
		if !p.OK {
			failed++
		}
	}
	return failed
}
