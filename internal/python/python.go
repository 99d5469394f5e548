package python

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// candidates are the interpreter names probed on the search path, in
// preference order. "py" is the Windows launcher.
var candidates = []string{"python3", "python", "py"}

// Interpreter is a resolved Python executable.
type Interpreter struct {
	// Path is the command name or absolute path used to invoke the
	// interpreter. For interpreters found on PATH this is the resolved
	// absolute path from exec.LookPath; for venv interpreters it is the
	// path inside the environment directory.
	Path string

	// Version is the interpreter's self-reported version string,
	// e.g. "Python 3.12.1".
	Version string
}

// Find locates a usable Python interpreter.
//
// If preferred is non-empty (from a flag or genup.yaml), only that
// command is tried — a missing preferred interpreter is an error rather
// than a silent fallback, so a misconfiguration never hides behind the
// system default. Otherwise the well-known candidate names are probed
// in order and the first one that both resolves on PATH and answers
// --version wins.
func Find(preferred string) (*Interpreter, error) {
	if preferred != "" {
		return resolve(preferred)
	}

	for _, name := range candidates {
		interp, err := resolve(name)
		if err == nil {
			return interp, nil
		}
	}

	return nil, fmt.Errorf(
		"no Python interpreter found on PATH (tried: %s)",
		strings.Join(candidates, ", "),
	)
}

// resolve looks up a single command name and verifies it runs.
func resolve(name string) (*Interpreter, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("interpreter %q not found on PATH: %w", name, err)
	}

	// --version is the cheapest full round trip through the binary.
	// A binary that exists but cannot execute (wrong arch, broken
	// shebang shim) fails here instead of later at venv creation.
	out, err := runCommand(path, "--version")
	if err != nil {
		return nil, fmt.Errorf("interpreter %q is not runnable: %w", name, err)
	}

	return &Interpreter{Path: path, Version: strings.TrimSpace(out)}, nil
}

// Run invokes the interpreter with the given arguments, waits for it to
// exit, and returns its stdout. On failure the returned error includes
// the child's stderr output.
func (i *Interpreter) Run(args ...string) (string, error) {
	return runCommand(i.Path, args...)
}

// ImportCheck verifies the named modules are importable by this
// interpreter, via `<python> -c "import a, b, c"`. This is how the
// bootstrapper tells a venv that merely exists apart from one whose
// dependency manifest has actually been installed: pip running proves
// nothing about what it has installed.
func (i *Interpreter) ImportCheck(modules ...string) error {
	stmt := "import " + strings.Join(modules, ", ")
	if _, err := i.Run("-c", stmt); err != nil {
		return fmt.Errorf("importing %s: %w", strings.Join(modules, ", "), err)
	}
	return nil
}

// RunAttached invokes the interpreter with the given arguments in dir,
// wiring the child directly to this process's stdin/stdout/stderr.
// This is used for launching the generator itself, whose output belongs
// to the user, not to us.
func (i *Interpreter) RunAttached(dir string, args ...string) error {
	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command(i.Path, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// runCommand executes a command with the given arguments and captures
// stdout and stderr separately. On success it returns stdout. On
// failure it returns an error that includes the trimmed stderr output,
// because Python tooling (venv, pip) writes its diagnostics there.
func runCommand(name string, args ...string) (string, error) {
	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command(name, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("%s %s failed", name, strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", fmt.Errorf("%s: %w", message, err)
	}

	// Some interpreters (notably Python 2) print --version to stderr.
	// When stdout is empty, fall back to stderr so callers still get
	// the version banner.
	if strings.TrimSpace(stdout.String()) == "" {
		return stderr.String(), nil
	}

	return stdout.String(), nil
}
