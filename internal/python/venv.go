package python

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Venv represents a Python virtual environment rooted at a directory.
// The zero value is not usable; construct with NewVenv.
type Venv struct {
	// Dir is the path to the environment directory, relative to the
	// invocation directory or absolute.
	Dir string
}

// NewVenv creates a Venv handle for the given directory. No filesystem
// access happens until one of the methods is called.
func NewVenv(dir string) *Venv {
	return &Venv{Dir: dir}
}

// Exists reports whether a virtual environment is already present.
//
// We check for pyvenv.cfg rather than the bare directory: the venv
// module writes that file unconditionally, so its presence distinguishes
// a real environment from an unrelated directory that happens to share
// the name.
func (v *Venv) Exists() bool {
	info, err := os.Stat(filepath.Join(v.Dir, "pyvenv.cfg"))
	return err == nil && !info.IsDir()
}

// Create builds the virtual environment using the given base
// interpreter, via `<python> -m venv <dir>`. The venv module is
// idempotent when pointed at an existing environment, but callers
// decide explicitly whether to skip or recreate — Create never makes
// that choice implicitly.
func (v *Venv) Create(base *Interpreter) error {
	if _, err := base.Run("-m", "venv", v.Dir); err != nil {
		return fmt.Errorf("creating virtual environment at %s: %w", v.Dir, err)
	}
	return nil
}

// Remove deletes the environment directory and everything under it.
func (v *Venv) Remove() error {
	if err := os.RemoveAll(v.Dir); err != nil {
		return fmt.Errorf("removing virtual environment at %s: %w", v.Dir, err)
	}
	return nil
}

// BinDir returns the directory inside the environment that holds the
// isolated executables. The venv module uses "Scripts" on Windows and
// "bin" everywhere else.
func (v *Venv) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.Dir, "Scripts")
	}
	return filepath.Join(v.Dir, "bin")
}

// PythonPath returns the path of the environment's own interpreter.
func (v *Venv) PythonPath() string {
	name := "python"
	if runtime.GOOS == "windows" {
		name = "python.exe"
	}
	return filepath.Join(v.BinDir(), name)
}

// Activate resolves the environment's interpreter and verifies it can
// execute pip.
//
// A Go process cannot source an activation script into itself, so the
// contract that activation provides — subsequent commands resolve the
// isolated interpreter and package tool — is implemented by returning
// the venv's own interpreter and probing it with `-m pip --version`.
// Everything downstream of a successful Activate runs isolated.
func (v *Venv) Activate() (*Interpreter, error) {
	path := v.PythonPath()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("virtual environment interpreter not found at %s: %w", path, err)
	}

	interp := &Interpreter{Path: path}
	out, err := interp.Run("-m", "pip", "--version")
	if err != nil {
		return nil, fmt.Errorf("virtual environment at %s is not usable: %w", v.Dir, err)
	}

	// Record the pip banner as the version detail; it names both the
	// pip version and the interpreter it belongs to, which is the most
	// useful single line for diagnostics.
	interp.Version = strings.TrimSpace(out)

	return interp, nil
}

// InstallRequirements installs the dependency manifest into the
// environment using the environment's interpreter:
// `<venv python> -m pip install -r <manifest>`.
//
// The manifest is required to pre-exist; checking it here produces a
// clearer diagnostic than pip's own "Could not open requirements file".
func (v *Venv) InstallRequirements(venvInterp *Interpreter, manifest string) error {
	if _, err := os.Stat(manifest); err != nil {
		return fmt.Errorf("dependency manifest %s not found: %w", manifest, err)
	}

	if _, err := venvInterp.Run("-m", "pip", "install", "-r", manifest); err != nil {
		return fmt.Errorf("installing dependencies from %s: %w", manifest, err)
	}
	return nil
}
