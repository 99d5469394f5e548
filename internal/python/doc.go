// Package python drives the Python toolchain (interpreter, venv module,
// pip) via os/exec.
//
// Design decisions:
//   - We shell out to the real interpreter rather than reimplementing
//     any of its behavior, because venv layout and pip resolution are
//     owned by the interpreter and change between Python versions.
//   - Every invocation is synchronous: the child process is awaited to
//     completion before the next step begins. There are no retries and
//     no timeouts — a hung child hangs the bootstrap, by contract.
//   - Errors are plain wrapped errors including the child's stderr.
//     Mapping a failure to its bootstrap step (and exit code) is the
//     CLI layer's job, since the same exec wrapper serves several steps.
package python
