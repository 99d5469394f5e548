// Package configfile materializes and validates the data-generator's
// configuration files.
//
// Two files are managed: .env (always required once set up) and
// firebase-credentials.json (optional until Firebase is used). Both
// follow the same sample-file convention: a template with a .sample
// suffix is checked into the repository, and the live file is produced
// by copying the sample exactly once. A live file that already exists
// is never overwritten — the copy is idempotent by existence check,
// and every filesystem mutation is error-checked so a failed copy
// aborts the bootstrap like any other step.
package configfile
