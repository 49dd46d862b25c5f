package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pyprojectContent = `[tool.poetry]
name = "weather-pipeline"
version = "0.1.0"
description = "Data collection pipeline"

[tool.poetry.dependencies]
python = "^3.11"
requests = "^2.31"
pandas = "^2.1"

[build-system]
requires = ["poetry-core"]
build-backend = "poetry.core.masonry.api"
`

const lockContent = `[[package]]
name = "requests"
version = "2.31.0"
description = "Python HTTP for Humans."
optional = false
python-versions = ">=3.7"

[[package]]
name = "pandas"
version = "2.1.4"
description = "Powerful data structures for data analysis"
optional = false
python-versions = ">=3.9"

[metadata]
lock-version = "2.0"
python-versions = "^3.11"
content-hash = "1f4d1f0f3d2a9c8b7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2b1c0d9e8f7a6b5c4d"
`

// CreateProject creates a temp directory with a pyproject.toml and,
// optionally, a poetry.lock. Returns the project root.
func CreateProject(t *testing.T, withLock bool) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(pyprojectContent), 0644); err != nil {
		t.Fatal(err)
	}
	if withLock {
		if err := os.WriteFile(filepath.Join(dir, "poetry.lock"), []byte(lockContent), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// FakePoetry is a stand-in Poetry executable: a shell script that records
// every invocation's arguments, one line per call, and can be told to fail
// on a given subcommand.
type FakePoetry struct {
	Bin     string
	logPath string
}

// FakePoetryOpts configures the fake's behavior.
type FakePoetryOpts struct {
	// FailOn makes the script exit with ExitCode when its first argument
	// equals this subcommand. Empty means never fail.
	FailOn   string
	ExitCode int
	// NotExecutable writes the script without the execute bit, for
	// exercising the permission-fix pre-step.
	NotExecutable bool
}

// NewFakePoetry writes the fake executable into a temp directory.
func NewFakePoetry(t *testing.T, opts FakePoetryOpts) *FakePoetry {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "poetry")
	logPath := filepath.Join(dir, "calls.log")

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&b, "echo \"$*\" >> %q\n", logPath)
	b.WriteString("if [ \"$1\" = \"--version\" ]; then echo 'Poetry (version 1.8.3)'; fi\n")
	if opts.FailOn != "" {
		code := opts.ExitCode
		if code == 0 {
			code = 1
		}
		fmt.Fprintf(&b, "if [ \"$1\" = %q ]; then echo 'fake poetry: induced failure' >&2; exit %d; fi\n", opts.FailOn, code)
	}
	b.WriteString("exit 0\n")

	mode := os.FileMode(0755)
	if opts.NotExecutable {
		mode = 0644
	}
	if err := os.WriteFile(bin, []byte(b.String()), mode); err != nil {
		t.Fatal(err)
	}
	return &FakePoetry{Bin: bin, logPath: logPath}
}

// Calls returns the recorded invocations, one argv string per call.
func (f *FakePoetry) Calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(f.logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}
