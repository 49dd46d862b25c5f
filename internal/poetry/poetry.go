package poetry

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Tool is a resolved Poetry binary. All invocations go through the path it
// carries; there is no hidden PATH lookup after resolution.
type Tool struct {
	Bin string
}

// wellKnownPaths are locations where Poetry ends up without being on PATH,
// most notably the devcontainer python feature and pipx installs.
var wellKnownPaths = []string{
	"/usr/local/py-utils/bin/poetry",
	"/usr/local/py-utils/venvs/poetry/bin/poetry",
	"/usr/local/bin/poetry",
	"/opt/pipx/venvs/poetry/bin/poetry",
}

// Resolve locates the Poetry binary. An explicit path wins; otherwise PATH
// is searched, then the well-known install locations.
func Resolve(explicit string) (Tool, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return Tool{}, fmt.Errorf("poetry binary %s: %w", explicit, err)
		}
		return Tool{Bin: explicit}, nil
	}

	if p, err := exec.LookPath("poetry"); err == nil {
		return Tool{Bin: p}, nil
	}

	home, _ := os.UserHomeDir()
	candidates := wellKnownPaths
	if home != "" {
		candidates = append([]string{filepath.Join(home, ".local", "bin", "poetry")}, candidates...)
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return Tool{Bin: p}, nil
		}
	}

	return Tool{}, fmt.Errorf("poetry not found on PATH or in known install locations (install it or pass --poetry)")
}

// EnsureExecutable grants execute permission on the given binary if it lacks
// one. Safe to call repeatedly; a no-op when the bit is already set.
func EnsureExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	mode := info.Mode()
	if mode&0o111 != 0 {
		return nil
	}
	if err := os.Chmod(path, mode.Perm()|0o755); err != nil {
		return fmt.Errorf("chmod +x %s: %w", path, err)
	}
	return nil
}

// IsInstalled reports whether a Poetry binary can be resolved at all.
func IsInstalled() bool {
	_, err := Resolve("")
	return err == nil
}

// ConfigSet writes a repo-scoped Poetry setting (poetry config <key> <value>
// --local). Poetry persists it in poetry.toml next to pyproject.toml, so
// re-running with the same value is a no-op.
func (t Tool) ConfigSet(projectDir, key, value string) error {
	return t.run(projectDir, "config", key, value, "--local")
}

// InstallOpts configures a poetry install invocation.
type InstallOpts struct {
	// NoRoot skips installing the project's own package.
	NoRoot bool
	// Sync makes the environment exactly match the lockfile, removing
	// anything not listed.
	Sync bool
	// Extra is appended verbatim after the flags above.
	Extra []string
}

// Install runs poetry install in the project directory with the given
// options. Poetry's own output streams through to the console.
func (t Tool) Install(projectDir string, opts InstallOpts) error {
	args := []string{"install"}
	if opts.NoRoot {
		args = append(args, "--no-root")
	}
	if opts.Sync {
		args = append(args, "--sync")
	}
	args = append(args, opts.Extra...)
	return t.run(projectDir, args...)
}

// Version returns the Poetry version string, e.g. "Poetry (version 1.8.3)".
func (t Tool) Version() (string, error) {
	out, err := t.output(".", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CheckLock verifies that poetry.lock is consistent with pyproject.toml.
// The check is delegated entirely to Poetry.
func (t Tool) CheckLock(projectDir string) error {
	return t.runQuiet(projectDir, "check", "--lock")
}

// Run executes argv inside the project's virtual environment via poetry run,
// with the caller's stdin attached.
func (t Tool) Run(projectDir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	args := append([]string{"run", "--"}, argv...)
	cmd := exec.Command(t.Bin, args...)
	cmd.Dir = projectDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// run executes a poetry command in the given directory, streaming output.
// The error is returned unwrapped so callers can decide how to annotate it
// and the child's exit code stays recoverable.
func (t Tool) run(dir string, args ...string) error {
	cmd := exec.Command(t.Bin, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// output executes a poetry command and returns its stdout.
func (t Tool) output(dir string, args ...string) (string, error) {
	cmd := exec.Command(t.Bin, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("poetry %s: %w", strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

// runQuiet executes a poetry command without printing stdout. Stderr is
// captured and included in the error message on failure.
func (t Tool) runQuiet(dir string, args ...string) error {
	cmd := exec.Command(t.Bin, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("poetry %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return nil
}
