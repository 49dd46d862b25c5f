package poetry_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fbkclanna/envup/internal/poetry"
	"github.com/fbkclanna/envup/internal/testutil"
)

func TestResolve_explicitPath(t *testing.T) {
	fake := testutil.NewFakePoetry(t, testutil.FakePoetryOpts{})
	tool, err := poetry.Resolve(fake.Bin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tool.Bin != fake.Bin {
		t.Errorf("bin = %q, want %q", tool.Bin, fake.Bin)
	}
}

func TestResolve_explicitMissing(t *testing.T) {
	_, err := poetry.Resolve(filepath.Join(t.TempDir(), "no-such-poetry"))
	if err == nil {
		t.Fatal("expected error for missing explicit binary")
	}
}

func TestEnsureExecutable(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "poetry")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := poetry.EnsureExecutable(bin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(bin)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0o111 == 0 {
		t.Error("execute bit should be set")
	}

	// Second call is a no-op.
	if err := poetry.EnsureExecutable(bin); err != nil {
		t.Fatalf("second call should not error: %v", err)
	}
}

func TestEnsureExecutable_missingFile(t *testing.T) {
	err := poetry.EnsureExecutable(filepath.Join(t.TempDir(), "gone"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConfigSet_recordsLocalFlag(t *testing.T) {
	fake := testutil.NewFakePoetry(t, testutil.FakePoetryOpts{})
	tool := poetry.Tool{Bin: fake.Bin}

	if err := tool.ConfigSet(t.TempDir(), "virtualenvs.in-project", "true"); err != nil {
		t.Fatalf("config set: %v", err)
	}

	calls := fake.Calls(t)
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	want := "config virtualenvs.in-project true --local"
	if calls[0] != want {
		t.Errorf("call = %q, want %q", calls[0], want)
	}
}

func TestInstall_flagVariants(t *testing.T) {
	cases := []struct {
		name string
		opts poetry.InstallOpts
		want string
	}{
		{"sync", poetry.InstallOpts{NoRoot: true, Sync: true}, "install --no-root --sync"},
		{"manifest only", poetry.InstallOpts{NoRoot: true}, "install --no-root"},
		{"with root", poetry.InstallOpts{}, "install"},
		{"extra args", poetry.InstallOpts{NoRoot: true, Extra: []string{"--only", "main"}}, "install --no-root --only main"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := testutil.NewFakePoetry(t, testutil.FakePoetryOpts{})
			tool := poetry.Tool{Bin: fake.Bin}
			if err := tool.Install(t.TempDir(), tc.opts); err != nil {
				t.Fatalf("install: %v", err)
			}
			calls := fake.Calls(t)
			if len(calls) != 1 || calls[0] != tc.want {
				t.Errorf("calls = %v, want [%q]", calls, tc.want)
			}
		})
	}
}

func TestInstall_failurePropagates(t *testing.T) {
	fake := testutil.NewFakePoetry(t, testutil.FakePoetryOpts{FailOn: "install", ExitCode: 7})
	tool := poetry.Tool{Bin: fake.Bin}

	err := tool.Install(t.TempDir(), poetry.InstallOpts{NoRoot: true})
	if err == nil {
		t.Fatal("expected error from failing install")
	}
}

func TestVersion(t *testing.T) {
	fake := testutil.NewFakePoetry(t, testutil.FakePoetryOpts{})
	tool := poetry.Tool{Bin: fake.Bin}

	ver, err := tool.Version()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(ver, "1.8.3") {
		t.Errorf("version = %q", ver)
	}
}

func TestCheckLock_failure(t *testing.T) {
	fake := testutil.NewFakePoetry(t, testutil.FakePoetryOpts{FailOn: "check"})
	tool := poetry.Tool{Bin: fake.Bin}

	if err := tool.CheckLock(t.TempDir()); err == nil {
		t.Fatal("expected error from failing check")
	}
}

func TestRun_emptyCommand(t *testing.T) {
	fake := testutil.NewFakePoetry(t, testutil.FakePoetryOpts{})
	tool := poetry.Tool{Bin: fake.Bin}

	if err := tool.Run(t.TempDir(), nil); err == nil {
		t.Fatal("expected error for empty command")
	}
}
