package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/envup/internal/project"
	"github.com/fbkclanna/envup/internal/testutil"
)

func TestLoad_withLock(t *testing.T) {
	dir := testutil.CreateProject(t, true)

	ctx, err := project.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ctx.HasLock() {
		t.Error("lock should be loaded")
	}
	if ctx.Manifest.Name() != "weather-pipeline" {
		t.Errorf("name = %q", ctx.Manifest.Name())
	}
	if len(ctx.Lock.Packages) != 2 {
		t.Errorf("locked packages = %d, want 2", len(ctx.Lock.Packages))
	}
	if ctx.Config != nil {
		t.Error("config should be nil when envup.yaml is absent")
	}
}

func TestLoad_withoutLock(t *testing.T) {
	dir := testutil.CreateProject(t, false)

	ctx, err := project.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.HasLock() {
		t.Error("lock should be nil when poetry.lock is absent")
	}
}

func TestLoad_withConfig(t *testing.T) {
	dir := testutil.CreateProject(t, false)
	cfgData := []byte("version: 1\nfix_permissions: true\n")
	if err := os.WriteFile(filepath.Join(dir, "envup.yaml"), cfgData, 0644); err != nil {
		t.Fatal(err)
	}

	ctx, err := project.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Config == nil || !ctx.Config.FixPermissions {
		t.Error("config should be loaded")
	}
}

func TestLoad_missingManifest(t *testing.T) {
	if _, err := project.Load(t.TempDir()); err == nil {
		t.Fatal("expected error when pyproject.toml is missing")
	}
}

func TestLoad_corruptLock(t *testing.T) {
	dir := testutil.CreateProject(t, false)
	if err := os.WriteFile(filepath.Join(dir, "poetry.lock"), []byte("[[package\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := project.Load(dir); err == nil {
		t.Fatal("expected error for corrupt lockfile")
	}
}

func TestHasVenv(t *testing.T) {
	dir := testutil.CreateProject(t, false)
	ctx, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.HasVenv() {
		t.Error("no venv yet")
	}
	if err := os.Mkdir(ctx.VenvDir(), 0755); err != nil {
		t.Fatal(err)
	}
	if !ctx.HasVenv() {
		t.Error("venv should be detected")
	}
}
