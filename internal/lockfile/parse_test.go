package lockfile

import (
	"testing"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`
[[package]]
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
content-hash = "1f4d1f0f3d2a9c8b7e6f5a4b3c2d1e0f"
`)
	lf, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lf.Packages) != 2 {
		t.Fatalf("packages = %d, want 2", len(lf.Packages))
	}
	if lf.Packages[0].Name != "requests" || lf.Packages[0].Version != "2.31.0" {
		t.Errorf("first package = %+v", lf.Packages[0])
	}
	if lf.Metadata.LockVersion != "2.0" {
		t.Errorf("lock-version = %q", lf.Metadata.LockVersion)
	}
	if lf.Metadata.ContentHash == "" {
		t.Error("content-hash should be parsed")
	}
}

func TestParse_empty(t *testing.T) {
	lf, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lf.Packages) != 0 {
		t.Errorf("packages = %d, want 0", len(lf.Packages))
	}
}

func TestParse_invalidTOML(t *testing.T) {
	if _, err := Parse([]byte("[[package\n")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(t.TempDir() + "/poetry.lock"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
