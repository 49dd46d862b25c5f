package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SyncMode selects how the install step uses the lockfile.
type SyncMode string

const (
	// SyncAuto syncs exactly to the lockfile when one exists, otherwise
	// falls back to a manifest-only install with a warning.
	SyncAuto SyncMode = "auto"
	// SyncAlways requires a lockfile; its absence is an error.
	SyncAlways SyncMode = "always"
	// SyncNever installs from the manifest even when a lockfile exists.
	SyncNever SyncMode = "never"
)

// ParseSyncMode parses a sync mode string, defaulting to "auto".
func ParseSyncMode(s string) (SyncMode, error) {
	switch SyncMode(s) {
	case SyncAuto, "":
		return SyncAuto, nil
	case SyncAlways:
		return SyncAlways, nil
	case SyncNever:
		return SyncNever, nil
	default:
		return "", fmt.Errorf("unknown sync mode: %q (must be auto, always, or never)", s)
	}
}

// Load reads and validates an envup.yaml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project config path
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates envup.yaml content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Save validates and writes a config file to disk.
func Save(path string, f *File) error {
	if err := validate(f); err != nil {
		return err
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func validate(f *File) error {
	if f.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", f.Version)
	}
	if _, err := ParseSyncMode(f.Install.Sync); err != nil {
		return fmt.Errorf("config: install.sync: %w", err)
	}
	if f.PoetryBin != "" && !filepath.IsAbs(f.PoetryBin) {
		return fmt.Errorf("config: poetry_bin must be an absolute path: %s", f.PoetryBin)
	}
	for i, h := range f.PostInstall {
		if len(h.Cmd) == 0 {
			return fmt.Errorf("config: post_install[%d].cmd is required", i)
		}
		if h.WorkDir != "" {
			label := fmt.Sprintf("post_install[%d].workdir", i)
			if err := validatePath(h.WorkDir, label); err != nil {
				return err
			}
		}
	}
	return nil
}

// validatePath ensures a path is relative and does not escape the project.
func validatePath(p, label string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("config: %s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: %s: path must not escape project (contains ..): %s", label, p)
	}
	return nil
}
