package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbkclanna/envup/internal/config"
	"github.com/fbkclanna/envup/internal/lockfile"
	"github.com/fbkclanna/envup/internal/pyproject"
)

// Standard filenames at the project root.
const (
	ManifestName = "pyproject.toml"
	LockName     = "poetry.lock"
	ConfigName   = "envup.yaml"
)

// Context holds the resolved paths and loaded files for a project.
type Context struct {
	Root         string
	ManifestPath string
	LockPath     string
	ConfigPath   string
	Manifest     *pyproject.File
	Lock         *lockfile.File // nil when absent
	Config       *config.File   // nil when absent
}

// Load resolves project paths and loads the manifest, plus the lockfile and
// tool config if present.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	ctx := &Context{
		Root:         root,
		ManifestPath: filepath.Join(root, ManifestName),
		LockPath:     filepath.Join(root, LockName),
		ConfigPath:   filepath.Join(root, ConfigName),
	}

	ctx.Manifest, err = pyproject.Load(ctx.ManifestPath)
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(ctx.LockPath); statErr == nil {
		lf, err := lockfile.Load(ctx.LockPath)
		if err != nil {
			return nil, err
		}
		ctx.Lock = lf
	}

	if _, statErr := os.Stat(ctx.ConfigPath); statErr == nil {
		cfg, err := config.Load(ctx.ConfigPath)
		if err != nil {
			return nil, err
		}
		ctx.Config = cfg
	}

	return ctx, nil
}

// HasLock reports whether a lockfile is present.
func (c *Context) HasLock() bool {
	return c.Lock != nil
}

// VenvDir returns the in-project virtual environment path.
func (c *Context) VenvDir() string {
	return filepath.Join(c.Root, ".venv")
}

// HasVenv reports whether an in-project virtual environment exists.
func (c *Context) HasVenv() bool {
	info, err := os.Stat(c.VenvDir())
	return err == nil && info.IsDir()
}
