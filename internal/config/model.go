package config

// File represents the optional envup.yaml tool config at the project root.
// Everything in it has a sensible default; the file exists to override the
// bootstrap behavior per project.
type File struct {
	Version int `yaml:"version"`
	// PoetryBin overrides Poetry binary resolution with an explicit path.
	PoetryBin string `yaml:"poetry_bin,omitempty"`
	// FixPermissions enables the chmod +x pre-step on the resolved binary.
	FixPermissions bool `yaml:"fix_permissions,omitempty"`
	// VenvInProject controls the virtualenvs.in-project config step
	// (default true).
	VenvInProject *bool   `yaml:"venv_in_project,omitempty"`
	Install       Install `yaml:"install,omitempty"`
	PostInstall   []Hook  `yaml:"post_install,omitempty"`
}

// Install tunes the poetry install invocation.
type Install struct {
	// NoRoot skips installing the project's own package (default true).
	NoRoot *bool `yaml:"no_root,omitempty"`
	// Sync selects the lockfile strategy: auto, always, or never.
	Sync string `yaml:"sync,omitempty"`
	// ExtraArgs are appended verbatim to poetry install.
	ExtraArgs []string `yaml:"extra_args,omitempty"`
}

// Hook defines a command to run after the install step.
type Hook struct {
	Name    string   `yaml:"name,omitempty"`
	WorkDir string   `yaml:"workdir,omitempty"`
	Cmd     []string `yaml:"cmd"`
}

// EffectiveNoRoot returns the no_root setting, defaulting to true.
func (f *File) EffectiveNoRoot() bool {
	if f == nil || f.Install.NoRoot == nil {
		return true
	}
	return *f.Install.NoRoot
}

// EffectiveVenvInProject returns the venv_in_project setting, defaulting to true.
func (f *File) EffectiveVenvInProject() bool {
	if f == nil || f.VenvInProject == nil {
		return true
	}
	return *f.VenvInProject
}

// EffectiveSyncMode returns the parsed sync mode, defaulting to auto.
func (f *File) EffectiveSyncMode() SyncMode {
	if f == nil {
		return SyncAuto
	}
	m, err := ParseSyncMode(f.Install.Sync)
	if err != nil {
		return SyncAuto
	}
	return m
}
