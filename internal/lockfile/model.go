package lockfile

// File represents poetry.lock.
type File struct {
	Packages []Package `toml:"package"`
	Metadata Metadata  `toml:"metadata"`
}

// Package records one pinned dependency.
type Package struct {
	Name           string `toml:"name"`
	Version        string `toml:"version"`
	Description    string `toml:"description,omitempty"`
	Optional       bool   `toml:"optional,omitempty"`
	PythonVersions string `toml:"python-versions,omitempty"`
}

// Metadata is the [metadata] trailer. ContentHash ties the lockfile to the
// pyproject.toml it was resolved from.
type Metadata struct {
	LockVersion    string `toml:"lock-version"`
	PythonVersions string `toml:"python-versions,omitempty"`
	ContentHash    string `toml:"content-hash"`
}
