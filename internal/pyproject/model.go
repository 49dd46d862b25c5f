package pyproject

// File represents the parts of pyproject.toml that envup reads. Both the
// classic [tool.poetry] layout and PEP 621 [project] metadata are supported;
// Poetry 2.x projects may use either.
type File struct {
	Project     *Project     `toml:"project"`
	Tool        Tool         `toml:"tool"`
	BuildSystem *BuildSystem `toml:"build-system"`
}

// Project is PEP 621 [project] metadata.
type Project struct {
	Name           string   `toml:"name"`
	Version        string   `toml:"version"`
	Description    string   `toml:"description,omitempty"`
	RequiresPython string   `toml:"requires-python,omitempty"`
	Dependencies   []string `toml:"dependencies,omitempty"`
}

// Tool holds the [tool.*] tables we care about.
type Tool struct {
	Poetry *Poetry `toml:"poetry"`
}

// Poetry is the [tool.poetry] table. Dependency values are either version
// strings or inline tables (git/path/extras sources), so they stay untyped.
type Poetry struct {
	Name         string           `toml:"name"`
	Version      string           `toml:"version"`
	Description  string           `toml:"description,omitempty"`
	Dependencies map[string]any   `toml:"dependencies,omitempty"`
	Group        map[string]Group `toml:"group,omitempty"`
}

// Group is a [tool.poetry.group.<name>] dependency group.
type Group struct {
	Optional     bool           `toml:"optional,omitempty"`
	Dependencies map[string]any `toml:"dependencies,omitempty"`
}

// BuildSystem is the [build-system] table.
type BuildSystem struct {
	Requires     []string `toml:"requires,omitempty"`
	BuildBackend string   `toml:"build-backend,omitempty"`
}

// Name returns the project name from whichever section declares it.
func (f *File) Name() string {
	if f.Tool.Poetry != nil && f.Tool.Poetry.Name != "" {
		return f.Tool.Poetry.Name
	}
	if f.Project != nil {
		return f.Project.Name
	}
	return ""
}

// Version returns the project version, or empty string if not declared.
func (f *File) Version() string {
	if f.Tool.Poetry != nil && f.Tool.Poetry.Version != "" {
		return f.Tool.Poetry.Version
	}
	if f.Project != nil {
		return f.Project.Version
	}
	return ""
}

// DependencyCount counts declared dependencies across the main section and
// all groups. The python version constraint is not a dependency.
func (f *File) DependencyCount() int {
	n := 0
	if f.Tool.Poetry != nil {
		for name := range f.Tool.Poetry.Dependencies {
			if name != "python" {
				n++
			}
		}
		for _, g := range f.Tool.Poetry.Group {
			n += len(g.Dependencies)
		}
	}
	if f.Project != nil {
		n += len(f.Project.Dependencies)
	}
	return n
}
