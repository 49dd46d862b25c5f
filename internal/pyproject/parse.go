package pyproject

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and validates a pyproject.toml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project manifest path
	if err != nil {
		return nil, fmt.Errorf("reading pyproject.toml: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates pyproject.toml content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing pyproject.toml: %w", err)
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func validate(f *File) error {
	if f.Tool.Poetry == nil && f.Project == nil {
		return fmt.Errorf("pyproject.toml: neither [tool.poetry] nor [project] is present")
	}
	if f.Name() == "" {
		return fmt.Errorf("pyproject.toml: project name is required")
	}
	return nil
}
