package sources

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/profiler/internal/domain"
)

// FileProfileSource reads the user's declared profile from a YAML file.
// A missing file is not an error: users are not required to declare a
// profile, and the fusion weights degrade cleanly without one.
type FileProfileSource struct {
	path string
}

// NewFileProfileSource creates a source for the given path.
func NewFileProfileSource(path string) *FileProfileSource {
	return &FileProfileSource{path: path}
}

// Read parses the declared profile. Returns (nil, nil) when the file does
// not exist; an unreadable or malformed file is an error.
func (s *FileProfileSource) Read(_ context.Context) (*domain.DeclaredProfile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile domain.DeclaredProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", s.path, err)
	}
	return &profile, nil
}
