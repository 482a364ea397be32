package cmake

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const ManifestFilename = "CMakeLists.txt"

type Status int

const (
	Created Status = iota
	Updated
	Unchanged
)

func (s Status) String() string {
	switch s {
	case Created:
		return "Created"
	case Updated:
		return "Updated"
	default:
		return "Unchanged"
	}
}

// Result describes what WriteManifest did. Previous is the overwritten content, if any.
type Result struct {
	Path     string
	Status   Status
	Previous string
}

// WriteManifest writes content to CMakeLists.txt in root, replacing any existing file
func WriteManifest(root, content string) (*Result, error) {
	path := filepath.Join(root, ManifestFilename)
	res := &Result{Path: path, Status: Created}

	old, err := os.ReadFile(path)
	switch {
	case err == nil:
		res.Previous = string(old)
		if res.Previous == content {
			res.Status = Unchanged
			return res, nil
		}
		res.Status = Updated
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return res, nil
}
