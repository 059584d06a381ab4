package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Archive keeps rendered schedule exports on disk, one directory per run,
// so past rosters stay retrievable after their run entry expires.
type Archive struct {
	baseDir string
}

// NewArchive ensures the base directory exists and returns a handle.
func NewArchive(baseDir string) (*Archive, error) {
	if baseDir == "" {
		baseDir = "./exports"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}
	return &Archive{baseDir: baseDir}, nil
}

// Save writes an export under <base>/<runID>/<filename> and returns the
// absolute path.
func (a *Archive) Save(runID, filename string, data []byte) (string, error) {
	path, err := a.resolve(runID, filename)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare run directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write archive file: %w", err)
	}
	return path, nil
}

// List returns the archived filenames for one run.
func (a *Archive) List(runID string) ([]string, error) {
	dir, err := a.resolve(runID, ".")
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// resolve joins and validates the target path, refusing traversal outside
// the base directory.
func (a *Archive) resolve(runID, filename string) (string, error) {
	if runID == "" {
		return "", fmt.Errorf("run id required")
	}
	base, err := filepath.Abs(a.baseDir)
	if err != nil {
		return "", err
	}
	path, err := filepath.Abs(filepath.Join(base, runID, filename))
	if err != nil {
		return "", err
	}
	if path != base && !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes archive directory")
	}
	return path, nil
}
