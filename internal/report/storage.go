package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage writes research reports as plain markdown files under a root
// directory, one subdirectory per report key.
type Storage struct {
	Root string
}

// NewStorage creates report storage rooted at dir.
func NewStorage(dir string) *Storage {
	return &Storage{Root: dir}
}

// Save writes the report for key and returns its absolute path.
func (s *Storage) Save(key, markdown string) (string, error) {
	dir := filepath.Join(s.Root, "projects", key)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, "report.md")
	if err := os.WriteFile(path, []byte(markdown), 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Read returns the report markdown at path.
func (s *Storage) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(data), nil
}

// DefaultRoot resolves the report root directory. Honors AUTODIDACT_DATA_DIR,
// then XDG_DATA_HOME, then ~/.local/share.
func DefaultRoot() (string, error) {
	if dir := os.Getenv("AUTODIDACT_DATA_DIR"); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "autodidact"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "autodidact"), nil
}
