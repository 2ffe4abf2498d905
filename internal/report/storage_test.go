package report

import (
	"path/filepath"
	"testing"
)

func TestSaveAndRead(t *testing.T) {
	s := NewStorage(t.TempDir())

	path, err := s.Save("abc-123", "# Graph Theory\n\nContent.")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "report.md" {
		t.Errorf("report path %q does not end in report.md", path)
	}

	got, err := s.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "# Graph Theory\n\nContent." {
		t.Errorf("read back %q", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := NewStorage(t.TempDir())

	if _, err := s.Save("k", "first"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	path, err := s.Save("k", "second")
	if err != nil {
		t.Fatalf("Save again: %v", err)
	}

	got, err := s.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "second" {
		t.Errorf("read back %q, want %q", got, "second")
	}
}

func TestReadMissingFile(t *testing.T) {
	s := NewStorage(t.TempDir())
	if _, err := s.Read(filepath.Join(s.Root, "nope", "report.md")); err == nil {
		t.Fatal("expected error for missing report")
	}
}

func TestDefaultRootHonorsEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AUTODIDACT_DATA_DIR", dir)

	got, err := DefaultRoot()
	if err != nil {
		t.Fatalf("DefaultRoot: %v", err)
	}
	if got != dir {
		t.Errorf("root = %q, want %q", got, dir)
	}
}

func TestDefaultRootUsesXDGDataHome(t *testing.T) {
	t.Setenv("AUTODIDACT_DATA_DIR", "")
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	got, err := DefaultRoot()
	if err != nil {
		t.Fatalf("DefaultRoot: %v", err)
	}
	if got != filepath.Join(xdg, "autodidact") {
		t.Errorf("root = %q, want under XDG_DATA_HOME", got)
	}
}
