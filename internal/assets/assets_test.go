package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestManagerRootPriority(t *testing.T) {
	low := t.TempDir()
	high := t.TempDir()
	writeFile(t, filepath.Join(low, "textures", "grass.png"), "low")
	writeFile(t, filepath.Join(high, "textures", "grass.png"), "high")
	writeFile(t, filepath.Join(low, "models", "jeep.obj"), "jeep")

	m := NewManager(low, high)

	data, err := m.Load("textures/grass.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "high" {
		t.Errorf("expected last root to win, got %q", data)
	}

	data, err = m.Load("models/jeep.obj")
	if err != nil {
		t.Fatalf("Load fallback failed: %v", err)
	}
	if string(data) != "jeep" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestManagerNotFound(t *testing.T) {
	m := NewManager(t.TempDir())

	_, err := m.Load("missing.png")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = m.Resolve(filepath.Join(t.TempDir(), "nope.obj"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for absolute path, got %v", err)
	}
}

func TestManagerDirectoryIsNotAnAsset(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "textures"), 0755); err != nil {
		t.Fatal(err)
	}
	m := NewManager(root)
	if _, err := m.Resolve("textures"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for directory, got %v", err)
	}
}

func TestManagerCachesLoads(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	writeFile(t, path, "first")

	m := NewManager(root)
	if _, err := m.Load("a.txt"); err != nil {
		t.Fatal(err)
	}
	// Changing the file on disk must not affect the cached copy.
	writeFile(t, path, "second")
	data, err := m.Load("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("expected cached content, got %q", data)
	}

	hits, misses := m.Cache().Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit / 1 miss, got %d / %d", hits, misses)
	}

	m.Close()
	data, _ = m.Load("a.txt")
	if string(data) != "second" {
		t.Errorf("expected fresh read after Close, got %q", data)
	}
}
