package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeFile creates a file (and its parent directories) under root.
func writeFile(t *testing.T, root, rel string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()

	want := []string{
		writeFile(t, root, "Cameras/Canon/r5.yml"),
		writeFile(t, root, "Cameras/Nikon/z6.yaml"),
		writeFile(t, root, "Matching/filters_reject.yml"),
	}
	writeFile(t, root, "README.md")
	writeFile(t, root, "Cameras/notes.txt")

	files, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if !reflect.DeepEqual(files, want) {
		t.Errorf("Discover returned %v, want %v", files, want)
	}
}

func TestDiscoverDeterministicOrder(t *testing.T) {
	root := t.TempDir()

	// Created out of lexicographic order on purpose.
	writeFile(t, root, "b/second.yml")
	writeFile(t, root, "a/first.yml")
	writeFile(t, root, "c/third.yml")

	files, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Errorf("files not in lexicographic order: %q before %q", files[i-1], files[i])
		}
	}
	if len(files) != 3 {
		t.Errorf("expected 3 files, got %d", len(files))
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Error("expected error for missing root directory")
	}
}
