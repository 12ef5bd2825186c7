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

func TestManagerResolvePriority(t *testing.T) {
	base := t.TempDir()
	override := t.TempDir()
	writeFile(t, filepath.Join(base, "textures", "sky.jpg"), "base")
	writeFile(t, filepath.Join(override, "textures", "sky.jpg"), "override")
	writeFile(t, filepath.Join(base, "textures", "ground.jpg"), "ground")

	m := NewManager(base, override)

	data, err := m.ReadFile("textures/sky.jpg")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "override" {
		t.Errorf("got %q, want the last added root to win", data)
	}

	data, err = m.ReadFile("textures/ground.jpg")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "ground" {
		t.Errorf("got %q, want fallback to earlier root", data)
	}
}

func TestManagerErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "models", "tram.fbx"), "binary")

	m := NewManager(root)

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", "models/none.obj", ErrNotFound},
		{"missing absolute", filepath.Join(root, "nope.obj"), ErrNotFound},
		{"directory", "models", ErrNotFound},
		{"unknown extension", "models/tram.fbx", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Load(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load(%q) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestManagerLoadCaches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "models", "quad.obj"), quadOBJ)

	m := NewManager(root)

	first, err := m.Load("models/quad.obj")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := m.Load("models/quad.obj")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first != second {
		t.Error("expected the cached model on second load")
	}

	hits, misses := m.cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses; want 1, 1", hits, misses)
	}

	m.Close()
	if hits, misses := m.cache.Stats(); hits != 0 || misses != 0 {
		t.Errorf("stats after Close = %d, %d; want 0, 0", hits, misses)
	}
}

func TestManagerLoadParseError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "broken.obj"), "v 0 0 0\n")

	m := NewManager(root)
	_, err := m.Load("broken.obj")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("parse failure should not match lookup sentinels: %v", err)
	}
}

func TestEnsureNormalsKeepsExisting(t *testing.T) {
	d := &MeshData{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Normals:   [][3]float32{{1, 0, 0}, {1, 0, 0}, {1, 0, 0}},
		Indices:   []uint32{0, 1, 2},
	}
	d.EnsureNormals()
	if d.Normals[0] != [3]float32{1, 0, 0} {
		t.Errorf("existing normals overwritten: %v", d.Normals)
	}
}
