package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromPixelsFlips(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (GL order).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img, err := FromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	if c := img.RGBAAt(0, 0); c.B != 255 {
		t.Errorf("top pixel = %v, want blue", c)
	}
	if c := img.RGBAAt(0, 1); c.R != 255 {
		t.Errorf("bottom pixel = %v, want red", c)
	}
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	if _, err := FromPixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "tramway")
	fixed := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	pixels := make([]byte, 2*2*4)
	first, err := c.Save(pixels, 2, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := c.Save(pixels, 2, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if want := filepath.Join(dir, "tramway_2024-05-01_12-30-00.png"); first != want {
		t.Errorf("first = %q, want %q", first, want)
	}
	if first == second {
		t.Errorf("captures in the same second share a name: %q", first)
	}

	f, err := os.Open(second)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("bounds = %v", b)
	}
}

func TestSaveEncodeFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, "tramway")

	// A 0x0 image passes the size check but cannot be encoded.
	if _, err := c.Save(nil, 0, 0); err == nil {
		t.Fatal("expected encode error for an empty image")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("failed capture left %d file(s) behind", len(entries))
	}
}
