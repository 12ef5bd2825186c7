// Package screenshot saves framebuffer contents as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes screenshots into a directory with a filename prefix.
type Capture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	last      string
	seq       int
}

// New creates a new screenshot capture handler.
func New(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// FromPixels converts bottom-up RGBA rows, as returned by glReadPixels,
// into a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// Save writes framebuffer pixels as a PNG and returns the file path.
func (c *Capture) Save(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}

	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(filename)
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(filename)
		return "", fmt.Errorf("closing file: %w", err)
	}

	return filename, nil
}

// nextFilename builds a timestamped name, numbering captures taken within
// the same second.
func (c *Capture) nextFilename() string {
	stamp := c.now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s.png", c.prefix, stamp)
	if stamp == c.last {
		c.seq++
		name = fmt.Sprintf("%s_%s_%d.png", c.prefix, stamp, c.seq)
	} else {
		c.last = stamp
		c.seq = 0
	}

	if c.outputDir != "" {
		name = filepath.Join(c.outputDir, name)
	}
	return name
}
