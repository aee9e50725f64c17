// Package debug provides developer utilities for the running scene.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes framebuffer captures as timestamped PNG files.
type Screenshots struct {
	outputDir string
	prefix    string
	now       func() time.Time
	last      string
	seq       int
}

// NewScreenshots creates a capture writer. An empty outputDir writes to the working directory.
func NewScreenshots(outputDir, prefix string) *Screenshots {
	return &Screenshots{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// FromPixels converts bottom-up RGBA rows read from the framebuffer into a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save writes a framebuffer capture and returns the file path.
func (s *Screenshots) Save(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}

	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := s.filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// filename returns a unique name; captures within the same second get a sequence suffix.
func (s *Screenshots) filename() string {
	stamp := s.now().Format("2006-01-02_15-04-05")
	if stamp == s.last {
		s.seq++
	} else {
		s.last, s.seq = stamp, 0
	}

	name := fmt.Sprintf("%s_%s.png", s.prefix, stamp)
	if s.seq > 0 {
		name = fmt.Sprintf("%s_%s_%d.png", s.prefix, stamp, s.seq)
	}
	if s.outputDir != "" {
		name = filepath.Join(s.outputDir, name)
	}
	return name
}
