package terrain

import (
	"fmt"
	"image"
)

// Sampler maps grid vertices to heightmap texels.
type Sampler struct {
	img      *HeightmapImage
	numVertX int
	numVertZ int
	scale    float32
}

// NewSampler validates the image and returns a sampler for a numVertX x numVertZ vertex grid.
func NewSampler(img *HeightmapImage, numVertX, numVertZ int, scale float32) (*Sampler, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, ErrEmptyHeightmap
	}
	if len(img.Pixels) < img.Width*img.Height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d pixels", ErrEmptyHeightmap, len(img.Pixels), img.Width, img.Height)
	}
	if numVertX <= 0 || numVertZ <= 0 {
		return nil, fmt.Errorf("%w: %dx%d vertices", ErrInvalidGrid, numVertX, numVertZ)
	}
	return &Sampler{img: img, numVertX: numVertX, numVertZ: numVertZ, scale: scale}, nil
}

// Texel returns the clamped texel coordinate sampled for vertex (row, col).
func (s *Sampler) Texel(row, col int) (tx, tz int) {
	tx = col * s.img.Width / s.numVertX
	tz = row * s.img.Height / s.numVertZ
	tx = clampInt(tx, 0, s.img.Width-1)
	tz = clampInt(tz, 0, s.img.Height-1)
	return tx, tz
}

// Raw returns the first-channel byte sampled for vertex (row, col).
func (s *Sampler) Raw(row, col int) uint8 {
	tx, tz := s.Texel(row, col)
	return s.img.Pixels[(tx+tz*s.img.Width)*4]
}

// Height returns the scaled elevation for vertex (row, col).
func (s *Sampler) Height(row, col int) float32 {
	return float32(s.Raw(row, col)) * s.scale
}

// SampleHeights returns one elevation per grid vertex in row-major order.
func SampleHeights(img *HeightmapImage, numVertX, numVertZ int, scale float32) ([]float32, error) {
	s, err := NewSampler(img, numVertX, numVertZ, scale)
	if err != nil {
		return nil, err
	}
	heights := make([]float32, 0, numVertX*numVertZ)
	for row := range numVertZ {
		for col := range numVertX {
			heights = append(heights, s.Height(row, col))
		}
	}
	return heights, nil
}

// FromRGBA copies an RGBA image into a tightly packed HeightmapImage.
func FromRGBA(img *image.RGBA) *HeightmapImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*4)
	for y := range h {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		copy(pix[y*w*4:], src)
	}
	return &HeightmapImage{Width: w, Height: h, Pixels: pix}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
