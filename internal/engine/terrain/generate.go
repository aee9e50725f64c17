package terrain

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// NoiseParams configures a generated heightmap.
type NoiseParams struct {
	Seed    int64
	Alpha   float64 // weight falloff per octave
	Beta    float64 // frequency multiplier per octave
	Octaves int32
	Size    int     // output is Size x Size pixels
	Scale   float64 // noise-space units per pixel
}

// GenerateHeightmap fills a square heightmap with Perlin noise mapped onto 0-255.
// Alpha, green and blue mirror the red channel so the image also previews as greyscale.
func GenerateHeightmap(p NoiseParams) (*HeightmapImage, error) {
	if p.Size <= 0 {
		return nil, fmt.Errorf("%w: generated size %d", ErrEmptyHeightmap, p.Size)
	}
	if p.Octaves <= 0 {
		return nil, fmt.Errorf("perlin octaves must be positive, got %d", p.Octaves)
	}

	noise := perlin.NewPerlin(p.Alpha, p.Beta, p.Octaves, p.Seed)
	img := &HeightmapImage{
		Width:  p.Size,
		Height: p.Size,
		Pixels: make([]byte, p.Size*p.Size*4),
	}
	for z := range p.Size {
		for x := range p.Size {
			n := noise.Noise2D(float64(x)*p.Scale, float64(z)*p.Scale)
			v := byte(clampFloat((n*0.5+0.5)*255, 0, 255))
			o := (x + z*p.Size) * 4
			img.Pixels[o] = v
			img.Pixels[o+1] = v
			img.Pixels[o+2] = v
			img.Pixels[o+3] = 255
		}
	}
	return img, nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
