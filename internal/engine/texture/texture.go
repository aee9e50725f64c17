// Package texture decodes image files into RGBA pixel buffers for upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader returns the raw bytes of a named asset.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Load reads and decodes a named image through the loader.
func Load(l Loader, name string) (*image.RGBA, error) {
	data, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	img, err := Decode(name, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// Decode decodes image data to RGBA with the origin at the top-left.
// TGA is chosen by extension since the format has no signature; everything else
// goes through the registered image decoders.
func Decode(name string, data []byte) (*image.RGBA, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to a zero-origin *image.RGBA, returning RGBA input unchanged.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// FlipVertical mirrors an image top to bottom in place.
// OBJ texture coordinates put v=0 at the bottom row.
func FlipVertical(img *image.RGBA) {
	b := img.Bounds()
	rowLen := b.Dx() * 4
	tmp := make([]byte, rowLen)
	for top, bot := b.Min.Y, b.Max.Y-1; top < bot; top, bot = top+1, bot-1 {
		t := img.Pix[img.PixOffset(b.Min.X, top):][:rowLen]
		u := img.Pix[img.PixOffset(b.Min.X, bot):][:rowLen]
		copy(tmp, t)
		copy(t, u)
		copy(u, tmp)
	}
}

// Placeholder returns a 1x1 opaque white image, used when a texture fails to load.
func Placeholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}
