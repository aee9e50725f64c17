package gpu

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Wrap selects the texture coordinate wrapping mode.
type Wrap int

const (
	// WrapRepeat tiles the texture.
	WrapRepeat Wrap = iota
	// WrapClamp clamps to the edge texel; skybox faces use it to hide seams.
	WrapClamp
)

func (w Wrap) glMode() int32 {
	if w == WrapClamp {
		return gl.CLAMP_TO_EDGE
	}
	return gl.REPEAT
}

// Texture is an uploaded 2D texture.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// UploadTexture creates a mipmapped RGBA texture from img. Requires a current GL context.
func UploadTexture(img *image.RGBA, wrap Wrap) *Texture {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	t := &Texture{Width: w, Height: h}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap.glMode())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap.glMode())

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// Delete releases the GL texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
