package texture

import (
	"errors"
	"fmt"
	"image"
)

// TGA image types handled by DecodeTGA.
const (
	TGATypeTrueColor    = 2
	TGATypeGray         = 3
	TGATypeTrueColorRLE = 10
	TGATypeGrayRLE      = 11
)

var errTGATruncated = errors.New("tga: pixel data truncated")

type tgaHeader struct {
	idLength     int
	colorMapType byte
	imageType    byte
	width        int
	height       int
	bpp          int
	topToBottom  bool
	rightToLeft  bool
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < 18 {
		return tgaHeader{}, fmt.Errorf("tga: header needs 18 bytes, got %d", len(data))
	}
	h := tgaHeader{
		idLength:     int(data[0]),
		colorMapType: data[1],
		imageType:    data[2],
		width:        int(data[12]) | int(data[13])<<8,
		height:       int(data[14]) | int(data[15])<<8,
		bpp:          int(data[16]),
		rightToLeft:  data[17]&0x10 != 0,
		topToBottom:  data[17]&0x20 != 0,
	}

	if h.colorMapType != 0 {
		return h, fmt.Errorf("tga: color-mapped images not supported")
	}
	switch h.imageType {
	case TGATypeTrueColor, TGATypeTrueColorRLE:
		if h.bpp != 24 && h.bpp != 32 {
			return h, fmt.Errorf("tga: unsupported true-color depth %d", h.bpp)
		}
	case TGATypeGray, TGATypeGrayRLE:
		if h.bpp != 8 {
			return h, fmt.Errorf("tga: unsupported grayscale depth %d", h.bpp)
		}
	default:
		return h, fmt.Errorf("tga: unsupported image type %d", h.imageType)
	}
	if h.width == 0 || h.height == 0 {
		return h, fmt.Errorf("tga: empty image %dx%d", h.width, h.height)
	}
	return h, nil
}

// DecodeTGA decodes uncompressed and RLE true-color or grayscale TGA data.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}
	offset := 18 + h.idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := &tgaDecoder{
		hdr: h,
		src: data[offset:],
		img: image.NewRGBA(image.Rect(0, 0, h.width, h.height)),
		bpp: h.bpp / 8,
	}
	if h.imageType == TGATypeTrueColorRLE || h.imageType == TGATypeGrayRLE {
		err = d.decodeRLE()
	} else {
		err = d.decodeRaw()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	hdr tgaHeader
	src []byte
	pos int
	img *image.RGBA
	bpp int
	n   int // pixels written
}

// pixel reads one source pixel as RGBA.
func (d *tgaDecoder) pixel() ([4]byte, error) {
	if d.pos+d.bpp > len(d.src) {
		return [4]byte{}, errTGATruncated
	}
	p := d.src[d.pos : d.pos+d.bpp]
	d.pos += d.bpp
	switch d.bpp {
	case 1:
		return [4]byte{p[0], p[0], p[0], 255}, nil
	case 3:
		return [4]byte{p[2], p[1], p[0], 255}, nil
	default:
		return [4]byte{p[2], p[1], p[0], p[3]}, nil
	}
}

// put stores the next pixel in file order, honouring the origin bits.
func (d *tgaDecoder) put(c [4]byte) {
	w, h := d.hdr.width, d.hdr.height
	x, y := d.n%w, d.n/w
	if d.hdr.rightToLeft {
		x = w - 1 - x
	}
	if !d.hdr.topToBottom {
		y = h - 1 - y
	}
	copy(d.img.Pix[d.img.PixOffset(x, y):], c[:])
	d.n++
}

func (d *tgaDecoder) decodeRaw() error {
	total := d.hdr.width * d.hdr.height
	for d.n < total {
		c, err := d.pixel()
		if err != nil {
			return err
		}
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) decodeRLE() error {
	total := d.hdr.width * d.hdr.height
	for d.n < total {
		if d.pos >= len(d.src) {
			return errTGATruncated
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, err := d.pixel()
			if err != nil {
				return err
			}
			for i := 0; i < count && d.n < total; i++ {
				d.put(c)
			}
			continue
		}
		for i := 0; i < count && d.n < total; i++ {
			c, err := d.pixel()
			if err != nil {
				return err
			}
			d.put(c)
		}
	}
	return nil
}
