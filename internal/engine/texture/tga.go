package texture

import (
	"errors"
	"fmt"
	"image"
)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
	tgaHeaderSize   = 18
)

// ErrUnsupportedTGA is returned for TGA variants the decoder does not handle.
var ErrUnsupportedTGA = errors.New("unsupported TGA")

// DecodeTGA decodes uncompressed or RLE true-color TGA data with 24 or 32
// bits per pixel. The returned image is top-down like every other decoder.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("%w: header truncated", image.ErrFormat)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topDown := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped", ErrUnsupportedTGA)
	}
	if imageType != tgaTrueColor && imageType != tgaTrueColorRLE {
		return nil, fmt.Errorf("%w: type %d", ErrUnsupportedTGA, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedTGA, bpp)
	}
	if tgaHeaderSize+idLength > len(data) {
		return nil, fmt.Errorf("%w: id field truncated", image.ErrFormat)
	}

	d := tgaDecoder{
		src:     data[tgaHeaderSize+idLength:],
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		bytesPP: bpp / 8,
		topDown: topDown,
	}
	var err error
	if imageType == tgaTrueColor {
		err = d.raw(width * height)
	} else {
		err = d.rle(width * height)
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	src     []byte
	pos     int
	img     *image.RGBA
	bytesPP int
	topDown bool
	pixel   int
}

// next reads one BGR(A) pixel.
func (d *tgaDecoder) next() ([4]byte, error) {
	if d.pos+d.bytesPP > len(d.src) {
		return [4]byte{}, fmt.Errorf("%w: pixel data truncated", image.ErrFormat)
	}
	p := d.src[d.pos:]
	c := [4]byte{p[2], p[1], p[0], 255}
	if d.bytesPP == 4 {
		c[3] = p[3]
	}
	d.pos += d.bytesPP
	return c, nil
}

// put stores c at the next pixel in file order.
func (d *tgaDecoder) put(c [4]byte) {
	w, h := d.img.Rect.Dx(), d.img.Rect.Dy()
	x, y := d.pixel%w, d.pixel/w
	if !d.topDown {
		y = h - 1 - y
	}
	copy(d.img.Pix[d.img.PixOffset(x, y):], c[:])
	d.pixel++
}

func (d *tgaDecoder) raw(n int) error {
	for d.pixel < n {
		c, err := d.next()
		if err != nil {
			return err
		}
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) rle(n int) error {
	for d.pixel < n {
		if d.pos >= len(d.src) {
			return fmt.Errorf("%w: RLE data truncated", image.ErrFormat)
		}
		header := d.src[d.pos]
		d.pos++
		count := min(int(header&0x7f)+1, n-d.pixel)

		if header&0x80 != 0 {
			c, err := d.next()
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				d.put(c)
			}
			continue
		}
		for i := 0; i < count; i++ {
			c, err := d.next()
			if err != nil {
				return err
			}
			d.put(c)
		}
	}
	return nil
}
