// Package texture decodes images into RGBA pixels ready for upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Load reads and decodes an image file into bottom-up RGBA rows. TGA files
// are recognized by their extension since the format has no signature.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var img *image.RGBA
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		var top *image.RGBA
		if top, err = DecodeTGA(data); err == nil {
			img = FlipVertical(top)
		}
	} else {
		img, err = Decode(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes PNG, JPEG, BMP or WebP data and flips it vertically so that
// row 0 is the bottom of the image, which is what glTexImage2D expects.
func Decode(data []byte) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return FlipVertical(ToRGBA(src)), nil
}

// ToRGBA converts any image to tightly packed RGBA with origin (0,0).
func ToRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// FlipVertical returns a copy of img with the row order reversed.
func FlipVertical(img *image.RGBA) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	rowSize := w * 4
	for y := 0; y < h; y++ {
		src := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowSize]
		copy(out.Pix[y*out.Stride:y*out.Stride+rowSize], src)
	}
	return out
}
