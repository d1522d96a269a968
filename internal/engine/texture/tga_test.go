package texture

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
)

// tgaHeader builds a header for a true-color image.
func tgaHeader(imageType byte, w, h int, bpp byte, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGA_Uncompressed(t *testing.T) {
	// 1x2, bottom-up: first pixel in the file is the bottom row
	data := tgaHeader(tgaTrueColor, 1, 2, 24, 0)
	data = append(data,
		255, 0, 0, // blue (BGR)
		0, 0, 255, // red
	)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	if c := img.RGBAAt(0, 1); c.B != 255 || c.R != 0 || c.A != 255 {
		t.Errorf("expected blue at bottom row, got %+v", c)
	}
	if c := img.RGBAAt(0, 0); c.R != 255 || c.B != 0 {
		t.Errorf("expected red at top row, got %+v", c)
	}
}

func TestDecodeTGA_TopDownWithAlpha(t *testing.T) {
	data := tgaHeader(tgaTrueColor, 2, 1, 32, 0x20)
	data = append(data,
		0, 255, 0, 128,
		10, 20, 30, 40,
	)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	if c := img.RGBAAt(0, 0); c.G != 255 || c.A != 128 {
		t.Errorf("unexpected first pixel %+v", c)
	}
	if c := img.RGBAAt(1, 0); c.R != 30 || c.G != 20 || c.B != 10 || c.A != 40 {
		t.Errorf("unexpected second pixel %+v", c)
	}
}

func TestDecodeTGA_RLE(t *testing.T) {
	data := tgaHeader(tgaTrueColorRLE, 4, 1, 24, 0x20)
	data = append(data,
		0x82, 0, 0, 255, // run of 3 red
		0x00, 0, 255, 0, // 1 raw green
	)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	for x := 0; x < 3; x++ {
		if c := img.RGBAAt(x, 0); c.R != 255 {
			t.Errorf("pixel %d: expected red, got %+v", x, c)
		}
	}
	if c := img.RGBAAt(3, 0); c.G != 255 || c.R != 0 {
		t.Errorf("expected green last, got %+v", c)
	}
}

func TestDecodeTGA_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"short header", []byte{0, 0, 2}, image.ErrFormat},
		{"color mapped", func() []byte { h := tgaHeader(tgaTrueColor, 1, 1, 24, 0); h[1] = 1; return h }(), ErrUnsupportedTGA},
		{"grayscale", tgaHeader(3, 1, 1, 8, 0), ErrUnsupportedTGA},
		{"16 bit", tgaHeader(tgaTrueColor, 1, 1, 16, 0), ErrUnsupportedTGA},
		{"truncated pixels", append(tgaHeader(tgaTrueColor, 2, 2, 24, 0), 1, 2, 3), image.ErrFormat},
		{"truncated rle", tgaHeader(tgaTrueColorRLE, 2, 1, 24, 0), image.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTGA(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_TGAFlipsToBottomUp(t *testing.T) {
	data := tgaHeader(tgaTrueColor, 1, 2, 24, 0x20)
	data = append(data,
		0, 0, 255, // red top
		255, 0, 0, // blue bottom
	)
	path := filepath.Join(t.TempDir(), "face.TGA")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write tga: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c := img.RGBAAt(0, 0); c.B != 255 {
		t.Errorf("expected blue at row 0, got %+v", c)
	}
	if c := img.RGBAAt(0, 1); c.R != 255 {
		t.Errorf("expected red at row 1, got %+v", c)
	}
}
