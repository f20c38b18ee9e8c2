package pixelsearch

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestARGB_Layout(t *testing.T) {
	b, err := NewARGBStride(3, 2, 16)
	if err != nil {
		t.Fatalf("NewARGBStride failed: %v", err)
	}
	b.Set(2, 1, 0x80112233)

	off := 1*16 + 2*4
	got := b.pix[off : off+4]
	want := []byte{0x33, 0x22, 0x11, 0x80}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bytes at offset %d: got % X, want % X", off, got, want)
		}
	}
	if p := b.Pixel32(2, 1); p != 0x80112233 {
		t.Errorf("Pixel32: got %08X, want 80112233", p)
	}
	if b.Stride() != 16 {
		t.Errorf("Stride: got %d, want 16", b.Stride())
	}
}

func TestARGB_PaddedStrideSearch(t *testing.T) {
	b, err := NewARGBStride(3, 3, 20)
	if err != nil {
		t.Fatalf("NewARGBStride failed: %v", err)
	}
	b.Fill(blue)
	// Padding bytes after each row hold the target color; the scan must
	// never read them.
	for y := 0; y < 3; y++ {
		copy(b.pix[y*20+12:], []byte{0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0xFF, 0xFF})
	}
	b.Set(1, 2, red)

	res, err := Search(b, red, Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !res.Found || res.X != 1 || res.Y != 2 {
		t.Errorf("got %+v, want found at (1,2)", res)
	}
}

func TestNewARGBStride_Invalid(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, stride int
	}{
		{"negative width", -1, 2, 0},
		{"negative height", 2, -1, 8},
		{"short stride", 4, 2, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewARGBStride(tt.width, tt.height, tt.stride)
			if !errors.Is(err, ErrInvalidBuffer) {
				t.Errorf("got err %v, want ErrInvalidBuffer", err)
			}
		})
	}
}

func TestARGB_SetOutOfRange(t *testing.T) {
	b := NewARGB(2, 2)
	b.Set(-1, 0, red)
	b.Set(2, 0, red)
	b.Set(0, 2, red)

	res, _ := Search(b, red, Options{})
	if res.Found {
		t.Errorf("out-of-range Set changed the buffer: %+v", res)
	}
}

func TestARGB_UnlockForeignView(t *testing.T) {
	a, b := NewARGB(1, 1), NewARGB(1, 1)
	v, _ := a.Lock()
	if err := b.Unlock(v); !errors.Is(err, ErrInternal) {
		t.Errorf("got err %v, want ErrInternal", err)
	}
	if err := a.Unlock(v); err != nil {
		t.Errorf("Unlock failed: %v", err)
	}
}

func TestFromImage_RGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.Set(12, 21, color.RGBA{0x12, 0x34, 0x56, 0xFF})

	b := FromImage(img)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", b.Width(), b.Height())
	}
	if p := b.Pixel32(2, 1); p != 0xFF123456 {
		t.Errorf("Pixel32(2,1): got %08X, want FF123456", p)
	}
	if p := b.Pixel32(0, 0); p != 0 {
		t.Errorf("Pixel32(0,0): got %08X, want 0", p)
	}
}

func TestFromImage_NRGBAKeepsStraightColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0xC8, 0x64, 0x32, 0x40})
	img.SetNRGBA(1, 0, color.NRGBA{0xC8, 0x64, 0x32, 0xFF})

	b := FromImage(img)
	if p := b.Pixel32(0, 0); p != 0x40C86432 {
		t.Errorf("Pixel32(0,0): got %08X, want 40C86432", p)
	}

	// Alpha is ignored, so both pixels match the same target in order.
	res, err := Search(b, 0x00C86432, Options{Direction: TopRightRows})
	if err != nil || !res.Found || res.X != 1 {
		t.Errorf("got %+v, %v; want found at (1,0)", res, err)
	}
	res, _ = Search(b, 0x00C86432, Options{})
	if !res.Found || res.X != 0 {
		t.Errorf("got %+v, want found at (0,0)", res)
	}
}

func TestFromImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(1, 1, color.Gray{Y: 0x7F})

	b := FromImage(img)
	if p := b.Pixel32(1, 1); p != 0xFF7F7F7F {
		t.Errorf("Pixel32(1,1): got %08X, want FF7F7F7F", p)
	}
}

func TestUnpremultiply(t *testing.T) {
	tests := []struct {
		c, a, want uint8
	}{
		{0x80, 0x80, 0xFF},
		{0x40, 0x80, 0x80},
		{0x00, 0x10, 0x00},
	}
	for _, tt := range tests {
		if got := unpremultiply(tt.c, tt.a); got != tt.want {
			t.Errorf("unpremultiply(%d,%d) = %d, want %d", tt.c, tt.a, got, tt.want)
		}
	}
}
