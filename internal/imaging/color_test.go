package imaging

import (
	"errors"
	"testing"

	"github.com/ironsheep/pixel-search-mcp/internal/pixelsearch"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"#FF0000", 0xFFFF0000},
		{"#ff8040", 0xFFFF8040},
		{"#f00", 0xFFFF0000},
		{"#08c", 0xFF0088CC},
		{"#80123456", 0x80123456},
		{"0x00FF0000", 0x00FF0000},
		{"0xff", 0x000000FF},
		{"16711680", 0x00FF0000},
		{"  #000000 ", 0xFF000000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %08X, want %08X", got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#GGGGGG", "red", "0x1FFFFFFFF", "-5"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestNewColorResult(t *testing.T) {
	c := NewColorResult(0x80FF8040)

	if c.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", c.Hex)
	}
	if c.ARGB != "0x80FF8040" {
		t.Errorf("ARGB: got %s, want 0x80FF8040", c.ARGB)
	}
	if c.RGB != (RGBColor{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %+v", c.RGB)
	}
	if c.RGBA.A != 0x80 {
		t.Errorf("RGBA.A: got %d, want 128", c.RGBA.A)
	}
}

func TestNewColorResult_KnownHues(t *testing.T) {
	tests := []struct {
		name    string
		argb    uint32
		wantHue int
		wantS   int
		wantL   int
	}{
		{"pure red", 0xFFFF0000, 0, 100, 50},
		{"pure green", 0xFF00FF00, 120, 100, 50},
		{"pure blue", 0xFF0000FF, 240, 100, 50},
		{"white", 0xFFFFFFFF, 0, 0, 100},
		{"black", 0xFF000000, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsl := NewColorResult(tt.argb).HSL
			if hsl.H != tt.wantHue || hsl.S != tt.wantS || hsl.L != tt.wantL {
				t.Errorf("HSL: got %+v, want {%d %d %d}", hsl, tt.wantHue, tt.wantS, tt.wantL)
			}
		})
	}
}

func TestSampleColor(t *testing.T) {
	buf := pixelsearch.NewARGB(10, 10)
	buf.Set(4, 7, 0xFF123456)

	c, err := SampleColor(buf, 4, 7)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if c.Hex != "#123456" {
		t.Errorf("Hex: got %s, want #123456", c.Hex)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	buf := pixelsearch.NewARGB(100, 100)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(buf, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

type failingSource struct{ *pixelsearch.ARGB }

func (failingSource) Lock() (pixelsearch.View, error) { return nil, errors.New("busy") }

func TestSampleColorLocked(t *testing.T) {
	buf := pixelsearch.NewARGB(2, 2)
	buf.Set(1, 1, 0xFF00FF00)

	c, err := SampleColorLocked(buf, 1, 1)
	if err != nil {
		t.Fatalf("SampleColorLocked failed: %v", err)
	}
	if c.Hex != "#00FF00" {
		t.Errorf("Hex: got %s, want #00FF00", c.Hex)
	}

	// The lock must have been released: Set takes the write lock.
	buf.Set(0, 0, 0xFFFFFFFF)

	if _, err := SampleColorLocked(failingSource{buf}, 0, 0); err == nil {
		t.Error("SampleColorLocked should fail when the lock fails")
	}
}
