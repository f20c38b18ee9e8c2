package imaging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixel-search-mcp/internal/pixelsearch"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
// ARGB is the packed 32-bit word as stored in a search buffer, so it can be
// passed back unchanged as a search target.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	ARGB string    `json:"argb"` // Packed word "0xAARRGGBB"
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// ParseColor converts a color string to a packed ARGB word.
//
// Accepted forms:
//   - "#RGB" and "#RRGGBB": CSS hex, alpha set to 0xFF
//   - "#AARRGGBB": hex with explicit alpha
//   - "0xRRGGBB" or "0xAARRGGBB": packed word as written
//   - decimal, e.g. "16711680": packed word as written
//
// Alpha never affects a search; it is kept so the value round-trips.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color string")
	}

	if strings.HasPrefix(s, "#") {
		switch len(s) {
		case 4, 7:
			c, err := colorful.Hex(strings.ToLower(s))
			if err != nil {
				return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
			}
			r, g, b := c.RGB255()
			return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b), nil
		case 9:
			v, err := strconv.ParseUint(s[1:], 16, 32)
			if err != nil {
				return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
			}
			return uint32(v), nil
		default:
			return 0, fmt.Errorf("invalid hex color %q: want #RGB, #RRGGBB or #AARRGGBB", s)
		}
	}

	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}

// NewColorResult describes a packed ARGB word in every representation.
func NewColorResult(argb uint32) ColorResult {
	a, r, g, b := uint8(argb>>24), uint8(argb>>16), uint8(argb>>8), uint8(argb)

	return ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", r, g, b),
		ARGB: fmt.Sprintf("0x%08X", argb),
		RGB:  RGBColor{R: r, G: g, B: b},
		RGBA: RGBAColor{R: r, G: g, B: b, A: a},
		HSL:  rgbToHSL(r, g, b),
	}
}

// SampleColor reads the pixel at (x, y) of a search buffer.
//
// Returns an error if the coordinates are outside the buffer.
func SampleColor(v pixelsearch.View, x, y int) (*ColorResult, error) {
	if x < 0 || x >= v.Width() || y < 0 || y >= v.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, v.Width(), v.Height())
	}
	c := NewColorResult(v.Pixel32(x, y))
	return &c, nil
}

// SampleColorLocked samples a pixel of a Source while holding its lock.
func SampleColorLocked(src pixelsearch.Source, x, y int) (*ColorResult, error) {
	v, err := src.Lock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock buffer: %w", err)
	}
	defer src.Unlock(v)
	return SampleColor(v, x, y)
}

// rgbToHSL converts 8-bit RGB values to whole-number HSL, truncating hue
// to degrees and saturation and lightness to percent.
func rgbToHSL(r, g, b uint8) HSLColor {
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	h, s, l := c.Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
