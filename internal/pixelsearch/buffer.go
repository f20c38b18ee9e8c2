package pixelsearch

import (
	"encoding/binary"
	"fmt"
	"image"
	"sync"

	"github.com/anthonynsimon/bild/clone"
)

// View is read access to a width×height grid of 32-bit ARGB pixels.
//
// Pixel32 is only called with 0 <= x < Width() and 0 <= y < Height().
type View interface {
	Width() int
	Height() int
	// Stride is the number of bytes between the starts of two rows.
	Stride() int
	Pixel32(x, y int) uint32
}

// Source is a buffer that must be locked before its pixels can be read.
//
// Lock returns a View that is valid until the matching Unlock.
type Source interface {
	Dimensions() (width, height int)
	Lock() (View, error)
	Unlock(View) error
}

// ARGB is an in-memory 32-bit ARGB pixel buffer.
//
// Pixel (x, y) is stored at byte offset y*stride+x*4 as a little-endian word,
// so memory holds B, G, R, A and the word reads as 0xAARRGGBB. Rows may
// be padded when stride exceeds width*4.
//
// ARGB is safe for concurrent use. Lock takes a shared lock, Set takes an
// exclusive one, so a pixel never changes while a search holds the buffer.
type ARGB struct {
	mu     sync.RWMutex
	pix    []byte
	width  int
	height int
	stride int
}

// NewARGB allocates a zeroed, tightly packed width×height buffer.
func NewARGB(width, height int) *ARGB {
	b, err := NewARGBStride(width, height, width*4)
	if err != nil {
		panic(err)
	}
	return b
}

// NewARGBStride allocates a zeroed buffer whose rows are stride bytes apart.
func NewARGBStride(width, height, stride int) (*ARGB, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBuffer, width, height)
	}
	if stride < width*4 {
		return nil, fmt.Errorf("%w: stride %d shorter than row of %d pixels", ErrInvalidBuffer, stride, width)
	}
	return &ARGB{
		pix:    make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// FromImage copies img into a new tightly packed ARGB buffer. Pixel (0, 0)
// of the buffer is img.Bounds().Min. Color channels are stored
// non-premultiplied, as decoded from the file.
func FromImage(img image.Image) *ARGB {
	var (
		pix           []uint8
		stride        int
		premultiplied bool
	)
	if n, ok := img.(*image.NRGBA); ok {
		pix, stride = n.Pix, n.Stride
	} else {
		rgba := clone.AsRGBA(img)
		pix, stride, premultiplied = rgba.Pix, rgba.Stride, true
	}

	bounds := img.Bounds()
	b := NewARGB(bounds.Dx(), bounds.Dy())

	for y := 0; y < b.height; y++ {
		src := pix[y*stride:]
		dst := b.pix[y*b.stride:]
		for x := 0; x < b.width; x++ {
			r, g, bl, a := src[x*4], src[x*4+1], src[x*4+2], src[x*4+3]
			if premultiplied && a != 0 && a != 0xFF {
				r = unpremultiply(r, a)
				g = unpremultiply(g, a)
				bl = unpremultiply(bl, a)
			}
			dst[x*4], dst[x*4+1], dst[x*4+2], dst[x*4+3] = bl, g, r, a
		}
	}
	return b
}

func unpremultiply(c, a uint8) uint8 {
	v := (uint32(c)*0xFF + uint32(a)/2) / uint32(a)
	if v > 0xFF {
		v = 0xFF
	}
	return uint8(v)
}

func (b *ARGB) Width() int  { return b.width }
func (b *ARGB) Height() int { return b.height }
func (b *ARGB) Stride() int { return b.stride }

// Pixel32 returns the ARGB word at (x, y). It does not lock.
func (b *ARGB) Pixel32(x, y int) uint32 {
	return binary.LittleEndian.Uint32(b.pix[y*b.stride+x*4:])
}

// Set stores argb at (x, y), waiting for any running search to finish.
// Coordinates outside the buffer are ignored.
func (b *ARGB) Set(x, y int, argb uint32) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.mu.Lock()
	binary.LittleEndian.PutUint32(b.pix[y*b.stride+x*4:], argb)
	b.mu.Unlock()
}

// Fill sets every pixel to argb.
func (b *ARGB) Fill(argb uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for y := 0; y < b.height; y++ {
		row := b.pix[y*b.stride:]
		for x := 0; x < b.width; x++ {
			binary.LittleEndian.PutUint32(row[x*4:], argb)
		}
	}
}

// Dimensions implements Source.
func (b *ARGB) Dimensions() (int, int) {
	return b.width, b.height
}

// Lock implements Source by taking a shared lock on the buffer.
func (b *ARGB) Lock() (View, error) {
	b.mu.RLock()
	return b, nil
}

// Unlock releases a lock taken by Lock.
func (b *ARGB) Unlock(v View) error {
	if v != View(b) {
		return fmt.Errorf("%w: unlock of foreign view", ErrInternal)
	}
	b.mu.RUnlock()
	return nil
}

// region restricts a View to a sub-rectangle. Coordinates passed to
// Pixel32 are relative to the rectangle's top-left corner.
type region struct {
	View
	rect image.Rectangle
}

func (r region) Width() int  { return r.rect.Dx() }
func (r region) Height() int { return r.rect.Dy() }

func (r region) Pixel32(x, y int) uint32 {
	return r.View.Pixel32(r.rect.Min.X+x, r.rect.Min.Y+y)
}
