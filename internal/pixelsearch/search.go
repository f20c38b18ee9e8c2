package pixelsearch

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors returned by Search and SearchSource. Wrapped errors carry
// the offending values; compare with errors.Is.
var (
	ErrInvalidBuffer    = errors.New("invalid buffer dimensions")
	ErrInvalidTolerance = errors.New("invalid tolerance")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInternal         = errors.New("internal search failure")
)

// MaxTolerance is the largest per-channel tolerance.
const MaxTolerance = 255

// Options controls a search.
type Options struct {
	// Direction is the traversal order. Zero means TopLeftRows.
	Direction Direction

	// Tolerance is the per-channel distance, 0..255, within which a pixel
	// still matches. Zero requires an exact RGB match.
	Tolerance int

	// Region limits the scan to a rectangle of the buffer. Nil scans the
	// whole buffer. Coordinates in Result are always buffer coordinates.
	Region *image.Rectangle
}

// Result is the outcome of a search that ran to completion.
type Result struct {
	Found bool `json:"found"`
	X     int  `json:"x"`
	Y     int  `json:"y"`
}

// Search scans v for the first pixel whose RGB value matches target.
//
// Not finding a pixel returns Result{Found: false} and a nil error. A
// non-nil error is always returned with a zero Result.
func Search(v View, target uint32, opts Options) (Result, error) {
	g, err := validate(v.Width(), v.Height(), opts)
	if err != nil {
		return Result{}, err
	}
	return scan(v, target, g, opts)
}

// SearchSource locks src, searches it, and unlocks it.
//
// Unlock runs exactly once after a successful Lock, whether the scan finds
// a pixel, exhausts the buffer or fails. Invalid input is rejected before
// the buffer is locked. An Unlock failure is reported as ErrInternal and
// discards the result.
func SearchSource(src Source, target uint32, opts Options) (res Result, err error) {
	w, h := src.Dimensions()
	g, err := validate(w, h, opts)
	if err != nil {
		return Result{}, err
	}

	v, err := src.Lock()
	if err != nil {
		return Result{}, fmt.Errorf("%w: lock: %v", ErrInternal, err)
	}
	defer func() {
		if uerr := src.Unlock(v); uerr != nil && err == nil {
			res, err = Result{}, fmt.Errorf("%w: unlock: %v", ErrInternal, uerr)
		}
	}()

	if v.Width() != w || v.Height() != h {
		return Result{}, fmt.Errorf("%w: locked view is %dx%d, source reported %dx%d",
			ErrInternal, v.Width(), v.Height(), w, h)
	}
	return scan(v, target, g, opts)
}

// SearchCode is the integer form of SearchSource. Direction codes outside
// 1..8 are aliased with AliasDirection. The returned coordinates are only
// meaningful when status is StatusFound; otherwise they are zero.
func SearchCode(src Source, target uint32, direction, tolerance int) (status, x, y int) {
	res, err := SearchSource(src, target, Options{
		Direction: AliasDirection(direction),
		Tolerance: tolerance,
	})
	if status = StatusOf(res, err); status != StatusFound {
		return status, 0, 0
	}
	return status, res.X, res.Y
}

func validate(width, height int, opts Options) (geometry, error) {
	if width <= 0 || height <= 0 {
		return geometry{}, fmt.Errorf("%w: %dx%d", ErrInvalidBuffer, width, height)
	}
	if opts.Tolerance < 0 || opts.Tolerance > MaxTolerance {
		return geometry{}, fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidTolerance, opts.Tolerance, MaxTolerance)
	}
	if r := opts.Region; r != nil {
		if r.Empty() || !r.In(image.Rect(0, 0, width, height)) {
			return geometry{}, fmt.Errorf("%w: region %v outside %dx%d buffer", ErrInvalidBuffer, *r, width, height)
		}
	}

	d := opts.Direction
	if d == 0 {
		d = TopLeftRows
	}
	if !d.Valid() {
		return geometry{}, fmt.Errorf("%w: %d not in [1,8]", ErrInvalidDirection, int(d))
	}
	return geometries[d], nil
}

// scan runs the traversal over already validated input.
func scan(v View, target uint32, g geometry, opts Options) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	var origin image.Point
	if opts.Region != nil {
		origin = opts.Region.Min
		v = region{View: v, rect: *opts.Region}
	}

	match := newMatcher(target, opts.Tolerance)
	walk(v.Width(), v.Height(), g, func(x, y int) bool {
		if match(v.Pixel32(x, y)) {
			res = Result{Found: true, X: origin.X + x, Y: origin.Y + y}
			return false
		}
		return true
	})
	return res, nil
}

// newMatcher returns a predicate reporting whether a pixel's RGB matches
// target within tolerance. Alpha is ignored on both sides.
func newMatcher(target uint32, tolerance int) func(uint32) bool {
	target &= 0x00FFFFFF
	if tolerance == 0 {
		return func(p uint32) bool { return p&0x00FFFFFF == target }
	}

	rLo, rHi := window(uint8(target>>16), tolerance)
	gLo, gHi := window(uint8(target>>8), tolerance)
	bLo, bHi := window(uint8(target), tolerance)

	return func(p uint32) bool {
		r, g, b := uint8(p>>16), uint8(p>>8), uint8(p)
		return r >= rLo && r <= rHi &&
			g >= gLo && g <= gHi &&
			b >= bLo && b <= bHi
	}
}

// window is the inclusive range [c-tol, c+tol] clamped to [0,255].
func window(c uint8, tol int) (lo, hi uint8) {
	l, h := int(c)-tol, int(c)+tol
	if l < 0 {
		l = 0
	}
	if h > 0xFF {
		h = 0xFF
	}
	return uint8(l), uint8(h)
}
