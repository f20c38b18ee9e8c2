package pixelsearch

import "errors"

// Status codes of SearchCode. Negative codes other than the named ones are
// reserved for internal failures.
const (
	StatusFound            = 0
	StatusNotFound         = -1
	StatusInternal         = -1000
	StatusInvalidBuffer    = -1001
	StatusInvalidTolerance = -1002
	StatusInvalidDirection = -1003
)

// Status maps the error of a Search call to its status code. A nil error
// maps to StatusNotFound, since found results carry no error and callers
// check Result.Found first.
func Status(err error) int {
	switch {
	case err == nil:
		return StatusNotFound
	case errors.Is(err, ErrInvalidBuffer):
		return StatusInvalidBuffer
	case errors.Is(err, ErrInvalidTolerance):
		return StatusInvalidTolerance
	case errors.Is(err, ErrInvalidDirection):
		return StatusInvalidDirection
	default:
		return StatusInternal
	}
}

// StatusOf returns the status code of a completed search.
func StatusOf(res Result, err error) int {
	if err == nil && res.Found {
		return StatusFound
	}
	return Status(err)
}
