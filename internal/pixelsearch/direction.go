package pixelsearch

import "fmt"

// Direction selects the traversal order of a search.
//
// The zero value is treated as TopLeftRows by Search.
type Direction int

const (
	TopLeftRows        Direction = 1 // rows top→bottom, left→right
	BottomLeftRows     Direction = 2 // rows bottom→top, left→right
	BottomRightRows    Direction = 3 // rows bottom→top, right→left
	TopRightRows       Direction = 4 // rows top→bottom, right→left
	TopLeftColumns     Direction = 5 // columns left→right, top→bottom
	BottomLeftColumns  Direction = 6 // columns left→right, bottom→top
	BottomRightColumns Direction = 7 // columns right→left, bottom→top
	TopRightColumns    Direction = 8 // columns right→left, top→bottom
)

// geometry is the traversal shape of one Direction.
type geometry struct {
	columns  bool // x is the outer loop
	reverseX bool // x runs from width-1 down to 0
	reverseY bool // y runs from height-1 down to 0
}

var geometries = [...]geometry{
	TopLeftRows:        {columns: false, reverseX: false, reverseY: false},
	BottomLeftRows:     {columns: false, reverseX: false, reverseY: true},
	BottomRightRows:    {columns: false, reverseX: true, reverseY: true},
	TopRightRows:       {columns: false, reverseX: true, reverseY: false},
	TopLeftColumns:     {columns: true, reverseX: false, reverseY: false},
	BottomLeftColumns:  {columns: true, reverseX: false, reverseY: true},
	BottomRightColumns: {columns: true, reverseX: true, reverseY: true},
	TopRightColumns:    {columns: true, reverseX: true, reverseY: false},
}

var directionNames = [...]string{
	TopLeftRows:        "top-left-rows",
	BottomLeftRows:     "bottom-left-rows",
	BottomRightRows:    "bottom-right-rows",
	TopRightRows:       "top-right-rows",
	TopLeftColumns:     "top-left-columns",
	BottomLeftColumns:  "bottom-left-columns",
	BottomRightColumns: "bottom-right-columns",
	TopRightColumns:    "top-right-columns",
}

// Valid reports whether d is one of the eight traversal orders.
func (d Direction) Valid() bool {
	return d >= TopLeftRows && d <= TopRightColumns
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts an integer code to a Direction, rejecting codes
// outside 1..8.
func ParseDirection(code int) (Direction, error) {
	d := Direction(code)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d not in [1,8]", ErrInvalidDirection, code)
	}
	return d, nil
}

// AliasDirection maps any integer code onto one of the eight directions
// using the legacy modulo rule, so 0 behaves like 4 and 9 like 5.
//
// Codes 1..8 map onto themselves.
func AliasDirection(code int) Direction {
	m := code % 4
	reverseY := m > 1
	reverseX := m%3 == 0
	columns := code > 4

	for d := TopLeftRows; d <= TopRightColumns; d++ {
		g := geometries[d]
		if g.columns == columns && g.reverseX == reverseX && g.reverseY == reverseY {
			return d
		}
	}
	// Unreachable: the table covers all eight combinations.
	return TopLeftRows
}

// Walk calls fn for every coordinate of a width×height grid in the order
// given by d, stopping early when fn returns false. Invalid directions and
// empty grids visit nothing.
func Walk(width, height int, d Direction, fn func(x, y int) bool) {
	if !d.Valid() || width <= 0 || height <= 0 {
		return
	}
	walk(width, height, geometries[d], fn)
}

func walk(width, height int, g geometry, fn func(x, y int) bool) {
	outer, inner := height, width
	if g.columns {
		outer, inner = width, height
	}

	for p := 0; p < outer; p++ {
		for n := 0; n < inner; n++ {
			x, y := n, p
			if g.columns {
				x, y = p, n
			}
			if g.reverseX {
				x = width - 1 - x
			}
			if g.reverseY {
				y = height - 1 - y
			}
			if !fn(x, y) {
				return
			}
		}
	}
}
