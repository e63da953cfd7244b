package rules

import "fmt"

// Point is a (row, column) board coordinate, 0-indexed.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move returns the neighbour of p in direction d on a width x height board.
// Leaving an edge re-enters from the opposite edge.
func (p Point) Move(d Direction, width, height int) Point {
	switch d {
	case DirectionUp:
		p.Row = wrap(p.Row-1, height)
	case DirectionDown:
		p.Row = wrap(p.Row+1, height)
	case DirectionLeft:
		p.Col = wrap(p.Col-1, width)
	case DirectionRight:
		p.Col = wrap(p.Col+1, width)
	}
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
