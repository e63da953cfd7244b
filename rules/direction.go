package rules

import "strings"

// Direction is the heading of the snake head.
type Direction string

const (
	// DirectionNone means no input was given, or before the first turn, that no
	// heading has been chosen yet.
	DirectionNone Direction = ""
	// DirectionUp moves the head towards row 0.
	DirectionUp Direction = "up"
	// DirectionDown moves the head towards the last row.
	DirectionDown Direction = "down"
	// DirectionLeft moves the head towards column 0.
	DirectionLeft Direction = "left"
	// DirectionRight moves the head towards the last column.
	DirectionRight Direction = "right"
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Opposite returns the heading that would reverse d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionNone
}

// ParseDirection converts a direction name into a Direction. Unknown names
// return DirectionNone and false.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return DirectionNone, false
	}
	return d, true
}

// KeyDirection maps the w/a/s/d keys to directions.
func KeyDirection(r rune) Direction {
	switch r {
	case 'w', 'W':
		return DirectionUp
	case 'a', 'A':
		return DirectionLeft
	case 's', 'S':
		return DirectionDown
	case 'd', 'D':
		return DirectionRight
	}
	return DirectionNone
}
