// Package board holds the value types shared by the rules, the renderers and
// the recorder: grid points, the snake, walls and the frame snapshot.
package board

import "fmt"

// Point is a single grid cell addressed by column (X) and row (Y).
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Step returns the point one cell away in the given direction.
func (p Point) Step(d Direction) Point {
	switch d {
	case DirectionUp:
		return Point{X: p.X, Y: p.Y - 1}
	case DirectionDown:
		return Point{X: p.X, Y: p.Y + 1}
	case DirectionLeft:
		return Point{X: p.X - 1, Y: p.Y}
	case DirectionRight:
		return Point{X: p.X + 1, Y: p.Y}
	}
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is a heading the snake can travel in.
type Direction string

const (
	// DirectionUp moves towards row 0
	DirectionUp Direction = "up"
	// DirectionDown moves away from row 0
	DirectionDown Direction = "down"
	// DirectionLeft moves towards column 0
	DirectionLeft Direction = "left"
	// DirectionRight moves away from column 0
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

// Opposite returns the direct reverse of d.
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
	return d
}
