package board

// Orientation is the axis a wall runs along.
type Orientation string

const (
	// Horizontal walls grow along X.
	Horizontal Orientation = "h"
	// Vertical walls grow along Y.
	Vertical Orientation = "v"
)

// Wall is a contiguous run of cells starting at Origin. Coordinates are
// generated up front so the whole run can be validated before it is
// committed.
type Wall struct {
	Orientation Orientation
	Origin      Point
	Cells       []Point
}

// NewWall builds the cells of a wall of the given length.
func NewWall(orientation Orientation, origin Point, length int) Wall {
	cells := make([]Point, 0, length)
	for i := int32(0); i < int32(length); i++ {
		if orientation == Horizontal {
			cells = append(cells, Point{X: origin.X + i, Y: origin.Y})
		} else {
			cells = append(cells, Point{X: origin.X, Y: origin.Y + i})
		}
	}
	return Wall{
		Orientation: orientation,
		Origin:      origin,
		Cells:       cells,
	}
}
