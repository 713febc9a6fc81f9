package rules

import (
	"errors"
	"math/rand"

	"github.com/battlesnakeio/arcade/board"
)

// ErrInvalidGrid is returned when the pixel dimensions do not divide into
// whole cells.
var ErrInvalidGrid = errors.New("rules: grid dimensions must be positive and divisible by the cell size")

// Grid is the fixed rectangular board. Width and Height are in pixels,
// CellSize is the pixel size of one cell.
type Grid struct {
	Width    int32
	Height   int32
	CellSize int32
}

// NewGrid validates the dimensions and returns the grid.
func NewGrid(width, height, cellSize int32) (Grid, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return Grid{}, ErrInvalidGrid
	}
	if width%cellSize != 0 || height%cellSize != 0 {
		return Grid{}, ErrInvalidGrid
	}
	return Grid{Width: width, Height: height, CellSize: cellSize}, nil
}

// Cols is the number of columns.
func (g Grid) Cols() int32 { return g.Width / g.CellSize }

// Rows is the number of rows.
func (g Grid) Rows() int32 { return g.Height / g.CellSize }

// Cells is the number of cells on the board.
func (g Grid) Cells() int { return int(g.Cols()) * int(g.Rows()) }

// Contains reports whether p lies within [0,cols) x [0,rows).
func (g Grid) Contains(p board.Point) bool {
	return p.X >= 0 && p.X < g.Cols() && p.Y >= 0 && p.Y < g.Rows()
}

// RandomPoint samples a cell uniformly over the whole board.
func (g Grid) RandomPoint(rng *rand.Rand) board.Point {
	return board.Point{
		X: rng.Int31n(g.Cols()),
		Y: rng.Int31n(g.Rows()),
	}
}

// RandomPointIn samples a cell uniformly from the inclusive ranges
// [minX,maxX] x [minY,maxY]. It returns false when either range is empty.
func (g Grid) RandomPointIn(rng *rand.Rand, minX, maxX, minY, maxY int32) (board.Point, bool) {
	if maxX < minX || maxY < minY {
		return board.Point{}, false
	}
	return board.Point{
		X: minX + rng.Int31n(maxX-minX+1),
		Y: minY + rng.Int31n(maxY-minY+1),
	}, true
}

// ToPixels returns the top left pixel of a cell.
func (g Grid) ToPixels(p board.Point) (int32, int32) {
	return p.X * g.CellSize, p.Y * g.CellSize
}

// FromPixels returns the cell containing the pixel. Pixels left of or above
// the board map to negative cells.
func (g Grid) FromPixels(x, y int32) board.Point {
	return board.Point{X: floorDiv(x, g.CellSize), Y: floorDiv(y, g.CellSize)}
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
