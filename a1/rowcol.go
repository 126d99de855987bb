package a1

import (
	"fmt"
	"strconv"
)

// RowCol is a 1-based (row, column) coordinate.
type RowCol struct {
	Row int
	Col int
}

// TopLeft is the first cell of a worksheet, A1.
var TopLeft = RowCol{Row: 1, Col: 1}

// Offset is the signed distance between two coordinates.
type Offset struct {
	Rows int
	Cols int
}

// Size is the inclusive extent of a rectangle of cells.
type Size struct {
	Height int
	Width  int
}

func (rc RowCol) String() string {
	return "(" + strconv.Itoa(rc.Row) + "," + strconv.Itoa(rc.Col) + ")"
}

// FormatA1 returns rc as a relative A1 reference such as "C7".
func (rc RowCol) FormatA1() string {
	return MustColumnName(rc.Col) + strconv.Itoa(rc.Row)
}

// In reports whether rc lies within the rectangle spanned by a (top-left)
// and b (bottom-right). A rectangle whose corners are given in the wrong
// order contains nothing.
func (rc RowCol) In(a, b RowCol) bool {
	return a.Col <= b.Col && a.Row <= b.Row &&
		rc.Col >= a.Col && rc.Row >= a.Row &&
		rc.Col <= b.Col && rc.Row <= b.Row
}

// OffsetTo returns how many rows and columns separate rc from other.
func (rc RowCol) OffsetTo(other RowCol) Offset {
	return OffsetWith(rc, other, func(rows, cols int) Offset {
		return Offset{Rows: rows, Cols: cols}
	})
}

// Size returns the height and width of the rectangle from rc to other,
// both corners included. other must not lie above or left of rc.
func (rc RowCol) Size(other RowCol) (Size, error) {
	return SizeWith(rc, other, func(height, width int) Size {
		return Size{Height: height, Width: width}
	})
}

// Add returns rc moved by off.
func (rc RowCol) Add(off Offset) RowCol {
	return RowCol{Row: rc.Row + off.Rows, Col: rc.Col + off.Cols}
}

// OffsetWith passes the signed row and column deltas from a to b to f.
func OffsetWith[T any](a, b RowCol, f func(rows, cols int) T) T {
	return f(b.Row-a.Row, b.Col-a.Col)
}

// SizeWith passes the inclusive height and width from a to b to f. It fails
// with ErrNegativeSpan without calling f when b lies above or left of a.
func SizeWith[T any](a, b RowCol, f func(height, width int) T) (T, error) {
	var zero T
	y := b.Row - a.Row
	if y < 0 {
		return zero, fmt.Errorf("height between %v and %v: %w", a, b, ErrNegativeSpan)
	}
	x := b.Col - a.Col
	if x < 0 {
		return zero, fmt.Errorf("width between %v and %v: %w", a, b, ErrNegativeSpan)
	}
	return f(y+1, x+1), nil
}
