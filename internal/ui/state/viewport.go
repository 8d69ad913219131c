package state

// Rect is a screen region in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// RowAt maps a cell inside a bordered list to the list row under it. The top
// border occupies the first line, so row 0 starts one line below r.Y. The
// bottom border row is not a list row.
func (r Rect) RowAt(x, y int) (int, bool) {
	if !r.Contains(x, y) {
		return -1, false
	}
	row := y - r.Y - 1
	// The bottom border is not a list row; clicks on it are ignored.
	if row < 0 || row >= r.Height-2 {
		return row, false
	}
	return row, true
}
