package world

// Rect represents a rectangular room spanning (X1,Y1) to (X2,Y2) inclusive.
// The outer ring is the room's wall; only the interior is carved open.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rect from an origin and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center coordinates of the room.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the given point is inside the room, walls included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Intersects returns true if this room overlaps with another room.
// Bounds are inclusive: two rooms sharing an edge count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
