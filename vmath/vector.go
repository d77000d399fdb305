package vmath

// Point is a position in viewport pixel space, y grows downward
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by f
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Cross returns the z component of the 2D cross product a x b
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Rect is an axis-aligned bounding box, Min inclusive, Max inclusive
type Rect struct {
	Min, Max Point
}

// Contains checks if p lies within the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
