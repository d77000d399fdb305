package vmath

// Polygon is an ordered vertex ring; the edge from last to first is implicit
type Polygon []Point

// Edge returns the i-th edge, wrapping the last vertex back to the first
func (p Polygon) Edge(i int) (Point, Point) {
	return p[i], p[(i+1)%len(p)]
}

// IntersectsSegment reports whether segment AB crosses any edge of the polygon,
// including the closing edge
func (p Polygon) IntersectsSegment(a, b Point) bool {
	for i := range p {
		c, d := p.Edge(i)
		if SegmentsIntersect(a, b, c, d) {
			return true
		}
	}
	return false
}

// Bounds returns the axis-aligned bounding box, zero Rect for empty polygons
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		r.Min.X = min(r.Min.X, v.X)
		r.Min.Y = min(r.Min.Y, v.Y)
		r.Max.X = max(r.Max.X, v.X)
		r.Max.Y = max(r.Max.Y, v.Y)
	}
	return r
}
