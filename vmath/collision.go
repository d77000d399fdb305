package vmath

// SegmentsIntersect reports whether segment AB crosses segment CD
// Both parametric coefficients must lie strictly inside (0,1): touching at an
// endpoint is not a crossing. det == 0 (parallel or collinear) never crosses,
// even when the segments overlap
func SegmentsIntersect(a, b, c, d Point) bool {
	det := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)
	if det == 0 {
		return false
	}

	lambda := ((d.Y-c.Y)*(d.X-a.X) + (c.X-d.X)*(d.Y-a.Y)) / det
	gamma := ((a.Y-b.Y)*(d.X-a.X) + (b.X-a.X)*(d.Y-a.Y)) / det

	return (0 < lambda && lambda < 1) && (0 < gamma && gamma < 1)
}
