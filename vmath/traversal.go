package vmath

// TraverseLine walks integer grid cells from (x1, y1) to (x2, y2) inclusive
// using Bresenham stepping. fn returning false stops the walk
func TraverseLine(x1, y1, x2, y2 int, fn func(x, y int) bool) {
	dx := x2 - x1
	dy := y2 - y1
	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	err := dx - dy
	x, y := x1, y1
	for {
		if !fn(x, y) {
			return
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += stepX
		}
		if e2 < dx {
			err += dx
			y += stepY
		}
	}
}
