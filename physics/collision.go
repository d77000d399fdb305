package physics

import (
	"github.com/lixenwraith/fruit-fighter/component"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

// PathHitsPolygon reports whether any consecutive segment of path crosses an
// edge of poly. Stops at the first crossing
func PathHitsPolygon(poly vmath.Polygon, path []vmath.Point) bool {
	for i := 0; i+1 < len(path); i++ {
		if poly.IntersectsSegment(path[i], path[i+1]) {
			return true
		}
	}
	return false
}

// FruitHitbox builds the hitbox of a fruit using the size captured at spawn
func FruitHitbox(f *component.FruitComponent) vmath.Polygon {
	return Hitbox(f.Glyph, vmath.Point{X: f.X, Y: f.Y}, HitboxScale(f.Size))
}
