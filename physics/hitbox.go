package physics

import (
	"fmt"
	"math"

	"github.com/lixenwraith/fruit-fighter/component"
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

// Glyph outlines at scale 1.0, relative to the glyph baseline anchor
// Hand-tuned to each emoji silhouette; y is negative above the baseline
var (
	appleOutline = []vmath.Point{
		{X: 0, Y: -60}, {X: 50, Y: -85}, {X: 100, Y: -60},
		{X: 100, Y: -10}, {X: 50, Y: 15}, {X: 0, Y: -10},
	}

	bananaOutline = []vmath.Point{
		{X: 10, Y: -70}, {X: 30, Y: -80}, {X: 50, Y: -75},
		{X: 60, Y: -60}, {X: 85, Y: -30}, {X: 99, Y: 15},
		{X: 20, Y: 20}, {X: 10, Y: 0}, {X: 10, Y: -30},
	}

	watermelonOutline = []vmath.Point{
		{X: 10, Y: -40}, {X: 10, Y: -60}, {X: 40, Y: -80},
		{X: 60, Y: -50}, {X: 100, Y: -10}, {X: 30, Y: 10},
	}

	grapeOutline = []vmath.Point{
		{X: 15, Y: -70}, {X: 90, Y: -60}, {X: 90, Y: -20},
		{X: 100, Y: 0}, {X: 30, Y: 10},
	}

	kiwiOutline = pentagon(50, vmath.Point{X: 57, Y: -35})
)

// pentagon samples a regular pentagon of the given radius at five evenly
// spaced angles starting straight up, shifted by center
func pentagon(radius float64, center vmath.Point) []vmath.Point {
	points := make([]vmath.Point, 5)
	for i := range points {
		angle := (math.Pi*2/5)*float64(i) - math.Pi/2
		points[i] = vmath.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return points
}

// Hitbox returns the collision polygon of a glyph anchored at anchor
// Panics on a glyph outside the closed set
func Hitbox(g component.Glyph, anchor vmath.Point, scale float64) vmath.Polygon {
	var outline []vmath.Point
	switch g.(type) {
	case component.Apple:
		outline = appleOutline
	case component.Banana:
		outline = bananaOutline
	case component.Watermelon:
		outline = watermelonOutline
	case component.Grape:
		outline = grapeOutline
	case component.Kiwi:
		outline = kiwiOutline
	default:
		panic(fmt.Sprintf("physics: no hitbox for glyph %T", g))
	}

	poly := make(vmath.Polygon, len(outline))
	for i, v := range outline {
		poly[i] = anchor.Add(v.Scale(scale))
	}
	return poly
}

// BaseSize returns the glyph size for a viewport width, floored for tiny screens
func BaseSize(viewportWidth float64) float64 {
	return max(viewportWidth*parameter.BaseSizeWidthFactor, parameter.BaseSizeMin)
}

// HitboxScale converts a glyph base size into a hitbox scale factor
func HitboxScale(baseSize float64) float64 {
	return max(baseSize/parameter.HitboxReferenceSize, parameter.HitboxScaleMin)
}
