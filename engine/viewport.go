package engine

import (
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/physics"
)

// Viewport is the playfield size in pixels
// Derived values are recomputed on read so a resize takes effect on the next spawn
type Viewport struct {
	Width  float64
	Height float64
}

// BaseSize returns the glyph size for fruits spawned at this width
func (v Viewport) BaseSize() float64 {
	return physics.BaseSize(v.Width)
}

// HitboxScale returns the polygon scale for fruits spawned at this width
func (v Viewport) HitboxScale() float64 {
	return physics.HitboxScale(v.BaseSize())
}

// SpawnXRange returns the horizontal spawn interval
// hi < lo on narrow viewports; callers skip the spawn in that case
func (v Viewport) SpawnXRange() (lo, hi float64) {
	return parameter.SpawnMargin, v.Width - parameter.SpawnMargin - v.BaseSize()
}

// SpawnYRange returns the vertical spawn interval, the top quarter of the viewport
func (v Viewport) SpawnYRange() (lo, hi float64) {
	return 0, v.Height * parameter.SpawnHeightFraction
}

// SpeedScale normalizes fall speed to the viewport height
func (v Viewport) SpeedScale() float64 {
	return v.Height / parameter.SpeedReferenceHeight
}
