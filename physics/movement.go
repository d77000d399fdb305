package physics

import "github.com/lixenwraith/fruit-fighter/component"

// ApplyFall advances a fruit by one frame tick
// Speed is clamped at zero so a fruit never moves upward
func ApplyFall(f *component.FruitComponent) {
	if f.Speed > 0 {
		f.Y += f.Speed
	}
}

// BelowViewport reports whether a fruit has crossed the bottom boundary
func BelowViewport(f *component.FruitComponent, viewportHeight float64) bool {
	return f.Y > viewportHeight
}
