package engine

import (
	"github.com/lixenwraith/fruit-fighter/component"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

// EffectView is a juice marker as seen by renderers
type EffectView struct {
	X    float64
	Y    float64
	Rune rune
	Fade float64 // timer / lifetime, in (0, 1]
}

// Snapshot is a consistent read-only copy of the simulation between updates
type Snapshot struct {
	Frame    uint64
	Viewport Viewport
	Score    int
	Lives    int
	Phase    Phase

	Fruits  []component.FruitComponent
	Effects []EffectView
	Path    []vmath.Point
}

// SnapshotContributor is implemented by systems owning renderable collections
// Called under the game mutex; implementations must copy, never alias
type SnapshotContributor interface {
	Contribute(snap *Snapshot)
}
