package system

import (
	"github.com/lixenwraith/fruit-fighter/component"
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/event"
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/physics"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

// FruitStore is the mutable fruit collection tested for hits
type FruitStore interface {
	RemoveIf(fn func(f *component.FruitComponent) bool) int
}

// PathSource supplies the current blade path
type PathSource interface {
	Current() []vmath.Point
}

// EffectSink receives a hit marker position
type EffectSink interface {
	Spawn(x, y float64)
}

// CollisionSystem slices fruits whose hitbox is crossed by the gesture path
// Runs on frame tick after SpawnSystem advance, only while Active
type CollisionSystem struct {
	fruits FruitStore
	trail  PathSource
	juice  EffectSink
}

func NewCollisionSystem(fruits FruitStore, trail PathSource, juice EffectSink) *CollisionSystem {
	return &CollisionSystem{
		fruits: fruits,
		trail:  trail,
		juice:  juice,
	}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFrameTick,
	}
}

func (s *CollisionSystem) HandleEvent(g *engine.Game, ev event.GameEvent) {
	if ev.Type != event.EventFrameTick || g.State.Phase() != engine.PhaseActive {
		return
	}

	path := s.trail.Current()
	if len(path) < 2 {
		return
	}

	s.fruits.RemoveIf(func(f *component.FruitComponent) bool {
		if !physics.PathHitsPolygon(physics.FruitHitbox(f), path) {
			return false
		}
		s.juice.Spawn(f.X, f.Y)
		g.State.AddScore(parameter.ScorePerHit)
		return true
	})
}
