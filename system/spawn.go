package system

import (
	"sync/atomic"

	"github.com/lixenwraith/fruit-fighter/component"
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/event"
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/physics"
	"github.com/lixenwraith/fruit-fighter/status"
)

// SpawnSystem owns the falling fruits
// Frame tick advances and culls them, spawn tick creates one while Active
type SpawnSystem struct {
	fruits []component.FruitComponent
	nextID uint64

	// Cached metric pointers
	statSpawned *atomic.Int64
	statSkipped *atomic.Int64
	statActive  *atomic.Int64
}

func NewSpawnSystem(reg *status.Registry) *SpawnSystem {
	return &SpawnSystem{
		statSpawned: reg.Ints.Get("spawn.count"),
		statSkipped: reg.Ints.Get("spawn.skipped"),
		statActive:  reg.Ints.Get("spawn.active"),
	}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFrameTick,
		event.EventSpawnTick,
		event.EventGameReset,
	}
}

func (s *SpawnSystem) HandleEvent(g *engine.Game, ev event.GameEvent) {
	switch ev.Type {
	case event.EventFrameTick:
		s.advance(g)
	case event.EventSpawnTick:
		if g.State.Phase() == engine.PhaseActive {
			s.spawn(g)
		}
	case event.EventGameReset:
		s.fruits = s.fruits[:0]
	}
	s.statActive.Store(int64(len(s.fruits)))
}

// advance moves every fruit down one tick and removes those below the viewport
// Each removal is reported as a miss; GameState ignores misses outside Active
func (s *SpawnSystem) advance(g *engine.Game) {
	height := g.Viewport().Height
	kept := s.fruits[:0]
	for _, f := range s.fruits {
		physics.ApplyFall(&f)
		if physics.BelowViewport(&f, height) {
			g.State.RecordMiss()
			continue
		}
		kept = append(kept, f)
	}
	clear(s.fruits[len(kept):])
	s.fruits = kept
}

// spawn creates one fruit at a random position in the spawn band
// A viewport too narrow for the margins skips the spawn
func (s *SpawnSystem) spawn(g *engine.Game) {
	vp := g.Viewport()
	rng := g.Rand()

	xLo, xHi := vp.SpawnXRange()
	if xHi < xLo {
		s.statSkipped.Add(1)
		return
	}
	yLo, yHi := vp.SpawnYRange()

	tier := SpeedTierFor(g.State.Score())
	s.nextID++
	s.fruits = append(s.fruits, component.FruitComponent{
		ID:    s.nextID,
		X:     rng.Range(xLo, xHi),
		Y:     rng.Range(yLo, yHi),
		Speed: rng.Range(tier.MinSpeed, tier.MaxSpeed) * vp.SpeedScale(),
		Glyph: component.Glyphs[rng.Intn(len(component.Glyphs))],
		Size:  vp.BaseSize(),
	})
	s.statSpawned.Add(1)
}

// SpeedTierFor returns the highest tier whose threshold the score has reached
func SpeedTierFor(score int) parameter.SpeedTier {
	tier := parameter.SpeedTiers[0]
	for _, t := range parameter.SpeedTiers {
		if score >= t.MinScore {
			tier = t
		}
	}
	return tier
}

// RemoveIf deletes every fruit for which fn returns true, preserving storage order
// Returns the number removed
func (s *SpawnSystem) RemoveIf(fn func(f *component.FruitComponent) bool) int {
	kept := s.fruits[:0]
	for i := range s.fruits {
		if fn(&s.fruits[i]) {
			continue
		}
		kept = append(kept, s.fruits[i])
	}
	removed := len(s.fruits) - len(kept)
	clear(s.fruits[len(kept):])
	s.fruits = kept
	return removed
}

// Fruits returns a copy of the active fruits in storage order
func (s *SpawnSystem) Fruits() []component.FruitComponent {
	out := make([]component.FruitComponent, len(s.fruits))
	copy(out, s.fruits)
	return out
}

// Add inserts a fruit as-is, assigning an ID when zero
func (s *SpawnSystem) Add(f component.FruitComponent) {
	if f.ID == 0 {
		s.nextID++
		f.ID = s.nextID
	}
	s.fruits = append(s.fruits, f)
}

func (s *SpawnSystem) Contribute(snap *engine.Snapshot) {
	snap.Fruits = s.Fruits()
}
