package system

import "github.com/lixenwraith/fruit-fighter/engine"

// Systems holds the gameplay systems of one game
type Systems struct {
	Trail     *TrailSystem
	Spawn     *SpawnSystem
	Collision *CollisionSystem
	Juice     *JuiceSystem
}

// RegisterAll creates the gameplay systems and registers them with the game
// Registration order is the per-tick pipeline: advance, collision, effects decay
func RegisterAll(g *engine.Game) *Systems {
	s := &Systems{
		Trail: NewTrailSystem(),
		Spawn: NewSpawnSystem(g.Status),
		Juice: NewJuiceSystem(),
	}
	s.Collision = NewCollisionSystem(s.Spawn, s.Trail, s.Juice)

	g.AddSystem(s.Trail)
	g.AddSystem(s.Spawn)
	g.AddSystem(s.Collision)
	g.AddSystem(s.Juice)
	return s
}
