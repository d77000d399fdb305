package system

import (
	"testing"

	"github.com/lixenwraith/fruit-fighter/component"
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/event"
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

func TestSpawnGatedByPhase(t *testing.T) {
	w := newTestWorld(t, 1280, 800)

	w.push(event.EventSpawnTick)
	if n := len(w.sys.Spawn.Fruits()); n != 0 {
		t.Fatalf("fruits spawned in Idle = %d, want 0", n)
	}

	w.activate(t)
	w.push(event.EventSpawnTick)
	if n := len(w.sys.Spawn.Fruits()); n != 1 {
		t.Fatalf("fruits after spawn tick = %d, want 1", n)
	}
	if got := w.game.Status.Ints.Get("spawn.count").Load(); got != 1 {
		t.Errorf("spawn.count = %d, want 1", got)
	}
}

func TestSpawnBounds(t *testing.T) {
	const width, height = 1500.0, 1000.0
	w := newTestWorld(t, width, height)
	w.activate(t)

	vp := w.game.Snapshot().Viewport
	base := vp.BaseSize()
	speedScale := height / parameter.SpeedReferenceHeight
	kinds := make(map[string]bool)

	for i := 0; i < 200; i++ {
		w.push(event.EventSpawnTick)
	}
	fruits := w.sys.Spawn.Fruits()
	if len(fruits) != 200 {
		t.Fatalf("len(fruits) = %d, want 200", len(fruits))
	}

	var lastID uint64
	for _, f := range fruits {
		if f.X < parameter.SpawnMargin || f.X > width-parameter.SpawnMargin-base {
			t.Errorf("fruit %d x = %v out of [%v, %v]", f.ID, f.X, parameter.SpawnMargin, width-parameter.SpawnMargin-base)
		}
		if f.Y < 0 || f.Y > height*parameter.SpawnHeightFraction {
			t.Errorf("fruit %d y = %v out of [0, %v]", f.ID, f.Y, height*parameter.SpawnHeightFraction)
		}
		if f.Speed < 5*speedScale || f.Speed > 10*speedScale {
			t.Errorf("fruit %d speed = %v out of [%v, %v]", f.ID, f.Speed, 5*speedScale, 10*speedScale)
		}
		if f.Size != base {
			t.Errorf("fruit %d size = %v, want %v", f.ID, f.Size, base)
		}
		if f.ID <= lastID {
			t.Errorf("fruit ID %d not increasing after %d", f.ID, lastID)
		}
		lastID = f.ID
		kinds[f.Glyph.String()] = true
	}
	if len(kinds) != len(component.Glyphs) {
		t.Errorf("saw %d glyph kinds, want %d", len(kinds), len(component.Glyphs))
	}
}

func TestSpawnSkipsDegenerateRange(t *testing.T) {
	w := newTestWorld(t, 300, 400)
	w.activate(t)

	w.push(event.EventSpawnTick)
	if n := len(w.sys.Spawn.Fruits()); n != 0 {
		t.Errorf("fruits on narrow viewport = %d, want 0", n)
	}
	if got := w.game.Status.Ints.Get("spawn.skipped").Load(); got != 1 {
		t.Errorf("spawn.skipped = %d, want 1", got)
	}
}

func TestSpawnUsesResizedViewport(t *testing.T) {
	w := newTestWorld(t, 300, 400)
	w.activate(t)

	w.game.PushResize(1280, 800)
	w.push(event.EventSpawnTick)
	if n := len(w.sys.Spawn.Fruits()); n != 1 {
		t.Errorf("fruits after resize = %d, want 1", n)
	}
}

func TestSpeedTierFor(t *testing.T) {
	tests := []struct {
		score    int
		min, max float64
	}{
		{0, 5, 10},
		{49, 5, 10},
		{50, 10, 15},
		{99, 10, 15},
		{100, 15, 20},
		{1000, 15, 20},
	}
	for _, tt := range tests {
		tier := SpeedTierFor(tt.score)
		if tier.MinSpeed != tt.min || tier.MaxSpeed != tt.max {
			t.Errorf("SpeedTierFor(%d) = [%v, %v], want [%v, %v]", tt.score, tier.MinSpeed, tier.MaxSpeed, tt.min, tt.max)
		}
	}
}

func TestAdvanceMovesAndCulls(t *testing.T) {
	w := newTestWorld(t, 1280, 800)
	w.activate(t)

	w.sys.Spawn.Add(component.FruitComponent{X: 400, Y: 100, Speed: 5, Glyph: component.Apple{}, Size: 90})
	w.sys.Spawn.Add(component.FruitComponent{X: 600, Y: 798, Speed: 5, Glyph: component.Kiwi{}, Size: 90})
	w.push(event.EventFrameTick)

	fruits := w.sys.Spawn.Fruits()
	if len(fruits) != 1 {
		t.Fatalf("len(fruits) = %d, want 1", len(fruits))
	}
	if fruits[0].Y != 105 {
		t.Errorf("Y = %v, want 105", fruits[0].Y)
	}
	snap := w.game.Snapshot()
	if snap.Lives != parameter.InitialLives-1 {
		t.Errorf("Lives = %d, want %d", snap.Lives, parameter.InitialLives-1)
	}
}

func TestAdvanceBoundaryIsStrict(t *testing.T) {
	w := newTestWorld(t, 1280, 800)
	w.activate(t)

	w.sys.Spawn.Add(component.FruitComponent{X: 400, Y: 795, Speed: 5, Glyph: component.Grape{}, Size: 90})
	w.push(event.EventFrameTick)

	if n := len(w.sys.Spawn.Fruits()); n != 1 {
		t.Errorf("fruit at y == height removed, len = %d, want 1", n)
	}
}

func TestMissesOutsideActiveAreFree(t *testing.T) {
	w := newTestWorld(t, 1280, 800)

	w.sys.Spawn.Add(component.FruitComponent{X: 400, Y: 799, Speed: 5, Glyph: component.Banana{}, Size: 90})
	w.push(event.EventFrameTick)

	snap := w.game.Snapshot()
	if len(snap.Fruits) != 0 {
		t.Errorf("fruit not pruned in Idle")
	}
	if snap.Lives != parameter.InitialLives {
		t.Errorf("Lives = %d, want %d", snap.Lives, parameter.InitialLives)
	}
}

func TestThreeMissesEndGame(t *testing.T) {
	w := newTestWorld(t, 1280, 800)
	w.activate(t)

	for i := 0; i < parameter.InitialLives; i++ {
		w.sys.Spawn.Add(component.FruitComponent{X: 400, Y: 799, Speed: 5, Glyph: component.Watermelon{}, Size: 90})
	}
	w.push(event.EventFrameTick)

	snap := w.game.Snapshot()
	if snap.Lives != 0 {
		t.Errorf("Lives = %d, want 0", snap.Lives)
	}
	if snap.Phase != engine.PhaseGameOver {
		t.Errorf("Phase = %v, want GameOver", snap.Phase)
	}

	// Further misses do not go below zero and spawning stops
	w.sys.Spawn.Add(component.FruitComponent{X: 400, Y: 799, Speed: 5, Glyph: component.Watermelon{}, Size: 90})
	w.push(event.EventFrameTick)
	w.push(event.EventSpawnTick)
	snap = w.game.Snapshot()
	if snap.Lives != 0 || len(snap.Fruits) != 0 {
		t.Errorf("lives=%d fruits=%d, want 0 and 0", snap.Lives, len(snap.Fruits))
	}
}

func TestResetClearsFruits(t *testing.T) {
	w := newTestWorld(t, 1280, 800)
	w.activate(t)
	w.push(event.EventSpawnTick)
	w.push(event.EventSpawnTick)

	w.push(event.EventGameReset)
	if n := len(w.sys.Spawn.Fruits()); n != 0 {
		t.Errorf("fruits after reset = %d, want 0", n)
	}
}

func TestSpawnSpeedFollowsScoreTier(t *testing.T) {
	const height = 1000.0
	w := newTestWorld(t, 1500, height)
	w.activate(t)
	speedScale := height / parameter.SpeedReferenceHeight

	tests := []struct {
		credit   int
		min, max float64
	}{
		{75, 10, 15},
		{75, 15, 20},
	}
	for _, tt := range tests {
		w.game.State.AddScore(tt.credit)
		score := w.game.Snapshot().Score
		before := len(w.sys.Spawn.Fruits())
		for i := 0; i < 50; i++ {
			w.push(event.EventSpawnTick)
		}
		fruits := w.sys.Spawn.Fruits()[before:]
		if len(fruits) != 50 {
			t.Fatalf("score %d: spawned %d, want 50", score, len(fruits))
		}
		for _, f := range fruits {
			if f.Speed < tt.min*speedScale || f.Speed > tt.max*speedScale {
				t.Errorf("score %d: speed = %v out of [%v, %v]", score, f.Speed, tt.min*speedScale, tt.max*speedScale)
			}
		}
	}
}

func TestResetRestoresFreshWorld(t *testing.T) {
	w := newTestWorld(t, 1280, 800)
	w.activate(t)

	// One slice for score, path and juice, one miss for lives, one live fruit
	w.sys.Spawn.Add(still(component.Apple{}, 300, 300))
	w.sys.Spawn.Add(component.FruitComponent{X: 600, Y: 799, Speed: 5, Glyph: component.Kiwi{}, Size: 90})
	w.game.PushGesturePoint(vmath.Pt(250, 265))
	w.game.PushGesturePoint(vmath.Pt(450, 265))
	w.push(event.EventFrameTick)
	w.push(event.EventSpawnTick)

	snap := w.game.Snapshot()
	if snap.Score != 1 || snap.Lives != parameter.InitialLives-1 || len(snap.Fruits) == 0 ||
		len(snap.Effects) == 0 || len(snap.Path) == 0 {
		t.Fatalf("setup snapshot = score %d lives %d fruits %d effects %d path %d",
			snap.Score, snap.Lives, len(snap.Fruits), len(snap.Effects), len(snap.Path))
	}

	w.push(event.EventGameReset)

	snap = w.game.Snapshot()
	if snap.Score != 0 {
		t.Errorf("Score = %d, want 0", snap.Score)
	}
	if snap.Lives != parameter.InitialLives {
		t.Errorf("Lives = %d, want %d", snap.Lives, parameter.InitialLives)
	}
	if snap.Phase != engine.PhaseIdle {
		t.Errorf("Phase = %v, want Idle", snap.Phase)
	}
	if len(snap.Fruits) != 0 || len(snap.Effects) != 0 || len(snap.Path) != 0 {
		t.Errorf("fruits=%d effects=%d path=%d, want all empty", len(snap.Fruits), len(snap.Effects), len(snap.Path))
	}
}
