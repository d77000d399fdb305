package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/event"
	"github.com/lixenwraith/fruit-fighter/parameter"
)

type testWorld struct {
	game  *engine.Game
	clock *engine.MockTimeProvider
	sys   *Systems
}

func newTestWorld(t *testing.T, width, height float64) *testWorld {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g, err := engine.NewGame(engine.GameConfig{Clock: clock, Seed: 42, Width: width, Height: height})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return &testWorld{game: g, clock: clock, sys: RegisterAll(g)}
}

// activate runs one frame tick after the grace period
func (w *testWorld) activate(t *testing.T) {
	t.Helper()
	w.clock.Advance(parameter.GracePeriod)
	w.push(event.EventFrameTick)
	if ph := w.game.Snapshot().Phase; ph != engine.PhaseActive {
		t.Fatalf("Phase = %v, want Active", ph)
	}
}

func (w *testWorld) push(et event.EventType) {
	w.clock.Advance(parameter.FrameUpdateInterval)
	w.game.Push(et, nil)
	w.game.Update()
}

func (w *testWorld) frames(n int) {
	for i := 0; i < n; i++ {
		w.push(event.EventFrameTick)
	}
}
