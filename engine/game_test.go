package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/fruit-fighter/event"
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

// recorderSystem logs dispatches and the phase observed at dispatch time
type recorderSystem struct {
	types      []event.EventType
	seen       []event.EventType
	phases     []Phase
	points     []vmath.Point
	missOnTick int
}

func (r *recorderSystem) HandleEvent(g *Game, ev event.GameEvent) {
	r.seen = append(r.seen, ev.Type)
	r.phases = append(r.phases, g.State.Phase())
	switch ev.Type {
	case event.EventGesturePoint:
		p := ev.Payload.(*event.GesturePointPayload)
		r.points = append(r.points, vmath.Pt(p.X, p.Y))
	case event.EventFrameTick:
		for i := 0; i < r.missOnTick; i++ {
			g.State.RecordMiss()
		}
	}
}

func (r *recorderSystem) EventTypes() []event.EventType {
	return r.types
}

func (r *recorderSystem) Contribute(snap *Snapshot) {
	snap.Path = append(snap.Path, r.points...)
}

func newTestGame(t *testing.T) (*Game, *MockTimeProvider, *recorderSystem) {
	t.Helper()
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g, err := NewGame(GameConfig{Clock: clock, Seed: 7, Width: 1280, Height: 800})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	rec := &recorderSystem{types: []event.EventType{
		event.EventFrameTick,
		event.EventSpawnTick,
		event.EventGesturePoint,
		event.EventViewportResize,
		event.EventGameReset,
	}}
	g.AddSystem(rec)
	return g, clock, rec
}

func TestNewGameRejectsEmptyViewport(t *testing.T) {
	if _, err := NewGame(GameConfig{Width: 0, Height: 600}); err == nil {
		t.Error("NewGame with zero width succeeded, want error")
	}
}

func TestNewGameRejectsNegativeGrace(t *testing.T) {
	if _, err := NewGame(GameConfig{Width: 800, Height: 600, GracePeriod: -time.Second}); err == nil {
		t.Error("NewGame with negative grace succeeded, want error")
	}
}

func TestGameUpdateFIFO(t *testing.T) {
	g, _, rec := newTestGame(t)

	g.PushGesturePoint(vmath.Pt(1, 2))
	g.Push(event.EventFrameTick, nil)
	g.PushGesturePoint(vmath.Pt(3, 4))
	g.Push(event.EventSpawnTick, nil)
	g.Update()

	want := []event.EventType{event.EventGesturePoint, event.EventFrameTick, event.EventGesturePoint, event.EventSpawnTick}
	if len(rec.seen) != len(want) {
		t.Fatalf("dispatched %d events, want %d", len(rec.seen), len(want))
	}
	for i := range want {
		if rec.seen[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, rec.seen[i], want[i])
		}
	}
	if len(rec.points) != 2 || rec.points[1] != vmath.Pt(3, 4) {
		t.Errorf("points = %v, want [(1,2) (3,4)]", rec.points)
	}
	if g.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", g.Frame())
	}
}

func TestGameGraceEndsBeforeFrameSystems(t *testing.T) {
	g, clock, rec := newTestGame(t)

	clock.Advance(parameter.GracePeriod - time.Millisecond)
	g.Push(event.EventFrameTick, nil)
	g.Update()
	if rec.phases[0] != PhaseIdle {
		t.Fatalf("phase at first tick = %v, want Idle", rec.phases[0])
	}

	clock.Advance(time.Millisecond)
	g.Push(event.EventSpawnTick, nil)
	g.Update()
	if rec.phases[1] != PhaseActive {
		t.Errorf("phase at spawn tick after grace = %v, want Active", rec.phases[1])
	}
}

func TestGameMissesEndGameInSameFrame(t *testing.T) {
	g, clock, rec := newTestGame(t)

	clock.Advance(parameter.GracePeriod)
	g.Push(event.EventFrameTick, nil)
	g.Update()

	rec.missOnTick = parameter.InitialLives
	clock.Advance(16 * time.Millisecond)
	g.Push(event.EventFrameTick, nil)
	g.Update()

	snap := g.Snapshot()
	if snap.Phase != PhaseGameOver {
		t.Errorf("Phase = %v, want GameOver", snap.Phase)
	}
	if snap.Lives != 0 {
		t.Errorf("Lives = %d, want 0", snap.Lives)
	}
}

func TestGameResize(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.PushResize(640, 480)
	g.PushResize(-1, 480)
	g.Update()

	if vp := g.Snapshot().Viewport; vp != (Viewport{Width: 640, Height: 480}) {
		t.Errorf("Viewport = %+v, want 640x480", vp)
	}
}

func TestGameResetRestartsGrace(t *testing.T) {
	g, clock, rec := newTestGame(t)

	clock.Advance(parameter.GracePeriod)
	g.Push(event.EventFrameTick, nil)
	g.Update()
	if g.Snapshot().Phase != PhaseActive {
		t.Fatal("expected Active after grace")
	}

	clock.Advance(10 * time.Second)
	g.Push(event.EventGameReset, nil)
	g.Update()

	if rec.seen[len(rec.seen)-1] != event.EventGameReset {
		t.Error("systems did not receive the reset")
	}

	// Time before the reset does not count towards the new grace period
	clock.Advance(time.Second)
	g.Push(event.EventFrameTick, nil)
	g.Update()
	if ph := g.Snapshot().Phase; ph != PhaseIdle {
		t.Errorf("Phase 1s after reset = %v, want Idle", ph)
	}
}

func TestGameSnapshotCollectsContributors(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.PushGesturePoint(vmath.Pt(5, 6))
	g.Update()

	snap := g.Snapshot()
	if len(snap.Path) != 1 || snap.Path[0] != vmath.Pt(5, 6) {
		t.Errorf("Path = %v, want [(5,6)]", snap.Path)
	}
	if snap.Lives != parameter.InitialLives || snap.Score != 0 {
		t.Errorf("lives=%d score=%d, want %d and 0", snap.Lives, snap.Score, parameter.InitialLives)
	}
}

func TestViewportDerived(t *testing.T) {
	tests := []struct {
		name      string
		vp        Viewport
		wantBase  float64
		wantScale float64
		wantXHi   float64
		wantYHi   float64
		wantSpeed float64
	}{
		{"desktop", Viewport{1500, 800}, 90, 1, 1210, 200, 1},
		{"narrow", Viewport{300, 400}, 30, 0.4, 70, 100, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vp.BaseSize(); got != tt.wantBase {
				t.Errorf("BaseSize() = %v, want %v", got, tt.wantBase)
			}
			if got := tt.vp.HitboxScale(); got != tt.wantScale {
				t.Errorf("HitboxScale() = %v, want %v", got, tt.wantScale)
			}
			lo, hi := tt.vp.SpawnXRange()
			if lo != parameter.SpawnMargin || hi != tt.wantXHi {
				t.Errorf("SpawnXRange() = (%v, %v), want (%v, %v)", lo, hi, parameter.SpawnMargin, tt.wantXHi)
			}
			if _, yhi := tt.vp.SpawnYRange(); yhi != tt.wantYHi {
				t.Errorf("SpawnYRange() hi = %v, want %v", yhi, tt.wantYHi)
			}
			if got := tt.vp.SpeedScale(); got != tt.wantSpeed {
				t.Errorf("SpeedScale() = %v, want %v", got, tt.wantSpeed)
			}
		})
	}
}
