package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/fruit-fighter/event"
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/status"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

// GestureSource produces gesture points in viewport pixel space
// Start must not block; the sink is safe to call from any goroutine
type GestureSource interface {
	Start(sink func(vmath.Point)) error
	Stop()
}

// GameConfig holds construction parameters for Game
type GameConfig struct {
	Clock       TimeProvider
	Status      *status.Registry
	GracePeriod time.Duration
	Seed        uint64
	Width       float64
	Height      float64
}

// Game owns the command queue, the handler router and all simulation state
// Producers Push from any goroutine; Update is the single consumer
type Game struct {
	mu sync.Mutex

	queue  *event.EventQueue
	router *event.Router[*Game]
	clock  TimeProvider

	State  *GameState
	Status *status.Registry

	rng          *vmath.FastRand
	viewport     Viewport
	contributors []SnapshotContributor

	lastTick time.Time
	frame    uint64
	batch    []event.GameEvent // Reused across updates

	// Cached metric pointers
	statTicks   *atomic.Int64
	statDropped *atomic.Int64
}

// NewGame creates a game in Idle with an empty playfield
func NewGame(cfg GameConfig) (*Game, error) {
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.GracePeriod < 0 {
		return nil, errors.Errorf("negative grace period %v", cfg.GracePeriod)
	}
	if cfg.GracePeriod == 0 {
		cfg.GracePeriod = parameter.GracePeriod
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Errorf("invalid viewport %vx%v", cfg.Width, cfg.Height)
	}

	state, err := NewGameState(cfg.GracePeriod, cfg.Status)
	if err != nil {
		return nil, err
	}

	return &Game{
		queue:       event.NewEventQueue(),
		router:      event.NewRouter[*Game](),
		clock:       cfg.Clock,
		State:       state,
		Status:      cfg.Status,
		rng:         vmath.NewFastRand(cfg.Seed),
		viewport:    Viewport{Width: cfg.Width, Height: cfg.Height},
		lastTick:    cfg.Clock.Now(),
		batch:       make([]event.GameEvent, 0, 64),
		statTicks:   cfg.Status.Ints.Get("engine.ticks"),
		statDropped: cfg.Status.Ints.Get("engine.dropped"),
	}, nil
}

// AddSystem registers a handler in dispatch order, must be called before the first Update
// Handlers that also implement SnapshotContributor feed Snapshot
func (g *Game) AddSystem(h event.Handler[*Game]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.router.Register(h)
	if c, ok := h.(SnapshotContributor); ok {
		g.contributors = append(g.contributors, c)
	}
}

// Push enqueues an event stamped with the game clock, safe for concurrent producers
// Returns false when the queue is full and the event was dropped
func (g *Game) Push(eventType event.EventType, payload any) bool {
	ev := event.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Timestamp: g.clock.Now(),
	}
	if !g.queue.Push(ev) {
		g.statDropped.Add(1)
		event.Release(ev)
		return false
	}
	return true
}

// PushGesturePoint enqueues one detected point, usable as a GestureSource sink
func (g *Game) PushGesturePoint(p vmath.Point) {
	g.Push(event.EventGesturePoint, event.AcquireGesturePoint(p.X, p.Y))
}

// PushResize enqueues a viewport change
func (g *Game) PushResize(width, height float64) {
	g.Push(event.EventViewportResize, &event.ViewportResizePayload{Width: width, Height: height})
}

// Update drains the queue in FIFO order and applies every event
// Pooled payloads are released after dispatch
func (g *Game) Update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.batch = g.queue.Consume(g.batch[:0])
	for _, ev := range g.batch {
		g.apply(ev)
		event.Release(ev)
	}
	clear(g.batch)
}

func (g *Game) apply(ev event.GameEvent) {
	switch ev.Type {
	case event.EventFrameTick:
		// Phase time first so the grace period ends before this frame's systems run
		g.advanceClock(ev.Timestamp)
		g.router.Dispatch(g, ev)
		// Misses recorded by this frame end the game in this frame
		g.State.Evaluate()
		g.frame++
		g.statTicks.Add(1)

	case event.EventSpawnTick:
		g.advanceClock(ev.Timestamp)
		g.router.Dispatch(g, ev)

	case event.EventViewportResize:
		if p, ok := ev.Payload.(*event.ViewportResizePayload); ok && p.Width > 0 && p.Height > 0 {
			g.viewport = Viewport{Width: p.Width, Height: p.Height}
		}
		g.router.Dispatch(g, ev)

	case event.EventGameReset:
		g.router.Dispatch(g, ev)
		g.State.Reset()
		g.lastTick = g.stamp(ev.Timestamp)

	default:
		g.router.Dispatch(g, ev)
	}
}

// resume restarts phase time measurement at the current clock reading
func (g *Game) resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastTick = g.clock.Now()
}

// advanceClock feeds elapsed time since the previous tick into the phase machine
func (g *Game) advanceClock(ts time.Time) {
	ts = g.stamp(ts)
	var dt time.Duration
	if ts.After(g.lastTick) {
		dt = ts.Sub(g.lastTick)
		g.lastTick = ts
	}
	g.State.Advance(dt)
}

func (g *Game) stamp(ts time.Time) time.Time {
	if ts.IsZero() {
		return g.clock.Now()
	}
	return ts
}

// Viewport returns the current playfield size, valid inside handlers
func (g *Game) Viewport() Viewport {
	return g.viewport
}

// Rand returns the simulation random source, valid inside handlers
func (g *Game) Rand() *vmath.FastRand {
	return g.rng
}

// Frame returns the number of frame ticks applied
func (g *Game) Frame() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frame
}

// Snapshot returns a consistent copy of the simulation for rendering
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Frame:    g.frame,
		Viewport: g.viewport,
		Score:    g.State.Score(),
		Lives:    g.State.Lives(),
		Phase:    g.State.Phase(),
	}
	for _, c := range g.contributors {
		c.Contribute(&snap)
	}
	return snap
}
