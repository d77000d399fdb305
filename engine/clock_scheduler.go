package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/fruit-fighter/core"
	"github.com/lixenwraith/fruit-fighter/event"
)

// TickHandle is a named, independently cancellable periodic timer
type TickHandle struct {
	name     string
	interval time.Duration
	fire     func()

	mu      sync.Mutex
	running atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

func newTickHandle(name string, interval time.Duration, fire func()) *TickHandle {
	return &TickHandle{
		name:     name,
		interval: interval,
		fire:     fire,
	}
}

// Name returns the handle label
func (h *TickHandle) Name() string {
	return h.name
}

// Running reports whether the handle is armed
func (h *TickHandle) Running() bool {
	return h.running.Load()
}

// Start arms the handle; no-op if already running
func (h *TickHandle) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.running.CompareAndSwap(false, true) {
		return
	}
	h.stop = make(chan struct{})
	h.done = make(chan struct{})
	stop, done := h.stop, h.done
	core.Go(func() { h.loop(stop, done) })
}

// Cancel disarms the handle and waits for an in-flight fire to finish
// Must not be called from inside the handle's own fire func
func (h *TickHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.running.CompareAndSwap(true, false) {
		return
	}
	close(h.stop)
	<-h.done
}

func (h *TickHandle) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// Stop wins over a tick that became ready concurrently
			select {
			case <-stop:
				return
			default:
			}
			h.fire()
		}
	}
}

// ClockScheduler drives the game with two clocks: frame (display cadence) and spawn
// Each clock pushes its tick event and runs the single update step
type ClockScheduler struct {
	game   *Game
	frame  *TickHandle
	spawn  *TickHandle
	source GestureSource

	// Serializes Start, Stop and Reset
	mu      sync.Mutex
	running bool

	// Frame synchronization: send signal that update is complete
	updateDone chan struct{}

	statRunning *atomic.Bool
}

// NewClockScheduler creates a scheduler and returns the updateDone (receive) channel
func NewClockScheduler(game *Game, frameInterval, spawnInterval time.Duration) (*ClockScheduler, <-chan struct{}, error) {
	if frameInterval <= 0 || spawnInterval <= 0 {
		return nil, nil, errors.Errorf("intervals must be positive, got frame=%v spawn=%v", frameInterval, spawnInterval)
	}

	cs := &ClockScheduler{
		game:        game,
		updateDone:  make(chan struct{}, 1),
		statRunning: game.Status.Bools.Get("engine.running"),
	}
	cs.frame = newTickHandle("frame", frameInterval, cs.frameTick)
	cs.spawn = newTickHandle("spawn", spawnInterval, cs.spawnTick)

	return cs, cs.updateDone, nil
}

// AttachGestureSource wires a gesture source into the game queue, must be called before Start()
func (cs *ClockScheduler) AttachGestureSource(src GestureSource) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.source = src
}

// Frame returns the frame handle
func (cs *ClockScheduler) Frame() *TickHandle {
	return cs.frame
}

// Spawn returns the spawn handle
func (cs *ClockScheduler) Spawn() *TickHandle {
	return cs.spawn
}

// Start starts the gesture source and arms both clocks
func (cs *ClockScheduler) Start() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.running {
		return nil
	}

	if cs.source != nil {
		if err := cs.source.Start(cs.game.PushGesturePoint); err != nil {
			return errors.Wrap(err, "failed to start gesture source")
		}
	}

	// Time spent stopped does not count toward the phase timer
	cs.game.resume()
	cs.frame.Start()
	cs.spawn.Start()
	cs.running = true
	cs.statRunning.Store(true)
	log.Printf("scheduler started: frame=%v spawn=%v", cs.frame.interval, cs.spawn.interval)
	return nil
}

// Stop cancels both clocks deterministically and stops the gesture source
// No tick fires after Stop returns
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if !cs.running {
		return
	}

	cs.frame.Cancel()
	cs.spawn.Cancel()
	if cs.source != nil {
		cs.source.Stop()
	}
	cs.running = false
	cs.statRunning.Store(false)
	log.Printf("scheduler stopped")
}

// Reset cancels both clocks, applies the reset as one queued command and re-arms the clocks
// A full queue is drained until the reset fits; events queued before it apply first
// Valid while stopped; the clocks stay disarmed in that case
func (cs *ClockScheduler) Reset() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.frame.Cancel()
	cs.spawn.Cancel()

	for !cs.game.Push(event.EventGameReset, nil) {
		cs.game.Update()
	}
	cs.game.Update()

	if cs.running {
		cs.frame.Start()
		cs.spawn.Start()
	}
	log.Printf("game reset")
}

func (cs *ClockScheduler) frameTick() {
	cs.game.Push(event.EventFrameTick, nil)
	cs.game.Update()

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

func (cs *ClockScheduler) spawnTick() {
	cs.game.Push(event.EventSpawnTick, nil)
	cs.game.Update()
}
