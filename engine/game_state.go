package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/fruit-fighter/engine/fsm"
	"github.com/lixenwraith/fruit-fighter/event"
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/status"
)

// Phase is the coarse game lifecycle stage
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseGameOver
)

var phaseNames = map[string]Phase{
	"Idle":     PhaseIdle,
	"Active":   PhaseActive,
	"GameOver": PhaseGameOver,
}

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseActive:
		return "Active"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState owns score, lives and phase
// Systems never write these fields, they report through AddScore and RecordMiss
// Not safe for concurrent use; Game serializes access under its mutex
type GameState struct {
	score int
	lives int
	phase Phase

	gracePeriod time.Duration
	fsm         *fsm.Machine[*GameState]

	// Cached metric pointers
	statPhase  *status.AtomicString
	statScore  *atomic.Int64
	statLives  *atomic.Int64
	statHits   *atomic.Int64
	statMisses *atomic.Int64
}

// NewGameState builds the phase machine from DefaultGameFSMConfig and enters Idle
func NewGameState(gracePeriod time.Duration, reg *status.Registry) (*GameState, error) {
	gs := &GameState{
		lives:       parameter.InitialLives,
		gracePeriod: gracePeriod,
		fsm:         fsm.NewMachine[*GameState](),
		statPhase:   reg.Strings.Get("game.phase"),
		statScore:   reg.Ints.Get("game.score"),
		statLives:   reg.Ints.Get("game.lives"),
		statHits:    reg.Ints.Get("game.hits"),
		statMisses:  reg.Ints.Get("game.misses"),
	}
	gs.statLives.Store(int64(gs.lives))

	registerFSMComponents(gs.fsm)

	if err := gs.fsm.LoadConfig([]byte(DefaultGameFSMConfig)); err != nil {
		return nil, errors.Wrap(err, "failed to load game FSM config")
	}
	if err := gs.fsm.Init(gs, gs.fsm.InitialStateID); err != nil {
		return nil, errors.Wrap(err, "failed to init game FSM")
	}
	return gs, nil
}

// registerFSMComponents registers the guards and actions referenced by DefaultGameFSMConfig
func registerFSMComponents(m *fsm.Machine[*GameState]) {
	m.RegisterGuard("GraceElapsed", func(gs *GameState, timeInState time.Duration) bool {
		return timeInState >= gs.gracePeriod
	})
	m.RegisterGuard("LivesDepleted", func(gs *GameState, _ time.Duration) bool {
		return gs.lives == 0
	})

	// EnterPhase: arg is the phase name
	m.RegisterAction("EnterPhase", func(gs *GameState, args any) {
		name, _ := args.(string)
		phase, ok := phaseNames[name]
		if !ok {
			panic("engine: unknown phase " + name)
		}
		gs.phase = phase
		gs.statPhase.Store(name)
		log.Printf("phase -> %s (score=%d lives=%d)", name, gs.score, gs.lives)
	})

	m.RegisterAction("LogSession", func(gs *GameState, _ any) {
		log.Printf("session over: final score %d", gs.score)
	})
}

// Score returns the current score
func (gs *GameState) Score() int {
	return gs.score
}

// Lives returns the remaining lives
func (gs *GameState) Lives() int {
	return gs.lives
}

// Phase returns the current phase
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// TimeInPhase returns time spent in the current phase
func (gs *GameState) TimeInPhase() time.Duration {
	return gs.fsm.TimeInState()
}

// AddScore credits n points, only while Active
// Returns false when the credit was ignored
func (gs *GameState) AddScore(n int) bool {
	if gs.phase != PhaseActive || n <= 0 {
		return false
	}
	gs.score += n
	gs.statScore.Store(int64(gs.score))
	gs.statHits.Add(1)
	return true
}

// RecordMiss takes one life, only while Active, floored at 0
// The GameOver transition is left to the next Evaluate
func (gs *GameState) RecordMiss() bool {
	if gs.phase != PhaseActive || gs.lives == 0 {
		return false
	}
	gs.lives--
	gs.statLives.Store(int64(gs.lives))
	gs.statMisses.Add(1)
	return true
}

// Advance moves phase time forward by dt and evaluates tick transitions
func (gs *GameState) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	gs.fsm.Update(gs, dt)
}

// Evaluate re-checks tick transitions without advancing time
func (gs *GameState) Evaluate() {
	gs.fsm.Update(gs, 0)
}

// Reset zeroes score, restores lives and re-enters Idle with a fresh grace period
func (gs *GameState) Reset() {
	gs.score = 0
	gs.lives = parameter.InitialLives
	gs.statScore.Store(0)
	gs.statLives.Store(int64(gs.lives))
	gs.fsm.HandleEvent(gs, event.EventGameReset)
}
