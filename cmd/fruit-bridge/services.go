package main

import (
	"context"
	"sync"
	"time"

	"github.com/lixenwraith/fruit-fighter/core"
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/network"
)

// serverService runs the websocket listener
type serverService struct {
	hub     *network.Hub
	timeout time.Duration
}

func (s *serverService) Name() string           { return "server" }
func (s *serverService) Dependencies() []string { return nil }
func (s *serverService) Start() error           { return s.hub.Listen() }

func (s *serverService) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.hub.Shutdown(ctx)
}

// clockService runs the frame and spawn ticks
// Depends on the server so clients can attach before the grace period runs out
type clockService struct {
	scheduler *engine.ClockScheduler
}

func (s *clockService) Name() string           { return "clock" }
func (s *clockService) Dependencies() []string { return []string{"server"} }
func (s *clockService) Start() error           { return s.scheduler.Start() }

func (s *clockService) Stop() error {
	s.scheduler.Stop()
	return nil
}

// pumpService broadcasts a snapshot after every frame update
type pumpService struct {
	hub      *network.Hub
	game     *engine.Game
	updates  <-chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

func newPumpService(hub *network.Hub, game *engine.Game, updates <-chan struct{}) *pumpService {
	return &pumpService{
		hub:     hub,
		game:    game,
		updates: updates,
		stop:    make(chan struct{}),
	}
}

func (s *pumpService) Name() string           { return "pump" }
func (s *pumpService) Dependencies() []string { return []string{"server", "clock"} }

func (s *pumpService) Start() error {
	core.Go(func() { s.hub.Pump(s.updates, s.game.Snapshot, s.stop) })
	return nil
}

func (s *pumpService) Stop() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}
