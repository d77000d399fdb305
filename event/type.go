package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventTick is the FSM auto-transition trigger, never pushed to the queue
	EventTick EventType = iota

	// EventFrameTick advances the simulation one frame
	// Trigger: ClockScheduler frame handle
	// Consumers: SpawnSystem (advance), CollisionSystem, JuiceSystem | Payload: nil
	EventFrameTick

	// EventSpawnTick requests one fruit spawn
	// Trigger: ClockScheduler spawn handle
	// Consumer: SpawnSystem | Payload: nil
	EventSpawnTick

	// EventGesturePoint delivers one detected point from the gesture source
	// Trigger: GestureSource sink (mouse, websocket bridge)
	// Consumer: TrailSystem | Payload: *GesturePointPayload (pooled)
	EventGesturePoint

	// EventViewportResize carries new viewport dimensions
	// Trigger: Terminal resize, bridge client resize
	// Consumer: Game | Payload: *ViewportResizePayload
	EventViewportResize

	// EventGameReset clears all collections and re-arms the grace period
	// Trigger: ClockScheduler.Reset
	// Consumers: every system, Game | Payload: nil
	EventGameReset
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
