package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame loop cadence (~60 FPS, display refresh)
	FrameUpdateInterval = 16 * time.Millisecond

	// SpawnInterval is the fixed cadence of the spawn clock
	SpawnInterval = 1 * time.Second

	// GracePeriod is the delay after (re)start during which nothing spawns
	GracePeriod = 4 * time.Second
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Terminal Mapping
const (
	// CellWidth is the virtual pixel width of one terminal cell
	CellWidth = 10.0

	// CellHeight is the virtual pixel height of one terminal cell (cells are ~2:1)
	CellHeight = 20.0
)
