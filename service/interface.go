package service

// Service defines the lifecycle interface for long-lived subsystems
// Services own goroutines or sockets: the tick clock, the websocket server, the frame pump
//
// Lifecycle:
//  1. Construction, fully configured
//  2. Start() - launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	// Return nil or empty slice if no dependencies
	Dependencies() []string

	// Start begins service operation, must not block
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
