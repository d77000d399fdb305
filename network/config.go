package network

import (
	"time"

	"github.com/pkg/errors"
)

// Config holds bridge configuration
type Config struct {
	// Address to bind
	Address string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Largest accepted client message in bytes
	ReadLimit int64

	// Outbound frames buffered per peer before drops
	SendQueueSize int

	// Virtual viewport used for landmark mirroring until a client resizes
	Width  float64
	Height float64
}

// DefaultConfig returns local-play defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8787",
		MaxPeers:        16,
		WriteTimeout:    5 * time.Second,
		ReadTimeout:     60 * time.Second,
		ShutdownTimeout: 3 * time.Second,
		ReadLimit:       64 * 1024,
		SendQueueSize:   8,
		Width:           1280,
		Height:          720,
	}
}

// Validate rejects configurations the hub cannot run with
func (c *Config) Validate() error {
	if c.MaxPeers <= 0 {
		return errors.Errorf("max peers must be positive, got %d", c.MaxPeers)
	}
	if c.SendQueueSize <= 0 {
		return errors.Errorf("send queue size must be positive, got %d", c.SendQueueSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("viewport must be positive, got %vx%v", c.Width, c.Height)
	}
	return nil
}
