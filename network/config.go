package network

import "time"

// Config holds spectator feed configuration
type Config struct {
	// Address to bind, e.g. "127.0.0.1:8765"
	Address string

	// Connection limits
	MaxClients int

	// Timing
	WriteTimeout    time.Duration
	PongWait        time.Duration
	PingPeriod      time.Duration // Must be less than PongWait
	ShutdownTimeout time.Duration

	// Buffer sizes
	MaxMessageSize     int64 // Inbound limit, spectators only send control frames
	SendQueueSize      int   // Per-client pending snapshots before disconnect
	BroadcastQueueSize int   // Hub pending snapshots before drop
}

// DefaultConfig returns production-safe defaults for addr
func DefaultConfig(addr string) *Config {
	return &Config{
		Address:            addr,
		MaxClients:         32,
		WriteTimeout:       5 * time.Second,
		PongWait:           60 * time.Second,
		PingPeriod:         54 * time.Second,
		ShutdownTimeout:    2 * time.Second,
		MaxMessageSize:     512,
		SendQueueSize:      16,
		BroadcastQueueSize: 8,
	}
}
