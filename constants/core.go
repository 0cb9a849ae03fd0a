package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the game logic update interval (simulation tick)
	GameUpdateInterval = 80 * time.Millisecond
)

// ECS & Resource Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// InputQueueSize bounds intents buffered between two ticks
	InputQueueSize = 4

	// InputChannelSize is the buffer between the terminal poller and the game loop
	InputChannelSize = 64
)

// System Execution Priorities (lower runs first)
const (
	PriorityMovement  = 10
	PrioritySpawn     = 20
	PriorityCollision = 30
	PriorityMining    = 40
)
