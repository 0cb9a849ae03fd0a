package events

import (
	"sync/atomic"

	"github.com/lixenwraith/space-miner/constants"
)

// EventQueue is a fixed-size lock-free ring of pending events
// Producers claim a slot with CAS on the write index, the game loop is the only consumer
// A slot becomes readable once its ready flag is set, so partial writes are never observed
// When full the oldest events are overwritten
type EventQueue struct {
	slots [constants.EventQueueSize]GameEvent
	ready [constants.EventQueueSize]atomic.Bool
	read  atomic.Uint64
	write atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, safe for concurrent producers
func (eq *EventQueue) Push(event GameEvent) {
	for {
		w := eq.write.Load()
		if !eq.write.CompareAndSwap(w, w+1) {
			continue
		}

		slot := w & constants.EventBufferMask
		eq.slots[slot] = event
		eq.ready[slot].Store(true)

		// Drag the read index along when the ring wrapped
		r := eq.read.Load()
		if w+1-r > constants.EventQueueSize {
			eq.read.CompareAndSwap(r, w+1-constants.EventQueueSize)
		}
		return
	}
}

// Consume drains every ready event in FIFO order
func (eq *EventQueue) Consume() []GameEvent {
	for {
		r := eq.read.Load()
		w := eq.write.Load()
		if r == w {
			return nil
		}

		n := w - r
		if n > constants.EventQueueSize {
			r = w - constants.EventQueueSize
			n = constants.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for i := uint64(0); i < n; i++ {
			slot := (r + i) & constants.EventBufferMask
			if !eq.ready[slot].Load() {
				// Producer still writing, pick the rest up next time
				break
			}
			out = append(out, eq.slots[slot])
			eq.ready[slot].Store(false)
		}

		if eq.read.CompareAndSwap(r, r+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is the number of unconsumed events, at most the ring capacity
func (eq *EventQueue) Len() int {
	n := eq.write.Load() - eq.read.Load()
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}

// Clear drops all pending events
func (eq *EventQueue) Clear() {
	eq.Consume()
}
