// Package network serves a read-only websocket feed of the running game
package network

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/sasha-s/go-deadlock"
)

// Hub maintains the set of active spectators and broadcasts snapshots to them
type Hub struct {
	cfg *Config

	mu      deadlock.Mutex
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	latest  atomic.Pointer[[]byte]
	count   atomic.Int32
	dropped atomic.Uint64
}

// NewHub creates a hub, Run must be started before clients connect
func NewHub(cfg *Config) *Hub {
	return &Hub{
		cfg:        cfg,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, cfg.BroadcastQueueSize),
		done:       make(chan struct{}),
	}
}

// Run handles registration and fan-out until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		h.mu.Lock()
		for client := range h.clients {
			delete(h.clients, client)
			close(client.send)
		}
		h.count.Store(0)
		h.mu.Unlock()
		close(h.done)
		log.Printf("[network] hub stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			if len(h.clients) >= h.cfg.MaxClients {
				close(client.send)
				h.mu.Unlock()
				log.Printf("[network] spectator %s rejected, %d connected", client.id, h.cfg.MaxClients)
				continue
			}
			h.clients[client] = struct{}{}
			h.count.Store(int32(len(h.clients)))
			h.mu.Unlock()
			log.Printf("[network] spectator %s connected", client.id)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.count.Store(int32(len(h.clients)))
				log.Printf("[network] spectator %s disconnected", client.id)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow spectator, drop it rather than stall the feed
					close(client.send)
					delete(h.clients, client)
					log.Printf("[network] spectator %s too slow, disconnected", client.id)
				}
			}
			h.count.Store(int32(len(h.clients)))
			h.mu.Unlock()
		}
	}
}

// Publish serializes snap and queues it for broadcast without blocking
// Returns false when the snapshot was dropped
func (h *Hub) Publish(snap *Snapshot) bool {
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[network] failed to serialize snapshot: %v", err)
		return false
	}
	h.latest.Store(&payload)

	select {
	case h.broadcast <- payload:
		return true
	default:
		h.dropped.Add(1)
		return false
	}
}

// Latest returns the most recent serialized snapshot, nil before the first publish
func (h *Hub) Latest() []byte {
	if p := h.latest.Load(); p != nil {
		return *p
	}
	return nil
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Dropped returns the number of snapshots dropped on a full hub queue
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// attach registers c, false when the hub has stopped
func (h *Hub) attach(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// detach unregisters c, no-op when the hub has stopped
func (h *Hub) detach(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
