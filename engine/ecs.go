package engine

import (
	"sort"
	"time"

	"github.com/sasha-s/go-deadlock"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/vmath"
)

// Entity is a unique identifier for an entity
type Entity uint64

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World contains all entities and their components using typed stores
type World struct {
	mu           deadlock.RWMutex
	nextEntityID Entity

	Positions *Store[components.PositionComponent]
	Hitboxes  *Store[components.HitboxComponent]
	Ships     *Store[components.ShipComponent]
	Asteroids *Store[components.AsteroidComponent]
	Resources *Store[components.ResourceComponent]

	systems     []System
	updateMutex deadlock.Mutex
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Positions:    NewStore[components.PositionComponent](),
		Hitboxes:     NewStore[components.HitboxComponent](),
		Ships:        NewStore[components.ShipComponent](),
		Asteroids:    NewStore[components.AsteroidComponent](),
		Resources:    NewStore[components.ResourceComponent](),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e Entity) {
	w.Positions.Remove(e)
	w.Hitboxes.Remove(e)
	w.Ships.Remove(e)
	w.Asteroids.Remove(e)
	w.Resources.Remove(e)
}

// Clear removes all entities and components, registered systems are kept
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	w.Positions.Clear()
	w.Hitboxes.Clear()
	w.Ships.Clear()
	w.Asteroids.Clear()
	w.Resources.Clear()
}

// AddSystem adds a system to the world and keeps the list ordered by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update(dt time.Duration) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	for _, system := range w.Systems() {
		system.Update(w, dt)
	}
}

// Bounds returns the occupied rect of an entity, false when it has no position
func (w *World) Bounds(e Entity) (vmath.Rect, bool) {
	pos, ok := w.Positions.Get(e)
	if !ok {
		return vmath.Rect{}, false
	}
	r := vmath.Rect{X: pos.X, Y: pos.Y, W: 1, H: 1}
	if hb, ok := w.Hitboxes.Get(e); ok {
		r.W, r.H = hb.Width, hb.Height
	}
	return r, true
}

// Occupied reports whether any positioned entity overlaps r
func (w *World) Occupied(r vmath.Rect) bool {
	for _, e := range w.Positions.All() {
		if b, ok := w.Bounds(e); ok && vmath.Overlaps(b, r) {
			return true
		}
	}
	return false
}

// FirstOverlapping returns the lowest entity of store overlapping r
func FirstOverlapping[T any](w *World, store *Store[T], r vmath.Rect) (Entity, bool) {
	var found Entity
	for _, e := range store.All() {
		b, ok := w.Bounds(e)
		if !ok || !vmath.Overlaps(b, r) {
			continue
		}
		if found == 0 || e < found {
			found = e
		}
	}
	return found, found != 0
}
