package events

// Handler reacts to a fixed set of event types within a context T
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)
	EventTypes() []EventType
}

// Router fans queued events out to handlers on the game loop goroutine
// Handlers of one type run in registration order
type Router[T any] struct {
	byType map[EventType][]Handler[T]
	queue  *EventQueue
}

// NewRouter creates a router draining queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		byType: make(map[EventType][]Handler[T]),
		queue:  queue,
	}
}

// Register subscribes handler to every type it declares
func (r *Router[T]) Register(handler Handler[T]) {
	for _, et := range handler.EventTypes() {
		r.byType[et] = append(r.byType[et], handler)
	}
}

// DispatchAll drains the queue in FIFO order and returns how many events were delivered
// Events pushed by a handler wait for the next call
func (r *Router[T]) DispatchAll(ctx T) int {
	pending := r.queue.Consume()
	for i := range pending {
		for _, h := range r.byType[pending[i].Type] {
			h.HandleEvent(ctx, pending[i])
		}
	}
	return len(pending)
}

// HandlerCount reports the subscribers of t
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.byType[t])
}
