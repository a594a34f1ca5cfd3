package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtPaddleHit EventType = iota
	EvtBrickHit
	EvtBrickBroken
	EvtBallLost
	EvtBallReset
	EvtGameOver
	EvtGameWon
)

// Emitter accepts events; EventBus is the usual implementation
type Emitter interface {
	Emit(e Event)
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events. Events emitted by handlers are
// delivered in the same call.
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}

// Emit sends an event through em. A nil Emitter drops it.
func Emit(em Emitter, t EventType, payload interface{}) {
	if em != nil {
		em.Emit(Event{Type: t, Payload: payload})
	}
}
