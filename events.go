package instancing

const (
	EDGE_SKIPPED EventType = iota
	ELEMENT_DEGENERATE
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// EdgeSkippedEvent is emitted for every edge left out of a batch because it
// does not join exactly two faces.
type EdgeSkippedEvent struct {
	Index int
}

func (e EdgeSkippedEvent) Type() EventType { return EDGE_SKIPPED }

// DegenerateElementEvent is emitted when an element's basis contains a
// zero-length vector and no transform could be produced for it.
type DegenerateElementEvent struct {
	Kind  ElementKind
	Index int
	Err   error
}

func (e DegenerateElementEvent) Type() EventType { return ELEMENT_DEGENERATE }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 64),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// emit buffers an event until the next flush. Called from the sequential
// collection pass only, never from worker goroutines.
func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
