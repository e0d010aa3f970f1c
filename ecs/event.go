package ecs

// EventType identifies different types of events
type EventType string

// Event is implemented by everything published on the bus
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// EventBus routes published events to subscribers by event type
type EventBus struct {
	subscribers map[EventType][]EventHandler
}

// NewEventBus creates an empty event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *EventBus) Subscribe(eventType EventType, handler EventHandler) {
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish sends an event to all handlers subscribed to its type, in
// subscription order
func (b *EventBus) Publish(event Event) {
	for _, handler := range b.subscribers[event.Type()] {
		handler(event)
	}
}
