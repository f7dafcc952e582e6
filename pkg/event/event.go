// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Game event types
const (
	RunStarted    Type = "run_started"
	RunReset      Type = "run_reset"
	NodeTargeted  Type = "node_targeted"
	NodeOrbited   Type = "node_orbited"
	NodeReleased  Type = "node_released"
	QuitRequested Type = "quit_requested"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is a registered handler. Cancel removes it from the bus.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus dispatches events synchronously to subscribed handlers, in
// subscription order, on the publisher's goroutine.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := append([]registration(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// AttachEvent reports a change of the player's attachment to a node
type AttachEvent struct {
	BaseEvent
	NodeIndex int
	Clockwise bool
}

// NewAttachEvent creates a new attachment event
func NewAttachEvent(eventType Type, source interface{}, nodeIndex int, clockwise bool) *AttachEvent {
	return &AttachEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		NodeIndex: nodeIndex,
		Clockwise: clockwise,
	}
}

// ResetEvent reports a failed run that was sent back to the start
type ResetEvent struct {
	BaseEvent
	Reason string
	Level  int
	Run    int
}

// NewResetEvent creates a new reset event
func NewResetEvent(source interface{}, reason string, level, run int) *ResetEvent {
	return &ResetEvent{
		BaseEvent: BaseEvent{
			EventType: RunReset,
			Source:    source,
		},
		Reason: reason,
		Level:  level,
		Run:    run,
	}
}
