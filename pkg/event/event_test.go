// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

func TestBaseEvent_GetType_ReturnsCorrectType(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    interface{}
	}{
		{name: "reset event", eventType: RunReset, source: "test_source"},
		{name: "orbit event", eventType: NodeOrbited, source: 123},
		{name: "empty source", eventType: RunStarted, source: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &BaseEvent{EventType: tt.eventType, Source: tt.source}
			if event.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", event.GetType(), tt.eventType)
			}
			if event.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", event.GetSource(), tt.source)
			}
		})
	}
}

func TestBusSubscribe_MultipleHandlers_UniqueIDs(t *testing.T) {
	bus := NewEventBus()

	sub1 := bus.Subscribe(RunReset, func(Event) {})
	sub2 := bus.Subscribe(RunReset, func(Event) {})
	_ = bus.Subscribe(NodeOrbited, func(Event) {})

	if sub1.ID == 0 || sub1.ID == sub2.ID {
		t.Errorf("expected distinct non-zero IDs, got %d and %d", sub1.ID, sub2.ID)
	}

	bus.mu.RLock()
	defer bus.mu.RUnlock()
	if n := len(bus.handlers[RunReset]); n != 2 {
		t.Errorf("expected 2 handlers for RunReset, got %d", n)
	}
	if n := len(bus.handlers[NodeOrbited]); n != 1 {
		t.Errorf("expected 1 handler for NodeOrbited, got %d", n)
	}
}

func TestBusPublish_CallsHandlersInOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int

	bus.Subscribe(RunReset, func(Event) { order = append(order, 1) })
	bus.Subscribe(RunReset, func(Event) { order = append(order, 2) })
	bus.Subscribe(NodeReleased, func(Event) { order = append(order, 99) })

	bus.Publish(NewResetEvent(nil, "node", 3, 1))

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("unexpected handler order %v", order)
	}
}

func TestBusPublish_NoSubscribers_NoPanic(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(&BaseEvent{EventType: QuitRequested})
}

func TestSubscriptionCancel_RemovesOnlyTarget(t *testing.T) {
	bus := NewEventBus()
	var calledA, calledB bool

	subA := bus.Subscribe(NodeOrbited, func(Event) { calledA = true })
	bus.Subscribe(NodeOrbited, func(Event) { calledB = true })

	subA.Cancel()
	bus.Publish(NewAttachEvent(NodeOrbited, nil, 4, true))

	if calledA {
		t.Error("cancelled handler should not be called")
	}
	if !calledB {
		t.Error("remaining handler should be called")
	}
}

func TestBusSubscribe_ConcurrentAccess_ThreadSafe(t *testing.T) {
	bus := NewEventBus()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := bus.Subscribe(RunReset, func(Event) {})
			bus.Publish(&BaseEvent{EventType: RunReset})
			sub.Cancel()
		}()
	}
	wg.Wait()

	bus.mu.RLock()
	defer bus.mu.RUnlock()
	if n := len(bus.handlers[RunReset]); n != 0 {
		t.Errorf("expected all handlers cancelled, got %d", n)
	}
}

func TestNewAttachEvent(t *testing.T) {
	e := NewAttachEvent(NodeTargeted, "world", 7, false)
	if e.GetType() != NodeTargeted || e.NodeIndex != 7 || e.Clockwise {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestNewResetEvent(t *testing.T) {
	e := NewResetEvent("world", "wall", 12, 3)
	if e.GetType() != RunReset || e.Reason != "wall" || e.Level != 12 || e.Run != 3 {
		t.Errorf("unexpected event %+v", e)
	}
}
