// pkg/engine/input.go
package engine

import "github.com/opd-ai/go-orbiter/pkg/event"

// Input is a discrete, edge-triggered player action
type Input int

const (
	AttachPressed Input = iota + 1
	AttachReleased
	QuitRequested
)

func (i Input) String() string {
	switch i {
	case AttachPressed:
		return "attach_pressed"
	case AttachReleased:
		return "attach_released"
	case QuitRequested:
		return "quit_requested"
	default:
		return "unknown"
	}
}

// HandleInput applies an input immediately. It returns true when the caller
// should stop its frame loop.
func (w *World) HandleInput(in Input) bool {
	switch in {
	case AttachPressed:
		w.HandleAttachRequest()
	case AttachReleased:
		w.HandleRelease()
	case QuitRequested:
		w.logger.Info(w.ctx, "Quit requested", "run", w.run, "game_level", w.Level())
		w.EventBus.Publish(&event.BaseEvent{EventType: event.QuitRequested, Source: w})
		return true
	}
	return false
}
