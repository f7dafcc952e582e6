// pkg/engine/tick.go
package engine

import (
	"fmt"

	"github.com/opd-ai/go-orbiter/pkg/event"
	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// TerminalEvent describes a run that ended during a tick
type TerminalEvent struct {
	Reason   FailureReason
	Position physics.Vector2D
	Level    int
	Run      int
}

// Advance runs one simulation step of dt seconds. It returns a non-nil
// TerminalEvent when the run failed and the world was reset.
func (w *World) Advance(dt float64) *TerminalEvent {
	if dt < 0 {
		panic(fmt.Sprintf("engine: negative time step %v", dt))
	}

	w.updateTargeting()
	w.move(dt)
	w.Trail.Push(w.Player.Position)

	if w.Attachment.State != Orbiting {
		w.Player.TimeDisconnected += dt
	}

	reason, failed := DetectFailure(w.Player, w.Attachment, w.Nodes, w.HalfWidth)
	if !failed {
		return nil
	}
	return w.fail(reason)
}

func (w *World) move(dt float64) {
	if w.Attachment.State == Orbiting {
		w.Player.AdvanceOrbit(w.Attachment.Node, dt, w.Attachment.Clockwise)
		return
	}
	w.Player.AdvanceFree(dt)
}

func (w *World) fail(reason FailureReason) *TerminalEvent {
	ev := &TerminalEvent{
		Reason:   reason,
		Position: w.Player.Position,
		Level:    w.Level(),
		Run:      w.run,
	}

	w.logger.Info(w.ctx, "Run ended",
		"reason", reason.String(), "game_level", ev.Level, "x", ev.Position.X, "y", ev.Position.Y)
	w.EventBus.Publish(event.NewResetEvent(w, reason.String(), ev.Level, ev.Run))

	w.Reset()
	w.startRun()
	return ev
}
