// pkg/engine/attach.go
package engine

import (
	"math"

	"github.com/opd-ai/go-orbiter/pkg/entity"
	"github.com/opd-ai/go-orbiter/pkg/event"
	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// Attachment tuning
const (
	// MaxAcquireDistance is the furthest a node can be and still be targeted
	MaxAcquireDistance = 2.0
	// AlignmentCos is the minimum |cos| between heading and node direction
	// for locking into an orbit
	AlignmentCos = 0.9
)

// AttachState identifies the variant held by an Attachment
type AttachState int

const (
	Detached AttachState = iota
	Targeting
	Orbiting
)

func (s AttachState) String() string {
	switch s {
	case Detached:
		return "detached"
	case Targeting:
		return "targeting"
	case Orbiting:
		return "orbiting"
	default:
		return "unknown"
	}
}

// Attachment is the relationship between the player and a node. Node and
// Clockwise are only meaningful while Targeting or Orbiting; the node is a
// value copy taken from the world's field.
type Attachment struct {
	State     AttachState
	Node      entity.Node
	Clockwise bool
}

// Target returns the attached node, if any
func (a Attachment) Target() (entity.Node, bool) {
	if a.State == Detached {
		return entity.Node{}, false
	}
	return a.Node, true
}

func aligned(p *entity.Player, node entity.Node) bool {
	return math.Abs(physics.AlignmentCos(p.Position, p.Facing, node.Position)) >= AlignmentCos
}

// collidesAlongRay reports whether the player's heading passes through node
func collidesAlongRay(p *entity.Player, node entity.Node) bool {
	cross := physics.CrossPoint(p.Position, p.Facing, node.Position)
	return node.Collider().ContainsPoint(cross, p.BodyRadius)
}

func isViableTarget(p *entity.Player, node entity.Node, halfWidth float64) bool {
	if physics.IsBehind(p.Position, p.Facing, node.Position) {
		return false
	}
	cross := physics.CrossPoint(p.Position, p.Facing, node.Position)
	if math.Abs(cross.X) > halfWidth {
		return false
	}
	if collidesAlongRay(p, node) {
		return false
	}
	return p.Position.Distance(node.Position) <= MaxAcquireDistance
}

// selectTarget picks the viable node whose cross point is closest to the
// player. The first node in field order wins ties.
func selectTarget(p *entity.Player, nodes []entity.Node, halfWidth float64) (entity.Node, bool) {
	var (
		best    entity.Node
		found   bool
		nearest float64
	)
	for _, n := range nodes {
		if !isViableTarget(p, n, halfWidth) {
			continue
		}
		d := physics.CrossPoint(p.Position, p.Facing, n.Position).DistanceSquared(p.Position)
		if !found || d < nearest {
			best, nearest, found = n, d, true
		}
	}
	return best, found
}

// fallbackTarget picks the nearest node the heading does not run into
func fallbackTarget(p *entity.Player, nodes []entity.Node) (entity.Node, bool) {
	var (
		best    entity.Node
		found   bool
		nearest float64
	)
	for _, n := range nodes {
		if collidesAlongRay(p, n) {
			continue
		}
		d := p.Position.DistanceSquared(n.Position)
		if !found || d < nearest {
			best, nearest, found = n, d, true
		}
	}
	return best, found
}

// HandleAttachRequest tries to attach the player to a node. It does nothing
// unless the player is detached.
func (w *World) HandleAttachRequest() {
	if w.Attachment.State != Detached {
		return
	}

	p := w.Player
	if node, ok := selectTarget(p, w.Nodes, w.HalfWidth); ok {
		clockwise := physics.IsClockwise(p.Position, p.Facing, node.Position)
		if aligned(p, node) {
			w.lock(node, clockwise)
		} else {
			w.setAttachment(Attachment{State: Targeting, Node: node, Clockwise: clockwise}, event.NodeTargeted)
		}
		return
	}

	if node, ok := fallbackTarget(p, w.Nodes); ok {
		w.lock(node, physics.IsClockwise(p.Position, p.Facing, node.Position))
		return
	}

	w.logger.Debug(w.ctx, "Attach request found no node",
		"x", p.Position.X, "y", p.Position.Y, "facing", p.Facing)
}

// HandleRelease detaches the player unconditionally
func (w *World) HandleRelease() {
	if w.Attachment.State == Detached {
		return
	}
	node := w.Attachment.Node
	w.Attachment = Attachment{}
	w.logger.Debug(w.ctx, "Released node", "node", node.Index)
	w.EventBus.Publish(event.NewAttachEvent(event.NodeReleased, w, node.Index, false))
}

func (w *World) lock(node entity.Node, clockwise bool) {
	w.Player.TimeDisconnected = 0
	w.setAttachment(Attachment{State: Orbiting, Node: node, Clockwise: clockwise}, event.NodeOrbited)
}

func (w *World) setAttachment(a Attachment, eventType event.Type) {
	w.Attachment = a
	w.logger.Debug(w.ctx, "Attachment changed",
		"state", a.State.String(), "node", a.Node.Index, "clockwise", a.Clockwise)
	w.EventBus.Publish(event.NewAttachEvent(eventType, w, a.Node.Index, a.Clockwise))
}

// updateTargeting locks into orbit once the heading lines up with the
// targeted node.
func (w *World) updateTargeting() {
	if w.Attachment.State != Targeting {
		return
	}
	if aligned(w.Player, w.Attachment.Node) {
		w.lock(w.Attachment.Node, w.Attachment.Clockwise)
	}
}
