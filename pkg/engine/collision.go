// pkg/engine/collision.go
package engine

import (
	"math"

	"github.com/opd-ai/go-orbiter/pkg/entity"
)

// Failure thresholds on Player.TimeDisconnected, in seconds
const (
	WallGracePeriod = 0.1
	MaxTimeOutside  = 0.5
)

// FailureReason identifies what ended a run
type FailureReason int

const (
	FailureNone FailureReason = iota
	FailureWall
	FailureNode
	FailureOutside
)

func (r FailureReason) String() string {
	switch r {
	case FailureNone:
		return "none"
	case FailureWall:
		return "wall"
	case FailureNode:
		return "node"
	case FailureOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// DetectFailure evaluates the terminal conditions for the player's current
// position. Node contact is reported first, then wall contact, then time
// spent outside the corridor.
func DetectFailure(player *entity.Player, attachment Attachment, nodes []entity.Node, halfWidth float64) (FailureReason, bool) {
	body := player.Collider()
	for _, n := range nodes {
		if body.Collides(n.Collider()) {
			return FailureNode, true
		}
	}

	x := math.Abs(player.Position.X)
	if attachment.State != Orbiting &&
		math.Abs(x-halfWidth) < player.BodyRadius &&
		player.TimeDisconnected > WallGracePeriod {
		return FailureWall, true
	}

	if x > halfWidth && player.TimeDisconnected > MaxTimeOutside {
		return FailureOutside, true
	}

	return FailureNone, false
}
