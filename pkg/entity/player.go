// pkg/entity/player.go
package entity

import (
	"math"

	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// Default player tuning
const (
	DefaultSpeed      = 4.0
	DefaultBodyRadius = 0.05
)

// Player is the moving point the user steers by attaching to nodes
type Player struct {
	Position physics.Vector2D
	Speed    float64
	Facing   float64 // radians, 0 = up
	// BodyRadius is the contact radius used against nodes and walls
	BodyRadius float64
	// TimeDisconnected is the time in seconds since the player last locked
	// into an orbit (or since the run started)
	TimeDisconnected float64
}

// NewPlayer creates a player at the origin facing up
func NewPlayer(speed, bodyRadius float64) *Player {
	return &Player{
		Speed:      speed,
		BodyRadius: bodyRadius,
	}
}

// Reset puts the player back at the start of the corridor
func (p *Player) Reset() {
	p.Position = physics.Vector2D{}
	p.Facing = 0
	p.TimeDisconnected = 0
}

// Forward returns the unit heading vector
func (p *Player) Forward() physics.Vector2D {
	return physics.ForwardDirection(p.Facing)
}

// Collider returns the player's collision shape
func (p *Player) Collider() physics.Circle {
	return physics.Circle{Center: p.Position, Radius: p.BodyRadius}
}

// AdvanceFree moves the player in a straight line along its heading.
func (p *Player) AdvanceFree(dt float64) {
	p.Position = p.Position.Add(p.Forward().Scale(p.Speed * dt))
}

// AdvanceOrbit rotates the player around node at its current distance so
// that the arc travelled equals Speed*dt, then turns the player tangent to
// the orbit. A player sitting on the node center is left untouched.
func (p *Player) AdvanceOrbit(node Node, dt float64, clockwise bool) {
	offset := p.Position.Sub(node.Position)
	radius := offset.Length()
	if radius == 0 {
		return
	}

	period := 2 * math.Pi * radius / p.Speed
	step := 2 * math.Pi * dt / period
	reference := physics.UnitX
	if clockwise {
		step = -step
		reference = physics.UnitX.Neg()
	}

	offset = offset.Rotate(step)
	p.Position = node.Position.Add(offset)
	p.Facing = offset.AngleTo(reference)
}

// OrbitPeriod returns the time needed for one full turn around node from the
// player's current position.
func (p *Player) OrbitPeriod(node Node) float64 {
	return 2 * math.Pi * p.Position.Distance(node.Position) / p.Speed
}
