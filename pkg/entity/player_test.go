// pkg/entity/player_test.go
package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-orbiter/pkg/physics"
)

func newTestPlayer(pos physics.Vector2D, facing float64) *Player {
	p := NewPlayer(DefaultSpeed, DefaultBodyRadius)
	p.Position = pos
	p.Facing = facing
	return p
}

func TestNewPlayer_StartsAtOrigin(t *testing.T) {
	p := NewPlayer(DefaultSpeed, DefaultBodyRadius)
	assert.Equal(t, physics.Vector2D{}, p.Position)
	assert.Zero(t, p.Facing)
	assert.Zero(t, p.TimeDisconnected)
	assert.Equal(t, 4.0, p.Speed)
	assert.Equal(t, 0.05, p.BodyRadius)
}

func TestPlayer_AdvanceFree(t *testing.T) {
	tests := []struct {
		name   string
		facing float64
		dt     float64
		want   physics.Vector2D
	}{
		{"up", 0, 0.5, physics.Vector2D{Y: 2}},
		{"right", math.Pi / 2, 0.25, physics.Vector2D{X: 1}},
		{"zero_dt", 1.2, 0, physics.Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(physics.Vector2D{}, tt.facing)
			p.AdvanceFree(tt.dt)
			assert.InDelta(t, tt.want.X, p.Position.X, 1e-12)
			assert.InDelta(t, tt.want.Y, p.Position.Y, 1e-12)
			assert.Equal(t, tt.facing, p.Facing, "free flight must not turn")
		})
	}
}

func TestPlayer_AdvanceOrbit_ConservesRadius(t *testing.T) {
	node := Node{Index: 0, Position: physics.Vector2D{X: 0.3, Y: 1.5}, Radius: 0.1}
	p := newTestPlayer(physics.Vector2D{}, 0)
	radius := p.Position.Distance(node.Position)

	steps := []float64{0.016, 0.033, 0.001, 0.25, 0.0167, 0.5, 0.1, 0.007}
	for i := 0; i < 50; i++ {
		for _, dt := range steps {
			p.AdvanceOrbit(node, dt, i%2 == 0)
			require.InDelta(t, radius, p.Position.Distance(node.Position), 1e-9)
		}
	}
}

func TestPlayer_AdvanceOrbit_FullPeriodReturnsToStart(t *testing.T) {
	node := Node{Position: physics.Vector2D{X: -0.4, Y: 1.2}, Radius: 0.2}
	start := physics.Vector2D{X: 0.1, Y: 0.2}
	p := newTestPlayer(start, 0)
	period := p.OrbitPeriod(node)

	const steps = 600
	for i := 0; i < steps; i++ {
		p.AdvanceOrbit(node, period/steps, false)
	}

	startAngle := start.Sub(node.Position).Angle()
	endAngle := p.Position.Sub(node.Position).Angle()
	diff := math.Remainder(endAngle-startAngle, 2*math.Pi)
	assert.InDelta(t, 0, diff, 1e-9)
	assert.InDelta(t, start.X, p.Position.X, 1e-9)
	assert.InDelta(t, start.Y, p.Position.Y, 1e-9)
}

func TestPlayer_AdvanceOrbit_DirectionSign(t *testing.T) {
	node := Node{Position: physics.Vector2D{X: 1, Y: 1}, Radius: 0.1}

	tests := []struct {
		name      string
		clockwise bool
		wantSign  float64
	}{
		{"clockwise_decreases_angle", true, -1},
		{"counter_clockwise_increases_angle", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(physics.Vector2D{}, 0)
			before := p.Position.Sub(node.Position)
			p.AdvanceOrbit(node, 0.05, tt.clockwise)
			after := p.Position.Sub(node.Position)
			delta := before.AngleTo(after)
			assert.Equal(t, tt.wantSign, math.Copysign(1, delta))
		})
	}
}

func TestPlayer_AdvanceOrbit_FacesAlongOrbit(t *testing.T) {
	node := Node{Position: physics.Vector2D{X: 1}, Radius: 0.1}

	for _, clockwise := range []bool{true, false} {
		p := newTestPlayer(physics.Vector2D{}, 0)
		p.AdvanceOrbit(node, 0.1, clockwise)
		offset := p.Position.Sub(node.Position)
		// Heading is tangent to the circle.
		assert.InDelta(t, 0, p.Forward().Dot(offset), 1e-9)

		// And matches the direction of travel.
		prev := p.Position
		p.AdvanceOrbit(node, 1e-4, clockwise)
		travel := p.Position.Sub(prev).Normalize()
		assert.InDelta(t, 1, travel.Dot(p.Forward()), 1e-6)
	}
}

func TestPlayer_AdvanceOrbit_QuarterPeriod(t *testing.T) {
	node := Node{Position: physics.Vector2D{Y: 1.5}, Radius: 0.1}
	p := newTestPlayer(physics.Vector2D{}, 0)
	period := p.OrbitPeriod(node)
	assert.InDelta(t, 2*math.Pi*1.5/4.0, period, 1e-12)

	p.AdvanceOrbit(node, period/4, false)
	offset := p.Position.Sub(node.Position)
	assert.InDelta(t, 1.5, offset.Length(), 1e-9)
	// (0,-1.5) rotated a quarter turn counter-clockwise is (1.5, 0).
	assert.InDelta(t, 1.5, offset.X, 1e-9)
	assert.InDelta(t, 0, offset.Y, 1e-9)
}

func TestPlayer_AdvanceOrbit_ZeroRadiusIsNoop(t *testing.T) {
	node := Node{Position: physics.Vector2D{X: 2, Y: 3}, Radius: 0.1}
	p := newTestPlayer(node.Position, 0.7)
	p.AdvanceOrbit(node, 0.1, true)
	assert.Equal(t, node.Position, p.Position)
	assert.Equal(t, 0.7, p.Facing)
	assert.False(t, math.IsNaN(p.Facing))
}

func TestPlayer_Reset(t *testing.T) {
	p := newTestPlayer(physics.Vector2D{X: 1, Y: 20}, 2)
	p.TimeDisconnected = 3
	p.Reset()
	assert.Equal(t, physics.Vector2D{}, p.Position)
	assert.Zero(t, p.Facing)
	assert.Zero(t, p.TimeDisconnected)
	assert.Equal(t, DefaultSpeed, p.Speed)
}
