// pkg/engine/trail.go
package engine

import "github.com/opd-ai/go-orbiter/pkg/physics"

// TrailCapacity is the number of past positions kept for display
const TrailCapacity = 100

// Trail is a bounded history of player positions, oldest first
type Trail struct {
	points   []physics.Vector2D
	capacity int
}

// NewTrail creates an empty trail. A non-positive capacity uses TrailCapacity.
func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		capacity = TrailCapacity
	}
	return &Trail{
		points:   make([]physics.Vector2D, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a position, dropping the oldest one when full
func (t *Trail) Push(p physics.Vector2D) {
	if len(t.points) == t.capacity {
		copy(t.points, t.points[1:])
		t.points[len(t.points)-1] = p
		return
	}
	t.points = append(t.points, p)
}

// Points returns a copy of the stored positions, oldest first
func (t *Trail) Points() []physics.Vector2D {
	return append([]physics.Vector2D(nil), t.points...)
}

// Len returns the number of stored positions
func (t *Trail) Len() int {
	return len(t.points)
}

// Clear removes all positions
func (t *Trail) Clear() {
	t.points = t.points[:0]
}
