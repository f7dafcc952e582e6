// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// ContainsPoint reports whether p lies strictly inside the circle grown by margin.
func (c Circle) ContainsPoint(p Vector2D, margin float64) bool {
	return c.Center.Distance(p) < c.Radius+margin
}
