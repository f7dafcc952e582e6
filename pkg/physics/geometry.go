// pkg/physics/geometry.go
package physics

import "math"

// AreaHeight is the number of world units visible vertically, whatever the
// viewport size. The visible width follows from the viewport aspect ratio.
const AreaHeight = 5.0

// Viewport is a Y-down rendering surface measured in pixels (or cells).
type Viewport struct {
	Width  float64
	Height float64
}

// AreaWidth returns the number of world units visible horizontally.
func (vp Viewport) AreaWidth() float64 {
	return vp.Width / vp.Height * AreaHeight
}

// Scale returns the number of surface units per world unit.
func (vp Viewport) Scale() float64 {
	return vp.Height / AreaHeight
}

// WorldToScreen maps a Y-up world point to the Y-down surface, with origin
// appearing at the bottom middle of the viewport.
func WorldToScreen(point, origin Vector2D, vp Viewport) Vector2D {
	p := point.Sub(origin)
	return Vector2D{
		X: vp.Width/vp.AreaWidth()*p.X + vp.Width/2,
		Y: vp.Height - vp.Height/AreaHeight*p.Y,
	}
}

// ForwardDirection returns the unit heading for a facing angle. Facing 0
// points up (+Y) and positive facing turns clockwise on screen.
func ForwardDirection(facing float64) Vector2D {
	return FromAngle(math.Pi/2-facing, 1)
}

// CrossPoint projects target onto the line through pos along facing. The
// projection is signed, so the point may lie behind pos.
func CrossPoint(pos Vector2D, facing float64, target Vector2D) Vector2D {
	forward := ForwardDirection(facing)
	toTarget := target.Sub(pos)
	cos := math.Cos(forward.AngleTo(toTarget))
	return pos.Add(forward.Scale(cos * toTarget.Length()))
}

// AlignmentCos returns the cosine of the angle between the heading and the
// direction to target. A target at pos counts as dead ahead.
func AlignmentCos(pos Vector2D, facing float64, target Vector2D) float64 {
	return math.Cos(ForwardDirection(facing).AngleTo(target.Sub(pos)))
}

// IsBehind reports whether target projects onto the backward half of the ray.
func IsBehind(pos Vector2D, facing float64, target Vector2D) bool {
	return AlignmentCos(pos, facing, target) < 0
}

// IsClockwise reports whether circling target from pos with the current
// heading turns clockwise.
func IsClockwise(pos Vector2D, facing float64, target Vector2D) bool {
	return pos.Sub(target).AngleTo(ForwardDirection(facing)) < 0
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(point, origin Vector2D, vp Viewport) Vector2D {
	return Vector2D{
		X: (point.X-vp.Width/2)*vp.AreaWidth()/vp.Width + origin.X,
		Y: (vp.Height-point.Y)*AreaHeight/vp.Height + origin.Y,
	}
}
