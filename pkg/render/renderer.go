// pkg/render/renderer.go
package render

import (
	"context"
	"fmt"
	"image/color"

	"github.com/opd-ai/go-orbiter/pkg/engine"
	"github.com/opd-ai/go-orbiter/pkg/logging"
	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// Colors shared by every renderer
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorWhite      = color.RGBA{255, 255, 255, 255}
	ColorCorridor   = color.RGBA{100, 100, 100, 255}
	ColorDanger     = color.RGBA{255, 0, 0, 255}
)

// Canvas is a drawing surface. Coordinates are in surface units, Y down,
// as produced by physics.WorldToScreen.
type Canvas interface {
	Clear()
	Line(from, to physics.Vector2D, c color.RGBA)
	Polyline(points []physics.Vector2D, c color.RGBA)
	Circle(center physics.Vector2D, radius float64, c color.RGBA, filled bool)
	Text(pos physics.Vector2D, text string, c color.RGBA)
	Present()
}

// Backdrop is implemented by canvases that paint a world-anchored
// background before the frame is composed.
type Backdrop interface {
	DrawBackdrop(origin physics.Vector2D, vp physics.Viewport)
}

// CameraOrigin returns the world point shown at the bottom middle of the
// screen. The camera follows the player vertically and half-way sideways.
func CameraOrigin(player physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{X: player.X / 2, Y: player.Y - 1}
}

// LevelText returns the HUD label for a snapshot
func LevelText(snap engine.Snapshot) string {
	return fmt.Sprintf("Level: %d", snap.Level)
}

// DrawFrame composes one frame of snap on c. The canvas is cleared and
// presented.
func DrawFrame(c Canvas, snap engine.Snapshot, vp physics.Viewport) {
	origin := CameraOrigin(snap.Player.Position)
	toScreen := func(p physics.Vector2D) physics.Vector2D {
		return physics.WorldToScreen(p, origin, vp)
	}
	scale := vp.Scale()

	c.Clear()
	if b, ok := c.(Backdrop); ok {
		b.DrawBackdrop(origin, vp)
	}

	corridor := ColorDanger
	if snap.Attachment.State == engine.Orbiting {
		corridor = ColorCorridor
	}
	bottom := origin.Y
	top := origin.Y + physics.AreaHeight
	for _, x := range []float64{-snap.HalfWidth, snap.HalfWidth} {
		c.Line(toScreen(physics.Vector2D{X: x, Y: bottom}), toScreen(physics.Vector2D{X: x, Y: top}), corridor)
	}

	for _, n := range snap.Nodes {
		if n.Position.Y+n.Radius < bottom || n.Position.Y-n.Radius > top {
			continue
		}
		c.Circle(toScreen(n.Position), n.Radius*scale, n.Color.RGBA(), true)
	}

	if len(snap.Trail) > 1 {
		points := make([]physics.Vector2D, len(snap.Trail))
		for i, p := range snap.Trail {
			points[i] = toScreen(p)
		}
		c.Polyline(points, ColorWhite)
	}

	player := toScreen(snap.Player.Position)
	if n, ok := snap.Attachment.Target(); ok {
		center := toScreen(n.Position)
		if snap.Attachment.State == engine.Orbiting {
			radius := snap.Player.Position.Distance(n.Position)
			c.Circle(center, radius*scale, ColorWhite, false)
			c.Line(player, center, ColorWhite)
		} else {
			c.Line(player, center, n.Color.RGBA())
		}
	}

	c.Circle(player, snap.Player.BodyRadius*scale, ColorWhite, true)
	c.Text(physics.Vector2D{X: 10, Y: 10}, LevelText(snap), ColorWhite)
	c.Present()
}

// NullRenderer is a Canvas that only logs what it is asked to draw.
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context
	calls  int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{
		logger: logger,
		ctx:    context.Background(),
	}
}

// Clear implements Canvas.
func (d *NullRenderer) Clear() {
	d.calls = 0
}

// Line implements Canvas.
func (d *NullRenderer) Line(from, to physics.Vector2D, c color.RGBA) {
	d.calls++
}

// Polyline implements Canvas.
func (d *NullRenderer) Polyline(points []physics.Vector2D, c color.RGBA) {
	d.calls++
}

// Circle implements Canvas.
func (d *NullRenderer) Circle(center physics.Vector2D, radius float64, c color.RGBA, filled bool) {
	d.calls++
}

// Text implements Canvas.
func (d *NullRenderer) Text(pos physics.Vector2D, text string, c color.RGBA) {
	d.calls++
	d.logger.Debug(d.ctx, "Text drawn", "text", text)
}

// Present implements Canvas.
func (d *NullRenderer) Present() {
	d.logger.Debug(d.ctx, "Frame presented", "primitives", d.calls)
}

// Primitives returns the number of shapes drawn since the last Clear
func (d *NullRenderer) Primitives() int {
	return d.calls
}
