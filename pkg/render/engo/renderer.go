// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// Stroke widths in pixels
const (
	lineWidth    = 2
	outlineWidth = 2
)

// spriteSink receives new drawable entities. *common.RenderSystem is the
// production sink.
type spriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// spritePool hands out entities for one frame at a time. Entities not used
// in a frame are hidden instead of removed.
type spritePool struct {
	sink    spriteSink
	sprites []*sprite
	used    int
}

func (p *spritePool) next(d common.Drawable) *sprite {
	if p.used == len(p.sprites) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		s.RenderComponent = common.RenderComponent{
			Drawable: d,
			Scale:    engo.Point{X: 1, Y: 1},
		}
		p.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		p.sprites = append(p.sprites, s)
	}

	s := p.sprites[p.used]
	p.used++
	s.Drawable = d
	s.Hidden = false
	s.Rotation = 0
	return s
}

func (p *spritePool) reset() {
	p.used = 0
}

func (p *spritePool) hideUnused() {
	for _, s := range p.sprites[p.used:] {
		s.Hidden = true
	}
}

// release removes every pooled entity from the sink
func (p *spritePool) release() {
	for _, s := range p.sprites {
		p.sink.Remove(s.BasicEntity)
	}
	p.sprites = nil
	p.used = 0
}

// Canvas implements render.Canvas with engo shapes. Engo's default camera
// maps canvas pixels one-to-one, so frames composed for the window size
// line up without a camera system.
type Canvas struct {
	shapes spritePool
	hud    *HUDLayer
}

// NewCanvas creates a canvas that adds its entities to sink
func NewCanvas(sink spriteSink, font *common.Font) *Canvas {
	return &Canvas{
		shapes: spritePool{sink: sink},
		hud:    NewHUDLayer(sink, font),
	}
}

func toPoint(v physics.Vector2D) engo.Point {
	return engo.Point{X: float32(v.X), Y: float32(v.Y)}
}

func (c *Canvas) shape(d common.Drawable, col color.Color) *sprite {
	s := c.shapes.next(d)
	s.Color = col
	s.SetZIndex(float32(c.shapes.used))
	return s
}

// Clear implements render.Canvas.
func (c *Canvas) Clear() {
	c.shapes.reset()
	c.hud.reset()
}

// Line implements render.Canvas.
func (c *Canvas) Line(from, to physics.Vector2D, col color.RGBA) {
	d := to.Sub(from)
	s := c.shape(common.Rectangle{}, col)
	s.Position = toPoint(from)
	s.Width = float32(d.Length())
	s.Height = lineWidth
	s.Rotation = float32(d.Angle() * 180 / math.Pi)
}

// Polyline implements render.Canvas.
func (c *Canvas) Polyline(points []physics.Vector2D, col color.RGBA) {
	for i := 1; i < len(points); i++ {
		c.Line(points[i-1], points[i], col)
	}
}

// Circle implements render.Canvas.
func (c *Canvas) Circle(center physics.Vector2D, radius float64, col color.RGBA, filled bool) {
	d, fill := shapeFor(filled, col)
	s := c.shape(d, fill)
	s.Position = toPoint(center.Sub(physics.Vector2D{X: radius, Y: radius}))
	s.Width = float32(2 * radius)
	s.Height = float32(2 * radius)
}

// Text implements render.Canvas.
func (c *Canvas) Text(pos physics.Vector2D, text string, col color.RGBA) {
	c.hud.Text(pos, text, col)
}

// Present implements render.Canvas.
func (c *Canvas) Present() {
	c.shapes.hideUnused()
	c.hud.present()
}

// Release removes all entities owned by the canvas
func (c *Canvas) Release() {
	c.shapes.release()
	c.hud.pool.release()
}
