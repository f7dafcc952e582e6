// pkg/render/engo/hud.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// hudZIndex keeps HUD text above every shape
const hudZIndex = 1e6

// HUDLayer draws text entities on top of the scene. Entities are pooled and
// reused between frames.
type HUDLayer struct {
	font *common.Font
	pool spritePool
}

// NewHUDLayer creates a HUD layer. A nil font disables text.
func NewHUDLayer(sink spriteSink, font *common.Font) *HUDLayer {
	return &HUDLayer{
		font: font,
		pool: spritePool{sink: sink},
	}
}

// Text places a line of text with its top-left corner at pos
func (hud *HUDLayer) Text(pos physics.Vector2D, text string, c color.RGBA) {
	if hud.font == nil {
		return
	}
	s := hud.pool.next(common.Text{Font: hud.font, Text: text})
	s.Color = c
	s.Position = engo.Point{X: float32(pos.X), Y: float32(pos.Y)}
	s.SetZIndex(hud.hudZ())
}

func (hud *HUDLayer) hudZ() float32 {
	return float32(hudZIndex + hud.pool.used)
}

func (hud *HUDLayer) reset() {
	hud.pool.reset()
}

func (hud *HUDLayer) present() {
	hud.pool.hideUnused()
}
