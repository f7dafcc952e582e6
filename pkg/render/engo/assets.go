// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/gomono"
)

// hudFontURL is the virtual file the embedded HUD font is registered under
const hudFontURL = "orbiter/gomono.ttf"

// HUDFontSize is the HUD text size in points
const HUDFontSize = 24

// AssetManager handles loading and managing game assets
type AssetManager struct {
	font   *common.Font
	loaded bool
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// LoadAssets registers the embedded font with engo and prepares it for text
// rendering. Calling it again is a no-op.
func (am *AssetManager) LoadAssets() error {
	if am.loaded {
		return nil
	}

	if err := engo.Files.LoadReaderData(hudFontURL, bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("failed to register HUD font: %w", err)
	}

	font := &common.Font{
		URL:  hudFontURL,
		FG:   color.White,
		Size: HUDFontSize,
	}
	if err := font.CreatePreloaded(); err != nil {
		return fmt.Errorf("failed to create HUD font: %w", err)
	}

	am.font = font
	am.loaded = true
	return nil
}

// Font returns the HUD font, or nil before LoadAssets succeeded
func (am *AssetManager) Font() *common.Font {
	return am.font
}

// shapeFor returns the drawable for a circle, filled or as an outline
func shapeFor(filled bool, c color.RGBA) (common.Drawable, color.Color) {
	if filled {
		return common.Circle{}, c
	}
	return common.Circle{BorderWidth: outlineWidth, BorderColor: c}, color.Transparent
}
