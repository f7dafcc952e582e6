// pkg/entity/node.go
package entity

import (
	"image/color"

	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// Color is an index into the node palette
type Color int

const (
	White Color = iota
	Magenta
	Cyan
	Green
	Red
	Yellow
)

// Palette lists node colors in the order they cycle through the field
var Palette = [...]Color{White, Magenta, Cyan, Green, Red, Yellow}

var paletteRGBA = [...]color.RGBA{
	White:   {255, 255, 255, 255},
	Magenta: {255, 0, 255, 255},
	Cyan:    {0, 255, 255, 255},
	Green:   {0, 255, 0, 255},
	Red:     {255, 0, 0, 255},
	Yellow:  {255, 255, 0, 255},
}

// RGBA returns the display color. Out-of-range values render white.
func (c Color) RGBA() color.RGBA {
	if c < 0 || int(c) >= len(paletteRGBA) {
		return paletteRGBA[White]
	}
	return paletteRGBA[c]
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case Green:
		return "green"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Node is an immovable circular anchor. It is both an attachment target and
// a hazard. Nodes are compared by Index, never by value: two nodes may share
// position, radius and color.
type Node struct {
	Index    int
	Position physics.Vector2D
	Radius   float64
	Color    Color
}

// Collider returns the node's collision shape
func (n Node) Collider() physics.Circle {
	return physics.Circle{Center: n.Position, Radius: n.Radius}
}

// Same reports whether both values refer to the same node of a field
func (n Node) Same(other Node) bool {
	return n.Index == other.Index
}
