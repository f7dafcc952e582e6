// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orbiter/pkg/engine"
)

// Button names registered with engo
const (
	ButtonAttach = "attach"
	ButtonQuit   = "quit"
)

// ButtonState is the edge state of a registered button
type ButtonState interface {
	JustPressed() bool
	JustReleased() bool
}

// ButtonSource looks up a button by name
type ButtonSource func(name string) ButtonState

func engoButtons(name string) ButtonState {
	return engo.Input.Button(name)
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonAttach, engo.KeySpace)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}

// Controls turns button edges into engine inputs
type Controls struct {
	buttons ButtonSource
}

// NewControls creates controls reading from src, or from engo.Input when src
// is nil.
func NewControls(src ButtonSource) *Controls {
	if src == nil {
		src = engoButtons
	}
	return &Controls{buttons: src}
}

// Poll returns the inputs of the current frame. A press and release within
// one frame are both reported, press first.
func (c *Controls) Poll() []engine.Input {
	var inputs []engine.Input

	attach := c.buttons(ButtonAttach)
	if attach.JustPressed() {
		inputs = append(inputs, engine.AttachPressed)
	}
	if attach.JustReleased() {
		inputs = append(inputs, engine.AttachReleased)
	}
	if c.buttons(ButtonQuit).JustPressed() {
		inputs = append(inputs, engine.QuitRequested)
	}

	return inputs
}
