// pkg/render/terminal.go
package render

import (
	"context"
	"image/color"
	"math"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-orbiter/pkg/engine"
	"github.com/opd-ai/go-orbiter/pkg/logging"
	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// cellAspect is the height of a terminal cell relative to its width
const cellAspect = 2.0

// Background dust tuning
const (
	dustFrequency = 2.5
	dustThreshold = 0.3
)

// Key is a terminal key the game reacts to
type Key int

const (
	KeyNone Key = iota
	KeyAttach
	KeyQuit
	KeyResize
)

// TerminalRenderer draws frames on a tcell screen. Canvas coordinates are
// columns horizontally and half-rows vertically, so world units stay square.
type TerminalRenderer struct {
	screen tcell.Screen
	noise  *perlin.Perlin
	logger *logging.Logger
}

// NewTerminalRenderer creates a renderer on an initialized screen. The seed
// selects the background dust pattern.
func NewTerminalRenderer(screen tcell.Screen, seed int64, logger *logging.Logger) *TerminalRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	screen.HideCursor()
	return &TerminalRenderer{
		screen: screen,
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		logger: logger,
	}
}

// Viewport returns the drawable area in canvas units
func (r *TerminalRenderer) Viewport() physics.Viewport {
	cols, rows := r.screen.Size()
	return physics.Viewport{Width: float64(cols), Height: float64(rows) * cellAspect}
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func toCell(p physics.Vector2D) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / cellAspect))
}

func (r *TerminalRenderer) set(col, row int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// Clear implements Canvas.
func (r *TerminalRenderer) Clear() {
	r.screen.SetStyle(styleFor(ColorBackground))
	r.screen.Clear()
}

// DrawBackdrop implements Backdrop. Dust is sampled in world space so it
// scrolls with the camera.
func (r *TerminalRenderer) DrawBackdrop(origin physics.Vector2D, vp physics.Viewport) {
	cols, rows := r.screen.Size()
	style := styleFor(color.RGBA{60, 60, 60, 255})
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := physics.Vector2D{X: float64(col) + 0.5, Y: (float64(row) + 0.5) * cellAspect}
			w := physics.ScreenToWorld(center, origin, vp)
			if r.noise.Noise2D(w.X*dustFrequency, w.Y*dustFrequency) > dustThreshold {
				r.set(col, row, '.', style)
			}
		}
	}
}

func lineRune(dx, dy int) rune {
	ax, ay := abs(dx), abs(dy)
	switch {
	case ax*2 < ay:
		return '|'
	case ay*2 < ax:
		return '-'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// line draws a Bresenham line between two cells
func (r *TerminalRenderer) line(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r.set(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Line implements Canvas.
func (r *TerminalRenderer) Line(from, to physics.Vector2D, c color.RGBA) {
	x0, y0 := toCell(from)
	x1, y1 := toCell(to)
	r.line(x0, y0, x1, y1, lineRune(x1-x0, y1-y0), styleFor(c))
}

// Polyline implements Canvas.
func (r *TerminalRenderer) Polyline(points []physics.Vector2D, c color.RGBA) {
	style := styleFor(c)
	for i := 1; i < len(points); i++ {
		x0, y0 := toCell(points[i-1])
		x1, y1 := toCell(points[i])
		r.line(x0, y0, x1, y1, '.', style)
	}
}

// Circle implements Canvas. Circles smaller than a cell still mark the cell
// holding their center.
func (r *TerminalRenderer) Circle(center physics.Vector2D, radius float64, c color.RGBA, filled bool) {
	style := styleFor(c)
	if !filled {
		steps := int(math.Max(16, 2*math.Pi*radius))
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			col, row := toCell(center.Add(physics.FromAngle(a, radius)))
			r.set(col, row, '.', style)
		}
		return
	}

	col0, row0 := toCell(center.Sub(physics.Vector2D{X: radius, Y: radius}))
	col1, row1 := toCell(center.Add(physics.Vector2D{X: radius, Y: radius}))
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			cell := physics.Vector2D{X: float64(col) + 0.5, Y: (float64(row) + 0.5) * cellAspect}
			if cell.Distance(center) <= radius {
				r.set(col, row, 'O', style)
			}
		}
	}
	col, row := toCell(center)
	r.set(col, row, 'O', style)
}

// Text implements Canvas.
func (r *TerminalRenderer) Text(pos physics.Vector2D, text string, c color.RGBA) {
	col, row := toCell(pos)
	style := styleFor(c)
	for i, ch := range []rune(text) {
		r.set(col+i, row, ch, style)
	}
}

// Present implements Canvas.
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// TranslateEvent maps a terminal event onto a game key
func TranslateEvent(ev tcell.Event) Key {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return KeyQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				return KeyAttach
			case 'q':
				return KeyQuit
			}
		}
	case *tcell.EventResize:
		return KeyResize
	}
	return KeyNone
}

// ToggleInput turns the attach key into a press or a release. Terminals do
// not report key-up events, so the key toggles the attachment.
func ToggleInput(state engine.AttachState) engine.Input {
	if state == engine.Detached {
		return engine.AttachPressed
	}
	return engine.AttachReleased
}

// Keys polls the screen on its own goroutine and delivers game keys until
// ctx is done or the screen is finalized.
func (r *TerminalRenderer) Keys(ctx context.Context) <-chan Key {
	keys := make(chan Key, 16)
	go func() {
		defer close(keys)
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			k := TranslateEvent(ev)
			if k == KeyNone {
				continue
			}
			select {
			case keys <- k:
			case <-ctx.Done():
				return
			}
		}
	}()
	return keys
}

// Run drives world at fps frames per second until the player quits or ctx
// is done. Input is applied between ticks on the calling goroutine.
func (r *TerminalRenderer) Run(ctx context.Context, world *engine.World, fps int) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	keys := r.Keys(ctx)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case k, ok := <-keys:
			if !ok {
				return
			}
			switch k {
			case KeyQuit:
				world.HandleInput(engine.QuitRequested)
				return
			case KeyAttach:
				world.HandleInput(ToggleInput(world.Attachment.State))
			case KeyResize:
				r.screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if ev := world.Advance(dt); ev != nil {
				r.logger.Debug(world.Context(), "Terminal frame reset", "reason", ev.Reason.String())
			}
			DrawFrame(r, world.Snapshot(), r.Viewport())
		}
	}
}
