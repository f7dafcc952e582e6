// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbiter/pkg/config"
	"github.com/opd-ai/go-orbiter/pkg/engine"
	"github.com/opd-ai/go-orbiter/pkg/logging"
	"github.com/opd-ai/go-orbiter/pkg/physics"
	"github.com/opd-ai/go-orbiter/pkg/render"
)

// OrbitSystem advances the world once per engo frame and redraws it
type OrbitSystem struct {
	world    *engine.World
	canvas   render.Canvas
	controls *Controls
	viewport physics.Viewport
	quit     func()
	stopped  bool
}

// NewOrbitSystem creates the system driving world
func NewOrbitSystem(world *engine.World, canvas render.Canvas, controls *Controls, vp physics.Viewport) *OrbitSystem {
	return &OrbitSystem{
		world:    world,
		canvas:   canvas,
		controls: controls,
		viewport: vp,
		quit:     engo.Exit,
	}
}

// Update satisfies the ecs.System interface
func (s *OrbitSystem) Update(dt float32) {
	if s.stopped {
		return
	}

	for _, in := range s.controls.Poll() {
		if s.world.HandleInput(in) {
			s.stopped = true
			s.quit()
			return
		}
	}

	s.world.Advance(float64(dt))
	render.DrawFrame(s.canvas, s.world.Snapshot(), s.viewport)
}

// Remove satisfies the ecs.System interface
func (s *OrbitSystem) Remove(basic ecs.BasicEntity) {}

// GameScene represents the main game scene in Engo
type GameScene struct {
	world    *engine.World
	viewport physics.Viewport
	assets   *AssetManager
	logger   *logging.Logger
	canvas   *Canvas
}

// NewGameScene creates a new game scene
func NewGameScene(world *engine.World, vp physics.Viewport, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GameScene{
		world:    world,
		viewport: vp,
		assets:   NewAssetManager(),
		logger:   logger,
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "OrbiterScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if err := scene.assets.LoadAssets(); err != nil {
		scene.logger.Error(context.Background(), "HUD disabled", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	w, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Error(context.Background(), "Unexpected engo updater", nil)
		return
	}

	common.SetBackground(color.Black)
	renderSystem := &common.RenderSystem{}
	w.AddSystem(renderSystem)

	SetupInputBindings()
	scene.canvas = NewCanvas(renderSystem, scene.assets.Font())
	w.AddSystem(NewOrbitSystem(scene.world, scene.canvas, NewControls(nil), scene.viewport))
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.logger.Info(scene.world.Context(), "Window closed",
		"run", scene.world.Run(), "game_level", scene.world.Level())
}

// Run opens the game window and blocks until it is closed
func Run(world *engine.World, cfg *config.GameConfig, logger *logging.Logger) {
	opts := engo.RunOptions{
		Title:      "Orbiter",
		Width:      cfg.Screen.Width,
		Height:     cfg.Screen.Height,
		Fullscreen: cfg.Screen.Fullscreen,
		FPSLimit:   cfg.Screen.FPS,
	}
	engo.Run(opts, NewGameScene(world, cfg.Viewport(), logger))
}
