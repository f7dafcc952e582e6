// cmd/orbiter/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-orbiter/pkg/audio"
	"github.com/opd-ai/go-orbiter/pkg/config"
	"github.com/opd-ai/go-orbiter/pkg/engine"
	"github.com/opd-ai/go-orbiter/pkg/event"
	"github.com/opd-ai/go-orbiter/pkg/logging"
	"github.com/opd-ai/go-orbiter/pkg/render"
	engorender "github.com/opd-ai/go-orbiter/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (.json or .yaml)")
	envFile := flag.String("env", ".env", "Environment file with ORBITER_* overrides")
	seed := flag.Uint64("seed", 0, "Field seed (overrides config, 0 keeps it)")
	renderer := flag.String("renderer", "", "Renderer type: 'engo', 'terminal' or 'headless'")
	logPath := flag.String("log", "orbiter.log", "Log file used by the terminal renderer")
	duration := flag.Duration("duration", 30*time.Second, "Simulated time for the headless renderer")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	// Load configuration
	gameConfig := config.DefaultConfig()
	if *configPath != "" {
		var err error
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	if err := config.ApplyEnv(gameConfig); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	if *seed != 0 {
		gameConfig.Seed = *seed
	}
	if gameConfig.Seed == 0 {
		gameConfig.Seed = uint64(time.Now().UnixNano())
	}
	if *renderer != "" {
		gameConfig.Renderer = strings.ToLower(*renderer)
	}

	// The terminal renderer owns stdout, so logs go to a file
	logger := logging.NewLogger()
	if gameConfig.Renderer == config.RendererTerminal {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logger = logging.NewLoggerWithWriter(f)
	}

	eventBus := event.NewEventBus()
	world, err := engine.NewWorldFromConfig(gameConfig,
		engine.WithLogger(logger),
		engine.WithEventBus(eventBus),
	)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}

	sound := audio.NewSoundManager(gameConfig.Audio, logger)
	if gameConfig.Renderer != config.RendererHeadless {
		if err := sound.Initialize(); err != nil {
			logger.Warn(world.Context(), "Audio unavailable", "error", err)
		}
	}
	defer sound.Cleanup()
	sub := sound.Subscribe(eventBus)
	defer sub.Cancel()

	eventBus.Subscribe(event.RunReset, func(e event.Event) {
		if reset, ok := e.(*event.ResetEvent); ok {
			logger.Info(world.Context(), "Run over",
				"reason", reset.Reason, "game_level", reset.Level, "run", reset.Run)
		}
	})

	switch gameConfig.Renderer {
	case config.RendererTerminal:
		startTerminalRenderer(world, gameConfig, logger)
	case config.RendererHeadless:
		startHeadlessRenderer(world, gameConfig, logger, *duration)
	default:
		engorender.Run(world, gameConfig, logger)
	}
}

// startTerminalRenderer runs the game inside the current terminal
func startTerminalRenderer(world *engine.World, cfg *config.GameConfig, logger *logging.Logger) {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create terminal screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize terminal screen: %v", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := render.NewTerminalRenderer(screen, int64(cfg.Seed), logger)
	r.Run(ctx, world, cfg.Screen.FPS)
	logger.Info(world.Context(), "Terminal session ended", "game_level", world.Level(), "run", world.Run())
}

// startHeadlessRenderer advances the world at a fixed step without input,
// drawing into a NullRenderer. Useful for smoke tests and profiling.
func startHeadlessRenderer(world *engine.World, cfg *config.GameConfig, logger *logging.Logger, d time.Duration) {
	fps := cfg.Screen.FPS
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)
	steps := int(d.Seconds() * float64(fps))

	canvas := render.NewNullRenderer(logger)
	vp := cfg.Viewport()
	resets := 0
	for i := 0; i < steps; i++ {
		if ev := world.Advance(dt); ev != nil {
			resets++
		}
		render.DrawFrame(canvas, world.Snapshot(), vp)
	}
	logger.Info(world.Context(), "Headless session ended",
		"steps", steps, "resets", resets, "primitives", canvas.Primitives())
}
