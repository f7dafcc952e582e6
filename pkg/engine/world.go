// pkg/engine/world.go
package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/opd-ai/go-orbiter/pkg/config"
	"github.com/opd-ai/go-orbiter/pkg/entity"
	"github.com/opd-ai/go-orbiter/pkg/event"
	"github.com/opd-ai/go-orbiter/pkg/field"
	"github.com/opd-ai/go-orbiter/pkg/logging"
	"github.com/opd-ai/go-orbiter/pkg/physics"
	"github.com/opd-ai/go-orbiter/pkg/validation"
)

// World holds the complete state of a game session. It is owned by the
// frame loop and must not be shared between goroutines.
type World struct {
	Player     *entity.Player
	Nodes      []entity.Node
	Attachment Attachment
	Trail      *Trail
	HalfWidth  float64
	EventBus   *event.Bus

	run    int
	logger *logging.Logger
	ctx    context.Context
}

// Option customizes a World at construction
type Option func(*World)

// WithLogger sets the logger used for run and attachment messages
func WithLogger(logger *logging.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithEventBus makes the world publish on an existing bus
func WithEventBus(bus *event.Bus) Option {
	return func(w *World) {
		if bus != nil {
			w.EventBus = bus
		}
	}
}

// NewWorld creates a world over a fixed node field
func NewWorld(nodes []entity.Node, player *entity.Player, halfWidth float64, opts ...Option) (*World, error) {
	if err := validation.ValidateField(nodes); err != nil {
		return nil, fmt.Errorf("cannot create world: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("cannot create world: nil player")
	}
	if halfWidth <= 0 {
		return nil, fmt.Errorf("cannot create world: corridor half-width must be positive, got %v", halfWidth)
	}

	w := &World{
		Player:    player,
		Nodes:     append([]entity.Node(nil), nodes...),
		Trail:     NewTrail(TrailCapacity),
		HalfWidth: halfWidth,
		EventBus:  event.NewEventBus(),
		logger:    logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.Reset()
	w.startRun()
	return w, nil
}

// NewWorldFromConfig validates cfg, generates the node field from cfg.Seed
// and creates a world over it.
func NewWorldFromConfig(cfg *config.GameConfig, opts ...Option) (*World, error) {
	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	gen := field.NewGenerator(cfg.CorridorWidth())
	nodes, err := gen.Generate(cfg.Field.Begin, cfg.Field.End, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate field: %w", err)
	}

	player := entity.NewPlayer(cfg.Player.Speed, cfg.Player.BodyRadius)
	return NewWorld(nodes, player, cfg.CorridorHalfWidth(), opts...)
}

// Reset sends the player back to the origin, detached, with an empty trail.
// The node field is kept.
func (w *World) Reset() {
	w.Player.Reset()
	w.Attachment = Attachment{}
	w.Trail.Clear()
}

func (w *World) startRun() {
	w.run++
	w.ctx = logging.WithRunID(context.Background(), logging.NewRunID())
	w.logger.Info(w.ctx, "Run started", "run", w.run, "nodes", len(w.Nodes))
	w.EventBus.Publish(&event.BaseEvent{EventType: event.RunStarted, Source: w})
}

// Level returns the player's height rounded to the nearest whole unit
func (w *World) Level() int {
	return int(math.Round(w.Player.Position.Y))
}

// Run returns the number of the current run, starting at 1
func (w *World) Run() int {
	return w.run
}

// Context returns the context carrying the current run ID
func (w *World) Context() context.Context {
	return w.ctx
}

// Snapshot is a read-only copy of the world for renderers
type Snapshot struct {
	Player     entity.Player
	Nodes      []entity.Node
	Attachment Attachment
	Trail      []physics.Vector2D
	HalfWidth  float64
	Level      int
	Run        int
}

// Snapshot copies the state needed to draw a frame
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Player:     *w.Player,
		Nodes:      append([]entity.Node(nil), w.Nodes...),
		Attachment: w.Attachment,
		Trail:      w.Trail.Points(),
		HalfWidth:  w.HalfWidth,
		Level:      w.Level(),
		Run:        w.run,
	}
}
