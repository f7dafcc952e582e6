// Package validation checks game configuration and generated fields before a
// run starts.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/opd-ai/go-orbiter/pkg/config"
	"github.com/opd-ai/go-orbiter/pkg/entity"
)

var (
	// ErrInvalidConfig is wrapped by every ValidateConfig failure
	ErrInvalidConfig = errors.New("invalid config")
	// ErrEmptyField is returned when a field contains no nodes
	ErrEmptyField = errors.New("field has no nodes")
	// ErrInvalidField is wrapped by malformed node failures
	ErrInvalidField = errors.New("invalid field")
)

// Limits applied to configuration values
const (
	MaxFieldLength = 100000
	MaxScreenSide  = 16384
)

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ValidateConfig validates a game configuration
func ValidateConfig(cfg *config.GameConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	if !positiveFinite(cfg.Player.Speed) {
		return fmt.Errorf("%w: player speed must be positive, got %v", ErrInvalidConfig, cfg.Player.Speed)
	}
	if !positiveFinite(cfg.Player.BodyRadius) {
		return fmt.Errorf("%w: body radius must be positive, got %v", ErrInvalidConfig, cfg.Player.BodyRadius)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.Width > MaxScreenSide || cfg.Screen.Height > MaxScreenSide {
		return fmt.Errorf("%w: screen size %dx%d exceeds %d", ErrInvalidConfig, cfg.Screen.Width, cfg.Screen.Height, MaxScreenSide)
	}
	if cfg.Screen.FPS < 0 {
		return fmt.Errorf("%w: fps cannot be negative: %d", ErrInvalidConfig, cfg.Screen.FPS)
	}

	if cfg.Field.End < cfg.Field.Begin {
		return fmt.Errorf("%w: field end %d before begin %d", ErrInvalidConfig, cfg.Field.End, cfg.Field.Begin)
	}
	if cfg.Field.End-cfg.Field.Begin > MaxFieldLength {
		return fmt.Errorf("%w: field longer than %d nodes", ErrInvalidConfig, MaxFieldLength)
	}

	switch cfg.Renderer {
	case config.RendererEngo, config.RendererTerminal, config.RendererHeadless:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, cfg.Renderer)
	}

	v := cfg.Audio.Volume
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
		return fmt.Errorf("%w: audio volume must be within [0,1], got %v", ErrInvalidConfig, v)
	}

	return nil
}

// ValidateField validates a generated node field
func ValidateField(nodes []entity.Node) error {
	if len(nodes) == 0 {
		return ErrEmptyField
	}

	for i, n := range nodes {
		if !positiveFinite(n.Radius) {
			return fmt.Errorf("%w: node %d has radius %v", ErrInvalidField, n.Index, n.Radius)
		}
		if i > 0 && n.Index <= nodes[i-1].Index {
			return fmt.Errorf("%w: node index %d follows %d", ErrInvalidField, n.Index, nodes[i-1].Index)
		}
	}

	return nil
}
