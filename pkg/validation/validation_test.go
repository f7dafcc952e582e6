package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/opd-ai/go-orbiter/pkg/config"
	"github.com/opd-ai/go-orbiter/pkg/entity"
	"github.com/opd-ai/go-orbiter/pkg/physics"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.GameConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *config.GameConfig) {}},
		{name: "headless renderer", mutate: func(c *config.GameConfig) { c.Renderer = config.RendererHeadless }},
		{name: "single node field", mutate: func(c *config.GameConfig) { c.Field.End = c.Field.Begin }},
		{name: "zero speed", mutate: func(c *config.GameConfig) { c.Player.Speed = 0 }, wantErr: true},
		{name: "nan speed", mutate: func(c *config.GameConfig) { c.Player.Speed = math.NaN() }, wantErr: true},
		{name: "negative body radius", mutate: func(c *config.GameConfig) { c.Player.BodyRadius = -1 }, wantErr: true},
		{name: "zero width", mutate: func(c *config.GameConfig) { c.Screen.Width = 0 }, wantErr: true},
		{name: "huge height", mutate: func(c *config.GameConfig) { c.Screen.Height = MaxScreenSide + 1 }, wantErr: true},
		{name: "negative fps", mutate: func(c *config.GameConfig) { c.Screen.FPS = -1 }, wantErr: true},
		{name: "reversed field", mutate: func(c *config.GameConfig) { c.Field.Begin, c.Field.End = 10, 5 }, wantErr: true},
		{name: "unknown renderer", mutate: func(c *config.GameConfig) { c.Renderer = "opengl" }, wantErr: true},
		{name: "loud volume", mutate: func(c *config.GameConfig) { c.Audio.Volume = 2 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ValidateConfig() error = %v, want wrapped ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateConfig_Nil(t *testing.T) {
	if err := ValidateConfig(nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ValidateConfig(nil) = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateField(t *testing.T) {
	node := func(index int, radius float64) entity.Node {
		return entity.Node{Index: index, Position: physics.Vector2D{Y: float64(index) * 1.5}, Radius: radius}
	}

	tests := []struct {
		name    string
		nodes   []entity.Node
		wantErr error
	}{
		{name: "valid", nodes: []entity.Node{node(1, 0.1), node(2, 0.2)}},
		{name: "empty", nodes: nil, wantErr: ErrEmptyField},
		{name: "zero radius", nodes: []entity.Node{node(1, 0)}, wantErr: ErrInvalidField},
		{name: "duplicate index", nodes: []entity.Node{node(3, 0.1), node(3, 0.1)}, wantErr: ErrInvalidField},
		{name: "descending", nodes: []entity.Node{node(4, 0.1), node(2, 0.1)}, wantErr: ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField(tt.nodes)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateField() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateField() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
