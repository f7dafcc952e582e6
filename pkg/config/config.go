// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-orbiter/pkg/entity"
	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// Renderer names accepted in GameConfig.Renderer
const (
	RendererEngo     = "engo"
	RendererTerminal = "terminal"
	RendererHeadless = "headless"
)

// Environment variables read by ApplyEnv
const (
	EnvSeed     = "ORBITER_SEED"
	EnvRenderer = "ORBITER_RENDERER"
	EnvAudio    = "ORBITER_AUDIO"
	EnvFieldEnd = "ORBITER_FIELD_END"
)

// GameConfig contains configuration for a game session
type GameConfig struct {
	// Seed for the node field. Zero means "derive one at startup".
	Seed     uint64       `json:"seed" yaml:"seed"`
	Field    FieldConfig  `json:"field" yaml:"field"`
	Player   PlayerConfig `json:"player" yaml:"player"`
	Screen   ScreenConfig `json:"screen" yaml:"screen"`
	Renderer string       `json:"renderer" yaml:"renderer"`
	Audio    AudioConfig  `json:"audio" yaml:"audio"`
}

// FieldConfig selects the node indices generated for a run
type FieldConfig struct {
	Begin int `json:"begin" yaml:"begin"`
	End   int `json:"end" yaml:"end"`
}

// PlayerConfig contains per-run player constants
type PlayerConfig struct {
	Speed      float64 `json:"speed" yaml:"speed"`
	BodyRadius float64 `json:"bodyRadius" yaml:"body_radius"`
}

// ScreenConfig describes the reference viewport. Its aspect ratio fixes the
// corridor width in world units.
type ScreenConfig struct {
	Width      int  `json:"width" yaml:"width"`
	Height     int  `json:"height" yaml:"height"`
	Fullscreen bool `json:"fullscreen" yaml:"fullscreen"`
	FPS        int  `json:"fps" yaml:"fps"`
}

// AudioConfig contains sound settings
type AudioConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Volume  float64 `json:"volume" yaml:"volume"`
}

// Viewport returns the reference viewport
func (c *GameConfig) Viewport() physics.Viewport {
	return physics.Viewport{Width: float64(c.Screen.Width), Height: float64(c.Screen.Height)}
}

// CorridorWidth returns the playable width in world units
func (c *GameConfig) CorridorWidth() float64 {
	return c.Viewport().AreaWidth()
}

// CorridorHalfWidth returns the distance from the corridor axis to a wall
func (c *GameConfig) CorridorHalfWidth() float64 {
	return c.CorridorWidth() / 2
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfig loads a configuration from a JSON or YAML file. Fields missing
// from the file keep their DefaultConfig values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a JSON or YAML file
func SaveConfig(config *GameConfig, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadDotEnv loads environment files (".env" when none are given). Missing
// files are ignored; malformed ones are reported.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides config fields from ORBITER_* environment variables
func ApplyEnv(config *GameConfig) error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		config.Seed = seed
	}
	if v := os.Getenv(EnvRenderer); v != "" {
		config.Renderer = strings.ToLower(v)
	}
	if v := os.Getenv(EnvAudio); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvAudio, v, err)
		}
		config.Audio.Enabled = enabled
	}
	if v := os.Getenv(EnvFieldEnd); v != "" {
		end, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvFieldEnd, v, err)
		}
		config.Field.End = end
	}
	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Seed: 0,
		Field: FieldConfig{
			Begin: 1,
			End:   100,
		},
		Player: PlayerConfig{
			Speed:      entity.DefaultSpeed,
			BodyRadius: entity.DefaultBodyRadius,
		},
		Screen: ScreenConfig{
			Width:  480,
			Height: 848,
			FPS:    60,
		},
		Renderer: RendererEngo,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}
