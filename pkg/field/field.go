// Package field lays out the node sequence a run is played on.
package field

import (
	"fmt"
	"math/rand/v2"

	"github.com/opd-ai/go-orbiter/pkg/entity"
	"github.com/opd-ai/go-orbiter/pkg/physics"
)

// Layout parameters
const (
	Spacing   = 1.5
	MinRadius = 0.05
	MaxRadius = 0.25
)

// Generator produces deterministic node fields for a corridor
type Generator struct {
	CorridorWidth float64
}

// NewGenerator creates a generator for a corridor of the given width
func NewGenerator(corridorWidth float64) *Generator {
	return &Generator{CorridorWidth: corridorWidth}
}

// Generate returns one node per index in [begin, end]. Node i sits about
// i*Spacing units up the corridor with a jitter in [-0.5, 0.5), anywhere
// across the corridor width, and takes its color from the palette by i.
// The same seed always yields the same field.
func (g *Generator) Generate(begin, end int, seed uint64) ([]entity.Node, error) {
	if end < begin {
		return nil, fmt.Errorf("empty node range [%d, %d]", begin, end)
	}
	if g.CorridorWidth <= 0 {
		return nil, fmt.Errorf("invalid corridor width %v", g.CorridorWidth)
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	nodes := make([]entity.Node, 0, end-begin+1)
	for i := begin; i <= end; i++ {
		y := rng.Float64() - 0.5 + Spacing*float64(i)
		x := g.CorridorWidth * (rng.Float64() - 0.5)
		nodes = append(nodes, entity.Node{
			Index:    i,
			Position: physics.Vector2D{X: x, Y: y},
			Radius:   rng.Float64()*(MaxRadius-MinRadius) + MinRadius,
			Color:    entity.Palette[mod(i, len(entity.Palette))],
		})
	}
	return nodes, nil
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
