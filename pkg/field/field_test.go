package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-orbiter/pkg/entity"
)

const testWidth = 480.0 / 848.0 * 5.0

func TestGenerate_SameSeedSameField(t *testing.T) {
	g := NewGenerator(testWidth)
	a, err := g.Generate(0, 100, 42)
	require.NoError(t, err)
	b, err := g.Generate(0, 100, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := g.Generate(0, 100, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerate_LayoutBounds(t *testing.T) {
	g := NewGenerator(testWidth)
	nodes, err := g.Generate(3, 60, 7)
	require.NoError(t, err)
	require.Len(t, nodes, 58)

	for k, n := range nodes {
		i := 3 + k
		assert.Equal(t, i, n.Index)
		assert.GreaterOrEqual(t, n.Position.Y, Spacing*float64(i)-0.5)
		assert.Less(t, n.Position.Y, Spacing*float64(i)+0.5)
		assert.GreaterOrEqual(t, n.Position.X, -testWidth/2)
		assert.Less(t, n.Position.X, testWidth/2)
		assert.GreaterOrEqual(t, n.Radius, MinRadius)
		assert.Less(t, n.Radius, MaxRadius)
		assert.Equal(t, entity.Palette[i%6], n.Color)
	}
}

func TestGenerate_VerticalOrderIsMonotonic(t *testing.T) {
	nodes, err := NewGenerator(testWidth).Generate(0, 200, 99)
	require.NoError(t, err)
	for i := 1; i < len(nodes); i++ {
		assert.Greater(t, nodes[i].Position.Y, nodes[i-1].Position.Y)
	}
}

func TestGenerate_SingleNode(t *testing.T) {
	tests := []struct {
		index int
		want  entity.Color
	}{
		{index: 4, want: entity.Red},
		{index: 5, want: entity.Yellow},
		{index: 6, want: entity.White},
	}

	for _, tt := range tests {
		nodes, err := NewGenerator(testWidth).Generate(tt.index, tt.index, 1)
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		assert.Equal(t, tt.index, nodes[0].Index)
		assert.Equal(t, tt.want, nodes[0].Color, "index %d", tt.index)
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	_, err := NewGenerator(testWidth).Generate(10, 9, 1)
	assert.Error(t, err)

	_, err = NewGenerator(0).Generate(0, 10, 1)
	assert.Error(t, err)
}
