package backdrop

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEdgesInRange(t *testing.T, g *Geometry) {
	t.Helper()
	for _, e := range g.Edges {
		require.Less(t, int(e[0]), len(g.Vertices))
		require.Less(t, int(e[1]), len(g.Vertices))
	}
}

func TestRingGeometry(t *testing.T) {
	g := NewRingGeometry(2, 16)
	assert.Len(t, g.Vertices, 16)
	assert.Len(t, g.Edges, 16)
	for _, v := range g.Vertices {
		assert.InDelta(t, 2, v.Len(), 1e-9)
		assert.Equal(t, 0.0, v.Y)
	}
	assertEdgesInRange(t, g)

	assert.Len(t, NewRingGeometry(1, 1).Vertices, 3)
}

func TestTorusGeometry(t *testing.T) {
	g := NewTorusGeometry(1.4, 0.45, 16, 48)
	assert.Len(t, g.Vertices, 16*48)
	assert.Len(t, g.Edges, 2*16*48)
	assertEdgesInRange(t, g)
	for _, v := range g.Vertices {
		ring := math.Hypot(v.X, v.Z) - 1.4
		assert.InDelta(t, 0.45, math.Hypot(ring, v.Y), 1e-9)
	}
}

func TestIcosahedronGeometry(t *testing.T) {
	g := NewIcosahedronGeometry(1.5)
	assert.Len(t, g.Vertices, 12)
	assert.Len(t, g.Edges, 30)
	assertEdgesInRange(t, g)

	degree := make([]int, len(g.Vertices))
	for _, e := range g.Edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	for i, d := range degree {
		assert.Equal(t, 5, d, "vertex %d", i)
		assert.InDelta(t, 1.5, g.Vertices[i].Len(), 1e-9)
	}
}

func TestGridGeometry(t *testing.T) {
	g := NewGridGeometry(20, 4)
	assert.Len(t, g.Vertices, 4*5)
	assert.Len(t, g.Edges, 2*5)
	assertEdgesInRange(t, g)
	for _, v := range g.Vertices {
		assert.LessOrEqual(t, math.Abs(v.X), 10.0)
		assert.LessOrEqual(t, math.Abs(v.Z), 10.0)
	}
}

func TestStarfieldGeometry(t *testing.T) {
	g := NewStarfieldGeometry(rand.New(rand.NewPCG(1, 1)), 100, 5)
	assert.Len(t, g.Vertices, 100)
	assert.Empty(t, g.Edges)
	for _, v := range g.Vertices {
		assert.LessOrEqual(t, math.Abs(v.X), 5.0)
		assert.LessOrEqual(t, math.Abs(v.Y), 5.0)
		assert.LessOrEqual(t, math.Abs(v.Z), 5.0)
	}

	again := NewStarfieldGeometry(rand.New(rand.NewPCG(1, 1)), 100, 5)
	assert.Equal(t, g.Vertices, again.Vertices)
}
