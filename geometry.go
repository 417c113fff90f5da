package backdrop

import (
	"math"
	"math/rand/v2"
)

// Geometry is a model-space vertex list with an edge index list.
type Geometry struct {
	Vertices []Vec3
	Edges    [][2]uint16
}

// NewRingGeometry builds a circle of the given radius in the XZ plane.
func NewRingGeometry(radius float64, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	g := &Geometry{
		Vertices: make([]Vec3, segments),
		Edges:    make([][2]uint16, segments),
	}
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		g.Vertices[i] = Vec3{X: math.Cos(a) * radius, Z: math.Sin(a) * radius}
		g.Edges[i] = [2]uint16{uint16(i), uint16((i + 1) % segments)}
	}
	return g
}

// NewTorusGeometry builds a wire torus around the Y axis. radius is the
// distance from the center to the tube center, tube the tube radius.
func NewTorusGeometry(radius, tube float64, radial, tubular int) *Geometry {
	if radial < 3 {
		radial = 3
	}
	if tubular < 3 {
		tubular = 3
	}
	g := &Geometry{
		Vertices: make([]Vec3, 0, radial*tubular),
		Edges:    make([][2]uint16, 0, 2*radial*tubular),
	}
	for j := 0; j < radial; j++ {
		v := 2 * math.Pi * float64(j) / float64(radial)
		for i := 0; i < tubular; i++ {
			u := 2 * math.Pi * float64(i) / float64(tubular)
			r := radius + tube*math.Cos(v)
			g.Vertices = append(g.Vertices, Vec3{
				X: r * math.Cos(u),
				Y: tube * math.Sin(v),
				Z: r * math.Sin(u),
			})
		}
	}
	idx := func(j, i int) uint16 {
		return uint16((j%radial)*tubular + i%tubular)
	}
	for j := 0; j < radial; j++ {
		for i := 0; i < tubular; i++ {
			g.Edges = append(g.Edges,
				[2]uint16{idx(j, i), idx(j, i+1)},
				[2]uint16{idx(j, i), idx(j+1, i)},
			)
		}
	}
	return g
}

// NewIcosahedronGeometry builds a wire icosahedron with the given
// circumradius.
func NewIcosahedronGeometry(radius float64) *Geometry {
	t := (1 + math.Sqrt(5)) / 2
	raw := []Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	g := &Geometry{Vertices: make([]Vec3, len(raw))}
	for i, v := range raw {
		g.Vertices[i] = v.Normalize().Scale(radius)
	}
	// Every pair at the shortest vertex distance forms an edge (30 total).
	edgeLen := g.Vertices[0].Sub(g.Vertices[1]).Len()
	for i := 0; i < len(g.Vertices); i++ {
		for j := i + 1; j < len(g.Vertices); j++ {
			d := g.Vertices[i].Sub(g.Vertices[j]).Len()
			if math.Abs(d-edgeLen) < 1e-6*radius {
				g.Edges = append(g.Edges, [2]uint16{uint16(i), uint16(j)})
			}
		}
	}
	return g
}

// NewGridGeometry builds a square grid on the XZ plane centered on the origin.
func NewGridGeometry(size float64, divisions int) *Geometry {
	if divisions < 1 {
		divisions = 1
	}
	g := &Geometry{}
	half := size / 2
	step := size / float64(divisions)
	for i := 0; i <= divisions; i++ {
		p := -half + float64(i)*step
		base := uint16(len(g.Vertices))
		g.Vertices = append(g.Vertices,
			Vec3{X: p, Z: -half}, Vec3{X: p, Z: half},
			Vec3{X: -half, Z: p}, Vec3{X: half, Z: p},
		)
		g.Edges = append(g.Edges, [2]uint16{base, base + 1}, [2]uint16{base + 2, base + 3})
	}
	return g
}

// NewStarfieldGeometry scatters count points uniformly inside a cube of the
// given half-extent. Points have no edges.
func NewStarfieldGeometry(rng *rand.Rand, count int, extent float64) *Geometry {
	g := &Geometry{Vertices: make([]Vec3, count)}
	spread := Range{Min: -extent, Max: extent}
	for i := range g.Vertices {
		g.Vertices[i] = Vec3{spread.Random(rng), spread.Random(rng), spread.Random(rng)}
	}
	return g
}
