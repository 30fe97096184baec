package stereogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func degrees(n int, edges []Edge) []int {
	d := make([]int, n)
	for _, e := range edges {
		d[e[0]]++
		d[e[1]]++
	}
	return d
}

func requireUniqueEdges(t *testing.T, name string, edges []Edge) {
	t.Helper()
	seen := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		k := e
		if k[0] > k[1] {
			k[0], k[1] = k[1], k[0]
		}
		require.False(t, seen[k], "%s: duplicate edge %v", name, e)
		seen[k] = true
	}
}

func TestSolidsCatalog(t *testing.T) {
	want := []struct {
		s     Solid
		name  string
		verts int
		edges int
	}{
		{Tetrahedron, "Tetrahedron", 4, 6},
		{Cube, "Cube", 8, 12},
		{Octahedron, "Octahedron", 6, 12},
		{Dodecahedron, "Dodecahedron", 20, 30},
		{Icosahedron, "Icosahedron", 12, 30},
	}
	for _, w := range want {
		p := SolidPolytope(w.s)
		require.Equal(t, w.name, p.Name)
		require.Equal(t, w.name, w.s.String())
		require.Len(t, p.Vertices, w.verts, w.name)
		require.Len(t, p.Edges, w.edges, w.name)
		require.Equal(t, 3, p.Dim())
		require.NoError(t, p.validate())
		requireUniqueEdges(t, w.name, p.Edges)
	}
}

func TestSolidEdgeLengths(t *testing.T) {
	cases := []struct {
		s    Solid
		want Real
	}{
		{Tetrahedron, 2 * math.Sqrt2},
		{Cube, 2},
		{Octahedron, 1.4 * math.Sqrt2},
	}
	for _, c := range cases {
		p := SolidPolytope(c.s)
		for _, e := range p.Edges {
			l := p.Vertices[e[0]].Sub(p.Vertices[e[1]]).Len()
			require.InDelta(t, c.want, l, 1e-9, "%s edge %v", p.Name, e)
		}
	}
}

func TestHypersolidsCatalog(t *testing.T) {
	want := []struct {
		h      Hypersolid
		name   string
		verts  int
		edges  int
		degree int
		length Real
	}{
		{Tesseract, "Tesseract", 16, 32, 4, 2},
		{Simplex, "4-Simplex", 5, 10, 4, 2},
		{Orthoplex, "4-Orthoplex", 8, 24, 6, math.Sqrt2},
	}
	for _, w := range want {
		p := HypersolidPolytope(w.h)
		require.Equal(t, w.name, p.Name)
		require.Len(t, p.Vertices, w.verts, w.name)
		require.Len(t, p.Edges, w.edges, w.name)
		require.Equal(t, 4, p.Dim())
		require.NoError(t, p.validate())
		requireUniqueEdges(t, w.name, p.Edges)
		for i, d := range degrees(len(p.Vertices), p.Edges) {
			require.Equal(t, w.degree, d, "%s vertex %d", w.name, i)
		}
		for _, e := range p.Edges {
			l := Vector4(p.Vertices[e[0]]).Sub(Vector4(p.Vertices[e[1]])).Len()
			require.InDelta(t, w.length, l, 1e-9, "%s edge %v", w.name, e)
		}
	}
}

func TestTesseractEdgeGrouping(t *testing.T) {
	p := HypersolidPolytope(Tesseract)
	for i, e := range p.Edges {
		wa, wb := p.Vertices[e[0]].W, p.Vertices[e[1]].W
		switch {
		case i < 12:
			require.Equal(t, Real(-1), wa)
			require.Equal(t, Real(-1), wb)
		case i < 24:
			require.Equal(t, Real(1), wa)
			require.Equal(t, Real(1), wb)
		default:
			require.NotEqual(t, wa, wb, "connector %v", e)
		}
	}
}

func TestSimplexCentered(t *testing.T) {
	var c Vector4
	for _, v := range HypersolidPolytope(Simplex).Vertices {
		c = c.Sub(Vector4(v).Mul(-1))
	}
	require.InDelta(t, 0, c.Len(), 1e-9)
}

func TestCycles(t *testing.T) {
	s := Cube
	for i := 0; i < int(numSolids); i++ {
		s = s.Next()
	}
	require.Equal(t, Cube, s)
	require.Equal(t, Octahedron, Cube.Next())
	require.Equal(t, Tetrahedron, Icosahedron.Next())

	require.Equal(t, Simplex, Tesseract.Next())
	require.Equal(t, Orthoplex, Simplex.Next())
	require.Equal(t, Tesseract, Orthoplex.Next())
}

func TestParseNames(t *testing.T) {
	s, err := ParseSolid("icosahedron")
	require.NoError(t, err)
	require.Equal(t, Icosahedron, s)
	_, err = ParseSolid("sphere")
	require.Error(t, err)

	h, err := ParseHypersolid("4-ORTHOPLEX")
	require.NoError(t, err)
	require.Equal(t, Orthoplex, h)
	_, err = ParseHypersolid("24-cell")
	require.Error(t, err)
}

func TestValidateRejectsBadEdges(t *testing.T) {
	p := Polytope[Vertex3]{Name: "bad", Vertices: []Vertex3{{}, {1, 0, 0}}, Edges: []Edge{{0, 2}}}
	require.Error(t, p.validate())
	p.Edges = []Edge{{1, 1}}
	require.Error(t, p.validate())
	p.Edges = []Edge{{0, 1}}
	require.NoError(t, p.validate())
}

func TestCatalogValidAtInit(t *testing.T) {
	require.NoError(t, validateCatalog())
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	require.Len(t, c, int(numSolids)+int(numHypersolids))
	require.Equal(t, CatalogEntry{"Tetrahedron", 3, 4, 6}, c[0])
	require.Equal(t, CatalogEntry{"Tesseract", 4, 16, 32}, c[numSolids])
	require.Equal(t, CatalogEntry{"4-Orthoplex", 4, 8, 24}, c[len(c)-1])
}
