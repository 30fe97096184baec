package stereogram

import (
	"fmt"
	"math"
	"strings"
)

// Hypersolid selects one of the regular 4-polytopes.
type Hypersolid uint8

const (
	Tesseract Hypersolid = iota
	Simplex
	Orthoplex
	numHypersolids
)

var hypersolids = [numHypersolids]Polytope[Vertex4]{
	Tesseract: tesseract(),
	Simplex:   simplex(),
	Orthoplex: orthoplex(),
}

// HypersolidPolytope returns the catalog entry for h.
func HypersolidPolytope(h Hypersolid) Polytope[Vertex4] { return hypersolids[h] }

// Next cycles Tesseract → 4-Simplex → 4-Orthoplex → Tesseract.
func (h Hypersolid) Next() Hypersolid { return (h + 1) % numHypersolids }

func (h Hypersolid) String() string {
	if h >= numHypersolids {
		return fmt.Sprintf("Hypersolid(%d)", uint8(h))
	}
	return hypersolids[h].Name
}

// ParseHypersolid looks a hypersolid up by case-insensitive name.
func ParseHypersolid(name string) (Hypersolid, error) {
	for h := Hypersolid(0); h < numHypersolids; h++ {
		if strings.EqualFold(hypersolids[h].Name, name) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown hypersolid %q", name)
}

// tesseract: the 16 corners of {-1,1}^4. Bits 0..3 of the index pick the
// sign of X..W, so indices 0..7 form the W=-1 slab and 8..15 the W=+1 slab.
// Edges: 12 in the first slab, 12 in the second, then 8 connectors.
func tesseract() Polytope[Vertex4] {
	sign := func(i, bit int) Real {
		if i&bit == 0 {
			return -1
		}
		return 1
	}
	verts := make([]Vertex4, 16)
	for i := range verts {
		verts[i] = Vertex4{sign(i, 1), sign(i, 2), sign(i, 4), sign(i, 8)}
	}
	edges := make([]Edge, 0, 32)
	for _, base := range []int{0, 8} {
		for i := 0; i < 8; i++ {
			for _, bit := range []int{1, 2, 4} {
				if i&bit == 0 {
					edges = append(edges, Edge{base + i, base + (i | bit)})
				}
			}
		}
	}
	for i := 0; i < 8; i++ {
		edges = append(edges, Edge{i, i + 8})
	}
	return Polytope[Vertex4]{Name: "Tesseract", Vertices: verts, Edges: edges}
}

// canonical regular 5-cell vertices in R^4 centered at origin.
// Constructed from 5D {e_i - centroid} projected onto the 4D
// subspace orthogonal to (1,1,1,1,1) via an orthonormal basis.
func canonicalCell5() [5]Vector4 {
	// Orthonormal rows (b1..b4) ⟂ (1,1,1,1,1).
	B := [4][5]Real{
		{1 / math.Sqrt2, -1 / math.Sqrt2, 0, 0, 0},
		{1 / math.Sqrt(6), 1 / math.Sqrt(6), -2 / math.Sqrt(6), 0, 0},
		{1 / math.Sqrt(12), 1 / math.Sqrt(12), 1 / math.Sqrt(12), -3 / math.Sqrt(12), 0},
		{1 / math.Sqrt(20), 1 / math.Sqrt(20), 1 / math.Sqrt(20), 1 / math.Sqrt(20), -4 / math.Sqrt(20)},
	}
	var V [5]Vector4
	for i := 0; i < 5; i++ {
		var c [4]Real
		for r := 0; r < 4; r++ {
			for k := 0; k < 5; k++ {
				w := -0.2
				if k == i {
					w = 0.8
				}
				c[r] += B[r][k] * w
			}
		}
		V[i] = Vector4{c[0], c[1], c[2], c[3]}
	}
	return V
}

// simplex scales the canonical 5-cell to edge length 2, the tesseract's edge.
func simplex() Polytope[Vertex4] {
	V := canonicalCell5()
	u := 2 / V[0].Sub(V[1]).Len()
	verts := make([]Vertex4, len(V))
	for i, v := range V {
		verts[i] = Vertex4(v.Mul(u))
	}
	return Polytope[Vertex4]{Name: "4-Simplex", Vertices: verts, Edges: allPairs(len(verts), nil)}
}

// orthoplex: ±e_i, connected everywhere except across the same axis.
func orthoplex() Polytope[Vertex4] {
	verts := []Vertex4{
		{+1, 0, 0, 0}, {-1, 0, 0, 0},
		{0, +1, 0, 0}, {0, -1, 0, 0},
		{0, 0, +1, 0}, {0, 0, -1, 0},
		{0, 0, 0, +1}, {0, 0, 0, -1},
	}
	edges := allPairs(len(verts), func(i, j int) bool { return i/2 != j/2 })
	return Polytope[Vertex4]{Name: "4-Orthoplex", Vertices: verts, Edges: edges}
}
