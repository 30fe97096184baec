package stereogram

import (
	"fmt"
	"strings"
)

// Solid selects one of the five Platonic solids.
type Solid uint8

const (
	Tetrahedron Solid = iota
	Cube
	Octahedron
	Dodecahedron
	Icosahedron
	numSolids
)

const (
	phi    = 1.618034
	invPhi = 0.618034
)

var solids = [numSolids]Polytope[Vertex3]{
	Tetrahedron: {
		Name: "Tetrahedron",
		Vertices: []Vertex3{
			{1, 1, 1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1},
		},
		Edges: []Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
	},
	Cube: {
		Name: "Cube",
		Vertices: []Vertex3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}, // back
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, // front
		},
		Edges: []Edge{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	},
	// scaled by 1.4 to read about as large as the cube
	Octahedron: {
		Name: "Octahedron",
		Vertices: []Vertex3{
			{1.4, 0, 0}, {-1.4, 0, 0}, {0, 1.4, 0}, {0, -1.4, 0}, {0, 0, 1.4}, {0, 0, -1.4},
		},
		Edges: []Edge{
			{0, 2}, {0, 3}, {0, 4}, {0, 5},
			{1, 2}, {1, 3}, {1, 4}, {1, 5},
			{2, 4}, {2, 5}, {3, 4}, {3, 5},
		},
	},
	// Simplified wireframe edge set, kept as is.
	Dodecahedron: {
		Name: "Dodecahedron",
		Vertices: []Vertex3{
			{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
			{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
			{0, phi, invPhi}, {0, phi, -invPhi}, {0, -phi, invPhi}, {0, -phi, -invPhi},
			{invPhi, 0, phi}, {-invPhi, 0, phi}, {invPhi, 0, -phi}, {-invPhi, 0, -phi},
			{phi, invPhi, 0}, {phi, -invPhi, 0}, {-phi, invPhi, 0}, {-phi, -invPhi, 0},
		},
		Edges: []Edge{
			{0, 8}, {0, 12}, {0, 16}, {1, 9}, {1, 14}, {1, 16}, {2, 10}, {2, 12}, {2, 17},
			{3, 11}, {3, 14}, {3, 17}, {4, 8}, {4, 13}, {4, 18}, {5, 9}, {5, 15}, {5, 18},
			{6, 10}, {6, 13}, {6, 19}, {7, 11}, {7, 15}, {7, 19}, {8, 9}, {10, 11}, {12, 13},
			{14, 15}, {16, 17}, {18, 19},
		},
	},
	Icosahedron: {
		Name: "Icosahedron",
		Vertices: []Vertex3{
			{0, invPhi, phi}, {0, invPhi, -phi}, {0, -invPhi, phi}, {0, -invPhi, -phi},
			{invPhi, phi, 0}, {invPhi, -phi, 0}, {-invPhi, phi, 0}, {-invPhi, -phi, 0},
			{phi, 0, invPhi}, {-phi, 0, invPhi}, {phi, 0, -invPhi}, {-phi, 0, -invPhi},
		},
		Edges: []Edge{
			{0, 2}, {0, 4}, {0, 6}, {0, 8}, {0, 9}, {1, 3}, {1, 4}, {1, 6}, {1, 10}, {1, 11},
			{2, 5}, {2, 7}, {2, 8}, {2, 9}, {3, 5}, {3, 7}, {3, 10}, {3, 11}, {4, 6}, {4, 8},
			{4, 10}, {5, 7}, {5, 8}, {5, 10}, {6, 9}, {6, 11}, {7, 9}, {7, 11}, {8, 10}, {9, 11},
		},
	},
}

// SolidPolytope returns the catalog entry for s.
func SolidPolytope(s Solid) Polytope[Vertex3] { return solids[s] }

// Next cycles Tetrahedron → Cube → Octahedron → Dodecahedron → Icosahedron → Tetrahedron.
func (s Solid) Next() Solid { return (s + 1) % numSolids }

func (s Solid) String() string {
	if s >= numSolids {
		return fmt.Sprintf("Solid(%d)", uint8(s))
	}
	return solids[s].Name
}

// ParseSolid looks a solid up by case-insensitive name.
func ParseSolid(name string) (Solid, error) {
	for s := Solid(0); s < numSolids; s++ {
		if strings.EqualFold(solids[s].Name, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown solid %q", name)
}
