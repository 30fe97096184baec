package stereogram

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex3 is an object-space point of a 3D solid.
type Vertex3 = mgl64.Vec3

// Vertex4 is an object-space point of a 4D polytope.
type Vertex4 = Point4

// Vertex is the set of native vertex types the projection pipeline runs over.
type Vertex interface {
	Vertex3 | Vertex4
}

// Edge is an unordered index pair into the owning polytope's vertex table.
type Edge [2]int

// Polytope is a fixed wireframe: an order-significant vertex table and the
// edges that reference it. Catalog entries are shared and must not be mutated.
type Polytope[V Vertex] struct {
	Name     string
	Vertices []V
	Edges    []Edge
}

// Dim reports 3 for solids and 4 for hypersolids.
func (p Polytope[V]) Dim() int {
	var zero V
	if _, ok := any(zero).(Vertex4); ok {
		return 4
	}
	return 3
}

// validate checks that every edge references two distinct in-range vertices.
func (p Polytope[V]) validate() error {
	n := len(p.Vertices)
	for i, e := range p.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return fmt.Errorf("%s: edge #%d %v out of range [0,%d)", p.Name, i, e, n)
		}
		if e[0] == e[1] {
			return fmt.Errorf("%s: edge #%d %v is degenerate", p.Name, i, e)
		}
	}
	return nil
}

// allPairs returns every pair i<j of n vertices for which keep reports true.
func allPairs(n int, keep func(i, j int) bool) []Edge {
	var out []Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if keep == nil || keep(i, j) {
				out = append(out, Edge{i, j})
			}
		}
	}
	return out
}
