package stereogram

import (
	"image/color"
	"math"

	"github.com/jbeda/geom"
	"golang.org/x/image/colornames"
)

// Guide is a fusion aid circle drawn above each eye view.
type Guide struct {
	Center geom.Coord
	Radius Real
	Width  Real
	Color  color.RGBA
}

// Frame is the complete draw list for one tick.
type Frame struct {
	Width, Height Real
	Background    color.RGBA
	Eyes          [2][]ProjectedEdge // draw order: index 0 first
	Guides        []Guide
}

// stage parameterizes the shared pipeline by vertex dimensionality.
type stage[V Vertex] struct {
	rotate func(V) V
	fold   func(V) (Vertex3, Real) // 3D point plus the W used for W coloring
	fit    func([]Vertex3)         // optional rescale of the folded set, nil for solids
	scale  scalePolicy
}

// project runs rotate → fold → fit → scale → per-eye projection → compositing.
func project[V Vertex](poly Polytope[V], st stage[V], v *ViewState, w, h Real) [2][]ProjectedEdge {
	n := len(poly.Vertices)
	points := make([]Vertex3, n)
	ws := make([]Real, n)
	for i, p := range poly.Vertices {
		points[i], ws[i] = st.fold(st.rotate(p))
	}
	if st.fit != nil {
		st.fit(points)
	}
	vps := EyeViewports(w, h)
	scale := st.scale(points, vps[0].Width(), v.PerspectiveDistance, v.Orthographic)
	DebugLogOnce("%s: scale=%.3f distance=%.1f ortho=%v", poly.Name, scale, v.PerspectiveDistance, v.Orthographic)
	mode := v.ColorMode()

	var out [2][]ProjectedEdge
	screen := make([]geom.Coord, n)
	for e := LeftEye; e <= RightEye; e++ {
		cam := Camera{
			Offset:       e.Offset(v.EyeSeparation),
			Distance:     v.PerspectiveDistance,
			Scale:        scale,
			Orthographic: v.Orthographic,
			Center:       rectCenter(vps[e]),
		}
		for i, p := range points {
			screen[i] = cam.Project(p)
		}
		edges := make([]ProjectedEdge, len(poly.Edges))
		for k, ed := range poly.Edges {
			a, b := ed[0], ed[1]
			edges[k] = ProjectedEdge{
				From:  screen[a],
				To:    screen[b],
				Depth: (cam.Depth(points[a]) + cam.Depth(points[b])) / 2,
				W:     (ws[a] + ws[b]) / 2,
				Width: LineWidth,
			}
		}
		composite(edges, mode, v.DarkBackground)
		out[e] = edges
	}
	return out
}

// Frame builds the draw list for a w×h screen from the current state.
func (v *ViewState) Frame(w, h Real) Frame {
	f := Frame{Width: w, Height: h, Background: Background(v.DarkBackground)}
	if v.Mode == Mode4D {
		R := rotFromAngles(v.Angles4)
		ortho := v.Orthographic
		f.Eyes = project(HypersolidPolytope(v.Hypersolid), stage[Vertex4]{
			rotate: R.MulPoint,
			fold:   func(p Vertex4) (Vertex3, Real) { return Fold(p, ortho), p.W },
			fit:    unitRadius,
			scale:  boundingScale,
		}, v, w, h)
	} else {
		R := rot3Matrix(v.Angles3)
		f.Eyes = project(SolidPolytope(v.Solid), stage[Vertex3]{
			rotate: R.Mul3x1,
			fold:   func(p Vertex3) (Vertex3, Real) { return p, 0 },
			scale:  fixedScale,
		}, v, w, h)
	}
	if v.ShowGuides {
		f.Guides = guides(w, h)
	}
	return f
}

func guides(w, h Real) []Guide {
	y := math.Max(h/2-GuideLift, 2*GuideRadius)
	vps := EyeViewports(w, h)
	out := make([]Guide, 0, len(vps))
	for _, vp := range vps {
		out = append(out, Guide{
			Center: geom.Coord{X: rectCenter(vp).X, Y: y},
			Radius: GuideRadius,
			Width:  GuideWidth,
			Color:  colornames.Red,
		})
	}
	return out
}
