package stereogram

import (
	"image/color"
	"math"
	"sort"

	"github.com/jbeda/geom"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ColorMode decides how wires are tinted.
type ColorMode uint8

const (
	ColorFlat  ColorMode = iota // one background-dependent color
	ColorDepth                  // banded by camera-space Z
	ColorW                      // banded by the 4th coordinate
)

func (m ColorMode) String() string {
	switch m {
	case ColorDepth:
		return "Depth (Z)"
	case ColorW:
		return "Depth (W)"
	default:
		return "Flat"
	}
}

// ProjectedEdge is one draw command for one eye.
type ProjectedEdge struct {
	From, To geom.Coord
	Depth    Real // mean camera-space Z of the endpoints
	W        Real // mean rotated W of the endpoints, 0 for solids
	Color    color.RGBA
	Width    Real
}

func (e ProjectedEdge) key(mode ColorMode) Real {
	if mode == ColorW {
		return e.W
	}
	return e.Depth
}

// Band quantizes nearness in [0,1] into one of Bands steps.
func Band(nearness Real) int {
	b := int(clamp01(nearness) * Bands)
	if b >= Bands {
		b = Bands - 1
	}
	return b
}

// Intensity is the banded brightness for nearness in [0,1]: MinIntensity for
// the farthest band up to 1 for the nearest.
func Intensity(nearness Real) Real {
	return MinIntensity + (1-MinIntensity)*Real(Band(nearness))/Real(Bands-1)
}

func Background(dark bool) color.RGBA {
	if dark {
		return colornames.Black
	}
	return colornames.White
}

func flatColor(dark bool) color.RGBA {
	if dark {
		return colornames.White
	}
	return colornames.Black
}

// greyBand: near is bright on a dark background and dark on a light one.
func greyBand(intensity Real, dark bool) color.RGBA {
	v := intensity
	if !dark {
		v = 1 - intensity
	}
	g := uint8(math.Round(clamp01(v) * 255))
	return color.RGBA{g, g, g, 255}
}

// hueBand walks from blue (far) to red (near); luminance follows the same
// background rule as greyBand.
func hueBand(intensity Real, dark bool) color.RGBA {
	f := (intensity - MinIntensity) / (1 - MinIntensity)
	h := wHueFar + (wHueNear-wHueFar)*f
	l := 0.25 + 0.65*intensity
	if !dark {
		l = 0.9 - 0.65*intensity
	}
	r, g, b := colorful.Hcl(h, wChroma, l).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// composite orders edges farther-first and assigns their colors in place.
// Colors are normalized against this frame's own min/max.
func composite(edges []ProjectedEdge, mode ColorMode, dark bool) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].key(mode) > edges[j].key(mode)
	})
	if mode == ColorFlat {
		c := flatColor(dark)
		for i := range edges {
			edges[i].Color = c
		}
		return
	}
	if len(edges) == 0 {
		return
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		k := e.key(mode)
		lo = math.Min(lo, k)
		hi = math.Max(hi, k)
	}
	span := hi - lo
	for i := range edges {
		near := 1.0
		if span > epsExtent {
			near = 1 - (edges[i].key(mode)-lo)/span
		}
		in := Intensity(near)
		if mode == ColorW {
			edges[i].Color = hueBand(in, dark)
		} else {
			edges[i].Color = greyBand(in, dark)
		}
	}
}
