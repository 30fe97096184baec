package stereogram

// Dimension is the active pipeline: Platonic solids or hypersolids.
type Dimension uint8

const (
	Mode3D Dimension = iota
	Mode4D
)

func (d Dimension) String() string {
	if d == Mode4D {
		return "4D"
	}
	return "3D"
}

// ViewState is the single mutable aggregate read by every pipeline stage.
// It is owned by the frame loop; nothing here is safe for concurrent use.
type ViewState struct {
	Mode       Dimension
	Solid      Solid
	Hypersolid Hypersolid

	Angles3, Velocity3 Rot3
	Angles4, Velocity4 Rot4

	EyeSeparation       Real
	PerspectiveDistance Real

	Orthographic   bool
	DepthColoring  bool
	WDepthColoring bool
	DarkBackground bool
	Paused         bool
	ShowGuides     bool
	ShowUI         bool
	ShowSliders    bool

	drag        int // 1-based index of the captured slider, 0 when none
	pointerDown bool
}

// NewViewState returns the startup defaults.
func NewViewState() *ViewState {
	return &ViewState{
		Mode:                Mode3D,
		Solid:               Cube,
		Hypersolid:          Tesseract,
		Velocity3:           DefaultVelocity3,
		Velocity4:           DefaultVelocity4,
		EyeSeparation:       EyeSeparation,
		PerspectiveDistance: PerspectiveDistance,
		DepthColoring:       true,
		ShowGuides:          true,
		ShowUI:              true,
	}
}

// Advance runs one tick of the rotation integrator for the active mode.
func (v *ViewState) Advance() {
	if v.Paused {
		return
	}
	if v.Mode == Mode4D {
		v.Angles4 = v.Angles4.Advance(v.Velocity4)
		return
	}
	v.Angles3 = v.Angles3.Advance(v.Velocity3)
}

// ColorMode resolves the coloring flags. W coloring only has meaning for
// hypersolids; for solids it falls back to Z.
func (v *ViewState) ColorMode() ColorMode {
	switch {
	case v.WDepthColoring && v.Mode == Mode4D:
		return ColorW
	case v.WDepthColoring || v.DepthColoring:
		return ColorDepth
	default:
		return ColorFlat
	}
}

// ShapeName is the name of whatever is being drawn.
func (v *ViewState) ShapeName() string {
	if v.Mode == Mode4D {
		return v.Hypersolid.String()
	}
	return v.Solid.String()
}

func (v *ViewState) TogglePause()      { v.Paused = !v.Paused }
func (v *ViewState) ToggleGuides()     { v.ShowGuides = !v.ShowGuides }
func (v *ViewState) ToggleBackground() { v.DarkBackground = !v.DarkBackground }
func (v *ViewState) ToggleProjection() { v.Orthographic = !v.Orthographic }
func (v *ViewState) ToggleUI()         { v.ShowUI = !v.ShowUI }
func (v *ViewState) NextSolid()        { v.Solid = v.Solid.Next() }
func (v *ViewState) NextHypersolid()   { v.Hypersolid = v.Hypersolid.Next() }

func (v *ViewState) ToggleSliders() {
	v.ShowSliders = !v.ShowSliders
	v.drag = 0
}

// ToggleDepthColoring flips Z coloring; turning it on turns W coloring off.
func (v *ViewState) ToggleDepthColoring() {
	v.DepthColoring = !v.DepthColoring
	if v.DepthColoring {
		v.WDepthColoring = false
	}
}

// ToggleWDepthColoring flips W coloring; turning it on turns Z coloring off.
func (v *ViewState) ToggleWDepthColoring() {
	v.WDepthColoring = !v.WDepthColoring
	if v.WDepthColoring {
		v.DepthColoring = false
	}
}

func (v *ViewState) ToggleDimension() {
	if v.Mode == Mode4D {
		v.Mode = Mode3D
	} else {
		v.Mode = Mode4D
	}
	v.drag = 0
}

// AdjustEyeSeparation moves the separation by steps, clamped to its range.
func (v *ViewState) AdjustEyeSeparation(steps int) {
	s := roundTo(v.EyeSeparation+Real(steps)*EyeSeparationStep, EyeSeparationStep/10)
	v.EyeSeparation = clamp(s, EyeSeparationMin, EyeSeparationMax)
}

// AdjustPerspectiveDistance moves the distance by steps, clamped to its range.
func (v *ViewState) AdjustPerspectiveDistance(steps int) {
	d := roundTo(v.PerspectiveDistance+Real(steps)*DistanceStep, DistanceStep/10)
	v.PerspectiveDistance = clamp(d, DistanceMin, DistanceMax)
}

// ResetAngles zeroes the angles of the active mode, leaving velocities alone.
func (v *ViewState) ResetAngles() {
	if v.Mode == Mode4D {
		v.Angles4 = Rot4{}
		return
	}
	v.Angles3 = Rot3{}
}
