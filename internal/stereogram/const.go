package stereogram

type Real = float64

const (
	// projection
	BaseScale         = 180.0 // perspective scale at ReferenceDistance
	ReferenceDistance = 4.0
	NearFace          = 1.0 // camera-space depth of the nearest unit face is d - NearFace
	OrthoBoost        = 1.2 // orthographic scale multiplier after matching the near face
	HyperFraction     = 0.25
	MinCameraDepth    = 0.1 // perspective divide floor; catalog geometry stays above d-NearFace
	// compositing
	LineWidth    = 3.0
	Bands        = 5
	MinIntensity = 0.2
	wHueFar      = 240.0
	wHueNear     = 20.0
	wChroma      = 0.6
	// guides
	GuideLift   = 150.0
	GuideRadius = 6.0
	GuideWidth  = 2.0
	// view state ranges
	EyeSeparation       = 0.06
	EyeSeparationMin    = 0.05
	EyeSeparationMax    = 0.3
	EyeSeparationStep   = 0.01
	PerspectiveDistance = 10.0
	DistanceMin         = 2.0
	DistanceMax         = 20.0
	DistanceStep        = 0.5
	// sliders
	AngleStepDeg    = 1.0
	MaxVelocity     = 0.05 // radians per tick
	VelocityStep    = 0.001
	SliderRowHeight = 18.0
	SliderMargin    = 10.0
	SliderGrab      = 6.0
	// window & snapshot defaults
	WindowWidth    = 1200
	WindowHeight   = 700
	WindowTitle    = "Stereogram Viewer"
	TPS            = 60
	SnapshotFrames = 120
	GIFOut         = "stereogram.gif"
	GIFDelay       = 3 // 100ths of a second per frame
	PNGPrefix      = "pngs/stereogram"
	epsExtent      = 1e-9
)
