package stereogram

// Command is a discrete key-press style input.
type Command uint8

const (
	CmdPause Command = iota
	CmdGuides
	CmdDepthColoring
	CmdWDepthColoring
	CmdBackground
	CmdProjection
	CmdUI
	CmdSliders
	CmdNextSolid
	CmdDimension
	CmdNextHypersolid
	CmdEyeSeparationDown
	CmdEyeSeparationUp
	CmdDistanceUp
	CmdDistanceDown
	CmdResetAngles
	numCommands
)

var commandNames = [numCommands]string{
	CmdPause:             "pause/resume animation",
	CmdGuides:            "toggle fusion guides",
	CmdDepthColoring:     "toggle depth (Z) coloring",
	CmdWDepthColoring:    "toggle W-depth coloring (4D)",
	CmdBackground:        "toggle background (black/white)",
	CmdProjection:        "toggle orthographic/perspective",
	CmdUI:                "toggle text/UI",
	CmdSliders:           "toggle rotation sliders",
	CmdNextSolid:         "cycle Platonic solids",
	CmdDimension:         "toggle 3D/4D",
	CmdNextHypersolid:    "cycle hypersolids",
	CmdEyeSeparationDown: "decrease eye separation",
	CmdEyeSeparationUp:   "increase eye separation",
	CmdDistanceUp:        "increase perspective distance",
	CmdDistanceDown:      "decrease perspective distance",
	CmdResetAngles:       "reset rotation angles",
}

func (c Command) String() string {
	if c >= numCommands {
		return "unknown command"
	}
	return commandNames[c]
}

// Pointer is the mouse state for the current tick.
type Pointer struct {
	X, Y Real
	Down bool
}

// Input is everything the input collaborator hands over once per tick.
type Input struct {
	Commands         []Command
	Pointer          Pointer
	ScreenW, ScreenH Real
}

// Apply executes a single command. Every command is a plain flip or a clamped step.
func (v *ViewState) Apply(c Command) {
	switch c {
	case CmdPause:
		v.TogglePause()
	case CmdGuides:
		v.ToggleGuides()
	case CmdDepthColoring:
		v.ToggleDepthColoring()
	case CmdWDepthColoring:
		v.ToggleWDepthColoring()
	case CmdBackground:
		v.ToggleBackground()
	case CmdProjection:
		v.ToggleProjection()
	case CmdUI:
		v.ToggleUI()
	case CmdSliders:
		v.ToggleSliders()
	case CmdNextSolid:
		v.NextSolid()
	case CmdDimension:
		v.ToggleDimension()
	case CmdNextHypersolid:
		v.NextHypersolid()
	case CmdEyeSeparationDown:
		v.AdjustEyeSeparation(-1)
	case CmdEyeSeparationUp:
		v.AdjustEyeSeparation(1)
	case CmdDistanceUp:
		v.AdjustPerspectiveDistance(1)
	case CmdDistanceDown:
		v.AdjustPerspectiveDistance(-1)
	case CmdResetAngles:
		v.ResetAngles()
	}
}

// Update is the per-tick entry point: commands in order, then slider
// dragging, then one rotation step.
func (v *ViewState) Update(in Input) {
	for _, c := range in.Commands {
		v.Apply(c)
	}
	v.dragSliders(in)
	v.Advance()
}
