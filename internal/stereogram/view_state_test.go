package stereogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewViewStateDefaults(t *testing.T) {
	v := NewViewState()
	require.Equal(t, Mode3D, v.Mode)
	require.Equal(t, Cube, v.Solid)
	require.Equal(t, Tesseract, v.Hypersolid)
	require.Equal(t, Real(EyeSeparation), v.EyeSeparation)
	require.Equal(t, Real(PerspectiveDistance), v.PerspectiveDistance)
	require.Equal(t, ColorDepth, v.ColorMode())
	require.True(t, v.ShowGuides)
	require.True(t, v.ShowUI)
	require.False(t, v.ShowSliders)
	require.False(t, v.Paused)
	require.Equal(t, "Cube", v.ShapeName())
}

func TestColoringMutuallyExclusive(t *testing.T) {
	v := NewViewState()
	v.ToggleWDepthColoring()
	require.True(t, v.WDepthColoring)
	require.False(t, v.DepthColoring)
	require.Equal(t, ColorDepth, v.ColorMode(), "W coloring falls back to Z for solids")

	v.ToggleDimension()
	require.Equal(t, ColorW, v.ColorMode())

	v.ToggleDepthColoring()
	require.True(t, v.DepthColoring)
	require.False(t, v.WDepthColoring)
	require.Equal(t, ColorDepth, v.ColorMode())

	v.ToggleDepthColoring()
	require.False(t, v.DepthColoring || v.WDepthColoring)
	require.Equal(t, ColorFlat, v.ColorMode())
}

func TestAdvanceOnlyActiveMode(t *testing.T) {
	v := NewViewState()
	v.Advance()
	require.InDelta(t, DefaultVelocity3.X, v.Angles3.X, 1e-12)
	require.InDelta(t, DefaultVelocity3.Y, v.Angles3.Y, 1e-12)
	require.Equal(t, Rot4{}, v.Angles4)

	v.ToggleDimension()
	before := v.Angles3
	v.Advance()
	require.Equal(t, before, v.Angles3)
	require.InDelta(t, DefaultVelocity4.XW, v.Angles4.XW, 1e-12)
	require.InDelta(t, 0, v.Angles4.XY, 1e-12)
}

func TestPauseFreezesAndResumes(t *testing.T) {
	v := NewViewState()
	v.Advance()
	v.TogglePause()
	frozen := v.Angles3
	for i := 0; i < 10; i++ {
		v.Advance()
	}
	require.Equal(t, frozen, v.Angles3)

	v.TogglePause()
	v.Advance()
	require.InDelta(t, frozen.X+DefaultVelocity3.X, v.Angles3.X, 1e-12, "resumes from where it stopped")
}

func TestEyeSeparationClamp(t *testing.T) {
	v := NewViewState()
	v.AdjustEyeSeparation(1)
	require.InDelta(t, 0.07, v.EyeSeparation, 1e-12)
	v.AdjustEyeSeparation(-2)
	require.InDelta(t, 0.05, v.EyeSeparation, 1e-12)
	v.AdjustEyeSeparation(-1)
	require.Equal(t, Real(EyeSeparationMin), v.EyeSeparation)
	v.AdjustEyeSeparation(100)
	require.Equal(t, Real(EyeSeparationMax), v.EyeSeparation)
}

func TestPerspectiveDistanceClamp(t *testing.T) {
	v := NewViewState()
	v.AdjustPerspectiveDistance(1)
	require.InDelta(t, 10.5, v.PerspectiveDistance, 1e-12)
	v.AdjustPerspectiveDistance(100)
	require.Equal(t, Real(DistanceMax), v.PerspectiveDistance)
	v.AdjustPerspectiveDistance(-100)
	require.Equal(t, Real(DistanceMin), v.PerspectiveDistance)
}

func TestResetAngles(t *testing.T) {
	v := NewViewState()
	v.Angles3 = Rot3{1, 2, 3}
	v.Angles4 = Rot4{XY: 1}
	v.ResetAngles()
	require.Equal(t, Rot3{}, v.Angles3)
	require.Equal(t, Rot4{XY: 1}, v.Angles4)
	require.Equal(t, DefaultVelocity3, v.Velocity3, "velocities untouched")

	v.ToggleDimension()
	v.ResetAngles()
	require.Equal(t, Rot4{}, v.Angles4)
}

func TestUpdateAppliesCommandsInOrder(t *testing.T) {
	v := NewViewState()
	v.Update(Input{Commands: []Command{CmdPause, CmdWDepthColoring, CmdDepthColoring, CmdNextSolid, CmdNextSolid}})
	require.True(t, v.Paused)
	require.True(t, v.DepthColoring)
	require.False(t, v.WDepthColoring)
	require.Equal(t, Dodecahedron, v.Solid)
	require.Equal(t, Rot3{}, v.Angles3, "paused before the tick")

	v.Update(Input{Commands: []Command{CmdDimension, CmdNextHypersolid, CmdPause}})
	require.Equal(t, Mode4D, v.Mode)
	require.Equal(t, Simplex, v.Hypersolid)
	require.Equal(t, "4-Simplex", v.ShapeName())
	require.NotEqual(t, Rot4{}, v.Angles4)
}

func TestApplyEveryCommand(t *testing.T) {
	v := NewViewState()
	for c := Command(0); c < numCommands; c++ {
		require.NotEmpty(t, c.String())
		require.NotPanics(t, func() { v.Apply(c) })
	}
	require.Equal(t, "unknown command", numCommands.String())

	v = NewViewState()
	for _, c := range []Command{CmdGuides, CmdBackground, CmdProjection, CmdUI, CmdSliders} {
		v.Apply(c)
	}
	require.False(t, v.ShowGuides)
	require.True(t, v.DarkBackground)
	require.True(t, v.Orthographic)
	require.False(t, v.ShowUI)
	require.True(t, v.ShowSliders)
}

func TestStatusLines(t *testing.T) {
	v := NewViewState()
	lines := v.StatusLines()
	require.Contains(t, lines, "Shape: Cube (3D)")
	require.Contains(t, lines, "Eye Separation: 0.060")
	require.Contains(t, lines, "Perspective Distance: 10.0")
	require.Contains(t, lines, "Projection: Perspective")
	require.NotContains(t, lines, "PAUSED")

	v.TogglePause()
	v.ToggleProjection()
	lines = v.StatusLines()
	require.Contains(t, lines, "PAUSED")
	require.Contains(t, lines, "Projection: Orthographic")
}
