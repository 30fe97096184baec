package stereogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testW = 1200.0
	testH = 700.0
)

func trackMid(s Slider) (Real, Real) {
	return (s.Track.Min.X + s.Track.Max.X) / 2, (s.Track.Min.Y + s.Track.Max.Y) / 2
}

func TestSlidersLayout(t *testing.T) {
	s3 := Sliders(Mode3D, testW, testH)
	require.Len(t, s3, 6)
	require.Equal(t, "X angle", s3[0].Label)
	require.Equal(t, "X speed", s3[1].Label)
	require.Len(t, Sliders(Mode4D, testW, testH), 12)
	for _, s := range s3 {
		require.Less(t, s.Track.Max.Y, testH)
		require.Greater(t, s.Track.Width(), 0.0)
	}
}

func TestAngleSliderValues(t *testing.T) {
	s := Sliders(Mode3D, testW, testH)[0]
	require.Equal(t, SliderAngle, s.Kind)
	require.Equal(t, Real(0), s.ValueAt(s.Track.Min.X))
	require.Equal(t, Real(0), s.ValueAt(s.Track.Max.X), "360° wraps to 0")
	mid, _ := trackMid(s)
	require.InDelta(t, math.Pi, s.ValueAt(mid), 1e-12)
	require.Equal(t, Real(0), s.ValueAt(-100), "clamped to the track")

	// quantized to whole degrees
	deg := s.ValueAt(s.Track.Min.X+s.Track.Width()*0.1234) * 180 / math.Pi
	require.InDelta(t, math.Round(deg), deg, 1e-9)

	require.InDelta(t, mid, s.Position(math.Pi), 1e-9)
	require.Equal(t, "X angle 180°", s.Format(math.Pi))
}

func TestVelocitySliderValues(t *testing.T) {
	s := Sliders(Mode3D, testW, testH)[1]
	require.Equal(t, SliderVelocity, s.Kind)
	require.InDelta(t, -MaxVelocity, s.ValueAt(s.Track.Min.X), 1e-12)
	require.InDelta(t, MaxVelocity, s.ValueAt(s.Track.Max.X), 1e-12)
	mid, _ := trackMid(s)
	require.InDelta(t, 0, s.ValueAt(mid), 1e-12)
	require.InDelta(t, s.Track.Max.X, s.Position(1), 1e-9, "clamped to the track")
	require.Equal(t, "X speed +0.010", s.Format(0.01))
}

func TestDragCapturesOnPress(t *testing.T) {
	v := NewViewState()
	v.Paused = true
	v.ShowSliders = true
	s := Sliders(Mode3D, testW, testH)[0]
	x, y := trackMid(s)

	v.Update(Input{Pointer: Pointer{X: x, Y: y, Down: true}, ScreenW: testW, ScreenH: testH})
	i, ok := v.DraggedSlider()
	require.True(t, ok)
	require.Equal(t, 0, i)
	require.InDelta(t, math.Pi, v.Angles3.X, 1e-12)

	// leaving the track vertically keeps the capture
	v.Update(Input{Pointer: Pointer{X: s.Track.Min.X, Y: 0, Down: true}, ScreenW: testW, ScreenH: testH})
	require.Equal(t, Real(0), v.Angles3.X)
	_, ok = v.DraggedSlider()
	require.True(t, ok)

	v.Update(Input{Pointer: Pointer{X: x, Y: y}, ScreenW: testW, ScreenH: testH})
	_, ok = v.DraggedSlider()
	require.False(t, ok)
	require.Equal(t, Real(0), v.Angles3.X, "release does not change the value")
}

func TestDragRequiresPressOnTrack(t *testing.T) {
	v := NewViewState()
	v.Paused = true
	v.ShowSliders = true
	s := Sliders(Mode3D, testW, testH)[1]
	x, y := trackMid(s)

	// press elsewhere, then slide onto the track while held
	v.Update(Input{Pointer: Pointer{X: 5, Y: 5, Down: true}, ScreenW: testW, ScreenH: testH})
	v.Update(Input{Pointer: Pointer{X: x, Y: y, Down: true}, ScreenW: testW, ScreenH: testH})
	_, ok := v.DraggedSlider()
	require.False(t, ok)
	require.Equal(t, DefaultVelocity3, v.Velocity3)
}

func TestDragIgnoredWhenHidden(t *testing.T) {
	v := NewViewState()
	v.Paused = true
	s := Sliders(Mode3D, testW, testH)[1]
	x, y := trackMid(s)
	v.Update(Input{Pointer: Pointer{X: x, Y: y, Down: true}, ScreenW: testW, ScreenH: testH})
	_, ok := v.DraggedSlider()
	require.False(t, ok)
	require.Equal(t, DefaultVelocity3, v.Velocity3)
}

func TestDragVelocity4D(t *testing.T) {
	v := NewViewState()
	v.Mode = Mode4D
	v.ShowSliders = true
	sl := Sliders(Mode4D, testW, testH)
	s := sl[len(sl)-1] // ZW speed
	require.Equal(t, "ZW speed", s.Label)
	v.Update(Input{Pointer: Pointer{X: s.Track.Max.X, Y: s.Track.Min.Y, Down: true}, ScreenW: testW, ScreenH: testH})
	require.InDelta(t, MaxVelocity, v.Velocity4.ZW, 1e-12)
	require.InDelta(t, MaxVelocity, v.SliderValue(s), 1e-12)
	require.InDelta(t, MaxVelocity, v.Angles4.ZW, 1e-12, "the tick used the new speed")
}

func TestToggleDimensionDropsCapture(t *testing.T) {
	v := NewViewState()
	v.Paused = true
	v.ShowSliders = true
	x, y := trackMid(Sliders(Mode3D, testW, testH)[0])
	v.Update(Input{Pointer: Pointer{X: x, Y: y, Down: true}, ScreenW: testW, ScreenH: testH})
	v.Update(Input{Commands: []Command{CmdDimension}, Pointer: Pointer{X: x, Y: y, Down: true}, ScreenW: testW, ScreenH: testH})
	_, ok := v.DraggedSlider()
	require.False(t, ok)
	require.Equal(t, Rot4{}, v.Angles4)
}
