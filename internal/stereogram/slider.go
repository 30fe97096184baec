package stereogram

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// SliderKind says what a slider drives.
type SliderKind uint8

const (
	SliderAngle    SliderKind = iota // [0°, 360°) in AngleStepDeg steps
	SliderVelocity                   // [-MaxVelocity, MaxVelocity] in VelocityStep steps
)

// Slider is a horizontal track bound to one rotation axis or plane.
type Slider struct {
	Label string
	Kind  SliderKind
	Axis  int // index for Rot3.Get / Rot4.Get
	Track geom.Rect
}

// Sliders lays out an angle and a velocity slider per axis (3D) or plane
// (4D) in rows along the bottom of the screen.
func Sliders(mode Dimension, w, h Real) []Slider {
	names := rot3Names[:]
	if mode == Mode4D {
		names = rot4Names[:]
	}
	out := make([]Slider, 0, 2*len(names))
	for i, n := range names {
		y := h - SliderMargin - Real(len(names)-i)*SliderRowHeight + SliderRowHeight/2
		out = append(out,
			Slider{Label: n + " angle", Kind: SliderAngle, Axis: i, Track: track(w*0.12, w*0.45, y)},
			Slider{Label: n + " speed", Kind: SliderVelocity, Axis: i, Track: track(w*0.62, w*0.95, y)},
		)
	}
	return out
}

func track(x0, x1, y Real) geom.Rect {
	return geom.Rect{Min: geom.Coord{X: x0, Y: y - 2}, Max: geom.Coord{X: x1, Y: y + 2}}
}

// Contains reports whether a press at (x, y) grabs the slider.
func (s Slider) Contains(x, y Real) bool {
	return x >= s.Track.Min.X && x <= s.Track.Max.X &&
		y >= s.Track.Min.Y-SliderGrab && y <= s.Track.Max.Y+SliderGrab
}

func (s Slider) fraction(x Real) Real {
	w := s.Track.Width()
	if w <= 0 {
		return 0
	}
	return clamp01((x - s.Track.Min.X) / w)
}

// ValueAt maps a horizontal pointer position to a quantized value: radians
// for angle sliders, radians per tick for velocity sliders.
func (s Slider) ValueAt(x Real) Real {
	f := s.fraction(x)
	if s.Kind == SliderAngle {
		deg := math.Mod(roundTo(f*360, AngleStepDeg), 360)
		return deg * math.Pi / 180
	}
	return clamp(roundTo(-MaxVelocity+f*2*MaxVelocity, VelocityStep), -MaxVelocity, MaxVelocity)
}

// Position is the knob x for value val, the inverse of ValueAt.
func (s Slider) Position(val Real) Real {
	var f Real
	if s.Kind == SliderAngle {
		f = wrapAngle(val) / (2 * math.Pi)
	} else {
		f = (clamp(val, -MaxVelocity, MaxVelocity) + MaxVelocity) / (2 * MaxVelocity)
	}
	return s.Track.Min.X + f*s.Track.Width()
}

// Format renders the slider value for the label.
func (s Slider) Format(val Real) string {
	if s.Kind == SliderAngle {
		return fmt.Sprintf("%s %3.0f°", s.Label, wrapAngle(val)*180/math.Pi)
	}
	return fmt.Sprintf("%s %+.3f", s.Label, val)
}

// SliderValue reads the value s is bound to.
func (v *ViewState) SliderValue(s Slider) Real {
	switch {
	case v.Mode == Mode4D && s.Kind == SliderAngle:
		return v.Angles4.Get(s.Axis)
	case v.Mode == Mode4D:
		return v.Velocity4.Get(s.Axis)
	case s.Kind == SliderAngle:
		return v.Angles3.Get(s.Axis)
	default:
		return v.Velocity3.Get(s.Axis)
	}
}

func (v *ViewState) setSlider(s Slider, val Real) {
	switch {
	case v.Mode == Mode4D && s.Kind == SliderAngle:
		v.Angles4.Set(s.Axis, val)
	case v.Mode == Mode4D:
		v.Velocity4.Set(s.Axis, val)
	case s.Kind == SliderAngle:
		v.Angles3.Set(s.Axis, val)
	default:
		v.Velocity3.Set(s.Axis, val)
	}
}

// dragSliders captures a slider on press and follows the pointer until release.
func (v *ViewState) dragSliders(in Input) {
	press := in.Pointer.Down && !v.pointerDown
	v.pointerDown = in.Pointer.Down
	if !v.ShowSliders || !in.Pointer.Down {
		v.drag = 0
		return
	}
	sl := Sliders(v.Mode, in.ScreenW, in.ScreenH)
	if press {
		v.drag = 0
		for i, s := range sl {
			if s.Contains(in.Pointer.X, in.Pointer.Y) {
				v.drag = i + 1
				DebugLog("captured slider %q", s.Label)
				break
			}
		}
	}
	if v.drag == 0 || v.drag > len(sl) {
		return
	}
	s := sl[v.drag-1]
	v.setSlider(s, s.ValueAt(in.Pointer.X))
}

// DraggedSlider reports the captured slider index, if any.
func (v *ViewState) DraggedSlider() (int, bool) {
	return v.drag - 1, v.drag > 0
}
