package stereogram

import "fmt"

// StatusLines is the HUD text for the current state, top to bottom.
func (v *ViewState) StatusLines() []string {
	projection := "Perspective"
	if v.Orthographic {
		projection = "Orthographic"
	}
	lines := []string{
		"Stereogram Viewer - look \"through\" the screen",
		"Left Eye | Right Eye",
		fmt.Sprintf("Shape: %s (%s)", v.ShapeName(), v.Mode),
		fmt.Sprintf("Eye Separation: %.3f", v.EyeSeparation),
		fmt.Sprintf("Perspective Distance: %.1f", v.PerspectiveDistance),
		fmt.Sprintf("Projection: %s", projection),
		fmt.Sprintf("Coloring: %s", v.ColorMode()),
	}
	if v.Paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}
