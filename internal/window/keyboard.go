package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lukaszgryglicki/stereogram/internal/stereogram"
)

type binding struct {
	key  ebiten.Key
	name string
	cmd  stereogram.Command
}

// Left/right trim the eye separation, up/down the perspective distance.
var bindings = []binding{
	{ebiten.KeySpace, "SPACE", stereogram.CmdPause},
	{ebiten.KeyG, "G", stereogram.CmdGuides},
	{ebiten.KeyC, "C", stereogram.CmdDepthColoring},
	{ebiten.KeyW, "W", stereogram.CmdWDepthColoring},
	{ebiten.KeyB, "B", stereogram.CmdBackground},
	{ebiten.KeyO, "O", stereogram.CmdProjection},
	{ebiten.KeyT, "T", stereogram.CmdUI},
	{ebiten.KeyV, "V", stereogram.CmdSliders},
	{ebiten.KeyS, "S", stereogram.CmdNextSolid},
	{ebiten.KeyD, "D", stereogram.CmdDimension},
	{ebiten.KeyH, "H", stereogram.CmdNextHypersolid},
	{ebiten.KeyR, "R", stereogram.CmdResetAngles},
	{ebiten.KeyArrowLeft, "LEFT", stereogram.CmdEyeSeparationDown},
	{ebiten.KeyArrowRight, "RIGHT", stereogram.CmdEyeSeparationUp},
	{ebiten.KeyArrowUp, "UP", stereogram.CmdDistanceUp},
	{ebiten.KeyArrowDown, "DOWN", stereogram.CmdDistanceDown},
}

// pollInput collects this tick's key presses and pointer state.
func pollInput(w, h int) stereogram.Input {
	in := stereogram.Input{ScreenW: stereogram.Real(w), ScreenH: stereogram.Real(h)}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			in.Commands = append(in.Commands, b.cmd)
		}
	}
	x, y := ebiten.CursorPosition()
	in.Pointer = stereogram.Pointer{
		X:    stereogram.Real(x),
		Y:    stereogram.Real(y),
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	return in
}

func helpLines() []string {
	out := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		out = append(out, fmt.Sprintf("%-5s %s", b.name, b.cmd))
	}
	return append(out, "ESC   quit")
}
