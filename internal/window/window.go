package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/lukaszgryglicki/stereogram/internal/stereogram"
)

const (
	hudLineHeight = 16
	hudPadding    = 6
	hudWidth      = 330
)

var (
	hudPanel    = color.RGBA{0, 0, 0, 170}
	sliderTrack = color.RGBA{128, 128, 128, 255}
)

// Run opens the window and blocks until it is closed.
func Run(cfg *stereogram.Config) error {
	v, err := cfg.View.Build()
	if err != nil {
		return err
	}
	g := &game{state: v, w: cfg.Window.Width, h: cfg.Window.Height}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)
	stereogram.DebugLog("Opening %dx%d window at %d TPS", cfg.Window.Width, cfg.Window.Height, cfg.Window.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type game struct {
	state *stereogram.ViewState
	w, h  int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.state.Update(pollInput(g.w, g.h))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.state.Frame(stereogram.Real(g.w), stereogram.Real(g.h))
	screen.Fill(f.Background)
	for _, eye := range f.Eyes {
		for _, e := range eye {
			vector.StrokeLine(screen,
				float32(e.From.X), float32(e.From.Y), float32(e.To.X), float32(e.To.Y),
				float32(e.Width), e.Color, true)
		}
	}
	for _, gd := range f.Guides {
		vector.StrokeCircle(screen, float32(gd.Center.X), float32(gd.Center.Y),
			float32(gd.Radius), float32(gd.Width), gd.Color, true)
	}
	if g.state.ShowSliders {
		g.drawSliders(screen)
	}
	if g.state.ShowUI {
		g.drawHUD(screen)
	}
}

// drawHUD prints status and key help on a dark panel so the debug font
// stays readable on the white background too.
func (g *game) drawHUD(screen *ebiten.Image) {
	lines := append(g.state.StatusLines(), "")
	lines = append(lines, helpLines()...)
	h := len(lines)*hudLineHeight + 2*hudPadding
	vector.DrawFilledRect(screen, 0, 0, hudWidth, float32(h), hudPanel, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, hudPadding, hudPadding+i*hudLineHeight)
	}
}

func (g *game) drawSliders(screen *ebiten.Image) {
	sliders := stereogram.Sliders(g.state.Mode, stereogram.Real(g.w), stereogram.Real(g.h))
	active, dragging := g.state.DraggedSlider()
	for i, s := range sliders {
		y := float32((s.Track.Min.Y + s.Track.Max.Y) / 2)
		vector.StrokeLine(screen, float32(s.Track.Min.X), y, float32(s.Track.Max.X), y, 2, sliderTrack, false)
		knob := colornames.Orange
		if dragging && i == active {
			knob = colornames.Red
		}
		val := g.state.SliderValue(s)
		vector.DrawFilledCircle(screen, float32(s.Position(val)), y, 5, knob, true)
		labelX := int(s.Track.Min.X) - 110
		if labelX < 0 {
			labelX = 0
		}
		ebitenutil.DebugPrintAt(screen, s.Format(val), labelX, int(y)-8)
	}
}

// Layout follows the window so the two eye views always split it in half.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
