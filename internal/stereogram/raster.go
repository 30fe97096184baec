package stereogram

import (
	"image"

	"github.com/fogleman/gg"
)

// DrawFrame strokes a frame onto dc: background, both eyes in draw order, guides.
func DrawFrame(dc *gg.Context, f Frame) {
	dc.SetColor(f.Background)
	dc.Clear()
	dc.SetLineCapRound()
	for _, eye := range f.Eyes {
		for _, e := range eye {
			dc.SetColor(e.Color)
			dc.SetLineWidth(e.Width)
			dc.DrawLine(e.From.X, e.From.Y, e.To.X, e.To.Y)
			dc.Stroke()
		}
	}
	for _, g := range f.Guides {
		dc.SetColor(g.Color)
		dc.SetLineWidth(g.Width)
		dc.DrawCircle(g.Center.X, g.Center.Y, g.Radius)
		dc.Stroke()
	}
}

// RenderFrame rasterizes f into a new w×h image.
func RenderFrame(f Frame, w, h int) image.Image {
	dc := gg.NewContext(w, h)
	DrawFrame(dc, f)
	return dc.Image()
}
