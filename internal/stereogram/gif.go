package stereogram

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
)

// SaveAnimatedGIF writes frames as a looping GIF.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveAnimatedGIF(frames []image.Image, path string, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to write to %s", path)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	n := len(frames)
	for k, img := range frames {
		if k%max(1, n/100) == 0 { // ~1% steps
			DebugLog("[GIF] %.2f%%", float64(k+1)*100/float64(n))
		}
		// Quantize to paletted for GIF
		pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, img.Bounds().Min)
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
