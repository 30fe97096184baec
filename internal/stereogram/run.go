package stereogram

import (
	"fmt"
	"image"
	"time"

	"github.com/nfnt/resize"
)

// Snapshot renders cfg.Snapshot.Frames consecutive ticks headlessly. The
// first frame shows the initial angles; every later one is one tick on.
func Snapshot(cfg *Config) ([]image.Image, error) {
	v, err := cfg.View.Build()
	if err != nil {
		return nil, err
	}
	w, h := cfg.Snapshot.Width, cfg.Snapshot.Height
	in := Input{ScreenW: Real(w), ScreenH: Real(h)}
	frames := make([]image.Image, 0, cfg.Snapshot.Frames)
	for i := 0; i < cfg.Snapshot.Frames; i++ {
		if i > 0 {
			v.Update(in)
		}
		frames = append(frames, RenderFrame(v.Frame(Real(w), Real(h)), w, h))
	}
	return scaleFrames(frames, cfg.Snapshot.OutputWidth), nil
}

// scaleFrames resizes every frame to width (keeping aspect); 0 or the
// current width leaves them untouched.
func scaleFrames(frames []image.Image, width int) []image.Image {
	if width <= 0 || len(frames) == 0 || frames[0].Bounds().Dx() == width {
		return frames
	}
	out := make([]image.Image, len(frames))
	for i, f := range frames {
		out[i] = resize.Resize(uint(width), 0, f, resize.Bilinear)
	}
	return out
}

// RunSnapshot renders and writes a snapshot as a GIF, or a PNG sequence when PNG is set.
func RunSnapshot(cfg *Config) error {
	start := time.Now()
	frames, err := Snapshot(cfg)
	if err != nil {
		return err
	}
	DebugLog("Rendered %d frames in %s", len(frames), time.Since(start))

	if PNG {
		paths, err := SavePNGSequence(frames, cfg.Snapshot.PNGPrefix)
		if err != nil {
			return fmt.Errorf("write png sequence: %w", err)
		}
		fmt.Printf("Saved %d PNG frames with prefix: %s\n", len(paths), cfg.Snapshot.PNGPrefix)
		return nil
	}
	if err := SaveAnimatedGIF(frames, cfg.Snapshot.GIFOut, cfg.Snapshot.GIFDelay); err != nil {
		return fmt.Errorf("write gif: %w", err)
	}
	fmt.Println("Saved animated GIF:", cfg.Snapshot.GIFOut)
	return nil
}
