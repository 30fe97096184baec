package stereogram

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// SavePNGSequence writes one lossless PNG per frame as <prefix>_<k>.png,
// zero-padded so the files sort in frame order. It returns the written paths.
func SavePNGSequence(frames []image.Image, prefix string) ([]string, error) {
	n := len(frames)
	// Zero-padding width based on number of frames.
	width := 1
	if n > 1 {
		width = int(math.Log10(float64(n-1))) + 1
	}
	if err := os.MkdirAll(filepath.Dir(prefix), 0o755); err != nil {
		return nil, err
	}

	// Progress print step (~1%).
	step := 1
	if n >= 100 {
		step = n / 100
	}

	paths := make([]string, 0, n)
	for k, img := range frames {
		if k%step == 0 {
			DebugLog("[PNG]  %.2f%%", float64(k+1)*100/float64(n))
		}
		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		f, err := os.Create(full)
		if err != nil {
			return paths, err
		}
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(f, img); err != nil {
			f.Close()
			return paths, err
		}
		if err := f.Close(); err != nil {
			return paths, err
		}
		paths = append(paths, full)
	}
	return paths, nil
}
