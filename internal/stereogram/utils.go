package stereogram

import "math"

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(x Real) Real { return clamp(x, 0, 1) }

// roundTo snaps x to the nearest multiple of step so repeated +/- steps do not drift.
func roundTo(x, step Real) Real { return math.Round(x/step) * step }

// wrapAngle maps a into [0, 2π).
func wrapAngle(a Real) Real {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
