package tinytracer

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// clamp01 clamps a linear color channel to the displayable [0,1] range.
func clamp01(x Real) Real {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// toByte maps a linear channel to one output byte: clamp, scale, truncate.
func toByte(x Real) byte { return byte(clamp01(x) * 255) }
