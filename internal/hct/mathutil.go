package hct

import "math"

// SanitizeDegrees wraps an angle into [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// DifferenceDegrees returns the distance between two angles along the
// shorter arc, in [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180.0 - math.Abs(math.Abs(a-b)-180.0)
}

// RotationDirection returns the sign (+1 clockwise, -1 counter-
// clockwise) of the shorter rotation from one hue to another. Exact
// 180-degree ties resolve clockwise, which keeps the direction stable
// for degenerate zero-chroma hues.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180.0 {
		return 1.0
	}
	return -1.0
}

func signum(v float64) float64 {
	if v < 0 {
		return -1.0
	}
	if v > 0 {
		return 1.0
	}
	return 0.0
}

func lerp(start, stop, amount float64) float64 {
	return start + (stop-start)*amount
}
