package hct

import (
	"fmt"
	"math"
)

// ARGB is a packed 32-bit color, 0xAARRGGBB. The alpha byte is always
// 0xFF for colors produced by this package.
type ARGB uint32

func ARGBFromRGB(r, g, b uint8) ARGB {
	return 0xFF000000 | ARGB(r)<<16 | ARGB(g)<<8 | ARGB(b)
}

func (c ARGB) Red() uint8   { return uint8(c >> 16) }
func (c ARGB) Green() uint8 { return uint8(c >> 8) }
func (c ARGB) Blue() uint8  { return uint8(c) }

// FormatError reports a malformed hex color string.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex color %q: %s", e.Input, e.Reason)
}

// ParseHex parses a 6-digit hex color, with or without a leading '#'.
func ParseHex(s string) (ARGB, error) {
	raw := s
	if len(raw) > 0 && raw[0] == '#' {
		raw = raw[1:]
	}
	if len(raw) != 6 {
		return 0, &FormatError{Input: s, Reason: "expected 6 hex digits"}
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(raw[i*2])
		lo, ok2 := hexDigit(raw[i*2+1])
		if !ok1 || !ok2 {
			return 0, &FormatError{Input: s, Reason: "non-hex character"}
		}
		rgb[i] = hi<<4 | lo
	}
	return ARGBFromRGB(rgb[0], rgb[1], rgb[2]), nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// FormatHex renders c as an uppercase "#RRGGBB" string.
func FormatHex(c ARGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red(), c.Green(), c.Blue())
}

// linearized converts an 8-bit sRGB channel to linear light on a
// 0..100 scale.
func linearized(component uint8) float64 {
	n := float64(component) / 255.0
	if n <= 0.040449936 {
		return n / 12.92 * 100.0
	}
	return math.Pow((n+0.055)/1.055, 2.4) * 100.0
}

// delinearized converts linear light (0..100) back to an 8-bit sRGB
// channel, clamping out-of-range input.
func delinearized(lin float64) uint8 {
	n := lin / 100.0
	var d float64
	if n <= 0.0031308 {
		d = n * 12.92
	} else {
		d = 1.055*math.Pow(n, 1.0/2.4) - 0.055
	}
	v := math.Round(d * 255.0)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func xyzY(c ARGB) float64 {
	return 0.2126*linearized(c.Red()) +
		0.7152*linearized(c.Green()) +
		0.0722*linearized(c.Blue())
}

const (
	labE     = 216.0 / 24389.0
	labKappa = 24389.0 / 27.0
)

// lstarFromY converts relative luminance (0..100) to L* (0..100).
func lstarFromY(y float64) float64 {
	yn := y / 100.0
	if yn <= labE {
		return yn * labKappa
	}
	return 116.0*math.Cbrt(yn) - 16.0
}

// yFromLstar is the exact inverse of lstarFromY.
func yFromLstar(lstar float64) float64 {
	if lstar <= 8.0 {
		return lstar / labKappa * 100.0
	}
	f := (lstar + 16.0) / 116.0
	return f * f * f * 100.0
}
