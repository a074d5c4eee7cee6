// Package hct converts between packed sRGB colors and the HCT color
// space (CAM16 hue and chroma, L* tone). See
// https://material.io/blog/science-of-color-design for background.
package hct

import "math"

// Hct is an immutable hue/chroma/tone triple. Hue is in [0, 360),
// chroma is non-negative and bounded by a hue- and tone-dependent
// maximum, tone is L* in [0, 100]. Derived colors are always new
// values; an Hct is never mutated.
type Hct struct {
	Hue    float64
	Chroma float64
	Tone   float64

	argb ARGB
}

// FromARGB measures the HCT coordinates of a packed color. ToARGB on
// the result returns the original color exactly.
func FromARGB(argb ARGB) Hct {
	hue, chroma, _ := cam16FromARGB(argb)
	return Hct{
		Hue:    hue,
		Chroma: chroma,
		Tone:   lstarFromY(xyzY(argb)),
		argb:   argb,
	}
}

// From solves for the sRGB color nearest the requested coordinates.
// Chroma is reduced when the request is outside the sRGB gamut for
// that hue and tone; hue and tone are preserved. The returned value
// carries the measured coordinates of the solved color.
func From(hue, chroma, tone float64) Hct {
	return FromARGB(solveToARGB(hue, chroma, tone))
}

// ParseHexHct parses a hex string directly into HCT.
func ParseHexHct(s string) (Hct, error) {
	argb, err := ParseHex(s)
	if err != nil {
		return Hct{}, err
	}
	return FromARGB(argb), nil
}

// ToARGB returns the packed color this value was constructed from.
func (h Hct) ToARGB() ARGB {
	return h.argb
}

// Hex renders the color as "#RRGGBB".
func (h Hct) Hex() string {
	return FormatHex(h.argb)
}

// solveToARGB finds an sRGB color with the given hue and tone and the
// largest representable chroma not exceeding the request.
func solveToARGB(hue, chroma, tone float64) ARGB {
	hue = SanitizeDegrees(hue)
	tone = math.Max(0.0, math.Min(100.0, tone))
	if chroma < 1e-4 || tone < 1e-4 || tone > 100.0-1e-4 {
		gray := delinearized(yFromLstar(tone))
		return ARGBFromRGB(gray, gray, gray)
	}

	y := yFromLstar(tone)
	if rgb, ok := findByChroma(hue, chroma, y); ok {
		return argbFromLinear(rgb)
	}

	// Requested chroma is out of gamut: binary-search the largest
	// chroma that still resolves.
	gray := delinearized(yFromLstar(tone))
	best := [3]float64{linearized(gray), linearized(gray), linearized(gray)}
	lo, hi := 0.0, chroma
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2.0
		if rgb, ok := findByChroma(hue, mid, y); ok {
			best = rgb
			lo = mid
		} else {
			hi = mid
		}
	}
	return argbFromLinear(best)
}

// findByChroma bisects CAM16 lightness J until the modeled luminance
// matches y, then reports whether the result is inside sRGB.
func findByChroma(hue, chroma, y float64) ([3]float64, bool) {
	jLo, jHi := 0.0, 100.0
	var rgb [3]float64
	for i := 0; i < 40; i++ {
		j := (jLo + jHi) / 2.0
		rgb = cam16ToLinearRGB(j, chroma, hue)
		yy := 0.2126*rgb[0] + 0.7152*rgb[1] + 0.0722*rgb[2]
		if yy < y {
			jLo = j
		} else {
			jHi = j
		}
	}
	const eps = 0.01
	for i := 0; i < 3; i++ {
		if rgb[i] < -eps || rgb[i] > 100.0+eps {
			return rgb, false
		}
		rgb[i] = math.Max(0.0, math.Min(100.0, rgb[i]))
	}
	return rgb, true
}

func argbFromLinear(rgb [3]float64) ARGB {
	return ARGBFromRGB(delinearized(rgb[0]), delinearized(rgb[1]), delinearized(rgb[2]))
}
