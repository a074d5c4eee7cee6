package scheme

import (
	"math"
	"strings"

	"github.com/AvengeMedia/dankwall/internal/hct"
)

// Variant selects how the accent color expands into tonal palettes.
// The set is closed; selection is a switch, never a dynamic lookup.
type Variant int

const (
	VariantTonalSpot Variant = iota
	VariantVibrant
	VariantExpressive
	VariantNeutral
	VariantMonochrome
	VariantFidelity
	VariantContent
	VariantRainbow
	VariantFruitSalad
)

var variantNames = map[Variant]string{
	VariantTonalSpot:  "tonal-spot",
	VariantVibrant:    "vibrant",
	VariantExpressive: "expressive",
	VariantNeutral:    "neutral",
	VariantMonochrome: "monochrome",
	VariantFidelity:   "fidelity",
	VariantContent:    "content",
	VariantRainbow:    "rainbow",
	VariantFruitSalad: "fruit-salad",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "tonal-spot"
}

// ParseVariant maps a selector name to a Variant. Both bare names and
// the "scheme-" prefixed spelling are accepted; anything unrecognized
// falls back to tonal-spot.
func ParseVariant(name string) Variant {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "scheme-")
	for v, n := range variantNames {
		if n == name {
			return v
		}
	}
	return VariantTonalSpot
}

// corePalettes expands the accent into the five scheme palettes.
func (v Variant) corePalettes(accent hct.Hct) (primary, secondary, tertiary, neutral, neutralVariant TonalPalette) {
	h := accent.Hue
	c := accent.Chroma

	switch v {
	case VariantVibrant:
		hues := []float64{0, 41, 61, 101, 131, 181, 251, 301, 360}
		primary = TonalPalette{h, 200}
		secondary = TonalPalette{rotatedHue(h, hues, []float64{18, 15, 10, 12, 15, 18, 15, 12, 12}), 24}
		tertiary = TonalPalette{rotatedHue(h, hues, []float64{35, 30, 20, 15, 20, 25, 25, 25, 25}), 32}
		neutral = TonalPalette{h, 10}
		neutralVariant = TonalPalette{h, 12}
	case VariantExpressive:
		hues := []float64{0, 21, 51, 121, 151, 191, 271, 321, 360}
		primary = TonalPalette{hct.SanitizeDegrees(h + 240), 40}
		secondary = TonalPalette{rotatedHue(h, hues, []float64{45, 95, 45, 20, 45, 90, 45, 45, 45}), 24}
		tertiary = TonalPalette{rotatedHue(h, hues, []float64{120, 120, 20, 45, 20, 15, 75, 12, 45}), 32}
		neutral = TonalPalette{hct.SanitizeDegrees(h + 15), 8}
		neutralVariant = TonalPalette{hct.SanitizeDegrees(h + 15), 12}
	case VariantNeutral:
		primary = TonalPalette{h, 12}
		secondary = TonalPalette{h, 8}
		tertiary = TonalPalette{h, 16}
		neutral = TonalPalette{h, 2}
		neutralVariant = TonalPalette{h, 2}
	case VariantMonochrome:
		primary = TonalPalette{h, 0}
		secondary = TonalPalette{h, 0}
		tertiary = TonalPalette{h, 0}
		neutral = TonalPalette{h, 0}
		neutralVariant = TonalPalette{h, 0}
	case VariantFidelity:
		primary = TonalPalette{h, c}
		secondary = TonalPalette{h, math.Max(c-32.0, c*0.5)}
		tertiary = TonalPalette{hct.SanitizeDegrees(h + 60), c}
		neutral = TonalPalette{h, c / 8.0}
		neutralVariant = TonalPalette{h, c/8.0 + 4.0}
	case VariantContent:
		primary = TonalPalette{h, c}
		secondary = TonalPalette{h, c * 0.5}
		tertiary = TonalPalette{hct.SanitizeDegrees(h + 60), c * 0.5}
		neutral = TonalPalette{h, c / 8.0}
		neutralVariant = TonalPalette{h, c/8.0 + 4.0}
	case VariantRainbow:
		primary = TonalPalette{h, 48}
		secondary = TonalPalette{h, 16}
		tertiary = TonalPalette{hct.SanitizeDegrees(h + 60), 24}
		neutral = TonalPalette{h, 0}
		neutralVariant = TonalPalette{h, 0}
	case VariantFruitSalad:
		primary = TonalPalette{hct.SanitizeDegrees(h - 50), 48}
		secondary = TonalPalette{hct.SanitizeDegrees(h - 50), 36}
		tertiary = TonalPalette{h, 36}
		neutral = TonalPalette{h, 10}
		neutralVariant = TonalPalette{h, 16}
	default: // tonal-spot
		primary = TonalPalette{h, 36}
		secondary = TonalPalette{h, 16}
		tertiary = TonalPalette{hct.SanitizeDegrees(h + 60), 24}
		neutral = TonalPalette{h, 6}
		neutralVariant = TonalPalette{h, 8}
	}
	return primary, secondary, tertiary, neutral, neutralVariant
}

// rotatedHue shifts a source hue by the rotation assigned to the band
// it falls in. Band edges are ascending and span 0..360.
func rotatedHue(sourceHue float64, hues, rotations []float64) float64 {
	if len(rotations) == 1 {
		return hct.SanitizeDegrees(sourceHue + rotations[0])
	}
	for i := 0; i <= len(hues)-2; i++ {
		if hues[i] <= sourceHue && sourceHue < hues[i+1] {
			return hct.SanitizeDegrees(sourceHue + rotations[i])
		}
	}
	return sourceHue
}
