package theme

import (
	"fmt"
	"math"

	"github.com/AvengeMedia/dankwall/internal/hct"
	"github.com/AvengeMedia/dankwall/internal/log"
	"github.com/AvengeMedia/dankwall/internal/scheme"
)

// HarmonizeOptions tunes how hard the source palette is pulled toward
// the accent.
type HarmonizeOptions struct {
	Dark    bool
	Variant scheme.Variant

	// Harmony is the pull strength in [0,1]. 1 is clamped internally
	// so slot hues never fully collapse onto the accent.
	Harmony float64

	// Threshold caps the hue rotation of any single slot, in degrees.
	Threshold float64

	// FgBoost widens the tone gap of the foreground slots (term7,
	// term15) against the background, as a fraction of their tone.
	FgBoost float64

	// BlendBgFg additionally ties term0 and term15 to the scheme
	// surface colors instead of synthesizing them purely from the
	// accent. OnSurface must be set when this is enabled.
	BlendBgFg bool
	OnSurface string
}

// slotStyle fixes the chroma ceiling and tone target for a slot family.
// Foreground and background slots are not in this table; they are
// synthesized rather than rotated.
type slotStyle struct {
	chroma    float64
	darkTone  float64
	lightTone float64
}

var slotStyles = map[int]slotStyle{
	1: {90, 65, 50}, 9: {90, 65, 50}, // red
	2: {95, 70, 45}, 10: {95, 70, 45}, // green
	3: {90, 75, 55}, 11: {90, 75, 55}, // yellow
	4: {95, 70, 50}, 12: {95, 70, 50}, // blue
	5: {92, 68, 48}, 13: {92, 68, 48}, // magenta
	6: {95, 72, 52}, 14: {95, 72, 52}, // cyan
	7: {20, 85, 30}, 15: {30, 90, 25}, // foreground
}

// Harmonize pulls each slot of the source palette toward the accent
// hue while repainting chroma and tone per slot family. Monochrome
// variants pass the source palette through untouched.
func Harmonize(src TermPalette, accent hct.Hct, opts HarmonizeOptions) (TermPalette, error) {
	if opts.Variant == scheme.VariantMonochrome {
		return src, nil
	}

	eff := math.Min(opts.Harmony*1.3, 0.95)
	if eff < 0 {
		eff = 0
	}
	log.Debugf("harmonizing toward hue %.1f (strength %.2f, cap %.0f deg)", accent.Hue, eff, opts.Threshold)

	var out TermPalette
	for i, hex := range src {
		c, err := hct.ParseHexHct(hex)
		if err != nil {
			return out, fmt.Errorf("source slot %s: %w", SlotName(i), err)
		}

		switch {
		case i == 0:
			out[i] = background(accent, opts).Hex()
		case i == 8:
			out[i] = brightBlack(accent, opts).Hex()
		case i == 15 && opts.BlendBgFg:
			fg, err := blendedForeground(opts)
			if err != nil {
				return out, err
			}
			out[i] = fg.Hex()
		default:
			out[i] = rotateSlot(i, c, accent, eff, opts).Hex()
		}
	}
	return out, nil
}

// rotateSlot moves a slot hue toward the accent by the shortest arc,
// scaled by the harmony strength and capped by the threshold, then
// clamps the result into a 60 degree cohesion band around the accent.
func rotateSlot(i int, c, accent hct.Hct, eff float64, opts HarmonizeOptions) hct.Hct {
	delta := hct.DifferenceDegrees(c.Hue, accent.Hue)
	rotation := math.Min(delta*eff, opts.Threshold)
	hue := hct.SanitizeDegrees(c.Hue + rotation*hct.RotationDirection(c.Hue, accent.Hue))

	if d := hct.DifferenceDegrees(hue, accent.Hue); d > 60 {
		hue = hct.SanitizeDegrees(accent.Hue + 60*hct.RotationDirection(accent.Hue, hue))
	}

	style, ok := slotStyles[i]
	if !ok {
		return hct.From(hue, c.Chroma, c.Tone)
	}
	// Chroma is forced per family so washed-out sources still come
	// out vibrant; the gamut solver trims what a hue cannot carry.
	chroma := style.chroma
	tone := style.darkTone
	if !opts.Dark {
		tone = style.lightTone
	}
	if i == 7 || i == 15 {
		if opts.Dark {
			tone *= 1 + opts.FgBoost
		} else {
			tone *= 1 - opts.FgBoost
		}
		tone = math.Min(math.Max(tone, 0), 100)
	}
	return hct.From(hue, chroma, tone)
}

// background synthesizes term0 from the accent so the whole palette
// shares one hue family. Blend mode lifts it slightly and saturates it
// so it reads as a tinted surface rather than plain black or white.
func background(accent hct.Hct, opts HarmonizeOptions) hct.Hct {
	chroma := math.Min(accent.Chroma*0.6, 25)
	if opts.Dark {
		if opts.BlendBgFg {
			base := hct.From(accent.Hue, chroma, 8)
			return hct.From(base.Hue, base.Chroma*1.2, base.Tone*0.95)
		}
		return hct.From(accent.Hue, chroma, 6)
	}
	if opts.BlendBgFg {
		return hct.From(accent.Hue, chroma, 94)
	}
	return hct.From(accent.Hue, chroma, 96)
}

// brightBlack synthesizes term8 a step above (or below) the background
// so dimmed text stays separated from it.
func brightBlack(accent hct.Hct, opts HarmonizeOptions) hct.Hct {
	chroma := math.Min(accent.Chroma*0.5, 20)
	tone := 15.0
	if !opts.Dark {
		tone = 85.0
	}
	return hct.From(accent.Hue, chroma, tone)
}

// blendedForeground derives term15 from the scheme onSurface color,
// tripling its chroma so the accent tint survives at text size.
func blendedForeground(opts HarmonizeOptions) (hct.Hct, error) {
	on, err := hct.ParseHexHct(opts.OnSurface)
	if err != nil {
		return hct.Hct{}, fmt.Errorf("onSurface color: %w", err)
	}
	return hct.From(on.Hue, on.Chroma*3, on.Tone), nil
}
