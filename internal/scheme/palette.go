package scheme

import "github.com/AvengeMedia/dankwall/internal/hct"

// TonalPalette is a hue/chroma pair from which colors at any tone are
// drawn. Chroma acts as a request; tones where the gamut is narrower
// come out less chromatic.
type TonalPalette struct {
	Hue    float64
	Chroma float64
}

// Tone returns the palette color at the given tone.
func (p TonalPalette) Tone(tone float64) hct.Hct {
	return hct.From(p.Hue, p.Chroma, tone)
}

// KeyColor is the tone at which the palette best expresses its
// requested chroma, preferring tones near 50. It drives the
// "paletteKeyColor" roles that downstream renderers re-derive from.
func (p TonalPalette) KeyColor() hct.Hct {
	if p.Chroma < 1e-4 {
		return hct.From(p.Hue, 0, 50)
	}
	var best hct.Hct
	bestChroma := -1.0
	for delta := 0.0; delta <= 50.0; delta += 1.0 {
		for _, tone := range []float64{50.0 - delta, 50.0 + delta} {
			c := hct.From(p.Hue, p.Chroma, tone)
			if c.Chroma >= p.Chroma-0.01 {
				return c
			}
			if c.Chroma > bestChroma {
				best, bestChroma = c, c.Chroma
			}
			if delta == 0 {
				break
			}
		}
	}
	return best
}
