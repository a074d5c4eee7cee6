package scheme

import (
	"reflect"
	"testing"

	"github.com/AvengeMedia/dankwall/internal/hct"
)

func mustHct(t *testing.T, hex string) hct.Hct {
	t.Helper()
	h, err := hct.ParseHexHct(hex)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input    string
		expected Variant
	}{
		{input: "vibrant", expected: VariantVibrant},
		{input: "scheme-vibrant", expected: VariantVibrant},
		{input: "Expressive", expected: VariantExpressive},
		{input: "tonal-spot", expected: VariantTonalSpot},
		{input: "fruit-salad", expected: VariantFruitSalad},
		{input: "monochrome", expected: VariantMonochrome},
		{input: "neutral", expected: VariantNeutral},
		{input: "fidelity", expected: VariantFidelity},
		{input: "content", expected: VariantContent},
		{input: "rainbow", expected: VariantRainbow},
		{input: "", expected: VariantTonalSpot},
		{input: "no-such-scheme", expected: VariantTonalSpot},
	}
	for _, tt := range tests {
		if got := ParseVariant(tt.input); got != tt.expected {
			t.Errorf("ParseVariant(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestGenerateComplete(t *testing.T) {
	accent := mustHct(t, "#3366CC")
	variants := []Variant{
		VariantTonalSpot, VariantVibrant, VariantExpressive, VariantNeutral,
		VariantMonochrome, VariantFidelity, VariantContent, VariantRainbow,
		VariantFruitSalad, ParseVariant("bogus"),
	}
	for _, v := range variants {
		for _, dark := range []bool{true, false} {
			s := Generate(accent, dark, v)
			m := s.Map()
			for _, role := range RoleNames() {
				val, ok := m[role]
				if !ok {
					t.Fatalf("variant %v: role %s missing from Map", v, role)
				}
				if _, err := hct.ParseHex(val); err != nil {
					t.Errorf("variant %v: role %s = %q is not valid hex", v, role, val)
				}
			}
			if len(m) != len(RoleNames()) {
				t.Errorf("variant %v: Map has %d roles, expected %d", v, len(m), len(RoleNames()))
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	accent := mustHct(t, "#625690")
	a := Generate(accent, true, VariantVibrant)
	b := Generate(accent, true, VariantVibrant)
	if !reflect.DeepEqual(a, b) {
		t.Error("Generate is not deterministic for identical input")
	}
}

func TestMonochromeIsGray(t *testing.T) {
	s := Generate(mustHct(t, "#CC3366"), true, VariantMonochrome)
	for role, val := range s.Map() {
		switch role {
		case "success", "onSuccess", "successContainer", "onSuccessContainer",
			"error", "onError", "errorContainer", "onErrorContainer":
			// Fixed-value and error roles keep their chroma.
			continue
		}
		h := mustHct(t, val)
		if h.Chroma > 4.0 {
			t.Errorf("monochrome role %s = %s has chroma %.2f", role, val, h.Chroma)
		}
	}
}

func TestDarkAndLightPolarity(t *testing.T) {
	accent := mustHct(t, "#3366CC")
	dark := Generate(accent, true, VariantTonalSpot)
	light := Generate(accent, false, VariantTonalSpot)

	if ds, ls := mustHct(t, dark.Surface), mustHct(t, light.Surface); ds.Tone >= ls.Tone {
		t.Errorf("surface tones inverted: dark %.1f vs light %.1f", ds.Tone, ls.Tone)
	}
	if d := mustHct(t, dark.OnSurface); d.Tone < 60 {
		t.Errorf("dark onSurface tone = %.1f, expected light text", d.Tone)
	}
	if l := mustHct(t, light.OnSurface); l.Tone > 40 {
		t.Errorf("light onSurface tone = %.1f, expected dark text", l.Tone)
	}
}

func TestSuccessRolesFixed(t *testing.T) {
	accent := mustHct(t, "#00FF00")
	dark := Generate(accent, true, VariantVibrant)
	if dark.Success != "#B5CCBA" || dark.OnSuccess != "#213528" ||
		dark.SuccessContainer != "#374B3E" || dark.OnSuccessContainer != "#D1E9D6" {
		t.Error("dark success roles drifted from their fixed values")
	}
	light := Generate(accent, false, VariantVibrant)
	if light.Success != "#4F6354" || light.OnSuccess != "#FFFFFF" ||
		light.SuccessContainer != "#D1E8D5" || light.OnSuccessContainer != "#0C1F13" {
		t.Error("light success roles drifted from their fixed values")
	}
}

func TestTonalSpotPrimaryTracksAccentHue(t *testing.T) {
	accent := mustHct(t, "#3366CC")
	s := Generate(accent, true, VariantTonalSpot)
	p := mustHct(t, s.Primary)
	if hct.DifferenceDegrees(p.Hue, accent.Hue) > 12.0 {
		t.Errorf("primary hue %.1f strays from accent hue %.1f", p.Hue, accent.Hue)
	}
	if p.Tone < 70 || p.Tone > 90 {
		t.Errorf("dark primary tone = %.1f, expected near 80", p.Tone)
	}
}

func TestKeyColorExpressesChroma(t *testing.T) {
	p := TonalPalette{Hue: 250, Chroma: 36}
	key := p.KeyColor()
	if key.Chroma < 30 {
		t.Errorf("key color chroma = %.1f, expected close to request 36", key.Chroma)
	}
	if hct.DifferenceDegrees(key.Hue, 250) > 4.0 {
		t.Errorf("key color hue = %.1f, expected near 250", key.Hue)
	}
}
