package hct

import (
	"errors"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ARGB
	}{
		{
			name:     "black with hash",
			input:    "#000000",
			expected: 0xFF000000,
		},
		{
			name:     "white with hash",
			input:    "#FFFFFF",
			expected: 0xFFFFFFFF,
		},
		{
			name:     "red without hash",
			input:    "ff0000",
			expected: 0xFFFF0000,
		},
		{
			name:     "mixed case",
			input:    "#3366Cc",
			expected: 0xFF3366CC,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%s) error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseHex(%s) = %08X, expected %08X", tt.input, uint32(result), uint32(tt.expected))
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too short", input: "#fff"},
		{name: "too long", input: "#ff00ff00"},
		{name: "non-hex characters", input: "#gg0000"},
		{name: "bare hash", input: "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			if err == nil {
				t.Fatalf("ParseHex(%s) expected error, got nil", tt.input)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("ParseHex(%s) error type = %T, expected *FormatError", tt.input, err)
			}
		})
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		input    ARGB
		expected string
	}{
		{input: 0xFF000000, expected: "#000000"},
		{input: 0xFFFFFFFF, expected: "#FFFFFF"},
		{input: 0xFF3366CC, expected: "#3366CC"},
		{input: 0xFF0A0B0C, expected: "#0A0B0C"},
	}

	for _, tt := range tests {
		if got := FormatHex(tt.input); got != tt.expected {
			t.Errorf("FormatHex(%08X) = %s, expected %s", uint32(tt.input), got, tt.expected)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// FromARGB keeps the source color, so the round trip is exact.
	colors := []ARGB{
		0xFF000000, 0xFFFFFFFF, 0xFFFF0000, 0xFF00FF00, 0xFF0000FF,
		0xFF3366CC, 0xFF808080, 0xFF625690, 0xFF1A1A2E, 0xFFF8F8F2,
	}
	for _, argb := range colors {
		if got := FromARGB(argb).ToARGB(); got != argb {
			t.Errorf("FromARGB(%08X).ToARGB() = %08X", uint32(argb), uint32(got))
		}
	}
}

func TestSolverRoundTrip(t *testing.T) {
	// Re-solving a measured color must land within one unit per
	// channel; CAM16 conversion is lossy at the bit level.
	step := 17
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				src := ARGBFromRGB(uint8(r), uint8(g), uint8(b))
				m := FromARGB(src)
				solved := From(m.Hue, m.Chroma, m.Tone).ToARGB()
				if channelDelta(src, solved) > 1 {
					t.Fatalf("solve(%s) = %s, off by more than 1 unit",
						FormatHex(src), FormatHex(solved))
				}
			}
		}
	}
}

func channelDelta(a, b ARGB) int {
	dr := int(a.Red()) - int(b.Red())
	dg := int(a.Green()) - int(b.Green())
	db := int(a.Blue()) - int(b.Blue())
	max := 0
	for _, d := range []int{dr, dg, db} {
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

func TestFromPreservesHueAndTone(t *testing.T) {
	tests := []struct {
		name   string
		hue    float64
		chroma float64
		tone   float64
	}{
		{name: "mid blue", hue: 270, chroma: 40, tone: 50},
		{name: "vivid red", hue: 27, chroma: 80, tone: 60},
		{name: "pastel green", hue: 150, chroma: 20, tone: 80},
		{name: "impossible chroma", hue: 200, chroma: 300, tone: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.hue, tt.chroma, tt.tone)
			if math.Abs(got.Tone-tt.tone) > 1.0 {
				t.Errorf("tone = %.3f, expected %.3f +-1", got.Tone, tt.tone)
			}
			if got.Chroma > tt.chroma+1.0 {
				t.Errorf("chroma = %.3f, exceeds request %.3f", got.Chroma, tt.chroma)
			}
			// Hue is meaningless when the gamut forces chroma to zero.
			if got.Chroma > 3.0 && DifferenceDegrees(got.Hue, tt.hue) > 2.0 {
				t.Errorf("hue = %.3f, expected %.3f +-2", got.Hue, tt.hue)
			}
		})
	}
}

func TestFromZeroChroma(t *testing.T) {
	for _, tone := range []float64{0, 10, 50, 90, 100} {
		got := From(123, 0, tone)
		c := got.ToARGB()
		if c.Red() != c.Green() || c.Green() != c.Blue() {
			t.Errorf("From(_, 0, %.0f) = %s, expected gray", tone, got.Hex())
		}
	}
}

func TestToneExtremes(t *testing.T) {
	if got := From(0, 50, 0).ToARGB(); got != 0xFF000000 {
		t.Errorf("tone 0 = %s, expected #000000", FormatHex(got))
	}
	if got := From(0, 50, 100).ToARGB(); got != 0xFFFFFFFF {
		t.Errorf("tone 100 = %s, expected #FFFFFF", FormatHex(got))
	}
}

func TestSanitizeDegrees(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{input: 0, expected: 0},
		{input: 360, expected: 0},
		{input: 361, expected: 1},
		{input: -1, expected: 359},
		{input: 725, expected: 5},
		{input: -720, expected: 0},
	}
	for _, tt := range tests {
		if got := SanitizeDegrees(tt.input); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("SanitizeDegrees(%.0f) = %.4f, expected %.4f", tt.input, got, tt.expected)
		}
	}
}

func TestDifferenceDegrees(t *testing.T) {
	tests := []struct {
		a, b     float64
		expected float64
	}{
		{a: 0, b: 0, expected: 0},
		{a: 0, b: 90, expected: 90},
		{a: 350, b: 10, expected: 20},
		{a: 10, b: 350, expected: 20},
		{a: 0, b: 180, expected: 180},
		{a: 90, b: 271, expected: 179},
	}
	for _, tt := range tests {
		if got := DifferenceDegrees(tt.a, tt.b); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("DifferenceDegrees(%.0f, %.0f) = %.4f, expected %.4f", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestRotationDirection(t *testing.T) {
	tests := []struct {
		from, to float64
		expected float64
	}{
		{from: 0, to: 90, expected: 1},
		{from: 90, to: 0, expected: -1},
		{from: 350, to: 10, expected: 1},
		{from: 10, to: 350, expected: -1},
		{from: 0, to: 180, expected: 1}, // tie resolves clockwise
		{from: 42, to: 42, expected: 1},
	}
	for _, tt := range tests {
		if got := RotationDirection(tt.from, tt.to); got != tt.expected {
			t.Errorf("RotationDirection(%.0f, %.0f) = %.0f, expected %.0f", tt.from, tt.to, got, tt.expected)
		}
	}
}

func TestGrayHasNearZeroChroma(t *testing.T) {
	for _, hex := range []string{"#808080", "#404040", "#C0C0C0"} {
		h, err := ParseHexHct(hex)
		if err != nil {
			t.Fatal(err)
		}
		if h.Chroma > 3.0 {
			t.Errorf("%s chroma = %.3f, expected near zero", hex, h.Chroma)
		}
	}
}
