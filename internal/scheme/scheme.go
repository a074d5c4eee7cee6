// Package scheme expands one accent color into the full set of named
// tonal roles consumed by downstream renderers.
package scheme

import "github.com/AvengeMedia/dankwall/internal/hct"

// Scheme is the complete role mapping for one (accent, mode, variant)
// combination. Every field is a "#RRGGBB" string and is always
// populated; renderers treat a missing role as a hard error, so the
// set is closed and typed rather than an open map.
type Scheme struct {
	Primary            string `json:"primary"`
	OnPrimary          string `json:"onPrimary"`
	PrimaryContainer   string `json:"primaryContainer"`
	OnPrimaryContainer string `json:"onPrimaryContainer"`
	InversePrimary     string `json:"inversePrimary"`

	Secondary            string `json:"secondary"`
	OnSecondary          string `json:"onSecondary"`
	SecondaryContainer   string `json:"secondaryContainer"`
	OnSecondaryContainer string `json:"onSecondaryContainer"`

	Tertiary            string `json:"tertiary"`
	OnTertiary          string `json:"onTertiary"`
	TertiaryContainer   string `json:"tertiaryContainer"`
	OnTertiaryContainer string `json:"onTertiaryContainer"`

	Error          string `json:"error"`
	OnError        string `json:"onError"`
	ErrorContainer string `json:"errorContainer"`
	OnErrorContainer string `json:"onErrorContainer"`

	Background              string `json:"background"`
	OnBackground            string `json:"onBackground"`
	Surface                 string `json:"surface"`
	SurfaceDim              string `json:"surfaceDim"`
	SurfaceBright           string `json:"surfaceBright"`
	SurfaceContainerLowest  string `json:"surfaceContainerLowest"`
	SurfaceContainerLow     string `json:"surfaceContainerLow"`
	SurfaceContainer        string `json:"surfaceContainer"`
	SurfaceContainerHigh    string `json:"surfaceContainerHigh"`
	SurfaceContainerHighest string `json:"surfaceContainerHighest"`
	OnSurface               string `json:"onSurface"`
	SurfaceVariant          string `json:"surfaceVariant"`
	OnSurfaceVariant        string `json:"onSurfaceVariant"`
	InverseSurface          string `json:"inverseSurface"`
	InverseOnSurface        string `json:"inverseOnSurface"`
	Outline                 string `json:"outline"`
	OutlineVariant          string `json:"outlineVariant"`
	Shadow                  string `json:"shadow"`
	Scrim                   string `json:"scrim"`
	SurfaceTint             string `json:"surfaceTint"`

	PrimaryFixed            string `json:"primaryFixed"`
	PrimaryFixedDim         string `json:"primaryFixedDim"`
	OnPrimaryFixed          string `json:"onPrimaryFixed"`
	OnPrimaryFixedVariant   string `json:"onPrimaryFixedVariant"`
	SecondaryFixed          string `json:"secondaryFixed"`
	SecondaryFixedDim       string `json:"secondaryFixedDim"`
	OnSecondaryFixed        string `json:"onSecondaryFixed"`
	OnSecondaryFixedVariant string `json:"onSecondaryFixedVariant"`
	TertiaryFixed           string `json:"tertiaryFixed"`
	TertiaryFixedDim        string `json:"tertiaryFixedDim"`
	OnTertiaryFixed         string `json:"onTertiaryFixed"`
	OnTertiaryFixedVariant  string `json:"onTertiaryFixedVariant"`

	PrimaryKeyColor        string `json:"primary_paletteKeyColor"`
	SecondaryKeyColor      string `json:"secondary_paletteKeyColor"`
	TertiaryKeyColor       string `json:"tertiary_paletteKeyColor"`
	NeutralKeyColor        string `json:"neutral_paletteKeyColor"`
	NeutralVariantKeyColor string `json:"neutral_variant_paletteKeyColor"`

	// Extended roles with fixed values, independent of the accent.
	Success            string `json:"success"`
	OnSuccess          string `json:"onSuccess"`
	SuccessContainer   string `json:"successContainer"`
	OnSuccessContainer string `json:"onSuccessContainer"`
}

// Generate produces the Scheme for an accent. The mapping is a pure
// function of its arguments: the same accent, mode, and variant
// always yield the same roles.
func Generate(accent hct.Hct, dark bool, v Variant) Scheme {
	primary, secondary, tertiary, neutral, neutralVariant := v.corePalettes(accent)
	errPalette := TonalPalette{Hue: 25, Chroma: 84}

	pick := func(p TonalPalette, darkTone, lightTone float64) string {
		if dark {
			return p.Tone(darkTone).Hex()
		}
		return p.Tone(lightTone).Hex()
	}

	s := Scheme{
		Primary:            pick(primary, 80, 40),
		OnPrimary:          pick(primary, 20, 100),
		PrimaryContainer:   pick(primary, 30, 90),
		OnPrimaryContainer: pick(primary, 90, 10),
		InversePrimary:     pick(primary, 40, 80),

		Secondary:            pick(secondary, 80, 40),
		OnSecondary:          pick(secondary, 20, 100),
		SecondaryContainer:   pick(secondary, 30, 90),
		OnSecondaryContainer: pick(secondary, 90, 10),

		Tertiary:            pick(tertiary, 80, 40),
		OnTertiary:          pick(tertiary, 20, 100),
		TertiaryContainer:   pick(tertiary, 30, 90),
		OnTertiaryContainer: pick(tertiary, 90, 10),

		Error:            pick(errPalette, 80, 40),
		OnError:          pick(errPalette, 20, 100),
		ErrorContainer:   pick(errPalette, 30, 90),
		OnErrorContainer: pick(errPalette, 90, 10),

		Background:              pick(neutral, 6, 98),
		OnBackground:            pick(neutral, 90, 10),
		Surface:                 pick(neutral, 6, 98),
		SurfaceDim:              pick(neutral, 6, 87),
		SurfaceBright:           pick(neutral, 24, 98),
		SurfaceContainerLowest:  pick(neutral, 4, 100),
		SurfaceContainerLow:     pick(neutral, 10, 96),
		SurfaceContainer:        pick(neutral, 12, 94),
		SurfaceContainerHigh:    pick(neutral, 17, 92),
		SurfaceContainerHighest: pick(neutral, 22, 90),
		OnSurface:               pick(neutral, 90, 10),
		SurfaceVariant:          pick(neutralVariant, 30, 90),
		OnSurfaceVariant:        pick(neutralVariant, 80, 30),
		InverseSurface:          pick(neutral, 90, 20),
		InverseOnSurface:        pick(neutral, 20, 95),
		Outline:                 pick(neutralVariant, 60, 50),
		OutlineVariant:          pick(neutralVariant, 30, 80),
		Shadow:                  pick(neutral, 0, 0),
		Scrim:                   pick(neutral, 0, 0),
		SurfaceTint:             pick(primary, 80, 40),

		PrimaryFixed:            primary.Tone(90).Hex(),
		PrimaryFixedDim:         primary.Tone(80).Hex(),
		OnPrimaryFixed:          primary.Tone(10).Hex(),
		OnPrimaryFixedVariant:   primary.Tone(30).Hex(),
		SecondaryFixed:          secondary.Tone(90).Hex(),
		SecondaryFixedDim:       secondary.Tone(80).Hex(),
		OnSecondaryFixed:        secondary.Tone(10).Hex(),
		OnSecondaryFixedVariant: secondary.Tone(30).Hex(),
		TertiaryFixed:           tertiary.Tone(90).Hex(),
		TertiaryFixedDim:        tertiary.Tone(80).Hex(),
		OnTertiaryFixed:         tertiary.Tone(10).Hex(),
		OnTertiaryFixedVariant:  tertiary.Tone(30).Hex(),

		PrimaryKeyColor:        primary.KeyColor().Hex(),
		SecondaryKeyColor:      secondary.KeyColor().Hex(),
		TertiaryKeyColor:       tertiary.KeyColor().Hex(),
		NeutralKeyColor:        neutral.KeyColor().Hex(),
		NeutralVariantKeyColor: neutralVariant.KeyColor().Hex(),
	}

	if dark {
		s.Success = "#B5CCBA"
		s.OnSuccess = "#213528"
		s.SuccessContainer = "#374B3E"
		s.OnSuccessContainer = "#D1E9D6"
	} else {
		s.Success = "#4F6354"
		s.OnSuccess = "#FFFFFF"
		s.SuccessContainer = "#D1E8D5"
		s.OnSuccessContainer = "#0C1F13"
	}
	return s
}

// roleOrder fixes the iteration order for Map, Roles, and serialized
// output.
var roleOrder = []string{
	"primary", "onPrimary", "primaryContainer", "onPrimaryContainer", "inversePrimary",
	"secondary", "onSecondary", "secondaryContainer", "onSecondaryContainer",
	"tertiary", "onTertiary", "tertiaryContainer", "onTertiaryContainer",
	"error", "onError", "errorContainer", "onErrorContainer",
	"background", "onBackground", "surface", "surfaceDim", "surfaceBright",
	"surfaceContainerLowest", "surfaceContainerLow", "surfaceContainer",
	"surfaceContainerHigh", "surfaceContainerHighest",
	"onSurface", "surfaceVariant", "onSurfaceVariant",
	"inverseSurface", "inverseOnSurface",
	"outline", "outlineVariant", "shadow", "scrim", "surfaceTint",
	"primaryFixed", "primaryFixedDim", "onPrimaryFixed", "onPrimaryFixedVariant",
	"secondaryFixed", "secondaryFixedDim", "onSecondaryFixed", "onSecondaryFixedVariant",
	"tertiaryFixed", "tertiaryFixedDim", "onTertiaryFixed", "onTertiaryFixedVariant",
	"primary_paletteKeyColor", "secondary_paletteKeyColor", "tertiary_paletteKeyColor",
	"neutral_paletteKeyColor", "neutral_variant_paletteKeyColor",
	"success", "onSuccess", "successContainer", "onSuccessContainer",
}

// RoleNames returns every role name in output order.
func RoleNames() []string {
	out := make([]string, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// Map returns the role-name view of the scheme.
func (s Scheme) Map() map[string]string {
	return map[string]string{
		"primary": s.Primary, "onPrimary": s.OnPrimary,
		"primaryContainer": s.PrimaryContainer, "onPrimaryContainer": s.OnPrimaryContainer,
		"inversePrimary": s.InversePrimary,
		"secondary":      s.Secondary, "onSecondary": s.OnSecondary,
		"secondaryContainer": s.SecondaryContainer, "onSecondaryContainer": s.OnSecondaryContainer,
		"tertiary": s.Tertiary, "onTertiary": s.OnTertiary,
		"tertiaryContainer": s.TertiaryContainer, "onTertiaryContainer": s.OnTertiaryContainer,
		"error": s.Error, "onError": s.OnError,
		"errorContainer": s.ErrorContainer, "onErrorContainer": s.OnErrorContainer,
		"background": s.Background, "onBackground": s.OnBackground,
		"surface": s.Surface, "surfaceDim": s.SurfaceDim, "surfaceBright": s.SurfaceBright,
		"surfaceContainerLowest": s.SurfaceContainerLowest, "surfaceContainerLow": s.SurfaceContainerLow,
		"surfaceContainer": s.SurfaceContainer, "surfaceContainerHigh": s.SurfaceContainerHigh,
		"surfaceContainerHighest": s.SurfaceContainerHighest,
		"onSurface":               s.OnSurface, "surfaceVariant": s.SurfaceVariant,
		"onSurfaceVariant": s.OnSurfaceVariant,
		"inverseSurface":   s.InverseSurface, "inverseOnSurface": s.InverseOnSurface,
		"outline": s.Outline, "outlineVariant": s.OutlineVariant,
		"shadow": s.Shadow, "scrim": s.Scrim, "surfaceTint": s.SurfaceTint,
		"primaryFixed": s.PrimaryFixed, "primaryFixedDim": s.PrimaryFixedDim,
		"onPrimaryFixed": s.OnPrimaryFixed, "onPrimaryFixedVariant": s.OnPrimaryFixedVariant,
		"secondaryFixed": s.SecondaryFixed, "secondaryFixedDim": s.SecondaryFixedDim,
		"onSecondaryFixed": s.OnSecondaryFixed, "onSecondaryFixedVariant": s.OnSecondaryFixedVariant,
		"tertiaryFixed": s.TertiaryFixed, "tertiaryFixedDim": s.TertiaryFixedDim,
		"onTertiaryFixed": s.OnTertiaryFixed, "onTertiaryFixedVariant": s.OnTertiaryFixedVariant,
		"primary_paletteKeyColor":   s.PrimaryKeyColor,
		"secondary_paletteKeyColor": s.SecondaryKeyColor,
		"tertiary_paletteKeyColor":  s.TertiaryKeyColor,
		"neutral_paletteKeyColor":   s.NeutralKeyColor,
		"neutral_variant_paletteKeyColor": s.NeutralVariantKeyColor,
		"success": s.Success, "onSuccess": s.OnSuccess,
		"successContainer": s.SuccessContainer, "onSuccessContainer": s.OnSuccessContainer,
	}
}
