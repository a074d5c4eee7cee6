package theme

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/AvengeMedia/dankwall/internal/hct"
)

// TermPalette holds the 16 conventional terminal slots in order:
// background, 8 base colors, bright foreground, 7 bright variants.
type TermPalette [16]string

// SlotName returns the canonical name for slot i ("term0".."term15").
func SlotName(i int) string {
	return fmt.Sprintf("term%d", i)
}

// Map returns the named-slot view of the palette.
func (p TermPalette) Map() map[string]string {
	m := make(map[string]string, 16)
	for i, v := range p {
		m[SlotName(i)] = v
	}
	return m
}

// MarshalJSON emits slots in term0..term15 order.
func (p TermPalette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%q", SlotName(i), v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *TermPalette) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	pal, err := fromSlotMap(m)
	if err != nil {
		return err
	}
	*p = pal
	return nil
}

// Built-in source palettes, used when no palette definition file is
// given. Catppuccin Mocha and Latte, remapped through the same
// named-role table a flat definition file goes through.
var (
	defaultDarkRoles = map[string]string{
		"base": "#1e1e2e", "red": "#f38ba8", "green": "#a6e3a1",
		"yellow": "#f9e2af", "blue": "#89b4fa", "pink": "#f5c2e7",
		"teal": "#94e2d5", "text": "#cdd6f4", "surface2": "#585b70",
		"subtext1": "#bac2de",
	}
	defaultLightRoles = map[string]string{
		"base": "#eff1f5", "red": "#d20f39", "green": "#40a02b",
		"yellow": "#df8e1d", "blue": "#1e66f5", "pink": "#ea76cb",
		"teal": "#179299", "text": "#4c4f69", "surface2": "#acb0be",
		"subtext1": "#5c5f77",
	}
)

// DefaultTermPalette returns the built-in source palette for a mode.
func DefaultTermPalette(dark bool) TermPalette {
	if dark {
		return fromNamedRoles(defaultDarkRoles)
	}
	return fromNamedRoles(defaultLightRoles)
}

// LoadTermPalette reads a palette definition file. Two layouts are
// accepted: {"dark": {"term0": ...}, "light": {...}} with explicit
// slots per mode, or a flat named-role object (catppuccin style)
// which is remapped onto the 16 slots.
func LoadTermPalette(fsys afero.Fs, path string, dark bool) (TermPalette, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return TermPalette{}, fmt.Errorf("reading palette definition: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return TermPalette{}, fmt.Errorf("parsing palette definition %s: %w", path, err)
	}

	_, hasDark := probe["dark"]
	_, hasLight := probe["light"]
	if hasDark || hasLight {
		key := "dark"
		if !dark {
			key = "light"
		}
		raw, ok := probe[key]
		if !ok {
			return TermPalette{}, fmt.Errorf("palette definition %s has no %q variant", path, key)
		}
		var slots map[string]string
		if err := json.Unmarshal(raw, &slots); err != nil {
			return TermPalette{}, fmt.Errorf("parsing %q variant: %w", key, err)
		}
		pal, err := fromSlotMap(slots)
		if err != nil {
			return TermPalette{}, fmt.Errorf("palette definition %s: %w", path, err)
		}
		return pal, nil
	}

	var roles map[string]string
	if err := json.Unmarshal(data, &roles); err != nil {
		return TermPalette{}, fmt.Errorf("parsing palette definition %s: %w", path, err)
	}
	pal := fromNamedRoles(roles)
	if err := pal.validate(); err != nil {
		return TermPalette{}, fmt.Errorf("palette definition %s: %w", path, err)
	}
	return pal, nil
}

// fromSlotMap requires all 16 termN keys with valid hex values.
func fromSlotMap(m map[string]string) (TermPalette, error) {
	var pal TermPalette
	for i := 0; i < 16; i++ {
		v, ok := m[SlotName(i)]
		if !ok {
			return pal, fmt.Errorf("missing slot %s", SlotName(i))
		}
		if _, err := hct.ParseHex(v); err != nil {
			return pal, fmt.Errorf("slot %s: %w", SlotName(i), err)
		}
		pal[i] = v
	}
	return pal, nil
}

// fromNamedRoles remaps a flat catppuccin-style role set onto the 16
// slots. Missing roles fall back to the Mocha defaults so a sparse
// definition still yields a complete palette.
func fromNamedRoles(roles map[string]string) TermPalette {
	get := func(name string) string {
		if v, ok := roles[name]; ok {
			return v
		}
		return defaultDarkRoles[name]
	}
	return TermPalette{
		get("base"),     // term0: background
		get("red"),      // term1
		get("green"),    // term2
		get("yellow"),   // term3
		get("blue"),     // term4
		get("pink"),     // term5: magenta
		get("teal"),     // term6: cyan
		get("text"),     // term7: foreground
		get("surface2"), // term8: bright black
		get("red"),      // term9
		get("green"),    // term10
		get("yellow"),   // term11
		get("blue"),     // term12
		get("pink"),     // term13
		get("teal"),     // term14
		get("subtext1"), // term15: bright foreground
	}
}

func (p TermPalette) validate() error {
	for i, v := range p {
		if _, err := hct.ParseHex(v); err != nil {
			return fmt.Errorf("slot %s: %w", SlotName(i), err)
		}
	}
	return nil
}
