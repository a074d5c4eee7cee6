package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/AvengeMedia/dankwall/internal/hct"
	"github.com/AvengeMedia/dankwall/internal/scheme"
)

const (
	// CacheFile is the canonical palette document inside the cache dir.
	CacheFile = "colors.json"
	// AccentFile holds just the accent hex for cheap shell consumption.
	AccentFile = "accent"
)

// AccentHct is the accent in cylindrical coordinates, cached so
// downstream consumers can re-derive related colors without running
// the solver themselves.
type AccentHct struct {
	Hue    float64 `json:"hue"`
	Chroma float64 `json:"chroma"`
	Tone   float64 `json:"tone"`
}

// Palette is the canonical output document: the full role scheme, the
// 16 terminal slots, and the parameters they were derived under.
type Palette struct {
	Mode        string        `json:"mode"`
	Scheme      string        `json:"scheme"`
	Transparent bool          `json:"transparent"`
	Accent      string        `json:"accent"`
	AccentHct   AccentHct     `json:"accentHct"`
	Colors      scheme.Scheme `json:"colors"`
	Term        TermPalette   `json:"term"`
}

// Dark reports whether the palette was generated for dark mode.
func (p *Palette) Dark() bool {
	return p.Mode != "light"
}

// Assemble builds the canonical palette from its finished parts.
func Assemble(accent hct.Hct, dark, transparent bool, v scheme.Variant, colors scheme.Scheme, term TermPalette) *Palette {
	mode := "dark"
	if !dark {
		mode = "light"
	}
	return &Palette{
		Mode:        mode,
		Scheme:      v.String(),
		Transparent: transparent,
		Accent:      accent.Hex(),
		AccentHct:   AccentHct{Hue: accent.Hue, Chroma: accent.Chroma, Tone: accent.Tone},
		Colors:      colors,
		Term:        term,
	}
}

// Save writes the palette document and the accent file into dir,
// overwriting whole files so readers never see a partial document.
func (p *Palette) Save(fsys afero.Fs, dir string) error {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding palette: %w", err)
	}
	data = append(data, '\n')
	if err := afero.WriteFile(fsys, filepath.Join(dir, CacheFile), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", CacheFile, err)
	}
	if err := afero.WriteFile(fsys, filepath.Join(dir, AccentFile), []byte(p.Accent+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", AccentFile, err)
	}
	return nil
}

// Load reads a previously saved palette document from dir.
func Load(fsys afero.Fs, dir string) (*Palette, error) {
	data, err := afero.ReadFile(fsys, filepath.Join(dir, CacheFile))
	if err != nil {
		return nil, fmt.Errorf("reading cached palette: %w", err)
	}
	var p Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing cached palette: %w", err)
	}
	return &p, nil
}

// DefaultCacheDir resolves the palette cache location, honoring
// XDG_CACHE_HOME when set.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "dankwall")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "dankwall")
	}
	return filepath.Join(home, ".cache", "dankwall")
}
