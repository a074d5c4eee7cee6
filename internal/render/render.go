// Package render turns a finished palette into per-application theme
// files. Renderers are pure palette-to-text functions; writing them to
// disk is a separate step so tests never touch the real filesystem.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/AvengeMedia/dankwall/internal/hct"
	"github.com/AvengeMedia/dankwall/internal/log"
	"github.com/AvengeMedia/dankwall/internal/theme"
)

// Renderer produces one application's theme file from a palette.
type Renderer interface {
	Name() string
	Render(p *theme.Palette) (string, error)
	DefaultPath() string
}

// All returns every built-in renderer in output order.
func All() []Renderer {
	return []Renderer{
		Kitty{},
		Neovim{},
		Lazygit{},
		Yazi{},
		Waybar{},
		Wofi{},
		Starship{},
		Fzf{},
	}
}

// ByName returns the renderer with the given name.
func ByName(name string) (Renderer, error) {
	for _, r := range All() {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("unknown renderer %q", name)
}

// Write renders one target and writes it to path, or to the
// renderer's default path when path is empty.
func Write(fsys afero.Fs, r Renderer, p *theme.Palette, path string) error {
	out, err := r.Render(p)
	if err != nil {
		return fmt.Errorf("rendering %s theme: %w", r.Name(), err)
	}
	if path == "" {
		path = r.DefaultPath()
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s config dir: %w", r.Name(), err)
	}
	if err := afero.WriteFile(fsys, path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s theme: %w", r.Name(), err)
	}
	log.Debugf("%s theme written to %s", r.Name(), path)
	return nil
}

// WriteAll writes every given renderer, isolating failures so one
// broken target never blocks the rest. Returns the number of targets
// that failed; each failure is logged.
func WriteAll(fsys afero.Fs, p *theme.Palette, renderers []Renderer, paths map[string]string) int {
	failed := 0
	for _, r := range renderers {
		if err := Write(fsys, r, p, paths[r.Name()]); err != nil {
			log.Warnf("%v", err)
			failed++
		}
	}
	return failed
}

// accentKey parses the primary key color the renderers derive from.
func accentKey(p *theme.Palette) (hct.Hct, error) {
	k, err := hct.ParseHexHct(p.Colors.PrimaryKeyColor)
	if err != nil {
		return hct.Hct{}, fmt.Errorf("primary key color: %w", err)
	}
	return k, nil
}

// tinted builds a color from the accent hue at a relative offset,
// scaling the accent chroma and capping it. This is the derivation
// shape almost every renderer uses.
func tinted(key hct.Hct, hueShift, chromaScale, chromaCap, tone float64) string {
	chroma := key.Chroma * chromaScale
	if chromaCap > 0 && chroma > chromaCap {
		chroma = chromaCap
	}
	return hct.From(hct.SanitizeDegrees(key.Hue+hueShift), chroma, tone).Hex()
}

// fixed builds a color from the accent hue at a relative offset with
// an absolute chroma, for slots that ignore the accent's own chroma.
func fixed(key hct.Hct, hueShift, chroma, tone float64) string {
	return hct.From(hct.SanitizeDegrees(key.Hue+hueShift), chroma, tone).Hex()
}

// pick returns a for dark palettes and b for light ones.
func pick(p *theme.Palette, a, b float64) float64 {
	if p.Dark() {
		return a
	}
	return b
}

func configHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}
