// Package engine runs the full palette pipeline: accent resolution
// from a wallpaper or explicit color, scheme generation, terminal
// harmonization, cache persistence and per-application rendering.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/AvengeMedia/dankwall/internal/hct"
	"github.com/AvengeMedia/dankwall/internal/log"
	"github.com/AvengeMedia/dankwall/internal/quantize"
	"github.com/AvengeMedia/dankwall/internal/render"
	"github.com/AvengeMedia/dankwall/internal/scheme"
	"github.com/AvengeMedia/dankwall/internal/theme"
)

var (
	// ErrNoSource is returned when neither an image nor a color was given.
	ErrNoSource = errors.New("either an image path or an accent color is required")
	// ErrBothSources is returned when an image and a color were both given.
	ErrBothSources = errors.New("an image path and an accent color are mutually exclusive")
)

// Config carries every pipeline parameter. It is built once from CLI
// flags and passed down; nothing in the pipeline reads globals.
type Config struct {
	// Exactly one of Image and Color must be set.
	Image string
	Color string

	Dark        bool
	Scheme      string
	Smart       bool
	Transparent bool

	// The image is downscaled so its pixel area is at most Size
	// squared before quantization.
	Size int

	Harmony   float64
	Threshold float64
	FgBoost   float64
	BlendBgFg bool

	// TermScheme is an optional palette definition file; empty means
	// the built-in source palette.
	TermScheme string

	CacheDir string

	// Render targets. All takes precedence over Targets; OutputPaths
	// overrides a target's default location by renderer name.
	RenderAll    bool
	Targets      []string
	OutputPaths  map[string]string
	ConfigureGit bool

	// Git is the sink used when ConfigureGit is set; nil means the
	// exec-backed default.
	Git render.GitSink
}

// DefaultConfig returns the documented defaults, without a source.
func DefaultConfig() Config {
	return Config{
		Dark:      true,
		Scheme:    "vibrant",
		Size:      128,
		Harmony:   0.8,
		Threshold: 100,
		FgBoost:   0.35,
		CacheDir:  theme.DefaultCacheDir(),
	}
}

func (c *Config) validate() error {
	if c.Image == "" && c.Color == "" {
		return ErrNoSource
	}
	if c.Image != "" && c.Color != "" {
		return ErrBothSources
	}
	if c.Harmony < 0 || c.Harmony > 1 {
		return fmt.Errorf("harmony %.2f out of range [0,1]", c.Harmony)
	}
	if c.Threshold < 0 || c.Threshold > 180 {
		return fmt.Errorf("threshold %.1f out of range [0,180]", c.Threshold)
	}
	if c.Size <= 0 {
		return fmt.Errorf("size %d must be positive", c.Size)
	}
	return nil
}

// Run executes the pipeline and returns the assembled palette. No
// file is written until every input has been validated and decoded.
func Run(ctx context.Context, fsys afero.Fs, cfg Config) (*theme.Palette, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	accent, err := resolveAccent(fsys, &cfg)
	if err != nil {
		return nil, err
	}
	log.Debugf("accent %s (hue %.1f chroma %.1f tone %.1f)", accent.Hex(), accent.Hue, accent.Chroma, accent.Tone)

	variant := scheme.ParseVariant(cfg.Scheme)
	colors := scheme.Generate(accent, cfg.Dark, variant)

	source := theme.DefaultTermPalette(cfg.Dark)
	if cfg.TermScheme != "" {
		source, err = theme.LoadTermPalette(fsys, cfg.TermScheme, cfg.Dark)
		if err != nil {
			return nil, err
		}
	}

	term, err := theme.Harmonize(source, accent, theme.HarmonizeOptions{
		Dark:      cfg.Dark,
		Variant:   variant,
		Harmony:   cfg.Harmony,
		Threshold: cfg.Threshold,
		FgBoost:   cfg.FgBoost,
		BlendBgFg: cfg.BlendBgFg,
		OnSurface: colors.OnSurface,
	})
	if err != nil {
		return nil, err
	}

	p := theme.Assemble(accent, cfg.Dark, cfg.Transparent, variant, colors, term)
	if cfg.CacheDir != "" {
		if err := p.Save(fsys, cfg.CacheDir); err != nil {
			return nil, err
		}
		log.Debugf("palette cached in %s", cfg.CacheDir)
	}

	renderers, err := selectRenderers(&cfg)
	if err != nil {
		return nil, err
	}
	if failed := render.WriteAll(fsys, p, renderers, cfg.OutputPaths); failed > 0 {
		log.Warnf("%d render target(s) failed", failed)
	}

	if cfg.ConfigureGit {
		sink := cfg.Git
		if sink == nil {
			sink = render.ExecGitSink{}
		}
		render.ConfigureGitColors(ctx, sink, p)
	}
	return p, nil
}

// resolveAccent picks the accent color from the explicit hex or by
// quantizing and scoring the wallpaper. Smart mode downgrades washed
// out accents to the neutral scheme.
func resolveAccent(fsys afero.Fs, cfg *Config) (hct.Hct, error) {
	if cfg.Color != "" {
		accent, err := hct.ParseHexHct(cfg.Color)
		if err != nil {
			return hct.Hct{}, fmt.Errorf("accent color: %w", err)
		}
		return accent, nil
	}

	f, err := fsys.Open(cfg.Image)
	if err != nil {
		return hct.Hct{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	pixels, err := quantize.DecodePixels(f, cfg.Size)
	if err != nil {
		return hct.Hct{}, fmt.Errorf("decoding %s: %w", cfg.Image, err)
	}
	candidates := quantize.Quantize(pixels, 128)
	argb, ok := quantize.Score(candidates)
	if !ok {
		return hct.Hct{}, fmt.Errorf("no usable colors in %s", cfg.Image)
	}
	accent := hct.FromARGB(argb)

	if cfg.Smart && accent.Chroma < 20 {
		log.Debugf("smart mode: accent chroma %.1f is low, switching to neutral scheme", accent.Chroma)
		cfg.Scheme = "neutral"
	}
	return accent, nil
}

func selectRenderers(cfg *Config) ([]render.Renderer, error) {
	if cfg.RenderAll {
		return render.All(), nil
	}
	renderers := make([]render.Renderer, 0, len(cfg.Targets))
	for _, name := range cfg.Targets {
		r, err := render.ByName(name)
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	return renderers, nil
}
