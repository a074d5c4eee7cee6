package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankwall/internal/hct"
	"github.com/AvengeMedia/dankwall/internal/scheme"
	"github.com/AvengeMedia/dankwall/internal/theme"
)

func fixturePalette(t *testing.T, dark, transparent bool) *theme.Palette {
	t.Helper()
	accent, err := hct.ParseHexHct("#3366CC")
	require.NoError(t, err)
	colors := scheme.Generate(accent, dark, scheme.VariantVibrant)
	term, err := theme.Harmonize(theme.DefaultTermPalette(dark), accent, theme.HarmonizeOptions{
		Dark:      dark,
		Variant:   scheme.VariantVibrant,
		Harmony:   0.8,
		Threshold: 100,
		FgBoost:   0.35,
	})
	require.NoError(t, err)
	return theme.Assemble(accent, dark, transparent, scheme.VariantVibrant, colors, term)
}

func TestAllRenderersProduceOutput(t *testing.T) {
	for _, dark := range []bool{true, false} {
		p := fixturePalette(t, dark, false)
		for _, r := range All() {
			out, err := r.Render(p)
			require.NoError(t, err, r.Name())
			assert.NotEmpty(t, out, r.Name())
			assert.NotContains(t, out, "%!", "%s output has a formatting bug", r.Name())
			assert.Contains(t, out, "#", "%s output has no colors", r.Name())
			assert.NotEmpty(t, r.DefaultPath(), r.Name())
		}
	}
}

func TestKittyOutput(t *testing.T) {
	p := fixturePalette(t, true, false)
	out, err := Kitty{}.Render(p)
	require.NoError(t, err)

	assert.Contains(t, out, "background "+p.Colors.Surface)
	assert.Contains(t, out, "foreground "+p.Colors.OnSurface)
	assert.Contains(t, out, "selection_background "+p.Colors.PrimaryContainer)
	for i, v := range p.Term {
		assert.Contains(t, out, "color"+itoa(i)+" "+v)
	}
}

func itoa(i int) string {
	return strings.TrimPrefix(theme.SlotName(i), "term")
}

func TestWofiUsesAlphaBackground(t *testing.T) {
	dark, err := Wofi{}.Render(fixturePalette(t, true, false))
	require.NoError(t, err)
	assert.Contains(t, dark, "rgba(")
	assert.Contains(t, dark, "0.85)")

	light, err := Wofi{}.Render(fixturePalette(t, false, false))
	require.NoError(t, err)
	assert.Contains(t, light, "0.92)")
}

func TestNeovimTransparentBackground(t *testing.T) {
	out, err := Neovim{}.Render(fixturePalette(t, true, true))
	require.NoError(t, err)
	assert.Contains(t, out, `base = "NONE"`)

	opaque, err := Neovim{}.Render(fixturePalette(t, true, false))
	require.NoError(t, err)
	assert.NotContains(t, opaque, `base = "NONE"`)
}

func TestLazygitPaletteDerivesFromAccent(t *testing.T) {
	p := fixturePalette(t, true, false)
	c, err := LazygitPalette(p)
	require.NoError(t, err)

	key, err := hct.ParseHexHct(p.Colors.PrimaryKeyColor)
	require.NoError(t, err)
	active, err := hct.ParseHexHct(c.ActiveBorder)
	require.NoError(t, err)
	assert.LessOrEqual(t, hct.DifferenceDegrees(active.Hue, key.Hue), 15.0,
		"active border should stay in the accent hue family")
	assert.Greater(t, active.Tone, 50.0, "dark mode borders should be light")
}

func TestWriteUsesOverridePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := fixturePalette(t, true, false)
	require.NoError(t, Write(fs, Kitty{}, p, "/custom/theme.conf"))

	ok, err := afero.Exists(fs, "/custom/theme.conf")
	require.NoError(t, err)
	assert.True(t, ok)
}

type failingRenderer struct{}

func (failingRenderer) Name() string { return "broken" }

func (failingRenderer) Render(*theme.Palette) (string, error) {
	return "", errors.New("boom")
}

func (failingRenderer) DefaultPath() string { return "/broken/out" }

func TestWriteAllIsolatesFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := fixturePalette(t, true, false)
	renderers := []Renderer{failingRenderer{}, Kitty{}}
	paths := map[string]string{"kitty": "/out/kitty.conf"}

	failed := WriteAll(fs, p, renderers, paths)
	assert.Equal(t, 1, failed)

	ok, err := afero.Exists(fs, "/out/kitty.conf")
	require.NoError(t, err)
	assert.True(t, ok, "healthy renderers must still run after a failure")
}

func TestByName(t *testing.T) {
	r, err := ByName("waybar")
	require.NoError(t, err)
	assert.Equal(t, "waybar", r.Name())

	_, err = ByName("nope")
	assert.Error(t, err)
}

type recordingGitSink struct {
	settings map[string]string
	fail     bool
}

func (s *recordingGitSink) SetConfig(_ context.Context, key, value string) error {
	if s.fail {
		return errors.New("git not found")
	}
	s.settings[key] = value
	return nil
}

func TestConfigureGitColors(t *testing.T) {
	p := fixturePalette(t, true, false)
	sink := &recordingGitSink{settings: map[string]string{}}
	ConfigureGitColors(context.Background(), sink, p)

	require.Contains(t, sink.settings, "color.diff.old")
	require.Contains(t, sink.settings, "color.status.added")
	for key, value := range sink.settings {
		_, err := hct.ParseHex(value)
		assert.NoError(t, err, key)
	}

	// Failures are swallowed.
	ConfigureGitColors(context.Background(), &recordingGitSink{fail: true}, p)
}
