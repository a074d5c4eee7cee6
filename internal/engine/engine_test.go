package engine

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankwall/internal/theme"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CacheDir = "/cache"
	return cfg
}

func writePNG(t *testing.T, fs afero.Fs, path string, c color.RGBA, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}

func TestRunRequiresExactlyOneSource(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg := testConfig()
	_, err := Run(context.Background(), fs, cfg)
	assert.ErrorIs(t, err, ErrNoSource)

	cfg.Image = "/wall.png"
	cfg.Color = "#3366CC"
	_, err = Run(context.Background(), fs, cfg)
	assert.ErrorIs(t, err, ErrBothSources)

	// Neither failure may leave any output behind.
	empty, err := afero.IsEmpty(fs, "/")
	require.NoError(t, err)
	assert.True(t, empty, "failed runs must not write files")
}

func TestRunFromColor(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := testConfig()
	cfg.Color = "#3366CC"
	cfg.Targets = []string{"kitty"}
	cfg.OutputPaths = map[string]string{"kitty": "/out/kitty.conf"}

	p, err := Run(context.Background(), fs, cfg)
	require.NoError(t, err)
	assert.Equal(t, "#3366CC", p.Accent)
	assert.Equal(t, "dark", p.Mode)

	for _, path := range []string{
		filepath.Join("/cache", theme.CacheFile),
		filepath.Join("/cache", theme.AccentFile),
		"/out/kitty.conf",
	} {
		ok, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, ok, path)
	}

	loaded, err := theme.Load(fs, "/cache")
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestRunFromImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "/wall.png", color.RGBA{R: 0x33, G: 0x66, B: 0xCC, A: 0xFF}, 4, 4)

	cfg := testConfig()
	cfg.Image = "/wall.png"
	p, err := Run(context.Background(), fs, cfg)
	require.NoError(t, err)
	assert.Equal(t, "#3366CC", p.Accent, "solid image must yield its exact color")
}

func TestRunSmartSwitchesGrayToNeutral(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "/gray.png", color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}, 4, 4)

	cfg := testConfig()
	cfg.Image = "/gray.png"
	cfg.Smart = true
	p, err := Run(context.Background(), fs, cfg)
	require.NoError(t, err)
	assert.Equal(t, "neutral", p.Scheme)

	cfg.Smart = false
	cfg.Scheme = "vibrant"
	p, err = Run(context.Background(), fs, cfg)
	require.NoError(t, err)
	assert.Equal(t, "vibrant", p.Scheme, "without smart mode the requested scheme stands")
}

func TestRunMissingImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := testConfig()
	cfg.Image = "/no-such.png"
	_, err := Run(context.Background(), fs, cfg)
	assert.Error(t, err)

	ok, _ := afero.DirExists(fs, "/cache")
	assert.False(t, ok, "decode failures must abort before any write")
}

func TestRunCorruptImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.png", []byte("not an image"), 0o644))
	cfg := testConfig()
	cfg.Image = "/bad.png"
	_, err := Run(context.Background(), fs, cfg)
	assert.Error(t, err)
}

func TestRunValidatesRanges(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := testConfig()
	cfg.Color = "#3366CC"

	cfg.Harmony = 1.5
	_, err := Run(context.Background(), fs, cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Color = "#3366CC"
	cfg.Threshold = 200
	_, err = Run(context.Background(), fs, cfg)
	assert.Error(t, err)
}

func TestRunUnknownTarget(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := testConfig()
	cfg.Color = "#3366CC"
	cfg.Targets = []string{"emacs"}
	_, err := Run(context.Background(), fs, cfg)
	assert.Error(t, err)
}

func TestRunWithTermSchemeFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cat.json", []byte(`{"base": "#11111b", "red": "#ff0000"}`), 0o644))

	cfg := testConfig()
	cfg.Color = "#3366CC"
	cfg.TermScheme = "/cat.json"
	_, err := Run(context.Background(), fs, cfg)
	require.NoError(t, err)

	cfg.TermScheme = "/missing.json"
	_, err = Run(context.Background(), fs, cfg)
	assert.Error(t, err)
}
