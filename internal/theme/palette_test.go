package theme

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankwall/internal/hct"
	"github.com/AvengeMedia/dankwall/internal/scheme"
)

func testPalette(t *testing.T) *Palette {
	t.Helper()
	accent, err := hct.ParseHexHct("#3366CC")
	require.NoError(t, err)
	colors := scheme.Generate(accent, true, scheme.VariantVibrant)
	term, err := Harmonize(DefaultTermPalette(true), accent, testOpts(true))
	require.NoError(t, err)
	return Assemble(accent, true, false, scheme.VariantVibrant, colors, term)
}

func TestPaletteSaveLoadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := testPalette(t)
	require.NoError(t, p.Save(fs, "/cache/dankwall"))

	loaded, err := Load(fs, "/cache/dankwall")
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
	assert.True(t, loaded.Dark())
	assert.Equal(t, "vibrant", loaded.Scheme)
}

func TestPaletteSaveWritesAccentFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := testPalette(t)
	require.NoError(t, p.Save(fs, "/cache/dankwall"))

	data, err := afero.ReadFile(fs, filepath.Join("/cache/dankwall", AccentFile))
	require.NoError(t, err)
	assert.Equal(t, p.Accent+"\n", string(data))
}

func TestPaletteDocumentShape(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := testPalette(t)
	require.NoError(t, p.Save(fs, "/cache/dankwall"))

	data, err := afero.ReadFile(fs, filepath.Join("/cache/dankwall", CacheFile))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"mode", "scheme", "transparent", "accent", "accentHct", "colors", "term"} {
		assert.Contains(t, doc, key)
	}

	var term map[string]string
	require.NoError(t, json.Unmarshal(doc["term"], &term))
	assert.Len(t, term, 16)
	for i := 0; i < 16; i++ {
		assert.Contains(t, term, SlotName(i))
	}
}

func TestLoadMissingCache(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(fs, "/nowhere")
	assert.Error(t, err)
}
