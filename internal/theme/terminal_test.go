package theme

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankwall/internal/hct"
)

func TestDefaultTermPalettesAreValid(t *testing.T) {
	for _, dark := range []bool{true, false} {
		pal := DefaultTermPalette(dark)
		for i, v := range pal {
			if _, err := hct.ParseHex(v); err != nil {
				t.Errorf("dark=%v slot %s = %q: %v", dark, SlotName(i), v, err)
			}
		}
	}
}

func TestLoadTermPaletteNamedRoles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/pal.json", []byte(`{
		"base": "#1e1e2e",
		"red": "#f38ba8",
		"green": "#a6e3a1",
		"yellow": "#f9e2af",
		"blue": "#89b4fa",
		"pink": "#f5c2e7",
		"teal": "#94e2d5",
		"text": "#cdd6f4",
		"surface2": "#585b70",
		"subtext1": "#bac2de"
	}`), 0o644))

	pal, err := LoadTermPalette(fs, "/pal.json", true)
	require.NoError(t, err)

	assert.Equal(t, "#1e1e2e", pal[0], "base maps to term0")
	assert.Equal(t, "#f38ba8", pal[1], "red maps to term1")
	assert.Equal(t, "#f38ba8", pal[9], "red maps to term9 too")
	assert.Equal(t, "#f5c2e7", pal[5], "pink maps to term5")
	assert.Equal(t, "#94e2d5", pal[14], "teal maps to term14")
	assert.Equal(t, "#cdd6f4", pal[7], "text maps to term7")
	assert.Equal(t, "#585b70", pal[8], "surface2 maps to term8")
	assert.Equal(t, "#bac2de", pal[15], "subtext1 maps to term15")
}

func TestLoadTermPaletteSparseRolesFallBack(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/pal.json", []byte(`{"red": "#FF0000"}`), 0o644))

	pal, err := LoadTermPalette(fs, "/pal.json", true)
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", pal[1])
	assert.Equal(t, defaultDarkRoles["base"], pal[0], "missing roles use the built-in defaults")
}

func TestLoadTermPaletteModeVariants(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `{"dark": {`
	for i := 0; i < 16; i++ {
		if i > 0 {
			doc += ","
		}
		doc += `"` + SlotName(i) + `": "#101010"`
	}
	doc += `}, "light": {`
	for i := 0; i < 16; i++ {
		if i > 0 {
			doc += ","
		}
		doc += `"` + SlotName(i) + `": "#F0F0F0"`
	}
	doc += `}}`
	require.NoError(t, afero.WriteFile(fs, "/pal.json", []byte(doc), 0o644))

	dark, err := LoadTermPalette(fs, "/pal.json", true)
	require.NoError(t, err)
	assert.Equal(t, "#101010", dark[0])

	light, err := LoadTermPalette(fs, "/pal.json", false)
	require.NoError(t, err)
	assert.Equal(t, "#F0F0F0", light[0])
}

func TestLoadTermPaletteErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadTermPalette(fs, "/missing.json", true)
	assert.Error(t, err, "missing file must be reported")

	require.NoError(t, afero.WriteFile(fs, "/broken.json", []byte(`{not json`), 0o644))
	_, err = LoadTermPalette(fs, "/broken.json", true)
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/partial.json", []byte(`{"dark": {"term0": "#101010"}}`), 0o644))
	_, err = LoadTermPalette(fs, "/partial.json", true)
	assert.Error(t, err, "mode variant with missing slots must be rejected")

	require.NoError(t, afero.WriteFile(fs, "/badhex.json", []byte(`{"red": "#GGGGGG"}`), 0o644))
	_, err = LoadTermPalette(fs, "/badhex.json", true)
	assert.Error(t, err, "invalid hex in a role must be rejected")
}
