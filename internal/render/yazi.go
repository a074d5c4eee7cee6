package render

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/AvengeMedia/dankwall/internal/hct"
	"github.com/AvengeMedia/dankwall/internal/theme"
)

// Yazi renders a yazi theme.toml with vibrant per-filetype colors
// spread around the accent hue.
type Yazi struct{}

func (Yazi) Name() string { return "yazi" }

func (Yazi) DefaultPath() string {
	return filepath.Join(configHome(), "yazi", "theme.toml")
}

type yaziColors struct {
	dir, code, exec, archive, image, audio, doc, video, link, special string
	border, selectedBg, hoveredBg                                     string
}

func yaziPalette(p *theme.Palette) (yaziColors, error) {
	key, err := accentKey(p)
	if err != nil {
		return yaziColors{}, err
	}
	baseHue := key.Hue
	baseChroma := key.Chroma

	// Dark mode pushes tones up for visibility on dark backgrounds,
	// light mode pulls them down.
	baseTone, toneLo, toneHi := 78.0, 70.0, 85.0
	chromaMul := 1.2
	if !p.Dark() {
		baseTone, toneLo, toneHi = 50.0, 40.0, 60.0
		chromaMul = 1.0
	}
	minChroma := math.Max(baseChroma*0.9, 55)
	maxChroma := math.Min(baseChroma*chromaMul, 90)

	at := func(shift, chromaCap, tone float64) string {
		return hct.From(hct.SanitizeDegrees(baseHue+shift), math.Min(maxChroma, chromaCap), tone).Hex()
	}

	var c yaziColors

	dir, err := hct.ParseHexHct(p.Colors.Primary)
	if err != nil {
		return yaziColors{}, fmt.Errorf("primary color: %w", err)
	}
	c.dir = hct.From(dir.Hue, math.Max(dir.Chroma, 65), baseTone+2).Hex()

	c.code = at(10, 70, baseTone+3)
	c.exec = at(30, 75, toneHi)
	c.archive = at(50, 80, toneHi-2)
	c.image = at(-30, 75, baseTone)
	c.audio = at(40, 75, toneHi)
	c.doc = hct.From(hct.SanitizeDegrees(baseHue-20), math.Min(minChroma, 65), toneHi+2).Hex()
	c.video = at(140, 70, toneHi-3)
	c.link = at(150, 78, toneHi+3)
	c.special = at(200, 75, toneLo+2)

	outline, err := hct.ParseHexHct(p.Colors.Outline)
	if err != nil {
		return yaziColors{}, fmt.Errorf("outline color: %w", err)
	}
	c.border = hct.From(outline.Hue, outline.Chroma, pick(p, 65, 50)).Hex()

	container, err := hct.ParseHexHct(p.Colors.PrimaryContainer)
	if err != nil {
		return yaziColors{}, fmt.Errorf("primary container color: %w", err)
	}
	c.selectedBg = hct.From(container.Hue, math.Max(container.Chroma, 40), pick(p, 25, 85)).Hex()
	c.hoveredBg = hct.From(container.Hue, math.Max(container.Chroma, 35), pick(p, 20, 90)).Hex()

	return c, nil
}

func (Yazi) Render(p *theme.Palette) (string, error) {
	c, err := yaziPalette(p)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`# Auto-generated Yazi theme (Material You)

[filetype]

rules = [
    # Images
    { mime = "image/*", fg = "%[1]s" },

    # Videos
    { mime = "video/*", fg = "%[2]s" },

    # Audio
    { mime = "audio/*", fg = "%[3]s" },

    # Archives
    { mime = "application/*zip", fg = "%[4]s" },
    { mime = "application/*tar", fg = "%[4]s" },
    { mime = "application/*rar", fg = "%[4]s" },
    { mime = "application/x-7z-compressed", fg = "%[4]s" },
    { mime = "application/gzip", fg = "%[4]s" },

    # Documents
    { mime = "application/pdf", fg = "%[5]s" },
    { mime = "text/*", fg = "%[5]s" },

    # Code files
    { name = "*.py", fg = "%[6]s" },
    { name = "*.js", fg = "%[6]s" },
    { name = "*.ts", fg = "%[6]s" },
    { name = "*.rs", fg = "%[6]s" },
    { name = "*.go", fg = "%[6]s" },
    { name = "*.c", fg = "%[6]s" },
    { name = "*.cpp", fg = "%[6]s" },
    { name = "*.h", fg = "%[6]s" },
    { name = "*.java", fg = "%[6]s" },
    { name = "*.rb", fg = "%[6]s" },
    { name = "*.sh", fg = "%[6]s" },
    { name = "*.lua", fg = "%[6]s" },
    { name = "*.vim", fg = "%[6]s" },
    { name = "*.css", fg = "%[6]s" },

    # Markup/Config files
    { name = "*.html", fg = "%[5]s" },
    { name = "*.json", fg = "%[4]s" },
    { name = "*.yaml", fg = "%[4]s" },
    { name = "*.yml", fg = "%[4]s" },
    { name = "*.toml", fg = "%[4]s" },
    { name = "*.xml", fg = "%[5]s" },
    { name = "*.md", fg = "%[5]s" },

    # Fallback
    { name = "*", fg = "%[7]s" },
    { name = "*/", fg = "%[8]s" },
]

[manager]
cwd = { fg = "%[8]s" }

# Hovered
hovered = { fg = "black", bg = "%[8]s" }
preview_hovered = { underline = true }

# Find
find_keyword  = { fg = "%[4]s", bold = true }
find_position = { fg = "%[1]s", bg = "reset", bold = true }

# Marker
marker_selected = { fg = "%[8]s", bg = "%[8]s" }
marker_copied   = { fg = "%[6]s", bg = "%[6]s" }
marker_cut      = { fg = "%[9]s", bg = "%[9]s" }

# Tab
tab_active   = { fg = "black", bg = "%[8]s" }
tab_inactive = { fg = "%[7]s", bg = "reset" }
tab_width    = 1

# Border
border_symbol = "|"
border_style  = { fg = "%[7]s" }

[status]
separator_open  = ""
separator_close = ""
separator_style = { fg = "%[7]s", bg = "%[7]s" }

# Mode
mode_normal = { fg = "black", bg = "%[8]s", bold = true }
mode_select = { fg = "black", bg = "%[6]s", bold = true }
mode_unset  = { fg = "black", bg = "%[4]s", bold = true }

# Progress
progress_label  = { fg = "%[7]s", bold = true }
progress_normal = { fg = "%[8]s", bg = "reset" }
progress_error  = { fg = "%[9]s", bg = "reset" }

# Permissions
permissions_t = { fg = "%[10]s" }
permissions_r = { fg = "%[5]s" }
permissions_w = { fg = "%[4]s" }
permissions_x = { fg = "%[10]s" }
permissions_s = { fg = "%[7]s" }

[input]
border   = { fg = "%[8]s" }
title    = {}
value    = {}
selected = { reversed = true }

[select]
border   = { fg = "%[8]s" }
active   = { fg = "%[8]s" }
inactive = {}

[tasks]
border  = { fg = "%[8]s" }
title   = {}
hovered = { underline = true }

[which]
mask            = { bg = "black" }
cand            = { fg = "%[6]s" }
rest            = { fg = "%[7]s" }
desc            = { fg = "%[5]s" }
separator       = "  "
separator_style = { fg = "%[7]s" }

[help]
on      = { fg = "%[8]s" }
exec    = { fg = "%[10]s" }
desc    = { fg = "%[7]s" }
hovered = { bg = "%[11]s", bold = true }
footer  = { fg = "black", bg = "%[7]s" }

[completion]
border   = { fg = "%[8]s" }
active   = { bg = "%[11]s" }
inactive = {}
`,
		c.image, c.video, c.audio, c.archive, c.doc, c.code, c.border,
		c.dir, c.special, c.exec, c.hoveredBg), nil
}
