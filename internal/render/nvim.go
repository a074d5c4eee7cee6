package render

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/AvengeMedia/dankwall/internal/hct"
	"github.com/AvengeMedia/dankwall/internal/theme"
)

// Neovim renders a Lua colorscheme. Rather than mapping scheme roles
// directly, it nudges the full Catppuccin Mocha palette toward the
// accent hue so syntax groups keep their identity while the whole
// editor shifts into the wallpaper's color family.
type Neovim struct{}

func (Neovim) Name() string { return "nvim" }

func (Neovim) DefaultPath() string {
	return filepath.Join(configHome(), "nvim", "colors", "dankwall.lua")
}

// Harmonization strength and rotation cap per color class. Backgrounds
// follow the accent almost fully but barely move; syntax colors rotate
// hard and far.
const (
	nvimBgHarmony     = 0.88
	nvimUIHarmony     = 0.15
	nvimSyntaxHarmony = 0.85
	nvimTextHarmony   = 0.46

	nvimBgThresh     = 5.0
	nvimUIThresh     = 10.0
	nvimSyntaxThresh = 60.0
	nvimTextThresh   = 8.0
)

var catppuccinMocha = map[string]string{
	"rosewater": "#f5e0dc", "flamingo": "#f2cdcd", "pink": "#f5c2e7",
	"mauve": "#cba6f7", "red": "#f38ba8", "maroon": "#eba0ac",
	"peach": "#fab387", "yellow": "#f9e2af", "green": "#a6e3a1",
	"teal": "#94e2d5", "sky": "#89dceb", "sapphire": "#74c7ec",
	"blue": "#89b4fa", "lavender": "#b4befe", "text": "#cdd6f4",
	"subtext1": "#bac2de", "subtext0": "#a6adc8", "overlay2": "#9399b2",
	"overlay1": "#7f849c", "overlay0": "#6c7086", "surface2": "#585b70",
	"surface1": "#45475a", "surface0": "#313244", "base": "#1e1e2e",
	"mantle": "#181825", "crust": "#11111b",
}

// Syntax chroma is forced so the harmonized colors stay saturated.
var nvimSyntaxChroma = map[string]float64{
	"rosewater": 90, "flamingo": 90, "pink": 92, "mauve": 95, "red": 90,
	"maroon": 88, "peach": 90, "yellow": 92, "green": 95, "teal": 95,
	"sky": 95, "sapphire": 95, "blue": 95, "lavender": 95,
}

// Specific tones for contrast on the harmonized background.
var nvimToneMap = map[string]float64{
	"mauve": 68, "blue": 72, "green": 70, "teal": 72, "yellow": 80,
	"pink": 70, "sapphire": 73, "red": 65, "peach": 72,
}

// harmonizeHex nudges a color's hue toward the accent while keeping
// its chroma and tone.
func harmonizeHex(hex string, accent hct.Hct, harmony, threshold float64) (string, error) {
	c, err := hct.ParseHexHct(hex)
	if err != nil {
		return "", err
	}
	delta := hct.DifferenceDegrees(c.Hue, accent.Hue)
	rotation := math.Min(delta*harmony, threshold)
	hue := hct.SanitizeDegrees(c.Hue + rotation*hct.RotationDirection(c.Hue, accent.Hue))
	return hct.From(hue, c.Chroma, c.Tone).Hex(), nil
}

// nvimPalette derives the full named color table for the colorscheme.
func nvimPalette(p *theme.Palette) (map[string]string, error) {
	accent, err := accentKey(p)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(catppuccinMocha))

	harmonizeInto := func(names []string, harmony, threshold float64) error {
		for _, name := range names {
			v, err := harmonizeHex(catppuccinMocha[name], accent, harmony, threshold)
			if err != nil {
				return fmt.Errorf("catppuccin %s: %w", name, err)
			}
			out[name] = v
		}
		return nil
	}

	if err := harmonizeInto([]string{"base"}, nvimBgHarmony, nvimBgThresh); err != nil {
		return nil, err
	}
	if err := harmonizeInto([]string{
		"mantle", "crust", "surface0", "surface1", "surface2",
		"overlay0", "overlay1", "overlay2",
	}, nvimUIHarmony, nvimUIThresh); err != nil {
		return nil, err
	}
	if err := harmonizeInto([]string{"text", "subtext0", "subtext1"}, nvimTextHarmony, nvimTextThresh); err != nil {
		return nil, err
	}

	for name, chroma := range nvimSyntaxChroma {
		raw, err := harmonizeHex(catppuccinMocha[name], accent, nvimSyntaxHarmony, nvimSyntaxThresh)
		if err != nil {
			return nil, fmt.Errorf("catppuccin %s: %w", name, err)
		}
		c, err := hct.ParseHexHct(raw)
		if err != nil {
			return nil, err
		}
		tone := c.Tone
		if forced, ok := nvimToneMap[name]; ok {
			tone = forced
		}
		out[name] = hct.From(c.Hue, chroma, tone).Hex()
	}

	if p.Transparent {
		out["base"] = "NONE"
	}
	return out, nil
}

// rainbowBoost saturates and lifts a color for delimiter highlighting.
func rainbowBoost(hex string, chromaBoost, minTone float64) (string, error) {
	c, err := hct.ParseHexHct(hex)
	if err != nil {
		return "", err
	}
	return hct.From(c.Hue, math.Min(c.Chroma*chromaBoost, 90), math.Max(c.Tone, minTone)).Hex(), nil
}

func (Neovim) Render(p *theme.Palette) (string, error) {
	c, err := nvimPalette(p)
	if err != nil {
		return "", err
	}

	rainbow := make(map[string]string, 7)
	for _, r := range []struct {
		name, src          string
		boost, minimumTone float64
	}{
		{"red", "red", 1.3, 68},
		{"orange", "peach", 1.25, 72},
		{"yellow", "yellow", 1.25, 75},
		{"green", "green", 1.3, 70},
		{"cyan", "teal", 1.3, 70},
		{"blue", "blue", 1.3, 72},
		{"violet", "mauve", 1.4, 68},
	} {
		v, err := rainbowBoost(c[r.src], r.boost, r.minimumTone)
		if err != nil {
			return "", err
		}
		rainbow[r.name] = v
	}

	var b strings.Builder
	b.WriteString("-- Auto-generated Neovim colorscheme (Material You + Catppuccin Mocha)\n\n")
	b.WriteString("vim.cmd(\"hi clear\")\nvim.cmd(\"syntax reset\")\n\n")
	b.WriteString("vim.o.termguicolors = true\nvim.g.colors_name = \"dankwall\"\n\n")

	b.WriteString("local colors = {\n")
	for _, name := range []string{
		"base", "mantle", "crust",
		"surface0", "surface1", "surface2",
		"overlay0", "overlay1", "overlay2",
		"text", "subtext1", "subtext0",
		"rosewater", "flamingo", "pink", "mauve", "red", "maroon",
		"peach", "yellow", "green", "teal", "sky", "sapphire", "blue",
		"lavender",
	} {
		fmt.Fprintf(&b, "  %s = %q,\n", name, c[name])
	}
	for _, name := range []string{"red", "orange", "yellow", "green", "cyan", "blue", "violet"} {
		fmt.Fprintf(&b, "  rainbow_%s = %q,\n", name, rainbow[name])
	}
	b.WriteString("}\n\n")

	b.WriteString(`local function hi(group, opts)
  vim.api.nvim_set_hl(0, group, opts)
end

-- Editor
hi("Normal", { fg = colors.text, bg = colors.base ~= "NONE" and colors.base or nil })
hi("NormalFloat", { fg = colors.text, bg = colors.mantle })
hi("FloatBorder", { fg = colors.mauve, bg = colors.mantle })
hi("Cursor", { fg = colors.base, bg = colors.text })
hi("CursorLine", { bg = colors.surface0 })
hi("CursorLineNr", { fg = colors.mauve, bold = true })
hi("LineNr", { fg = colors.overlay0 })
hi("SignColumn", { bg = colors.base ~= "NONE" and colors.base or nil })
hi("ColorColumn", { bg = colors.surface0 })
hi("VertSplit", { fg = colors.surface1 })
hi("WinSeparator", { fg = colors.surface1 })
hi("Folded", { fg = colors.overlay1, bg = colors.surface0 })
hi("Visual", { bg = colors.surface1 })
hi("Search", { fg = colors.base, bg = colors.yellow })
hi("IncSearch", { fg = colors.base, bg = colors.peach })
hi("MatchParen", { fg = colors.peach, bold = true })
hi("Pmenu", { fg = colors.text, bg = colors.surface0 })
hi("PmenuSel", { fg = colors.base, bg = colors.mauve, bold = true })
hi("PmenuSbar", { bg = colors.surface1 })
hi("PmenuThumb", { bg = colors.overlay0 })
hi("StatusLine", { fg = colors.text, bg = colors.mantle })
hi("StatusLineNC", { fg = colors.overlay0, bg = colors.mantle })
hi("TabLine", { fg = colors.overlay1, bg = colors.mantle })
hi("TabLineSel", { fg = colors.mauve, bg = colors.surface0, bold = true })
hi("WildMenu", { fg = colors.base, bg = colors.mauve })
hi("NonText", { fg = colors.overlay0 })
hi("Whitespace", { fg = colors.surface1 })
hi("Directory", { fg = colors.blue })
hi("Title", { fg = colors.mauve, bold = true })
hi("ErrorMsg", { fg = colors.red })
hi("WarningMsg", { fg = colors.yellow })
hi("MoreMsg", { fg = colors.teal })
hi("Question", { fg = colors.teal })

-- Syntax
hi("Comment", { fg = colors.overlay1, italic = true })
hi("Constant", { fg = colors.peach })
hi("String", { fg = colors.green })
hi("Character", { fg = colors.teal })
hi("Number", { fg = colors.peach })
hi("Float", { fg = colors.peach })
hi("Boolean", { fg = colors.peach })
hi("Identifier", { fg = colors.text })
hi("Function", { fg = colors.blue, bold = true })
hi("Statement", { fg = colors.mauve })
hi("Conditional", { fg = colors.mauve })
hi("Repeat", { fg = colors.mauve })
hi("Label", { fg = colors.sapphire })
hi("Operator", { fg = colors.sky })
hi("Keyword", { fg = colors.mauve, italic = true })
hi("Exception", { fg = colors.red })
hi("PreProc", { fg = colors.pink })
hi("Include", { fg = colors.mauve })
hi("Define", { fg = colors.pink })
hi("Macro", { fg = colors.pink })
hi("Type", { fg = colors.yellow })
hi("StorageClass", { fg = colors.yellow, italic = true })
hi("Structure", { fg = colors.yellow })
hi("Typedef", { fg = colors.yellow })
hi("Special", { fg = colors.pink })
hi("SpecialChar", { fg = colors.pink })
hi("Tag", { fg = colors.lavender })
hi("Delimiter", { fg = colors.overlay2 })
hi("SpecialComment", { fg = colors.overlay1 })
hi("Todo", { fg = colors.base, bg = colors.yellow, bold = true })
hi("Underlined", { underline = true })
hi("Error", { fg = colors.red })

-- Treesitter
hi("@variable", { fg = colors.text })
hi("@variable.builtin", { fg = colors.red, italic = true })
hi("@variable.parameter", { fg = colors.maroon })
hi("@variable.member", { fg = colors.lavender })
hi("@constant", { fg = colors.peach })
hi("@constant.builtin", { fg = colors.peach, italic = true })
hi("@module", { fg = colors.lavender, italic = true })
hi("@string", { fg = colors.green })
hi("@string.escape", { fg = colors.pink })
hi("@string.special.url", { fg = colors.rosewater, underline = true })
hi("@function", { fg = colors.blue, bold = true })
hi("@function.builtin", { fg = colors.peach })
hi("@function.macro", { fg = colors.teal })
hi("@function.method", { fg = colors.blue, bold = true })
hi("@constructor", { fg = colors.sapphire })
hi("@keyword", { fg = colors.mauve, italic = true })
hi("@keyword.return", { fg = colors.mauve, italic = true })
hi("@type", { fg = colors.yellow })
hi("@type.builtin", { fg = colors.yellow, italic = true })
hi("@property", { fg = colors.lavender })
hi("@punctuation.bracket", { fg = colors.overlay2 })
hi("@punctuation.delimiter", { fg = colors.overlay2 })
hi("@tag", { fg = colors.mauve })
hi("@tag.attribute", { fg = colors.teal, italic = true })
hi("@tag.delimiter", { fg = colors.sky })

-- Diagnostics
hi("DiagnosticError", { fg = colors.red })
hi("DiagnosticWarn", { fg = colors.yellow })
hi("DiagnosticInfo", { fg = colors.sky })
hi("DiagnosticHint", { fg = colors.teal })
hi("DiagnosticUnderlineError", { sp = colors.red, undercurl = true })
hi("DiagnosticUnderlineWarn", { sp = colors.yellow, undercurl = true })
hi("DiagnosticUnderlineInfo", { sp = colors.sky, undercurl = true })
hi("DiagnosticUnderlineHint", { sp = colors.teal, undercurl = true })

-- Git
hi("DiffAdd", { bg = colors.surface0, fg = colors.green })
hi("DiffChange", { bg = colors.surface0, fg = colors.yellow })
hi("DiffDelete", { bg = colors.surface0, fg = colors.red })
hi("DiffText", { bg = colors.surface1, fg = colors.blue })
hi("GitSignsAdd", { fg = colors.green })
hi("GitSignsChange", { fg = colors.yellow })
hi("GitSignsDelete", { fg = colors.red })

-- Rainbow delimiters
hi("RainbowDelimiterRed", { fg = colors.rainbow_red })
hi("RainbowDelimiterOrange", { fg = colors.rainbow_orange })
hi("RainbowDelimiterYellow", { fg = colors.rainbow_yellow })
hi("RainbowDelimiterGreen", { fg = colors.rainbow_green })
hi("RainbowDelimiterCyan", { fg = colors.rainbow_cyan })
hi("RainbowDelimiterBlue", { fg = colors.rainbow_blue })
hi("RainbowDelimiterViolet", { fg = colors.rainbow_violet })

-- Telescope
hi("TelescopeBorder", { fg = colors.mauve })
hi("TelescopePromptPrefix", { fg = colors.peach })
hi("TelescopeSelection", { bg = colors.surface0, bold = true })
hi("TelescopeMatching", { fg = colors.pink, bold = true })
`)
	return b.String(), nil
}
