package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AvengeMedia/dankwall/internal/theme"
)

// Kitty renders a kitty current-theme.conf. Background and foreground
// come from the scheme surfaces; the 16 ANSI slots come straight from
// the harmonized palette.
type Kitty struct{}

func (Kitty) Name() string { return "kitty" }

func (Kitty) DefaultPath() string {
	return filepath.Join(configHome(), "kitty", "current-theme.conf")
}

func (Kitty) Render(p *theme.Palette) (string, error) {
	background := p.Colors.Surface
	foreground := p.Colors.OnSurface
	selectionBg := p.Colors.PrimaryContainer
	tabBg := p.Colors.SurfaceContainerLow
	activeTabBg := p.Colors.SurfaceContainerHigh

	var b strings.Builder
	b.WriteString("# Auto-generated Kitty colors (Material You theme)\n\n")

	b.WriteString("# Main colors\n")
	fmt.Fprintf(&b, "background %s\n", background)
	fmt.Fprintf(&b, "foreground %s\n", foreground)

	b.WriteString("\n# Cursor colors\n")
	fmt.Fprintf(&b, "cursor %s\n", foreground)
	fmt.Fprintf(&b, "cursor_text_color %s\n", background)

	b.WriteString("\n# Selection colors\n")
	fmt.Fprintf(&b, "selection_foreground %s\n", background)
	fmt.Fprintf(&b, "selection_background %s\n", selectionBg)

	b.WriteString("\n# URL underline color\n")
	fmt.Fprintf(&b, "url_color %s\n", p.Term[12])

	b.WriteString("\n# Tab bar colors\n")
	fmt.Fprintf(&b, "active_tab_foreground %s\n", foreground)
	fmt.Fprintf(&b, "active_tab_background %s\n", activeTabBg)
	fmt.Fprintf(&b, "inactive_tab_foreground %s\n", foreground)
	fmt.Fprintf(&b, "inactive_tab_background %s\n", tabBg)
	fmt.Fprintf(&b, "tab_bar_background %s\n", background)

	b.WriteString("\n# Marks\n")
	fmt.Fprintf(&b, "mark1_foreground %s\n", background)
	fmt.Fprintf(&b, "mark1_background %s\n", p.Term[12])
	fmt.Fprintf(&b, "mark2_foreground %s\n", background)
	fmt.Fprintf(&b, "mark2_background %s\n", p.Term[13])
	fmt.Fprintf(&b, "mark3_foreground %s\n", background)
	fmt.Fprintf(&b, "mark3_background %s\n", p.Term[14])

	b.WriteString("\n# Terminal ANSI colors\n")
	for i, v := range p.Term {
		fmt.Fprintf(&b, "color%d %s\n", i, v)
	}
	return b.String(), nil
}
