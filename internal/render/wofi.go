package render

import (
	"fmt"
	"path/filepath"

	"github.com/AvengeMedia/dankwall/internal/theme"
)

// Wofi renders a wofi style.css. The window background carries alpha
// so the launcher stays translucent over the wallpaper; the input box
// is more solid for readability.
type Wofi struct{}

func (Wofi) Name() string { return "wofi" }

func (Wofi) DefaultPath() string {
	return filepath.Join(configHome(), "wofi", "style.css")
}

const (
	wofiAlphaDark  = 0.85
	wofiAlphaLight = 0.92
	wofiInputAlpha = 0.95
)

func (Wofi) Render(p *theme.Palette) (string, error) {
	fg := p.Term[7]
	bg := rgba(p.Term[0], pick(p, wofiAlphaDark, wofiAlphaLight))
	inputBg := rgba(p.Colors.SurfaceContainerLow, wofiInputAlpha)

	accent := p.Colors.Primary
	accent2 := p.Colors.Secondary

	return fmt.Sprintf(`/* Auto-generated Wofi style (Material You) */

* {
  font-family: Iosevka;
  font-size: 18px;
}

window {
  background-color: %s;
  border: 2px solid %s;
  padding: 10px;
}

#input {
  background-color: %s;
  color: %s;
  border: 2px solid %s;
  padding: 6px 10px;
  margin-bottom: 10px;
}

#entry {
  padding: 6px 10px;
  color: %s;
}

#entry:selected {
  background-color: %s;
  color: %s;
  font-weight: bold;
}

#entry:hover {
  background-color: %s;
  color: %s;
}
`,
		bg, accent,
		inputBg, p.Colors.OnSurface, accent2,
		p.Colors.OnSurfaceVariant,
		accent, p.Colors.OnPrimary,
		p.Colors.SurfaceContainerHigh, fg), nil
}
