package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AvengeMedia/dankwall/internal/theme"
)

// Fzf renders a sourceable shell fragment exporting FZF_DEFAULT_OPTS.
type Fzf struct{}

func (Fzf) Name() string { return "fzf" }

func (Fzf) DefaultPath() string {
	return filepath.Join(configHome(), "fzf", "colors.sh")
}

func (Fzf) Render(p *theme.Palette) (string, error) {
	key, err := accentKey(p)
	if err != nil {
		return "", err
	}

	parts := []string{
		"bg:" + p.Term[0],
		"bg+:" + tinted(key, 0, 1.4, 55, pick(p, 18, 85)),
		"fg:" + p.Term[7],
		"fg+:" + tinted(key, 0, 0.3, 20, pick(p, 92, 20)),
	}
	border := tinted(key, 0, 0.7, 0, pick(p, 45, 60))
	parts = append(parts,
		"border:"+border,
		"separator:"+border,
		"header:"+tinted(key, 5, 1.3, 70, pick(p, 75, 40)),
		"info:"+p.Term[4],
		"prompt:"+tinted(key, 0, 1.4, 80, pick(p, 72, 42)),
		"pointer:"+tinted(key, -5, 1.5, 85, pick(p, 78, 38)),
		"marker:"+tinted(key, 15, 1.3, 75, pick(p, 70, 45)),
		"spinner:"+p.Term[5],
		"hl:"+tinted(key, 10, 1.5, 85, pick(p, 80, 35)),
		"hl+:"+tinted(key, 12, 1.6, 90, pick(p, 85, 30)),
		"query:"+p.Term[7],
		"scrollbar:"+tinted(key, 0, 0.5, 0, pick(p, 35, 70)),
		"label:"+tinted(key, -5, 1.2, 65, pick(p, 68, 48)),
	)

	return fmt.Sprintf(`# Auto-generated FZF colors (Material You theme)
# Source this file in your shell config (.bashrc, .zshrc, config.fish, etc.)

export FZF_DEFAULT_OPTS="\
  --color=%s \
  --border=rounded \
  --preview-window=border-rounded \
  --prompt='> ' \
  --pointer='>' \
  --marker='+'"
`, strings.Join(parts, ",")), nil
}
