package render

import (
	"fmt"
	"path/filepath"

	"github.com/AvengeMedia/dankwall/internal/theme"
)

// Lazygit renders a lazygit config.yml whose UI colors are all drawn
// from the accent hue family.
type Lazygit struct{}

func (Lazygit) Name() string { return "lazygit" }

func (Lazygit) DefaultPath() string {
	return filepath.Join(configHome(), "lazygit", "config.yml")
}

// LazygitColors is the derived color set, exported so the git diff
// configuration can reuse the staged/unstaged pair.
type LazygitColors struct {
	SelectedLineBg  string
	SelectedRangeBg string
	InactiveBorder  string
	ActiveBorder    string
	OptionsText     string
	DefaultFg       string
	CherryPickedBg  string
	CherryPickedFg  string
	UnstagedChanges string
	StagedChanges   string
	SearchMatching  string
}

// LazygitPalette derives the lazygit colors from the primary key color.
func LazygitPalette(p *theme.Palette) (LazygitColors, error) {
	key, err := accentKey(p)
	if err != nil {
		return LazygitColors{}, err
	}
	return LazygitColors{
		SelectedLineBg:  tinted(key, 0, 1.6, 65, pick(p, 15, 88)),
		SelectedRangeBg: tinted(key, 0, 1.5, 60, pick(p, 22, 82)),
		InactiveBorder:  tinted(key, 0, 0.6, 0, pick(p, 40, 55)),
		ActiveBorder:    tinted(key, 0, 1.5, 85, pick(p, 70, 45)),
		OptionsText:     tinted(key, 5, 1.4, 75, pick(p, 75, 40)),
		DefaultFg:       tinted(key, 0, 0.2, 18, pick(p, 88, 25)),
		CherryPickedBg:  tinted(key, -10, 1.4, 60, pick(p, 32, 78)),
		CherryPickedFg:  fixed(key, -10, 12, pick(p, 90, 20)),
		UnstagedChanges: tinted(key, -12, 0.8, 45, pick(p, 58, 52)),
		StagedChanges:   tinted(key, 25, 0.9, 48, pick(p, 62, 48)),
		SearchMatching:  tinted(key, 8, 1.2, 65, pick(p, 72, 55)),
	}, nil
}

func (Lazygit) Render(p *theme.Palette) (string, error) {
	c, err := LazygitPalette(p)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`# Auto-generated LazyGit theme colors
gui:
  theme:
    activeBorderColor:
      - "%s"
      - bold
    inactiveBorderColor:
      - "%s"
    optionsTextColor:
      - "%s"
    selectedLineBgColor:
      - "%s"
    selectedRangeBgColor:
      - "%s"
    cherryPickedCommitBgColor:
      - "%s"
    cherryPickedCommitFgColor:
      - "%s"
    unstagedChangesColor:
      - "%s"
    defaultFgColor:
      - "%s"
    searchingActiveBorderColor:
      - "%s"

  nerdFontsVersion: "3"
  showFileTree: true
  showRandomTip: false

# Git diff settings with custom colors
git:
  paging:
    colorArg: always
    useConfig: false
    # Using delta for better diff rendering
    pager: delta --dark --paging=never --line-numbers --minus-style='syntax "%s"' --minus-emph-style='syntax "%s"' --plus-style='syntax "%s"' --plus-emph-style='syntax "%s"' --hunk-header-style='file line-number syntax'
`,
		c.ActiveBorder, c.InactiveBorder, c.OptionsText, c.SelectedLineBg,
		c.SelectedRangeBg, c.CherryPickedBg, c.CherryPickedFg,
		c.UnstagedChanges, c.DefaultFg, c.SearchMatching,
		c.UnstagedChanges, c.UnstagedChanges, c.StagedChanges, c.StagedChanges), nil
}
