package render

import (
	"context"
	"os/exec"

	"github.com/AvengeMedia/dankwall/internal/log"
	"github.com/AvengeMedia/dankwall/internal/theme"
)

// GitSink applies colors to the user's global git configuration.
// Everything here is best effort: a missing git binary or a failed
// config write must never fail palette generation.
type GitSink interface {
	SetConfig(ctx context.Context, key, value string) error
}

// ExecGitSink shells out to git.
type ExecGitSink struct{}

func (ExecGitSink) SetConfig(ctx context.Context, key, value string) error {
	return exec.CommandContext(ctx, "git", "config", "--global", key, value).Run()
}

// ConfigureGitColors aligns git's diff and status colors with the
// lazygit theme so plain `git diff` matches the UI.
func ConfigureGitColors(ctx context.Context, sink GitSink, p *theme.Palette) {
	c, err := LazygitPalette(p)
	if err != nil {
		log.Warnf("deriving git diff colors: %v", err)
		return
	}

	settings := []struct{ key, value string }{
		{"color.diff.old", c.UnstagedChanges},
		{"color.diff.new", c.StagedChanges},
		{"color.diff.meta", p.Term[4]},
		{"color.diff.frag", p.Term[4]},
		{"color.diff.commit", p.Term[5]},
		{"color.diff-highlight.oldNormal", c.UnstagedChanges},
		{"color.diff-highlight.newNormal", c.StagedChanges},
		{"color.status.added", c.StagedChanges},
		{"color.status.deleted", c.UnstagedChanges},
		{"color.status.changed", p.Term[4]},
	}
	for _, s := range settings {
		if err := sink.SetConfig(ctx, s.key, s.value); err != nil {
			log.Warnf("setting %s: %v", s.key, err)
			return
		}
	}
	log.Debug("git diff colors configured")
}
