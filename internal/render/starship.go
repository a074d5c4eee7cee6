package render

import (
	"fmt"
	"path/filepath"

	"github.com/AvengeMedia/dankwall/internal/theme"
)

// Starship renders a starship.toml prompt config. Every segment color
// is the accent hue rotated by a fixed offset, so the prompt stays in
// one color family while keeping states distinguishable.
type Starship struct{}

func (Starship) Name() string { return "starship" }

func (Starship) DefaultPath() string {
	return filepath.Join(configHome(), "starship.toml")
}

func (Starship) Render(p *theme.Palette) (string, error) {
	key, err := accentKey(p)
	if err != nil {
		return "", err
	}

	directory := tinted(key, 0, 1.4, 80, pick(p, 75, 40))
	gitBranch := tinted(key, -10, 1.3, 75, pick(p, 72, 42))
	gitAdded := tinted(key, 140, 1.3, 75, pick(p, 70, 45))
	gitDeleted := tinted(key, 200, 1.3, 75, pick(p, 70, 45))
	success := tinted(key, 140, 1.3, 75, pick(p, 72, 42))
	errColor := tinted(key, 200, 1.4, 80, pick(p, 72, 42))
	python := tinted(key, 25, 1.3, 75, pick(p, 70, 45))
	nodejs := tinted(key, 140, 1.2, 70, pick(p, 68, 47))
	rust := tinted(key, 20, 1.4, 80, pick(p, 73, 43))
	golang := tinted(key, 150, 1.3, 75, pick(p, 70, 45))
	username := tinted(key, 5, 1.3, 75, pick(p, 73, 43))
	hostname := tinted(key, 10, 1.2, 70, pick(p, 70, 45))
	charSuccess := tinted(key, 0, 1.5, 85, pick(p, 78, 38))
	duration := tinted(key, 30, 1.2, 70, pick(p, 68, 47))
	docker := tinted(key, 160, 1.3, 75, pick(p, 70, 45))

	return fmt.Sprintf(`# Auto-generated Starship configuration (Material You theme)
add_newline = false

format = """
[$cmd_duration](fg:%[1]s)[$username$hostname](fg:%[2]s)[$directory](fg:%[3]s) [$git_branch](fg:%[4]s)
[$character](fg:%[5]s)"""

right_format = """$time"""

[character]
success_symbol = "[>](bold fg:%[5]s)"
error_symbol = "[x](bold fg:%[6]s)"

[package]
disabled = true

[git_branch]
style = "bold bg:%[4]s fg:black"
truncation_length = 12
truncation_symbol = ""
format = "[ $symbol$branch(:$remote_branch) ]($style)"

[git_commit]
commit_hash_length = 4

[git_state]
format = '[\($state( $progress_current of $progress_total)\)]($style) '

[git_metrics]
disabled = false
added_style = "%[7]s"
deleted_style = "%[8]s"
format = "([+$added]($added_style) )([-$deleted]($deleted_style) )"

[hostname]
ssh_only = false
format = "[ $hostname ](bg:%[15]s bold fg:black)"
disabled = false

[line_break]
disabled = false

[memory_usage]
disabled = true
threshold = -1
style = "bold dimmed green"

[time]
disabled = true
time_format = "%%T"

[username]
style_user = "bold bg:%[2]s fg:black"
style_root = "red bold"
format = "[ $user ]($style)"
disabled = false
show_always = true

[directory]
style = "bold bg:%[3]s fg:black"
truncation_length = 6
format = '[ $path ]($style)[$read_only]($style)'

[cmd_duration]
min_time = 0
format = '[ $duration ](bold bg:%[1]s fg:black)'

[python]
style = "bold bg:%[9]s fg:black"
format = '[ $symbol$version(\($virtualenv\)) ]($style)'

[nodejs]
style = "bold bg:%[10]s fg:black"
format = '[ $symbol$version ]($style)'

[rust]
style = "bold bg:%[11]s fg:black"
format = '[ $symbol$version ]($style)'

[golang]
style = "bold bg:%[12]s fg:black"
format = '[ $symbol$version ]($style)'

[docker_context]
style = "bold bg:%[13]s fg:black"
format = '[ $symbol$context ]($style)'
only_with_files = true

[[battery.display]]
threshold = 10
style = "bold %[6]s"

[[battery.display]]
threshold = 30
style = "%[1]s"

[[battery.display]]
threshold = 100
style = "%[14]s"

[jobs]
style = "bold bg:%[1]s fg:black"
number_threshold = 1
format = "[ $symbol$number ]($style)"
`,
		duration, username, directory, gitBranch, charSuccess, errColor,
		gitAdded, gitDeleted, python, nodejs, rust, golang, docker,
		success, hostname), nil
}
