package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AvengeMedia/dankwall/internal/theme"
)

// Waybar renders a waybar style.css in a boxed TUI aesthetic: every
// module gets a thin border in its own role color over a translucent
// surface.
type Waybar struct{}

func (Waybar) Name() string { return "waybar" }

func (Waybar) DefaultPath() string {
	return filepath.Join(configHome(), "waybar", "style.css")
}

func (Waybar) Render(p *theme.Palette) (string, error) {
	primary := p.Colors.Primary
	surface := p.Colors.Surface
	onSurface := p.Colors.OnSurface
	onSurfaceVariant := p.Colors.OnSurfaceVariant
	secondary := p.Colors.Secondary
	tertiary := p.Colors.Tertiary
	errColor := p.Colors.Error
	success := p.Colors.Success
	warning := p.Term[3]

	var b strings.Builder
	fmt.Fprintf(&b, `/* Material You Waybar Theme - Refined TUI */
/* Primary: %s | Surface: %s */

* {
  font-family: "JetBrainsMono Nerd Font", "Iosevka Nerd Font", "FiraCode Nerd Font";
  font-size: 14px;
  font-weight: 500;
  border: none;
  border-radius: 0;
  min-height: 0;
}

window#waybar {
  background: transparent;
  color: %s;
  border: none;
  transition: all 0.2s ease;
}

#workspaces {
  margin: 2px 0;
  padding: 0 6px;
}

#workspaces button {
  padding: 1px 8px;
  margin: 2px 1px;
  color: %s;
  background: transparent;
  border: 1px solid %s;
  transition: all 0.15s ease;
  font-family: monospace;
  min-width: 20px;
  font-size: 11px;
}

#workspaces button.active {
  color: %s;
  background: %s;
  border: 1px solid %s;
  font-weight: 600;
}

#workspaces button:hover {
  background: %s;
  color: %s;
  border: 1px solid %s;
}

#workspaces button.urgent {
  color: %s;
  background: %s;
  border: 1px solid %s;
  font-weight: 600;
}
`,
		primary, surface,
		onSurface,
		rgba(onSurfaceVariant, 0.6), rgba(onSurfaceVariant, 0.3),
		primary, rgba(surface, 0.6), rgba(primary, 0.6),
		rgba(surface, 0.4), onSurfaceVariant, rgba(onSurfaceVariant, 0.4),
		errColor, rgba(surface, 0.6), rgba(errColor, 0.6))

	fmt.Fprintf(&b, `
#window {
  padding: 0 10px;
  margin: 0;
  color: %s;
  font-weight: 400;
  font-family: "Iosevka Nerd Font", monospace;
  font-size: 11px;
}

#window.empty {
  padding: 0;
  margin: 0;
}

#clock {
  padding: 1px 12px;
  margin: 2px 4px;
  background: %s;
  color: %s;
  font-weight: 600;
  border: 1px solid %s;
  font-family: monospace;
  letter-spacing: 0.3px;
  font-size: 11px;
}

#clock:hover {
  background: %s;
  border-color: %s;
}

#cpu,
#memory,
#temperature,
#disk,
#backlight,
#battery {
  padding: 1px 8px;
  margin: 2px 1px;
  background: %s;
  color: %s;
  border: 1px solid %s;
  transition: all 0.15s ease;
  font-size: 11px;
}

#cpu {
  border-color: %s;
}

#cpu.critical {
  color: %s;
  border-color: %s;
  background: %s;
  font-weight: 600;
}

#memory {
  border-color: %s;
}

#memory.critical {
  color: %s;
  border-color: %s;
  background: %s;
  font-weight: 600;
}

#temperature {
  border-color: %s;
}

#temperature.critical {
  background: %s;
  color: %s;
  border-color: %s;
  font-weight: 600;
}

#backlight {
  border-color: %s;
}
`,
		rgba(onSurfaceVariant, 0.6),
		rgba(surface, 0.6), primary, rgba(primary, 0.5),
		rgba(surface, 0.8), rgba(primary, 0.7),
		rgba(surface, 0.5), onSurfaceVariant, rgba(onSurfaceVariant, 0.4),
		rgba(secondary, 0.4),
		errColor, rgba(errColor, 0.6), rgba(surface, 0.65),
		rgba(tertiary, 0.4),
		errColor, rgba(errColor, 0.6), rgba(surface, 0.65),
		rgba(success, 0.4),
		rgba(surface, 0.65), errColor, rgba(errColor, 0.6),
		rgba(warning, 0.4))

	fmt.Fprintf(&b, `
#network {
  padding: 1px 8px;
  margin: 2px 1px;
  background: %s;
  color: %s;
  border: 1px solid %s;
  transition: all 0.15s ease;
  font-size: 11px;
}

#network.ethernet {
  border-color: %s;
  color: %s;
}

#network.wifi {
  border-color: %s;
  color: %s;
}

#network.disconnected {
  color: %s;
  background: %s;
  border-color: %s;
}

#bluetooth {
  padding: 1px 8px;
  margin: 2px 1px;
  background: %s;
  color: %s;
  border: 1px solid %s;
  font-size: 11px;
}

#bluetooth.connected {
  color: %s;
  border-color: %s;
}

#pulseaudio {
  padding: 1px 8px;
  margin: 2px 1px;
  background: %s;
  color: %s;
  border: 1px solid %s;
  transition: all 0.15s ease;
  font-size: 11px;
}

#pulseaudio.muted {
  color: %s;
  background: %s;
  border-color: %s;
}

#battery.charging,
#battery.plugged {
  color: %s;
  border-color: %s;
}

#battery.critical:not(.charging) {
  color: %s;
  background: %s;
  border-color: %s;
  font-weight: 600;
}

#tray {
  padding: 1px 6px;
  margin: 2px 1px;
  background: %s;
  border: 1px solid %s;
}

#tray > .needs-attention {
  -gtk-icon-effect: highlight;
  background: %s;
}

#custom-power {
  padding: 1px 8px;
  margin: 2px 2px 2px 1px;
  background: %s;
  color: %s;
  font-size: 12px;
  font-weight: 600;
  border: 1px solid %s;
  transition: all 0.15s ease;
}

tooltip {
  background: %s;
  color: %s;
  border: 1px solid %s;
  border-radius: 0;
  padding: 6px 10px;
  font-family: monospace;
}

tooltip label {
  color: %s;
  font-size: 11px;
}

scrollbar {
  background: transparent;
}

scrollbar slider {
  background: %s;
  border-radius: 0;
  min-width: 2px;
  border: 1px solid %s;
}
`,
		rgba(surface, 0.5), onSurfaceVariant, rgba(onSurfaceVariant, 0.4),
		rgba(success, 0.5), success,
		rgba(secondary, 0.5), secondary,
		errColor, rgba(surface, 0.65), rgba(errColor, 0.6),
		rgba(surface, 0.5), onSurfaceVariant, rgba(onSurfaceVariant, 0.4),
		secondary, rgba(secondary, 0.5),
		rgba(surface, 0.5), onSurfaceVariant, rgba(onSurfaceVariant, 0.4),
		errColor, rgba(surface, 0.65), rgba(errColor, 0.6),
		success, rgba(success, 0.6),
		errColor, rgba(surface, 0.7), rgba(errColor, 0.7),
		rgba(surface, 0.5), rgba(onSurfaceVariant, 0.35),
		rgba(primary, 0.12),
		rgba(surface, 0.6), errColor, rgba(errColor, 0.6),
		rgba(surface, 0.95), onSurface, rgba(primary, 0.5),
		onSurface,
		rgba(primary, 0.3), rgba(primary, 0.5))

	return b.String(), nil
}
