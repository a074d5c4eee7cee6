package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankwall/internal/log"
	"github.com/AvengeMedia/dankwall/internal/scheme"
	"github.com/AvengeMedia/dankwall/internal/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the cached palette as color swatches",
	Run:   runPreview,
}

func init() {
	previewCmd.Flags().String("cache-dir", "", "Palette cache directory (default ~/.cache/dankwall)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) {
	dir, _ := cmd.Flags().GetString("cache-dir")
	if dir == "" {
		dir = theme.DefaultCacheDir()
	}

	p, err := theme.Load(afero.NewOsFs(), dir)
	if err != nil {
		log.Fatalf("no cached palette: %v (run \"dankwall generate\" first)", err)
	}

	title := lipgloss.NewStyle().Bold(true)
	fmt.Printf("%s %s (%s, %s)\n\n", title.Render("accent"), swatch(p.Accent), p.Mode, p.Scheme)

	fmt.Println(title.Render("terminal"))
	var row strings.Builder
	for i, v := range p.Term {
		row.WriteString(swatch(v))
		row.WriteByte(' ')
		if i == 7 {
			row.WriteByte('\n')
		}
	}
	fmt.Println(row.String())

	fmt.Println(title.Render("scheme"))
	m := p.Colors.Map()
	for _, role := range scheme.RoleNames() {
		fmt.Printf("%-32s %s %s\n", role, swatch(m[role]), m[role])
	}
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
}
