package main

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankwall/internal/engine"
	"github.com/AvengeMedia/dankwall/internal/log"
	"github.com/AvengeMedia/dankwall/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a palette and render application themes",
	Long:  "Generate the canonical palette from a wallpaper image or an explicit accent color,\ncache it, and render the selected application themes",
	Run:   runGenerate,
}

func init() {
	generateCmd.Flags().String("image", "", "Generate the palette from this image")
	generateCmd.Flags().String("color", "", "Generate the palette from this hex color")
	generateCmd.Flags().String("mode", "dark", "dark or light mode")
	generateCmd.Flags().String("scheme", "vibrant", "Material scheme variant")
	generateCmd.Flags().Bool("smart", false, "Pick the scheme based on the image's chroma")
	generateCmd.Flags().String("transparency", "opaque", "opaque or transparent")
	generateCmd.Flags().Int("size", 128, "Quantizer bitmap size")
	generateCmd.Flags().Float64("harmony", 0.8, "(0-1) color hue shift towards the accent")
	generateCmd.Flags().Float64("harmonize-threshold", 100, "(0-180) max hue rotation in degrees")
	generateCmd.Flags().Float64("term-fg-boost", 0.35, "Push terminal foreground away from the background")
	generateCmd.Flags().Bool("blend-bg-fg", false, "Tie terminal background and foreground to the accent surfaces")
	generateCmd.Flags().String("termscheme", "", "JSON file with the terminal source palette")
	generateCmd.Flags().String("cache-dir", "", "Palette cache directory (default ~/.cache/dankwall)")
	generateCmd.Flags().Bool("configure-git", false, "Also align global git diff colors")

	generateCmd.Flags().Bool("generate-all", false, "Render every application theme")
	for _, r := range render.All() {
		generateCmd.Flags().Bool("generate-"+r.Name(), false, "Render the "+r.Name()+" theme")
		generateCmd.Flags().String(r.Name()+"-output", "", "Custom output path for the "+r.Name()+" theme")
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg := engine.DefaultConfig()

	cfg.Image, _ = cmd.Flags().GetString("image")
	cfg.Color, _ = cmd.Flags().GetString("color")
	if cfg.Color != "" && !strings.HasPrefix(cfg.Color, "#") {
		cfg.Color = "#" + cfg.Color
	}

	mode, _ := cmd.Flags().GetString("mode")
	cfg.Dark = mode != "light"
	cfg.Scheme, _ = cmd.Flags().GetString("scheme")
	cfg.Smart, _ = cmd.Flags().GetBool("smart")
	transparency, _ := cmd.Flags().GetString("transparency")
	cfg.Transparent = transparency == "transparent"
	cfg.Size, _ = cmd.Flags().GetInt("size")
	cfg.Harmony, _ = cmd.Flags().GetFloat64("harmony")
	cfg.Threshold, _ = cmd.Flags().GetFloat64("harmonize-threshold")
	cfg.FgBoost, _ = cmd.Flags().GetFloat64("term-fg-boost")
	cfg.BlendBgFg, _ = cmd.Flags().GetBool("blend-bg-fg")
	cfg.TermScheme, _ = cmd.Flags().GetString("termscheme")
	cfg.ConfigureGit, _ = cmd.Flags().GetBool("configure-git")

	if dir, _ := cmd.Flags().GetString("cache-dir"); dir != "" {
		cfg.CacheDir = dir
	}

	cfg.RenderAll, _ = cmd.Flags().GetBool("generate-all")
	cfg.OutputPaths = map[string]string{}
	for _, r := range render.All() {
		if on, _ := cmd.Flags().GetBool("generate-" + r.Name()); on {
			cfg.Targets = append(cfg.Targets, r.Name())
		}
		if path, _ := cmd.Flags().GetString(r.Name() + "-output"); path != "" {
			cfg.OutputPaths[r.Name()] = path
		}
	}

	p, err := engine.Run(cmd.Context(), afero.NewOsFs(), cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("palette generated: accent %s (%s, %s)", p.Accent, p.Mode, p.Scheme)
}
