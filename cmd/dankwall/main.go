package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankwall/internal/log"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "dankwall",
	Short:   "Material You palettes from your wallpaper",
	Long:    "Derives a Material You color scheme from a wallpaper or accent color,\nharmonizes the 16 terminal slots toward it, and renders per-application themes.",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebug(true)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
