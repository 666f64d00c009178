package cmd

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olivierh59500/generative-gallery/internal/gallery"
	"github.com/olivierh59500/generative-gallery/internal/viewer"
)

var runCmd = &cobra.Command{
	Use:   "run [slug]",
	Short: "Open the gallery, optionally straight on one artwork",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := cfg.Start
		if len(args) == 1 {
			start = args[0]
		}
		return runGallery(start)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runGallery(start string) error {
	cfg.Start = start

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	v := viewer.New(cfg, gallery.DefaultCatalog(), gallery.Builtin(cfg, logger), logger)
	logger.Info("Starting gallery",
		zap.String("start", start),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("gallery stopped: %w", err)
	}
	return nil
}
