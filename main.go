package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/obsidian-guide/internal/config"
	"github.com/iburimskiy/obsidian-guide/internal/content"
	"github.com/iburimskiy/obsidian-guide/internal/page"
)

func main() {
	var (
		width       int
		height      int
		particleCnt int
		contentPath string
		ambient     bool
		debug       bool
	)

	root := &cobra.Command{
		Use:   "obsidian-guide",
		Short: "A scrollable guide to the Obsidian note-taking app",
		Long: "obsidian-guide renders the Obsidian marketing/guide page as a desktop\n" +
			"window: a particle-network backdrop, concept and feature cards, the\n" +
			"hotkey table, plugin and theme showcases, and a closing call-to-action.\n" +
			"Sections fade in as they scroll into view.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(debug)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync()

			guide, err := loadGuide(contentPath)
			if err != nil {
				return err
			}

			p := page.New(page.Options{
				Guide:     guide,
				Logger:    logger,
				Width:     width,
				Height:    height,
				Particles: particleCnt,
				Ambient:   ambient,
			})
			defer p.Shutdown()

			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowTitle("Obsidian — A second brain, for you, forever")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}

	root.Flags().IntVar(&width, "width", config.WindowWidth, "window width in pixels")
	root.Flags().IntVar(&height, "height", config.WindowHeight, "window height in pixels")
	root.Flags().IntVar(&particleCnt, "particles", config.ParticleCount, "particle count for the backdrop animation")
	root.Flags().StringVar(&contentPath, "content", "", "path to a guide.yaml overriding the embedded copy")
	root.Flags().BoolVar(&ambient, "ambient", false, "play a quiet ambient drone")
	root.Flags().BoolVar(&debug, "debug", false, "verbose logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func loadGuide(path string) (*content.Guide, error) {
	if path != "" {
		return content.LoadFile(path)
	}
	return content.Load()
}
