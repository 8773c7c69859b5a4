package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/float-runner/internal/core"
	"github.com/vovakirdan/float-runner/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Up/W or hold mouse/touch  - Float
  Enter or click                  - Start
  P/Esc                           - Pause
  R                               - Restart
  1/2/3                           - Select difficulty
  Q                               - Quit

Examples:
  runner window
  runner window --scale 1.5 --difficulty medium`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (default from config)")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	if flagScale <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --scale must be positive")
		os.Exit(1)
	}

	opts := window.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  int(cfg.World.CanvasWidth * flagScale),
			ScreenH:  int(cfg.World.CanvasHeight * flagScale),
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: flagDifficulty,
		Logger:     logger,
	}

	store := openStore(logger)
	if store != nil {
		opts.Store = store
	}

	runErr := window.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
