package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/platform/tui"
	"github.com/vovakirdan/tui-defender/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of defender.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  V                - Watch the replay (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - More lives, slower spawns
  normal  - Default settings
  hard    - Fewer lives, denser spawns
  fixed   - No speed growth over time

Examples:
  defender play
  defender play --difficulty easy
  defender play --seed 42
  defender play --config ./my-defender.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := setupLogger(true)
	if err != nil {
		return err
	}

	game, err := registry.Create(defender.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
