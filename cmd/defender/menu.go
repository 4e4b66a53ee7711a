package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/platform/tui"
	"github.com/vovakirdan/tui-defender/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start defender with the interactive menu",
	Long: `Start defender in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run ends, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select
  Tab          - High scores
  Q            - Quit

Examples:
  defender menu
  defender menu --fps 30
  defender menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := setupLogger(true)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		goBack := true
		switch result.Choice {
		case tui.MenuPlay:
			game, err := registry.Create(defender.ID)
			if err != nil {
				return err
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			goBack, err = tui.Run(game, store, cfg)
			if err != nil {
				logger.Error("game ended with error", "error", err)
			}

		case tui.MenuReplay:
			r, err := tui.LoadLatestReplay(store)
			if err != nil {
				logger.Error("cannot load replay", "error", err)
				continue
			}
			if r == nil {
				continue
			}
			goBack, err = tui.RunReplay(*r, cfg)
			if err != nil {
				logger.Error("replay ended with error", "error", err)
			}

		case tui.MenuScores:
			goBack, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard ended with error", "error", err)
			}

		default:
			return nil
		}

		if !goBack {
			return nil
		}
	}
}
