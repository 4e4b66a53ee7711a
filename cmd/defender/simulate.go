package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

var (
	flagSimTicks int
	flagSimSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot run",
	Long: `Run the simulation without a terminal UI, steered by a simple autopilot
that lines up under the closest hazard and keeps firing. The run ends when
the ship is destroyed or after --ticks ticks.

Useful for checking a config or a difficulty preset. Use --log-level debug
to see every simulation event.

Examples:
  defender simulate --seed 42
  defender simulate --ticks 36000 --difficulty hard
  defender simulate --save --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3*60*60, "Maximum number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the run, score and replay to the database")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, err := setupLogger(false)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	game := defender.New()
	game.Reset(cfg)
	logger.Info("simulating", "seed", cfg.Seed, "max_ticks", flagSimTicks)

	var state core.GameState
	for tick := 0; tick < flagSimTicks && !state.GameOver; tick++ {
		state = game.Step(defender.Autopilot(game.Sim())).State
	}

	sum := game.RunSummary()
	fmt.Printf("Score:     %d\n", sum.Score)
	fmt.Printf("Level:     %d\n", sum.Level)
	fmt.Printf("Missions:  %d/%d\n", sum.MissionsCompleted, sum.MissionsTotal)
	fmt.Printf("Survived:  %s\n", formatDuration(sum.SecondsSurvived))
	fmt.Printf("Destroyed: %v\n", state.GameOver)
	fmt.Printf("Replay:    %v\n", sum.ReplayAvailable)

	if !flagSimSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if sum.Score > 0 {
		if _, err := store.SaveScore(defender.ID, sum.Score); err != nil {
			return err
		}
	}
	runID, err := store.SaveRun(storage.RunRecord{
		GameID:            defender.ID,
		Score:             sum.Score,
		Level:             sum.Level,
		MissionsCompleted: sum.MissionsCompleted,
		MissionsTotal:     sum.MissionsTotal,
		Seconds:           sum.SecondsSurvived,
		EasterEgg:         sum.EasterEgg,
	})
	if err != nil {
		return err
	}
	logger.Info("saved run", "run", runID)

	if !sum.ReplayAvailable {
		return nil
	}
	data, err := game.ReplayData()
	if err != nil {
		return err
	}
	if _, err := store.SaveReplay(defender.ID, runID, sum.Score, data); err != nil {
		return err
	}
	logger.Info("saved replay", "run", runID, "bytes", len(data))
	return nil
}
