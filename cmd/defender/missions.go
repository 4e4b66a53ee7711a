package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/games/defender/sim"
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List the missions of a run",
	Long: `List the missions in the order they become current, as loaded from the
active config (--config and --difficulty apply).

Examples:
  defender missions
  defender missions --config ./my-defender.yaml`,
	Args: cobra.NoArgs,
	RunE: runMissions,
}

func runMissions(_ *cobra.Command, _ []string) error {
	if _, err := setupLogger(false); err != nil {
		return err
	}

	cfg := defender.LoadConfig()

	fmt.Println("Missions - Defender")
	fmt.Println()
	fmt.Printf("  %-3s  %-22s  %-10s  %6s  %6s  %s\n", "#", "Title", "Kind", "Target", "Reward", "Description")
	fmt.Printf("  %-3s  %-22s  %-10s  %6s  %6s  %s\n", "-", "-----", "----", "------", "------", "-----------")
	for i, m := range cfg.Missions {
		fmt.Printf("  %-3d  %-22s  %-10s  %6d  %6d  %s\n", i+1, m.Title, m.Kind, m.Target, m.Reward, m.Description)
	}

	fmt.Println()
	fmt.Printf("Lives: %d  Boss: from level %d after %ds\n",
		cfg.Player.Lives, cfg.Boss.MinLevel, cfg.Boss.SpawnAfterTicks/sim.TicksPerSecond)
	return nil
}
