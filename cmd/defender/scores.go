package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRuns  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run history",
	Long: `Display the top scores, overall stats and optionally the most recent runs.

Examples:
  defender scores
  defender scores --limit 20
  defender scores --runs
  defender scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "Also list the most recent runs")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores, runs and replays")
}

func runScores(_ *cobra.Command, _ []string) error {
	if _, err := setupLogger(false); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(defender.ID); err != nil {
			return err
		}
		fmt.Println("All scores, runs and replays deleted.")
		return nil
	}

	scores, err := store.TopScores(defender.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Defender")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'defender play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(defender.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Average: %.0f  Best level: %d\n", stats.HighScore, stats.AvgScore, stats.BestLevel)
	fmt.Printf("Missions completed: %d  Time played: %s  Secret runs: %d\n",
		stats.MissionsCompleted, formatDuration(stats.TotalSeconds), stats.EasterEggRuns)

	if !flagScoresRuns {
		return nil
	}

	runs, err := store.RecentRuns(defender.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent Runs")
	fmt.Println()
	fmt.Printf("  %-6s  %-10s  %-5s  %-8s  %-6s  %s\n", "Run", "Score", "Level", "Missions", "Time", "Date")
	fmt.Printf("  %-6s  %-10s  %-5s  %-8s  %-6s  %s\n", "---", "-----", "-----", "--------", "----", "----")
	for _, run := range runs {
		missions := fmt.Sprintf("%d/%d", run.MissionsCompleted, run.MissionsTotal)
		fmt.Printf("  %-6d  %-10d  %-5d  %-8s  %-6s  %s\n",
			run.ID, run.Score, run.Level, missions, formatDuration(run.Seconds),
			run.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// formatDuration renders whole seconds as m:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
