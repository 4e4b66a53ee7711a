package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/games/defender/sim"
	"github.com/vovakirdan/tui-defender/internal/platform/tui"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

var (
	flagReplayRun   int64
	flagReplayPlain bool
	flagReplayLoop  bool
	flagReplayFPS   int
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Watch a saved replay",
	Long: `Play back the replay of a finished run.

Only runs with at least one epic moment (boss fight, mission completed,
secret mode) keep a replay. The newest replay is shown unless --run picks
a run from 'defender scores --runs'.

Controls:
  Space/P  - Pause
  Esc      - Back
  Q        - Quit

Examples:
  defender replay
  defender replay --run 12
  defender replay --plain --loop`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Int64Var(&flagReplayRun, "run", 0, "Run ID whose replay to show (0 = newest)")
	replayCmd.Flags().BoolVar(&flagReplayPlain, "plain", false, "Print frames to stdout instead of starting the TUI")
	replayCmd.Flags().BoolVar(&flagReplayLoop, "loop", false, "With --plain, loop until interrupted")
	replayCmd.Flags().IntVar(&flagReplayFPS, "playback-fps", 0, "Playback rate in frames per second (0 = from config)")
}

func runReplay(_ *cobra.Command, _ []string) error {
	logger, err := setupLogger(!flagReplayPlain)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := loadReplay(store, flagReplayRun)
	if err != nil {
		return err
	}
	if r == nil {
		fmt.Println("No replay recorded yet.")
		fmt.Println()
		fmt.Println("Play 'defender play' and make it to the boss or finish a mission!")
		return nil
	}
	logger.Debug("loaded replay", "frames", len(r.Frames), "moments", len(r.Moments), "seed", r.Seed)

	cfg := runtimeConfig()
	if flagReplayPlain {
		return playPlain(*r, cfg, logger)
	}

	_, err = tui.RunReplay(*r, cfg)
	return err
}

// loadReplay returns the replay of runID, or the newest one when runID is 0.
func loadReplay(store *storage.Store, runID int64) (*sim.Replay, error) {
	if runID == 0 {
		return tui.LoadLatestReplay(store)
	}

	rec, err := store.ReplayByRun(runID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("run %d has no replay", runID)
	}

	r, err := sim.DecodeReplay(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("replay %d: %w", rec.ID, err)
	}
	return &r, nil
}

// playPlain writes each frame to stdout, redrawing in place.
func playPlain(r sim.Replay, cfg core.RuntimeConfig, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	playback := sim.NewPlayback(r.Frames)
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	shown := 0

	fps := flagReplayFPS
	if fps <= 0 {
		fps = defender.LoadConfig().Replay.PlaybackFPS
	}

	err := playback.Run(ctx, fps, func(f sim.Frame) {
		shown++
		defender.RenderReplay(screen, f, r.Moments, playback.Position(), playback.Len())
		fmt.Fprint(os.Stdout, "\x1b[H\x1b[2J", screen.String())

		if !flagReplayLoop && shown >= playback.Len() {
			cancel()
		}
	})
	fmt.Println()

	if errors.Is(err, context.Canceled) {
		logger.Debug("replay stopped", "frames", shown)
		return nil
	}
	return err
}
