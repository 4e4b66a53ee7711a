// Package defender adapts the defender simulation to the arcade platform.
// The simulation runs on a virtual field that is scaled onto the terminal;
// this package maps platform input to intents, turns simulation events into
// on-screen notifications and draws the HUD and overlays.
package defender

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender/sim"
	"github.com/vovakirdan/tui-defender/internal/registry"
)

// ID is the registry and score storage identifier.
const ID = "defender"

// maxToasts is the number of notifications shown at once.
const maxToasts = 3

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation events and run summaries.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig resolves the configuration the same way Reset does.
func LoadConfig() config.DefenderConfig {
	cfg, err := config.LoadDefender(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultDefenderConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDefenderPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// toast is a notification waiting to be dismissed.
type toast struct {
	text  string
	color core.Color
	until int // Simulation tick at which it disappears
}

// Game is the defender game for the arcade platform.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.DefenderConfig
	sim     *sim.State

	paused    bool
	toasts    []toast
	highScore int
	reported  bool // Whether the end of the run was logged

	screenTooSmall bool
}

// New creates a new defender game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Defender"
}

// Reset starts a new run with a fresh configuration.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()
	g.sim = sim.New(g.cfg, sim.Options{Seed: runtime.Seed})
	g.paused = false
	g.toasts = nil
	g.reported = false
	g.checkScreen(runtime.ScreenW, runtime.ScreenH)

	logger.Debug("run started",
		"seed", runtime.Seed,
		"field", [2]float64{g.cfg.Field.Width, g.cfg.Field.Height},
		"lives", g.cfg.Player.Lives,
		"preset", string(difficultyPreset),
	)
}

// checkScreen records whether the terminal can hold the field.
func (g *Game) checkScreen(w, h int) {
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(g.runtime)
	}

	if g.sim.Over {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.Step(sim.Input{
		Left:      in.Has(core.ActionLeft),
		Right:     in.Has(core.ActionRight),
		Fire:      in.Has(core.ActionFire),
		EasterEgg: in.Has(core.ActionEasterEgg),
	})

	messages := g.collectEvents()
	g.expireToasts()

	if g.sim.Over && !g.reported {
		g.reported = true
		sum := g.sim.Summary()
		logger.Info("run over",
			"score", sum.Score,
			"level", sum.Level,
			"missions", sum.MissionsCompleted,
			"seconds", sum.SecondsSurvived,
			"replay", sum.ReplayAvailable,
			"high_score", sum.Score > g.highScore,
		)
	}

	return core.StepResult{State: g.State(), Messages: messages}
}

// collectEvents drains the simulation queue into toasts.
func (g *Game) collectEvents() []string {
	events := g.sim.DrainEvents()
	if len(events) == 0 {
		return nil
	}

	messages := make([]string, 0, len(events))
	for _, e := range events {
		logger.Debug("event", "kind", e.Kind, "message", e.Message, "tick", e.Tick)
		messages = append(messages, e.Message)

		// The end screen replaces the run-over banner.
		if e.Kind == sim.EventRunOver {
			continue
		}
		g.toasts = append(g.toasts, toast{
			text:  e.Message,
			color: e.Color,
			until: e.Tick + int(e.Dismiss.Seconds()*sim.TicksPerSecond),
		})
	}
	if len(g.toasts) > maxToasts {
		g.toasts = g.toasts[len(g.toasts)-maxToasts:]
	}
	return messages
}

// expireToasts drops notifications whose time is up.
func (g *Game) expireToasts() {
	kept := g.toasts[:0]
	for _, t := range g.toasts {
		if t.until > g.sim.Tick {
			kept = append(kept, t)
		}
	}
	g.toasts = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score,
		Lives:    max(g.sim.Lives, 0),
		Level:    g.sim.Level,
		GameOver: g.sim.Over,
		Paused:   g.paused,
	}
}

// SetHighScore sets the best stored score, used for the new-record flag.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// NewHighScore reports whether the finished run beat the stored best.
func (g *Game) NewHighScore() bool {
	return g.sim != nil && g.sim.Over && g.sim.Score > g.highScore
}

// Sim exposes the running simulation.
func (g *Game) Sim() *sim.State {
	return g.sim
}

// Summary returns the summary of the current run.
func (g *Game) Summary() sim.Summary {
	if g.sim == nil {
		return sim.Summary{}
	}
	return g.sim.Summary()
}

// ReplayData encodes the recording of the current run.
func (g *Game) ReplayData() ([]byte, error) {
	return sim.EncodeReplay(sim.NewReplay(g.sim, g.runtime.Seed))
}

// RunSummary implements registry.Recorded.
func (g *Game) RunSummary() registry.RunSummary {
	sum := g.Summary()
	return registry.RunSummary{
		Score:             sum.Score,
		Level:             sum.Level,
		MissionsCompleted: sum.MissionsCompleted,
		MissionsTotal:     sum.MissionsTotal,
		SecondsSurvived:   sum.SecondsSurvived,
		EasterEgg:         sum.EasterEgg,
		ReplayAvailable:   sum.ReplayAvailable,
	}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
