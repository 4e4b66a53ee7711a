package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender/sim"
	"github.com/vovakirdan/tui-defender/internal/registry"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

// keepReplays is the number of replays kept per game in the database.
const keepReplays = 20

// logger receives storage failures. Interactive play must never write to
// the terminal it draws on, so it discards by default.
var logger = log.New(io.Discard)

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// GameModel is the Bubble Tea model for playing a game.
// It owns the tick loop, key repeat handling, persistence of finished runs
// and an embedded replay viewer for the last run.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	secret    *core.SequenceDetector

	held      map[core.Action]int // Ticks left for held actions
	pending   core.InputFrame     // One-shot actions for the next tick
	gameState core.GameState

	replayData []byte // Encoded replay of the last finished run
	replay     *ReplayModel
	ticking    bool // Whether a game tick is in flight

	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the finished run has been persisted
	newRecord  bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		secret:    core.NewSequenceDetector(core.KonamiSequence),
		held:      make(map[core.Action]int),
		pending:   core.NewInputFrame(),
		ticking:   true,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.startRun()
	return tickCmd(m.config.TickRate)
}

// startRun resets the game and tells it the record to beat.
func (m *GameModel) startRun() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.newRecord = false
	m.replayData = nil
	m.ticking = true
	clear(m.held)
	m.pending.Clear()
	m.secret.Reset()

	rec, ok := m.game.(registry.Recorded)
	if !ok || m.store == nil {
		return
	}
	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		logger.Warn("cannot load high score", "game", m.game.ID(), "error", err)
		return
	}
	rec.SetHighScore(high)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.replay != nil {
		return m.updateReplay(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The field is scaled to the screen, so a resize keeps the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// updateReplay forwards messages to the replay viewer until it is closed.
func (m GameModel) updateReplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		// Let the game tick chain lapse while the replay runs.
		m.ticking = false
		return m, nil
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	}

	updated, cmd := m.replay.Update(msg)
	if rm, ok := updated.(ReplayModel); ok {
		m.replay = &rm
	}

	if m.replay.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.replay.Done() {
		m.replay = nil
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.config.TickRate)
		}
		return m, nil
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.secret.Feed(key) {
		m.pending.Set(core.ActionEasterEgg)
	}

	switch key {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "v":
		if m.gameState.GameOver && m.replayData != nil {
			return m.openReplay()
		}
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.pending.Set(core.ActionPause)
	case action == core.ActionLeft:
		delete(m.held, core.ActionRight)
		m.held[action] = holdTicks
	case action == core.ActionRight:
		delete(m.held, core.ActionLeft)
		m.held[action] = holdTicks
	case IsHeld(action):
		m.held[action] = holdTicks
	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// openReplay switches to the replay viewer for the finished run.
func (m GameModel) openReplay() (tea.Model, tea.Cmd) {
	r, err := sim.DecodeReplay(m.replayData)
	if err != nil {
		logger.Warn("cannot open replay", "error", err)
		return m, nil
	}
	rm := NewReplayModel(r, m.config.ScreenW, m.config.ScreenH, sim.DefaultPlaybackFPS)
	m.replay = &rm
	return m, rm.Init()
}

// frame builds the input for the next tick and ages held actions.
func (m *GameModel) frame() core.InputFrame {
	in := m.pending.Clone()
	for a, left := range m.held {
		in.Set(a)
		if left <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = left - 1
		}
	}
	return in
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	in := m.frame()
	m.pending.Clear()

	// A fresh seed per restart
	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.startRun()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the score, the run summary and the replay of a finished run.
func (m *GameModel) saveRun() {
	gameID := m.game.ID()
	rec, recorded := m.game.(registry.Recorded)
	if recorded {
		m.newRecord = rec.NewHighScore()
		sum := rec.RunSummary()
		loadInstruments().runs.Add(context.Background(), 1, metric.WithAttributes(
			attribute.String("game", gameID),
			attribute.Int("level", sum.Level),
			attribute.Bool("easter_egg", sum.EasterEgg),
		))
		if sum.ReplayAvailable {
			data, err := rec.ReplayData()
			if err != nil {
				logger.Warn("cannot encode replay", "game", gameID, "error", err)
			} else {
				m.replayData = data
			}
		}
	}

	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(gameID, m.gameState.Score); err != nil {
			logger.Warn("cannot save score", "game", gameID, "error", err)
		}
	}
	if !recorded {
		return
	}

	sum := rec.RunSummary()
	runID, err := m.store.SaveRun(storage.RunRecord{
		GameID:            gameID,
		Score:             sum.Score,
		Level:             sum.Level,
		MissionsCompleted: sum.MissionsCompleted,
		MissionsTotal:     sum.MissionsTotal,
		Seconds:           sum.SecondsSurvived,
		EasterEgg:         sum.EasterEgg,
	})
	if err != nil {
		logger.Warn("cannot save run", "game", gameID, "error", err)
		return
	}

	if m.replayData == nil {
		return
	}
	if _, err := m.store.SaveReplay(gameID, runID, sum.Score, m.replayData); err != nil {
		logger.Warn("cannot save replay", "game", gameID, "error", err)
		return
	}
	loadInstruments().replays.Add(context.Background(), 1, metric.WithAttributes(attribute.String("game", gameID)))
	if n, err := m.store.PruneReplays(gameID, keepReplays); err != nil {
		logger.Warn("cannot prune replays", "game", gameID, "error", err)
	} else if n > 0 {
		logger.Debug("pruned replays", "game", gameID, "count", n)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("cannot save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.replay != nil {
		return m.replay.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// NewRecord reports whether the last finished run set a new high score.
func (m GameModel) NewRecord() bool {
	return m.newRecord
}

// Run starts the Bubble Tea program with the given game.
// It returns when the player quits or goes back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
