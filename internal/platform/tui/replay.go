package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/games/defender/sim"
)

// ReplayTickMsg advances replay playback. ID ties the tick to the viewer
// that scheduled it, so ticks of a closed viewer are dropped.
type ReplayTickMsg struct {
	ID   int64
	Time time.Time
}

// replayTickCmd schedules the next playback frame.
func replayTickCmd(id int64, fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return ReplayTickMsg{ID: id, Time: t}
	})
}

// ReplayModel plays a recorded run in a loop, independent of any live game.
type ReplayModel struct {
	id       int64
	replay   sim.Replay
	playback *sim.Playback
	frame    sim.Frame
	screen   *core.Screen
	fps      int
	paused   bool
	done     bool
	quitting bool
}

// NewReplayModel creates a viewer for the replay at the given frame rate.
func NewReplayModel(r sim.Replay, width, height, fps int) ReplayModel {
	if fps <= 0 {
		fps = sim.DefaultPlaybackFPS
	}

	m := ReplayModel{
		id:       time.Now().UnixNano(),
		replay:   r,
		playback: sim.NewPlayback(r.Frames),
		screen:   core.NewScreen(width, height),
		fps:      fps,
	}
	m.frame, _ = m.playback.Next()
	return m
}

// Init starts playback.
func (m ReplayModel) Init() tea.Cmd {
	return replayTickCmd(m.id, m.fps)
}

// Update handles messages for the replay viewer.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc", "b", "v", "enter":
			m.done = true
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case ReplayTickMsg:
		if msg.ID != m.id || m.done {
			return m, nil
		}
		if !m.paused {
			if f, ok := m.playback.Next(); ok {
				m.frame = f
			}
		}
		return m, replayTickCmd(m.id, m.fps)
	}

	return m, nil
}

// View renders the current replay frame.
func (m ReplayModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	if m.playback.Len() == 0 {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "Replay is empty")
		return RenderScreen(m.screen)
	}

	defender.RenderReplay(m.screen, m.frame, m.replay.Moments, m.playback.Position(), m.playback.Len())
	return RenderScreen(m.screen)
}

// Done returns true if the viewer was closed.
func (m ReplayModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user requested to quit entirely.
func (m ReplayModel) IsQuitting() bool {
	return m.quitting
}

// RunReplay plays a replay in its own Bubble Tea program.
// It returns true if the viewer was closed to go back rather than quit.
func RunReplay(r sim.Replay, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewReplayModel(r, cfg.ScreenW, cfg.ScreenH, sim.DefaultPlaybackFPS)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ReplayModel)
	if !ok {
		return false, nil
	}
	return m.Done(), nil
}
