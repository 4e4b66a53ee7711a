package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
)

// missionAdvanceDelay is how long a completed mission stays on screen.
const missionAdvanceDelay = 3 * TicksPerSecond

// creditMission adds progress to the current mission if it counts kind.
func (s *State) creditMission(kind string) {
	m := s.CurrentMission()
	if m == nil || m.Completed || m.Kind != kind {
		return
	}
	m.Current++
}

// updateMissions checks the current mission and advances after a completion.
func (s *State) updateMissions() {
	m := s.CurrentMission()
	if m == nil {
		return
	}

	if s.advanceCounter > 0 {
		s.advanceCounter--
		if s.advanceCounter == 0 {
			s.advanceMission()
		}
		return
	}
	if m.Completed {
		return
	}

	s.survivalTicks++
	if m.Kind == config.MissionSurvival {
		m.Current = s.survivalTicks / TicksPerSecond
	}

	if m.Current >= m.Target {
		s.completeMission(m)
	}
}

// completeMission freezes the mission and pays its reward.
func (s *State) completeMission(m *Mission) {
	m.Completed = true
	s.Score += m.Reward

	s.notify(EventMissionComplete,
		fmt.Sprintf("MISSION COMPLETE! %s +%d", m.Title, m.Reward),
		core.ColorBrightGreen, dismissLong)
	s.epic(fmt.Sprintf("Mission %d Complete", m.ID))

	if s.MissionIndex < len(s.Missions)-1 {
		s.advanceCounter = missionAdvanceDelay
	}
}

// advanceMission moves to the next mission. It never wraps.
func (s *State) advanceMission() {
	if s.MissionIndex >= len(s.Missions)-1 {
		return
	}
	s.MissionIndex++
	s.survivalTicks = 0
}
