package sim

import (
	"time"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// EventKind classifies a notification raised by the simulation.
type EventKind int

const (
	EventLevelUp EventKind = iota
	EventMissionComplete
	EventBossWarning
	EventBossPhase
	EventBossDefeated
	EventBuffStart
	EventBuffEnd
	EventDamage
	EventEasterEgg
	EventRunOver
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventLevelUp:
		return "level_up"
	case EventMissionComplete:
		return "mission_complete"
	case EventBossWarning:
		return "boss_warning"
	case EventBossPhase:
		return "boss_phase"
	case EventBossDefeated:
		return "boss_defeated"
	case EventBuffStart:
		return "buff_start"
	case EventBuffEnd:
		return "buff_end"
	case EventDamage:
		return "damage"
	case EventEasterEgg:
		return "easter_egg"
	case EventRunOver:
		return "run_over"
	default:
		return "unknown"
	}
}

// Event is a notification for the presentation layer.
// Dismiss is how long the message should stay visible.
type Event struct {
	Kind    EventKind
	Message string
	Color   core.Color
	Dismiss time.Duration
	Tick    int
}

// Default display times, in line with the weight of each event.
const (
	dismissShort = 1500 * time.Millisecond
	dismissLevel = 2 * time.Second
	dismissLong  = 3 * time.Second
	dismissEpic  = 5 * time.Second
)

// notify appends an event to the queue.
func (s *State) notify(kind EventKind, msg string, color core.Color, dismiss time.Duration) {
	s.events = append(s.events, Event{
		Kind:    kind,
		Message: msg,
		Color:   color,
		Dismiss: dismiss,
		Tick:    s.Tick,
	})
}

// DrainEvents returns the queued events and empties the queue.
func (s *State) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// PendingEvents returns the number of undrained events.
func (s *State) PendingEvents() int {
	return len(s.events)
}
