package defender

import (
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender/sim"
)

// Autopilot returns the input of a simple bot for the next tick: it lines
// up under the closest hazard above the ship and keeps firing.
func Autopilot(s *sim.State) core.InputFrame {
	in := core.NewInputFrame()
	if s.Over {
		return in
	}
	in.Set(core.ActionFire)

	px, _ := s.Player.Center()
	tx, ok := target(s)
	if !ok {
		return in
	}

	switch {
	case tx < px-s.Player.Speed:
		in.Set(core.ActionLeft)
	case tx > px+s.Player.Speed:
		in.Set(core.ActionRight)
	}
	return in
}

// target picks the x coordinate to line up with.
func target(s *sim.State) (float64, bool) {
	best, found := 0.0, false
	lowest := -1e9
	consider := func(b core.Box) {
		if b.Y >= s.Player.Y || b.Bottom() <= lowest {
			return
		}
		lowest = b.Bottom()
		best, _ = b.Center()
		found = true
	}

	for _, a := range s.Asteroids {
		consider(a.Box)
	}
	for _, e := range s.Enemies {
		consider(e.Box)
	}
	if !found && s.Boss != nil {
		best, _ = s.Boss.Center()
		found = true
	}
	return best, found
}
