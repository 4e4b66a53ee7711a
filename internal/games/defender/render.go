package defender

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender/sim"
)

// Screen layout
const (
	hudRows    = 2 // Score line and mission line above the field
	minScreenW = 40
	minScreenH = 16
	bossBarLen = 20
)

// FieldView maps field coordinates onto a screen area.
type FieldView struct {
	Area core.Rect
	W, H float64 // Field size
}

// NewFieldView creates a view of a w by h field drawn into area.
func NewFieldView(area core.Rect, w, h float64) FieldView {
	return FieldView{Area: area, W: max(w, 1), H: max(h, 1)}
}

// fieldArea returns the screen region inside the field border.
func fieldArea(dst *core.Screen) core.Rect {
	return core.NewRect(1, hudRows+1, dst.Width()-2, dst.Height()-hudRows-2)
}

// Cell converts a field point to a screen cell.
func (v FieldView) Cell(x, y float64) (int, int) {
	cx := v.Area.X + int(math.Floor(x*float64(v.Area.W)/v.W))
	cy := v.Area.Y + int(math.Floor(y*float64(v.Area.H)/v.H))
	return cx, cy
}

// Span converts a field box to the cells it covers, never less than one cell.
func (v FieldView) Span(b core.Box) core.Rect {
	x0, y0 := v.Cell(b.X, b.Y)
	x1, y1 := v.Cell(b.Right(), b.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Contains reports whether a cell lies inside the view area.
func (v FieldView) Contains(x, y int) bool {
	return x >= v.Area.X && x < v.Area.Right() && y >= v.Area.Y && y < v.Area.Bottom()
}

// set draws a cell clipped to the view area.
func (v FieldView) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if v.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// fill draws a rectangle clipped to the view area.
func (v FieldView) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			v.set(dst, x, y, ch, c)
		}
	}
}

// scene is the drawable part of a live state or a recorded frame.
type scene struct {
	player    sim.Player
	bullets   []sim.Bullet
	asteroids []sim.Asteroid
	enemies   []sim.Enemy
	powerUps  []sim.PowerUp
	particles []sim.Particle
	boss      *sim.Boss
	shielded  bool
}

func sceneOf(s *sim.State) scene {
	return scene{
		player:    s.Player,
		bullets:   s.Bullets,
		asteroids: s.Asteroids,
		enemies:   s.Enemies,
		powerUps:  s.PowerUps,
		particles: s.Particles,
		boss:      s.Boss,
		shielded:  s.BuffActive(sim.BuffShield),
	}
}

func sceneOfFrame(f sim.Frame) scene {
	return scene{
		player:    f.Player,
		bullets:   f.Bullets,
		asteroids: f.Asteroids,
		enemies:   f.Enemies,
		powerUps:  f.PowerUps,
		particles: f.Particles,
		boss:      f.Boss,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.checkScreen(dst.Width(), dst.Height())
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.sim == nil {
		return
	}

	g.renderHUD(dst)

	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows))
	view := NewFieldView(fieldArea(dst), g.sim.Width, g.sim.Height)
	drawScene(dst, view, sceneOf(g.sim))

	g.renderToasts(dst, view)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, level, the current mission and the power label.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.sim

	scoreText := fmt.Sprintf("Score: %d", s.Score)
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %s", strings.Repeat("♥", max(s.Lives, 0)))
	dst.DrawTextCenteredColored(0, livesText, core.ColorBrightRed)

	levelText := fmt.Sprintf("Level: %d", s.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	missionText := "All missions complete"
	if m := s.CurrentMission(); m != nil {
		missionText = fmt.Sprintf("Mission %d/%d: %s %d/%d",
			s.MissionIndex+1, len(s.Missions), m.Title, min(m.Current, m.Target), m.Target)
		if m.Completed {
			missionText += " ✓"
		}
	}
	dst.DrawTextColored(1, 1, missionText, core.ColorCyan)

	label := s.PowerLabel()
	dst.DrawTextColored(dst.Width()-len(label)-1, 1, label, powerColor(s))
}

// powerColor returns the HUD color of the strongest active power.
func powerColor(s *sim.State) core.Color {
	switch {
	case s.EasterEgg:
		return core.ColorOrange
	case s.BuffActive(sim.BuffShield):
		return sim.BuffShield.Profile().Color
	case s.BuffActive(sim.BuffRapidFire):
		return sim.BuffRapidFire.Profile().Color
	case s.BuffActive(sim.BuffMultiShot):
		return sim.BuffMultiShot.Profile().Color
	}
	return core.ColorGray
}

// renderToasts draws pending notifications in the upper third of the field.
func (g *Game) renderToasts(dst *core.Screen, view FieldView) {
	y := view.Area.Y + view.Area.H/3
	for i, t := range g.toasts {
		dst.DrawTextCenteredColored(y+i, t.text, t.color)
	}
}

// renderOverlay draws the pause and end-of-run screens.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.sim.Over {
		sum := g.sim.Summary()
		lines := []string{
			fmt.Sprintf("Score: %d", sum.Score),
			fmt.Sprintf("Level: %d   Missions: %d/%d", sum.Level, sum.MissionsCompleted, sum.MissionsTotal),
			fmt.Sprintf("Survived: %ds", sum.SecondsSurvived),
		}
		if g.NewHighScore() {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		if sum.ReplayAvailable {
			lines = append(lines, "V: Watch replay")
		}
		lines = append(lines, "R: Restart  Esc: Menu  Q: Quit")
		drawCenteredBox(dst, "GAME OVER", lines...)
		return
	}

	if g.paused {
		drawCenteredBox(dst, "PAUSED", "P: Resume  Esc: Menu  Q: Quit")
	}
}

// drawScene draws every entity of a scene into the view.
func drawScene(dst *core.Screen, view FieldView, sc scene) {
	for _, p := range sc.particles {
		x, y := view.Cell(p.X, p.Y)
		ch := '.'
		if p.Life > 15 {
			ch = '*'
		}
		view.set(dst, x, y, ch, p.Color)
	}

	for _, p := range sc.powerUps {
		view.fill(dst, view.Span(p.Box), p.Symbol, p.Color)
	}

	for _, a := range sc.asteroids {
		drawAsteroid(dst, view, a)
	}

	for _, e := range sc.enemies {
		r := view.Span(e.Box)
		view.fill(dst, r, 'V', e.Color)
		view.fill(dst, core.NewRect(r.X, r.Y, r.W, 1), 'W', e.Color)
	}

	if sc.boss != nil {
		drawBoss(dst, view, *sc.boss)
	}

	for _, b := range sc.bullets {
		view.fill(dst, view.Span(b.Box), '|', b.Color)
	}

	drawPlayer(dst, view, sc.player, sc.shielded)
}

// drawAsteroid draws a rock with its outline when it is large enough.
func drawAsteroid(dst *core.Screen, view FieldView, a sim.Asteroid) {
	p := a.Kind.Profile()
	r := view.Span(a.Box)
	view.fill(dst, r, '@', p.Color)
	if r.W < 3 || r.H < 2 {
		return
	}
	for x := r.X; x < r.Right(); x++ {
		view.set(dst, x, r.Y, 'o', p.Outline)
		view.set(dst, x, r.Bottom()-1, 'o', p.Outline)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		view.set(dst, r.X, y, 'o', p.Outline)
		view.set(dst, r.Right()-1, y, 'o', p.Outline)
	}
}

// drawBoss draws the boss body and its health bar above the field content.
func drawBoss(dst *core.Screen, view FieldView, b sim.Boss) {
	view.fill(dst, view.Span(b.Box), '█', b.Color)

	filled := 0
	if b.MaxHealth > 0 {
		filled = max(b.Health, 0) * bossBarLen / b.MaxHealth
	}
	bar := fmt.Sprintf("%s [%s%s] PHASE %d",
		b.Name, strings.Repeat("#", filled), strings.Repeat("-", bossBarLen-filled), b.Phase)
	dst.DrawTextCenteredColored(view.Area.Y, bar, core.ColorBrightRed)
}

// drawPlayer draws the ship with a nose on the top row.
func drawPlayer(dst *core.Screen, view FieldView, p sim.Player, shielded bool) {
	r := view.Span(p.Box)
	view.fill(dst, r, '█', p.Color)
	if r.H > 1 {
		view.fill(dst, core.NewRect(r.X, r.Y, r.W, 1), ' ', core.ColorDefault)
		view.set(dst, r.X+r.W/2, r.Y, '▲', p.Color)
	}
	if shielded {
		shield := sim.BuffShield.Profile().Color
		for y := r.Y; y < r.Bottom(); y++ {
			view.set(dst, r.X-1, y, '(', shield)
			view.set(dst, r.Right(), y, ')', shield)
		}
	}
}

// RenderReplay draws one recorded frame with the replay header.
// pos and total describe the place of the frame in the loop.
func RenderReplay(dst *core.Screen, f sim.Frame, moments []sim.EpicMoment, pos, total int) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	dst.DrawTextColored(1, 0, "REPLAY", core.ColorBrightMagenta)
	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d  Lives: %d", f.Score, max(f.Lives, 0)))
	levelText := fmt.Sprintf("Level: %d", f.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	if m, ok := latestMoment(moments, f); ok {
		dst.DrawTextColored(1, 1, "★ "+m.Label, core.ColorBrightYellow)
	}
	progress := fmt.Sprintf("%d/%d  Esc: Back", pos, total)
	dst.DrawTextColored(dst.Width()-len(progress)-1, 1, progress, core.ColorGray)

	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows))
	view := NewFieldView(fieldArea(dst), f.Width, f.Height)
	drawScene(dst, view, sceneOfFrame(f))
}

// latestMoment returns the last epic moment at or before the frame.
func latestMoment(moments []sim.EpicMoment, f sim.Frame) (sim.EpicMoment, bool) {
	var found sim.EpicMoment
	ok := false
	for _, m := range moments {
		if m.Timestamp.After(f.Timestamp) {
			break
		}
		found, ok = m, true
	}
	return found, ok
}

// drawCenteredBox draws a bordered box with a title and lines in the middle of the screen.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	box := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCenteredColored(y+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(y+3+i, l)
	}
}
