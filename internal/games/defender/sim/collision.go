package sim

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
)

// Lives lost per hazard type.
const (
	asteroidDamage = 1
	enemyDamage    = 2
)

// resolveCollisions runs every collision pass in order.
// Each pass scans from the highest index down so removals never skip an entity.
func (s *State) resolveCollisions() {
	s.bulletsVsAsteroids()
	s.bulletsVsEnemies()
	s.bulletsVsBoss()
	s.playerVsHazards()
	s.playerVsPowerUps()
}

// bulletsVsAsteroids damages the first asteroid each bullet touches.
func (s *State) bulletsVsAsteroids() {
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		bullet := s.Bullets[i]
		for j := len(s.Asteroids) - 1; j >= 0; j-- {
			a := &s.Asteroids[j]
			if !bullet.Overlaps(a.Box) {
				continue
			}

			a.Health -= bullet.Damage
			if a.Health <= 0 {
				cx, cy := a.Center()
				s.explode(cx, cy, a.Kind.Profile().Color)
				s.Score += a.Points()
				if !a.FromBoss {
					s.creditMission(config.MissionAsteroids)
				}
				s.Asteroids = slices.Delete(s.Asteroids, j, j+1)
			}

			s.Bullets = slices.Delete(s.Bullets, i, i+1)
			break
		}
	}
}

// bulletsVsEnemies damages the first enemy each bullet touches.
func (s *State) bulletsVsEnemies() {
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		bullet := s.Bullets[i]
		for j := len(s.Enemies) - 1; j >= 0; j-- {
			e := &s.Enemies[j]
			if !bullet.Overlaps(e.Box) {
				continue
			}

			e.Health -= bullet.Damage
			if e.Health <= 0 {
				cx, cy := e.Center()
				s.explode(cx, cy, e.Color)
				s.Score += e.Points
				s.Enemies = slices.Delete(s.Enemies, j, j+1)
			}

			s.Bullets = slices.Delete(s.Bullets, i, i+1)
			break
		}
	}
}

// bulletsVsBoss chips the boss. Phase changes and defeat are left to the boss update.
func (s *State) bulletsVsBoss() {
	if s.Boss == nil {
		return
	}
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		bullet := s.Bullets[i]
		if !bullet.Overlaps(s.Boss.Box) {
			continue
		}
		s.Boss.Health -= bullet.Damage
		s.sparkle(bullet.X, bullet.Y, core.ColorRed, 5, 8, 15)
		s.Bullets = slices.Delete(s.Bullets, i, i+1)
	}
}

// playerVsHazards applies contact damage unless the player is protected.
// Protection only spares the player; the hazard is left untouched.
func (s *State) playerVsHazards() {
	if s.Invulnerable() {
		return
	}

	for i := len(s.Asteroids) - 1; i >= 0; i-- {
		if !s.Player.Overlaps(s.Asteroids[i].Box) {
			continue
		}
		s.Asteroids = slices.Delete(s.Asteroids, i, i+1)
		s.damagePlayer(asteroidDamage, core.ColorBrightRed)
	}

	for i := len(s.Enemies) - 1; i >= 0; i-- {
		if !s.Player.Overlaps(s.Enemies[i].Box) {
			continue
		}
		s.Enemies = slices.Delete(s.Enemies, i, i+1)
		s.damagePlayer(enemyDamage, core.ColorBrightRed)
	}

	if s.Boss != nil && s.Player.Overlaps(s.Boss.Box) {
		s.damagePlayer(max(s.Lives, 1), core.ColorRed)
		s.Lives = 0
	}
}

// damagePlayer removes lives and either ends the run or warns the player.
func (s *State) damagePlayer(lives int, c core.Color) {
	cx, cy := s.Player.Center()
	s.explode(cx, cy, c)
	s.Lives -= lives
	if s.Lives <= 0 {
		s.endRun()
		return
	}
	s.notify(EventDamage, "DAMAGE TAKEN!", core.ColorBrightRed, dismissShort)
}

// playerVsPowerUps collects every power-up the ship touches.
func (s *State) playerVsPowerUps() {
	for i := len(s.PowerUps) - 1; i >= 0; i-- {
		if !s.Player.Overlaps(s.PowerUps[i].Box) {
			continue
		}
		s.collect(s.PowerUps[i])
		s.PowerUps = slices.Delete(s.PowerUps, i, i+1)
	}
}

// collect applies a power-up's buff.
func (s *State) collect(p PowerUp) {
	cx, cy := p.Center()
	s.sparkle(cx, cy, p.Color, 8, 6, 20)

	s.activateBuff(p.Kind, p.Duration)
	s.creditMission(config.MissionPowerUps)

	prof := p.Kind.Profile()
	msg := prof.Label + " ACTIVATED!"
	if p.Kind == BuffShield {
		s.Lives = min(s.Lives+1, s.cfg.Player.MaxLives)
		msg = prof.Label + " ACTIVATED! +1 LIFE"
	}
	s.notify(EventBuffStart, msg, prof.Color, dismissShort)
	s.epic(fmt.Sprintf("%s Collected", prof.Name))
}
