package sim

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// Bullet parameters for normal fire and founder mode.
const (
	bulletW        = 4
	bulletH        = 12
	bulletSpeed    = 12
	eggBulletW     = 8
	eggBulletH     = 20
	eggBulletSpeed = 18

	manualCooldown = 15
	autoCooldown   = 5
	eggCooldown    = 2

	multiShots    = 3
	multiSpread   = 10
	eggMultiShots = 5
	eggSpread     = 20

	easterEggBuffTicks     = 9999
	easterEggMovementBoost = 1.5
)

// updatePlayer moves the ship and handles firing.
func (s *State) updatePlayer(in Input) {
	speed := s.Player.Speed
	if s.EasterEgg {
		speed *= easterEggMovementBoost
	}
	if in.Left {
		s.Player.X -= speed
	}
	if in.Right {
		s.Player.X += speed
	}
	s.Player.X = s.clampX(s.Player.X, s.Player.W)

	automatic := s.EasterEgg || s.BuffActive(BuffRapidFire)
	switch {
	case automatic && s.FireCooldown == 0:
		s.fire()
		s.FireCooldown = autoCooldown
		if s.EasterEgg {
			s.FireCooldown = eggCooldown
		}
	case !automatic && in.Fire && s.FireCooldown == 0:
		s.fire()
		s.FireCooldown = manualCooldown
	}
}

// fire launches one volley from the nose of the ship.
func (s *State) fire() {
	b := Bullet{Speed: bulletSpeed, Damage: 1, Color: core.ColorBrightCyan}
	b.W, b.H = bulletW, bulletH
	if s.EasterEgg {
		b = Bullet{Speed: eggBulletSpeed, Damage: 2, Color: core.ColorOrange}
		b.W, b.H = eggBulletW, eggBulletH
	}

	shots, spread := 1, 0.0
	switch {
	case s.EasterEgg:
		shots, spread = eggMultiShots, eggSpread
	case s.BuffActive(BuffMultiShot):
		shots, spread = multiShots, multiSpread
	}

	cx, _ := s.Player.Center()
	for i := 0; i < shots; i++ {
		offset := float64(i-shots/2) * spread
		shot := b
		shot.X = cx - b.W/2 + offset
		shot.Y = s.Player.Y
		s.Bullets = append(s.Bullets, shot)
	}
}

func (s *State) updateBullets() {
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		b := &s.Bullets[i]
		b.Y -= b.Speed
		if b.Y < -b.H {
			s.Bullets = slices.Delete(s.Bullets, i, i+1)
		}
	}
}

func (s *State) updateAsteroids() {
	for i := len(s.Asteroids) - 1; i >= 0; i-- {
		a := &s.Asteroids[i]
		a.Y += a.Speed
		a.Rotation += a.RotationSpeed
		a.X += math.Sin(a.Y*0.02) * 0.5
		if a.Y > s.Height {
			s.Asteroids = slices.Delete(s.Asteroids, i, i+1)
		}
	}
}

func (s *State) updateEnemies() {
	for i := len(s.Enemies) - 1; i >= 0; i-- {
		e := &s.Enemies[i]
		e.Y += e.Speed
		e.X += math.Sin(e.Y*0.05+float64(e.ID)) * 2
		if e.Y > s.Height {
			s.Enemies = slices.Delete(s.Enemies, i, i+1)
		}
	}
}

func (s *State) updatePowerUps() {
	for i := len(s.PowerUps) - 1; i >= 0; i-- {
		p := &s.PowerUps[i]
		p.Y += p.Speed
		p.X += math.Sin(p.Y*0.1 + float64(p.ID))
		if p.Y > s.Height {
			s.PowerUps = slices.Delete(s.PowerUps, i, i+1)
		}
	}
}

func (s *State) updateParticles() {
	for i := len(s.Particles) - 1; i >= 0; i-- {
		p := &s.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life <= 0 {
			s.Particles = slices.Delete(s.Particles, i, i+1)
		}
	}
}

// updateDifficulty levels up and rescales hazard speeds from their base speed.
func (s *State) updateDifficulty() {
	if s.Score > s.difficulty.LevelThreshold(s.Level) {
		s.Level++
		s.tightenSpawnRates()
		s.notify(EventLevelUp, fmt.Sprintf("LEVEL UP! NOW AT LEVEL %d", s.Level), core.ColorBrightYellow, dismissLevel)
	}

	m := s.SpeedMultiplier()
	for i := range s.Asteroids {
		s.Asteroids[i].Speed = s.Asteroids[i].BaseSpeed * m
	}
	for i := range s.Enemies {
		s.Enemies[i].Speed = s.Enemies[i].BaseSpeed * m
	}
}

// tightenSpawnRates recomputes spawn intervals for the current level.
func (s *State) tightenSpawnRates() {
	s.asteroidRate = s.difficulty.AsteroidRate(s.Level)
	s.enemyRate = s.difficulty.EnemyRate(s.Level)
}

// ActivateEasterEgg turns on founder mode for the rest of the run.
// Activating it again has no effect.
func (s *State) ActivateEasterEgg() {
	if s.EasterEgg || s.Over {
		return
	}
	s.EasterEgg = true
	for b := Buff(0); b < BuffCount; b++ {
		s.Buffs[b] = BuffState{Active: true, Remaining: easterEggBuffTicks}
	}
	s.Lives = s.cfg.Player.MaxLives
	s.Player.Color = core.ColorOrange

	s.notify(EventEasterEgg, "SECRET MODE UNLOCKED! FOUNDER'S EDITION ACTIVATED", core.ColorOrange, dismissEpic)
	s.epic("Easter Egg Activated")
}

// explode emits an explosion at (x, y). Founder mode makes it bigger.
func (s *State) explode(x, y float64, c core.Color) {
	count, spread, life, size := 12, 10.0, 25, 4.0
	if s.EasterEgg {
		count, spread, life, size = 20, 15.0, 35, 6.0
	}
	for i := 0; i < count; i++ {
		s.Particles = append(s.Particles, Particle{
			X: x, Y: y,
			VX:    s.rng.Spread(spread),
			VY:    s.rng.Spread(spread),
			Life:  life,
			Size:  s.rng.Float64()*size + 2,
			Color: c,
		})
	}
}

// sparkle emits a small burst used for hits and pickups.
func (s *State) sparkle(x, y float64, c core.Color, count int, spread float64, life int) {
	for i := 0; i < count; i++ {
		s.Particles = append(s.Particles, Particle{
			X: x, Y: y,
			VX:    s.rng.Spread(spread),
			VY:    s.rng.Spread(spread),
			Life:  life,
			Size:  s.rng.Float64()*3 + 1,
			Color: c,
		})
	}
}
