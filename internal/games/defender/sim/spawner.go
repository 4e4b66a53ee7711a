package sim

import (
	"github.com/vovakirdan/tui-defender/internal/core"
)

// spawn runs every spawn rule once for the current tick.
func (s *State) spawn() {
	s.asteroidTimer++
	if s.asteroidTimer >= s.asteroidRate {
		s.spawnAsteroid()
		s.asteroidTimer = 0
	}

	// The counter keeps growing until a roll succeeds
	s.enemyTimer++
	if s.enemyTimer >= s.enemyRate && s.rng.Float64() < s.cfg.Spawner.EnemyChance {
		s.spawnEnemy()
		s.enemyTimer = 0
	}

	chance := s.cfg.PowerUps.SpawnChance
	if s.EasterEgg {
		chance = s.cfg.PowerUps.EasterEggSpawnChance
	}
	if s.rng.Float64() < chance && len(s.PowerUps) < s.cfg.PowerUps.MaxLive {
		s.spawnPowerUp()
	}

	if s.Level >= s.cfg.Boss.MinLevel && !s.BossSpawned && s.Tick > s.cfg.Boss.SpawnAfterTicks {
		s.spawnBoss()
	}
}

// spawnX picks a horizontal position that keeps an entity of width w on the field.
func (s *State) spawnX(w float64) float64 {
	return s.clampX(s.rng.Float64()*(s.Width-w), w)
}

// clampX restricts x to [0, fieldWidth - w].
func (s *State) clampX(x, w float64) float64 {
	return core.ClampF(x, 0, max(0, s.Width-w))
}

func (s *State) spawnAsteroid() {
	size := s.rng.Range(20, 50)
	baseSpeed := s.rng.Range(1, 2.5) + float64(s.Level)*0.2
	health := 1
	if size > 40 {
		health = 2
	}

	s.Asteroids = append(s.Asteroids, Asteroid{
		Box:           core.NewBox(s.spawnX(size), -size, size, size),
		ID:            s.newID(),
		Kind:          AsteroidKind(s.rng.Intn(asteroidKinds)),
		Speed:         baseSpeed,
		BaseSpeed:     baseSpeed,
		RotationSpeed: s.rng.Spread(0.1),
		Health:        health,
	})
}

func (s *State) spawnEnemy() {
	kind := EnemyKind(s.rng.Intn(int(enemyKinds)))
	p := kind.Profile()

	s.Enemies = append(s.Enemies, Enemy{
		Box:       core.NewBox(s.spawnX(EnemySize), -EnemySize, EnemySize, EnemySize),
		ID:        s.newID(),
		Kind:      kind,
		Speed:     p.Speed,
		BaseSpeed: p.Speed,
		Health:    2,
		Points:    p.Points,
		Color:     p.Color,
	})
}

func (s *State) spawnPowerUp() {
	kind := Buff(s.rng.Intn(int(BuffCount)))
	p := kind.Profile()

	s.PowerUps = append(s.PowerUps, PowerUp{
		Box:      core.NewBox(s.spawnX(PowerUpSize), -PowerUpSize, PowerUpSize, PowerUpSize),
		ID:       s.newID(),
		Kind:     kind,
		Speed:    PowerUpSpeed,
		Duration: s.buffDuration(kind),
		Color:    p.Color,
		Symbol:   p.Symbol,
	})
}

// buffDuration returns the configured duration of a buff in ticks.
func (s *State) buffDuration(b Buff) int {
	switch b {
	case BuffShield:
		return s.cfg.PowerUps.ShieldDuration
	case BuffRapidFire:
		return s.cfg.PowerUps.RapidFireDuration
	case BuffMultiShot:
		return s.cfg.PowerUps.MultiShotDuration
	default:
		return 0
	}
}

func (s *State) spawnBoss() {
	s.Boss = &Boss{
		Box:       core.NewBox(s.clampX(s.Width/2-BossSize/2, BossSize), -BossSize, BossSize, BossSize),
		Health:    s.cfg.Boss.Health,
		MaxHealth: s.cfg.Boss.Health,
		Speed:     s.cfg.Boss.Speed,
		Phase:     1,
		Color:     core.ColorRed,
		Name:      BossName,
	}
	s.BossSpawned = true

	s.notify(EventBossWarning, "WARNING: "+BossName+" APPROACHING", core.ColorBrightRed, dismissLong)
	s.epic("Boss Fight Started")
}

// spawnBossAsteroid drops a heavy rock from the bottom center of the boss.
func (s *State) spawnBossAsteroid() {
	b := s.Boss
	if b == nil {
		return
	}
	s.Asteroids = append(s.Asteroids, Asteroid{
		Box: core.NewBox(
			s.clampX(b.X+b.W/2-BossRockSize/2, BossRockSize),
			b.Bottom(),
			BossRockSize,
			BossRockSize,
		),
		ID:            s.newID(),
		Kind:          AsteroidBoss,
		Speed:         BossRockSpeed,
		BaseSpeed:     BossRockSpeed,
		RotationSpeed: 0.1,
		Health:        3,
		FromBoss:      true,
	})
}
