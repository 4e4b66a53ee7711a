package sim

import (
	"testing"

	"github.com/vovakirdan/tui-defender/internal/config"
)

func TestAsteroidSpawnCadence(t *testing.T) {
	cfg := config.DefaultDefenderConfig()
	cfg.PowerUps.SpawnChance = 0
	s := New(cfg, Options{Seed: 3, Clock: fixedClock})

	for rep := 0; rep < 59; rep++ {
		s.spawn()
	}
	if len(s.Asteroids) != 0 {
		t.Fatalf("len(Asteroids) after 59 ticks = %d, expected 0", len(s.Asteroids))
	}
	s.spawn()
	if len(s.Asteroids) != 1 {
		t.Fatalf("len(Asteroids) after 60 ticks = %d, expected 1", len(s.Asteroids))
	}
	if s.asteroidTimer != 0 {
		t.Errorf("asteroidTimer = %d, expected 0", s.asteroidTimer)
	}
}

func TestAsteroidSpawnBounds(t *testing.T) {
	cfg := config.DefaultDefenderConfig()
	cfg.Spawner.AsteroidRate = 1
	cfg.PowerUps.SpawnChance = 0
	s := New(cfg, Options{Seed: 99, Clock: fixedClock})

	for rep := 0; rep < 500; rep++ {
		s.spawn()
	}
	if len(s.Asteroids) != 500 {
		t.Fatalf("len(Asteroids) = %d, expected 500", len(s.Asteroids))
	}

	seen := make(map[int]bool)
	for _, a := range s.Asteroids {
		if a.W < 20 || a.W >= 50 || a.W != a.H {
			t.Errorf("asteroid size %vx%v out of [20, 50)", a.W, a.H)
		}
		if a.X < 0 || a.X > s.Width-a.W {
			t.Errorf("asteroid X = %v outside [0, %v]", a.X, s.Width-a.W)
		}
		wantHealth := 1
		if a.W > 40 {
			wantHealth = 2
		}
		if a.Health != wantHealth {
			t.Errorf("asteroid size %v health = %d, expected %d", a.W, a.Health, wantHealth)
		}
		if a.BaseSpeed < 1.2 || a.BaseSpeed >= 2.7 {
			t.Errorf("asteroid base speed = %v, expected [1.2, 2.7)", a.BaseSpeed)
		}
		if a.RotationSpeed < -0.05 || a.RotationSpeed >= 0.05 {
			t.Errorf("asteroid rotation speed = %v, expected [-0.05, 0.05)", a.RotationSpeed)
		}
		if a.Kind < AsteroidRust || a.Kind > AsteroidSlate {
			t.Errorf("asteroid kind = %d, expected a spawner kind", a.Kind)
		}
		if seen[a.ID] {
			t.Errorf("duplicate asteroid ID %d", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestEnemySpawnWaitsForRoll(t *testing.T) {
	s := newQuietState()
	s.enemyTimer = 299

	s.spawn()
	if len(s.Enemies) != 0 {
		t.Fatalf("enemy spawned with a zero chance")
	}
	if s.enemyTimer != 300 {
		t.Errorf("enemyTimer = %d, expected 300", s.enemyTimer)
	}

	s.cfg.Spawner.EnemyChance = 1
	s.spawn()
	if len(s.Enemies) != 1 {
		t.Fatalf("len(Enemies) = %d, expected 1", len(s.Enemies))
	}
	if s.enemyTimer != 0 {
		t.Errorf("enemyTimer = %d, expected 0 after a spawn", s.enemyTimer)
	}

	e := s.Enemies[0]
	p := e.Kind.Profile()
	if e.Health != 2 || e.W != 30 || e.Points != p.Points || e.BaseSpeed != p.Speed {
		t.Errorf("enemy = %+v, expected health 2, 30x30, profile %+v", e, p)
	}
}

func TestPowerUpSpawnLimit(t *testing.T) {
	s := newQuietState()
	s.cfg.PowerUps.SpawnChance = 1

	for rep := 0; rep < 10; rep++ {
		s.spawn()
	}
	if len(s.PowerUps) != 3 {
		t.Fatalf("len(PowerUps) = %d, expected 3", len(s.PowerUps))
	}
	for _, p := range s.PowerUps {
		if p.Duration != s.buffDuration(p.Kind) || p.Speed != 2 || p.W != 25 {
			t.Errorf("power-up = %+v", p)
		}
	}
}

func TestBossSpawnRules(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		tick    int
		spawned bool
	}{
		{"too early", 3, 3600, false},
		{"level too low", 2, 4000, false},
		{"due", 3, 3601, true},
		{"higher level", 5, 3601, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuietState()
			s.Level = tt.level
			s.Tick = tt.tick
			s.spawn()

			if (s.Boss != nil) != tt.spawned {
				t.Fatalf("boss spawned = %v, expected %v", s.Boss != nil, tt.spawned)
			}
			if !tt.spawned {
				return
			}
			if s.Boss.X != 325 || s.Boss.Y != -150 || s.Boss.Name != BossName {
				t.Errorf("boss = %+v", s.Boss)
			}
			if n := countEvents(s.DrainEvents(), EventBossWarning); n != 1 {
				t.Errorf("warning events = %d, expected 1", n)
			}
			moments := s.Recorder.Moments()
			if len(moments) != 1 || moments[0].Label != "Boss Fight Started" {
				t.Errorf("Moments() = %+v", moments)
			}

			// Only once per run
			s.Boss = nil
			s.spawn()
			if s.Boss != nil {
				t.Error("boss spawned twice")
			}
		})
	}
}

func TestClampX(t *testing.T) {
	s := newQuietState()
	tests := []struct {
		x, w, expected float64
	}{
		{-10, 30, 0},
		{100, 30, 100},
		{790, 30, 770},
		{0, 900, 0}, // Wider than the field
	}
	for _, tt := range tests {
		if got := s.clampX(tt.x, tt.w); got != tt.expected {
			t.Errorf("clampX(%v, %v) = %v, expected %v", tt.x, tt.w, got, tt.expected)
		}
	}
}
