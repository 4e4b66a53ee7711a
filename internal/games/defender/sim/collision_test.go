package sim

import (
	"testing"

	"github.com/vovakirdan/tui-defender/internal/core"
)

func TestBulletDestroysAsteroid(t *testing.T) {
	s := newQuietState()
	s.Asteroids = []Asteroid{{Box: core.NewBox(100, 100, 30, 30), ID: 1, Health: 1, Speed: 1, BaseSpeed: 1}}
	s.Bullets = []Bullet{{Box: core.NewBox(110, 110, 4, 12), Damage: 1, Speed: 12}}

	s.resolveCollisions()

	if len(s.Bullets) != 0 {
		t.Errorf("len(Bullets) = %d, expected 0", len(s.Bullets))
	}
	if len(s.Asteroids) != 0 {
		t.Errorf("len(Asteroids) = %d, expected 0", len(s.Asteroids))
	}
	if s.Score != 170 {
		t.Errorf("Score = %d, expected 170", s.Score)
	}
	if s.Missions[0].Current != 1 {
		t.Errorf("Missions[0].Current = %d, expected 1", s.Missions[0].Current)
	}
	if len(s.Particles) != 12 {
		t.Errorf("len(Particles) = %d, expected 12", len(s.Particles))
	}
}

func TestBulletDestroysAsteroidThroughStep(t *testing.T) {
	s := newQuietState()
	s.Asteroids = []Asteroid{{Box: core.NewBox(100, 100, 30, 30), ID: 1, Health: 1, Speed: 1, BaseSpeed: 1}}
	s.Bullets = []Bullet{{Box: core.NewBox(110, 110, 4, 12), Damage: 1, Speed: 12}}

	s.Step(Input{})

	if len(s.Asteroids) != 0 || len(s.Bullets) != 0 {
		t.Errorf("after Step: %d asteroids, %d bullets, expected none", len(s.Asteroids), len(s.Bullets))
	}
	if s.Score != 170 {
		t.Errorf("Score = %d, expected 170", s.Score)
	}
	if s.Missions[0].Current != 1 {
		t.Errorf("Missions[0].Current = %d, expected 1", s.Missions[0].Current)
	}
}

func TestBulletDamagesToughAsteroid(t *testing.T) {
	s := newQuietState()
	s.Asteroids = []Asteroid{{Box: core.NewBox(100, 100, 45, 45), Health: 2}}
	s.Bullets = []Bullet{{Box: core.NewBox(110, 110, 4, 12), Damage: 1}}

	s.resolveCollisions()

	if len(s.Bullets) != 0 {
		t.Errorf("bullet should be consumed even without a kill")
	}
	if len(s.Asteroids) != 1 || s.Asteroids[0].Health != 1 {
		t.Errorf("Asteroids = %+v, expected one asteroid with health 1", s.Asteroids)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, expected 0", s.Score)
	}
}

func TestBossAsteroidScoring(t *testing.T) {
	s := newQuietState()
	s.Asteroids = []Asteroid{{Box: core.NewBox(100, 100, 40, 40), Health: 1, FromBoss: true}}
	s.Bullets = []Bullet{{Box: core.NewBox(110, 110, 4, 12), Damage: 2}}

	s.resolveCollisions()

	if s.Score != 480 {
		t.Errorf("Score = %d, expected 480", s.Score)
	}
	if s.Missions[0].Current != 0 {
		t.Errorf("boss asteroid credited the asteroid mission: Current = %d", s.Missions[0].Current)
	}
}

func TestFirstMatchWins(t *testing.T) {
	s := newQuietState()
	// Two overlapping asteroids under one bullet
	s.Asteroids = []Asteroid{
		{Box: core.NewBox(100, 100, 30, 30), ID: 1, Health: 1},
		{Box: core.NewBox(105, 100, 30, 30), ID: 2, Health: 1},
	}
	s.Bullets = []Bullet{{Box: core.NewBox(110, 110, 4, 12), Damage: 1}}

	s.resolveCollisions()

	if len(s.Asteroids) != 1 {
		t.Fatalf("len(Asteroids) = %d, expected 1", len(s.Asteroids))
	}
	// Highest index is scanned first
	if s.Asteroids[0].ID != 1 {
		t.Errorf("surviving asteroid ID = %d, expected 1", s.Asteroids[0].ID)
	}
}

func TestRemovalNeverSkips(t *testing.T) {
	s := newQuietState()
	for i := 0; i < 5; i++ {
		x := float64(i * 100)
		s.Asteroids = append(s.Asteroids, Asteroid{Box: core.NewBox(x, 100, 30, 30), ID: i + 1, Health: 1})
		s.Bullets = append(s.Bullets, Bullet{Box: core.NewBox(x+10, 110, 4, 12), Damage: 1})
	}
	// A stray bullet that hits nothing
	s.Bullets = append(s.Bullets, Bullet{Box: core.NewBox(700, 10, 4, 12), Damage: 1})

	s.resolveCollisions()

	if len(s.Asteroids) != 0 {
		t.Errorf("len(Asteroids) = %d, expected 0", len(s.Asteroids))
	}
	if len(s.Bullets) != 1 {
		t.Errorf("len(Bullets) = %d, expected 1", len(s.Bullets))
	}
	if s.Score != 5*170 {
		t.Errorf("Score = %d, expected %d", s.Score, 5*170)
	}
}

func TestBulletDestroysEnemy(t *testing.T) {
	s := newQuietState()
	s.Enemies = []Enemy{{Box: core.NewBox(100, 100, 30, 30), Health: 2, Points: 250, Color: core.ColorMagenta}}
	s.Bullets = []Bullet{
		{Box: core.NewBox(110, 110, 4, 12), Damage: 1},
		{Box: core.NewBox(112, 105, 4, 12), Damage: 1},
	}

	s.resolveCollisions()

	if len(s.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d, expected 0", len(s.Enemies))
	}
	if s.Score != 250 {
		t.Errorf("Score = %d, expected 250", s.Score)
	}
	if s.Missions[0].Current != 0 {
		t.Errorf("enemy kill credited the asteroid mission")
	}
}

func TestBulletHitsBoss(t *testing.T) {
	s := newQuietState()
	s.spawnBoss()
	s.Boss.Y = 50
	s.Bullets = []Bullet{
		{Box: core.NewBox(s.Boss.X+10, 100, 4, 12), Damage: 1},
		{Box: core.NewBox(s.Boss.X+20, 100, 4, 12), Damage: 2},
		{Box: core.NewBox(10, 10, 4, 12), Damage: 1},
	}

	s.resolveCollisions()

	if s.Boss.Health != 22 {
		t.Errorf("Boss.Health = %d, expected 22", s.Boss.Health)
	}
	if len(s.Bullets) != 1 {
		t.Errorf("len(Bullets) = %d, expected 1", len(s.Bullets))
	}
	if len(s.Particles) != 10 {
		t.Errorf("len(Particles) = %d, expected 10 hit sparks", len(s.Particles))
	}
}

func TestShieldProtectsPlayerOnly(t *testing.T) {
	s := newQuietState()
	s.activateBuff(BuffShield, 450)
	s.Asteroids = []Asteroid{{Box: onPlayer(s, 30, 30), Health: 1}}

	s.resolveCollisions()

	if s.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", s.Lives)
	}
	if len(s.Asteroids) != 1 || s.Asteroids[0].Health != 1 {
		t.Errorf("Asteroids = %+v, expected the asteroid untouched", s.Asteroids)
	}
}

func TestAsteroidContact(t *testing.T) {
	s := newQuietState()
	s.Asteroids = []Asteroid{{Box: onPlayer(s, 30, 30), Health: 1}}

	s.resolveCollisions()

	if s.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Lives)
	}
	if len(s.Asteroids) != 0 {
		t.Errorf("len(Asteroids) = %d, expected 0", len(s.Asteroids))
	}
	events := s.DrainEvents()
	if countEvents(events, EventDamage) != 1 || countEvents(events, EventRunOver) != 0 {
		t.Errorf("events = %+v, expected one damage event", events)
	}
}

func TestLethalEnemyEndsRunOnce(t *testing.T) {
	s := newQuietState()
	s.Lives = 1
	s.Enemies = []Enemy{
		{Box: onPlayer(s, EnemySize, EnemySize), Health: 2},
		{Box: onPlayer(s, EnemySize, EnemySize), Health: 2},
	}

	s.resolveCollisions()

	if s.Lives != -3 {
		t.Errorf("Lives = %d, expected -3", s.Lives)
	}
	if !s.Over {
		t.Error("Over = false, expected true")
	}
	if n := countEvents(s.DrainEvents(), EventRunOver); n != 1 {
		t.Errorf("run over events = %d, expected 1", n)
	}
}

func TestLethalEnemyThroughStep(t *testing.T) {
	s := newQuietState()
	s.Lives = 1
	s.Enemies = []Enemy{{Box: onPlayer(s, EnemySize, EnemySize), Health: 2, Speed: 2, BaseSpeed: 2}}

	s.Step(Input{})

	if s.Lives != -1 {
		t.Errorf("Lives = %d, expected -1", s.Lives)
	}
	if !s.Over {
		t.Fatal("Over = false, expected true")
	}
	if n := countEvents(s.DrainEvents(), EventRunOver); n != 1 {
		t.Errorf("run over events = %d, expected 1", n)
	}
	// The terminal tick is recorded, then recording stops
	if s.Recorder.Recording() {
		t.Error("Recorder still recording after run end")
	}
	last, ok := s.Recorder.Frame(s.Recorder.Len() - 1)
	if !ok || last.Lives != -1 {
		t.Errorf("last frame lives = %d, expected -1", last.Lives)
	}

	s.Step(Input{})
	if s.PendingEvents() != 0 {
		t.Error("Step after run end raised events")
	}
}

func TestBossContactIsLethal(t *testing.T) {
	s := newQuietState()
	s.Lives = 5
	s.spawnBoss()
	s.Boss.Box = onPlayer(s, BossSize, BossSize)

	s.resolveCollisions()

	if s.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", s.Lives)
	}
	if !s.Over {
		t.Error("Over = false, expected true")
	}
}

func TestCollectPowerUp(t *testing.T) {
	s := newQuietState()
	s.Lives = 5
	s.PowerUps = []PowerUp{{Box: onPlayer(s, PowerUpSize, PowerUpSize), Kind: BuffShield, Duration: 450, Color: core.ColorBrightYellow}}

	s.resolveCollisions()

	if len(s.PowerUps) != 0 {
		t.Errorf("len(PowerUps) = %d, expected 0", len(s.PowerUps))
	}
	if st := s.Buffs[BuffShield]; !st.Active || st.Remaining != 450 {
		t.Errorf("Buffs[Shield] = %+v, expected active with 450 ticks", st)
	}
	if s.Lives != 5 {
		t.Errorf("Lives = %d, expected 5 (capped)", s.Lives)
	}
	if len(s.Particles) != 8 {
		t.Errorf("len(Particles) = %d, expected 8", len(s.Particles))
	}
	// The asteroid mission is current, so power-ups do not count yet
	if s.Missions[1].Current != 0 {
		t.Errorf("Missions[1].Current = %d, expected 0", s.Missions[1].Current)
	}
	moments := s.Recorder.Moments()
	if len(moments) != 1 || moments[0].Label != "SHIELD Collected" {
		t.Errorf("Moments() = %+v, expected SHIELD Collected", moments)
	}
	if s.PowerLabel() != "SHIELD" {
		t.Errorf("PowerLabel() = %q, expected SHIELD", s.PowerLabel())
	}
}

func TestShieldHeals(t *testing.T) {
	s := newQuietState()
	s.Lives = 2
	s.collect(PowerUp{Kind: BuffShield, Duration: 450})
	if s.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", s.Lives)
	}
}
