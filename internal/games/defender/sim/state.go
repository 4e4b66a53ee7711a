// Package sim implements the defender simulation core: the per-tick entity
// pipeline, collision resolution, the boss state machine, buffs, missions,
// and the replay recorder. It has no I/O and no terminal dependencies.
package sim

import (
	"time"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
)

// TicksPerSecond is the nominal simulation rate.
const TicksPerSecond = 60

// Input holds the intents for a single tick.
type Input struct {
	Left      bool
	Right     bool
	Fire      bool
	EasterEgg bool // Raised once by the secret sequence detector
}

// Options configure a new run.
type Options struct {
	Seed  int64
	Clock func() time.Time // Timestamps for replay frames and epic moments
}

// State is the complete mutable state of one run.
// Every component of the pipeline reads and writes it through methods.
type State struct {
	Width  float64
	Height float64

	Player    Player
	Bullets   []Bullet
	Asteroids []Asteroid
	Enemies   []Enemy
	PowerUps  []PowerUp
	Particles []Particle
	Boss      *Boss // Nil while no boss is live

	Score int
	Lives int
	Level int
	Tick  int

	Buffs        [BuffCount]BuffState
	EasterEgg    bool
	FireCooldown int

	Missions     []Mission
	MissionIndex int

	BossSpawned bool
	Over        bool

	// Spawner counters
	asteroidTimer int
	enemyTimer    int
	asteroidRate  int
	enemyRate     int

	// Mission tracker
	survivalTicks  int // Ticks since the current mission became current
	advanceCounter int // Ticks until moving to the next mission, 0 when idle

	nextID int
	events []Event

	cfg        config.DefenderConfig
	difficulty *config.DifficultyManager
	rng        *RNG
	clock      func() time.Time

	Recorder *Recorder
}

// New starts a fresh run with the given configuration.
// Recording starts immediately.
func New(cfg config.DefenderConfig, opts Options) *State {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	s := &State{
		Width:        cfg.Field.Width,
		Height:       cfg.Field.Height,
		Lives:        cfg.Player.Lives,
		Level:        1,
		asteroidRate: cfg.Spawner.AsteroidRate,
		enemyRate:    cfg.Spawner.EnemyRate,
		cfg:          cfg,
		difficulty:   config.NewDifficultyManager(cfg.Difficulty, cfg.Spawner),
		rng:          NewRNG(opts.Seed),
		clock:        clock,
		Recorder:     NewRecorder(cfg.Replay.Capacity, cfg.Replay.EpicMoments),
	}

	s.Player = Player{
		Box: core.NewBox(
			s.Width/2-cfg.Player.Width/2,
			s.Height-cfg.Player.Height-20,
			cfg.Player.Width,
			cfg.Player.Height,
		),
		Speed: cfg.Player.Speed,
		Color: core.ColorBrightWhite,
	}

	s.Missions = make([]Mission, len(cfg.Missions))
	for i, m := range cfg.Missions {
		s.Missions[i] = Mission{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Kind:        m.Kind,
			Target:      m.Target,
			Reward:      m.Reward,
		}
	}

	s.Recorder.Start()
	return s
}

// Config returns the configuration the run was created with.
func (s *State) Config() config.DefenderConfig {
	return s.cfg
}

// ElapsedSeconds returns the run time in seconds.
func (s *State) ElapsedSeconds() float64 {
	return float64(s.Tick) / TicksPerSecond
}

// SpeedMultiplier returns the current hazard speed multiplier.
func (s *State) SpeedMultiplier() float64 {
	return s.difficulty.Multiplier(s.Level, s.ElapsedSeconds())
}

// Step advances the simulation by one tick.
// Stepping a finished run is a no-op.
func (s *State) Step(in Input) {
	if s.Over {
		return
	}
	if in.EasterEgg {
		s.ActivateEasterEgg()
	}

	s.Tick++

	s.spawn()
	s.updatePlayer(in)
	s.updateBullets()
	s.updateAsteroids()
	s.updateEnemies()
	s.updatePowerUps()
	s.updateParticles()

	s.resolveCollisions()
	s.updateBoss()
	s.updateBuffs()
	s.updateMissions()
	s.updateDifficulty()

	if s.FireCooldown > 0 {
		s.FireCooldown--
	}

	s.Recorder.Capture(s)
	if s.Over {
		s.Recorder.Stop()
	}
}

// CurrentMission returns the current mission, or nil if there are none.
func (s *State) CurrentMission() *Mission {
	if s.MissionIndex < 0 || s.MissionIndex >= len(s.Missions) {
		return nil
	}
	return &s.Missions[s.MissionIndex]
}

// BuffActive reports whether a buff is running.
func (s *State) BuffActive(b Buff) bool {
	if b < 0 || b >= BuffCount {
		return false
	}
	return s.Buffs[b].Active
}

// Invulnerable reports whether hazards currently ignore the player.
func (s *State) Invulnerable() bool {
	return s.EasterEgg || s.BuffActive(BuffShield)
}

// PowerLabel returns the HUD label of the strongest active modifier.
func (s *State) PowerLabel() string {
	switch {
	case s.EasterEgg:
		return "FOUNDER MODE"
	case s.BuffActive(BuffShield):
		return BuffShield.Profile().Label
	case s.BuffActive(BuffRapidFire):
		return BuffRapidFire.Profile().Label
	case s.BuffActive(BuffMultiShot):
		return BuffMultiShot.Profile().Label
	default:
		return "NORMAL"
	}
}

// Summary describes a run for the end screen and storage.
type Summary struct {
	Score             int
	Level             int
	MissionsCompleted int
	MissionsTotal     int
	SecondsSurvived   int
	Ticks             int
	ReplayAvailable   bool
	EasterEgg         bool
}

// Summary returns the summary of the run so far.
func (s *State) Summary() Summary {
	completed := 0
	for _, m := range s.Missions {
		if m.Completed {
			completed++
		}
	}
	return Summary{
		Score:             s.Score,
		Level:             s.Level,
		MissionsCompleted: completed,
		MissionsTotal:     len(s.Missions),
		SecondsSurvived:   s.Tick / TicksPerSecond,
		Ticks:             s.Tick,
		ReplayAvailable:   s.Recorder.Len() > 0 && len(s.Recorder.Moments()) > 0,
		EasterEgg:         s.EasterEgg,
	}
}

// newID returns a fresh entity identity.
func (s *State) newID() int {
	s.nextID++
	return s.nextID
}

// epic logs a noteworthy moment with the current score and level.
func (s *State) epic(label string) {
	s.Recorder.Mark(EpicMoment{
		Label:     label,
		Timestamp: s.clock(),
		Score:     s.Score,
		Level:     s.Level,
	})
}

// endRun finishes the run. Later calls in the same run do nothing.
func (s *State) endRun() {
	if s.Over {
		return
	}
	s.Over = true
	s.notify(EventRunOver, "GAME OVER", core.ColorBrightRed, dismissEpic)
}
