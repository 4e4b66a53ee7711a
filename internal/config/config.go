// Package config provides YAML-based game configuration loading and
// difficulty management for the defender game.
package config

import (
	"errors"
	"fmt"
)

// Mission kinds understood by the mission tracker.
const (
	MissionAsteroids = "asteroids"
	MissionPowerUps  = "powerups"
	MissionSurvival  = "survival"
)

// DefenderConfig contains all configuration for the Defender game.
type DefenderConfig struct {
	Field      DefenderField      `yaml:"field"`
	Player     DefenderPlayer     `yaml:"player"`
	Spawner    DefenderSpawner    `yaml:"spawner"`
	PowerUps   DefenderPowerUps   `yaml:"powerups"`
	Boss       DefenderBoss       `yaml:"boss"`
	Missions   []MissionConfig    `yaml:"missions"`
	Replay     DefenderReplay     `yaml:"replay"`
	Difficulty DefenderDifficulty `yaml:"difficulty"`
}

// DefenderField defines the size of the play field in field units.
type DefenderField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefenderPlayer defines the player ship.
type DefenderPlayer struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Lives    int     `yaml:"lives"`
	MaxLives int     `yaml:"max_lives"` // Cap for shield healing
}

// DefenderSpawner defines hazard spawn cadence in ticks.
type DefenderSpawner struct {
	AsteroidRate      int     `yaml:"asteroid_rate"`       // Ticks between asteroids at level 1
	AsteroidRateFloor int     `yaml:"asteroid_rate_floor"` // Fastest asteroid cadence
	AsteroidRateStep  int     `yaml:"asteroid_rate_step"`  // Cadence reduction per level
	EnemyRate         int     `yaml:"enemy_rate"`
	EnemyRateFloor    int     `yaml:"enemy_rate_floor"`
	EnemyRateStep     int     `yaml:"enemy_rate_step"`
	EnemyChance       float64 `yaml:"enemy_chance"` // Roll that must succeed once the enemy counter is due
}

// DefenderPowerUps defines power-up spawning and buff durations.
type DefenderPowerUps struct {
	SpawnChance          float64 `yaml:"spawn_chance"`
	EasterEggSpawnChance float64 `yaml:"easter_egg_spawn_chance"`
	MaxLive              int     `yaml:"max_live"`
	ShieldDuration       int     `yaml:"shield_duration"`
	RapidFireDuration    int     `yaml:"rapidfire_duration"`
	MultiShotDuration    int     `yaml:"multishot_duration"`
}

// DefenderBoss defines when the boss appears and what it is worth.
type DefenderBoss struct {
	MinLevel        int     `yaml:"min_level"`
	SpawnAfterTicks int     `yaml:"spawn_after_ticks"`
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	Reward          int     `yaml:"reward"`
	LevelBonus      int     `yaml:"level_bonus"`
}

// MissionConfig defines one entry of the ordered mission list.
type MissionConfig struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"` // "asteroids", "powerups", or "survival"
	Target      int    `yaml:"target"`
	Reward      int    `yaml:"reward"`
}

// DefenderReplay defines the replay recorder.
type DefenderReplay struct {
	Capacity    int `yaml:"capacity"`     // Frames kept in the ring buffer
	PlaybackFPS int `yaml:"playback_fps"` // Frames per second during playback
	EpicMoments int `yaml:"epic_moments"` // Size of the epic moment log
}

// DefenderDifficulty defines the speed multiplier and leveling thresholds.
type DefenderDifficulty struct {
	Enabled     bool    `yaml:"enabled"`      // Time-based speed growth
	LevelFactor float64 `yaml:"level_factor"` // Multiplier added per level
	TimeFactor  float64 `yaml:"time_factor"`  // Multiplier added per elapsed second
	LevelStep   int     `yaml:"level_step"`   // Score per level before leveling up
}

// Validate checks the config for values the simulation cannot run with.
func (c DefenderConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: field size must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("config: player size must be positive"))
	}
	if c.Player.Width > c.Field.Width {
		errs = append(errs, errors.New("config: player is wider than the field"))
	}
	if len(c.Missions) == 0 {
		errs = append(errs, errors.New("config: at least one mission is required"))
	}
	for i, m := range c.Missions {
		switch m.Kind {
		case MissionAsteroids, MissionPowerUps, MissionSurvival:
		default:
			errs = append(errs, fmt.Errorf("config: mission %d has unknown kind %q", i, m.Kind))
		}
		if m.Target <= 0 {
			errs = append(errs, fmt.Errorf("config: mission %d target must be positive", i))
		}
	}
	if c.Replay.Capacity <= 0 {
		errs = append(errs, errors.New("config: replay capacity must be positive"))
	}
	if c.Replay.PlaybackFPS <= 0 {
		errs = append(errs, errors.New("config: replay playback_fps must be positive"))
	}
	if c.Spawner.AsteroidRate <= 0 || c.Spawner.EnemyRate <= 0 {
		errs = append(errs, errors.New("config: spawn rates must be positive"))
	}
	if c.Difficulty.LevelStep <= 0 {
		errs = append(errs, errors.New("config: difficulty level_step must be positive"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset.
// Unknown values yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables time-based speed growth.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
