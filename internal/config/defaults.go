package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the default Defender configuration.
// It mirrors defaults/defender.yaml and is used when the embedded file cannot be parsed.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		Field: DefenderField{
			Width:  800,
			Height: 600,
		},
		Player: DefenderPlayer{
			Width:    50,
			Height:   100,
			Speed:    6,
			Lives:    3,
			MaxLives: 5,
		},
		Spawner: DefenderSpawner{
			AsteroidRate:      60,
			AsteroidRateFloor: 15,
			AsteroidRateStep:  8,
			EnemyRate:         300,
			EnemyRateFloor:    120,
			EnemyRateStep:     25,
			EnemyChance:       0.4,
		},
		PowerUps: DefenderPowerUps{
			SpawnChance:          0.02,
			EasterEggSpawnChance: 0.05,
			MaxLive:              3,
			ShieldDuration:       450,
			RapidFireDuration:    300,
			MultiShotDuration:    250,
		},
		Boss: DefenderBoss{
			MinLevel:        3,
			SpawnAfterTicks: 3600,
			Health:          25,
			Speed:           0.5,
			Reward:          5000,
			LevelBonus:      2,
		},
		Missions: DefaultMissions(),
		Replay: DefenderReplay{
			Capacity:    300,
			PlaybackFPS: 30,
			EpicMoments: 3,
		},
		Difficulty: DefenderDifficulty{
			Enabled:     true,
			LevelFactor: 0.3,
			TimeFactor:  0.01,
			LevelStep:   1000,
		},
	}
}

// DefaultMissions returns the built-in ordered mission list.
func DefaultMissions() []MissionConfig {
	return []MissionConfig{
		{ID: 1, Title: "CLEAR PATH", Description: "Destroy 10 asteroids", Kind: MissionAsteroids, Target: 10, Reward: 500},
		{ID: 2, Title: "POWER COLLECTOR", Description: "Collect 3 power-ups", Kind: MissionPowerUps, Target: 3, Reward: 800},
		{ID: 3, Title: "SURVIVAL EXPERT", Description: "Survive for 60 seconds", Kind: MissionSurvival, Target: 60, Reward: 1000},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDefenderYAML
}
