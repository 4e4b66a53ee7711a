package config

import (
	"math"
	"testing"
)

func TestDifficultyMultiplier(t *testing.T) {
	cfg := DefaultDefenderConfig()
	d := NewDifficultyManager(cfg.Difficulty, cfg.Spawner)

	tests := []struct {
		level    int
		elapsed  float64
		expected float64
	}{
		{0, 0, 1.0},
		{1, 0, 1.3},
		{1, 10, 1.4},
		{3, 60, 2.5},
	}
	for _, tt := range tests {
		got := d.Multiplier(tt.level, tt.elapsed)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Multiplier(%d, %v) = %v, expected %v", tt.level, tt.elapsed, got, tt.expected)
		}
	}

	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
	if got := d.Multiplier(1, 100); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("Multiplier without time growth = %v, expected 1.3", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DefaultDefenderConfig()
	d := NewDifficultyManager(cfg.Difficulty, cfg.Spawner)

	// Repeated calls with the same inputs never compound
	first := d.Speed(2, 2, 30)
	second := d.Speed(2, 2, 30)
	if first != second {
		t.Errorf("Speed() not idempotent: %v then %v", first, second)
	}
	if math.Abs(first-2*(1+0.6+0.3)) > 1e-9 {
		t.Errorf("Speed(2, 2, 30) = %v, expected %v", first, 2*(1+0.6+0.3))
	}
}

func TestDifficultySpawnRates(t *testing.T) {
	cfg := DefaultDefenderConfig()
	d := NewDifficultyManager(cfg.Difficulty, cfg.Spawner)

	tests := []struct {
		level    int
		asteroid int
		enemy    int
	}{
		{1, 52, 275},
		{2, 44, 250},
		{5, 20, 175},
		{6, 15, 150},
		{10, 15, 120},
	}
	for _, tt := range tests {
		if got := d.AsteroidRate(tt.level); got != tt.asteroid {
			t.Errorf("AsteroidRate(%d) = %d, expected %d", tt.level, got, tt.asteroid)
		}
		if got := d.EnemyRate(tt.level); got != tt.enemy {
			t.Errorf("EnemyRate(%d) = %d, expected %d", tt.level, got, tt.enemy)
		}
	}

	if got := d.LevelThreshold(3); got != 3000 {
		t.Errorf("LevelThreshold(3) = %d, expected 3000", got)
	}
}
