package config

// DifficultyManager calculates dynamic game parameters based on level and time.
type DifficultyManager struct {
	cfg     DefenderDifficulty
	spawner DefenderSpawner
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DefenderDifficulty, spawner DefenderSpawner) *DifficultyManager {
	return &DifficultyManager{
		cfg:     cfg,
		spawner: spawner,
	}
}

// SetEnabled enables or disables time-based speed growth.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether time-based speed growth is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Multiplier returns the hazard speed multiplier for a level and elapsed time.
// The level term always applies; the time term only while progression is enabled.
func (d *DifficultyManager) Multiplier(level int, elapsedSeconds float64) float64 {
	m := 1.0 + float64(level)*d.cfg.LevelFactor
	if d.cfg.Enabled {
		m += elapsedSeconds * d.cfg.TimeFactor
	}
	return m
}

// Speed returns the scaled speed for an entity's base speed.
// Derived from the base value every tick so scaling never compounds.
func (d *DifficultyManager) Speed(baseSpeed float64, level int, elapsedSeconds float64) float64 {
	return baseSpeed * d.Multiplier(level, elapsedSeconds)
}

// AsteroidRate returns the asteroid spawn interval after reaching level.
func (d *DifficultyManager) AsteroidRate(level int) int {
	return max(d.spawner.AsteroidRateFloor, d.spawner.AsteroidRate-level*d.spawner.AsteroidRateStep)
}

// EnemyRate returns the enemy spawn interval after reaching level.
func (d *DifficultyManager) EnemyRate(level int) int {
	return max(d.spawner.EnemyRateFloor, d.spawner.EnemyRate-level*d.spawner.EnemyRateStep)
}

// LevelThreshold returns the score that must be exceeded to leave level.
func (d *DifficultyManager) LevelThreshold(level int) int {
	return level * d.cfg.LevelStep
}
