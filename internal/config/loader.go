package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDefender loads Defender configuration.
// Search order: customPath -> ~/.arcade/configs/defender.yaml -> ./configs/defender.yaml -> embedded default
func LoadDefender(customPath string) (DefenderConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultDefenderConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("defender.yaml"), filepath.Join("configs", "defender.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := loadFile(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDefenderYAML, &cfg); err != nil {
		return DefaultDefenderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads an optional config file. Missing, unparsable, or invalid
// files are skipped so the next location in the search order is tried.
func loadFile(path string) (DefenderConfig, bool) {
	cfg := DefaultDefenderConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyDefenderPreset modifies the config based on a difficulty preset.
func ApplyDefenderPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Spawner.AsteroidRate = pressure(cfg.Spawner.AsteroidRate)
		cfg.Spawner.AsteroidRateFloor = pressure(cfg.Spawner.AsteroidRateFloor)
		cfg.Spawner.EnemyRate = pressure(cfg.Spawner.EnemyRate)
		cfg.Spawner.EnemyRateFloor = pressure(cfg.Spawner.EnemyRateFloor)
	}
}

// pressure shortens a spawn interval so hazards arrive 50% more often.
func pressure(rate int) int {
	return max(1, rate*2/3)
}
