// Package config loads the game configuration. The default configuration is
// compiled into the binary; nothing is read from disk at runtime.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"unicode/utf8"

	"tty-invaders/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

// Default returns the embedded configuration.
func Default() (*models.GameConfig, error) {
	return Load(defaultYAML)
}

// Load parses and validates a YAML game configuration.
func Load(data []byte) (*models.GameConfig, error) {
	var cfg models.GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *models.GameConfig) error {
	// Dimensions themselves are checked by the grid so the error surfaces
	// as an invalid dimension at construction time.
	if cfg.Rows < 2 && cfg.Rows > 0 {
		return fmt.Errorf("%w: rows must be at least 2, got %d", ErrInvalidConfig, cfg.Rows)
	}
	if cfg.InvadersPerWave < 1 {
		return fmt.Errorf("%w: invadersPerWave must be >= 1, got %d", ErrInvalidConfig, cfg.InvadersPerWave)
	}
	if cfg.Cols > 0 && cfg.InvadersPerWave > cfg.Cols {
		return fmt.Errorf("%w: %d invaders per wave do not fit in %d columns", ErrInvalidConfig, cfg.InvadersPerWave, cfg.Cols)
	}
	if cfg.Lives < 1 {
		return fmt.Errorf("%w: lives must be >= 1, got %d", ErrInvalidConfig, cfg.Lives)
	}
	if cfg.MaxRounds < 1 {
		return fmt.Errorf("%w: maxRounds must be >= 1, got %d", ErrInvalidConfig, cfg.MaxRounds)
	}
	if cfg.TickMillis < 0 {
		return fmt.Errorf("%w: tickMillis must be >= 0, got %d", ErrInvalidConfig, cfg.TickMillis)
	}
	if len(cfg.Waves) == 0 {
		return fmt.Errorf("%w: waves cannot be empty", ErrInvalidConfig)
	}

	offsets := make(map[int]bool, len(cfg.Waves))
	for i, w := range cfg.Waves {
		if w.Variant != "a" && w.Variant != "b" {
			return fmt.Errorf("%w: wave %d has unknown variant %q", ErrInvalidConfig, i, w.Variant)
		}
		// The last row belongs to the player.
		if w.Offset < 0 || (cfg.Rows > 0 && w.Offset >= cfg.Rows-1) {
			return fmt.Errorf("%w: wave %d offset %d is outside the invader rows", ErrInvalidConfig, i, w.Offset)
		}
		if offsets[w.Offset] {
			return fmt.Errorf("%w: wave %d reuses row %d", ErrInvalidConfig, i, w.Offset)
		}
		offsets[w.Offset] = true
	}

	keys := map[string]string{
		"left":  cfg.Keys.Left,
		"right": cfg.Keys.Right,
		"fire":  cfg.Keys.Fire,
		"quit":  cfg.Keys.Quit,
	}
	bound := make(map[string]string, len(keys))
	for action, key := range keys {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("%w: key for %s must be a single character, got %q", ErrInvalidConfig, action, key)
		}
		if other, ok := bound[key]; ok {
			return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, key, other, action)
		}
		bound[key] = action
	}

	return nil
}
