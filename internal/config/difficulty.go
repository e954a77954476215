package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns all difficulty presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts a flag value into a preset. An empty string is normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Balls = 4
		cfg.Paddle.Width = 0.35
		cfg.Ball.Speed = 0.8
	case DifficultyHard:
		cfg.Gameplay.Balls = 1
		cfg.Paddle.Width = 0.18
		cfg.Ball.Speed = 1.3
	}
}

// Multiplier returns the points awarded per brick after elapsed time of play.
// The first tier whose bound is not yet reached wins; past every tier it is 1.
func (g GameplayConfig) Multiplier(elapsed time.Duration) int {
	seconds := elapsed.Seconds()
	for _, tier := range g.ScoreTiers {
		if seconds < tier.Under {
			return tier.Multiplier
		}
	}
	return 1
}
