// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for breakout.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for a breakout episode.
// Sizes and positions are in logic units where the playfield spans [-1, 1].
type BreakoutConfig struct {
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
	Display  DisplayConfig  `yaml:"display"`
}

// PaddleConfig defines the paddle geometry and how much of its motion
// is transferred to the ball.
type PaddleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	VerticalOffset float64 `yaml:"vertical_offset"` // Center y of the paddle
	PushScale      float64 `yaml:"push_scale"`
}

// BallConfig defines ball geometry, speed and the spawn template.
type BallConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	SpawnX    float64 `yaml:"spawn_x"`
	SpawnY    float64 `yaml:"spawn_y"`
	RestX     float64 `yaml:"rest_x"`     // Where the ball is parked once the episode ends
	RestY     float64 `yaml:"rest_y"`     // Where the ball is parked once the episode ends
	EvenAngle float64 `yaml:"even_angle"` // Launch angle in degrees for an even ball counter
	OddAngle  float64 `yaml:"odd_angle"`  // Launch angle in degrees for an odd ball counter
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	Balls      int         `yaml:"balls"` // Spare balls after the first one
	ScoreTiers []ScoreTier `yaml:"score_tiers"`
}

// ScoreTier awards Multiplier points per brick while fewer than Under
// seconds have passed since the episode started.
type ScoreTier struct {
	Under      float64 `yaml:"under"`
	Multiplier int     `yaml:"multiplier"`
}

// AudioConfig defines bounce sound playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Exponent offset in base 2, 0 is unchanged
	SampleRate int     `yaml:"sample_rate"`
}

// DisplayConfig defines frontend refresh settings.
type DisplayConfig struct {
	FPS int `yaml:"fps"`
}

// Validate reports every invalid field of the configuration.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle: size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width >= 2 {
		errs = append(errs, fmt.Errorf("paddle: width %g must be narrower than the playfield", c.Paddle.Width))
	}
	if c.Paddle.VerticalOffset <= -1 || c.Paddle.VerticalOffset >= 1 {
		errs = append(errs, fmt.Errorf("paddle: vertical_offset %g is outside the playfield", c.Paddle.VerticalOffset))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, fmt.Errorf("ball: size must be positive, got %gx%g", c.Ball.Width, c.Ball.Height))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball: speed must be positive, got %g", c.Ball.Speed))
	}
	if c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0 {
		errs = append(errs, fmt.Errorf("bricks: grid must be at least 1x1, got %dx%d", c.Bricks.Columns, c.Bricks.Rows))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("bricks: size must be positive, got %gx%g", c.Bricks.Width, c.Bricks.Height))
	}
	if c.Gameplay.Balls < 0 {
		errs = append(errs, fmt.Errorf("gameplay: balls must not be negative, got %d", c.Gameplay.Balls))
	}
	for i, tier := range c.Gameplay.ScoreTiers {
		if tier.Multiplier <= 0 {
			errs = append(errs, fmt.Errorf("gameplay: score_tiers[%d] multiplier must be positive", i))
		}
		if i > 0 && tier.Under <= c.Gameplay.ScoreTiers[i-1].Under {
			errs = append(errs, fmt.Errorf("gameplay: score_tiers must be in ascending order"))
		}
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio: sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display: fps must be positive, got %d", c.Display.FPS))
	}

	return errors.Join(errs...)
}
