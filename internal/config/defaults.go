package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Paddle: PaddleConfig{
			Width:          0.25,
			Height:         0.025,
			VerticalOffset: -0.8,
			PushScale:      600,
		},
		Ball: BallConfig{
			Width:     0.025,
			Height:    0.025,
			Speed:     1.0,
			SpawnX:    0,
			SpawnY:    -0.25,
			RestX:     0,
			RestY:     -0.5,
			EvenAngle: 290,
			OddAngle:  250,
		},
		Bricks: BricksConfig{
			Columns: 15,
			Rows:    12,
			Width:   0.1,
			Height:  0.06,
		},
		Gameplay: GameplayConfig{
			Balls: 2,
			ScoreTiers: []ScoreTier{
				{Under: 10, Multiplier: 10},
				{Under: 30, Multiplier: 5},
				{Under: 60, Multiplier: 2},
			},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0,
			SampleRate: 44100,
		},
		Display: DisplayConfig{
			FPS: 60,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
