package breakout

import (
	"math"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
)

// Model colors
var (
	PaddleColor    = [3]float32{0, 1, 0.5}
	BallColor      = [3]float32{0.259, 0.051, 0.671}
	PlayfieldColor = [3]float32{1, 1, 1}
	BrickColor     = [3]float32{0.5, 0, 0.1}
)

// Paddle creates the paddle centered horizontally at its configured height.
func Paddle(cfg config.BreakoutConfig) core.GameObject {
	p := cfg.Paddle
	return core.GameObject{
		X:      0,
		Y:      p.VerticalOffset,
		Width:  p.Width,
		Height: p.Height,
		Model:  core.IsoTriDown(p.Width, p.Height, PaddleColor),
		Kind:   core.KindPaddle,
	}
}

// Playfield creates the 2x2 playfield centered on the origin.
func Playfield() core.GameObject {
	return core.GameObject{
		Width:  2,
		Height: 2,
		Model:  core.Quad(2, 2, PlayfieldColor),
		Kind:   core.KindPlayfield,
	}
}

// Ball creates a ball at the spawn point. The launch angle alternates with
// the parity of n so consecutive balls leave in mirrored directions.
func Ball(cfg config.BreakoutConfig, n uint) core.GameObject {
	b := cfg.Ball
	angle := b.EvenAngle
	if n%2 == 1 {
		angle = b.OddAngle
	}
	rad := angle * math.Pi / 180

	return core.GameObject{
		X:      b.SpawnX,
		Y:      b.SpawnY,
		Width:  b.Width,
		Height: b.Height,
		VX:     math.Cos(rad) * b.Speed,
		VY:     math.Sin(rad) * b.Speed,
		Model:  core.Quad(b.Width, b.Height, BallColor),
		Kind:   core.KindBall,
	}
}

// Bricks creates the full brick grid in the upper half of the playfield,
// column by column from the left, each column bottom to top.
func Bricks(cfg config.BreakoutConfig) []core.GameObject {
	g := cfg.Bricks
	bricks := make([]core.GameObject, 0, g.Columns*g.Rows)
	model := core.Quad(g.Width, g.Height, BrickColor)

	for i := range g.Columns {
		x := (float64(i)+0.5)*2/float64(g.Columns) - 1
		for j := range g.Rows {
			y := (float64(j) + 0.5) / float64(g.Rows)
			bricks = append(bricks, core.GameObject{
				X:      x,
				Y:      y,
				Width:  g.Width,
				Height: g.Height,
				Model:  model,
				Kind:   core.KindBrick,
			})
		}
	}
	return bricks
}
