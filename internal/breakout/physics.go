package breakout

import (
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/breakout/internal/core"
)

// collidePlayfield reflects the ball off the left, right and top edges and
// handles a miss through the bottom. It reports whether the ball was lost,
// in which case the rest of the tick is skipped.
func (e *Engine) collidePlayfield() bool {
	b := &e.ball

	if b.Right() > 1 {
		b.VX = -b.VX
		b.X = 1 - b.Width/2
		e.bounce = BouncePlayfieldBorder
	}
	if b.Left() < -1 {
		b.VX = -b.VX
		b.X = -1 + b.Width/2
		e.bounce = BouncePlayfieldBorder
	}
	if b.Top() > 1 {
		b.VY = -b.VY
		b.Y = 1 - b.Height/2
		e.bounce = BouncePlayfieldBorder
	}
	if b.Bottom() < -1 {
		e.miss()
		return true
	}
	return false
}

// miss spends a spare ball or ends the episode.
func (e *Engine) miss() {
	if e.ballsRemaining == 0 {
		e.phase = PhaseGameOver
		e.park()
		return
	}
	e.ballsRemaining--
	e.ball = Ball(e.cfg, e.ballsRemaining)
	e.tooLate = false
}

// collidePaddle sends the ball upward and adds the paddle's push.
func (e *Engine) collidePaddle(paddleV float64) {
	b := &e.ball
	if !core.Overlaps(*b, e.paddle) {
		return
	}

	b.VY = math.Abs(b.VY)
	if b.VY == 0 {
		b.VY = e.cfg.Ball.Speed
	}
	b.VX += paddleV * e.cfg.Paddle.PushScale
	b.Y = e.paddle.Top() + b.Height/2
	e.bounce = BouncePaddle
}

// collideBricks destroys the first brick the ball overlaps, in grid order.
// The ball reflects on the axis of the smaller overlap, on both for an exact tie.
func (e *Engine) collideBricks(now time.Time) {
	b := &e.ball
	for i, brick := range e.bricks {
		if !core.Overlaps(*b, brick) {
			continue
		}

		ow := min(b.Right(), brick.Right()) - max(b.Left(), brick.Left())
		oh := min(b.Top(), brick.Top()) - max(b.Bottom(), brick.Bottom())
		if ow >= oh {
			b.VY = -b.VY
		}
		if oh >= ow {
			b.VX = -b.VX
		}

		e.score += uint(e.Multiplier(now)) //#nosec G115 -- multipliers are validated positive
		e.bricks = slices.Delete(e.bricks, i, i+1)
		e.destroyed++
		e.bounce = BounceBrick

		if len(e.bricks) == 0 {
			e.phase = PhaseCleared
			e.park()
		}
		return
	}
}
