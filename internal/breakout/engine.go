// Package breakout implements the breakout simulation: paddle tracking,
// ball motion, collisions against the playfield, paddle and brick grid,
// scoring and the episode lifecycle.
//
// The engine is single-writer. A frontend calls Tick once per frame and reads
// Objects, Bounce and State between ticks.
package breakout

import (
	"iter"
	"time"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
)

// Input is the control state consumed by a tick.
type Input struct {
	MouseX  float64 // Normalized pointer x
	Clicked bool    // Level query from core.ControlState.Clicked
}

// Engine owns all game objects and the meta state of one episode.
type Engine struct {
	cfg config.BreakoutConfig

	playfield core.GameObject
	paddle    core.GameObject
	ball      core.GameObject
	bricks    []core.GameObject

	ballsRemaining uint
	score          uint
	destroyed      int
	tooLate        bool // Ball already passed the paddle, it can no longer be saved
	bounce         Bounce
	phase          Phase
	startedAt      time.Time
	ticks          uint64
}

// New creates an engine with a fresh episode.
func New(cfg config.BreakoutConfig) *Engine {
	e := &Engine{cfg: cfg}
	e.Reset()
	return e
}

// Reset starts a new episode: full grid, all balls, score zero, waiting for a click.
func (e *Engine) Reset() {
	e.ballsRemaining = uint(max(e.cfg.Gameplay.Balls, 0))
	e.playfield = Playfield()
	e.paddle = Paddle(e.cfg)
	e.ball = Ball(e.cfg, e.ballsRemaining)
	e.bricks = Bricks(e.cfg)
	e.score = 0
	e.destroyed = 0
	e.tooLate = false
	e.bounce = BounceNone
	e.phase = PhaseNotStarted
	e.startedAt = time.Time{}
	e.ticks = 0
}

// Tick advances the simulation by dt. The paddle follows the pointer in every
// phase; ball physics only runs while playing. A zero dt moves nothing but
// collisions are still evaluated.
func (e *Engine) Tick(in Input, now time.Time, dt time.Duration) {
	e.ticks++
	e.bounce = BounceNone

	paddleV := e.trackPaddle(in.MouseX, dt)

	if e.phase == PhaseNotStarted && in.Clicked {
		e.phase = PhasePlaying
		e.startedAt = now
	}
	if e.phase != PhasePlaying {
		return
	}

	secs := dt.Seconds()
	e.ball.X += e.ball.VX * secs
	e.ball.Y += e.ball.VY * secs

	if e.collidePlayfield() {
		return
	}

	if e.ball.Y < e.paddle.Bottom() {
		e.tooLate = true
	}
	if !e.tooLate {
		e.collidePaddle(paddleV)
	}

	e.collideBricks(now)
}

// trackPaddle moves the paddle under the pointer and returns its velocity
// estimate for this tick, displacement scaled by the frame duration.
func (e *Engine) trackPaddle(mouseX float64, dt time.Duration) float64 {
	half := e.paddle.Width / 2
	target := core.ClampF(mouseX, -1+half, 1-half)
	v := (target - e.paddle.X) * dt.Seconds()
	e.paddle.X = target
	return v
}

// park stops the ball at its rest position once the episode has ended.
func (e *Engine) park() {
	e.ball.X = e.cfg.Ball.RestX
	e.ball.Y = e.cfg.Ball.RestY
	e.ball.VX = 0
	e.ball.VY = 0
}

// Objects yields every drawable object: playfield, ball, paddle, then bricks.
func (e *Engine) Objects() iter.Seq[core.GameObject] {
	return func(yield func(core.GameObject) bool) {
		if !yield(e.playfield) || !yield(e.ball) || !yield(e.paddle) {
			return
		}
		for _, b := range e.bricks {
			if !yield(b) {
				return
			}
		}
	}
}

// Bounce returns the collision emitted by the last tick.
func (e *Engine) Bounce() Bounce {
	return e.bounce
}

// State returns the episode summary at now.
func (e *Engine) State(now time.Time) core.GameState {
	return core.GameState{
		Score:          int(e.score),          //#nosec G115 -- score fits in int
		BallsRemaining: int(e.ballsRemaining), //#nosec G115 -- bounded by config
		Multiplier:     e.Multiplier(now),
		BricksLeft:     len(e.bricks),
		Started:        e.phase != PhaseNotStarted,
		Over:           e.Over(),
		Cleared:        e.phase == PhaseCleared,
	}
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Over reports whether the episode has ended, lost or cleared.
func (e *Engine) Over() bool {
	return e.phase == PhaseGameOver || e.phase == PhaseCleared
}

// Score returns the current score.
func (e *Engine) Score() uint {
	return e.score
}

// BallsRemaining returns the spare balls left after the one in play.
func (e *Engine) BallsRemaining() uint {
	return e.ballsRemaining
}

// Bricks returns the number of bricks still standing.
func (e *Engine) Bricks() int {
	return len(e.bricks)
}

// BricksDestroyed returns how many bricks were destroyed this episode.
func (e *Engine) BricksDestroyed() int {
	return e.destroyed
}

// Ball returns a copy of the ball.
func (e *Engine) Ball() core.GameObject {
	return e.ball
}

// Paddle returns a copy of the paddle.
func (e *Engine) Paddle() core.GameObject {
	return e.paddle
}

// Elapsed returns the time since the first click, zero before it.
func (e *Engine) Elapsed(now time.Time) time.Duration {
	if e.phase == PhaseNotStarted {
		return 0
	}
	return now.Sub(e.startedAt)
}

// Multiplier returns the points a brick is worth at time now.
func (e *Engine) Multiplier(now time.Time) int {
	return e.cfg.Gameplay.Multiplier(e.Elapsed(now))
}

// Ticks returns the number of ticks since the episode was reset.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Config returns the configuration the engine was created with.
func (e *Engine) Config() config.BreakoutConfig {
	return e.cfg
}
