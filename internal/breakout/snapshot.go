package breakout

import "math"

// Snapshot contains the complete episode state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick           uint64
	PaddleX        float64
	Score          uint
	BallsRemaining uint
	Destroyed      int
	Phase          int
	TooLate        bool

	// Ball is X, Y, VX, VY
	Ball [4]float64

	// Remaining bricks, flattened as X, Y pairs in grid order
	BrickData []float64
}

// Snapshot returns the current episode state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	brickData := make([]float64, 0, len(e.bricks)*2)
	for _, b := range e.bricks {
		brickData = append(brickData, b.X, b.Y)
	}

	return Snapshot{
		Tick:           e.ticks,
		PaddleX:        e.paddle.X,
		Score:          e.score,
		BallsRemaining: e.ballsRemaining,
		Destroyed:      e.destroyed,
		Phase:          int(e.phase),
		TooLate:        e.tooLate,
		Ball:           [4]float64{e.ball.X, e.ball.Y, e.ball.VX, e.ball.VY},
		BrickData:      brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.BallsRemaining)
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	if snap.TooLate {
		h = h*31 + 1
	}

	for _, v := range snap.Ball {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
