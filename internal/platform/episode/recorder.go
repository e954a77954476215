// Package episode follows a running breakout engine on behalf of a frontend:
// it logs lifecycle changes and stores the final score once per episode.
package episode

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/logging"
	"github.com/vovakirdan/breakout/internal/storage"
)

// Recorder watches one engine across ticks. Store and Logger may be nil.
type Recorder struct {
	store      *storage.Store
	logger     *log.Logger
	difficulty config.DifficultyPreset
	player     string

	phase      breakout.Phase
	balls      uint
	highScore  int
	playerBest int
	saved      bool
	lastID     int64
}

// NewRecorder creates a recorder for episodes of the given engine and loads
// the stored high score for the difficulty, along with the player's own best.
func NewRecorder(e *breakout.Engine, store *storage.Store, logger *log.Logger, difficulty config.DifficultyPreset, player string) *Recorder {
	if logger == nil {
		logger = logging.Discard()
	}
	r := &Recorder{
		store:      store,
		logger:     logger,
		difficulty: difficulty,
		player:     player,
	}
	r.Reset(e)

	if store != nil {
		high, err := store.HighScore(string(difficulty))
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		r.highScore = high

		if player != "" {
			best, err := store.PlayerBest(string(difficulty), player)
			if err != nil {
				logger.Warn("could not load player best", "error", err)
			}
			r.playerBest = best
		}
	}
	return r
}

// Reset starts following a fresh episode of e.
func (r *Recorder) Reset(e *breakout.Engine) {
	r.phase = e.Phase()
	r.balls = e.BallsRemaining()
	r.saved = false
	r.lastID = 0
}

// Observe must be called after every tick. It returns true on the tick the
// episode ended.
func (r *Recorder) Observe(e *breakout.Engine, now time.Time) bool {
	phase := e.Phase()
	balls := e.BallsRemaining()

	if r.phase == breakout.PhaseNotStarted && phase == breakout.PhasePlaying {
		r.logger.Info("episode started", "difficulty", r.difficulty)
	}
	if balls < r.balls {
		r.logger.Info("ball lost", "balls_remaining", balls)
	}
	r.phase = phase
	r.balls = balls

	if !e.Over() || r.saved {
		return false
	}
	r.saved = true

	score := int(e.Score()) //#nosec G115 -- score fits in int
	r.logger.Info(phase.String(), "score", score, "bricks", e.BricksDestroyed(), "elapsed", e.Elapsed(now).Round(time.Millisecond))

	if score > r.highScore {
		r.highScore = score
	}
	if r.player != "" && score > r.playerBest {
		r.playerBest = score
	}
	if r.store == nil || score <= 0 {
		return true
	}

	id, err := r.store.SaveScore(storage.ScoreEntry{
		Difficulty:      string(r.difficulty),
		Player:          r.player,
		Score:           score,
		BricksDestroyed: e.BricksDestroyed(),
		Duration:        e.Elapsed(now),
	})
	if err != nil {
		r.logger.Warn("could not save score", "error", err)
		return true
	}
	r.lastID = id
	r.logger.Info("score saved", "id", id)
	return true
}

// HighScore returns the best score known for the difficulty, including the
// current episode once it has ended.
func (r *Recorder) HighScore() int {
	return r.highScore
}

// PlayerBest returns the player's best score for the difficulty, 0 for an
// anonymous player.
func (r *Recorder) PlayerBest() int {
	return r.playerBest
}

// Saved reports whether the current episode has been recorded.
func (r *Recorder) Saved() bool {
	return r.saved
}

// LastID returns the row id of the last stored score, 0 if none was stored.
func (r *Recorder) LastID() int64 {
	return r.lastID
}
