package episode

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/storage"
)

// singleBrickConfig returns a setup where the ball bounces once off a
// full-width paddle and clears the only brick.
func singleBrickConfig() config.BreakoutConfig {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Balls = 0
	cfg.Paddle.Width = 2
	cfg.Bricks.Columns = 1
	cfg.Bricks.Rows = 1
	cfg.Bricks.Width = 2
	cfg.Bricks.Height = 0.2
	return cfg
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// play ticks until the episode ends, returning how many ticks reported the end.
func play(t *testing.T, e *breakout.Engine, r *Recorder, mouseX float64) int {
	t.Helper()
	now := time.Now()
	dt := time.Second / 60
	ended := 0

	for i := 0; i < 1200; i++ {
		e.Tick(breakout.Input{MouseX: mouseX, Clicked: true}, now, dt)
		if r.Observe(e, now) {
			ended++
		}
		now = now.Add(dt)
	}
	if !e.Over() {
		t.Fatal("episode did not end")
	}
	return ended
}

func TestRecorderSavesClearedEpisodeOnce(t *testing.T) {
	store := openStore(t)
	e := breakout.New(singleBrickConfig())
	r := NewRecorder(e, store, nil, config.DifficultyHard, "carol")

	if ended := play(t, e, r, 0); ended != 1 {
		t.Errorf("Observe() reported the end %d times, expected 1", ended)
	}
	if e.Phase() != breakout.PhaseCleared {
		t.Fatalf("Phase() = %v, expected Cleared", e.Phase())
	}

	scores, err := store.TopScores(string(config.DifficultyHard), 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("TopScores() returned %d entries, expected 1", len(scores))
	}

	got := scores[0]
	if got.Score != int(e.Score()) {
		t.Errorf("Score = %d, expected %d", got.Score, e.Score())
	}
	if got.Player != "carol" {
		t.Errorf("Player = %q, expected %q", got.Player, "carol")
	}
	if got.BricksDestroyed != 1 {
		t.Errorf("BricksDestroyed = %d, expected 1", got.BricksDestroyed)
	}
	if got.Duration <= 0 {
		t.Errorf("Duration = %v, expected positive", got.Duration)
	}
	if r.LastID() != got.ID {
		t.Errorf("LastID() = %d, expected %d", r.LastID(), got.ID)
	}
	if r.HighScore() != got.Score {
		t.Errorf("HighScore() = %d, expected %d", r.HighScore(), got.Score)
	}
}

func TestRecorderSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Balls = 0

	e := breakout.New(cfg)
	r := NewRecorder(e, store, nil, config.DifficultyNormal, "dave")

	// Paddle parked on the far left while the first ball heads right
	play(t, e, r, -1)

	if e.Phase() != breakout.PhaseGameOver {
		t.Fatalf("Phase() = %v, expected GameOver", e.Phase())
	}
	if !r.Saved() {
		t.Error("Saved() = false after the episode ended")
	}
	if r.LastID() != 0 {
		t.Errorf("LastID() = %d, expected 0 for an empty score", r.LastID())
	}

	scores, err := store.TopScores(string(config.DifficultyNormal), 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("TopScores() returned %d entries, expected none", len(scores))
	}
}

func TestRecorderLoadsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.ScoreEntry{Difficulty: "easy", Score: 420}); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	e := breakout.New(config.DefaultBreakoutConfig())

	if got := NewRecorder(e, store, nil, config.DifficultyEasy, "").HighScore(); got != 420 {
		t.Errorf("HighScore() easy = %d, expected 420", got)
	}
	if got := NewRecorder(e, store, nil, config.DifficultyHard, "").HighScore(); got != 0 {
		t.Errorf("HighScore() hard = %d, expected 0", got)
	}
}

func TestRecorderPlayerBest(t *testing.T) {
	store := openStore(t)
	for _, entry := range []storage.ScoreEntry{
		{Difficulty: "normal", Player: "alice", Score: 90},
		{Difficulty: "normal", Player: "bob", Score: 500},
		{Difficulty: "easy", Player: "alice", Score: 700},
	} {
		if _, err := store.SaveScore(entry); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}

	e := breakout.New(singleBrickConfig())
	r := NewRecorder(e, store, nil, config.DifficultyNormal, "alice")
	if r.PlayerBest() != 90 {
		t.Errorf("PlayerBest() = %d, expected 90", r.PlayerBest())
	}
	if r.HighScore() != 500 {
		t.Errorf("HighScore() = %d, expected 500", r.HighScore())
	}

	play(t, e, r, 0)
	if want := max(90, int(e.Score())); r.PlayerBest() != want {
		t.Errorf("PlayerBest() after episode = %d, expected %d", r.PlayerBest(), want)
	}

	if got := NewRecorder(e, store, nil, config.DifficultyNormal, "").PlayerBest(); got != 0 {
		t.Errorf("PlayerBest() anonymous = %d, expected 0", got)
	}
}

func TestRecorderReset(t *testing.T) {
	e := breakout.New(singleBrickConfig())
	r := NewRecorder(e, nil, nil, config.DifficultyNormal, "")

	play(t, e, r, 0)
	if !r.Saved() {
		t.Fatal("Saved() = false after the episode ended")
	}
	if r.HighScore() != int(e.Score()) {
		t.Errorf("HighScore() without store = %d, expected %d", r.HighScore(), e.Score())
	}

	e.Reset()
	r.Reset(e)
	if r.Saved() {
		t.Error("Saved() = true after Reset")
	}

	if ended := play(t, e, r, 0); ended != 1 {
		t.Errorf("second episode reported the end %d times, expected 1", ended)
	}
}
