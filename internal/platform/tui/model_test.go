package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}
}

func newTestModel(opts Options) Model {
	if opts.Config.Display.FPS == 0 {
		opts.Config = config.DefaultBreakoutConfig()
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	return NewModel(opts, testRuntime())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

func TestModelClickStartsEpisode(t *testing.T) {
	m := newTestModel(Options{})
	start := time.Now()

	m = update(t, m, TickMsg{Time: start})
	if m.Engine().Phase() != breakout.PhaseNotStarted {
		t.Fatalf("phase before click = %v, expected NotStarted", m.Engine().Phase())
	}

	m = click(t, m, 40, 20)
	m = update(t, m, TickMsg{Time: start.Add(16 * time.Millisecond)})

	if m.Engine().Phase() != breakout.PhasePlaying {
		t.Errorf("phase after click = %v, expected Playing", m.Engine().Phase())
	}
}

func TestModelMouseMovesPaddle(t *testing.T) {
	m := newTestModel(Options{})
	start := time.Now()

	m = update(t, m, tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m = update(t, m, TickMsg{Time: start})

	if x := m.Engine().Paddle().X; x <= 0 {
		t.Errorf("paddle X after moving right = %v, expected > 0", x)
	}

	m = update(t, m, tea.MouseMsg{X: 0, Y: 20, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m = update(t, m, TickMsg{Time: start.Add(16 * time.Millisecond)})

	p := m.Engine().Paddle()
	if got := p.Left(); got < -1-1e-9 {
		t.Errorf("paddle left edge = %v, expected clamped to -1", got)
	}
}

func TestModelResizeKeepsEpisode(t *testing.T) {
	m := newTestModel(Options{})
	start := time.Now()

	m = click(t, m, 40, 20)
	m = update(t, m, TickMsg{Time: start})
	ticks := m.Engine().Ticks()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Engine().Phase() != breakout.PhasePlaying {
		t.Errorf("phase after resize = %v, expected Playing", m.Engine().Phase())
	}
	if m.Engine().Ticks() != ticks {
		t.Errorf("Ticks() after resize = %d, expected %d", m.Engine().Ticks(), ticks)
	}
	if m.viewport.Cols != 120 || m.viewport.Rows != 39 {
		t.Errorf("viewport after resize = %+v, expected 120x39", m.viewport)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(Options{})

	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)

	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q, expected true")
	}
	if cmd == nil {
		t.Error("Update(q) returned nil command, expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelBack(t *testing.T) {
	tests := []struct {
		name      string
		allowBack bool
	}{
		{"local game ignores back", false},
		{"session game goes back", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(Options{AllowBack: tt.allowBack})
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

			if m.BackToMenu() != tt.allowBack {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tt.allowBack)
			}
		})
	}
}

func TestModelRestartOnlyWhenOver(t *testing.T) {
	m := newTestModel(Options{})
	start := time.Now()

	m = click(t, m, 40, 20)
	m = update(t, m, TickMsg{Time: start})
	m = update(t, m, runeKey("r"))

	if m.Engine().Phase() != breakout.PhasePlaying {
		t.Errorf("phase after r while playing = %v, expected Playing", m.Engine().Phase())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(Options{})
	m = update(t, m, TickMsg{Time: time.Now()})

	view := m.View()
	for _, want := range []string{"Score 0", "click to start", string(BallChar)} {
		if !strings.Contains(view, want) {
			t.Errorf("View() does not contain %q", want)
		}
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Balls = 0
	cfg.Paddle.Width = 2
	// A single brick right above the spawn point
	cfg.Bricks.Columns = 1
	cfg.Bricks.Rows = 1
	cfg.Bricks.Width = 2
	cfg.Bricks.Height = 0.2

	m := newTestModel(Options{Config: cfg, Store: store, Player: "alice"})
	start := time.Now()
	m = click(t, m, 40, 20)

	now := start
	for i := 0; i < 600 && !m.Engine().Over(); i++ {
		m = update(t, m, TickMsg{Time: now})
		now = now.Add(time.Second / 60)
	}
	if !m.Engine().Over() {
		t.Fatal("episode did not end")
	}

	// Extra ticks after the end must not save again
	for range 5 {
		m = update(t, m, TickMsg{Time: now})
		now = now.Add(time.Second / 60)
	}

	if m.Engine().Phase() != breakout.PhaseCleared {
		t.Fatalf("phase = %v, expected Cleared", m.Engine().Phase())
	}

	scores, err := store.TopScores(string(config.DifficultyNormal), 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("TopScores() returned %d entries, expected 1", len(scores))
	}
	if scores[0].Player != "alice" {
		t.Errorf("Player = %q, expected %q", scores[0].Player, "alice")
	}
	if scores[0].Score != int(m.Engine().Score()) {
		t.Errorf("Score = %d, expected %d", scores[0].Score, m.Engine().Score())
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())

	// Cursor starts on normal
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	selected := m.Selected()
	if selected == nil {
		t.Fatal("Selected() = nil after enter")
	}
	if selected.Choice != ChoicePlay || m.IsQuitting() {
		t.Fatalf("Selected() = %+v, expected a game selection", *selected)
	}
	if selected.Difficulty != config.DifficultyNormal {
		t.Errorf("Difficulty = %q, expected %q", selected.Difficulty, config.DifficultyNormal)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())

	for range 10 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if !m.IsQuitting() {
		t.Error("selecting the last entry should quit")
	}

	m = NewMenuModel(nil, testRuntime())
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().Choice != ChoiceScores {
		t.Error("tab should open the scoreboard")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(SessionOptions{Game: config.DefaultBreakoutConfig(), Player: "bob"}, testRuntime())

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.game == nil {
		t.Fatalf("screen after selecting = %v, expected game", s.screen)
	}

	step(runeKey("b"))
	if s.screen != screenMenu {
		t.Fatalf("screen after back = %v, expected menu", s.screen)
	}

	// A late tick from the finished game is ignored
	step(TickMsg{Time: time.Now()})
	if s.screen != screenMenu {
		t.Errorf("screen after stale tick = %v, expected menu", s.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("screen after tab = %v, expected scores", s.screen)
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("scores view should contain the title")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("screen after esc = %v, expected menu", s.screen)
	}

	step(runeKey("q"))
	if !s.IsQuitting() {
		t.Error("IsQuitting() = false after q, expected true")
	}
}

func TestSessionDropsTicksOfEarlierGame(t *testing.T) {
	s := NewSessionModel(SessionOptions{Game: config.DefaultBreakoutConfig()}, testRuntime())

	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	step(runeKey("b"))
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatalf("screen = %v, expected game", s.screen)
	}

	// The first game's tick arrives after the second game started
	now := time.Now()
	if cmd := step(TickMsg{Time: now, Gen: 1}); cmd != nil {
		t.Error("tick of the first game re-armed a tick loop")
	}
	if s.game.frame != 0 {
		t.Errorf("frame = %d after a foreign tick, expected 0", s.game.frame)
	}

	if cmd := step(TickMsg{Time: now, Gen: 2}); cmd == nil {
		t.Error("tick of the current game did not schedule the next one")
	}
	if s.game.frame != 1 {
		t.Errorf("frame = %d after an own tick, expected 1", s.game.frame)
	}
}

type fakeSounds struct {
	played []breakout.Bounce
	muted  bool
}

func (f *fakeSounds) Play(b breakout.Bounce) { f.played = append(f.played, b) }
func (f *fakeSounds) ToggleMute() bool       { f.muted = !f.muted; return f.muted }
func (f *fakeSounds) Muted() bool            { return f.muted }

func TestSessionPassesAudioToGame(t *testing.T) {
	sounds := &fakeSounds{}
	s := NewSessionModel(SessionOptions{Game: config.DefaultBreakoutConfig(), Audio: sounds}, testRuntime())

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	next, _ = s.Update(runeKey("m"))
	s = next.(SessionModel)

	if !sounds.Muted() {
		t.Error("m in a menu-started game did not reach the session audio")
	}
	if !strings.Contains(s.View(), "[muted]") {
		t.Error("View() should show the muted marker")
	}

	next, _ = s.Update(TickMsg{Time: time.Now(), Gen: 1})
	s = next.(SessionModel)
	if len(sounds.played) != 1 {
		t.Errorf("Play() called %d times on the first tick, expected 1", len(sounds.played))
	}
}

func TestSessionAppliesDifficulty(t *testing.T) {
	s := NewSessionModel(SessionOptions{Game: config.DefaultBreakoutConfig()}, testRuntime())

	// Move to easy
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyUp})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)

	expected := config.DefaultBreakoutConfig()
	config.ApplyBreakoutPreset(&expected, config.DifficultyEasy)

	if got := s.game.Engine().BallsRemaining(); got != uint(expected.Gameplay.Balls) {
		t.Errorf("BallsRemaining() = %d, expected %d", got, expected.Gameplay.Balls)
	}
}
