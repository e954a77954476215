package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/logging"
	"github.com/vovakirdan/breakout/internal/platform/episode"
	"github.com/vovakirdan/breakout/internal/storage"
)

// Sounds plays bounce effects for a running game.
type Sounds interface {
	Play(b breakout.Bounce)
	ToggleMute() bool
	Muted() bool
}

// Options wires a game model to its collaborators. Store, Audio and Logger may be nil.
type Options struct {
	Config     config.BreakoutConfig
	Difficulty config.DifficultyPreset
	Player     string
	Store      *storage.Store
	Audio      Sounds
	Logger     *log.Logger
	AllowBack  bool   // Esc/B leaves the game instead of being ignored
	Generation uint64 // Tags the tick loop of this game
}

// Model is the Bubble Tea model for running a breakout episode in a terminal.
type Model struct {
	engine    *breakout.Engine
	control   *core.ControlState
	screen    *core.Screen
	viewport  Viewport
	keyMapper *KeyMapper
	opts      Options
	config    core.RuntimeConfig
	logger    *log.Logger
	recorder  *episode.Recorder

	frame      uint64
	firstTick  time.Time
	lastTick   time.Time
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model with a fresh episode.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Config.Display.FPS
	}

	engine := breakout.New(opts.Config)
	return Model{
		engine:    engine,
		control:   core.NewControlState(),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		viewport:  NewViewport(cfg.ScreenW, cfg.ScreenH),
		keyMapper: NewKeyMapper(),
		opts:      opts,
		config:    cfg,
		logger:    logger,
		recorder:  episode.NewRecorder(engine, opts.Store, logger, opts.Difficulty, opts.Player),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.opts.Generation)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.opts.Generation {
			// Left over from an earlier game of the same session
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logSummary(time.Now())
		return m, tea.Quit
	}

	switch action {
	case core.ActionRestart:
		if m.engine.Over() {
			m.restart()
		}
	case core.ActionMute:
		if m.opts.Audio != nil {
			muted := m.opts.Audio.ToggleMute()
			m.logger.Debug("audio toggled", "muted", muted)
		}
	case core.ActionBack:
		if m.opts.AllowBack {
			m.backToMenu = true
			m.logSummary(time.Now())
		}
	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleMouse feeds pointer motion and button edges into the control state.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.viewport.Cursor(m.control, msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if b, ok := m.keyMapper.MapMouseButton(msg.Button); ok {
			m.control.RecordButton(b, true, m.frame)
		}
	case tea.MouseActionRelease:
		// Some terminals do not report which button was released
		b, ok := m.keyMapper.MapMouseButton(msg.Button)
		if !ok {
			b = core.ButtonPrimary
		}
		m.control.RecordButton(b, false, m.frame)
	}

	return m, nil
}

// handleResize processes window resize events. The episode is resolution
// independent and keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.viewport = NewViewport(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the engine by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if m.lastTick.IsZero() {
		m.firstTick = now
	} else {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.frame++

	m.engine.Tick(breakout.Input{
		MouseX:  m.control.MouseX,
		Clicked: m.control.Clicked(),
	}, now, dt)

	if m.opts.Audio != nil {
		m.opts.Audio.Play(m.engine.Bounce())
	}
	m.recorder.Observe(m.engine, now)

	return m, tickCmd(m.config.TickRate, m.opts.Generation)
}

// restart begins a new episode; the next click launches it.
func (m *Model) restart() {
	m.engine.Reset()
	m.control.Reset()
	m.recorder.Reset(m.engine)
	m.logger.Debug("episode reset")
}

// logSummary reports frame count and average frame rate for the session.
func (m Model) logSummary(now time.Time) {
	if m.firstTick.IsZero() {
		return
	}
	elapsed := now.Sub(m.firstTick).Seconds()
	fps := 0.0
	if elapsed > 0 {
		fps = float64(m.frame) / elapsed
	}
	m.logger.Info("session summary", "frames", m.frame, "fps", fmt.Sprintf("%.1f", fps))
}

// render draws the current state into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	Rasterize(m.screen, m.viewport, m.engine.Objects())
	state := m.engine.State(m.lastTick)
	DrawBanner(m.screen, m.viewport, state)
	DrawHUD(m.screen, HUD{
		State:      state,
		HighScore:  m.recorder.HighScore(),
		PlayerBest: m.recorder.PlayerBest(),
		Muted:      m.opts.Audio != nil && m.opts.Audio.Muted(),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Engine returns the episode engine.
func (m Model) Engine() *breakout.Engine {
	return m.engine
}

// Run starts the Bubble Tea program with a new game model.
func Run(opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the pointer without a button held
	)

	_, err := p.Run()
	return err
}
