// Package window runs breakout in a desktop window with Ebitengine. Objects
// are drawn as flat-shaded triangles straight from their vertex models.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/breakout/internal/audio"
	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/logging"
	"github.com/vovakirdan/breakout/internal/platform/episode"
	"github.com/vovakirdan/breakout/internal/storage"
)

// Default window size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

var (
	backgroundColor = color.RGBA{12, 12, 20, 255}
	hudColor        = color.RGBA{230, 230, 230, 255}
	hudFace         = text.NewGoXFace(basicfont.Face7x13)

	// whitePixel is the texture every triangle samples; vertex colors do the shading.
	whitePixel *ebiten.Image
)

func texture() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// Options wires the window game to its collaborators. Store, Audio and Logger may be nil.
type Options struct {
	Config     config.BreakoutConfig
	Difficulty config.DifficultyPreset
	Player     string
	Store      *storage.Store
	Audio      *audio.Player
	Logger     *log.Logger
}

// Game implements ebiten.Game around one breakout engine.
type Game struct {
	engine   *breakout.Engine
	control  *core.ControlState
	recorder *episode.Recorder
	opts     Options
	logger   *log.Logger

	width, height int
	frame         uint64
	lastTick      time.Time

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewGame creates a window game with a fresh episode.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	engine := breakout.New(opts.Config)

	return &Game{
		engine:   engine,
		control:  core.NewControlState(),
		recorder: episode.NewRecorder(engine, opts.Store, logger, opts.Difficulty, opts.Player),
		opts:     opts,
		logger:   logger,
		width:    DefaultWidth,
		height:   DefaultHeight,
	}
}

// Update reads input and advances the simulation by the wall-clock time since
// the previous call.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.opts.Audio != nil {
		g.logger.Debug("audio toggled", "muted", g.opts.Audio.ToggleMute())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.engine.Over() {
		g.restart()
	}

	g.frame++
	cx, cy := ebiten.CursorPosition()
	g.control.UpdateCursorPosition(g.width, g.height, float64(cx), float64(cy))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.control.RecordButton(core.ButtonPrimary, true, g.frame)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.control.RecordButton(core.ButtonPrimary, false, g.frame)
	}

	g.step(time.Now())
	return nil
}

// step runs one engine tick and everything that reacts to it.
func (g *Game) step(now time.Time) {
	var dt time.Duration
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now

	g.engine.Tick(breakout.Input{
		MouseX:  g.control.MouseX,
		Clicked: g.control.Clicked(),
	}, now, dt)

	if g.opts.Audio != nil {
		g.opts.Audio.Play(g.engine.Bounce())
	}
	g.recorder.Observe(g.engine, now)
}

// restart begins a new episode; the next click launches it.
func (g *Game) restart() {
	g.engine.Reset()
	g.control.Reset()
	g.recorder.Reset(g.engine)
	g.logger.Debug("episode reset")
}

// Draw renders every object followed by the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.vertices, g.indices = Triangles(g.vertices[:0], g.indices[:0], g.engine, g.width, g.height)
	screen.DrawTriangles(g.vertices, g.indices, texture(), &ebiten.DrawTrianglesOptions{})

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, g.status(), hudFace, op)
}

// status builds the status line text.
func (g *Game) status() string {
	st := g.engine.State(g.lastTick)
	line := fmt.Sprintf("Score %d   Balls %d   x%d   Best %d",
		st.Score, st.BallsRemaining, st.Multiplier, g.recorder.HighScore())
	if best := g.recorder.PlayerBest(); best > 0 {
		line += fmt.Sprintf("   You %d", best)
	}

	switch {
	case !st.Started:
		line += "   click to start"
	case st.Cleared:
		line += "   CLEARED! - R to restart"
	case st.Over:
		line += "   GAME OVER - R to restart"
	}
	if g.opts.Audio != nil && g.opts.Audio.Muted() {
		line += "   [muted]"
	}
	return line
}

// Layout follows the window size so the playfield stays square at any aspect ratio.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = max(outsideWidth, 1)
	g.height = max(outsideHeight, 1)
	return g.width, g.height
}

// Engine returns the episode engine.
func (g *Game) Engine() *breakout.Engine {
	return g.engine
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)

	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetWindowTitle("Breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if fps := opts.Config.Display.FPS; fps > 0 {
		ebiten.SetTPS(fps)
	}

	start := time.Now()
	err := ebiten.RunGame(g)
	g.logger.Info("session summary", "frames", g.frame, "fps",
		fmt.Sprintf("%.1f", float64(g.frame)/max(time.Since(start).Seconds(), 1e-9)))

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
