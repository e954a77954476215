package tui

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '▀'
	BrickChar  = '█'
)

// hudRows is the number of rows below the playfield reserved for the status line.
const hudRows = 1

// brickColors cycles through rows of bricks, bottom to top.
var brickColors = []core.Color{
	core.ColorRed,
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Viewport maps logic space onto a grid of terminal cells. A cell counts as
// one pixel wide and two pixels tall, which keeps the playfield roughly square.
type Viewport struct {
	Cols, Rows int
}

// NewViewport returns the viewport for a terminal of the given size,
// leaving room for the status line.
func NewViewport(width, height int) Viewport {
	return Viewport{Cols: max(width, 1), Rows: max(height-hudRows, 1)}
}

// PixelW returns the viewport width in pixels.
func (v Viewport) PixelW() int { return v.Cols }

// PixelH returns the viewport height in pixels.
func (v Viewport) PixelH() int { return v.Rows * 2 }

// Scale returns pixels per logic unit.
func (v Viewport) Scale() float64 {
	return float64(min(v.PixelW(), v.PixelH())) / 2
}

// Column returns the fractional column of a logic x coordinate.
func (v Viewport) Column(x float64) float64 {
	return float64(v.PixelW())/2 + x*v.Scale()
}

// PixelRow returns the fractional pixel row of a logic y coordinate.
func (v Viewport) PixelRow(y float64) float64 {
	return float64(v.PixelH())/2 - y*v.Scale()
}

// CellRect returns the cells covered by an object. Objects smaller than a
// cell still cover one.
func (v Viewport) CellRect(o core.GameObject) core.Rect {
	c0 := int(math.Floor(v.Column(o.Left())))
	c1 := max(int(math.Ceil(v.Column(o.Right())))-1, c0)
	r0 := int(math.Floor(v.PixelRow(o.Top()) / 2))
	r1 := max(int(math.Ceil(v.PixelRow(o.Bottom())/2))-1, r0)
	return core.NewRect(c0, r0, c1-c0+1, r1-r0+1)
}

// Cell returns the cell containing a logic point.
func (v Viewport) Cell(x, y float64) (col, row int) {
	return int(math.Floor(v.Column(x))), int(math.Floor(v.PixelRow(y) / 2))
}

// Cursor feeds a mouse cell position into the control state.
func (v Viewport) Cursor(c *core.ControlState, cellX, cellY int) {
	c.UpdateCursorPosition(v.PixelW(), v.PixelH(), float64(cellX)+0.5, (float64(cellY)+0.5)*2)
}

// Rasterize draws game objects onto the screen.
func Rasterize(s *core.Screen, v Viewport, objects iter.Seq[core.GameObject]) {
	for o := range objects {
		switch o.Kind {
		case core.KindPlayfield:
			s.DrawBox(v.CellRect(o), modelColor(o))
		case core.KindBall:
			col, row := v.Cell(o.X, o.Y)
			s.SetColored(col, row, BallChar, modelColor(o))
		case core.KindPaddle:
			r := v.CellRect(o)
			s.DrawRect(r, PaddleChar, modelColor(o))
		case core.KindBrick:
			r := v.CellRect(o)
			n := len(brickColors)
			s.DrawRect(r, BrickChar, brickColors[((v.Rows-1-r.Y)%n+n)%n])
		}
	}
}

// modelColor picks the terminal color nearest to an object's vertex color.
func modelColor(o core.GameObject) core.Color {
	if len(o.Model) == 0 {
		return core.ColorDefault
	}
	return core.NearestColor(o.Model[0].Color)
}

// HUD is the data shown on the status line.
type HUD struct {
	State      core.GameState
	HighScore  int
	PlayerBest int // Hidden when zero
	Muted      bool
}

// DrawHUD writes the status line on the last screen row.
func DrawHUD(s *core.Screen, h HUD) {
	y := s.Height() - 1
	st := h.State

	left := fmt.Sprintf(" Score %d  Balls %d  x%d  Best %d", st.Score, st.BallsRemaining, st.Multiplier, h.HighScore)
	if h.PlayerBest > 0 {
		left += fmt.Sprintf("  You %d", h.PlayerBest)
	}
	if h.Muted {
		left += "  [muted]"
	}
	s.DrawText(0, y, left)

	var hint string
	color := core.ColorGray
	switch {
	case !st.Started:
		hint = "click to start"
	case st.Cleared:
		hint = "CLEARED!  r: restart"
		color = core.ColorBrightGreen
	case st.Over:
		hint = "GAME OVER  r: restart"
		color = core.ColorBrightRed
	default:
		hint = "q: quit"
	}

	x := s.Width() - len([]rune(hint)) - 1
	for i, r := range []rune(hint) {
		s.SetColored(x+i, y, r, color)
	}
}

// DrawBanner writes the end-of-episode message across the upper third of
// the playfield. It draws nothing while the episode runs.
func DrawBanner(s *core.Screen, v Viewport, st core.GameState) {
	if !st.Over {
		return
	}
	msg := " GAME OVER "
	if st.Cleared {
		msg = " CLEARED! "
	}
	s.DrawTextCentered(v.Rows/3, msg)
}
