package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/core"
)

// Project maps a logic-space point to window pixels. The shorter window axis
// spans [-1, 1]; y grows upward in logic space and downward on screen.
func Project(x, y float32, width, height int) (float32, float32) {
	w := float32(width)
	h := float32(height)
	scale := min(w, h) / 2
	return w/2 + x*scale, h/2 - y*scale
}

// Triangles appends the vertices and indices of every engine object, in draw
// order, projected into a window of the given size.
func Triangles(vs []ebiten.Vertex, is []uint16, e *breakout.Engine, width, height int) ([]ebiten.Vertex, []uint16) {
	for o := range e.Objects() {
		vs, is = appendModel(vs, is, o.Vertices(), width, height)
	}
	return vs, is
}

func appendModel(vs []ebiten.Vertex, is []uint16, model []core.Vertex, width, height int) ([]ebiten.Vertex, []uint16) {
	for _, v := range model {
		x, y := Project(v.Position[0], v.Position[1], width, height)
		is = append(is, uint16(len(vs))) //#nosec G115 -- a frame holds a few thousand vertices
		vs = append(vs, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   1,
			SrcY:   1,
			ColorR: v.Color[0],
			ColorG: v.Color[1],
			ColorB: v.Color[2],
			ColorA: 1,
		})
	}
	return vs, is
}
