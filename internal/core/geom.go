// Package core provides fundamental types and utilities for the breakout game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Kind tags what a GameObject represents.
type Kind int

const (
	KindPaddle Kind = iota
	KindBall
	KindPlayfield
	KindBrick
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "Paddle"
	case KindBall:
		return "Ball"
	case KindPlayfield:
		return "Playfield"
	case KindBrick:
		return "Brick"
	default:
		return "Unknown"
	}
}

// Vertex is a flat-shaded vertex in logic space.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// GameObject is a generic axis-aligned game entity.
// Coordinates are in logic space where the playfield spans [-1, 1] on both axes.
type GameObject struct {
	X, Y          float64 // Center position
	Width, Height float64
	VX, VY        float64 // Velocity in units per second
	Model         []Vertex
	Kind          Kind
}

// Left returns the x-coordinate of the left edge.
func (o GameObject) Left() float64 {
	return o.X - o.Width/2
}

// Right returns the x-coordinate of the right edge.
func (o GameObject) Right() float64 {
	return o.X + o.Width/2
}

// Top returns the y-coordinate of the top edge (y grows upward).
func (o GameObject) Top() float64 {
	return o.Y + o.Height/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (o GameObject) Bottom() float64 {
	return o.Y - o.Height/2
}

// Overlaps reports whether the bounding boxes of a and b intersect.
// Edges that only touch do not count.
func Overlaps(a, b GameObject) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Bottom() < b.Top() && a.Top() > b.Bottom()
}

// Vertices returns the object's model translated to its current position.
func (o GameObject) Vertices() []Vertex {
	vertices := make([]Vertex, len(o.Model))
	copy(vertices, o.Model)
	for i := range vertices {
		vertices[i].Position[0] += float32(o.X)
		vertices[i].Position[1] += float32(o.Y)
	}
	return vertices
}

// Quad returns two triangles forming a rectangle centered on the origin.
func Quad(width, height float64, color [3]float32) []Vertex {
	w := float32(width / 2)
	h := float32(height / 2)
	return []Vertex{
		{Position: [3]float32{w, h, 0}, Color: color},
		{Position: [3]float32{-w, h, 0}, Color: color},
		{Position: [3]float32{-w, -h, 0}, Color: color},
		{Position: [3]float32{w, h, 0}, Color: color},
		{Position: [3]float32{-w, -h, 0}, Color: color},
		{Position: [3]float32{w, -h, 0}, Color: color},
	}
}

// IsoTriDown returns an isosceles triangle pointing down, centered on the origin.
func IsoTriDown(width, height float64, color [3]float32) []Vertex {
	w := float32(width / 2)
	h := float32(height / 2)
	return []Vertex{
		{Position: [3]float32{-w, h, 0}, Color: color},
		{Position: [3]float32{0, -h, 0}, Color: color},
		{Position: [3]float32{w, h, 0}, Color: color},
	}
}

// Rect is an integer cell rectangle used when drawing into a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
