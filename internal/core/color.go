package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette holds approximate RGB values for the named colors.
var palette = map[Color][3]float32{
	ColorRed:           {0.5, 0, 0},
	ColorGreen:         {0, 0.5, 0},
	ColorYellow:        {0.5, 0.5, 0},
	ColorBlue:          {0, 0, 0.5},
	ColorMagenta:       {0.5, 0, 0.5},
	ColorCyan:          {0, 0.5, 0.5},
	ColorWhite:         {0.75, 0.75, 0.75},
	ColorBrightRed:     {1, 0, 0},
	ColorBrightGreen:   {0, 1, 0.5},
	ColorBrightYellow:  {1, 1, 0},
	ColorBrightBlue:    {0.3, 0.3, 1},
	ColorBrightMagenta: {0.26, 0.05, 0.67},
	ColorBrightCyan:    {0, 1, 1},
	ColorBrightWhite:   {1, 1, 1},
	ColorOrange:        {1, 0.53, 0},
	ColorGray:          {0.5, 0.5, 0.5},
}

// NearestColor returns the palette color closest to an RGB triple in [0, 1].
func NearestColor(rgb [3]float32) Color {
	best := ColorDefault
	bestDist := float32(-1)
	for c, p := range palette {
		dr := rgb[0] - p[0]
		dg := rgb[1] - p[1]
		db := rgb[2] - p[2]
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist || (d == bestDist && c < best) {
			best = c
			bestDist = d
		}
	}
	return best
}
