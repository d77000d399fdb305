package render

import (
	"math"

	"github.com/lixenwraith/fruit-fighter/vmath"
)

// Screen rows reserved outside the playfield
const (
	HeaderRows = 1
	FooterRows = 1
)

// CellMapper converts between terminal cells and virtual viewport pixels
// The playfield starts below the header row
type CellMapper struct {
	CellWidth  float64
	CellHeight float64
}

// Viewport returns the playfield size in pixels for a screen of cols x rows
func (m CellMapper) Viewport(cols, rows int) (width, height float64) {
	playRows := max(rows-HeaderRows-FooterRows, 1)
	return float64(max(cols, 1)) * m.CellWidth, float64(playRows) * m.CellHeight
}

// ToCell maps a pixel to the screen cell containing it
func (m CellMapper) ToCell(p vmath.Point) (col, row int) {
	col = int(math.Floor(p.X / m.CellWidth))
	row = int(math.Floor(p.Y/m.CellHeight)) + HeaderRows
	return col, row
}

// ToPixel maps a screen cell to the pixel at its centre
func (m CellMapper) ToPixel(col, row int) vmath.Point {
	return vmath.Point{
		X: (float64(col) + 0.5) * m.CellWidth,
		Y: (float64(row-HeaderRows) + 0.5) * m.CellHeight,
	}
}
