package render

import (
	"math"
	"strings"
)

// Logical drawing sizes. Frame renderers address the simulation view as
// 800×400 and the graph view as 400×300 regardless of how many terminal
// cells back the surface.
const (
	SimWidth    = 800.0
	SimHeight   = 400.0
	GraphWidth  = 400.0
	GraphHeight = 300.0
)

// Braille patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blankBraille = 0x2800

// Surface is a character canvas addressed in logical coordinates, origin
// top-left, y down. Dots land on a braille sub-pixel grid of
// (cols*2)×(rows*4); text runes occupy whole cells and win over dots.
// Anything outside the logical bounds is silently dropped.
type Surface struct {
	cols, rows int
	lw, lh     float64
	grid       [][]rune
}

// NewSurface builds a surface of cols×rows cells spanning the logical
// size lw×lh.
func NewSurface(cols, rows int, lw, lh float64) *Surface {
	s := &Surface{cols: cols, rows: rows, lw: lw, lh: lh, grid: make([][]rune, rows)}
	for i := range s.grid {
		s.grid[i] = make([]rune, cols)
		for j := range s.grid[i] {
			s.grid[i][j] = blankBraille
		}
	}
	return s
}

// NewSimSurface returns a surface with the fixed 800×400 simulation view.
func NewSimSurface(cols, rows int) *Surface {
	return NewSurface(cols, rows, SimWidth, SimHeight)
}

// NewGraphSurface returns a surface with the fixed 400×300 graph view.
func NewGraphSurface(cols, rows int) *Surface {
	return NewSurface(cols, rows, GraphWidth, GraphHeight)
}

// Clear resets every cell to the empty braille char.
func (s *Surface) Clear() {
	for i := range s.grid {
		for j := range s.grid[i] {
			s.grid[i][j] = blankBraille
		}
	}
}

// subpixel converts logical coordinates to braille dot coordinates.
// Floor, not truncation: coordinates just left of or above the canvas must
// land on subpixel -1 so they are dropped, not snapped onto the edge.
func (s *Surface) subpixel(x, y float64) (int, int) {
	sx := int(math.Floor(x / s.lw * float64(s.cols*2)))
	sy := int(math.Floor(y / s.lh * float64(s.rows*4)))
	return sx, sy
}

// Dot sets the braille dot covering the logical point (x, y).
func (s *Surface) Dot(x, y float64) {
	s.setSub(s.subpixel(x, y))
}

func (s *Surface) setSub(sx, sy int) {
	if sx < 0 || sy < 0 {
		return
	}
	col, row := sx/2, sy/4
	if col >= s.cols || row >= s.rows {
		return
	}
	if s.grid[row][col] < blankBraille || s.grid[row][col] >= blankBraille+0x100 {
		return // text cell, dots do not overwrite it
	}
	s.grid[row][col] |= pixelMap[sy%4][sx%2]
}

// Line draws a straight segment between two logical points using
// Bresenham's algorithm on the dot grid.
func (s *Surface) Line(x0, y0, x1, y1 float64) {
	ax, ay := s.subpixel(x0, y0)
	bx, by := s.subpixel(x1, y1)
	dx, dy := absInt(bx-ax), absInt(by-ay)
	sx, sy := -1, -1
	if ax < bx {
		sx = 1
	}
	if ay < by {
		sy = 1
	}
	err := dx - dy
	for {
		s.setSub(ax, ay)
		if ax == bx && ay == by {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			ax += sx
		}
		if e2 < dx {
			err += dx
			ay += sy
		}
	}
}

// FillRect fills the axis-aligned rectangle with dots.
func (s *Surface) FillRect(x, y, w, h float64) {
	x0, y0 := s.subpixel(x, y)
	x1, y1 := s.subpixel(x+w, y+h)
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			s.setSub(sx, sy)
		}
	}
}

// FillCircle fills a disc of logical radius r around (cx, cy).
func (s *Surface) FillCircle(cx, cy, r float64) {
	x0, y0 := s.subpixel(cx-r, cy-r)
	x1, y1 := s.subpixel(cx+r, cy+r)
	scx, scy := s.subpixel(cx, cy)
	rr := float64(absInt(x1-x0)) / 2
	ry := float64(absInt(y1-y0)) / 2
	if rr < 1 {
		rr = 1
	}
	if ry < 1 {
		ry = 1
	}
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			nx := float64(sx-scx) / rr
			ny := float64(sy-scy) / ry
			if nx*nx+ny*ny <= 1 {
				s.setSub(sx, sy)
			}
		}
	}
}

// Arc strokes a circular arc of logical radius r around (cx, cy) between
// angles a0 and a1 (radians, y-down screen convention).
func (s *Surface) Arc(cx, cy, r, a0, a1 float64) {
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	// Step small enough that consecutive dots touch at this radius.
	step := 1.0 / math.Max(r, 4)
	for a := a0; a <= a1; a += step {
		s.Dot(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}

// Text writes str into whole cells starting at the cell containing the
// logical point (x, y). Runes falling outside the surface are dropped.
func (s *Surface) Text(x, y float64, str string) {
	col := int(math.Floor(x / s.lw * float64(s.cols)))
	row := int(math.Floor(y / s.lh * float64(s.rows)))
	if row < 0 || row >= s.rows {
		return
	}
	for _, r := range str {
		if col >= 0 && col < s.cols {
			s.grid[row][col] = r
		}
		col++
	}
}

// String renders the surface as rows of runes separated by newlines.
func (s *Surface) String() string {
	var b strings.Builder
	for _, row := range s.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
