package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TermSurface rasterises the pixel-space draw calls onto terminal cells.
// One terminal column covers ScaleX pixels and one row ScaleY pixels.
type TermSurface struct {
	Screen tcell.Screen
	ScaleX float64
	ScaleY float64

	cols, rows int
	bg         [][]tcell.Color // background painted so far this frame
}

func NewTermSurface(screen tcell.Screen, scaleX, scaleY float64) *TermSurface {
	return &TermSurface{Screen: screen, ScaleX: scaleX, ScaleY: scaleY}
}

// Begin starts a frame: clears the screen and the background buffer.
func (s *TermSurface) Begin() {
	s.cols, s.rows = s.Screen.Size()
	if len(s.bg) != s.rows || (s.rows > 0 && len(s.bg[0]) != s.cols) {
		s.bg = make([][]tcell.Color, s.rows)
		for i := range s.bg {
			s.bg[i] = make([]tcell.Color, s.cols)
		}
	}
	for _, row := range s.bg {
		for i := range row {
			row[i] = tcell.ColorDefault
		}
	}
	s.Screen.Clear()
}

// Present flushes the frame to the terminal.
func (s *TermSurface) Present() {
	s.Screen.Show()
}

// ToPixel maps a terminal cell to the pixel at its center.
func (s *TermSurface) ToPixel(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.ScaleX, (float64(row) + 0.5) * s.ScaleY
}

// FillRect paints every terminal cell whose center lies inside the rectangle.
// A rectangle too small to cover any center still shows up as one glyph.
func (s *TermSurface) FillRect(x, y, w, h float64, clr color.Color) {
	c := termColor(clr)
	covered := false
	for row := int(math.Floor(y / s.ScaleY)); float64(row)*s.ScaleY < y+h; row++ {
		for col := int(math.Floor(x / s.ScaleX)); float64(col)*s.ScaleX < x+w; col++ {
			cx, cy := s.ToPixel(col, row)
			if cx < x || cx >= x+w || cy < y || cy >= y+h {
				continue
			}
			covered = true
			if s.inside(col, row) {
				s.bg[row][col] = c
				s.Screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(c))
			}
		}
	}
	if !covered {
		s.put(int((x+w/2)/s.ScaleX), int((y+h/2)/s.ScaleY), '■', c)
	}
}

func (s *TermSurface) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	c := termColor(clr)
	steps := int(2*math.Pi*r/math.Min(s.ScaleX, s.ScaleY))*2 + 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col := int(math.Floor((cx + r*math.Cos(a)) / s.ScaleX))
		row := int(math.Floor((cy + r*math.Sin(a)) / s.ScaleY))
		s.put(col, row, '·', c)
	}
}

func (s *TermSurface) DrawText(str string, x, y float64, clr color.Color) {
	c := termColor(clr)
	col := int(math.Floor(x / s.ScaleX))
	row := int(math.Floor(y / s.ScaleY))
	for i, r := range []rune(str) {
		s.put(col+i, row, r, c)
	}
}

// put draws a glyph over whatever background was painted at the cell.
func (s *TermSurface) put(col, row int, r rune, fg tcell.Color) {
	if !s.inside(col, row) {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(s.bg[row][col])
	s.Screen.SetContent(col, row, r, nil, style)
}

func (s *TermSurface) inside(col, row int) bool {
	return row >= 0 && row < len(s.bg) && col >= 0 && col < len(s.bg[row])
}

func termColor(c color.Color) tcell.Color {
	r, g, b := RGB8(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
