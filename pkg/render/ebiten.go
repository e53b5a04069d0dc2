package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// EbitenSurface draws onto an ebiten image, normally the screen passed to Draw.
type EbitenSurface struct {
	Screen *ebiten.Image
	Face   font.Face
	ascent int
}

func NewEbitenSurface(screen *ebiten.Image) *EbitenSurface {
	return NewEbitenSurfaceWithFace(screen, basicfont.Face7x13)
}

func NewEbitenSurfaceWithFace(screen *ebiten.Image, face font.Face) *EbitenSurface {
	return &EbitenSurface{
		Screen: screen,
		Face:   face,
		ascent: face.Metrics().Ascent.Ceil(),
	}
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.Screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *EbitenSurface) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(s.Screen, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

// DrawText moves the anchor from the top-left corner to the baseline expected by text.Draw.
func (s *EbitenSurface) DrawText(str string, x, y float64, clr color.Color) {
	text.Draw(s.Screen, str, s.Face, int(x), int(y)+s.ascent, clr)
}
