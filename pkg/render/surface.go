// pkg/render/surface.go
package render

import "image/color"

// Surface is the 2D target the game draws on. Each call carries its whole
// visual state; a surface keeps no current fill or stroke between calls.
type Surface interface {
	// FillRect fills the axis-aligned rectangle with top-left (x, y).
	FillRect(x, y, w, h float64, clr color.Color)
	// StrokeCircle outlines a circle centered on (cx, cy).
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
	// DrawText writes s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, clr color.Color)
}
