// internal/ui/button.go
package ui

import (
	"image/color"

	"archer-defense/internal/config"
	"archer-defense/pkg/render"
)

// Action is what a panel button does.
type Action int

const (
	ActionSelectTower Action = iota
	ActionCancel
	ActionStart
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float64
	Text       string
	Action     Action
	Kind       string // tower kind, only for ActionSelectTower
}

// Contains reports whether (x, y) is inside the button.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(surface render.Surface, bg color.Color) {
	surface.FillRect(b.X, b.Y, b.W, b.H, bg)
	textY := b.Y + (b.H-textHeight)/2
	surface.DrawText(b.Text, b.X+6, textY, config.TextLightColor)
}
