package interfaces

import "archer-defense/pkg/render"

// Pointer is the field input of the game, in pixels.
type Pointer interface {
	PointerMove(x, y float64)
	PointerLeave()
	Click(x, y float64) error
	OnField(x, y float64) bool
}

// Session is a whole running game as a frontend sees it.
type Session interface {
	Game
	Pointer
	Tick()
	Draw(surface render.Surface)
}
