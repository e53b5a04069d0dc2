package interfaces

import "archer-defense/internal/component"

// GameView is the read-only side of the game that the HUD draws.
type GameView interface {
	Money() int
	WaveNumber() int
	WaveState() component.WaveState
	Leaked() int
	Message() string
	Selection() (string, bool)
}

// Game is what the panel and the frontends drive.
type Game interface {
	GameView
	StartGame() error
	SelectTower(kind string) error
	CancelSelection()
}
