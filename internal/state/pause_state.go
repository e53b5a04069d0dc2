// internal/state/pause_state.go
package state

import (
	"image/color"

	"archer-defense/internal/config"
	"archer-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the game: no ticks, the last frame stays under a veil.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	surface := render.NewEbitenSurface(screen)
	surface.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128})
	surface.DrawText("PAUSED", config.ScreenWidth/2-21, config.ScreenHeight/2-6, config.TextLightColor)
}

func (s *PauseState) Exit() {}
