// internal/state/menu_state.go
package state

import (
	"archer-defense/internal/config"
	"archer-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState - стартовый экран. Space or a click moves on to next.
type MenuState struct {
	sm   *StateMachine
	next State
}

func NewMenuState(sm *StateMachine, next State) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.next)
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	surface := render.NewEbitenSurface(screen)
	surface.DrawText("ARCHER DEFENSE", config.ScreenWidth/2-49, config.ScreenHeight/2-40, config.TextLightColor)
	surface.DrawText("press Space or click to start", config.ScreenWidth/2-101, config.ScreenHeight/2, config.TextLightColor)
}

func (m *MenuState) Exit() {}
