// internal/state/game_state.go
package state

import (
	"archer-defense/internal/config"
	"archer-defense/internal/ui"
	"archer-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hotkey struct {
	key  ebiten.Key
	name string
}

// hotkeys are applied in this order when pressed in the same frame, so Esc
// together with a tower key always ends with no selection.
var hotkeys = []hotkey{
	{ebiten.Key1, "1"},
	{ebiten.Key2, "2"},
	{ebiten.Key3, "3"},
	{ebiten.Key4, "4"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyEscape, "esc"},
}

// pressedHotkeys returns the names of the hotkeys for which justPressed holds,
// in hotkeys order.
func pressedHotkeys(justPressed func(ebiten.Key) bool) []string {
	var names []string
	for _, h := range hotkeys {
		if justPressed(h.key) {
			names = append(names, h.name)
		}
	}
	return names
}

// GameState - состояние игры. One ebiten Update is one game tick.
type GameState struct {
	sm         *StateMachine
	controller *ui.Controller

	lastX, lastY int
	inWindow     bool
}

func NewGameState(sm *StateMachine, controller *ui.Controller) *GameState {
	return &GameState{sm: sm, controller: controller}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}
	for _, name := range pressedHotkeys(inpututil.IsKeyJustPressed) {
		g.controller.Hotkey(name)
	}

	g.handlePointer()
	g.controller.Tick()
	return nil
}

// handlePointer forwards cursor moves and left clicks. Right click cancels
// the selection.
func (g *GameState) handlePointer() {
	x, y := ebiten.CursorPosition()
	inWindow := x >= 0 && y >= 0 && x < config.ScreenWidth && y < config.ScreenHeight
	switch {
	case !inWindow && g.inWindow:
		g.controller.Leave()
	case inWindow && (x != g.lastX || y != g.lastY || !g.inWindow):
		g.controller.Pointer(float64(x), float64(y))
	}
	g.lastX, g.lastY, g.inWindow = x, y, inWindow

	if !inWindow {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.controller.Click(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.controller.Hotkey("esc")
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.controller.Draw(render.NewEbitenSurface(screen))
}

func (g *GameState) Exit() {}
