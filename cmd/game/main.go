// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"archer-defense/internal/app"
	"archer-defense/internal/config"
	"archer-defense/internal/state"
	"archer-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "data/game.toml", "path to the TOML settings file")
	devMode    = flag.Bool("dev", false, "start directly in the game state, skipping the menu")
	muteFlag   = flag.Bool("mute", false, "disable sound")
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flag.Parse()

	rt, err := app.Boot(*configPath, func(s *config.Settings) {
		if *muteFlag {
			s.Audio.Enabled = false
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rt.Close()

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, ui.NewController(rt.Game, rt.Defs))
	if *devMode {
		sm.SetState(gameState)
	} else {
		sm.SetState(state.NewMenuState(sm, gameState))
	}

	ebiten.SetTPS(rt.Settings.Game.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Archer Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		rt.Log.Error("game stopped", zap.Error(err))
	}
}
