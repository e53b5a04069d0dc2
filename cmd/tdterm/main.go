// Command tdterm plays the game in a terminal: every 12.5x25 px of the field
// is one character cell, the mouse places towers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"archer-defense/internal/app"
	"archer-defense/internal/config"
	"archer-defense/internal/ui"
	"archer-defense/pkg/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const (
	// one grid cell is 4 columns by 2 rows
	scaleX = 12.5
	scaleY = 25
)

var (
	configPath = flag.String("config", "data/game.toml", "path to the TOML settings file")
	logPath    = flag.String("log", "tdterm.log", "log file used when the config names none; stderr is the screen")
	muteFlag   = flag.Bool("mute", false, "disable sound")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	rt, err := app.Boot(*configPath, func(s *config.Settings) {
		if s.Logging.File == "" {
			s.Logging.File = *logPath
		}
		if *muteFlag {
			s.Audio.Enabled = false
		}
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	surface := render.NewTermSurface(screen, scaleX, scaleY)
	loop := newTermLoop(ui.NewController(rt.Game, rt.Defs), surface)

	// PollEvent blocks, so it gets its own goroutine; the game itself is only
	// touched from the select loop below.
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(rt.Settings.Game.TicksPerSecond))
	defer ticker.Stop()

	rt.Log.Info("terminal frontend started")
	for {
		select {
		case <-ctx.Done():
			rt.Log.Info("interrupted")
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !loop.handle(ev) {
				rt.Log.Info("quit", zap.Int64("tick", rt.Game.CurrentTick()))
				return nil
			}
		case <-ticker.C:
			loop.tick()
			surface.Begin()
			loop.draw()
			surface.Present()
		}
	}
}
