package main

import (
	"unicode"

	"archer-defense/internal/config"
	"archer-defense/internal/ui"
	"archer-defense/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// termLoop maps terminal events onto the controller and owns the pause flag.
type termLoop struct {
	controller *ui.Controller
	surface    *render.TermSurface

	paused  bool
	pressed tcell.ButtonMask
	inside  bool
}

func newTermLoop(controller *ui.Controller, surface *render.TermSurface) *termLoop {
	return &termLoop{controller: controller, surface: surface}
}

// handle applies one event and reports whether the loop should keep running.
func (l *termLoop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return l.handleKey(ev)
	case *tcell.EventMouse:
		l.handleMouse(ev)
	}
	return true
}

func (l *termLoop) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		l.controller.Hotkey("esc")
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := unicode.ToLower(ev.Rune()); r {
	case 'q':
		return false
	case 'p':
		l.paused = !l.paused
	default:
		if !l.paused {
			l.controller.Hotkey(string(r))
		}
	}
	return true
}

// handleMouse turns the cell under the mouse into the pixel at its center.
// A click is the press edge of a button, not every event while it is held.
func (l *termLoop) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := l.surface.ToPixel(col, row)
	buttons := ev.Buttons()
	defer func() { l.pressed = buttons }()

	inside := x < config.ScreenWidth && y < config.ScreenHeight
	if !inside {
		if l.inside {
			l.controller.Leave()
		}
		l.inside = false
		return
	}
	l.inside = true
	if l.paused {
		return
	}

	l.controller.Pointer(x, y)
	pressed := buttons &^ l.pressed
	switch {
	case pressed&tcell.Button1 != 0:
		l.controller.Click(x, y)
	case pressed&tcell.Button2 != 0:
		l.controller.Hotkey("esc")
	}
}

func (l *termLoop) tick() {
	if !l.paused {
		l.controller.Tick()
	}
}

func (l *termLoop) draw() {
	l.controller.Draw(l.surface)
	if l.paused {
		l.surface.DrawText("PAUSED", config.CanvasSize/2-37, config.CanvasSize/2-12, config.TextLightColor)
	}
}
