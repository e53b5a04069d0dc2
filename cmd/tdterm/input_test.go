package main

import (
	"testing"

	"archer-defense/internal/app"
	"archer-defense/internal/defs"
	"archer-defense/internal/ui"
	"archer-defense/pkg/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func newTestLoop() (*termLoop, *app.Game) {
	lib := defs.Default()
	g := app.NewGame(nil, lib, zap.NewNop())
	return newTermLoop(ui.NewController(g, lib), render.NewTermSurface(nil, scaleX, scaleY)), g
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestQuitKeys(t *testing.T) {
	l, _ := newTestLoop()
	if !l.handle(key('x')) {
		t.Fatal("unbound key stopped the loop")
	}
	if l.handle(key('q')) {
		t.Fatal("q did not quit")
	}
	if l.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Fatal("ctrl-c did not quit")
	}
}

func TestMouseClickPlacesTower(t *testing.T) {
	l, g := newTestLoop()

	// первая кнопка панели
	l.handle(tcell.NewEventMouse(48, 5, tcell.Button1, tcell.ModNone))
	l.handle(tcell.NewEventMouse(48, 5, tcell.ButtonNone, tcell.ModNone))
	if kind, ok := g.Selection(); !ok || kind != "archer" {
		t.Fatalf("selection = %q %v", kind, ok)
	}

	// col 1, row 3 is the center-ish of grid cell (1, 0)
	l.handle(tcell.NewEventMouse(1, 3, tcell.ButtonNone, tcell.ModNone))
	l.handle(tcell.NewEventMouse(1, 3, tcell.Button1, tcell.ModNone))
	// held button must not click again
	l.handle(tcell.NewEventMouse(1, 3, tcell.Button1, tcell.ModNone))

	if len(g.Towers()) != 1 || g.Money() != 50 {
		t.Fatalf("towers %d money %d", len(g.Towers()), g.Money())
	}
}

func TestRightClickCancels(t *testing.T) {
	l, g := newTestLoop()
	l.handle(key('1'))
	if _, ok := g.Selection(); !ok {
		t.Fatal("hotkey 1 ignored")
	}
	l.handle(tcell.NewEventMouse(1, 3, tcell.Button2, tcell.ModNone))
	if _, ok := g.Selection(); ok {
		t.Fatal("right click kept the selection")
	}
}

func TestPauseStopsTicks(t *testing.T) {
	l, g := newTestLoop()
	l.handle(key('p'))
	l.tick()
	if g.CurrentTick() != 0 {
		t.Fatalf("tick advanced while paused: %d", g.CurrentTick())
	}
	l.handle(key('P'))
	l.tick()
	if g.CurrentTick() != 1 {
		t.Fatalf("tick = %d after resume", g.CurrentTick())
	}
}
