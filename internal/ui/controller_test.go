package ui

import (
	"testing"

	"archer-defense/internal/app"
	"archer-defense/internal/component"
	"archer-defense/internal/defs"
	"archer-defense/pkg/grid"
	"archer-defense/pkg/render"

	"go.uber.org/zap"
)

func newTestController() (*Controller, *app.Game) {
	lib := defs.Default()
	g := app.NewGame(nil, lib, zap.NewNop())
	return NewController(g, lib), g
}

func TestControllerPlacesTowerFromPanel(t *testing.T) {
	c, g := newTestController()

	x, y := center(c.Panel.Buttons[0])
	c.Click(x, y)
	if kind, ok := g.Selection(); !ok || kind != "archer" {
		t.Fatalf("selection = %q %v", kind, ok)
	}

	c.Pointer(25, 75)
	if g.Grid.Count(grid.Tower) != 1 {
		t.Fatal("no ghost under the pointer")
	}
	c.Pointer(x, y) // back over the panel
	if g.Grid.Count(grid.Tower) != 0 {
		t.Fatal("ghost stayed while the pointer is on the panel")
	}

	c.Pointer(25, 75)
	c.Click(25, 75)
	if len(g.Towers()) != 1 || g.Money() != 50 {
		t.Fatalf("towers %d money %d", len(g.Towers()), g.Money())
	}
}

func TestControllerHotkeys(t *testing.T) {
	c, g := newTestController()

	if !c.Hotkey("1") {
		t.Fatal("hotkey 1 ignored")
	}
	if kind, _ := g.Selection(); kind != "archer" {
		t.Fatalf("selection = %q", kind)
	}
	c.Hotkey("esc")
	if _, ok := g.Selection(); ok {
		t.Fatal("esc kept the selection")
	}
	c.Hotkey("2")
	if g.Message() != "Not enough money" {
		t.Fatalf("message = %q", g.Message())
	}
	c.Hotkey("s")
	if g.WaveState() != component.WaveStarted {
		t.Fatalf("state = %s", g.WaveState())
	}
	if c.Hotkey("z") {
		t.Fatal("unbound key reported as handled")
	}
}

func TestControllerDrawsFieldThenPanel(t *testing.T) {
	c, _ := newTestController()
	rec := &render.Recorder{}
	c.Draw(rec)

	texts := rec.Texts()
	if len(texts) == 0 || texts[0] != "Money: 100" {
		t.Fatalf("texts = %q", texts)
	}
	if rec.Ops[0].W != 500 {
		t.Fatalf("first op should be the field background, got %+v", rec.Ops[0])
	}
}
