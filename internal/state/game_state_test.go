package state

import (
	"slices"
	"testing"

	"archer-defense/internal/app"
	"archer-defense/internal/defs"
	"archer-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool { return slices.Contains(keys, k) }
}

func TestPressedHotkeysOrder(t *testing.T) {
	tests := []struct {
		keys []ebiten.Key
		want []string
	}{
		{nil, nil},
		{[]ebiten.Key{ebiten.KeyEscape, ebiten.Key1}, []string{"1", "esc"}},
		{[]ebiten.Key{ebiten.KeyS, ebiten.Key2, ebiten.KeyP}, []string{"2", "s"}},
	}
	for _, tt := range tests {
		for i := 0; i < 20; i++ {
			if got := pressedHotkeys(pressed(tt.keys...)); !slices.Equal(got, tt.want) {
				t.Fatalf("pressedHotkeys(%v) = %q, want %q", tt.keys, got, tt.want)
			}
		}
	}
}

func TestEscWithTowerKeyCancels(t *testing.T) {
	lib := defs.Default()
	g := app.NewGame(nil, lib, zap.NewNop())
	c := ui.NewController(g, lib)

	for _, name := range pressedHotkeys(pressed(ebiten.Key1, ebiten.KeyEscape)) {
		c.Hotkey(name)
	}
	if _, ok := g.Selection(); ok {
		t.Fatal("selection survived Esc pressed in the same frame")
	}
}
