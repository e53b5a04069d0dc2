package ui

import (
	"archer-defense/internal/defs"
	"archer-defense/internal/interfaces"
	"archer-defense/pkg/render"
)

// Controller turns raw frontend input into game commands. Both frontends feed
// it the same pixel coordinates, so the window and the terminal behave alike.
type Controller struct {
	Game  interfaces.Session
	Panel *Panel

	hotkeys map[string]string // hotkey -> tower kind
}

func NewController(game interfaces.Session, library *defs.Library) *Controller {
	c := &Controller{
		Game:    game,
		Panel:   NewPanel(library),
		hotkeys: make(map[string]string),
	}
	for _, def := range library.Towers() {
		if def.Hotkey != "" {
			c.hotkeys[def.Hotkey] = def.Kind
		}
	}
	return c
}

// Pointer reports the cursor at (x, y). Off the field it only clears the ghost.
func (c *Controller) Pointer(x, y float64) {
	if c.Game.OnField(x, y) {
		c.Game.PointerMove(x, y)
		return
	}
	c.Game.PointerLeave()
}

// Leave reports the cursor leaving the drawing surface.
func (c *Controller) Leave() {
	c.Game.PointerLeave()
}

// Click goes to the panel first, then to the field.
func (c *Controller) Click(x, y float64) {
	if hit, _ := c.Panel.Click(x, y, c.Game); hit {
		return
	}
	c.Game.Click(x, y)
}

// Hotkey handles a key by name: tower hotkeys, "esc" cancels, "s" starts.
// It reports whether the key meant anything.
func (c *Controller) Hotkey(key string) bool {
	if kind, ok := c.hotkeys[key]; ok {
		c.Game.SelectTower(kind)
		return true
	}
	switch key {
	case "esc":
		c.Game.CancelSelection()
	case "s":
		c.Game.StartGame()
	default:
		return false
	}
	return true
}

func (c *Controller) Tick() {
	c.Game.Tick()
}

// Draw renders the field and the panel.
func (c *Controller) Draw(surface render.Surface) {
	c.Game.Draw(surface)
	c.Panel.Draw(surface, c.Game)
}
