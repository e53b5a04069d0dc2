// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"archer-defense/internal/component"
	"archer-defense/internal/config"
	"archer-defense/internal/defs"
	"archer-defense/internal/interfaces"
	"archer-defense/pkg/render"
)

const (
	panelMargin   = 8
	lineHeight    = 25 // one terminal row
	textHeight    = 13 // basicfont 7x13
	buttonHeight  = 40
	buttonSpacing = 10
	buttonsTop    = 125
	// WrapWidth fits the panel on both the window and the terminal.
	WrapWidth = 15
)

// Panel is the side panel right of the field: the HUD lines, one button per
// tower kind, Cancel and Start, and the transient message under them.
type Panel struct {
	X, Y, Width, Height float64
	Buttons             []*Button

	wave     *WaveIndicator
	costs    map[string]int
	messageY float64
}

// NewPanel lays out the panel for the towers in library.
func NewPanel(library *defs.Library) *Panel {
	x := float64(config.CanvasSize)
	p := &Panel{
		X:      x,
		Width:  config.PanelWidth,
		Height: config.ScreenHeight,
		wave:   NewWaveIndicator(x+panelMargin, 10+lineHeight),
		costs:  make(map[string]int),
	}

	y := float64(buttonsTop)
	add := func(text string, action Action, kind string) {
		p.Buttons = append(p.Buttons, &Button{
			X: x + panelMargin, Y: y,
			W: config.PanelWidth - 2*panelMargin, H: buttonHeight,
			Text: text, Action: action, Kind: kind,
		})
		y += buttonHeight + buttonSpacing
	}
	for _, def := range library.Towers() {
		p.costs[def.Kind] = def.Cost
		add(towerLabel(def), ActionSelectTower, def.Kind)
	}
	add("Cancel", ActionCancel, "")
	add("Start", ActionStart, "")
	p.messageY = y + buttonSpacing
	return p
}

func towerLabel(def defs.TowerDefinition) string {
	name := def.Kind
	if fields := strings.Fields(def.Name); len(fields) > 0 {
		name = fields[0]
	}
	if def.Hotkey != "" {
		return fmt.Sprintf("%s %s $%d", def.Hotkey, name, def.Cost)
	}
	return fmt.Sprintf("%s $%d", name, def.Cost)
}

// Contains reports whether (x, y) is on the panel.
func (p *Panel) Contains(x, y float64) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// HitTest returns the button under (x, y), or nil.
func (p *Panel) HitTest(x, y float64) *Button {
	for _, b := range p.Buttons {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Click runs the button under (x, y). It reports whether a button was hit;
// the error is the game's refusal, already shown as the game message.
func (p *Panel) Click(x, y float64, game interfaces.Game) (bool, error) {
	b := p.HitTest(x, y)
	if b == nil {
		return false, nil
	}
	switch b.Action {
	case ActionSelectTower:
		return true, game.SelectTower(b.Kind)
	case ActionCancel:
		game.CancelSelection()
	case ActionStart:
		return true, game.StartGame()
	}
	return true, nil
}

// Draw отрисовывает панель.
func (p *Panel) Draw(surface render.Surface, view interfaces.GameView) {
	surface.FillRect(p.X, p.Y, p.Width, p.Height, config.BackgroundColor)

	x := p.X + panelMargin
	surface.DrawText(fmt.Sprintf("Money: %d", view.Money()), x, 10, config.TextLightColor)
	p.wave.Draw(surface, view.WaveNumber(), view.WaveState())
	surface.DrawText(view.WaveState().String(), x, 10+2*lineHeight, config.TextLightColor)
	surface.DrawText(fmt.Sprintf("Leaked: %d", view.Leaked()), x, 10+3*lineHeight, config.TextLightColor)

	selected, _ := view.Selection()
	for _, b := range p.Buttons {
		b.Draw(surface, p.buttonColor(b, view, selected))
	}

	if msg := view.Message(); msg != "" {
		for i, line := range WrapText(msg, WrapWidth) {
			surface.DrawText(line, x, p.messageY+float64(i*lineHeight), config.MessageColor)
		}
	}
}

func (p *Panel) buttonColor(b *Button, view interfaces.GameView, selected string) color.Color {
	switch b.Action {
	case ActionSelectTower:
		if b.Kind == selected {
			return config.ButtonDownColor
		}
		if view.Money() < p.costs[b.Kind] {
			return render.DarkenColor(config.ButtonColor)
		}
	case ActionCancel:
		if selected == "" {
			return config.ButtonMutedColor
		}
	case ActionStart:
		if view.WaveState() != component.WaveNotStarted {
			return config.ButtonMutedColor
		}
	}
	return config.ButtonColor
}

// WrapText splits s into lines of at most width runes, breaking between
// words. A word longer than width gets a line of its own.
func WrapText(s string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
