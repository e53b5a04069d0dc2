package ui

import (
	"archer-defense/internal/component"
	"archer-defense/internal/config"
	"archer-defense/internal/utils"
	"archer-defense/pkg/render"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y float64
}

func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// Text is the indicator line: "Wave: -" before the first wave.
func (i *WaveIndicator) Text(waveNumber int) string {
	if waveNumber <= 0 {
		return "Wave: -"
	}
	return "Wave: " + utils.ToRoman(waveNumber)
}

// Draw отрисовывает индикатор. The color follows the wave state.
func (i *WaveIndicator) Draw(surface render.Surface, waveNumber int, state component.WaveState) {
	clr := config.WaveStateColors[0]
	if int(state) >= 0 && int(state) < len(config.WaveStateColors) {
		clr = config.WaveStateColors[state]
	}
	surface.DrawText(i.Text(waveNumber), i.X, i.Y, clr)
}
