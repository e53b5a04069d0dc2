// internal/config/config.go
package config

import "image/color"

const (
	GridSize    = 10
	CellSize    = 50
	CanvasSize  = GridSize * CellSize // 500x500, the playing field
	PanelWidth  = 200
	ScreenWidth = CanvasSize + PanelWidth
	// ScreenHeight совпадает с высотой поля
	ScreenHeight = CanvasSize

	TicksPerSecond = 60

	MonsterSize   = 20
	MonsterOffset = (CellSize - MonsterSize) / 2 // монстр рисуется по центру клетки
	// MovementDeadZone collapses a waypoint gap of at most one pixel to zero.
	MovementDeadZone = 1.0

	ArrowSpeed     = 5.0
	ArrowHitRadius = 5.0
	ArrowSize      = 4.0

	HealthBarHeight = 3.0
	RangeStroke     = 2.0

	InitialMoney = 100
	KillReward   = 10

	SpawnIntervalMs   = 2000
	CombatIntervalMs  = 1000
	MessageDurationMs = 3000
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GridLineColor    = color.RGBA{200, 200, 200, 255}
	EmptyColor       = color.RGBA{255, 255, 255, 255}
	PathColor        = color.RGBA{128, 128, 128, 255}
	StartColor       = color.RGBA{0, 0, 0, 255}
	ExitColor        = color.RGBA{0, 0, 255, 255}
	TowerColor       = color.RGBA{0, 128, 0, 255}
	GhostTowerColor  = color.RGBA{120, 200, 120, 255}
	RangeColor       = color.RGBA{255, 0, 0, 255}
	GhostRangeColor  = color.RGBA{255, 120, 120, 200}
	MonsterColor     = color.RGBA{255, 0, 0, 255}
	HealthBackColor  = color.RGBA{60, 0, 0, 255}
	HealthColor      = color.RGBA{50, 205, 50, 255}
	ArrowColor       = color.RGBA{139, 69, 19, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	MessageColor     = color.RGBA{255, 80, 80, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonDownColor  = color.RGBA{220, 60, 60, 220}
	ButtonMutedColor = color.RGBA{90, 90, 100, 220}
	WaveStateColors  = []color.RGBA{
		{150, 150, 150, 255}, // not started
		{220, 60, 60, 255},   // wave running
		{70, 130, 180, 255},  // all waves cleared
	}
)
