// internal/system/render.go
package system

import (
	"image/color"

	"archer-defense/internal/config"
	"archer-defense/internal/defs"
	"archer-defense/internal/entity"
	"archer-defense/pkg/grid"
	"archer-defense/pkg/render"
)

// RenderSystem рисует поле и сущности на Surface.
type RenderSystem struct {
	ecs  *entity.ECS
	grid *grid.Grid
	defs *defs.Library
}

func NewRenderSystem(ecs *entity.ECS, g *grid.Grid, library *defs.Library) *RenderSystem {
	return &RenderSystem{ecs: ecs, grid: g, defs: library}
}

func (s *RenderSystem) Draw(surface render.Surface) {
	s.drawGrid(surface)
	s.drawMonsters(surface)
	s.drawArrows(surface)
}

// drawGrid follows grid.RenderOrder: towers come last so their range circles
// stay on top of the neighbouring cells.
func (s *RenderSystem) drawGrid(surface render.Surface) {
	size := float64(s.grid.Size * s.grid.CellSize)
	surface.FillRect(0, 0, size, size, config.GridLineColor)

	cs := float64(s.grid.CellSize)
	for _, cell := range s.grid.RenderOrder() {
		o := cell.Origin(s.grid.CellSize)
		surface.FillRect(o.X+0.5, o.Y+0.5, cs-1, cs-1, s.cellColor(cell))
		if cell.Type == grid.Tower && cell.Tower != nil {
			c := cell.Center(s.grid.CellSize)
			rangeColor := config.RangeColor
			if cell.Hovered {
				rangeColor = config.GhostRangeColor
			}
			surface.StrokeCircle(c.X, c.Y, cell.Tower.Range, config.RangeStroke, rangeColor)
		}
	}
}

func (s *RenderSystem) cellColor(cell grid.Cell) color.Color {
	switch cell.Type {
	case grid.Start:
		return config.StartColor
	case grid.Exit:
		return config.ExitColor
	case grid.Path:
		return config.PathColor
	case grid.Tower:
		c := config.TowerColor
		if cell.Tower != nil {
			if def, err := s.defs.Tower(cell.Tower.Kind); err == nil && def.Color.A > 0 {
				c = def.Color
			}
		}
		if cell.Hovered {
			return render.LightenColor(c)
		}
		return c
	}
	return config.EmptyColor
}

func (s *RenderSystem) drawMonsters(surface render.Surface) {
	const size = float64(config.MonsterSize)
	for _, m := range s.ecs.Monsters {
		surface.FillRect(m.Position.X, m.Position.Y, size, size, config.MonsterColor)

		barY := m.Position.Y - config.HealthBarHeight - 1
		surface.FillRect(m.Position.X, barY, size, config.HealthBarHeight, config.HealthBackColor)
		if f := m.Fraction(); f > 0 {
			surface.FillRect(m.Position.X, barY, size*f, config.HealthBarHeight, config.HealthColor)
		}
	}
}

func (s *RenderSystem) drawArrows(surface render.Surface) {
	const half = config.ArrowSize / 2
	for _, a := range s.ecs.Arrows {
		surface.FillRect(a.Position.X-half, a.Position.Y-half, config.ArrowSize, config.ArrowSize, config.ArrowColor)
	}
}
