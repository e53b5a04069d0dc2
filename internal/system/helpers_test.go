package system

import (
	"archer-defense/internal/component"
	"archer-defense/internal/config"
	"archer-defense/internal/entity"
	"archer-defense/pkg/grid"
)

func newTestECS(money int) (*entity.ECS, *grid.Grid) {
	g := grid.New(config.GridSize, config.CellSize)
	ecs := entity.NewECS(money)
	for _, p := range g.Waypoints(config.MonsterOffset) {
		ecs.Waypoints = append(ecs.Waypoints, component.Position{X: p.X, Y: p.Y})
	}
	return ecs, g
}

// monsterCenteredAt returns a monster whose center sits on (x, y).
func monsterCenteredAt(x, y float64, health int) *component.Monster {
	half := float64(config.MonsterSize) / 2
	return &component.Monster{
		Position: component.Position{X: x - half, Y: y - half},
		Health:   component.Health{Current: health, Max: health},
		Speed:    1,
		Tier:     1,
	}
}

// towerAt returns a tower on (row, col).
func towerAt(row, col int, rng float64, power int) *component.Tower {
	return &component.Tower{Kind: "archer", Row: row, Col: col, Range: rng, Power: power, Cost: 50}
}
