// internal/system/projectile.go
package system

import (
	"archer-defense/internal/entity"
	"archer-defense/internal/utils"
)

// ProjectileSystem ведёт стрелы к цели. Arrows home on the target's current
// center every tick and retire inside hitRadius. Damage was already dealt
// when the tower fired.
type ProjectileSystem struct {
	ecs       *entity.ECS
	hitRadius float64
}

func NewProjectileSystem(ecs *entity.ECS, hitRadius float64) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, hitRadius: hitRadius}
}

func (s *ProjectileSystem) Update() {
	for _, arrow := range s.ecs.Arrows {
		target, ok := s.ecs.Monster(arrow.TargetID)
		if !ok {
			// Цель пропала, стрела больше не нужна
			arrow.Retired = true
			continue
		}

		aim := target.Center()
		ux, uy, dist := utils.Normalize(aim.X-arrow.Position.X, aim.Y-arrow.Position.Y)
		step := min(arrow.Speed, dist)
		arrow.Position.X += ux * step
		arrow.Position.Y += uy * step

		if arrow.Position.DistanceTo(aim) <= s.hitRadius {
			arrow.Retired = true
		}
	}
	s.ecs.RemoveRetiredArrows()
}
