// internal/system/movement.go
package system

import (
	"math"

	"archer-defense/internal/config"
	"archer-defense/internal/entity"
	"archer-defense/internal/utils"
)

// MovementSystem walks monsters along the shared waypoints, one axis at a
// time: the horizontal gap closes before the vertical one.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update() {
	waypoints := s.ecs.Waypoints
	for _, m := range s.ecs.Monsters {
		if m.Exited {
			continue
		}
		if m.WaypointIndex >= len(waypoints) {
			m.Exited = true
			continue
		}

		target := waypoints[m.WaypointIndex]
		dx := target.X - m.Position.X
		dy := target.Y - m.Position.Y

		// Гэп не больше одного пикселя считается нулевым: без этого монстр
		// дрожит вокруг точки при дробной скорости.
		switch {
		case math.Abs(dx) > config.MovementDeadZone:
			m.Position.X += utils.Approach(dx, m.Speed)
		case math.Abs(dy) > config.MovementDeadZone:
			m.Position.X = target.X
			m.Position.Y += utils.Approach(dy, m.Speed)
		default:
			m.Position = target
			m.WaypointIndex++
			if m.WaypointIndex >= len(waypoints) {
				m.Exited = true
			}
		}
	}
}
