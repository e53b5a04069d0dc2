package component

import (
	"archer-defense/internal/config"
	"archer-defense/internal/types"
)

// Monster is a walking enemy. Position is the top-left corner of its square.
type Monster struct {
	ID       types.EntityID
	Position Position
	Health
	Speed float64 // pixels per tick
	Path
	Tier   int
	Exited bool // walked past the last waypoint
}

// Center is the middle of the monster's square; combat and arrows aim here.
func (m *Monster) Center() Position {
	half := float64(config.MonsterSize) / 2
	return Position{X: m.Position.X + half, Y: m.Position.Y + half}
}
