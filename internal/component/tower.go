// component/tower.go
package component

import (
	"archer-defense/internal/config"
	"archer-defense/internal/types"
)

// Tower is a placed, paid-for tower. The grid cell carries the same stats for
// drawing; this record is what combat iterates over.
type Tower struct {
	ID    types.EntityID
	Kind  string
	Row   int
	Col   int
	Range float64
	Power int
	Cost  int
}

// Center is the pixel center of the tower's cell.
func (t *Tower) Center() Position {
	half := float64(config.CellSize) / 2
	return Position{
		X: float64(t.Col*config.CellSize) + half,
		Y: float64(t.Row*config.CellSize) + half,
	}
}
