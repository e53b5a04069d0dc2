package component

import "archer-defense/pkg/grid"

// PlacementState is the tower placement interaction state.
type PlacementState int

const (
	PlacementIdle PlacementState = iota
	PlacementPending
	PlacementHovering
)

func (s PlacementState) String() string {
	switch s {
	case PlacementIdle:
		return "idle"
	case PlacementPending:
		return "pending"
	case PlacementHovering:
		return "hovering"
	}
	return "unknown"
}

// Placement tracks the tower being placed. While Hovering, the ghost tower
// occupies Cell on the grid.
type Placement struct {
	State PlacementState
	Spec  grid.TowerSpec
	Cell  grid.Coord
}

// OnGrid reports whether the ghost tower currently occupies a grid cell.
func (p *Placement) OnGrid() bool {
	return p.State == PlacementHovering
}
