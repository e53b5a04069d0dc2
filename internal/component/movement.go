// component/movement.go
package component

import "math"

// Position - компонент позиции (пиксели)
type Position struct {
	X, Y float64
}

// DistanceTo is the Euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Path is the waypoint cursor of a walking entity. The waypoints themselves
// are shared by all monsters and live in the entity store.
type Path struct {
	WaypointIndex int
}
