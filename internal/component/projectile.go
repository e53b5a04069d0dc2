// internal/component/projectile.go
package component

import "archer-defense/internal/types"

// Arrow - летящий снаряд. Damage is applied when the tower fires; the arrow
// itself only flies toward its target for display.
type Arrow struct {
	ID       types.EntityID
	Position Position
	TargetID types.EntityID // non-owning, the target may disappear first
	Speed    float64
	Damage   int
	Retired  bool
}
