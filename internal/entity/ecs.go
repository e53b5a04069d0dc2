// internal/entity/ecs.go
package entity

import (
	"archer-defense/internal/component"
	"archer-defense/internal/types"
)

// ECS holds every live entity of one game. Slices keep insertion order:
// combat picks the first monster in range, so iteration order is part of
// the game rules.
type ECS struct {
	Tick      int64
	NextID    types.EntityID
	Monsters  []*component.Monster
	Arrows    []*component.Arrow
	Towers    []*component.Tower
	Waypoints []component.Position
	Wave      *component.Wave
	Placement *component.Placement
	Message   *component.Message
	Money     int
	Killed    int
	Leaked    int
}

func NewECS(money int) *ECS {
	return &ECS{
		NextID:    1,
		Wave:      &component.Wave{State: component.WaveNotStarted},
		Placement: &component.Placement{State: component.PlacementIdle},
		Money:     money,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddMonster(m *component.Monster) {
	if m.ID == 0 {
		m.ID = ecs.NewEntity()
	}
	ecs.Monsters = append(ecs.Monsters, m)
}

func (ecs *ECS) AddArrow(a *component.Arrow) {
	if a.ID == 0 {
		a.ID = ecs.NewEntity()
	}
	ecs.Arrows = append(ecs.Arrows, a)
}

func (ecs *ECS) AddTower(t *component.Tower) {
	if t.ID == 0 {
		t.ID = ecs.NewEntity()
	}
	ecs.Towers = append(ecs.Towers, t)
}

// Monster finds a live monster by ID.
func (ecs *ECS) Monster(id types.EntityID) (*component.Monster, bool) {
	for _, m := range ecs.Monsters {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// RemoveMonsters drops every monster for which remove returns true, keeping
// the order of the rest. remove sees each monster exactly once.
func (ecs *ECS) RemoveMonsters(remove func(*component.Monster) bool) {
	kept := ecs.Monsters[:0]
	for _, m := range ecs.Monsters {
		if !remove(m) {
			kept = append(kept, m)
		}
	}
	clear(ecs.Monsters[len(kept):])
	ecs.Monsters = kept
}

// RemoveRetiredArrows drops arrows that finished their flight.
func (ecs *ECS) RemoveRetiredArrows() {
	kept := ecs.Arrows[:0]
	for _, a := range ecs.Arrows {
		if !a.Retired {
			kept = append(kept, a)
		}
	}
	clear(ecs.Arrows[len(kept):])
	ecs.Arrows = kept
}
