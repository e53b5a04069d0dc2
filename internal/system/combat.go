package system

import (
	"archer-defense/internal/component"
	"archer-defense/internal/entity"
	"archer-defense/internal/event"

	"go.uber.org/zap"
)

// CombatSystem управляет атакой башен. It runs on a slower cadence than the
// frame: once every interval ticks.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
	interval        int
	arrowSpeed      float64
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, log *zap.Logger, intervalTicks int, arrowSpeed float64) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		log:             log,
		interval:        max(1, intervalTicks),
		arrowSpeed:      arrowSpeed,
	}
}

// Update resolves combat when the current tick falls on the combat cadence.
func (s *CombatSystem) Update() {
	if s.ecs.Tick%int64(s.interval) != 0 {
		return
	}
	s.Resolve()
}

// Resolve lets every tower shoot once. A tower takes the first living monster
// in insertion order that is within range, not the nearest one. Damage lands
// immediately; the arrow only shows the shot.
func (s *CombatSystem) Resolve() {
	for _, tower := range s.ecs.Towers {
		origin := tower.Center()
		for _, m := range s.ecs.Monsters {
			if !m.Alive() || m.Exited {
				continue
			}
			if origin.DistanceTo(m.Center()) > tower.Range {
				continue
			}
			s.fire(tower, m)
			break
		}
	}
}

func (s *CombatSystem) fire(tower *component.Tower, target *component.Monster) {
	arrow := &component.Arrow{
		Position: tower.Center(),
		TargetID: target.ID,
		Speed:    s.arrowSpeed,
		Damage:   tower.Power,
	}
	s.ecs.AddArrow(arrow)
	target.TakeDamage(tower.Power)

	s.log.Debug("tower fired",
		zap.Uint64("tower", uint64(tower.ID)),
		zap.Uint64("target", uint64(target.ID)),
		zap.Int("health", target.Current))
	s.eventDispatcher.Dispatch(event.Event{Type: event.ArrowFired, Data: arrow})
}
