// internal/system/wave.go
package system

import (
	"errors"

	"archer-defense/internal/component"
	"archer-defense/internal/defs"
	"archer-defense/internal/entity"
	"archer-defense/internal/event"

	"go.uber.org/zap"
)

var ErrWavesAlreadyStarted = errors.New("waves already started")

// WaveSystem spawns monsters on a tick countdown and walks the wave list.
// Spawning runs inside the tick, so it never races the rest of the update.
type WaveSystem struct {
	ecs             *entity.ECS
	defs            *defs.Library
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
	spawnInterval   int
	spawnPoint      component.Position
}

func NewWaveSystem(ecs *entity.ECS, library *defs.Library, eventDispatcher *event.Dispatcher, log *zap.Logger,
	spawnIntervalTicks int, spawnPoint component.Position) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		defs:            library,
		eventDispatcher: eventDispatcher,
		log:             log,
		spawnInterval:   max(1, spawnIntervalTicks),
		spawnPoint:      spawnPoint,
	}
}

// Start begins the first wave. Only valid from NotStarted.
func (s *WaveSystem) Start() error {
	if s.ecs.Wave.State != component.WaveNotStarted {
		return ErrWavesAlreadyStarted
	}
	s.startWave(0)
	return nil
}

// startWave replaces the spawn cursor wholesale, so nothing from the previous
// wave can keep spawning.
func (s *WaveSystem) startWave(index int) {
	tier := s.defs.Waves.Tier(index)
	s.defs.MustDifficulty(tier)

	*s.ecs.Wave = component.Wave{
		State:          component.WaveStarted,
		Index:          index,
		Tier:           tier,
		Remaining:      s.defs.Waves.Counts[index],
		SpawnCountdown: s.spawnInterval,
	}
	s.log.Info("wave started",
		zap.Int("wave", index+1),
		zap.Int("tier", tier),
		zap.Int("monsters", s.ecs.Wave.Remaining))
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: index})
}

// Update counts down to the next spawn.
func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	if wave.State != component.WaveStarted || wave.Remaining <= 0 {
		return
	}
	wave.SpawnCountdown--
	if wave.SpawnCountdown > 0 {
		return
	}
	s.spawnMonster(wave.Tier)
	wave.Remaining--
	wave.SpawnCountdown = s.spawnInterval
}

func (s *WaveSystem) spawnMonster(tier int) {
	d := s.defs.MustDifficulty(tier)
	m := &component.Monster{
		Position: s.spawnPoint,
		Health:   component.Health{Current: d.MaxHealth, Max: d.MaxHealth},
		Speed:    d.Speed,
		Tier:     tier,
	}
	s.ecs.AddMonster(m)
	s.log.Debug("monster spawned", zap.Uint64("id", uint64(m.ID)), zap.Int("tier", tier))
	s.eventDispatcher.Dispatch(event.Event{Type: event.MonsterSpawned, Data: m})
}

// CheckAdvance moves to the next wave once the current one is fully spawned
// and no monster is left, or finishes the game after the last wave.
func (s *WaveSystem) CheckAdvance() {
	wave := s.ecs.Wave
	if wave.State != component.WaveStarted || wave.Remaining > 0 || len(s.ecs.Monsters) > 0 {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Index})

	next := wave.Index + 1
	if next >= s.defs.Waves.Len() {
		wave.State = component.WaveFinished
		s.log.Info("all waves cleared", zap.Int("waves", s.defs.Waves.Len()))
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameFinished})
		return
	}
	s.startWave(next)
}
