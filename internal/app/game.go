// internal/app/game.go
package app

import (
	"errors"

	"archer-defense/internal/component"
	"archer-defense/internal/config"
	"archer-defense/internal/defs"
	"archer-defense/internal/entity"
	"archer-defense/internal/event"
	"archer-defense/internal/system"
	"archer-defense/internal/utils"
	"archer-defense/pkg/grid"
	"archer-defense/pkg/render"

	"go.uber.org/zap"
)

// Rewarder decides how much money a kill is worth.
type Rewarder interface {
	Reward(m *component.Monster) int
}

// FixedReward pays the same amount for every monster.
type FixedReward int

func (r FixedReward) Reward(*component.Monster) int { return int(r) }

// Option tweaks a Game before its first tick.
type Option func(*Game)

// WithRewarder replaces the fixed kill reward.
func WithRewarder(r Rewarder) Option {
	return func(g *Game) { g.Rewarder = r }
}

// Game holds the main game state and logic.
type Game struct {
	Grid     *grid.Grid
	ECS      *entity.ECS
	Defs     *defs.Library
	Settings *config.Settings
	Rewarder Rewarder

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	PlacementSystem  *system.PlacementSystem
	MessageSystem    *system.MessageSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher

	log *zap.Logger
}

// NewGame initializes a new game instance.
func NewGame(settings *config.Settings, library *defs.Library, log *zap.Logger, opts ...Option) *Game {
	if settings == nil {
		settings = config.Defaults()
	}
	if library == nil {
		library = defs.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	gc := settings.Game
	g := grid.New(config.GridSize, config.CellSize)
	ecs := entity.NewECS(gc.StartingMoney)
	for _, p := range g.Waypoints(config.MonsterOffset) {
		ecs.Waypoints = append(ecs.Waypoints, component.Position{X: p.X, Y: p.Y})
	}
	spawn := component.Position{
		X: float64(g.Start.Col*g.CellSize + config.MonsterOffset),
		Y: float64(g.Start.Row*g.CellSize + config.MonsterOffset),
	}

	eventDispatcher := event.NewDispatcher()
	game := &Game{
		Grid:            g,
		ECS:             ecs,
		Defs:            library,
		Settings:        settings,
		Rewarder:        FixedReward(gc.KillReward),
		EventDispatcher: eventDispatcher,
		log:             log,
	}
	game.WaveSystem = system.NewWaveSystem(ecs, library, eventDispatcher, log, gc.Ticks(gc.SpawnInterval), spawn)
	game.MovementSystem = system.NewMovementSystem(ecs)
	game.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, log, gc.Ticks(gc.CombatInterval), config.ArrowSpeed)
	game.ProjectileSystem = system.NewProjectileSystem(ecs, config.ArrowHitRadius)
	game.PlacementSystem = system.NewPlacementSystem(ecs, g, library, eventDispatcher, log)
	game.MessageSystem = system.NewMessageSystem(ecs, gc.Ticks(gc.MessageDuration))
	game.RenderSystem = system.NewRenderSystem(ecs, g, library)

	for _, opt := range opts {
		opt(game)
	}

	listener := &GameEventListener{game: game}
	eventDispatcher.Subscribe(listener,
		event.WaveStarted, event.WaveEnded, event.GameFinished,
		event.MonsterLeaked)

	log.Info("game created",
		zap.Int("money", ecs.Money),
		zap.Int("waves", library.Waves.Len()),
		zap.Int("waypoints", len(ecs.Waypoints)))
	return game
}

// Tick advances the simulation by one frame. The order is fixed: spawning,
// movement, removal of dead and escaped monsters, combat on its own cadence,
// arrows, then the wave check.
func (g *Game) Tick() {
	g.ECS.Tick++
	g.WaveSystem.Update()
	g.MovementSystem.Update()
	g.cleanupDestroyedEntities()
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	g.WaveSystem.CheckAdvance()
	g.MessageSystem.Update()
}

// cleanupDestroyedEntities pays for dead monsters and lets exited ones go.
func (g *Game) cleanupDestroyedEntities() {
	g.ECS.RemoveMonsters(func(m *component.Monster) bool {
		switch {
		case !m.Alive():
			reward := g.Rewarder.Reward(m)
			g.ECS.Money += reward
			g.ECS.Killed++
			g.log.Debug("monster killed", zap.Uint64("id", uint64(m.ID)), zap.Int("reward", reward))
			g.EventDispatcher.Dispatch(event.Event{Type: event.MonsterKilled, Data: m})
			return true
		case m.Exited:
			g.ECS.Leaked++
			g.EventDispatcher.Dispatch(event.Event{Type: event.MonsterLeaked, Data: m})
			return true
		}
		return false
	})
}

// StartGame begins the first wave.
func (g *Game) StartGame() error {
	if err := g.WaveSystem.Start(); err != nil {
		g.reject(err)
		return err
	}
	return nil
}

// SelectTower picks the kind of tower to place next.
func (g *Game) SelectTower(kind string) error {
	if err := g.PlacementSystem.Select(kind); err != nil {
		g.reject(err)
		return err
	}
	return nil
}

func (g *Game) CancelSelection() {
	g.PlacementSystem.Cancel()
}

// PointerMove moves the ghost tower to the cell under (x, y). Occupied cells
// are skipped quietly; the pointer just passes over them.
func (g *Game) PointerMove(x, y float64) {
	if err := g.PlacementSystem.Move(x, y); err != nil && !errors.Is(err, system.ErrCellOccupied) {
		g.log.Warn("pointer move", zap.Error(err))
	}
}

// PointerLeave takes the ghost off the grid. The selection stays.
func (g *Game) PointerLeave() {
	g.PlacementSystem.ClearHover()
}

// Click confirms the ghost tower at (x, y). Clicks outside the field are
// ignored here; the panel handles them.
func (g *Game) Click(x, y float64) error {
	if !g.OnField(x, y) {
		return nil
	}
	g.PointerMove(x, y)
	if _, err := g.PlacementSystem.Confirm(); err != nil {
		g.reject(err)
		return err
	}
	return nil
}

// Draw renders the field and every entity on surface.
func (g *Game) Draw(surface render.Surface) {
	g.RenderSystem.Draw(surface)
}

// reject turns a refused command into the on-screen message.
func (g *Game) reject(err error) {
	g.log.Debug("input rejected", zap.Error(err))
	g.MessageSystem.Show(system.UserMessage(err))
	g.EventDispatcher.Dispatch(event.Event{Type: event.InputRejected, Data: err})
}

// OnField reports whether (x, y) lies on the grid.
func (g *Game) OnField(x, y float64) bool {
	size := float64(g.Grid.Size * g.Grid.CellSize)
	return x >= 0 && y >= 0 && x < size && y < size
}

func (g *Game) Money() int                     { return g.ECS.Money }
func (g *Game) Killed() int                    { return g.ECS.Killed }
func (g *Game) Leaked() int                    { return g.ECS.Leaked }
func (g *Game) WaveState() component.WaveState { return g.ECS.Wave.State }
func (g *Game) Message() string                { return g.MessageSystem.Current() }
func (g *Game) Monsters() []*component.Monster { return g.ECS.Monsters }
func (g *Game) Arrows() []*component.Arrow     { return g.ECS.Arrows }
func (g *Game) Towers() []*component.Tower     { return g.ECS.Towers }
func (g *Game) CurrentTick() int64             { return g.ECS.Tick }

// WaveNumber is the 1-based number of the current wave, 0 before the start.
func (g *Game) WaveNumber() int {
	if g.ECS.Wave.State == component.WaveNotStarted {
		return 0
	}
	return g.ECS.Wave.Index + 1
}

// Selection returns the tower kind being placed, if any.
func (g *Game) Selection() (string, bool) {
	p := g.ECS.Placement
	if p.State == component.PlacementIdle {
		return "", false
	}
	return p.Spec.Kind, true
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.WaveStarted:
		if index, ok := e.Data.(int); ok && index > 0 {
			g.MessageSystem.Show("Wave " + utils.ToRoman(index+1))
		}
	case event.WaveEnded:
		g.log.Info("wave cleared",
			zap.Int("wave", g.ECS.Wave.Index+1),
			zap.Int("money", g.ECS.Money),
			zap.Int("leaked", g.ECS.Leaked))
	case event.GameFinished:
		g.MessageSystem.Show("All waves cleared!")
		g.log.Info("game finished", zap.Int("killed", g.ECS.Killed), zap.Int("leaked", g.ECS.Leaked))
	case event.MonsterLeaked:
		if m, ok := e.Data.(*component.Monster); ok {
			g.log.Debug("monster leaked", zap.Uint64("id", uint64(m.ID)), zap.Int("tier", m.Tier))
		}
	}
}
