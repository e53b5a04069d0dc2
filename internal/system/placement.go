package system

import (
	"errors"

	"archer-defense/internal/component"
	"archer-defense/internal/defs"
	"archer-defense/internal/entity"
	"archer-defense/internal/event"
	"archer-defense/pkg/grid"

	"go.uber.org/zap"
)

var (
	ErrNoTowerSelected   = errors.New("no tower selected")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrCellOccupied      = errors.New("cell is occupied")
	ErrNoCandidateCell   = errors.New("tower is not over an empty cell")
)

// PlacementSystem drives tower placement: Idle -> Pending(kind) after a
// selection, Pending <-> Hovering while the ghost tower follows the pointer,
// back to Idle on confirm or cancel.
type PlacementSystem struct {
	ecs             *entity.ECS
	grid            *grid.Grid
	defs            *defs.Library
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewPlacementSystem(ecs *entity.ECS, g *grid.Grid, library *defs.Library, eventDispatcher *event.Dispatcher, log *zap.Logger) *PlacementSystem {
	return &PlacementSystem{
		ecs:             ecs,
		grid:            g,
		defs:            library,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

// Select starts placing a tower of the given kind if the player can afford it.
// A previous selection is dropped first.
func (s *PlacementSystem) Select(kind string) error {
	def, err := s.defs.Tower(kind)
	if err != nil {
		return err
	}
	if s.ecs.Money < def.Cost {
		return ErrInsufficientFunds
	}
	s.ClearHover()
	*s.ecs.Placement = component.Placement{
		State: component.PlacementPending,
		Spec:  def.Spec(),
	}
	return nil
}

// Move puts the ghost tower under the pointer. The ghost first vacates its
// previous cell, so at most one ghost exists; occupied cells are refused and
// leave the ghost off the grid.
func (s *PlacementSystem) Move(x, y float64) error {
	p := s.ecs.Placement
	if p.State == component.PlacementIdle {
		return nil
	}
	target := s.grid.CellAt(x, y)
	if !s.grid.InBounds(target.Row, target.Col) {
		s.ClearHover()
		return nil
	}
	if p.OnGrid() && p.Cell == target {
		return nil
	}

	s.ClearHover()
	if !s.grid.IsEmptyCell(target.Row, target.Col) {
		return ErrCellOccupied
	}

	ghost := grid.TowerCell(target.Row, target.Col, p.Spec)
	ghost.Hovered = true
	s.grid.SetCell(ghost)
	p.Cell = target
	p.State = component.PlacementHovering
	return nil
}

// ClearHover takes the ghost tower off the grid and restores an empty cell.
// The selection itself survives. Calling it again is a no-op.
func (s *PlacementSystem) ClearHover() {
	p := s.ecs.Placement
	if !p.OnGrid() {
		return
	}
	s.grid.SetCell(grid.EmptyCell(p.Cell.Row, p.Cell.Col))
	p.State = component.PlacementPending
}

// Cancel discards the selection and its ghost.
func (s *PlacementSystem) Cancel() {
	s.ClearHover()
	*s.ecs.Placement = component.Placement{State: component.PlacementIdle}
}

// Confirm buys the ghost tower where it stands.
func (s *PlacementSystem) Confirm() (*component.Tower, error) {
	p := s.ecs.Placement
	switch {
	case p.State == component.PlacementIdle:
		return nil, ErrNoTowerSelected
	case !p.OnGrid():
		return nil, ErrNoCandidateCell
	case s.ecs.Money < p.Spec.Cost:
		return nil, ErrInsufficientFunds
	}

	s.grid.SetCell(grid.TowerCell(p.Cell.Row, p.Cell.Col, p.Spec))
	tower := &component.Tower{
		Kind:  p.Spec.Kind,
		Row:   p.Cell.Row,
		Col:   p.Cell.Col,
		Range: p.Spec.Range,
		Power: p.Spec.Power,
		Cost:  p.Spec.Cost,
	}
	s.ecs.AddTower(tower)
	s.ecs.Money -= p.Spec.Cost
	*p = component.Placement{State: component.PlacementIdle}

	s.log.Info("tower placed",
		zap.String("kind", tower.Kind),
		zap.Int("row", tower.Row),
		zap.Int("col", tower.Col),
		zap.Int("money", s.ecs.Money))
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: tower})
	return tower, nil
}
