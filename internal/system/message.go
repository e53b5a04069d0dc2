package system

import (
	"errors"

	"archer-defense/internal/component"
	"archer-defense/internal/defs"
	"archer-defense/internal/entity"
)

// MessageSystem shows one transient message at a time and clears it once its
// duration has passed. Showing a new message replaces the old one.
type MessageSystem struct {
	ecs      *entity.ECS
	duration int
}

func NewMessageSystem(ecs *entity.ECS, durationTicks int) *MessageSystem {
	return &MessageSystem{ecs: ecs, duration: max(1, durationTicks)}
}

func (s *MessageSystem) Show(text string) {
	s.ecs.Message = &component.Message{
		Text:      text,
		ExpiresAt: s.ecs.Tick + int64(s.duration),
	}
}

func (s *MessageSystem) Update() {
	if s.ecs.Message != nil && s.ecs.Tick >= s.ecs.Message.ExpiresAt {
		s.ecs.Message = nil
	}
}

// Current returns the visible message, or "".
func (s *MessageSystem) Current() string {
	if s.ecs.Message == nil {
		return ""
	}
	return s.ecs.Message.Text
}

// UserMessage turns a rejected player action into the text shown to the player.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoTowerSelected):
		return "Please select a tower below"
	case errors.Is(err, ErrInsufficientFunds):
		return "Not enough money"
	case errors.Is(err, ErrNoCandidateCell):
		return "Move the tower onto an empty cell"
	case errors.Is(err, defs.ErrUnknownTowerKind):
		return "Unknown tower"
	case errors.Is(err, ErrWavesAlreadyStarted):
		return "Waves already running"
	}
	return err.Error()
}
