package system

import (
	"errors"
	"fmt"
	"testing"

	"archer-defense/internal/defs"
)

func TestMessageExpires(t *testing.T) {
	ecs, _ := newTestECS(0)
	ms := NewMessageSystem(ecs, 3)

	ms.Show("hello")
	for i := 0; i < 2; i++ {
		ecs.Tick++
		ms.Update()
		if ms.Current() != "hello" {
			t.Fatalf("message gone after %d ticks", i+1)
		}
	}
	ecs.Tick++
	ms.Update()
	if ms.Current() != "" {
		t.Fatalf("message %q still shown after its duration", ms.Current())
	}
}

func TestNewMessageReplacesOld(t *testing.T) {
	ecs, _ := newTestECS(0)
	ms := NewMessageSystem(ecs, 3)
	ms.Show("first")
	ecs.Tick += 2
	ms.Show("second")
	ecs.Tick += 2
	ms.Update()
	if ms.Current() != "second" {
		t.Fatalf("current = %q", ms.Current())
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNoTowerSelected, "Please select a tower below"},
		{ErrInsufficientFunds, "Not enough money"},
		{fmt.Errorf("confirm: %w", ErrNoCandidateCell), "Move the tower onto an empty cell"},
		{fmt.Errorf("%w: %q", defs.ErrUnknownTowerKind, "x"), "Unknown tower"},
		{ErrWavesAlreadyStarted, "Waves already running"},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
