package system

import (
	"errors"
	"testing"

	"archer-defense/internal/component"
	"archer-defense/internal/defs"
	"archer-defense/internal/event"

	"go.uber.org/zap"
)

func newTestWaveSystem(interval int) (*WaveSystem, *event.Dispatcher, func() []event.EventType) {
	ecs, _ := newTestECS(0)
	d := event.NewDispatcher()
	var seen []event.EventType
	d.Subscribe(event.ListenerFunc(func(e event.Event) { seen = append(seen, e.Type) }),
		event.WaveStarted, event.WaveEnded, event.GameFinished)
	ws := NewWaveSystem(ecs, defs.Default(), d, zap.NewNop(), interval, component.Position{X: 15, Y: 15})
	return ws, d, func() []event.EventType { return seen }
}

func TestWaveStartAndSpawnInterval(t *testing.T) {
	ws, _, _ := newTestWaveSystem(3)
	ecs := ws.ecs

	if err := ws.Start(); err != nil {
		t.Fatal(err)
	}
	if ecs.Wave.State != component.WaveStarted || ecs.Wave.Remaining != 5 || ecs.Wave.Tier != 1 {
		t.Fatalf("unexpected wave after start: %+v", *ecs.Wave)
	}
	if err := ws.Start(); !errors.Is(err, ErrWavesAlreadyStarted) {
		t.Fatalf("second Start err = %v", err)
	}

	ws.Update()
	ws.Update()
	if len(ecs.Monsters) != 0 {
		t.Fatal("spawned before the interval elapsed")
	}
	ws.Update()
	if len(ecs.Monsters) != 1 {
		t.Fatalf("got %d monsters after one interval, want 1", len(ecs.Monsters))
	}
	m := ecs.Monsters[0]
	if m.Position != (component.Position{X: 15, Y: 15}) || m.Max != 40 || m.Current != 40 || m.Speed != 1 {
		t.Errorf("unexpected monster: %+v", *m)
	}
	if ecs.Wave.Remaining != 4 {
		t.Errorf("remaining = %d, want 4", ecs.Wave.Remaining)
	}
}

func TestWaveDoesNotAdvanceBeforeFullySpawned(t *testing.T) {
	ws, _, _ := newTestWaveSystem(2)
	ws.Start()

	// no monster alive yet, but the wave still has monsters to spawn
	ws.CheckAdvance()
	if ws.ecs.Wave.Index != 0 {
		t.Fatalf("advanced to wave %d before spawning", ws.ecs.Wave.Index)
	}
}

func TestWaveProgressionToFinished(t *testing.T) {
	ws, _, seen := newTestWaveSystem(2)
	ecs := ws.ecs
	ws.Start()

	wantCounts := []int{5, 10, 15}
	for i, count := range wantCounts {
		if ecs.Wave.Index != i || ecs.Wave.Tier != i+1 {
			t.Fatalf("wave %d: index %d tier %d", i, ecs.Wave.Index, ecs.Wave.Tier)
		}
		for tick := 0; tick < 2*count; tick++ {
			ws.Update()
			ws.CheckAdvance()
		}
		if len(ecs.Monsters) != count || ecs.Wave.Remaining != 0 {
			t.Fatalf("wave %d: %d monsters, %d remaining", i, len(ecs.Monsters), ecs.Wave.Remaining)
		}
		for _, m := range ecs.Monsters {
			if m.Tier != i+1 {
				t.Fatalf("wave %d spawned tier %d", i, m.Tier)
			}
		}

		ecs.Monsters = nil
		ws.CheckAdvance()
	}

	if ecs.Wave.State != component.WaveFinished {
		t.Fatalf("state = %s, want finished", ecs.Wave.State)
	}
	for i := 0; i < 20; i++ {
		ws.Update()
	}
	if len(ecs.Monsters) != 0 {
		t.Fatal("spawned after the last wave")
	}

	want := []event.EventType{
		event.WaveStarted, event.WaveEnded,
		event.WaveStarted, event.WaveEnded,
		event.WaveStarted, event.WaveEnded,
		event.GameFinished,
	}
	got := seen()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNextWaveResetsSpawnCountdown(t *testing.T) {
	ws, _, _ := newTestWaveSystem(4)
	ecs := ws.ecs
	ws.Start()
	for i := 0; i < 4*5; i++ {
		ws.Update()
	}
	ecs.Monsters = nil
	ws.CheckAdvance()

	if ecs.Wave.SpawnCountdown != 4 || ecs.Wave.Remaining != 10 {
		t.Fatalf("second wave cursor = %+v", *ecs.Wave)
	}
}

func TestUnknownTierPanics(t *testing.T) {
	lib := defs.Default()
	lib.Waves.FirstTier = 99
	ecs, _ := newTestECS(0)
	ws := NewWaveSystem(ecs, lib, event.NewDispatcher(), zap.NewNop(), 1, component.Position{})

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic for an unknown tier")
		}
	}()
	ws.Start()
}
