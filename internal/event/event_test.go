package event

import "testing"

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "a:"+string(e.Type)) }), WaveStarted, WaveEnded)
	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "b:"+string(e.Type)) }), WaveStarted)

	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: WaveEnded})
	d.Dispatch(Event{Type: ArrowFired})

	want := []string{"a:WaveStarted", "b:WaveStarted", "a:WaveEnded"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, got[i], want[i])
		}
	}
}
