package component

import "testing"

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name         string
		current, hit int
		want         int
		alive        bool
	}{
		{"hit", 40, 10, 30, true},
		{"exact kill", 10, 10, 0, false},
		{"overkill", 5, 10, -5, false},
		{"zero is ignored", 40, 0, 40, true},
		{"negative never heals", 30, -15, 30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Health{Current: tt.current, Max: 40}
			h.TakeDamage(tt.hit)
			if h.Current != tt.want {
				t.Errorf("Current = %d, want %d", h.Current, tt.want)
			}
			if h.Current > tt.current {
				t.Errorf("health grew from %d to %d", tt.current, h.Current)
			}
			if h.Alive() != tt.alive {
				t.Errorf("Alive() = %v, want %v", h.Alive(), tt.alive)
			}
		})
	}
}

func TestHealthFraction(t *testing.T) {
	tests := []struct {
		h    Health
		want float64
	}{
		{Health{Current: 40, Max: 40}, 1},
		{Health{Current: 10, Max: 40}, 0.25},
		{Health{Current: -5, Max: 40}, 0},
		{Health{Current: 5, Max: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.h.Fraction(); got != tt.want {
			t.Errorf("%+v.Fraction() = %v, want %v", tt.h, got, tt.want)
		}
	}
}
