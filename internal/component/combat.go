package component

// Health - компонент здоровья. Current never exceeds Max and never grows.
type Health struct {
	Current int
	Max     int
}

// TakeDamage subtracts amount; non-positive amounts are ignored.
func (h *Health) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
}

func (h Health) Alive() bool {
	return h.Current > 0
}

// Fraction returns Current/Max clamped to [0, 1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	return min(1, float64(h.Current)/float64(h.Max))
}
