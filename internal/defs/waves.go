package defs

// WaveSet описывает последовательность волн: количество монстров в каждой.
// Wave i runs at tier FirstTier+i.
type WaveSet struct {
	FirstTier int   `yaml:"first_tier"`
	Counts    []int `yaml:"counts"`
}

// Len returns the number of waves.
func (w WaveSet) Len() int {
	return len(w.Counts)
}

// Tier returns the difficulty tier of wave index i.
func (w WaveSet) Tier(i int) int {
	return w.FirstTier + i
}
