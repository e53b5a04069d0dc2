package component

// WaveState - состояние контроллера волн
type WaveState int

const (
	WaveNotStarted WaveState = iota
	WaveStarted
	WaveFinished
)

func (s WaveState) String() string {
	switch s {
	case WaveNotStarted:
		return "not started"
	case WaveStarted:
		return "started"
	case WaveFinished:
		return "finished"
	}
	return "unknown"
}

// Wave is the cursor over the wave list.
type Wave struct {
	State          WaveState
	Index          int // current wave, 0-based
	Tier           int
	Remaining      int // monsters still to spawn in this wave
	SpawnCountdown int // ticks until the next spawn
}
