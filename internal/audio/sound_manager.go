package audio

import (
	"sync"
	"time"

	"archer-defense/internal/config"
	"archer-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue is a short sound tied to a game event.
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueKill
	CueLeak
	CueWave
	CueError
)

type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueShot:  {{1320, 30 * time.Millisecond}},
	CueKill:  {{660, 60 * time.Millisecond}, {880, 90 * time.Millisecond}},
	CueLeak:  {{220, 200 * time.Millisecond}},
	CueWave:  {{440, 120 * time.Millisecond}, {550, 120 * time.Millisecond}, {660, 160 * time.Millisecond}},
	CueError: {{150, 120 * time.Millisecond}},
}

// CueFor maps a game event to its sound. Events without a sound give CueNone.
func CueFor(t event.EventType) Cue {
	switch t {
	case event.ArrowFired:
		return CueShot
	case event.MonsterKilled:
		return CueKill
	case event.MonsterLeaked:
		return CueLeak
	case event.WaveStarted:
		return CueWave
	case event.InputRejected:
		return CueError
	}
	return CueNone
}

// SoundManager plays event cues through one mixer on the beep speaker.
// Until Initialize succeeds every call is a no-op, so the game runs the same
// without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	log         *zap.Logger
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager(cfg config.AudioConfig, log *zap.Logger) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		log:   log,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Disabled audio is not an error.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops every queued sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Events returns the event types the manager has a sound for.
func (sm *SoundManager) Events() []event.EventType {
	return []event.EventType{
		event.ArrowFired, event.MonsterKilled, event.MonsterLeaked,
		event.WaveStarted, event.InputRejected,
	}
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	sm.Play(CueFor(e.Type))
}

func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || c == CueNone {
		return
	}
	s, err := CueStreamer(c, sm.cfg.Volume)
	if err != nil {
		sm.log.Warn("sound cue", zap.Int("cue", int(c)), zap.Error(err))
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// CueStreamer builds the finite stream for c: its notes in sequence, gain
// applied on a log2 scale.
func CueStreamer(c Cue, volume float64) (beep.Streamer, error) {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: volume}, nil
}
