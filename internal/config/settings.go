package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings are the runtime knobs read from a TOML file. Anything the file
// leaves out keeps the value from defaults().
type Settings struct {
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
	Script  ScriptConfig  `toml:"script"`
	Data    DataConfig    `toml:"data"`
}

type GameConfig struct {
	TicksPerSecond  int           `toml:"ticks_per_second"`
	StartingMoney   int           `toml:"starting_money"`
	KillReward      int           `toml:"kill_reward"`
	SpawnInterval   time.Duration `toml:"spawn_interval"`
	CombatInterval  time.Duration `toml:"combat_interval"`
	MessageDuration time.Duration `toml:"message_duration"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // log2 gain, 0 keeps the tone as generated
}

type ScriptConfig struct {
	RewardPath string `toml:"reward_path"` // optional Lua file defining reward(max_health, tier)
}

type DataConfig struct {
	DefinitionsPath string `toml:"definitions_path"` // empty means the built-in definitions
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Settings, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Settings {
	return &Settings{
		Game: GameConfig{
			TicksPerSecond:  TicksPerSecond,
			StartingMoney:   InitialMoney,
			KillReward:      KillReward,
			SpawnInterval:   SpawnIntervalMs * time.Millisecond,
			CombatInterval:  CombatIntervalMs * time.Millisecond,
			MessageDuration: MessageDurationMs * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -2,
		},
	}
}

func (s *Settings) validate() error {
	g := s.Game
	switch {
	case g.TicksPerSecond <= 0:
		return fmt.Errorf("game.ticks_per_second must be positive, got %d", g.TicksPerSecond)
	case g.SpawnInterval <= 0:
		return fmt.Errorf("game.spawn_interval must be positive, got %s", g.SpawnInterval)
	case g.CombatInterval <= 0:
		return fmt.Errorf("game.combat_interval must be positive, got %s", g.CombatInterval)
	case g.StartingMoney < 0:
		return fmt.Errorf("game.starting_money must not be negative, got %d", g.StartingMoney)
	}
	return nil
}

// Ticks converts a wall-clock interval into simulation ticks, never less than one.
func (g GameConfig) Ticks(d time.Duration) int {
	n := int(d * time.Duration(g.TicksPerSecond) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}
