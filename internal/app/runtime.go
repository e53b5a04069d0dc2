package app

import (
	"fmt"

	"archer-defense/internal/audio"
	"archer-defense/internal/config"
	"archer-defense/internal/defs"
	"archer-defense/internal/logging"
	"archer-defense/internal/scripting"

	"go.uber.org/zap"
)

// Runtime is everything a frontend needs besides its own window or screen.
type Runtime struct {
	Settings *config.Settings
	Defs     *defs.Library
	Log      *zap.Logger
	Game     *Game
	Sound    *audio.SoundManager

	script *scripting.RewardScript
}

// Boot loads the config at configPath, lets adjust override it, and builds
// the logger, definitions, reward script, sound and the game itself.
func Boot(configPath string, adjust func(*config.Settings)) (*Runtime, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if adjust != nil {
		adjust(settings)
	}

	log, err := logging.New(settings.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	library, err := defs.Load(settings.Data.DefinitionsPath)
	if err != nil {
		log.Sync()
		return nil, err
	}

	r := &Runtime{Settings: settings, Defs: library, Log: log}

	var opts []Option
	if path := settings.Script.RewardPath; path != "" {
		r.script, err = scripting.LoadRewardScript(path, settings.Game.KillReward, log)
		if err != nil {
			log.Sync()
			return nil, err
		}
		opts = append(opts, WithRewarder(r.script))
		log.Info("reward script loaded", zap.String("path", path))
	}

	r.Game = NewGame(settings, library, log, opts...)

	r.Sound = audio.NewSoundManager(settings.Audio, log)
	if err := r.Sound.Initialize(); err != nil {
		// без звука играть можно
		log.Warn("audio unavailable", zap.Error(err))
	}
	r.Game.EventDispatcher.Subscribe(r.Sound, r.Sound.Events()...)

	return r, nil
}

// Close releases the sound, the Lua VM and flushes the log.
func (r *Runtime) Close() {
	r.Sound.Cleanup()
	if r.script != nil {
		r.script.Close()
	}
	r.Log.Sync()
}
