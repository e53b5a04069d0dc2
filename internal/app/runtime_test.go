package app

import (
	"os"
	"path/filepath"
	"testing"

	"archer-defense/internal/component"
	"archer-defense/internal/config"
)

func quiet(t *testing.T) func(*config.Settings) {
	return func(s *config.Settings) {
		s.Audio.Enabled = false
		s.Logging.File = filepath.Join(t.TempDir(), "test.log")
	}
}

func TestBootWithDefaults(t *testing.T) {
	r, err := Boot("", quiet(t))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if r.Game.Money() != config.InitialMoney {
		t.Fatalf("money = %d", r.Game.Money())
	}
	if len(r.Defs.Towers()) != 2 {
		t.Fatalf("%d tower kinds", len(r.Defs.Towers()))
	}
}

func TestBootWithRewardScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "reward.lua")
	os.WriteFile(script, []byte("function reward(h, t) return 99 end\n"), 0o644)
	cfg := filepath.Join(dir, "game.toml")
	os.WriteFile(cfg, []byte("[script]\nreward_path = \""+filepath.ToSlash(script)+"\"\n"), 0o644)

	r, err := Boot(cfg, quiet(t))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if got := r.Game.Rewarder.Reward(&component.Monster{Tier: 1}); got != 99 {
		t.Fatalf("reward = %d, want 99", got)
	}
}

func TestBootFailsOnBadDefinitions(t *testing.T) {
	dir := t.TempDir()
	defsPath := filepath.Join(dir, "defs.yaml")
	os.WriteFile(defsPath, []byte("waves:\n  first_tier: 1\n  counts: []\n"), 0o644)

	_, err := Boot("", func(s *config.Settings) {
		quiet(t)(s)
		s.Data.DefinitionsPath = defsPath
	})
	if err == nil {
		t.Fatal("empty wave list accepted")
	}
}
