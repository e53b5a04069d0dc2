// Package scripting lets a Lua file decide the kill reward.
package scripting

import (
	"errors"
	"fmt"
	"math"

	"archer-defense/internal/component"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

const (
	rewardFunc = "reward"
	// MaxReward caps what a script may pay for one monster.
	MaxReward = 1_000_000
)

var ErrNoRewardFunction = errors.New("script does not define reward(max_health, tier)")

// RewardScript wraps a gopher-lua VM holding a global reward(max_health, tier).
// Single-goroutine access only: it is called from inside the game tick.
type RewardScript struct {
	vm       *lua.LState
	fallback int
	log      *zap.Logger
}

// LoadRewardScript runs the Lua file at path. fallback is paid whenever the
// script fails at call time.
func LoadRewardScript(path string, fallback int, log *zap.Logger) (*RewardScript, error) {
	s := newRewardScript(fallback, log)
	if err := s.vm.DoFile(path); err != nil {
		s.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := s.check(); err != nil {
		s.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("loaded lua script", zap.String("file", path))
	return s, nil
}

// NewRewardScript is LoadRewardScript for inline source.
func NewRewardScript(source string, fallback int, log *zap.Logger) (*RewardScript, error) {
	s := newRewardScript(fallback, log)
	if err := s.vm.DoString(source); err != nil {
		s.Close()
		return nil, fmt.Errorf("load reward script: %w", err)
	}
	if err := s.check(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func newRewardScript(fallback int, log *zap.Logger) *RewardScript {
	vm := lua.NewState()
	vm.SetGlobal("BASE_REWARD", lua.LNumber(fallback))
	return &RewardScript{vm: vm, fallback: fallback, log: log}
}

func (s *RewardScript) check() error {
	if s.vm.GetGlobal(rewardFunc).Type() != lua.LTFunction {
		return ErrNoRewardFunction
	}
	return nil
}

// Reward calls reward(max_health, tier). Script errors and non-numeric
// results pay the fallback; negative results pay nothing.
func (s *RewardScript) Reward(m *component.Monster) int {
	fn := s.vm.GetGlobal(rewardFunc)
	if err := s.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(m.Max), lua.LNumber(m.Tier)); err != nil {
		s.log.Error("lua reward error", zap.Error(err))
		return s.fallback
	}

	result := s.vm.Get(-1)
	s.vm.Pop(1)

	n, ok := result.(lua.LNumber)
	if !ok {
		s.log.Error("lua reward returned non-number", zap.String("type", result.Type().String()))
		return s.fallback
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		s.log.Error("lua reward is not finite", zap.Float64("value", f))
		return s.fallback
	}
	return int(min(max(f, 0), MaxReward))
}

func (s *RewardScript) Close() {
	s.vm.Close()
}
