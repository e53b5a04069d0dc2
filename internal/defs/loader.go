// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed definitions.yaml
var builtinDefinitions []byte

var (
	ErrUnknownTier      = errors.New("unknown difficulty tier")
	ErrUnknownTowerKind = errors.New("unknown tower kind")
)

type definitionsFile struct {
	Towers       []TowerDefinition `yaml:"towers"`
	Difficulties []Difficulty      `yaml:"difficulties"`
	Waves        WaveSet           `yaml:"waves"`
}

// Library holds every definition, indexed for lookup during play.
type Library struct {
	towers       map[string]TowerDefinition
	towerOrder   []string
	difficulties map[int]Difficulty
	Waves        WaveSet
}

// Load reads definitions from path, or the built-in set when path is empty.
func Load(path string) (*Library, error) {
	if path == "" {
		return Parse(builtinDefinitions)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions %s: %w", path, err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("definitions %s: %w", path, err)
	}
	return lib, nil
}

// Default returns the built-in definitions. They are part of the binary, so a
// parse failure is a build defect and panics.
func Default() *Library {
	lib, err := Parse(builtinDefinitions)
	if err != nil {
		panic(fmt.Sprintf("built-in definitions: %v", err))
	}
	return lib
}

// Parse decodes and validates a YAML definitions document.
func Parse(data []byte) (*Library, error) {
	var f definitionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse definitions: %w", err)
	}

	lib := &Library{
		towers:       make(map[string]TowerDefinition, len(f.Towers)),
		difficulties: make(map[int]Difficulty, len(f.Difficulties)),
		Waves:        f.Waves,
	}
	for _, t := range f.Towers {
		if t.Kind == "" {
			return nil, errors.New("tower without kind")
		}
		if _, dup := lib.towers[t.Kind]; dup {
			return nil, fmt.Errorf("duplicate tower kind %q", t.Kind)
		}
		if t.Range <= 0 || t.Cost < 0 || t.Power < 0 {
			return nil, fmt.Errorf("tower %q: range must be positive, cost and power non-negative", t.Kind)
		}
		lib.towers[t.Kind] = t
		lib.towerOrder = append(lib.towerOrder, t.Kind)
	}
	for _, d := range f.Difficulties {
		if d.MaxHealth <= 0 || d.Speed <= 0 {
			return nil, fmt.Errorf("tier %d: max_health and speed must be positive", d.Tier)
		}
		lib.difficulties[d.Tier] = d
	}

	if lib.Waves.Len() == 0 {
		return nil, errors.New("no waves defined")
	}
	for i, count := range lib.Waves.Counts {
		if count <= 0 {
			return nil, fmt.Errorf("wave %d: count must be positive, got %d", i, count)
		}
		if _, err := lib.Difficulty(lib.Waves.Tier(i)); err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
	}
	return lib, nil
}

// Tower looks up a tower kind.
func (l *Library) Tower(kind string) (TowerDefinition, error) {
	t, ok := l.towers[kind]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("%w: %q", ErrUnknownTowerKind, kind)
	}
	return t, nil
}

// Towers returns the tower definitions in file order.
func (l *Library) Towers() []TowerDefinition {
	out := make([]TowerDefinition, 0, len(l.towerOrder))
	for _, kind := range l.towerOrder {
		out = append(out, l.towers[kind])
	}
	return out
}

// Difficulty looks up a tier.
func (l *Library) Difficulty(tier int) (Difficulty, error) {
	d, ok := l.difficulties[tier]
	if !ok {
		return Difficulty{}, fmt.Errorf("%w: %d", ErrUnknownTier, tier)
	}
	return d, nil
}

// MustDifficulty is Difficulty for callers that already validated the tier.
// An unknown tier here is a programming error.
func (l *Library) MustDifficulty(tier int) Difficulty {
	d, err := l.Difficulty(tier)
	if err != nil {
		panic(err)
	}
	return d
}
