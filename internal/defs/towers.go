// internal/defs/towers.go
package defs

import (
	"image/color"

	"archer-defense/pkg/grid"
)

// TowerDefinition holds the static data for one tower kind.
type TowerDefinition struct {
	Kind   string     `yaml:"kind"`
	Name   string     `yaml:"name"`
	Range  float64    `yaml:"range"` // pixels, measured from the cell center
	Power  int        `yaml:"power"` // damage per hit
	Cost   int        `yaml:"cost"`
	Color  color.RGBA `yaml:"color"`
	Hotkey string     `yaml:"hotkey"`
}

// Spec converts the definition into the payload a tower cell carries.
func (d TowerDefinition) Spec() grid.TowerSpec {
	return grid.TowerSpec{
		Kind:  d.Kind,
		Range: d.Range,
		Power: d.Power,
		Cost:  d.Cost,
	}
}
