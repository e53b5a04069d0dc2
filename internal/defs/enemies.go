// internal/defs/enemies.go
package defs

// Difficulty is what a wave tier means for the monsters it spawns.
type Difficulty struct {
	Tier      int     `yaml:"tier"`
	MaxHealth int     `yaml:"max_health"`
	Speed     float64 `yaml:"speed"` // pixels per tick
}
