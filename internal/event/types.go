// internal/event/types.go
package event

const (
	WaveStarted    EventType = "WaveStarted"    // Data: wave index
	WaveEnded      EventType = "WaveEnded"      // Data: wave index
	GameFinished   EventType = "GameFinished"   // все волны пройдены
	MonsterSpawned EventType = "MonsterSpawned" // Data: *component.Monster
	MonsterKilled  EventType = "MonsterKilled"  // Data: *component.Monster
	MonsterLeaked  EventType = "MonsterLeaked"  // Data: *component.Monster, reached the exit
	ArrowFired     EventType = "ArrowFired"     // Data: *component.Arrow
	TowerPlaced    EventType = "TowerPlaced"    // Data: *component.Tower
	InputRejected  EventType = "InputRejected"  // Data: error
)
