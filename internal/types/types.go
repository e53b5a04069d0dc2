package types

// EntityID identifies a monster, tower or arrow for the lifetime of a game.
// Zero is never issued.
type EntityID uint64
