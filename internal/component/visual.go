// internal/component/visual.go
package component

// Message is a transient line of feedback for the player.
type Message struct {
	Text      string
	ExpiresAt int64 // tick at which the message disappears
}
