package rules

// Status is the lifecycle state of a session.
type Status string

const (
	// StatusNotStarted is a session that has never been started
	StatusNotStarted Status = "not-started"
	// StatusRunning is a session that ticks
	StatusRunning Status = "running"
	// StatusPaused is a running session with ticking suspended
	StatusPaused Status = "paused"
	// StatusGameOver is a session that ended with a collision
	StatusGameOver Status = "game-over"
)
