package board

// Death records why and when a session ended.
type Death struct {
	Turn  int64  `json:"turn"`
	Cause string `json:"cause"`
}

// Frame is an immutable snapshot of a session. It carries only what to draw
// and the semantic role of each cell, never screen coordinates.
type Frame struct {
	SessionID string    `json:"session_id"`
	Turn      int64     `json:"turn"`
	Status    string    `json:"status"`
	Width     int32     `json:"width"`
	Height    int32     `json:"height"`
	Heading   Direction `json:"heading"`
	Snake     []Point   `json:"snake"`
	Food      *Point    `json:"food,omitempty"`
	Bonus     *Point    `json:"bonus,omitempty"`
	Obstacles []Point   `json:"obstacles"`
	Walls     []Point   `json:"walls"`
	Score     int       `json:"score"`
	HighScore int       `json:"high_score"`
	Thought   string    `json:"thought"`
	NewRecord bool      `json:"new_record,omitempty"`
	Death     *Death    `json:"death,omitempty"`
}

// Head returns the head of the snake in the frame.
func (f *Frame) Head() *Point {
	if len(f.Snake) == 0 {
		return nil
	}
	h := f.Snake[0]
	return &h
}

// IsWall reports whether the obstacle at p was contributed by a wall.
func (f *Frame) IsWall(p Point) bool {
	for _, w := range f.Walls {
		if w.Equal(p) {
			return true
		}
	}
	return false
}
