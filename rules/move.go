package rules

import "github.com/battlesnakeio/arcade/board"

// ChangeDirection queues a heading for the next tick. The direct reverse of
// the heading the snake last moved in is ignored, as are changes while no
// game is in progress.
func (s *Session) ChangeDirection(d board.Direction) bool {
	if s.Status != StatusRunning && s.Status != StatusPaused {
		return false
	}
	if !validTurn(s.Heading, d) {
		return false
	}
	s.pending = d
	return true
}

// NextHeading is the heading the next tick will move in.
func (s *Session) NextHeading() board.Direction {
	if s.pending != "" {
		return s.pending
	}
	return s.Heading
}

func validTurn(current, next board.Direction) bool {
	return next.Valid() && next != current.Opposite()
}

// advance moves the head one cell in the next heading. The tail is left in
// place; the tick decides whether the snake grew.
func (s *Session) advance() board.Point {
	s.Heading = s.NextHeading()
	s.pending = ""
	return s.Snake.Move(s.Heading)
}
