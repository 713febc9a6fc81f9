package board

// Snake is an ordered list of cells, head first.
type Snake struct {
	Body []Point `json:"body"`
}

// NewSnake lays out a snake of the given length in a straight line starting
// at head and trailing away from the heading.
func NewSnake(head Point, heading Direction, length int) *Snake {
	body := make([]Point, 0, length)
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Step(heading.Opposite())
	}
	return &Snake{Body: body}
}

// Move the snake 1 space in the specified direction, move does not remove the
// end point of the snake, that will be done after the caller has decided
// whether the snake ate.
func (s *Snake) Move(direction Direction) Point {
	next := s.Head().Step(direction)
	s.Body = append([]Point{next}, s.Body...)
	return next
}

// DropTail removes the last point of the body.
func (s *Snake) DropTail() {
	if len(s.Body) == 0 {
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	if len(s.Body) == 0 {
		return Point{}
	}
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	if len(s.Body) == 0 {
		return Point{}
	}
	return s.Body[len(s.Body)-1]
}

// Len is the number of cells in the body.
func (s *Snake) Len() int { return len(s.Body) }

// Contains reports whether any body cell, head included, equals p.
func (s *Snake) Contains(p Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// NeckContains reports whether any non-head body cell equals p.
func (s *Snake) NeckContains(p Point) bool {
	for i, b := range s.Body {
		if i == 0 {
			continue
		}
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the snake.
func (s *Snake) Clone() *Snake {
	body := make([]Point, len(s.Body))
	copy(body, s.Body)
	return &Snake{Body: body}
}
