package board

// PointSet is an insertion ordered set of points. The order is kept so frames
// and recordings list obstacles in the order they appeared.
type PointSet struct {
	order []Point
	index map[Point]struct{}
}

// NewPointSet returns a set seeded with the given points.
func NewPointSet(points ...Point) *PointSet {
	s := &PointSet{index: map[Point]struct{}{}}
	s.Add(points...)
	return s
}

// Add inserts points that are not already present.
func (s *PointSet) Add(points ...Point) {
	if s.index == nil {
		s.index = map[Point]struct{}{}
	}
	for _, p := range points {
		if _, ok := s.index[p]; ok {
			continue
		}
		s.index[p] = struct{}{}
		s.order = append(s.order, p)
	}
}

// Contains reports whether p is in the set.
func (s *PointSet) Contains(p Point) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[p]
	return ok
}

// Len is the number of points in the set.
func (s *PointSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Points returns a copy of the points in insertion order.
func (s *PointSet) Points() []Point {
	if s == nil {
		return []Point{}
	}
	out := make([]Point, len(s.order))
	copy(out, s.order)
	return out
}
