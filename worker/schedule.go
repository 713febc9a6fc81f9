package worker

import "time"

// schedule is a one-shot timer that can be disarmed. A disarmed schedule
// has a nil channel so it never fires in a select.
type schedule struct {
	t *time.Timer
}

func (s *schedule) C() <-chan time.Time {
	if s.t == nil {
		return nil
	}
	return s.t.C
}

func (s *schedule) armed() bool { return s.t != nil }

func (s *schedule) arm(d time.Duration) {
	s.stop()
	s.t = time.NewTimer(d)
}

// ensure arms the schedule unless it is already armed. Durations of zero or
// less leave it disarmed.
func (s *schedule) ensure(d time.Duration) {
	if s.armed() || d <= 0 {
		return
	}
	s.arm(d)
}

// fired marks the timer as consumed after its channel delivered.
func (s *schedule) fired() { s.t = nil }

func (s *schedule) stop() {
	if s.t == nil {
		return
	}
	s.t.Stop()
	s.t = nil
}
