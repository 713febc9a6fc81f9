package rules

// Thoughts rotate under the score line while a session is running.
var Thoughts = []string{
	"🎯 Focus on your goal!",
	"💪 You've got this!",
	"🚀 Keep pushing forward!",
	"⭐ Every point counts!",
	"🔥 You're on fire!",
	"🎮 Stay sharp and focused!",
	"🏆 You're a champion!",
	"⚡ Speed and precision!",
	"🌟 Believe in yourself!",
	"🎪 You're doing amazing!",
}

// RotateThought advances to the next thought. It only applies to running
// sessions.
func (s *Session) RotateThought() bool {
	if s.Status != StatusRunning {
		return false
	}
	s.ThoughtIndex = (s.ThoughtIndex + 1) % len(Thoughts)
	return true
}

// Thought is the current thought text.
func (s *Session) Thought() string {
	return Thoughts[s.ThoughtIndex%len(Thoughts)]
}
