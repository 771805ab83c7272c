package quiz

import "math"

// Stats is the running tally across quiz sessions. Correct never exceeds Attempts.
type Stats struct {
	Attempts int
	Correct  int
}

// NewStats clamps persisted counters so the invariants hold.
func NewStats(attempts, correct int) Stats {
	attempts = max(attempts, 0)
	correct = min(max(correct, 0), attempts)
	return Stats{Attempts: attempts, Correct: correct}
}

// Record counts one submitted answer.
func (s Stats) Record(correct bool) Stats {
	s.Attempts++
	if correct {
		s.Correct++
	}
	return s
}

// Accuracy returns the rounded percentage of correct answers, or 0 before
// any attempt.
func (s Stats) Accuracy() int {
	if s.Attempts <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Attempts) * 100))
}

func (s Stats) Incorrect() int {
	return s.Attempts - s.Correct
}

// Reset returns a tally with both counters at zero.
func (s Stats) Reset() Stats {
	return Stats{}
}
