package quiz

import (
	"errors"

	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

var (
	// ErrNoVocabulary is returned when a quiz is requested without any entries.
	ErrNoVocabulary = errors.New("no vocabulary to quiz on")
	// ErrQuizInProgress is returned when the mode is changed while a quiz runs.
	ErrQuizInProgress = errors.New("quiz mode cannot be changed while a quiz is running")
)

// Phase is the position of a session in the quiz state machine.
type Phase int

const (
	// Idle means no quiz is running.
	Idle Phase = iota
	// AwaitingAnswer means a question is shown and not yet answered.
	AwaitingAnswer
	// Feedback means the answer was submitted and evaluated.
	Feedback
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AwaitingAnswer:
		return "awaiting-answer"
	case Feedback:
		return "feedback"
	}
	return "unknown"
}

// Result is the evaluation of one submitted answer.
type Result struct {
	Correct  bool
	Given    string
	Expected string
}

// State is an immutable snapshot of a quiz session. The zero value is an idle
// session in WordToMeaning mode. Transitions return a new State.
type State struct {
	phase    Phase
	mode     Mode
	question Question
	result   Result
}

// NewState returns an idle session using mode.
func NewState(mode Mode) State {
	return State{mode: mode}
}

func (s State) Phase() Phase {
	return s.phase
}

func (s State) Mode() Mode {
	return s.mode
}

// Running reports whether a quiz is in progress.
func (s State) Running() bool {
	return s.phase != Idle
}

// Question returns the current question, if any.
func (s State) Question() (Question, bool) {
	if s.phase == Idle {
		return Question{}, false
	}
	return s.question, true
}

// Result returns the evaluation of the last answer while in Feedback.
func (s State) Result() (Result, bool) {
	if s.phase != Feedback {
		return Result{}, false
	}
	return s.result, true
}

// WithMode changes the mode for later questions. It is only allowed while idle.
func (s State) WithMode(mode Mode) (State, error) {
	if s.Running() {
		return s, ErrQuizInProgress
	}
	s.mode = mode
	return s, nil
}

// Start draws the first question. With no entries the state is returned
// unchanged together with ErrNoVocabulary.
func (s State) Start(entries []vocabulary.Entry, picker Picker) (State, error) {
	return s.ask(entries, picker)
}

// Next draws another question while a quiz is running. Starting from Idle is
// the same as Start.
func (s State) Next(entries []vocabulary.Entry, picker Picker) (State, error) {
	return s.ask(entries, picker)
}

// Submit evaluates answer against the current question. It is a no-op unless
// a question is awaiting an answer; ok reports whether the answer was counted.
func (s State) Submit(answer string) (next State, result Result, ok bool) {
	if s.phase != AwaitingAnswer {
		return s, Result{}, false
	}
	result = Result{
		Correct:  s.question.IsCorrect(answer),
		Given:    answer,
		Expected: s.question.ExpectedAnswer,
	}
	s.phase = Feedback
	s.result = result
	return s, result, true
}

// Stop ends the quiz and clears the question and feedback.
func (s State) Stop() State {
	return NewState(s.mode)
}

func (s State) ask(entries []vocabulary.Entry, picker Picker) (State, error) {
	q, err := PickQuestion(entries, s.mode, picker)
	if err != nil {
		return s, err
	}
	return State{
		phase:    AwaitingAnswer,
		mode:     s.mode,
		question: q,
	}, nil
}
