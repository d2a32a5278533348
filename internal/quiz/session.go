// Package quiz owns the session state machine for one quiz attempt:
// Idle -> Loading -> Answering <-> Answered -> Complete, with Reset
// back to Idle from anywhere. All quiz progression logic lives here;
// screens only read state and invoke transitions.
package quiz

import (
	"context"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/quizkit/internal/scoring"
	"github.com/abhisek/quizkit/internal/shuffle"
	"github.com/abhisek/quizkit/internal/stage"
)

// Session is the mutable state of one quiz attempt. The loader and
// randomness source are injected so tests can substitute deterministic
// fakes. Methods are safe for concurrent use; bubbletea delivers
// commands from goroutines.
type Session struct {
	loader stage.Loader
	rng    *rand.Rand

	mu        sync.Mutex
	phase     Phase
	stageID   string
	attemptID string
	st        *stage.Stage
	questions []stage.Question // attempt order (shuffled copy)
	answers   []int
	index     int
}

// NewSession creates an idle session. rng may be nil for the
// process-wide randomness source.
func NewSession(loader stage.Loader, rng *rand.Rand) *Session {
	return &Session{
		loader: loader,
		phase:  PhaseIdle,
		rng:    rng,
	}
}

// Start loads the stage, shuffles a copy of its questions, and begins a
// fresh attempt at question 0 with every slot unanswered. On load
// failure the session keeps its prior phase and state so the caller can
// surface the error and retry. A second Start while one is loading is
// rejected with ErrStartInFlight rather than superseding it. A Reset
// during the load wins: the late result is discarded and the session
// stays idle.
func (s *Session) Start(ctx context.Context, stageID string) error {
	s.mu.Lock()
	if s.phase == PhaseLoading {
		s.mu.Unlock()
		return ErrStartInFlight
	}
	prev := s.phase
	s.phase = PhaseLoading
	s.mu.Unlock()

	st, err := s.loader.Load(ctx, stageID)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Only PhaseLoading may commit this load; anything else means Reset
	// ran in the meantime and already cleared the session.
	if s.phase != PhaseLoading {
		return err
	}

	if err != nil {
		s.phase = prev
		return err
	}

	s.stageID = stageID
	s.st = st
	s.questions = shuffle.Shuffle(st.Questions, s.rng)
	s.answers = make([]int, len(s.questions))
	for i := range s.answers {
		s.answers[i] = scoring.Unanswered
	}
	s.index = 0
	s.attemptID = uuid.New().String()
	s.phase = PhaseAnswering
	return nil
}

// Answer records the selected option for the current question and moves
// to the answered phase. Repeat calls and out-of-range indices are
// rejected without touching the recorded answer, so a question can
// never be scored twice.
func (s *Session) Answer(selected int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseAnswered:
		return ErrAlreadyAnswered
	case PhaseAnswering:
	default:
		return ErrNoQuestion
	}

	q := s.questions[s.index]
	if selected < 0 || selected >= len(q.Options) {
		return ErrOptionOutOfRange
	}

	s.answers[s.index] = selected
	s.phase = PhaseAnswered
	return nil
}

// Next advances past an answered question: to the next question, or to
// the complete phase after the last one. Calling it before Answer is
// rejected so no question can be skipped unscored.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAnswered {
		return ErrNotAnswered
	}

	if s.index == len(s.questions)-1 {
		s.phase = PhaseComplete
		return nil
	}
	s.index++
	s.phase = PhaseAnswering
	return nil
}

// Reset discards the session and returns to idle.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseIdle
	s.stageID = ""
	s.attemptID = ""
	s.st = nil
	s.questions = nil
	s.answers = nil
	s.index = 0
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// StageID returns the active stage identifier ("" when idle).
func (s *Session) StageID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stageID
}

// AttemptID returns the UUID of the current attempt ("" when idle).
func (s *Session) AttemptID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attemptID
}

// Stage returns the loaded stage, or nil outside an active session.
func (s *Session) Stage() *stage.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

// Current returns the question on display and its zero-based index.
// Returns (nil, 0) when no question is active.
func (s *Session) Current() (*stage.Question, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAnswering && s.phase != PhaseAnswered {
		return nil, 0
	}
	q := s.questions[s.index]
	return &q, s.index
}

// TotalQuestions returns the question count of the active attempt.
func (s *Session) TotalQuestions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

// Answered reports whether the current question has been answered.
func (s *Session) Answered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseAnswered
}

// Answers returns a copy of the recorded answer sequence, one slot per
// question in attempt order, scoring.Unanswered where no answer exists.
func (s *Session) Answers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// Questions returns a copy of the questions in attempt order.
func (s *Session) Questions() []stage.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]stage.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Progress returns the fraction of questions completed, counting the
// current question once it has been answered.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.questions) == 0 {
		return 0
	}
	switch s.phase {
	case PhaseComplete:
		return 1
	case PhaseAnswered:
		return float64(s.index+1) / float64(len(s.questions))
	default:
		return float64(s.index) / float64(len(s.questions))
	}
}

// Results scores the completed attempt. Only valid in the complete
// phase. The computation is pure, so repeat calls yield equal results.
func (s *Session) Results() (*scoring.Results, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseComplete {
		return nil, ErrNotComplete
	}

	// Score against the attempt's shuffled order, not the stage file order.
	attempt := *s.st
	attempt.Questions = s.questions
	return scoring.Calculate(&attempt, s.answers)
}
