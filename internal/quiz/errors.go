package quiz

import "errors"

var (
	// ErrStartInFlight is returned when Start is called while another
	// Start is still loading. Only one start may be in flight.
	ErrStartInFlight = errors.New("quiz: start already in flight")
	// ErrNoQuestion is returned when Answer is called without a question
	// awaiting an answer (no session, or the session is complete).
	ErrNoQuestion = errors.New("quiz: no question awaiting an answer")
	// ErrAlreadyAnswered is returned when Answer is called again for the
	// current question. The recorded answer is unchanged.
	ErrAlreadyAnswered = errors.New("quiz: question already answered")
	// ErrOptionOutOfRange is returned when Answer receives an index
	// outside the current question's options.
	ErrOptionOutOfRange = errors.New("quiz: option index out of range")
	// ErrNotAnswered is returned when Next is called before the current
	// question has been answered.
	ErrNotAnswered = errors.New("quiz: current question not answered")
	// ErrNotComplete is returned when Results is called before the
	// session reaches the complete phase.
	ErrNotComplete = errors.New("quiz: session not complete")
)
