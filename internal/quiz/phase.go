package quiz

// Phase is the session state machine's current state.
type Phase int

const (
	// PhaseIdle means no active session.
	PhaseIdle Phase = iota
	// PhaseLoading means a stage fetch is in flight.
	PhaseLoading
	// PhaseAnswering means a question is displayed and not yet answered.
	PhaseAnswering
	// PhaseAnswered means the current question has been answered and
	// feedback is visible.
	PhaseAnswered
	// PhaseComplete is terminal; results are available.
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseAnswering:
		return "answering"
	case PhaseAnswered:
		return "answered"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
