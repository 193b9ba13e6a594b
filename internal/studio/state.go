package studio

import "adcraft/internal/engine"

// Phase is where a generation attempt currently stands.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Inputs holds the form fields for a generation request.
type Inputs struct {
	ProgramName    string
	TargetAudience string
	Localize       bool
}

// State is the studio view state. Seq counts submit attempts; settle
// events tagged with an older sequence never touch the state, so a
// slow response can not overwrite a newer attempt.
type State struct {
	Inputs Inputs
	Phase  Phase
	Seq    uint64
	Result *engine.GenerateResponse
	Err    string
}

// Event is a state transition. The concrete variants below are the
// only implementations.
type Event interface {
	isEvent()
}

// InputChanged replaces the form inputs without disturbing the rest
// of the state, so an edit never clears a rendered result.
type InputChanged struct {
	Inputs Inputs
}

// SubmitStarted begins attempt Seq and puts the view in the loading
// phase.
type SubmitStarted struct {
	Seq uint64
}

// SubmitSucceeded settles attempt Seq with a result.
type SubmitSucceeded struct {
	Seq    uint64
	Result *engine.GenerateResponse
}

// SubmitFailed settles attempt Seq with an error message.
type SubmitFailed struct {
	Seq uint64
	Msg string
}

func (InputChanged) isEvent()    {}
func (SubmitStarted) isEvent()   {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}

// Reduce applies an event to a state and returns the next state. It
// never mutates its argument. Settle events are applied only while
// the matching attempt is still loading; anything stale or duplicated
// is discarded, which keeps success and failure mutually exclusive.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case InputChanged:
		s.Inputs = ev.Inputs
		return s

	case SubmitStarted:
		if ev.Seq <= s.Seq {
			return s
		}
		s.Seq = ev.Seq
		s.Phase = PhaseLoading
		s.Err = ""
		return s

	case SubmitSucceeded:
		if ev.Seq != s.Seq || s.Phase != PhaseLoading {
			return s
		}
		s.Phase = PhaseSucceeded
		s.Result = ev.Result
		s.Err = ""
		return s

	case SubmitFailed:
		if ev.Seq != s.Seq || s.Phase != PhaseLoading {
			return s
		}
		s.Phase = PhaseFailed
		s.Err = ev.Msg
		s.Result = nil
		return s
	}
	return s
}
