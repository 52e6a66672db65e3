package model

// State is the phase of the analysis controller for one trigger.
//
// Transitions: Idle -> Validating -> (Idle | AwaitingResponse) -> Displaying -> Idle.
// Failures are a rendering outcome of Displaying, not a separate state.
type State int

const (
	// StateIdle means no trigger is being handled.
	StateIdle State = iota

	// StateValidating means the input is being read and checked.
	StateValidating

	// StateAwaitingResponse means a request is in flight.
	StateAwaitingResponse

	// StateDisplaying means the final status is being written.
	StateDisplaying
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateValidating:
		return "Validating"
	case StateAwaitingResponse:
		return "AwaitingResponse"
	case StateDisplaying:
		return "Displaying"
	default:
		return "Unknown"
	}
}
