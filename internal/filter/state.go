package filter

// State is a state of the filter automaton.
type State int

const (
	// StateStart is the initial state before any category is checked.
	StateStart State = iota
	// StateMoney means the last matched category was money.
	StateMoney
	// StateUrgent means the last matched category was urgency.
	StateUrgent
	// StateOffer means the last matched category was promotional offers.
	StateOffer
	// StateSuspiciousLink means the last matched category was suspicious links.
	StateSuspiciousLink
	// StateSpam is the accepting state for spam.
	StateSpam
	// StateNormal is the accepting state for legitimate content.
	StateNormal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateMoney:
		return "money"
	case StateUrgent:
		return "urgent"
	case StateOffer:
		return "offer"
	case StateSuspiciousLink:
		return "suspicious_link"
	case StateSpam:
		return "spam"
	case StateNormal:
		return "normal"
	default:
		return "unknown"
	}
}
