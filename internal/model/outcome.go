package model

import "time"

// OutcomeKind classifies what a single trigger produced.
type OutcomeKind string

const (
	// OutcomePrompted means the input was empty and the user was prompted.
	OutcomePrompted OutcomeKind = "prompted"

	// OutcomeSpam means the service classified the content as spam.
	OutcomeSpam OutcomeKind = "spam"

	// OutcomeLegitimate means the service classified the content as legitimate.
	OutcomeLegitimate OutcomeKind = "legitimate"

	// OutcomeFailed means transmission or parsing failed.
	OutcomeFailed OutcomeKind = "failed"

	// OutcomeIgnored means the trigger arrived while another request was in flight.
	OutcomeIgnored OutcomeKind = "ignored"
)

// Outcome describes what one trigger did.
type Outcome struct {
	// Kind is the category of the outcome.
	Kind OutcomeKind

	// Message is the text written to the status display.
	// It is empty for ignored triggers.
	Message string

	// RequestID is the ID of the request sent, if any.
	RequestID string

	// Verdict is the classification, if the service answered.
	Verdict *Verdict

	// Err is the failure detail. It is logged, never displayed.
	Err error

	// Elapsed is the time spent waiting for the service.
	Elapsed time.Duration
}

// NewOutcome derives an Outcome from a Result.
func NewOutcome(requestID string, result Result, elapsed time.Duration) Outcome {
	o := Outcome{
		Message:   result.Message(),
		RequestID: requestID,
		Err:       result.Err,
		Elapsed:   elapsed,
	}

	switch {
	case !result.OK():
		o.Kind = OutcomeFailed
	case result.Verdict.IsSpam:
		o.Kind = OutcomeSpam
		o.Verdict = result.Verdict
	default:
		o.Kind = OutcomeLegitimate
		o.Verdict = result.Verdict
	}

	return o
}
