package model

// Result is the outcome of the network step of an analysis.
// Exactly one of Verdict and Err is set.
type Result struct {
	// Verdict is set when the service answered with a well-formed verdict.
	Verdict *Verdict

	// Err is set when transmission or parsing failed.
	Err error
}

// Succeeded returns the ok arm of a Result.
func Succeeded(v Verdict) Result {
	return Result{Verdict: &v}
}

// Failed returns the failure arm of a Result.
func Failed(err error) Result {
	return Result{Err: err}
}

// OK reports whether the Result carries a verdict.
func (r Result) OK() bool {
	return r.Err == nil && r.Verdict != nil
}

// Message maps both arms of the Result to the status message to display.
func (r Result) Message() string {
	if !r.OK() {
		return MessageError
	}
	if r.Verdict.IsSpam {
		return SpamMessage(r.Verdict.Reason)
	}
	return MessageLegitimate
}
