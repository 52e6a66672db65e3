package model

import "time"

// Report is the serializable summary of one analysis.
// It never carries the failure detail of an Outcome.
type Report struct {
	// Endpoint is the classification service that was used.
	Endpoint string `json:"endpoint"`

	// Status is the final text of the status display.
	Status string `json:"status"`

	// Outcome is the kind of outcome.
	Outcome OutcomeKind `json:"outcome"`

	// RequestID is the ID of the request sent, if any.
	RequestID string `json:"requestId,omitempty"`

	// Verdict is the classification, if the service answered.
	Verdict *Verdict `json:"verdict,omitempty"`

	// ContentLength is the length in bytes of the submitted text.
	ContentLength int `json:"contentLength"`

	// Elapsed is the time spent waiting for the service.
	Elapsed time.Duration `json:"elapsed"`

	// AnalyzedAt is when the analysis finished.
	AnalyzedAt time.Time `json:"analyzedAt"`
}

// NewReport builds a Report from an Outcome.
func NewReport(endpoint string, content string, outcome Outcome, at time.Time) *Report {
	return &Report{
		Endpoint:      endpoint,
		Status:        outcome.Message,
		Outcome:       outcome.Kind,
		RequestID:     outcome.RequestID,
		Verdict:       outcome.Verdict,
		ContentLength: len(content),
		Elapsed:       outcome.Elapsed,
		AnalyzedAt:    at,
	}
}
