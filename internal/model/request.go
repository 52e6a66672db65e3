package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRequest is one submission to the classification service.
// It is created when a trigger passes validation and is owned by the
// in-flight call. Content is the original, untrimmed input text.
type AnalysisRequest struct {
	// ID correlates diagnostic log records with the request.
	ID string `json:"id"`

	// Content is the text sent to the classification service.
	Content string `json:"content"`

	// SubmittedAt is the time the request was created.
	SubmittedAt time.Time `json:"submittedAt"`
}

// NewAnalysisRequest creates an AnalysisRequest with a fresh random ID.
func NewAnalysisRequest(content string, now time.Time) AnalysisRequest {
	return AnalysisRequest{
		ID:          uuid.NewString(),
		Content:     content,
		SubmittedAt: now,
	}
}
