package model

import (
	"bytes"
	"encoding/json"
)

// Email is one labelled entry of an evaluation dataset.
type Email struct {
	ID       EmailID        `json:"id"`
	Content  string         `json:"content"`
	Expected Classification `json:"expected_classification"` //nolint:tagliatelle // dataset file format
}

// ExpectsSpam reports whether the email is labelled spam.
// Every label other than "spam" counts as legitimate.
func (e Email) ExpectsSpam() bool {
	return e.Expected == ClassificationSpam
}

// EmailID identifies a dataset email. Datasets may use any JSON value as
// the id; strings keep their text and other values keep their JSON form.
type EmailID string

// UnmarshalJSON decodes an id of any JSON type.
func (id *EmailID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = EmailID(s)
		return nil
	}
	*id = EmailID(data)
	return nil
}

// EvaluationResult is the classification of one dataset email.
type EvaluationResult struct {
	Email   Email          `json:"email"`
	Actual  Classification `json:"actual"`
	Reason  string         `json:"reason"`
	Correct bool           `json:"correct"`
	Error   string         `json:"error,omitempty"`
}

// Evaluation summarizes a dataset run.
type Evaluation struct {
	Classifier string             `json:"classifier"`
	Results    []EvaluationResult `json:"results"`
	Correct    int                `json:"correct"`
	Total      int                `json:"total"`
}

// Add records one result.
func (e *Evaluation) Add(r EvaluationResult) {
	e.Results = append(e.Results, r)
	e.Total++
	if r.Correct {
		e.Correct++
	}
}

// Accuracy returns the percentage of correct classifications.
func (e *Evaluation) Accuracy() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total) * 100
}

// Incorrect returns the number of wrong or failed classifications.
func (e *Evaluation) Incorrect() int {
	return e.Total - e.Correct
}
