package model

// Verdict is the classification returned by the classification service.
type Verdict struct {
	// IsSpam reports whether the content was classified as spam.
	IsSpam bool `json:"isSpam"`

	// Reason explains a spam classification.
	// It is only meaningful when IsSpam is true.
	Reason string `json:"reason,omitempty"`
}

// Classification returns the label used in reports and datasets.
func (v Verdict) Classification() Classification {
	if v.IsSpam {
		return ClassificationSpam
	}
	return ClassificationNormal
}

// Classification is the label of a classified email.
type Classification string

const (
	// ClassificationSpam labels unwanted email.
	ClassificationSpam Classification = "spam"

	// ClassificationNormal labels legitimate email.
	ClassificationNormal Classification = "normal"
)
