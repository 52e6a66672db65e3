package report

import (
	"io"
	"unicode/utf8"

	"github.com/nao1215/spamscan/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the report of one analysis.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)

	// WriteEvaluation outputs the result of a dataset evaluation.
	WriteEvaluation(eval *model.Evaluation) (int, error)
}

// MultiWriter writes to multiple Writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteEvaluation outputs the evaluation to all configured Writers.
func (m *MultiWriter) WriteEvaluation(eval *model.Evaluation) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteEvaluation(eval)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// truncateString shortens s to at most maxLen runes, ending with an ellipsis.
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// statusText is the human-readable label of an outcome.
func statusText(kind model.OutcomeKind) string {
	switch kind {
	case model.OutcomeSpam:
		return "Spam"
	case model.OutcomeLegitimate:
		return "Legitimate"
	case model.OutcomeFailed:
		return "Failed"
	case model.OutcomePrompted:
		return "No content"
	case model.OutcomeIgnored:
		return "Ignored"
	default:
		return string(kind)
	}
}
