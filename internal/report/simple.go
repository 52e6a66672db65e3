package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/spamscan/internal/model"
)

const (
	ruleWidth  = 70
	timeLayout = "2006-01-02 15:04:05 MST"
)

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// verbose adds the email content to each evaluation result.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the analysis report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	writeBanner(&sb, "SPAMSCAN REPORT")

	fmt.Fprintf(&sb, "Endpoint:     %s\n", report.Endpoint)
	if !report.AnalyzedAt.IsZero() {
		fmt.Fprintf(&sb, "Analyzed At:  %s\n", report.AnalyzedAt.Format(timeLayout))
	}
	if report.RequestID != "" {
		fmt.Fprintf(&sb, "Request ID:   %s\n", report.RequestID)
	}
	fmt.Fprintf(&sb, "Content:      %d bytes\n", report.ContentLength)
	fmt.Fprintf(&sb, "Elapsed:      %s\n", report.Elapsed)
	sb.WriteString("\n")

	writeSection(&sb, "RESULT")
	fmt.Fprintf(&sb, "  Outcome: %s\n", statusText(report.Outcome))
	fmt.Fprintf(&sb, "  Status:  %s\n", report.Status)
	sb.WriteString("\n")

	writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteEvaluation outputs the evaluation in human-readable format.
func (w *SimpleWriter) WriteEvaluation(eval *model.Evaluation) (int, error) {
	var sb strings.Builder

	writeBanner(&sb, "SPAMSCAN EVALUATION")

	fmt.Fprintf(&sb, "Classifier:   %s\n", eval.Classifier)
	fmt.Fprintf(&sb, "Emails:       %d\n", eval.Total)
	sb.WriteString("\n")

	writeSection(&sb, "RESULTS")
	for _, r := range eval.Results {
		mark := "OK"
		if !r.Correct {
			mark = "NG"
		}
		actual := string(r.Actual)
		if r.Error != "" {
			actual = "error"
		}

		fmt.Fprintf(&sb, "[%s] Test %s: expected %s, got %s\n", mark, r.Email.ID, r.Email.Expected, actual)
		if w.verbose {
			fmt.Fprintf(&sb, "     Email:  %s\n", r.Email.Content)
		}
		if r.Error != "" {
			fmt.Fprintf(&sb, "     Error:  %s\n", r.Error)
		} else {
			fmt.Fprintf(&sb, "     Reason: %s\n", r.Reason)
		}
	}
	sb.WriteString("\n")

	writeSection(&sb, "SUMMARY")
	fmt.Fprintf(&sb, "  Correct:   %d\n", eval.Correct)
	fmt.Fprintf(&sb, "  Incorrect: %d\n", eval.Incorrect())
	fmt.Fprintf(&sb, "  Accuracy:  %.2f%%\n", eval.Accuracy())
	sb.WriteString("\n")

	writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

func writeBanner(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", (ruleWidth-len(title))/2))
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
}

func writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

func writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("Report generated by spamscan\n")
	sb.WriteString("https://github.com/nao1215/spamscan\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}
