package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/spamscan/internal/model"
)

// MarkdownWriter outputs reports in GitHub-flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the analysis report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Spamscan Report")
	md.PlainText("")

	rows := [][]string{
		{"Endpoint", "`" + escapeCell(report.Endpoint) + "`"},
		{"Outcome", outcomeIcon(report.Outcome) + " " + statusText(report.Outcome)},
		{"Status", escapeCell(report.Status)},
		{"Content", strconv.Itoa(report.ContentLength) + " bytes"},
		{"Elapsed", report.Elapsed.String()},
	}
	if report.RequestID != "" {
		rows = append(rows, []string{"Request ID", "`" + report.RequestID + "`"})
	}
	if !report.AnalyzedAt.IsZero() {
		rows = append(rows, []string{"Analyzed At", report.AnalyzedAt.Format(timeLayout)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeReportAlert(md, report)
	writeMarkdownFooter(md)

	return len(md.String()), md.Build()
}

// writeReportAlert writes an alert matching the outcome.
func (w *MarkdownWriter) writeReportAlert(md *markdown.Markdown, report *model.Report) {
	switch report.Outcome {
	case model.OutcomeSpam:
		reason := ""
		if report.Verdict != nil {
			reason = report.Verdict.Reason
		}
		md.Warningf("This email was classified as spam. %s", reason)
	case model.OutcomeFailed:
		md.Cautionf("The classification service at %s could not analyze the email.", report.Endpoint)
	case model.OutcomePrompted:
		md.Note("No email content was provided.")
	default:
		md.Tip("This email appears legitimate.")
	}
	md.PlainText("")
}

// WriteEvaluation outputs the evaluation in Markdown format.
func (w *MarkdownWriter) WriteEvaluation(eval *model.Evaluation) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Spamscan Evaluation")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Classifier", "`" + escapeCell(eval.Classifier) + "`"},
			{"Emails", strconv.Itoa(eval.Total)},
			{"✅ Correct", strconv.Itoa(eval.Correct)},
			{"❌ Incorrect", strconv.Itoa(eval.Incorrect())},
			{"**Accuracy**", "**" + strconv.FormatFloat(eval.Accuracy(), 'f', 2, 64) + "%**"},
		},
	})
	md.PlainText("")

	if eval.Total > 0 {
		w.writePieChart(md, eval)
	}
	w.writeAccuracyAlert(md, eval)
	w.writeResults(md, eval)
	writeMarkdownFooter(md)

	return len(md.String()), md.Build()
}

// writePieChart writes a mermaid pie chart of correct and incorrect results.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, eval *model.Evaluation) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Classification Accuracy"),
		piechart.WithShowData(true),
	)

	if eval.Correct > 0 {
		chart.LabelAndIntValue("Correct", uint64(eval.Correct))
	}
	if eval.Incorrect() > 0 {
		chart.LabelAndIntValue("Incorrect", uint64(eval.Incorrect()))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAccuracyAlert writes an alert based on the accuracy.
func (w *MarkdownWriter) writeAccuracyAlert(md *markdown.Markdown, eval *model.Evaluation) {
	accuracy := eval.Accuracy()
	switch {
	case eval.Total == 0:
		md.Note("The dataset contained no emails.")
	case accuracy == 100:
		md.Tip("Every email was classified as expected.")
	case accuracy >= 80:
		md.Importantf("%d of %d emails were misclassified.", eval.Incorrect(), eval.Total)
	default:
		md.Cautionf("Accuracy is %.2f%%. %d of %d emails were misclassified.",
			accuracy, eval.Incorrect(), eval.Total)
	}
	md.PlainText("")
}

// writeResults writes a table with one row per email.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, eval *model.Evaluation) {
	md.H2("Results")
	md.PlainText("")

	if len(eval.Results) == 0 {
		md.PlainText("No results.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(eval.Results))
	for i, r := range eval.Results {
		mark := "✅"
		if !r.Correct {
			mark = "❌"
		}
		actual := string(r.Actual)
		reason := r.Reason
		if r.Error != "" {
			actual = "error"
			reason = r.Error
		}
		rows[i] = []string{
			escapeCell(string(r.Email.ID)),
			mark,
			escapeCell(string(r.Email.Expected)),
			actual,
			escapeCell(truncateString(reason, 60)),
			escapeCell(truncateString(r.Email.Content, 50)),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"ID", "Result", "Expected", "Actual", "Reason", "Email"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeMarkdownFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [spamscan](https://github.com/nao1215/spamscan)*")
}

// escapeCell keeps table cells on one line.
func escapeCell(s string) string {
	return strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ").Replace(s)
}

// outcomeIcon returns a visual indicator for the outcome.
func outcomeIcon(kind model.OutcomeKind) string {
	switch kind {
	case model.OutcomeSpam:
		return "🚫"
	case model.OutcomeLegitimate:
		return "✅"
	case model.OutcomeFailed:
		return "❌"
	default:
		return "ℹ️"
	}
}
