package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/spamscan/internal/model"
)

// createTestReport creates a spam report with sample data for testing.
func createTestReport() *model.Report {
	verdict := &model.Verdict{IsSpam: true, Reason: "Contains money-related terms and Contains suspicious links"}
	outcome := model.Outcome{
		Kind:      model.OutcomeSpam,
		Message:   model.SpamMessage(verdict.Reason),
		RequestID: "3f1c2a9e-8d7b-4a61-9b53-8c2f0e5d4a17",
		Verdict:   verdict,
		Elapsed:   42 * time.Millisecond,
	}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return model.NewReport("http://127.0.0.1:8000/analyze", "Earn cash at bit.ly/x", outcome, at)
}

// createTestEvaluation creates an evaluation with one miss and one failure.
func createTestEvaluation() *model.Evaluation {
	eval := &model.Evaluation{Classifier: "local"}
	eval.Add(model.EvaluationResult{
		Email:   model.Email{ID: "1", Content: "Free money | act now", Expected: model.ClassificationSpam},
		Actual:  model.ClassificationSpam,
		Reason:  "Contains money-related terms and Contains urgency-related terms",
		Correct: true,
	})
	eval.Add(model.EvaluationResult{
		Email:   model.Email{ID: "2", Content: "See you at lunch", Expected: model.ClassificationNormal},
		Actual:  model.ClassificationNormal,
		Reason:  "Email appears legitimate",
		Correct: true,
	})
	eval.Add(model.EvaluationResult{
		Email:  model.Email{ID: "3", Content: "Free gift", Expected: model.ClassificationSpam},
		Actual: model.ClassificationNormal,
		Reason: "Email appears legitimate",
	})
	eval.Add(model.EvaluationResult{
		Email: model.Email{ID: "4", Content: "Hello", Expected: model.ClassificationNormal},
		Error: "connection refused",
	})
	return eval
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes analysis report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("returned %d bytes, wrote %d", n, buf.Len())
		}

		output := buf.String()
		for _, want := range []string{
			"SPAMSCAN REPORT",
			"http://127.0.0.1:8000/analyze",
			"Outcome: Spam",
			"Status:  Spam: Contains money-related terms and Contains suspicious links",
			"Content:      21 bytes",
			"2026-03-01 12:00:00 UTC",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("omits empty request id", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport("http://x/analyze", "", model.Outcome{
			Kind:    model.OutcomePrompted,
			Message: model.MessagePrompt,
		}, time.Time{})

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "Request ID") || strings.Contains(output, "Analyzed At") {
			t.Errorf("expected empty fields to be omitted, got:\n%s", output)
		}
		if !strings.Contains(output, "No content") {
			t.Error("expected prompted outcome label")
		}
	})

	t.Run("writes evaluation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteEvaluation(createTestEvaluation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"SPAMSCAN EVALUATION",
			"[OK] Test 1: expected spam, got spam",
			"[NG] Test 3: expected spam, got normal",
			"[NG] Test 4: expected normal, got error",
			"Error:  connection refused",
			"Accuracy:  50.00%",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
		if strings.Contains(output, "See you at lunch") {
			t.Error("email content should only be shown in verbose mode")
		}
	})

	t.Run("verbose evaluation shows content", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		if _, err := w.WriteEvaluation(createTestEvaluation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Email:  See you at lunch") {
			t.Error("expected email content in verbose output")
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Count(output, "\n") != 1 || !strings.HasSuffix(output, "\n") {
			t.Errorf("expected one line of compact JSON, got %q", output)
		}

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded["outcome"] != "spam" {
			t.Errorf("outcome = %v", decoded["outcome"])
		}
		verdict, ok := decoded["verdict"].(map[string]any)
		if !ok || verdict["isSpam"] != true {
			t.Errorf("verdict = %v", decoded["verdict"])
		}
	})

	t.Run("pretty printed", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"endpoint\"") {
			t.Errorf("expected indented output, got %q", buf.String())
		}
	})

	t.Run("custom indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithIndent("", "\t")).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n\t\"endpoint\"") {
			t.Errorf("expected tab indentation, got %q", buf.String())
		}
	})

	t.Run("evaluation includes accuracy", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteEvaluation(createTestEvaluation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Classifier string  `json:"classifier"`
			Accuracy   float64 `json:"accuracy"`
			Correct    int     `json:"correct"`
			Incorrect  int     `json:"incorrect"`
			Total      int     `json:"total"`
			Results    []struct {
				Error string `json:"error"`
			} `json:"results"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.Accuracy != 50 || decoded.Correct != 2 || decoded.Incorrect != 2 || decoded.Total != 4 {
			t.Errorf("unexpected figures %+v", decoded)
		}
		if len(decoded.Results) != 4 || decoded.Results[3].Error != "connection refused" {
			t.Errorf("unexpected results %+v", decoded.Results)
		}
	})
}

func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewFullJSONWriter(&buf, "v1.2.3").Write(createTestReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded JSONReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Version != "v1.2.3" {
		t.Errorf("Version = %q", decoded.Version)
	}
	if decoded.Report == nil || decoded.Report.Outcome != model.OutcomeSpam {
		t.Errorf("Report = %+v", decoded.Report)
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes spam report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# Spamscan Report",
			"`http://127.0.0.1:8000/analyze`",
			"[!WARNING]",
			"Contains suspicious links",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("table cells stay on one row", func(t *testing.T) {
		t.Parallel()

		rep := createTestReport()
		rep.Status = model.SpamMessage("Contains a | pipe\nand a newline")

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(rep); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		unescapedPipes := func(line string) int {
			return strings.Count(line, "|") - strings.Count(line, `\|`)
		}

		var header, status string
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.HasPrefix(line, "and a newline") {
				t.Errorf("newline in a cell split the row: %q", line)
			}
			if strings.Contains(line, "Property") {
				header = line
			}
			if strings.Contains(line, "Contains a") {
				status = line
			}
		}
		if status == "" || !strings.Contains(status, "and a newline") {
			t.Fatalf("status row not found on one line:\n%s", buf.String())
		}
		if unescapedPipes(status) != unescapedPipes(header) {
			t.Errorf("status row has %d cell separators, header has %d: %q",
				unescapedPipes(status), unescapedPipes(header), status)
		}
	})

	alerts := []struct {
		kind model.OutcomeKind
		want string
	}{
		{model.OutcomeLegitimate, "[!TIP]"},
		{model.OutcomeFailed, "[!CAUTION]"},
		{model.OutcomePrompted, "[!NOTE]"},
	}
	for _, tt := range alerts {
		t.Run("alert for "+string(tt.kind), func(t *testing.T) {
			t.Parallel()

			report := model.NewReport("http://x/analyze", "text", model.Outcome{Kind: tt.kind}, time.Now())

			var buf bytes.Buffer
			if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %s alert, got:\n%s", tt.want, buf.String())
			}
		})
	}

	t.Run("writes evaluation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteEvaluation(createTestEvaluation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# Spamscan Evaluation",
			"## Results",
			"pie",
			"Correct",
			"[!CAUTION]",
			"50.00%",
			"Free money",
			"connection refused",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("perfect evaluation", func(t *testing.T) {
		t.Parallel()

		eval := &model.Evaluation{Classifier: "local"}
		eval.Add(model.EvaluationResult{
			Email:   model.Email{ID: "1", Content: "hi", Expected: model.ClassificationNormal},
			Actual:  model.ClassificationNormal,
			Correct: true,
		})

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteEvaluation(eval); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[!TIP]") {
			t.Error("expected tip alert for perfect accuracy")
		}
	})
}

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) Write(*model.Report) (int, error) { return 0, errors.New("disk full") }
func (failingWriter) WriteEvaluation(*model.Evaluation) (int, error) {
	return 0, errors.New("disk full")
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var text, js bytes.Buffer
		m := NewMultiWriter(NewSimpleWriter(&text), NewJSONWriter(&js))

		n, err := m.Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != text.Len()+js.Len() {
			t.Errorf("total = %d, want %d", n, text.Len()+js.Len())
		}
		if text.Len() == 0 || js.Len() == 0 {
			t.Error("expected both writers to receive output")
		}

		text.Reset()
		js.Reset()
		if _, err := m.WriteEvaluation(createTestEvaluation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text.Len() == 0 || js.Len() == 0 {
			t.Error("expected both writers to receive evaluation output")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		m := NewMultiWriter(failingWriter{}, NewSimpleWriter(&buf))

		if _, err := m.Write(createTestReport()); err == nil {
			t.Error("expected error")
		}
		if _, err := m.WriteEvaluation(createTestEvaluation()); err == nil {
			t.Error("expected error")
		}
		if buf.Len() != 0 {
			t.Error("writers after the failing one should not run")
		}
	})
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is a long string", 10, "this is..."},
		{"abcdef", 3, "abc"},
		{"こんにちは世界", 5, "こん..."},
	}

	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}
