package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/nao1215/spamscan/internal/config"
	"github.com/nao1215/spamscan/internal/input"
	"github.com/nao1215/spamscan/internal/model"
	"github.com/nao1215/spamscan/internal/report"
)

// writeTestConfig writes an empty configuration so tests never pick up
// a user's own .spamscan.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".spamscan")
	if err := os.WriteFile(path, []byte("evaluate:\n  concurrency: 1\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// newTestService starts a classification service answering with body.
func newTestService(t *testing.T, status int, body string, calls *atomic.Int32, received *atomic.Value) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		if received != nil {
			data, _ := io.ReadAll(r.Body) //nolint:errcheck
			received.Store(string(data))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

// runRoot executes the root command with args and returns stdout.
func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestNewAnalyzeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCmd()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "file", shorthand: "f", defValue: ""},
		{name: "endpoint", shorthand: "e", defValue: config.DefaultEndpoint},
		{name: "timeout", shorthand: "t", defValue: config.DefaultTimeout.String()},
		{name: "proxy", shorthand: "x", defValue: ""},
		{name: "local", shorthand: "l", defValue: "false"},
		{name: "config", shorthand: "c", defValue: ""},
		{name: "json", shorthand: "j", defValue: "false"},
		{name: "markdown", shorthand: "m", defValue: "false"},
		{name: "output", shorthand: "o", defValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("expected default %q, got %q", tt.defValue, flag.DefValue)
			}
		})
	}
}

func TestRunAnalyzeCmd(t *testing.T) {
	t.Parallel()

	t.Run("local spam verdict", func(t *testing.T) {
		t.Parallel()
		out, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "--local",
			"Free", "money", "click here")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, model.MessageAnalyzing) {
			t.Errorf("expected loading message, got %q", out)
		}
		if !strings.Contains(out, "Spam: Contains money-related terms") {
			t.Errorf("expected spam verdict, got %q", out)
		}
	})

	t.Run("remote legitimate verdict", func(t *testing.T) {
		t.Parallel()
		var received atomic.Value
		srv := newTestService(t, http.StatusOK, `{"is_spam": false, "reason": "Email appears legitimate"}`, nil, &received)

		out, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "-e", srv.URL,
			"Lunch", "at", "noon?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, model.MessageLegitimate) {
			t.Errorf("expected legitimate verdict, got %q", out)
		}

		body, _ := received.Load().(string) //nolint:errcheck
		if body != `{"content":"Lunch at noon?"}` {
			t.Errorf("unexpected request body %q", body)
		}
	})

	t.Run("service failure is shown, not returned", func(t *testing.T) {
		t.Parallel()
		srv := newTestService(t, http.StatusInternalServerError, `{"detail": "boom"}`, nil, nil)

		out, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "-e", srv.URL, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, model.MessageError) {
			t.Errorf("expected error status, got %q", out)
		}
	})

	t.Run("blank stdin prompts without a request", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		srv := newTestService(t, http.StatusOK, `{"is_spam": false}`, &calls, nil)

		out, err := runRoot(t, "  \n\t ", "analyze", "-c", writeTestConfig(t), "-e", srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, model.MessagePrompt) {
			t.Errorf("expected prompt, got %q", out)
		}
		if calls.Load() != 0 {
			t.Errorf("expected no request, got %d", calls.Load())
		}
	})

	t.Run("invalid UTF-8 is rejected before sending", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		srv := newTestService(t, http.StatusOK, `{"is_spam": false}`, &calls, nil)

		_, err := runRoot(t, "win \xff\xfe cash", "analyze", "-c", writeTestConfig(t), "-e", srv.URL)
		if !errors.Is(err, input.ErrInvalidUTF8) {
			t.Errorf("expected ErrInvalidUTF8, got %v", err)
		}
		if calls.Load() != 0 {
			t.Errorf("expected no request, got %d", calls.Load())
		}
	})

	t.Run("reads text from file", func(t *testing.T) {
		t.Parallel()
		var received atomic.Value
		srv := newTestService(t, http.StatusOK, `{"is_spam": true, "reason": "Contains suspicious links"}`, nil, &received)

		path := filepath.Join(t.TempDir(), "message.txt")
		if err := os.WriteFile(path, []byte("  visit bit.ly now \n"), 0600); err != nil {
			t.Fatalf("failed to write input: %v", err)
		}

		out, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "-e", srv.URL, "-f", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Spam: Contains suspicious links") {
			t.Errorf("expected spam verdict, got %q", out)
		}
		// The text is sent as read, surrounding whitespace included.
		body, _ := received.Load().(string) //nolint:errcheck
		if body != `{"content":"  visit bit.ly now \n"}` {
			t.Errorf("unexpected request body %q", body)
		}
	})

	t.Run("json report", func(t *testing.T) {
		t.Parallel()
		out, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "--local", "-j",
			"Urgent: claim your free prize")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var rep report.JSONReport
		if err := json.Unmarshal([]byte(out), &rep); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if rep.Version == "" {
			t.Error("expected version in report")
		}
		if rep.Report == nil {
			t.Fatal("expected report")
		}
		if rep.Report.Outcome != model.OutcomeSpam {
			t.Errorf("expected outcome %q, got %q", model.OutcomeSpam, rep.Report.Outcome)
		}
		if rep.Report.Endpoint != localClassifierName {
			t.Errorf("expected endpoint %q, got %q", localClassifierName, rep.Report.Endpoint)
		}
		if strings.Contains(out, model.MessageAnalyzing+"\n") {
			t.Error("status lines must not mix with the JSON report")
		}
	})

	t.Run("markdown report to file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "reports", "report.md")

		out, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "--local", "-m", "-o", path,
			"See you at the meeting")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "" {
			t.Errorf("expected no stdout, got %q", out)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(content), "Spamscan Report") {
			t.Errorf("expected markdown report, got %q", content)
		}
	})

	t.Run("text report to file keeps status on stdout", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "report.txt")

		out, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "--local", "-o", path, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, model.MessageLegitimate) {
			t.Errorf("expected status on stdout, got %q", out)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(content), "SPAMSCAN REPORT") {
			t.Errorf("expected text report, got %q", content)
		}
	})

	t.Run("arguments and file conflict", func(t *testing.T) {
		t.Parallel()
		_, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "--local", "-f", "message.txt", "hello")
		if !errors.Is(err, errInputConflict) {
			t.Errorf("expected errInputConflict, got %v", err)
		}
	})

	t.Run("json and markdown conflict", func(t *testing.T) {
		t.Parallel()
		_, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "--local", "-j", "-m", "hello")
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		t.Parallel()
		_, err := runRoot(t, "", "analyze", "-c", writeTestConfig(t), "-e", "ftp://example.com", "hello")
		if err == nil {
			t.Error("expected error for invalid endpoint")
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "missing.yaml")
		_, err := runRoot(t, "", "analyze", "-c", missing, "--local", "hello")
		if err == nil {
			t.Fatal("expected error for missing config file")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("expected 'not found' error, got %v", err)
		}
	})

	t.Run("config file sets the endpoint", func(t *testing.T) {
		t.Parallel()
		srv := newTestService(t, http.StatusOK, `{"is_spam": false}`, nil, nil)

		path := filepath.Join(t.TempDir(), ".spamscan")
		content := "client:\n  endpoint: \"" + srv.URL + "\"\n  timeout: 5s\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		out, err := runRoot(t, "", "analyze", "-c", path, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, model.MessageLegitimate) {
			t.Errorf("expected legitimate verdict, got %q", out)
		}
	})
}
