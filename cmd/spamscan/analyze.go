package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/spamscan/internal/config"
	"github.com/nao1215/spamscan/internal/controller"
	"github.com/nao1215/spamscan/internal/display"
	"github.com/nao1215/spamscan/internal/input"
	"github.com/nao1215/spamscan/internal/model"
)

// errInputConflict is returned when text is given both as arguments and with --file.
var errInputConflict = errors.New("conflicting input: pass text as arguments or with --file, not both")

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Classify email text as spam or legitimate",
		Long: `Analyze submits email text to the classification service and prints the verdict.

The text is taken from the arguments (joined with spaces), from --file, or
from standard input. Empty or whitespace-only text is not submitted.

Possible results:
  Spam: <reason>
  Normal: Email appears legitimate.
  Error analyzing email.

Examples:
  # Classify text given on the command line
  spamscan analyze "Congratulations! Click here to claim your prize"

  # Classify a saved email
  spamscan analyze -f message.txt

  # Read from stdin and classify in process without a service
  cat message.txt | spamscan analyze --local

  # Use a remote service through a SOCKS5 proxy
  spamscan analyze -e https://spam.example.com/analyze -x 127.0.0.1:1080 "hello"

  # Write a Markdown report
  spamscan analyze -m -o report.md -f message.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("file", "f", "",
		"Read email text from file (\"-\" for stdin)")

	// Classification service flags
	cmd.Flags().StringP("endpoint", "e", config.DefaultEndpoint,
		"Classification service URL (env: "+config.EnvEndpoint+")")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for the classification request")
	cmd.Flags().StringP("proxy", "x", "",
		"SOCKS5 proxy address for the classification request (host:port)")
	cmd.Flags().BoolP("local", "l", false,
		"Classify in process with the rule-based filter instead of the service")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .spamscan, XDG config dir or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	text, err := readContent(cmd, args, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runAnalyze(ctx, cmd, cfg, text, logger)
}

// buildAnalyzeConfig creates a Config from the config file, environment and flags.
func buildAnalyzeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := overrideString(cmd, "endpoint", &cfg.Endpoint); err != nil {
		return nil, err
	}
	if err := overrideDuration(cmd, "timeout", &cfg.Timeout); err != nil {
		return nil, err
	}
	if err := overrideString(cmd, "proxy", &cfg.ProxyAddress); err != nil {
		return nil, err
	}
	if cfg.InputFile, err = cmd.Flags().GetString("file"); err != nil {
		return nil, err
	}
	if cfg.Local, err = cmd.Flags().GetBool("local"); err != nil {
		return nil, err
	}
	if err := readReportFlags(cmd, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readContent returns the email text from the arguments, the input file or stdin.
func readContent(cmd *cobra.Command, args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		if cfg.InputFile != "" {
			return "", errInputConflict
		}
		text, err := input.New(strings.Join(args, " "))
		if err != nil {
			return "", err
		}
		return text.Text(), nil
	}

	var r io.Reader = cmd.InOrStdin()
	if cfg.InputFile != "" && cfg.InputFile != "-" {
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return "", fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	text, err := input.ReadAll(r, cfg.MaxInputSize)
	if err != nil {
		return "", err
	}
	return text.Text(), nil
}

// runAnalyze runs one analysis cycle and writes the requested report.
// Classification failures are shown as a status, not returned as errors.
func runAnalyze(ctx context.Context, cmd *cobra.Command, cfg *config.Config, text string, logger *slog.Logger) error {
	cl, name, err := newClassifier(cfg)
	if err != nil {
		return fmt.Errorf("failed to create classifier: %w", err)
	}

	// Structured reports own stdout; statuses are only shown in text mode.
	structured := cfg.JSONReport || cfg.MarkdownReport
	var status controller.StatusDisplay = display.NewWriter(cmd.OutOrStdout())
	if structured {
		status = display.NewRecorder()
	}

	ctrl := controller.New(input.Static(text), status, cl,
		controller.WithLogger(logger),
		controller.WithTimeout(cfg.Timeout),
	)

	logger.Debug("analyzing", "classifier", name, "content_length", len(text))
	outcome := ctrl.HandleTrigger(ctx)

	if !structured && cfg.ReportFile == "" {
		return nil
	}

	return outputReport(cmd, cfg, model.NewReport(name, text, outcome, time.Now()))
}

// outputReport writes the analysis report in the requested format.
func outputReport(cmd *cobra.Command, cfg *config.Config, rep *model.Report) error {
	w, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}

	if _, err := newReportWriter(cfg, w).Write(rep); err != nil {
		_ = closeOutput() //nolint:errcheck // write error takes precedence
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeOutput()
}
