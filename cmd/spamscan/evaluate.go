package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/spamscan/internal/config"
	"github.com/nao1215/spamscan/internal/evaluate"
)

// NewEvaluateCmd creates the evaluate command.
func NewEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <dataset.json>",
		Short: "Measure classifier accuracy against a labelled dataset",
		Long: `Evaluate classifies every email of a labelled dataset and reports the accuracy.

The dataset is a JSON file of the form:
  {
    "emails": [
      {"id": 1, "content": "Win cash now!", "expected_classification": "spam"},
      {"id": 2, "content": "Lunch at noon?", "expected_classification": "normal"}
    ]
  }

The rule-based filter is evaluated in process unless --endpoint is given.

Examples:
  # Evaluate the built-in filter
  spamscan evaluate emails.json

  # Evaluate a running classification service
  spamscan evaluate -e http://127.0.0.1:8000/analyze emails.json

  # Write a Markdown summary with a pie chart
  spamscan evaluate -m -o accuracy.md emails.json`,
		Args: cobra.ExactArgs(1),
		RunE: runEvaluateCmd,
	}

	cmd.Flags().StringP("endpoint", "e", "",
		"Evaluate the classification service at this URL instead of the local filter")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each classification request")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of emails classified at once")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .spamscan, XDG config dir or home directory)")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runEvaluateCmd executes the evaluate command.
func runEvaluateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildEvaluateConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	emails, err := evaluate.Load(args[0])
	if err != nil {
		return err
	}

	cl, name, err := newClassifier(cfg)
	if err != nil {
		return fmt.Errorf("failed to create classifier: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eval, err := evaluate.Run(ctx, cl, emails,
		evaluate.WithName(name),
		evaluate.WithConcurrency(cfg.Concurrency),
		evaluate.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	w, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	if _, err := newReportWriter(cfg, w).WriteEvaluation(eval); err != nil {
		_ = closeOutput() //nolint:errcheck // write error takes precedence
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeOutput()
}

// buildEvaluateConfig creates a Config for the evaluate command.
// The local filter is used unless --endpoint is given.
func buildEvaluateConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	cfg.Local = !cmd.Flags().Changed("endpoint")
	if err := overrideString(cmd, "endpoint", &cfg.Endpoint); err != nil {
		return nil, err
	}
	if err := overrideDuration(cmd, "timeout", &cfg.Timeout); err != nil {
		return nil, err
	}
	if err := overrideInt(cmd, "concurrency", &cfg.Concurrency); err != nil {
		return nil, err
	}
	if err := readReportFlags(cmd, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
