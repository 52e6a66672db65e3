package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/spamscan/internal/classifier"
	"github.com/nao1215/spamscan/internal/config"
	"github.com/nao1215/spamscan/internal/controller"
	"github.com/nao1215/spamscan/internal/filter"
	securelog "github.com/nao1215/spamscan/internal/log"
	"github.com/nao1215/spamscan/internal/report"
)

// localClassifierName names the in-process filter in reports.
const localClassifierName = "local"

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the logger for a command run.
// Logs go to stderr so they never mix with reports on stdout.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	return securelog.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}

// loadConfig builds the configuration from defaults, the config file and
// the environment. Command flags are applied by the caller.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configPath

	if found := config.FindConfigFile(configPath); found != "" {
		file, err := config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration file: %w", err)
		}
		cfg.ApplyFile(file)
	} else if configPath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// overrideString sets dst from the named flag when the user set it.
func overrideString(cmd *cobra.Command, name string, dst *string) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// overrideDuration sets dst from the named flag when the user set it.
func overrideDuration(cmd *cobra.Command, name string, dst *time.Duration) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetDuration(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// overrideInt sets dst from the named flag when the user set it.
func overrideInt(cmd *cobra.Command, name string, dst *int) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// readReportFlags reads the --json, --markdown and --output flags.
func readReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	return nil
}

// newClassifier returns the classifier selected by cfg and its name for reports.
func newClassifier(cfg *config.Config) (controller.Classifier, string, error) {
	if cfg.Local {
		f, err := filter.New(cfg.Rules)
		if err != nil {
			return nil, "", fmt.Errorf("invalid filter rules: %w", err)
		}
		return filter.NewClassifier(f), localClassifierName, nil
	}

	opts := []classifier.Option{
		classifier.WithTimeout(cfg.Timeout),
		classifier.WithProxy(cfg.ProxyAddress),
		classifier.WithMaxBodySize(cfg.MaxBodySize),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, classifier.WithUserAgent(cfg.UserAgent))
	}

	client, err := classifier.NewClient(cfg.Endpoint, opts...)
	if err != nil {
		return nil, "", err
	}
	return client, client.Endpoint(), nil
}

// openOutput returns the report destination: the report file when set,
// otherwise stdout. The returned function closes the file.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports may quote email text, so only the owner can read them.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// newReportWriter returns the writer for the configured report format.
func newReportWriter(cfg *config.Config, w io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(w, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewSimpleWriter(w, report.WithVerbose(cfg.Verbose))
	}
}
