package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for spamscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spamscan",
		Short: "Classify email text as spam or legitimate",
		Long: `spamscan classifies email text as spam or legitimate.

The analyze command submits text to a classification service over HTTP
(http://127.0.0.1:8000/analyze by default) and prints the verdict.
The serve command runs a rule-based classification service locally, and
the evaluate command measures a classifier against a labelled dataset.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewEvaluateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
