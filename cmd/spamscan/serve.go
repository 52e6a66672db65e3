package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/net/netutil"

	"github.com/nao1215/spamscan/internal/config"
	"github.com/nao1215/spamscan/internal/filter"
	"github.com/nao1215/spamscan/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the rule-based classification service",
		Long: `Serve runs an HTTP classification service backed by the rule-based spam filter.

Endpoints:
  POST /analyze   {"content": "..."} -> {"is_spam": true|false, "reason": "..."}
  GET  /healthz   {"status": "ok"}

Cross-origin requests are allowed so browser extensions can call the service.
The service stops gracefully on SIGINT or SIGTERM.

Examples:
  # Listen on the default address (127.0.0.1:8000)
  spamscan serve

  # Listen on all interfaces with at most 32 connections
  spamscan serve -a 0.0.0.0:8000 -n 32`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultServerAddr,
		"Listen address")
	cmd.Flags().IntP("max-conns", "n", config.DefaultMaxConns,
		"Maximum simultaneous connections (0 for no limit)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .spamscan, XDG config dir or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := overrideString(cmd, "addr", &cfg.ServerAddr); err != nil {
		return err
	}
	if err := overrideInt(cmd, "max-conns", &cfg.MaxConns); err != nil {
		return err
	}
	cfg.Local = true

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	ln, err := net.Listen("tcp", cfg.ServerAddr) //nolint:noctx // listener lifetime is bound to ctx by Serve
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ServerAddr, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runServe(ctx, cmd.OutOrStdout(), cfg, ln, logger)
}

// runServe serves classification requests on ln until ctx is cancelled.
func runServe(ctx context.Context, out io.Writer, cfg *config.Config, ln net.Listener, logger *slog.Logger) error {
	f, err := filter.New(cfg.Rules)
	if err != nil {
		_ = ln.Close() //nolint:errcheck // Best effort cleanup
		return fmt.Errorf("invalid filter rules: %w", err)
	}

	if cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConns)
	}

	srv := server.New(f,
		server.WithLogger(logger),
		server.WithAllowedOrigins(cfg.AllowedOrigins),
		server.WithMaxBodySize(cfg.MaxBodySize),
	)

	fmt.Fprintf(out, "Listening on http://%s/analyze\n", ln.Addr())
	if err := srv.Serve(ctx, ln); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	fmt.Fprintln(out, "Server stopped")
	return nil
}
