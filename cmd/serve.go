package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/signaura/signaura/internal/config"
	"github.com/signaura/signaura/internal/observability"
	"github.com/signaura/signaura/internal/server"
	"github.com/signaura/signaura/internal/sessionstore"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, cmd, os.Stderr)
	},
}

// runServe serves the API until ctx ends, logging to logOut.
func runServe(ctx context.Context, cmd *cobra.Command, logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	secure, _ := cmd.Flags().GetBool("secure-cookie")

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := observability.New(logOut, level, cfg.LogFormat)

	secret, generated, err := cfg.Secret()
	if err != nil {
		return err
	}
	if generated {
		logger.Warn("SIGNAURA_SESSION_SECRET not set, using a random secret; sessions end on restart")
	}

	activity, closeStore, err := openActivity(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	if activity == nil {
		logger.Info("activity log disabled")
	}

	pagesSvc := newPages(cfg, activity, logger)
	srv, err := server.New(server.Options{
		Pages:          pagesSvc,
		Sessions:       sessionstore.New(pagesSvc.Catalog(), cfg.SessionTTL),
		Secret:         secret,
		SessionTTL:     cfg.SessionTTL,
		MaxUploadBytes: cfg.MaxUploadBytes,
		SecureCookie:   secure,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	if err := srv.ListenAndServe(ctx, cfg.Addr); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides SIGNAURA_ADDR)")
	serveCmd.Flags().Bool("secure-cookie", false, "Mark the session cookie Secure (serve behind TLS)")
}
