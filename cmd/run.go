package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/signaura/signaura/internal/app"
	"github.com/signaura/signaura/internal/config"
	"github.com/signaura/signaura/internal/observability"
	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/store"
	"github.com/signaura/signaura/internal/translate"
	"github.com/spf13/cobra"
)

// openActivity opens the activity log unless recording is switched off by
// --no-record or SIGNAURA_RECORD. The returned close func is never nil.
func openActivity(cmd *cobra.Command, cfg config.Config) (store.ActivityRepo, func(), error) {
	noRecord, _ := cmd.Flags().GetBool("no-record")
	if noRecord || !cfg.Record {
		return nil, func() {}, nil
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st.ActivityRepo(), func() { st.Close() }, nil
}

// newPages builds the page service shared by both front-ends.
func newPages(cfg config.Config, activity store.ActivityRepo, logger *slog.Logger) *pages.Service {
	return pages.NewService(pages.Options{
		Analyzer: translate.NewAnalyzer(cfg.AnalysisDelay),
		Activity: activity,
		Logger:   logger,
	})
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to --log-file or nowhere.
	logger := observability.Discard()
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		level, _ := config.ParseLevel(cfg.LogLevel)
		logger = observability.New(f, level, cfg.LogFormat)
	}

	activity, closeStore, err := openActivity(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	env := screen.NewEnv(ctx, newPages(cfg, activity, logger))
	return app.Run(ctx, env)
}
