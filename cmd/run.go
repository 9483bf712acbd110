package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/riskready/internal/app"
	"github.com/abhisek/riskready/internal/logger"
)

// runApp loads configuration, builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file.
	log := logger.NewNop()
	if cfg.Log.File != "" {
		log, err = logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	opts := app.Options{Logger: log}
	adv, err := newAdvisor(cmd.Context(), cfg, log)
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Coaching will be unavailable.")
	case adv == nil:
		log.Info("no llm provider found, coaching disabled")
	default:
		opts.Advisor = adv
	}

	log.Info("starting tui", zap.Bool("coaching", opts.Advisor != nil))
	return app.Run(opts)
}
