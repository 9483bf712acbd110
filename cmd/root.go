package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/riskready/internal/advisor"
	"github.com/abhisek/riskready/internal/config"
	"github.com/abhisek/riskready/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:          "riskready",
	Short:        "Risk & Audit Analyst readiness assessment",
	Long:         "RiskReady is a terminal questionnaire that scores your fit for risk management and internal audit roles.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default: ./riskready.yaml or the user config dir)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides log.level)")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config named by --config and applies --log-level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}

// newAdvisor builds the coaching service. It returns nil, nil when no
// provider is configured or discoverable.
func newAdvisor(ctx context.Context, cfg *config.Config, log *zap.Logger) (*advisor.Service, error) {
	llmCfg, ok := cfg.LLM.Resolve()
	if !ok {
		return nil, nil
	}
	provider, err := llm.NewProvider(ctx, llmCfg, log)
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}
	log.Info("coaching enabled", zap.String("provider", llmCfg.Provider), zap.String("model", provider.ModelID()))
	return advisor.NewService(provider, advisor.DefaultConfig(), log), nil
}
