package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "careercraft",
	Short: "Skill assessment and career matching engine",
	Long:  "Captures self-reported skill proficiency, ranks matching target roles with quantified gaps and a readiness band, synthesizes a short-horizon plan, and answers free-text questions through a resilient multi-provider coach.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
