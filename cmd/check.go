package cmd

import (
	"fmt"

	"static-server/core/logger"
	"static-server/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Inspect the static root",
	Long:  `Verifies the static root is a directory and reports whether it has an index.html.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		root, err := cfg.Server.StaticRoot()
		if err != nil {
			return err
		}

		report, err := static.CheckRoot(root)
		if err != nil {
			return err
		}

		if report.IndexPresent {
			logg.Info("Static root is ready.", zap.String("root", report.Root), zap.Int("files", report.Files))
		} else {
			logg.Warn("Static root has no index file", zap.String("root", report.Root), zap.Int("files", report.Files))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
