package cmd

import (
	"fmt"
	"os"

	"static-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "static-server",
	Short: "Static file web server",
	Long: `static-server serves the files of a local directory over HTTP.
It listens on PORT (default 3000) and can mirror its content from S3/MinIO.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// rootFlag is shared by every command that works on the static root.
var rootFlag string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives readable timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Static root directory (default \"public\")")
}
