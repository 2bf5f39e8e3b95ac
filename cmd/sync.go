package cmd

import (
	"context"
	"fmt"
	"time"

	"static-server/core/logger"
	"static-server/core/storage"
	"static-server/feature/mirror"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncTimeout time.Duration

// syncCmd mirrors the storage bucket into the static root.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror site content from S3/MinIO into the static root",
	Long: `Downloads every object under STORAGE_PREFIX in STORAGE_BUCKET into the
static root, keeping the key layout. Existing files are overwritten; files
that no longer exist in the bucket are left alone.

Examples:
  # Pull the whole bucket into ./public
  STORAGE_BUCKET=site sync

  # Pull a prefix into another root
  STORAGE_PREFIX=build/ sync --root /srv/www`,
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

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithTimeout(ctx, syncTimeout)
		defer cancel()

		startTime := time.Now()
		logg.Info("Mirroring bucket", zap.String("bucket", cfg.Storage.Bucket), zap.String("prefix", cfg.Storage.Prefix), zap.String("root", root))

		svc := mirror.NewService(client, cfg.Storage.Bucket, cfg.Storage.Prefix, root, logg)
		report, err := svc.Pull(ctx)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		if len(report.Skipped) > 0 {
			logg.Warn("Objects skipped", zap.Strings("keys", report.Skipped))
		}
		logg.Info("Sync completed",
			zap.Int("files", len(report.Downloaded)),
			zap.Int64("bytes", report.Bytes),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	syncCmd.Flags().DurationVar(&syncTimeout, "timeout", 10*time.Minute, "Abort the sync after this long")
	RootCmd.AddCommand(syncCmd)
}
