package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"static-server/core/config"
	"static-server/core/logger"
	"static-server/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the static file server",
	Long:  `Binds PORT (default 3000) and serves the static root until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		logg = logger.WithInstance(logg)

		// 3. Serve until SIGINT/SIGTERM
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg, logg)
	},
}

// runServer resolves the port and root, binds the listener and serves until
// ctx is done. Invalid settings and bind failures return before serving.
func runServer(ctx context.Context, cfg *config.Config, logg *zap.Logger) error {
	port, err := cfg.Server.ListenPort()
	if err != nil {
		return err
	}

	root, err := cfg.Server.StaticRoot()
	if err != nil {
		return err
	}
	cfg.Server.Root = root

	app, err := NewApp(cfg, logg)
	if err != nil {
		return err
	}

	ln, err := server.Listen(port)
	if err != nil {
		return err
	}

	return serve(ctx, app, ln, root, logg)
}

// serve runs app on ln and shuts it down once ctx is done.
func serve(ctx context.Context, app *fiber.App, ln net.Listener, root string, logg *zap.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listener(ln)
	}()

	logg.Info("Server listening", zap.Int("port", server.BoundPort(ln)), zap.String("root", root))

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return fmt.Errorf("server stopped: %w", err)
	}

	logg.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		return err
	}
	return <-serveErr
}

func init() {
	// Running the binary without a subcommand serves, like "start".
	RootCmd.RunE = startCmd.RunE
	RootCmd.AddCommand(startCmd)
}
