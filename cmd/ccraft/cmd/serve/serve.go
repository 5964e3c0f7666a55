package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zpeteman/content-repurposer/internal/api/server"
	"github.com/zpeteman/content-repurposer/internal/app"
	"github.com/zpeteman/content-repurposer/internal/config"
)

var addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the pipeline as an HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Server.Addr = addr
		}

		logger, err := app.NewLogger(cfg.Server.Environment)
		if err != nil {
			return err
		}
		defer logger.Sync()

		application, cleanup, err := app.InitializeApp(cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		srv := server.NewServer(server.Config{
			Addr:        cfg.Server.Addr,
			ReadTimeout: 30 * time.Second,
			// Runs download, transcribe and call out per post; give them room.
			WriteTimeout: 15 * time.Minute,
			IdleTimeout:  60 * time.Second,
			Environment:  cfg.Server.Environment,
		}, application.Pipeline, application.Runs, logger)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
}
