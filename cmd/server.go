package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"starksnap/internal/app"
	"starksnap/internal/config"
	"starksnap/internal/http/server"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the wallet RPC over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			envFile, err := cmd.Flags().GetString("env-file")
			if err != nil {
				return err
			}

			v, err := config.SetupViper(envFile)
			if err != nil {
				return err
			}
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.NewApp(v)
			if err != nil {
				return fmt.Errorf("create config: %w", err)
			}

			return Start(cmd.Context(), cfg)
		},
	}

	serveCmd.Flags().String("port", "8080", "HTTP port")
	serveCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().String("wallet-id", "default", "Id of the persisted wallet state")
	return serveCmd
}

// Start builds the service and blocks until it is signalled to stop.
func Start(ctx context.Context, cfg config.App) error {
	// expect a signal to gracefully shutdown the server
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	application, cleanup, err := app.InitApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer cleanup()

	go application.Poller.Run(ctx)

	application.Logger.Infow("starting server", "port", cfg.Port, "walletId", cfg.WalletID)
	return run(ctx, application.Server)
}

func run(ctx context.Context, srv *server.HTTPServer) error {
	errChan := srv.Run()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errChan:
	}

	sdErr := srv.Shutdown()
	if errors.Is(err, http.ErrServerClosed) && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
