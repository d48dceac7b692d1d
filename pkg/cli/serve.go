package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/pkg/cli/config"
	controller "github.com/secmon-lab/caredash/pkg/controller/http"
	"github.com/secmon-lab/caredash/pkg/service/chart"
	"github.com/secmon-lab/caredash/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		datasetCfg   config.Dataset
		dashboardCfg config.Dashboard
		firestoreCfg config.Firestore
	)

	flags := joinFlags(
		serverCfg.Flags(),
		datasetCfg.Flags(),
		dashboardCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Load the dataset and start the dashboard HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting caredash server",
				slog.Any("server", serverCfg),
				slog.Any("dataset", datasetCfg),
				slog.Any("dashboard", dashboardCfg),
				slog.Any("firestore", firestoreCfg),
			)

			dashboardConfig, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			source, err := datasetCfg.Configure(ctx, &firestoreCfg, dashboardConfig.Columns)
			if err != nil {
				return err
			}
			defer source.Close()

			// The dataset is read once; a failure here stops the process before serving anything
			dataset, err := source.Load(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset")
			}

			dashboardUC := usecase.NewDashboard(dataset, dashboardConfig)

			server, err := controller.NewServer(
				ctx,
				controller.NewConfig(serverCfg.Addr, nil),
				dashboardUC,
				chart.New(),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting",
					slog.String("addr", serverCfg.Addr),
					slog.String("dataset", dataset.ID.String()),
					slog.Int("rows", dataset.Rows()),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serverErr:
				return goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
