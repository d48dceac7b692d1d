package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/pkg/cli/config"
	"github.com/secmon-lab/caredash/pkg/repository"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var (
		datasetCfg   config.Dataset
		dashboardCfg config.Dashboard
		firestoreCfg config.Firestore
	)

	return &cli.Command{
		Name:  "import",
		Usage: "Copy the dataset CSV file into a Firestore collection",
		Flags: joinFlags(
			datasetCfg.Flags(),
			dashboardCfg.Flags(),
			firestoreCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if !firestoreCfg.IsConfigured() {
				return goerr.New("--firestore-project is required for import")
			}

			dashboardConfig, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			dataset, err := repository.NewCSV(datasetCfg.Path, dashboardConfig.Columns).Load(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset")
			}

			dst, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer dst.Close()

			logger.Info("Importing dataset",
				slog.Any("dataset", datasetCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Int("rows", dataset.Rows()),
			)

			if err := dst.PutRecords(ctx, dataset.Records()); err != nil {
				return goerr.Wrap(err, "failed to import dataset")
			}

			logger.Info("Import complete", slog.Int("rows", dataset.Rows()))
			return nil
		},
	}
}
