package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/caredash/pkg/domain/interfaces"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/secmon-lab/caredash/pkg/repository"
	"github.com/urfave/cli/v3"
)

// DefaultDataFile is the CSV file read when --data is not given
const DefaultDataFile = "adult_social_care.csv"

// Dataset holds the dataset source configuration
type Dataset struct {
	Path string
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data",
			Aliases:     []string{"d"},
			Usage:       "Path to the dataset CSV file",
			Category:    "Dataset",
			Value:       DefaultDataFile,
			Sources:     cli.EnvVars("CAREDASH_DATA"),
			Destination: &d.Path,
		},
	}
}

// Configure picks the dataset source: Firestore when configured, the CSV file otherwise
func (d *Dataset) Configure(ctx context.Context, fs *Firestore, columns model.ColumnMapping) (interfaces.DatasetSource, error) {
	if fs != nil && fs.IsConfigured() {
		source, err := fs.Configure(ctx)
		if err != nil {
			return nil, err
		}
		return source, nil
	}

	ctxlog.From(ctx).Info("Using CSV dataset source", "path", d.Path)
	return repository.NewCSV(d.Path, columns), nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
	)
}
