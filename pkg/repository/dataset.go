package repository

import (
	"context"
	"slices"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/secmon-lab/caredash/pkg/domain/types"
)

// newDataset validates a freshly loaded frame, renames the mapped columns to their canonical
// names and stamps it with a new dataset ID.
func newDataset(ctx context.Context, frame dataframe.DataFrame, columns model.ColumnMapping, source string) (*model.Dataset, error) {
	if frame.Err != nil {
		return nil, goerr.Wrap(frame.Err, "failed to build data frame", goerr.V("source", source))
	}

	names := frame.Names()
	for _, pair := range columns.Pairs() {
		header, canonical := pair[0], pair[1]
		if !slices.Contains(names, header) {
			return nil, goerr.Wrap(model.ErrMissingColumn, "dataset is missing a required column",
				goerr.V("column", canonical),
				goerr.V("header", header),
				goerr.V("source", source),
			)
		}
		if header == canonical {
			continue
		}
		if slices.Contains(names, canonical) {
			return nil, goerr.New("mapped column collides with an existing column",
				goerr.V("column", canonical),
				goerr.V("header", header),
				goerr.V("source", source),
			)
		}
		frame = frame.Rename(canonical, header)
		if frame.Err != nil {
			return nil, goerr.Wrap(frame.Err, "failed to rename column",
				goerr.V("column", canonical),
				goerr.V("header", header),
			)
		}
	}

	if frame.Nrow() == 0 {
		return nil, goerr.Wrap(model.ErrEmptyDataset, "dataset has no records", goerr.V("source", source))
	}

	id, err := types.NewDatasetID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate dataset ID")
	}

	dataset := &model.Dataset{
		ID:       id,
		Source:   source,
		LoadedAt: time.Now(),
		Frame:    frame,
	}

	ctxlog.From(ctx).Info("Dataset loaded",
		"id", dataset.ID,
		"source", source,
		"rows", dataset.Rows(),
		"columns", dataset.Columns(),
	)

	return dataset, nil
}

// recordsToFrame builds a string-typed frame from records in canonical column order
func recordsToFrame(records []model.Record) dataframe.DataFrame {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, slices.Clone(model.RequiredColumns))
	for _, r := range records {
		rows = append(rows, r.Strings())
	}
	return dataframe.LoadRecords(rows, dataframe.DetectTypes(false), dataframe.NaNValues(nil))
}
