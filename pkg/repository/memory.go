package repository

import (
	"context"
	"slices"

	"github.com/secmon-lab/caredash/pkg/domain/interfaces"
	"github.com/secmon-lab/caredash/pkg/domain/model"
)

// Memory serves a fixed set of records
type Memory struct {
	records []model.Record
}

// NewMemory creates a memory dataset source. The records are copied.
func NewMemory(records []model.Record) interfaces.DatasetSource {
	return &Memory{
		records: slices.Clone(records),
	}
}

// Load builds the dataset from the records
func (m *Memory) Load(ctx context.Context) (*model.Dataset, error) {
	return newDataset(ctx, recordsToFrame(m.records), model.DefaultColumnMapping(), "memory")
}

// Close does nothing for memory sources
func (m *Memory) Close() error {
	return nil
}
