package interfaces

import (
	"context"

	"github.com/secmon-lab/caredash/pkg/domain/model"
)

// DatasetSource loads the dashboard dataset. It is called once at startup.
type DatasetSource interface {
	Load(ctx context.Context) (*model.Dataset, error)

	// Close releases any connection held by the source
	Close() error
}
