package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Dashboard ChartRenderer

import (
	"context"
	"io"

	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/secmon-lab/caredash/pkg/domain/types"
)

// Dashboard computes the read-only projections shown by the dashboard views
type Dashboard interface {
	// Dataset returns the loaded dataset
	Dataset() *model.Dataset

	// Options returns the dropdown options
	Options(ctx context.Context) *model.Options

	// Layout returns the page descriptor for a routed page
	Layout(ctx context.Context, page types.PageID) *model.Layout

	// RegionalTable returns the rows of a region
	RegionalTable(ctx context.Context, region types.Region) (*model.TableView, error)

	// Comparison returns the line figure comparing local authorities on a measure
	Comparison(ctx context.Context, authorities []types.LocalAuthority, measure types.Measure) (*model.Figure, error)

	// RegionalAnalysis returns the bar figure of the per-region mean for a year and measure
	RegionalAnalysis(ctx context.Context, year types.FinancialYear, measure types.Measure) (*model.Figure, error)
}

// ChartRenderer draws a figure
type ChartRenderer interface {
	RenderSVG(ctx context.Context, fig *model.Figure, w io.Writer) error
}
