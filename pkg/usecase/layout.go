package usecase

import (
	"context"

	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/secmon-lab/caredash/pkg/domain/types"
)

// Layout returns the page descriptor for a routed page. Unknown pages get the regional table.
func (u *Dashboard) Layout(ctx context.Context, page types.PageID) *model.Layout {
	opts := u.options

	switch page {
	case types.PageLocalAuthority:
		return &model.Layout{
			Page:    page,
			Path:    page.Path(),
			Title:   u.config.Title,
			Heading: "Local Authority Comparison",
			Controls: []model.Control{
				{
					ID:       "local-authority-dropdown",
					Label:    "Local authority",
					Param:    model.ParamLocalAuthority,
					Multi:    true,
					Options:  toStrings(opts.LocalAuthorities),
					Defaults: toStrings(opts.DefaultLocalAuthorities()),
				},
				{
					ID:       "measure-dropdown",
					Label:    "Measure",
					Param:    model.ParamMeasure,
					Options:  toStrings(opts.Measures),
					Defaults: single(opts.DefaultMeasure().String()),
				},
			},
			Output:   model.OutputLineChart,
			Endpoint: model.EndpointComparison,
			ChartURL: model.EndpointComparisonChart,
		}

	case types.PageRegionalAnalysis:
		return &model.Layout{
			Page:    page,
			Path:    page.Path(),
			Title:   u.config.Title,
			Heading: "Regional Analysis",
			Controls: []model.Control{
				{
					ID:       "year-dropdown",
					Label:    "Financial year",
					Param:    model.ParamYear,
					Options:  toStrings(opts.FinancialYears),
					Defaults: single(opts.DefaultFinancialYear().String()),
				},
				{
					ID:       "metric-dropdown",
					Label:    "Measure",
					Param:    model.ParamMeasure,
					Options:  toStrings(opts.Measures),
					Defaults: single(opts.DefaultMeasure().String()),
				},
			},
			Output:   model.OutputBarChart,
			Endpoint: model.EndpointRegionalAnalysis,
			ChartURL: model.EndpointRegionalAnalysisChart,
		}

	default:
		return &model.Layout{
			Page:  types.PageRegionalTable,
			Path:  types.PageRegionalTable.Path(),
			Title: u.config.Title,
			Controls: []model.Control{
				{
					ID:       "region-dropdown",
					Label:    "Region",
					Param:    model.ParamRegion,
					Options:  toStrings(opts.Regions),
					Defaults: single(opts.DefaultRegion().String()),
				},
			},
			Output:   model.OutputTable,
			Endpoint: model.EndpointRegionalTable,
		}
	}
}

func toStrings[T ~string](values []T) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = string(v)
	}
	return result
}

func single(v string) []string {
	if v == "" {
		return []string{}
	}
	return []string{v}
}
