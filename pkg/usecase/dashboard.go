package usecase

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/pkg/domain/interfaces"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/secmon-lab/caredash/pkg/domain/types"
)

// Dashboard implements the Dashboard interface over an immutable dataset
type Dashboard struct {
	dataset *model.Dataset
	config  *model.DashboardConfig
	options *model.Options
}

// NewDashboard creates a new Dashboard use case. A nil config means the defaults.
func NewDashboard(dataset *model.Dataset, config *model.DashboardConfig) interfaces.Dashboard {
	if config == nil {
		config = model.DefaultDashboardConfig()
	}

	df := dataset.Frame
	options := &model.Options{}
	for _, v := range unique(df, model.ColumnRegion) {
		options.Regions = append(options.Regions, types.Region(v))
	}
	for _, v := range unique(df, model.ColumnLocalAuthority) {
		options.LocalAuthorities = append(options.LocalAuthorities, types.LocalAuthority(v))
	}
	for _, v := range unique(df, model.ColumnMeasure) {
		options.Measures = append(options.Measures, types.Measure(v))
	}
	for _, v := range unique(df, model.ColumnFinancialYear) {
		options.FinancialYears = append(options.FinancialYears, types.FinancialYear(v))
	}

	return &Dashboard{
		dataset: dataset,
		config:  config,
		options: options,
	}
}

// Dataset returns the loaded dataset
func (u *Dashboard) Dataset() *model.Dataset {
	return u.dataset
}

// Options returns the dropdown options. The returned value must not be modified.
func (u *Dashboard) Options(ctx context.Context) *model.Options {
	return u.options
}

// RegionalTable returns every row of the region with all original columns, in dataset order
func (u *Dashboard) RegionalTable(ctx context.Context, region types.Region) (*model.TableView, error) {
	if region == "" {
		return nil, goerr.New("region is not selected", goerr.T(model.ErrTagNoSelection))
	}

	df, err := where(u.dataset.Frame, eq(model.ColumnRegion, region.String()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to filter by region", goerr.V("region", region))
	}

	view := &model.TableView{
		Columns: u.dataset.Columns(),
		Rows:    make([]map[string]string, 0, df.Nrow()),
	}
	if df.Nrow() > 0 {
		records := df.Records()
		header := records[0]
		for _, record := range records[1:] {
			row := make(map[string]string, len(header))
			for i, name := range header {
				row[name] = record[i]
			}
			view.Rows = append(view.Rows, row)
		}
	}

	ctxlog.From(ctx).Debug("Regional table computed",
		"region", region,
		"rows", view.Len(),
	)

	return view, nil
}

// Comparison returns a line figure of Value over Financial year for each selected local authority.
// Rows whose Value is not numeric or whose Financial year is empty are dropped.
func (u *Dashboard) Comparison(ctx context.Context, authorities []types.LocalAuthority, measure types.Measure) (*model.Figure, error) {
	if len(authorities) == 0 {
		return nil, goerr.New("local authority is not selected", goerr.T(model.ErrTagNoSelection))
	}
	if measure == "" {
		return nil, goerr.New("measure is not selected", goerr.T(model.ErrTagNoSelection))
	}

	// Series follow selection order; repeated selections collapse into one series
	var names []string
	for _, a := range authorities {
		if a != "" && !slices.Contains(names, a.String()) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return nil, goerr.New("local authority is not selected", goerr.T(model.ErrTagNoSelection))
	}

	df, err := where(u.dataset.Frame,
		in(model.ColumnLocalAuthority, names),
		eq(model.ColumnMeasure, measure.String()),
		numeric(model.ColumnValue),
		nonEmpty(model.ColumnFinancialYear),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to filter comparison rows",
			goerr.V("authorities", names),
			goerr.V("measure", measure))
	}

	fig := &model.Figure{
		Kind:  model.FigureLine,
		Title: fmt.Sprintf("Comparison of %s Over Time", measure),
		XAxis: model.Axis{Title: "Financial Year", Reversed: true},
		YAxis: model.Axis{Title: measure.String()},
	}

	points := make(map[string][]model.Point)
	var years []string
	if df.Nrow() > 0 {
		las := df.Col(model.ColumnLocalAuthority).Records()
		fys := df.Col(model.ColumnFinancialYear).Records()
		values := df.Col(model.ColumnValue).Records()
		for i := range las {
			points[las[i]] = append(points[las[i]], model.Point{X: fys[i], Y: parseValue(values[i])})
			if !slices.Contains(years, fys[i]) {
				years = append(years, fys[i])
			}
		}
	}

	sort.Strings(years)
	fig.XAxis.Categories = years

	for _, name := range names {
		series := points[name]
		if len(series) == 0 {
			continue
		}
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].X < series[j].X
		})
		fig.Series = append(fig.Series, model.Series{Name: name, Points: series})
	}

	ctxlog.From(ctx).Debug("Comparison computed",
		"authorities", names,
		"measure", measure,
		"points", fig.PointCount(),
	)

	return fig, nil
}

// RegionalAnalysis returns a bar figure with the mean Value per region for a year and measure.
// Non-numeric values are excluded from both the sum and the count.
func (u *Dashboard) RegionalAnalysis(ctx context.Context, year types.FinancialYear, measure types.Measure) (*model.Figure, error) {
	if year == "" {
		return nil, goerr.New("financial year is not selected", goerr.T(model.ErrTagNoSelection))
	}
	if measure == "" {
		return nil, goerr.New("measure is not selected", goerr.T(model.ErrTagNoSelection))
	}

	df, err := where(u.dataset.Frame,
		eq(model.ColumnFinancialYear, year.String()),
		eq(model.ColumnMeasure, measure.String()),
		numeric(model.ColumnValue),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to filter analysis rows",
			goerr.V("year", year),
			goerr.V("measure", measure))
	}

	fig := &model.Figure{
		Kind:  model.FigureBar,
		Title: fmt.Sprintf("Average %s in %s by Region", measure, year),
		XAxis: model.Axis{Title: "Region"},
		YAxis: model.Axis{Title: "Value"},
	}

	means, err := meanByRegion(df)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate by region",
			goerr.V("year", year),
			goerr.V("measure", measure))
	}

	series := model.Series{Name: "Value"}
	for _, m := range means {
		fig.XAxis.Categories = append(fig.XAxis.Categories, m.X)
		series.Points = append(series.Points, m)
	}
	fig.Series = []model.Series{series}

	ctxlog.From(ctx).Debug("Regional analysis computed",
		"year", year,
		"measure", measure,
		"regions", len(series.Points),
	)

	return fig, nil
}

// meanByRegion averages the values of each region, sorted by region name. Rows with an empty
// region are not grouped.
func meanByRegion(df dataframe.DataFrame) ([]model.Point, error) {
	if df.Nrow() == 0 {
		return nil, nil
	}

	df, err := coerceNumeric(df, model.ColumnValue)
	if err != nil {
		return nil, err
	}

	regions := unique(df, model.ColumnRegion)
	sort.Strings(regions)

	result := make([]model.Point, 0, len(regions))
	for _, region := range regions {
		group, err := where(df, eq(model.ColumnRegion, region))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to select region group", goerr.V("region", region))
		}
		if group.Nrow() == 0 {
			continue
		}
		result = append(result, model.Point{
			X: region,
			Y: group.Col(model.ColumnValue).Mean(),
		})
	}

	return result, nil
}
