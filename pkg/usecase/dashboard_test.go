package usecase_test

import (
	"context"
	"math"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/caredash/pkg/domain/interfaces"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/secmon-lab/caredash/pkg/domain/types"
	"github.com/secmon-lab/caredash/pkg/repository"
	"github.com/secmon-lab/caredash/pkg/usecase"
)

func testRecords() []model.Record {
	return []model.Record{
		{Region: "North", LocalAuthority: "Leeds", Measure: "Spend", FinancialYear: "2019-20", Value: "100"},
		{Region: "North", LocalAuthority: "Leeds", Measure: "Spend", FinancialYear: "2019-20", Value: "bad"},
		{Region: "North", LocalAuthority: "Leeds", Measure: "Spend", FinancialYear: "2020-21", Value: "120"},
		{Region: "North", LocalAuthority: "York", Measure: "Spend", FinancialYear: "2019-20", Value: "50"},
		{Region: "North", LocalAuthority: "York", Measure: "Spend", FinancialYear: "", Value: "70"},
		{Region: "North", LocalAuthority: "York", Measure: "Clients", FinancialYear: "2019-20", Value: "9"},
		{Region: "South", LocalAuthority: "Brighton", Measure: "Spend", FinancialYear: "2019-20", Value: "80"},
		{Region: "South", LocalAuthority: "Brighton", Measure: "Spend", FinancialYear: "2018-19", Value: " 60 "},
		{Region: "South", LocalAuthority: "Kent", Measure: "Spend", FinancialYear: "2019-20", Value: "40"},
		{Region: "East", LocalAuthority: "Norfolk", Measure: "Spend", FinancialYear: "2019-20", Value: "n/a"},
		{Region: "West", LocalAuthority: "Bristol", Measure: "Clients", FinancialYear: "2020-21", Value: "12"},
	}
}

func newTestDashboard(t *testing.T, records []model.Record) interfaces.Dashboard {
	dataset, err := repository.NewMemory(records).Load(context.Background())
	gt.NoError(t, err).Required()
	return usecase.NewDashboard(dataset, nil)
}

func TestDashboard_Options(t *testing.T) {
	uc := newTestDashboard(t, testRecords())
	opts := uc.Options(context.Background())

	gt.Equal(t, opts.Regions, []types.Region{"North", "South", "East", "West"})
	gt.Equal(t, opts.LocalAuthorities, []types.LocalAuthority{"Leeds", "York", "Brighton", "Kent", "Norfolk", "Bristol"})
	gt.Equal(t, opts.Measures, []types.Measure{"Spend", "Clients"})
	gt.Equal(t, opts.FinancialYears, []types.FinancialYear{"2019-20", "2020-21", "2018-19"})
}

func TestDashboard_RegionalTable(t *testing.T) {
	ctx := context.Background()
	uc := newTestDashboard(t, testRecords())

	t.Run("rows belong to the selected region", func(t *testing.T) {
		view, err := uc.RegionalTable(ctx, "South")
		gt.NoError(t, err).Required()

		gt.Equal(t, view.Columns, model.RequiredColumns)
		gt.Equal(t, view.Len(), 3)
		for _, row := range view.Rows {
			gt.Equal(t, row[model.ColumnRegion], "South")
		}
		gt.Equal(t, view.Rows[0][model.ColumnLocalAuthority], "Brighton")
		gt.Equal(t, view.Rows[1][model.ColumnValue], " 60 ")
		gt.Equal(t, view.Rows[2][model.ColumnLocalAuthority], "Kent")
	})

	t.Run("union of regions is the whole dataset", func(t *testing.T) {
		total := 0
		for _, region := range uc.Options(ctx).Regions {
			view, err := uc.RegionalTable(ctx, region)
			gt.NoError(t, err).Required()
			for _, row := range view.Rows {
				gt.Equal(t, types.Region(row[model.ColumnRegion]), region)
			}
			total += view.Len()
		}
		gt.Equal(t, total, uc.Dataset().Rows())
	})

	t.Run("unknown region yields an empty table", func(t *testing.T) {
		view, err := uc.RegionalTable(ctx, "Nowhere")
		gt.NoError(t, err).Required()
		gt.Equal(t, view.Len(), 0)
		gt.Equal(t, view.Columns, model.RequiredColumns)
	})

	t.Run("cells are shown as loaded", func(t *testing.T) {
		uc := newTestDashboard(t, []model.Record{
			{Region: "North", LocalAuthority: "Leeds", Measure: "Spend", FinancialYear: "2019-20", Value: "NA"},
			{Region: "North", LocalAuthority: "York", Measure: "Spend", FinancialYear: "2019-20", Value: "<nil>"},
		})

		view, err := uc.RegionalTable(ctx, "North")
		gt.NoError(t, err).Required()
		gt.Equal(t, view.Rows[0][model.ColumnValue], "NA")
		gt.Equal(t, view.Rows[1][model.ColumnValue], "<nil>")
	})

	t.Run("no selection", func(t *testing.T) {
		view, err := uc.RegionalTable(ctx, "")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagNoSelection))
		gt.Nil(t, view)
	})
}

func TestDashboard_Comparison(t *testing.T) {
	ctx := context.Background()
	uc := newTestDashboard(t, testRecords())

	t.Run("malformed value is dropped", func(t *testing.T) {
		fig, err := uc.Comparison(ctx, []types.LocalAuthority{"Leeds"}, "Spend")
		gt.NoError(t, err).Required()

		gt.Equal(t, fig.Kind, model.FigureLine)
		gt.Equal(t, fig.Title, "Comparison of Spend Over Time")
		gt.Equal(t, fig.XAxis.Title, "Financial Year")
		gt.Equal(t, fig.YAxis.Title, "Spend")
		gt.True(t, fig.XAxis.Reversed)
		gt.Equal(t, fig.XAxis.Categories, []string{"2019-20", "2020-21"})

		gt.A(t, fig.Series).Length(1)
		gt.Equal(t, fig.Series[0].Name, "Leeds")
		gt.Equal(t, fig.Series[0].Points, []model.Point{
			{X: "2019-20", Y: 100},
			{X: "2020-21", Y: 120},
		})
	})

	t.Run("rows with empty financial year are dropped", func(t *testing.T) {
		fig, err := uc.Comparison(ctx, []types.LocalAuthority{"York"}, "Spend")
		gt.NoError(t, err).Required()

		gt.A(t, fig.Series).Length(1)
		gt.Equal(t, fig.Series[0].Points, []model.Point{{X: "2019-20", Y: 50}})
	})

	t.Run("one series per selected authority in selection order", func(t *testing.T) {
		fig, err := uc.Comparison(ctx, []types.LocalAuthority{"Brighton", "Leeds", "Brighton"}, "Spend")
		gt.NoError(t, err).Required()

		gt.A(t, fig.Series).Length(2)
		gt.Equal(t, fig.Series[0].Name, "Brighton")
		gt.Equal(t, fig.Series[1].Name, "Leeds")
		gt.Equal(t, fig.Series[0].Points, []model.Point{
			{X: "2018-19", Y: 60},
			{X: "2019-20", Y: 80},
		})
		gt.Equal(t, fig.XAxis.Categories, []string{"2018-19", "2019-20", "2020-21"})
	})

	t.Run("points satisfy membership and measure", func(t *testing.T) {
		selected := []types.LocalAuthority{"Leeds", "York", "Norfolk"}
		fig, err := uc.Comparison(ctx, selected, "Spend")
		gt.NoError(t, err).Required()

		for _, s := range fig.Series {
			gt.True(t, s.Name == "Leeds" || s.Name == "York")
			for _, p := range s.Points {
				gt.False(t, math.IsNaN(p.Y))
				gt.NotEqual(t, p.X, "")
			}
		}
		// Norfolk only has a non-numeric value
		gt.Nil(t, fig.FindSeries("Norfolk"))
	})

	t.Run("no matching rows", func(t *testing.T) {
		fig, err := uc.Comparison(ctx, []types.LocalAuthority{"Kent"}, "Clients")
		gt.NoError(t, err).Required()
		gt.True(t, fig.IsEmpty())
	})

	t.Run("no selection", func(t *testing.T) {
		_, err := uc.Comparison(ctx, nil, "Spend")
		gt.True(t, goerr.HasTag(err, model.ErrTagNoSelection))

		_, err = uc.Comparison(ctx, []types.LocalAuthority{""}, "Spend")
		gt.True(t, goerr.HasTag(err, model.ErrTagNoSelection))

		_, err = uc.Comparison(ctx, []types.LocalAuthority{"Leeds"}, "")
		gt.True(t, goerr.HasTag(err, model.ErrTagNoSelection))
	})
}

func TestDashboard_ComparisonScenario(t *testing.T) {
	uc := newTestDashboard(t, []model.Record{
		{Region: "North", LocalAuthority: "Leeds", Measure: "Spend", FinancialYear: "2019-20", Value: "100"},
		{Region: "North", LocalAuthority: "Leeds", Measure: "Spend", FinancialYear: "2019-20", Value: "bad"},
	})

	fig, err := uc.Comparison(context.Background(), []types.LocalAuthority{"Leeds"}, "Spend")
	gt.NoError(t, err).Required()

	gt.Equal(t, fig.PointCount(), 1)
	gt.Equal(t, fig.Series[0].Points[0], model.Point{X: "2019-20", Y: 100})
}

func TestDashboard_RegionalAnalysis(t *testing.T) {
	ctx := context.Background()
	uc := newTestDashboard(t, testRecords())

	t.Run("mean per region excludes non-numeric values", func(t *testing.T) {
		fig, err := uc.RegionalAnalysis(ctx, "2019-20", "Spend")
		gt.NoError(t, err).Required()

		gt.Equal(t, fig.Kind, model.FigureBar)
		gt.Equal(t, fig.Title, "Average Spend in 2019-20 by Region")
		gt.A(t, fig.Series).Length(1)

		// East has only a non-numeric value and gets no bar
		gt.Equal(t, fig.XAxis.Categories, []string{"North", "South"})
		gt.Equal(t, fig.Series[0].Points, []model.Point{
			{X: "North", Y: 75}, // (100 + 50) / 2; "bad" excluded
			{X: "South", Y: 60}, // (80 + 40) / 2
		})
	})

	t.Run("other year", func(t *testing.T) {
		fig, err := uc.RegionalAnalysis(ctx, "2020-21", "Clients")
		gt.NoError(t, err).Required()
		gt.Equal(t, fig.Series[0].Points, []model.Point{{X: "West", Y: 12}})
	})

	t.Run("no matching rows", func(t *testing.T) {
		fig, err := uc.RegionalAnalysis(ctx, "1999-00", "Spend")
		gt.NoError(t, err).Required()
		gt.True(t, fig.IsEmpty())
	})

	t.Run("no selection", func(t *testing.T) {
		_, err := uc.RegionalAnalysis(ctx, "", "Spend")
		gt.True(t, goerr.HasTag(err, model.ErrTagNoSelection))

		_, err = uc.RegionalAnalysis(ctx, "2019-20", "")
		gt.True(t, goerr.HasTag(err, model.ErrTagNoSelection))
	})
}

func TestDashboard_Idempotence(t *testing.T) {
	ctx := context.Background()
	uc := newTestDashboard(t, testRecords())

	t1, err := uc.RegionalTable(ctx, "North")
	gt.NoError(t, err).Required()
	t2, err := uc.RegionalTable(ctx, "North")
	gt.NoError(t, err).Required()
	gt.Equal(t, t1, t2)

	authorities := []types.LocalAuthority{"Leeds", "Brighton"}
	c1, err := uc.Comparison(ctx, authorities, "Spend")
	gt.NoError(t, err).Required()
	c2, err := uc.Comparison(ctx, authorities, "Spend")
	gt.NoError(t, err).Required()
	gt.Equal(t, c1, c2)

	a1, err := uc.RegionalAnalysis(ctx, "2019-20", "Spend")
	gt.NoError(t, err).Required()
	a2, err := uc.RegionalAnalysis(ctx, "2019-20", "Spend")
	gt.NoError(t, err).Required()
	gt.Equal(t, a1, a2)

	// The dataset itself is untouched by the views
	gt.Equal(t, uc.Dataset().Rows(), len(testRecords()))
	gt.Equal(t, uc.Dataset().Frame.Col(model.ColumnValue).Records()[1], "bad")
}

func TestDashboard_Layout(t *testing.T) {
	ctx := context.Background()
	uc := newTestDashboard(t, testRecords())

	t.Run("regional table", func(t *testing.T) {
		layout := uc.Layout(ctx, types.PageRegionalTable)
		gt.Equal(t, layout.Page, types.PageRegionalTable)
		gt.Equal(t, layout.Path, "/")
		gt.Equal(t, layout.Title, model.DefaultTitle)
		gt.Equal(t, layout.Output, model.OutputTable)
		gt.Equal(t, layout.Endpoint, model.EndpointRegionalTable)
		gt.A(t, layout.Controls).Length(1)
		gt.Equal(t, layout.Controls[0].Param, model.ParamRegion)
		gt.Equal(t, layout.Controls[0].Defaults, []string{"North"})
	})

	t.Run("local authority comparison", func(t *testing.T) {
		layout := uc.Layout(ctx, types.PageLocalAuthority)
		gt.Equal(t, layout.Heading, "Local Authority Comparison")
		gt.Equal(t, layout.Output, model.OutputLineChart)
		gt.Equal(t, layout.ChartURL, model.EndpointComparisonChart)
		gt.A(t, layout.Controls).Length(2)
		gt.True(t, layout.Controls[0].Multi)
		gt.Equal(t, layout.Controls[0].Defaults, []string{"Leeds"})
		gt.Equal(t, layout.Controls[1].Defaults, []string{"Spend"})
	})

	t.Run("regional analysis", func(t *testing.T) {
		layout := uc.Layout(ctx, types.PageRegionalAnalysis)
		gt.Equal(t, layout.Heading, "Regional Analysis")
		gt.Equal(t, layout.Output, model.OutputBarChart)
		gt.Equal(t, layout.Controls[0].Param, model.ParamYear)
		gt.Equal(t, layout.Controls[0].Defaults, []string{"2019-20"})
		gt.Equal(t, layout.Controls[1].Param, model.ParamMeasure)
	})

	t.Run("unknown page falls back to the regional table", func(t *testing.T) {
		layout := uc.Layout(ctx, types.PageID("unknown"))
		gt.Equal(t, layout.Page, types.PageRegionalTable)
	})

	t.Run("configured title", func(t *testing.T) {
		dataset := uc.Dataset()
		custom := usecase.NewDashboard(dataset, &model.DashboardConfig{Title: "Care Stats"})
		gt.Equal(t, custom.Layout(ctx, types.PageRegionalTable).Title, "Care Stats")
	})
}
