package chart_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/secmon-lab/caredash/pkg/service/chart"
)

func TestRenderSVG(t *testing.T) {
	ctx := context.Background()
	renderer := chart.New(chart.WithSize(800, 400))

	t.Run("line figure", func(t *testing.T) {
		fig := &model.Figure{
			Kind:  model.FigureLine,
			Title: "Comparison of Spend Over Time",
			XAxis: model.Axis{
				Title:      "Financial Year",
				Categories: []string{"2018-19", "2019-20", "2020-21"},
				Reversed:   true,
			},
			YAxis: model.Axis{Title: "Spend"},
			Series: []model.Series{
				{Name: "Leeds", Points: []model.Point{{X: "2018-19", Y: 90}, {X: "2019-20", Y: 100}}},
				{Name: "York", Points: []model.Point{{X: "2020-21", Y: 50}}},
			},
		}

		var buf bytes.Buffer
		gt.NoError(t, renderer.RenderSVG(ctx, fig, &buf))
		gt.S(t, buf.String()).Contains("<svg")
		gt.S(t, buf.String()).Contains("Leeds")
		gt.S(t, buf.String()).Contains("2019-20")
	})

	t.Run("single point line figure", func(t *testing.T) {
		fig := &model.Figure{
			Kind:   model.FigureLine,
			Title:  "Comparison of Spend Over Time",
			XAxis:  model.Axis{Categories: []string{"2019-20"}, Reversed: true},
			Series: []model.Series{{Name: "Leeds", Points: []model.Point{{X: "2019-20", Y: 100}}}},
		}

		var buf bytes.Buffer
		gt.NoError(t, renderer.RenderSVG(ctx, fig, &buf)).Required()
		gt.S(t, buf.String()).Contains("<svg")
		gt.S(t, buf.String()).Contains("2019-20")
		gt.S(t, buf.String()).NotContains("No data")
	})

	t.Run("single year with several authorities", func(t *testing.T) {
		fig := &model.Figure{
			Kind:  model.FigureLine,
			Title: "Comparison of Spend Over Time",
			XAxis: model.Axis{Title: "Financial Year", Categories: []string{"2019-20"}, Reversed: true},
			YAxis: model.Axis{Title: "Spend"},
			Series: []model.Series{
				{Name: "Leeds", Points: []model.Point{{X: "2019-20", Y: 100}}},
				{Name: "York", Points: []model.Point{{X: "2019-20", Y: 50}}},
			},
		}

		var buf bytes.Buffer
		gt.NoError(t, renderer.RenderSVG(ctx, fig, &buf)).Required()
		gt.S(t, buf.String()).Contains("York")
	})

	t.Run("bar figure", func(t *testing.T) {
		fig := &model.Figure{
			Kind:  model.FigureBar,
			Title: "Average Spend in 2019-20 by Region",
			XAxis: model.Axis{Title: "Region", Categories: []string{"North", "South"}},
			YAxis: model.Axis{Title: "Value"},
			Series: []model.Series{
				{Name: "Value", Points: []model.Point{{X: "North", Y: 75}, {X: "South", Y: 60}}},
			},
		}

		var buf bytes.Buffer
		gt.NoError(t, renderer.RenderSVG(ctx, fig, &buf))
		gt.S(t, buf.String()).Contains("<svg")
		gt.S(t, buf.String()).Contains("North")
	})

	t.Run("single bar with equal values", func(t *testing.T) {
		fig := &model.Figure{
			Kind:   model.FigureBar,
			Title:  "Average Spend in 2019-20 by Region",
			Series: []model.Series{{Name: "Value", Points: []model.Point{{X: "North", Y: 0}}}},
		}

		var buf bytes.Buffer
		gt.NoError(t, renderer.RenderSVG(ctx, fig, &buf))
	})

	t.Run("empty figure renders placeholder", func(t *testing.T) {
		fig := &model.Figure{
			Kind:   model.FigureBar,
			Title:  "Average <Spend> in 2019-20 by Region",
			Series: []model.Series{{Name: "Value"}},
		}

		var buf bytes.Buffer
		gt.NoError(t, renderer.RenderSVG(ctx, fig, &buf))
		gt.S(t, buf.String()).Contains("No data")
		gt.S(t, buf.String()).Contains("Average &lt;Spend&gt; in 2019-20 by Region")
	})

	t.Run("nil figure", func(t *testing.T) {
		var buf bytes.Buffer
		gt.Error(t, renderer.RenderSVG(ctx, nil, &buf))
	})

	t.Run("unknown kind", func(t *testing.T) {
		fig := &model.Figure{
			Kind:   model.FigureKind("pie"),
			Series: []model.Series{{Name: "Value", Points: []model.Point{{X: "North", Y: 1}}}},
		}

		var buf bytes.Buffer
		gt.Error(t, renderer.RenderSVG(ctx, fig, &buf))
	})
}
