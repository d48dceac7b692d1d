package chart

import (
	"context"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/pkg/domain/interfaces"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 960
	defaultHeight = 480

	// minBarSlot is the horizontal space reserved per bar before the chart is widened
	minBarSlot = 72
)

// palette follows the default qualitative colors used by common plotting libraries
var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
	drawing.ColorFromHex("bcbd22"),
	drawing.ColorFromHex("17becf"),
}

// Option configures the Renderer
type Option func(*Renderer)

// WithSize sets the chart size in pixels
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// Renderer draws figures as SVG
type Renderer struct {
	width  int
	height int
}

// New creates a new Renderer
func New(opts ...Option) interfaces.ChartRenderer {
	r := &Renderer{
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderSVG writes the figure to w. Figures without points are drawn as a "No data" placeholder.
func (r *Renderer) RenderSVG(ctx context.Context, fig *model.Figure, w io.Writer) error {
	if fig == nil {
		return goerr.New("figure is nil")
	}

	if fig.IsEmpty() {
		return r.renderPlaceholder(fig, w)
	}

	var err error
	switch fig.Kind {
	case model.FigureLine:
		err = r.renderLine(fig, w)
	case model.FigureBar:
		err = r.renderBar(fig, w)
	default:
		return goerr.New("unsupported figure kind", goerr.V("kind", fig.Kind))
	}
	if err != nil {
		return goerr.Wrap(err, "failed to render chart",
			goerr.V("kind", fig.Kind),
			goerr.V("title", fig.Title))
	}

	ctxlog.From(ctx).Debug("Chart rendered",
		"kind", fig.Kind,
		"series", len(fig.Series),
		"points", fig.PointCount(),
	)
	return nil
}

// renderLine draws categorical x values at integer positions. A reversed axis puts the last
// category at position 0.
func (r *Renderer) renderLine(fig *model.Figure, w io.Writer) error {
	categories := fig.XAxis.Categories
	n := len(categories)

	position := make(map[string]float64, n)
	for i, c := range categories {
		if fig.XAxis.Reversed {
			position[c] = float64(n - 1 - i)
		} else {
			position[c] = float64(i)
		}
	}

	// go-chart takes the x range from the tick extent, so blank edge ticks keep a single
	// category from collapsing the range to zero width
	ticks := make([]gochart.Tick, n+2)
	ticks[0] = gochart.Tick{Value: -0.5}
	ticks[n+1] = gochart.Tick{Value: float64(n) - 0.5}
	for _, c := range categories {
		ticks[int(position[c])+1] = gochart.Tick{Value: position[c], Label: c}
	}

	var series []gochart.Series
	var ys []float64
	for i, s := range fig.Series {
		if len(s.Points) == 0 {
			continue
		}
		color := palette[i%len(palette)]
		cs := gochart.ContinuousSeries{
			Name: s.Name,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    4,
			},
		}
		for _, p := range s.Points {
			x, ok := position[p.X]
			if !ok {
				continue
			}
			cs.XValues = append(cs.XValues, x)
			cs.YValues = append(cs.YValues, p.Y)
			ys = append(ys, p.Y)
		}
		if len(cs.XValues) == 0 {
			continue
		}
		series = append(series, cs)
	}
	if len(series) == 0 {
		return r.renderPlaceholder(fig, w)
	}

	lo, hi := valueRange(ys, false)
	ch := gochart.Chart{
		Title:  fig.Title,
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24},
		},
		XAxis: gochart.XAxis{
			Name:  fig.XAxis.Title,
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Name:  fig.YAxis.Title,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	return ch.Render(gochart.SVG, w)
}

func (r *Renderer) renderBar(fig *model.Figure, w io.Writer) error {
	var bars []gochart.Value
	var ys []float64
	for _, s := range fig.Series {
		for _, p := range s.Points {
			bars = append(bars, gochart.Value{
				Label: p.X,
				Value: p.Y,
				Style: gochart.Style{
					FillColor:   palette[0],
					StrokeColor: palette[0],
				},
			})
			ys = append(ys, p.Y)
		}
	}

	width := r.width
	if need := len(bars) * minBarSlot; need > width {
		width = need
	}

	lo, hi := valueRange(ys, true)
	bc := gochart.BarChart{
		Title:  fig.Title,
		Width:  width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24},
		},
		BarWidth: minBarSlot / 2,
		YAxis: gochart.YAxis{
			Name:  fig.YAxis.Title,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}

	return bc.Render(gochart.SVG, w)
}

func (r *Renderer) renderPlaceholder(fig *model.Figure, w io.Writer) error {
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<text x="%d" y="32" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>`+
		`<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#7f7f7f">No data</text>`+
		`</svg>`,
		r.width, r.height, r.width, r.height,
		r.width/2, html.EscapeString(fig.Title),
		r.width/2, r.height/2,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to write placeholder chart")
	}
	return nil
}

// valueRange returns an axis range covering every value with a small margin. Bar ranges always
// include zero so bars grow from the baseline.
func valueRange(values []float64, includeZero bool) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 1
	}
	if includeZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if lo == hi {
		return lo - 1, hi + 1
	}

	margin := (hi - lo) * 0.05
	if includeZero {
		if lo < 0 {
			lo -= margin
		}
		if hi > 0 {
			hi += margin
		}
		return lo, hi
	}
	return lo - margin, hi + margin
}
