package http

import (
	"bytes"
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/pkg/domain/interfaces"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/secmon-lab/caredash/pkg/domain/types"
	"github.com/secmon-lab/caredash/pkg/utils/apperr"
)

// DashboardHandler serves the dashboard views over HTTP
type DashboardHandler struct {
	dashboard interfaces.Dashboard
	renderer  interfaces.ChartRenderer
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard interfaces.Dashboard, renderer interfaces.ChartRenderer) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		renderer:  renderer,
	}
}

// HandleOptions returns the dropdown options
func (h *DashboardHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.dashboard.Options(r.Context()))
}

// HandleLayout returns the page descriptor for the path given in the query
func (h *DashboardHandler) HandleLayout(w http.ResponseWriter, r *http.Request) {
	page := types.ResolvePage(r.URL.Query().Get(model.ParamPath))
	writeJSON(w, r, h.dashboard.Layout(r.Context(), page))
}

// HandleRegionalTable returns the rows of the selected region
func (h *DashboardHandler) HandleRegionalTable(w http.ResponseWriter, r *http.Request) {
	region := types.Region(r.URL.Query().Get(model.ParamRegion))

	view, err := h.dashboard.RegionalTable(r.Context(), region)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, r, view)
}

// HandleComparison returns the comparison line figure
func (h *DashboardHandler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	fig, err := h.comparison(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, r, fig)
}

// HandleComparisonChart renders the comparison line figure as SVG
func (h *DashboardHandler) HandleComparisonChart(w http.ResponseWriter, r *http.Request) {
	fig, err := h.comparison(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeSVG(w, r, fig)
}

// HandleRegionalAnalysis returns the per-region bar figure
func (h *DashboardHandler) HandleRegionalAnalysis(w http.ResponseWriter, r *http.Request) {
	fig, err := h.regionalAnalysis(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, r, fig)
}

// HandleRegionalAnalysisChart renders the per-region bar figure as SVG
func (h *DashboardHandler) HandleRegionalAnalysisChart(w http.ResponseWriter, r *http.Request) {
	fig, err := h.regionalAnalysis(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeSVG(w, r, fig)
}

func (h *DashboardHandler) comparison(r *http.Request) (*model.Figure, error) {
	query := r.URL.Query()
	authorities := types.LocalAuthorities(query[model.ParamLocalAuthority])
	measure := types.Measure(query.Get(model.ParamMeasure))

	return h.dashboard.Comparison(r.Context(), authorities, measure)
}

func (h *DashboardHandler) regionalAnalysis(r *http.Request) (*model.Figure, error) {
	query := r.URL.Query()
	year := types.FinancialYear(query.Get(model.ParamYear))
	measure := types.Measure(query.Get(model.ParamMeasure))

	return h.dashboard.RegionalAnalysis(r.Context(), year, measure)
}

// writeSVG renders into a buffer first so a rendering failure still yields a clean 500
func (h *DashboardHandler) writeSVG(w http.ResponseWriter, r *http.Request, fig *model.Figure) {
	var buf bytes.Buffer
	if err := h.renderer.RenderSVG(r.Context(), fig, &buf); err != nil {
		h.handleError(w, r, goerr.Wrap(err, "failed to render chart"))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		apperr.Handle(r.Context(), goerr.Wrap(err, "failed to write chart"))
	}
}

// handleError maps a missing selection to 204 so the client keeps its current output
func (h *DashboardHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if goerr.HasTag(err, model.ErrTagNoSelection) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	handleUnexpected(r.Context(), w, err)
}

func handleUnexpected(ctx context.Context, w http.ResponseWriter, err error) {
	apperr.Handle(ctx, err)
	writeError(w, err, http.StatusInternalServerError)
}
