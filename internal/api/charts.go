package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/grahabala/grahabala/internal/registry"
	"github.com/grahabala/grahabala/pkg/ashtakavarga"
	"github.com/grahabala/grahabala/pkg/chart"
)

// computeRequest is the body of POST /api/v1/charts.
type computeRequest struct {
	Name       string         `json:"name"`
	Longitudes []float64      `json:"longitudes"` // sidereal degrees, [Sun..Saturn, Ascendant]
	CastAt     time.Time      `json:"cast_at"`
	Location   chart.Location `json:"location"`
}

// computeResponse pairs the registry record with the full report.
type computeResponse struct {
	Run    *registry.ChartRun   `json:"run"`
	Report *ashtakavarga.Report `json:"report"`
}

func ownerID(r *http.Request) string {
	return r.Header.Get("X-Owner-ID")
}

func (h *Handler) handleComputeChart(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)
	if owner == "" {
		writeError(w, http.StatusBadRequest, "X-Owner-ID header required")
		return
	}

	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := chart.New(req.Longitudes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.CastAt = req.CastAt
	c.Location = req.Location

	report, err := h.engine.Score(c)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("scoring: %v", err))
		return
	}

	run, err := h.persist(r.Context(), owner, req.Name, report)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("persisting report: %v", err))
		return
	}

	h.cache.Put(report.ID, report)
	writeJSON(w, http.StatusCreated, computeResponse{Run: run, Report: report})
}

// persist stores the chart and report blobs and records the run in the registry.
func (h *Handler) persist(ctx context.Context, owner, name string, report *ashtakavarga.Report) (*registry.ChartRun, error) {
	chartData, err := json.Marshal(report.Chart)
	if err != nil {
		return nil, fmt.Errorf("marshal chart: %w", err)
	}
	if err := h.storage.PutChart(ctx, owner, report.ID, chartData); err != nil {
		return nil, fmt.Errorf("store chart: %w", err)
	}

	reportData, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := h.storage.PutReport(ctx, owner, report.ID, reportData); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}

	return h.registry.CreateChartRun(ctx, &registry.ChartRun{
		OwnerID:    owner,
		Name:       name,
		CastAt:     report.Chart.CastAt,
		Latitude:   report.Chart.Location.Latitude,
		Longitude:  report.Chart.Location.Longitude,
		Timezone:   report.Chart.Location.Timezone,
		ReportID:   report.ID,
		GrandTotal: report.SAV.GrandTotal,
	})
}

func (h *Handler) handleListCharts(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)
	if owner == "" {
		writeError(w, http.StatusBadRequest, "X-Owner-ID header required")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	runs, err := h.registry.ListChartRuns(r.Context(), owner, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "listing chart runs failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (h *Handler) handleGetChart(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)
	runID := r.PathValue("runID")

	run, err := h.registry.GetChartRun(r.Context(), owner, runID)
	if err != nil {
		writeError(w, http.StatusNotFound, "chart run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (h *Handler) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)
	runID := r.PathValue("runID")

	if err := h.registry.DeleteChartRun(r.Context(), owner, runID); err != nil {
		writeError(w, http.StatusNotFound, "chart run not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// loadReport loads a run's report, checking the cache first, then falling
// back to registry lookup + blob storage.
func (h *Handler) loadReport(ctx context.Context, owner, runID string) (*ashtakavarga.Report, error) {
	run, err := h.registry.GetChartRun(ctx, owner, runID)
	if err != nil {
		return nil, fmt.Errorf("chart run metadata: %w", err)
	}

	if report := h.cache.Get(run.ReportID); report != nil {
		return report, nil
	}

	data, err := h.storage.GetReport(ctx, owner, run.ReportID)
	if err != nil {
		return nil, fmt.Errorf("load report blob: %w", err)
	}

	var report ashtakavarga.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	h.cache.Put(run.ReportID, &report)
	return &report, nil
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.loadReport(r.Context(), ownerID(r), r.PathValue("runID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleGetSAV(w http.ResponseWriter, r *http.Request) {
	report, err := h.loadReport(r.Context(), ownerID(r), r.PathValue("runID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeJSON(w, http.StatusOK, report.SAV)
}

func (h *Handler) handleGetBAV(w http.ResponseWriter, r *http.Request) {
	planet, ok := parsePlanet(r.PathValue("planet"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown planet")
		return
	}

	report, err := h.loadReport(r.Context(), ownerID(r), r.PathValue("runID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeJSON(w, http.StatusOK, report.BAV[planet])
}

func (h *Handler) handleTableTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := ashtakavarga.Validate(h.engine.Table())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

// parsePlanet resolves a case-insensitive planet name to a scoring target.
func parsePlanet(name string) (chart.Body, bool) {
	for _, p := range chart.Planets() {
		if strings.EqualFold(p.String(), name) {
			return p, true
		}
	}
	return 0, false
}
