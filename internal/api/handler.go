// Package api implements the hosted Grahabala REST API.
// It provides compute and read endpoints backed by Postgres and blob storage.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/grahabala/grahabala/internal/registry"
	"github.com/grahabala/grahabala/internal/store"
	"github.com/grahabala/grahabala/pkg/ashtakavarga"
)

// Handler is the top-level API handler for the hosted Grahabala service.
type Handler struct {
	engine   *ashtakavarga.Engine
	registry *registry.Service
	storage  store.StorageClient
	cache    *ReportCache
}

// NewHandler creates a new API handler.
func NewHandler(engine *ashtakavarga.Engine, reg *registry.Service, storage store.StorageClient, cache *ReportCache) *Handler {
	if cache == nil {
		cache = NewReportCacheFromEnv()
	}
	return &Handler{
		engine:   engine,
		registry: reg,
		storage:  storage,
		cache:    cache,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Owner provisioning. Compute requests reference an owner created here.
	mux.HandleFunc("POST /api/v1/owners", h.handleCreateOwner)
	mux.HandleFunc("GET /api/v1/owners/{ownerID}", h.handleGetOwner)

	// Write endpoints
	mux.HandleFunc("POST /api/v1/charts", h.handleComputeChart)
	mux.HandleFunc("DELETE /api/v1/charts/{runID}", h.handleDeleteChart)

	// Read endpoints
	mux.HandleFunc("GET /api/v1/charts", h.handleListCharts)
	mux.HandleFunc("GET /api/v1/charts/{runID}", h.handleGetChart)
	mux.HandleFunc("GET /api/v1/charts/{runID}/report", h.handleGetReport)
	mux.HandleFunc("GET /api/v1/charts/{runID}/sav", h.handleGetSAV)
	mux.HandleFunc("GET /api/v1/charts/{runID}/bav/{planet}", h.handleGetBAV)
	mux.HandleFunc("GET /api/v1/table", h.handleTableTotals)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
