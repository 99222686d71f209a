package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"screenfeed/internal/metrics"
	"screenfeed/internal/telemetry"
	"screenfeed/models"
	"screenfeed/services/catalog"
	"screenfeed/services/query"
)

type queryService interface {
	Execute(records []models.Record, q models.Query, now time.Time) (models.QueryResult, error)
}

var _ queryService = (*query.Service)(nil)

// kindRoutes maps URL path segments onto record kinds.
var kindRoutes = map[string]string{
	"episodes": models.KindEpisode,
	"series":   models.KindSeries,
	"channels": models.KindChannel,
	"genres":   models.KindGenre,
	"seasons":  models.KindSeason,
	"programs": models.KindProgram,
}

// FeedsHandler exposes the per-kind catalog feeds.
type FeedsHandler struct {
	store   *catalog.Store
	service queryService
}

func NewFeedsHandler(store *catalog.Store, service queryService) *FeedsHandler {
	return &FeedsHandler{store: store, service: service}
}

func (h *FeedsHandler) Register(r *mux.Router) {
	r.HandleFunc("/feeds/{kind}", h.List).Methods(http.MethodGet)
	r.HandleFunc("/feeds/{kind}/{id}", h.Get).Methods(http.MethodGet)
}

// List serves a filterable, sortable, paginated feed of one record kind.
func (h *FeedsHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindRoutes[mux.Vars(r)["kind"]]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_kind", "unknown record kind")
		return
	}

	q := parseQuery(r.URL.Query())
	start := time.Now()
	res, err := h.service.Execute(h.store.ByKind(kind), q, time.Now())
	metrics.ObserveQuery(kind, err, time.Since(start))
	if err != nil {
		telemetry.CaptureError(err, map[string]string{"kind": kind})
		writeError(w, http.StatusInternalServerError, "query_failed", err.Error())
		return
	}
	writeResult(w, r, res)
}

// Get serves a single record by kind-scoped id.
func (h *FeedsHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind, ok := kindRoutes[vars["kind"]]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_kind", "unknown record kind")
		return
	}

	rec, ok := h.store.Get(kind, vars["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no such record")
		return
	}

	item, err := renderItem(rec)
	if err != nil {
		telemetry.CaptureError(err, map[string]string{"kind": kind})
		writeError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}
