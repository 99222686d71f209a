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

// EPGHandler serves the program guide. EPG queries window their results
// with a flat limit instead of page arithmetic.
type EPGHandler struct {
	store   *catalog.Store
	service queryService
}

func NewEPGHandler(store *catalog.Store, service queryService) *EPGHandler {
	return &EPGHandler{store: store, service: service}
}

func (h *EPGHandler) Register(r *mux.Router) {
	r.HandleFunc("/epg", h.Guide).Methods(http.MethodGet)
}

// Guide serves programs filtered by channel and temporal mode, e.g.
// /epg?channel=one&now=true or /epg?day=1719792000000&tz=Europe/Berlin.
func (h *EPGHandler) Guide(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	q := parseQuery(values)
	q.EPGMode, q.EPGReferenceDay = parseEPGMode(values)
	q.Limit = intParam(values, "limit")
	if q.Limit == 0 {
		q.Limit = query.MaxEPGLimit
	}

	start := time.Now()
	res, err := h.service.Execute(h.store.ByKind(models.KindProgram), q, time.Now())
	metrics.ObserveQuery(models.KindProgram, err, time.Since(start))
	if err != nil {
		telemetry.CaptureError(err, map[string]string{"kind": models.KindProgram})
		writeError(w, http.StatusInternalServerError, "query_failed", err.Error())
		return
	}
	writeResult(w, r, res)
}
