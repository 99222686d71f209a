package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"screenfeed/internal/metrics"
	"screenfeed/internal/telemetry"
	"screenfeed/models"
	"screenfeed/services/catalog"
)

// CollectionsHandler serves the predefined groupings. A request naming an
// unknown grouping is a hard 404; there is no empty-result fallback.
type CollectionsHandler struct {
	store   *catalog.Store
	service queryService
}

func NewCollectionsHandler(store *catalog.Store, service queryService) *CollectionsHandler {
	return &CollectionsHandler{store: store, service: service}
}

func (h *CollectionsHandler) Register(r *mux.Router) {
	r.HandleFunc("/collections/{name}", h.Get).Methods(http.MethodGet)
}

func (h *CollectionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	c, err := h.store.Collection(name)
	if err != nil {
		if errors.Is(err, catalog.ErrCollectionNotFound) {
			writeError(w, http.StatusNotFound, "unknown_collection", err.Error())
			return
		}
		telemetry.CaptureError(err, map[string]string{"collection": name})
		writeError(w, http.StatusInternalServerError, "collection_failed", err.Error())
		return
	}

	q := mergeQuery(c, parseQuery(r.URL.Query()))
	start := time.Now()
	res, err := h.service.Execute(h.store.ByKind(c.Kind), q, time.Now())
	metrics.ObserveQuery(c.Kind, err, time.Since(start))
	if err != nil {
		telemetry.CaptureError(err, map[string]string{"collection": name})
		writeError(w, http.StatusInternalServerError, "query_failed", err.Error())
		return
	}
	writeResult(w, r, res)
}

// mergeQuery layers the request on top of the saved collection query: the
// caller controls text, pagination and extra predicates, the collection
// keeps its defining predicates and default sort.
func mergeQuery(c catalog.Collection, req models.Query) models.Query {
	merged := c.Query
	merged.Text = req.Text
	merged.Page = req.Page
	merged.PerPage = req.PerPage
	merged.MaxPage = req.MaxPage
	merged.TimeZone = req.TimeZone
	if len(req.SortKeys) > 0 {
		merged.SortKeys = req.SortKeys
	}

	// Copy, never mutate the collection's own predicate map.
	merged.Predicates = make(map[string]string, len(c.Query.Predicates)+len(req.Predicates))
	for field, want := range c.Query.Predicates {
		merged.Predicates[field] = want
	}
	for field, want := range req.Predicates {
		if _, defining := c.Query.Predicates[field]; !defining {
			merged.Predicates[field] = want
		}
	}
	return merged
}
