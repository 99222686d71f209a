package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"screenfeed/models"
)

// envelope is the fixed response shape the player client consumes.
type envelope struct {
	Items       []map[string]any `json:"items"`
	NextPage    *int             `json:"nextPage,omitempty"`
	NextPageURL string           `json:"nextPageUrl,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"error": code, "message": msg})
}

func writeResult(w http.ResponseWriter, r *http.Request, res models.QueryResult) {
	items := make([]map[string]any, 0, len(res.Items))
	for _, rec := range res.Items {
		item, err := renderItem(rec)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "render_failed", err.Error())
			return
		}
		items = append(items, item)
	}

	env := envelope{Items: items, NextPage: res.NextPage}
	if res.NextPage != nil {
		env.NextPageURL = nextPageURL(r, *res.NextPage)
	}
	writeJSON(w, http.StatusOK, env)
}

// renderItem maps a record into the client payload shape: its own fields
// plus the kind tag.
func renderItem(rec models.Record) (map[string]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var item map[string]any
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	item["type"] = rec.RecordKind()
	return item, nil
}

// nextPageURL rebuilds the request URL with the page parameter swapped, so
// the client can follow pagination without deriving parameters itself.
func nextPageURL(r *http.Request, page int) string {
	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}
