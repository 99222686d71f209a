package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"screenfeed/models"
)

// reservedParams have engine meaning; every other query parameter becomes
// a field predicate.
var reservedParams = map[string]bool{
	"q":         true,
	"sort":      true,
	"page":      true,
	"perPage":   true,
	"maxPage":   true,
	"limit":     true,
	"tz":        true,
	"mode":      true,
	"now":       true,
	"upNext":    true,
	"justEnded": true,
	"day":       true,
	"futureDay": true,
	"ref":       true,
}

func parseQuery(values url.Values) models.Query {
	q := models.Query{
		Text:     values.Get("q"),
		Page:     intParam(values, "page"),
		PerPage:  intParam(values, "perPage"),
		MaxPage:  intParam(values, "maxPage"),
		TimeZone: values.Get("tz"),
	}
	if s := values.Get("sort"); s != "" {
		q.SortKeys = strings.Split(s, ",")
	}
	for name, vals := range values {
		if reservedParams[name] || len(vals) == 0 {
			continue
		}
		if q.Predicates == nil {
			q.Predicates = make(map[string]string)
		}
		q.Predicates[name] = vals[0]
	}
	return q
}

// intParam coerces a parameter to a positive int. Non-numeric or negative
// input is treated as absent so the engine falls back to its defaults.
func intParam(values url.Values, name string) int {
	n, err := strconv.Atoi(values.Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseEPGMode resolves the temporal mode flags. When several flags are
// supplied at once the first in this order wins; callers rely on the
// precedence. The explicit mode parameter is a fallback alias and an
// unknown value there means "no mode".
func parseEPGMode(values url.Values) (models.EPGMode, *int64) {
	if boolFlag(values, "now") {
		return models.EPGModeNow, nil
	}
	if boolFlag(values, "upNext") {
		return models.EPGModeUpNext, nil
	}
	if boolFlag(values, "justEnded") {
		return models.EPGModeJustEnded, nil
	}
	if ms, ok := millisParam(values, "day"); ok {
		return models.EPGModeForDay, &ms
	}
	if ms, ok := millisParam(values, "futureDay"); ok {
		return models.EPGModeFutureForDay, &ms
	}

	mode := models.ParseEPGMode(values.Get("mode"))
	if mode == models.EPGModeForDay || mode == models.EPGModeFutureForDay {
		if ms, ok := millisParam(values, "ref"); ok {
			return mode, &ms
		}
	}
	return mode, nil
}

func boolFlag(values url.Values, name string) bool {
	v := values.Get(name)
	return v == "true" || v == "1"
}

func millisParam(values url.Values, name string) (int64, bool) {
	ms, err := strconv.ParseInt(values.Get(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return ms, true
}
