package handlers

import (
	"net/url"
	"testing"

	"screenfeed/models"
)

func TestParseQuery_ReservedVersusPredicates(t *testing.T) {
	values := url.Values{}
	values.Set("q", "brief")
	values.Set("sort", "title,airTimestamp:desc")
	values.Set("page", "2")
	values.Set("perPage", "15")
	values.Set("maxPage", "5")
	values.Set("tz", "Europe/Berlin")
	values.Set("genre", "news")
	values.Set("isLive", "true")

	q := parseQuery(values)

	if q.Text != "brief" {
		t.Errorf("text: got %q", q.Text)
	}
	if len(q.SortKeys) != 2 || q.SortKeys[0] != "title" || q.SortKeys[1] != "airTimestamp:desc" {
		t.Errorf("sort keys: got %v", q.SortKeys)
	}
	if q.Page != 2 || q.PerPage != 15 || q.MaxPage != 5 {
		t.Errorf("pagination: got page=%d perPage=%d maxPage=%d", q.Page, q.PerPage, q.MaxPage)
	}
	if q.TimeZone != "Europe/Berlin" {
		t.Errorf("tz: got %q", q.TimeZone)
	}
	if len(q.Predicates) != 2 || q.Predicates["genre"] != "news" || q.Predicates["isLive"] != "true" {
		t.Errorf("predicates: got %v", q.Predicates)
	}
}

func TestParseQuery_NoParams(t *testing.T) {
	q := parseQuery(url.Values{})

	if q.Text != "" || q.Page != 0 || q.PerPage != 0 || len(q.SortKeys) != 0 || q.Predicates != nil {
		t.Errorf("expected a zero query, got %+v", q)
	}
}

func TestIntParam_BadInputFallsBack(t *testing.T) {
	values := url.Values{}
	values.Set("page", "abc")
	values.Set("perPage", "-3")

	if got := intParam(values, "page"); got != 0 {
		t.Errorf("non-numeric page: got %d", got)
	}
	if got := intParam(values, "perPage"); got != 0 {
		t.Errorf("negative perPage: got %d", got)
	}
	if got := intParam(values, "missing"); got != 0 {
		t.Errorf("absent param: got %d", got)
	}
}

func TestParseEPGMode_Precedence(t *testing.T) {
	// Every flag at once: now wins.
	values := url.Values{}
	values.Set("now", "true")
	values.Set("upNext", "true")
	values.Set("justEnded", "1")
	values.Set("day", "1719792000000")

	mode, ref := parseEPGMode(values)
	if mode != models.EPGModeNow || ref != nil {
		t.Errorf("expected now mode with no reference, got %v %v", mode, ref)
	}

	values.Del("now")
	mode, _ = parseEPGMode(values)
	if mode != models.EPGModeUpNext {
		t.Errorf("expected upNext after now, got %v", mode)
	}

	values.Del("upNext")
	mode, _ = parseEPGMode(values)
	if mode != models.EPGModeJustEnded {
		t.Errorf("expected justEnded after upNext, got %v", mode)
	}

	values.Del("justEnded")
	mode, ref = parseEPGMode(values)
	if mode != models.EPGModeForDay {
		t.Errorf("expected forDay last, got %v", mode)
	}
	if ref == nil || *ref != 1719792000000 {
		t.Errorf("expected the day reference to carry through, got %v", ref)
	}
}

func TestParseEPGMode_FutureDay(t *testing.T) {
	values := url.Values{}
	values.Set("futureDay", "1719792000000")

	mode, ref := parseEPGMode(values)
	if mode != models.EPGModeFutureForDay {
		t.Errorf("expected futureForDay, got %v", mode)
	}
	if ref == nil || *ref != 1719792000000 {
		t.Errorf("reference day lost: %v", ref)
	}
}

func TestParseEPGMode_ExplicitModeFallback(t *testing.T) {
	values := url.Values{}
	values.Set("mode", "upNext")

	mode, ref := parseEPGMode(values)
	if mode != models.EPGModeUpNext || ref != nil {
		t.Errorf("expected upNext via mode param, got %v %v", mode, ref)
	}

	values.Set("mode", "forDay")
	values.Set("ref", "1719792000000")
	mode, ref = parseEPGMode(values)
	if mode != models.EPGModeForDay || ref == nil || *ref != 1719792000000 {
		t.Errorf("expected forDay with reference, got %v %v", mode, ref)
	}
}

func TestParseEPGMode_UnknownIsNone(t *testing.T) {
	values := url.Values{}
	values.Set("mode", "whenever")

	mode, ref := parseEPGMode(values)
	if mode != models.EPGModeNone || ref != nil {
		t.Errorf("unknown mode must be none, got %v %v", mode, ref)
	}

	mode, _ = parseEPGMode(url.Values{})
	if mode != models.EPGModeNone {
		t.Errorf("no params must be none, got %v", mode)
	}
}

func TestBoolFlag(t *testing.T) {
	values := url.Values{}
	values.Set("now", "yes")
	if boolFlag(values, "now") {
		t.Error(`"yes" must not count as a flag`)
	}
	values.Set("now", "1")
	if !boolFlag(values, "now") {
		t.Error(`"1" must count as a flag`)
	}
}
