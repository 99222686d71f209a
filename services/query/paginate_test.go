package query

import (
	"fmt"
	"testing"

	"screenfeed/models"
)

func makeEpisodes(n int) []models.Record {
	out := make([]models.Record, n)
	for i := range out {
		out[i] = models.Episode{ID: fmt.Sprintf("ep-%03d", i)}
	}
	return out
}

func TestPaginate_LastPartialPage(t *testing.T) {
	records := makeEpisodes(25)

	items, nextPage := Paginate(records, 3, 10, 100)

	if len(items) != 5 {
		t.Errorf("expected 5 items on the final page, got %d", len(items))
	}
	if nextPage != 0 {
		t.Errorf("expected no next page, got %d", nextPage)
	}
}

func TestPaginate_PastTheEnd(t *testing.T) {
	records := makeEpisodes(25)

	items, nextPage := Paginate(records, 4, 10, 100)

	if len(items) != 0 {
		t.Errorf("expected empty page, got %d items", len(items))
	}
	if nextPage != 0 {
		t.Errorf("expected no next page, got %d", nextPage)
	}
}

func TestPaginate_MaxPageCapsHasNext(t *testing.T) {
	records := makeEpisodes(100)

	items, nextPage := Paginate(records, 1, 10, 1)

	if len(items) != 10 {
		t.Errorf("expected 10 items, got %d", len(items))
	}
	// More records exist, but page == maxPage.
	if nextPage != 0 {
		t.Errorf("expected no next page at the cap, got %d", nextPage)
	}
}

func TestPaginate_PageBeyondMaxPageIsValidEmpty(t *testing.T) {
	records := makeEpisodes(50)

	items, nextPage := Paginate(records, 3, 10, 2)

	if len(items) != 0 || nextPage != 0 {
		t.Errorf("expected empty result, got %d items nextPage=%d", len(items), nextPage)
	}
}

func TestPaginate_DefaultsAndClamping(t *testing.T) {
	records := makeEpisodes(250)

	items, nextPage := Paginate(records, 0, 0, 0)
	if len(items) != DefaultPerPage {
		t.Errorf("expected default page size %d, got %d", DefaultPerPage, len(items))
	}
	if nextPage != 2 {
		t.Errorf("expected next page 2, got %d", nextPage)
	}

	items, _ = Paginate(records, 1, 1000, 0)
	if len(items) != MaxPerPage {
		t.Errorf("perPage must clamp to %d, got %d", MaxPerPage, len(items))
	}
}

func TestPaginate_NextPageSequence(t *testing.T) {
	records := makeEpisodes(21)

	items, nextPage := Paginate(records, 1, 10, 100)
	if len(items) != 10 || nextPage != 2 {
		t.Fatalf("page 1: got %d items nextPage=%d", len(items), nextPage)
	}

	items, nextPage = Paginate(records, 2, 10, 100)
	if len(items) != 10 || nextPage != 3 {
		t.Fatalf("page 2: got %d items nextPage=%d", len(items), nextPage)
	}

	items, nextPage = Paginate(records, 3, 10, 100)
	if len(items) != 1 || nextPage != 0 {
		t.Fatalf("page 3: got %d items nextPage=%d", len(items), nextPage)
	}
}

func TestLimit_CapsWindow(t *testing.T) {
	records := makeEpisodes(150)

	if got := Limit(records, 5); len(got) != 5 {
		t.Errorf("expected 5 records, got %d", len(got))
	}
	if got := Limit(records, 0); len(got) != MaxEPGLimit {
		t.Errorf("expected capped window %d, got %d", MaxEPGLimit, len(got))
	}
	if got := Limit(records, 500); len(got) != MaxEPGLimit {
		t.Errorf("limit above the cap must clamp, got %d", len(got))
	}
	if got := Limit(makeEpisodes(3), 10); len(got) != 3 {
		t.Errorf("short input passes through, got %d", len(got))
	}
}
