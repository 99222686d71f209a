package query

import (
	"reflect"
	"testing"

	"screenfeed/models"
)

func TestSort_EmptyKeysIsIdentity(t *testing.T) {
	records := []models.Record{
		models.Episode{ID: "c"},
		models.Episode{ID: "a"},
		models.Episode{ID: "b"},
	}

	got := Sort(records, nil)

	if !reflect.DeepEqual(ids(got), []string{"c", "a", "b"}) {
		t.Fatalf("expected input order, got %v", ids(got))
	}
}

func TestSort_MultiKeyWithDirections(t *testing.T) {
	records := []models.Record{
		models.Episode{ID: "a", Genre: "news", EpisodeNumber: 2},
		models.Episode{ID: "b", Genre: "food", EpisodeNumber: 9},
		models.Episode{ID: "c", Genre: "news", EpisodeNumber: 7},
		models.Episode{ID: "d", Genre: "food", EpisodeNumber: 1},
	}

	got := Sort(records, []string{"genre", "episodeNumber:desc"})

	want := []string{"b", "d", "c", "a"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSort_IsStable(t *testing.T) {
	records := []models.Record{
		models.Episode{ID: "first", Genre: "news"},
		models.Episode{ID: "second", Genre: "news"},
		models.Episode{ID: "third", Genre: "news"},
	}

	once := Sort(records, []string{"genre"})
	twice := Sort(once, []string{"genre"})

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(ids(once), want) {
		t.Fatalf("ties must keep input order, got %v", ids(once))
	}
	if !reflect.DeepEqual(ids(twice), ids(once)) {
		t.Fatalf("repeated sort changed order: %v vs %v", ids(twice), ids(once))
	}
}

func TestSort_MissingFieldSortsFirst(t *testing.T) {
	ts := int64(100)
	records := []models.Record{
		models.Series{ID: "dated", StartsOnTimestamp: &ts},
		models.Series{ID: "undated"},
	}

	got := Sort(records, []string{"startsOnTimestamp"})
	if ids(got)[0] != "undated" {
		t.Errorf("ascending: missing field should sort first, got %v", ids(got))
	}

	got = Sort(records, []string{"startsOnTimestamp:desc"})
	if ids(got)[len(got)-1] != "undated" {
		t.Errorf("descending: missing field should sort last, got %v", ids(got))
	}
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	records := []models.Record{
		models.Episode{ID: "a"},
		models.Episode{ID: "b"},
	}

	got := Sort(records, []string{"noSuchField"})

	if !reflect.DeepEqual(ids(got), []string{"a", "b"}) {
		t.Fatalf("unknown key must not reorder, got %v", ids(got))
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := []models.Record{
		models.Episode{ID: "b", EpisodeNumber: 2},
		models.Episode{ID: "a", EpisodeNumber: 1},
	}

	_ = Sort(records, []string{"episodeNumber"})

	if records[0].RecordID() != "b" {
		t.Fatal("Sort mutated its input slice")
	}
}
