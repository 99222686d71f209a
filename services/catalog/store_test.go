package catalog

import (
	"errors"
	"testing"

	"screenfeed/models"
)

func snapshotFixture() models.Snapshot {
	return models.Snapshot{
		Episodes: []models.Episode{
			{ID: "ep-1", Title: "Morning Brief"},
			{ID: "ep-2", Title: "Evening Brief"},
		},
		Series: []models.Series{
			{ID: "sr-1", Title: "The Brief"},
		},
		Channels: []models.Channel{
			{ID: "ch-1", Title: "News One"},
		},
		Programs: []models.Program{
			{ID: "pg-1", Title: "Morning Brief", WeekOffsetMillis: 0, DurationInSeconds: 1800},
		},
	}
}

func TestStore_RecordsKeepCatalogOrder(t *testing.T) {
	store := NewStore(snapshotFixture())

	if store.Len() != 5 {
		t.Fatalf("expected 5 records, got %d", store.Len())
	}
	want := []string{"ep-1", "ep-2", "sr-1", "ch-1", "pg-1"}
	for i, rec := range store.Records() {
		if rec.RecordID() != want[i] {
			t.Errorf("record %d: expected %s, got %s", i, want[i], rec.RecordID())
		}
	}
}

func TestStore_ByKind(t *testing.T) {
	store := NewStore(snapshotFixture())

	episodes := store.ByKind(models.KindEpisode)
	if len(episodes) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(episodes))
	}
	if episodes[0].RecordID() != "ep-1" || episodes[1].RecordID() != "ep-2" {
		t.Errorf("episodes out of catalog order: %s, %s", episodes[0].RecordID(), episodes[1].RecordID())
	}
	if got := store.ByKind("nonsense"); len(got) != 0 {
		t.Errorf("unknown kind must be empty, got %d records", len(got))
	}
}

func TestStore_GetIsKindScoped(t *testing.T) {
	store := NewStore(snapshotFixture())

	rec, ok := store.Get(models.KindEpisode, "ep-1")
	if !ok {
		t.Fatal("expected ep-1 to resolve")
	}
	if rec.RecordTitle() != "Morning Brief" {
		t.Errorf("unexpected record: %s", rec.RecordTitle())
	}

	// Same id under the wrong kind must not resolve.
	if _, ok := store.Get(models.KindSeries, "ep-1"); ok {
		t.Error("episode id must not resolve as a series")
	}
	if _, ok := store.Get(models.KindEpisode, "missing"); ok {
		t.Error("unknown id must not resolve")
	}
}

func TestStore_BuiltinCollections(t *testing.T) {
	store := NewStore(snapshotFixture())

	c, err := store.Collection("live-now")
	if err != nil {
		t.Fatalf("live-now: %v", err)
	}
	if c.Kind != models.KindEpisode {
		t.Errorf("expected an episode collection, got %s", c.Kind)
	}
	if c.Query.Predicates["isLive"] != "true" {
		t.Errorf("live-now must pin isLive=true, got %v", c.Query.Predicates)
	}

	c, err = store.Collection("guide-now")
	if err != nil {
		t.Fatalf("guide-now: %v", err)
	}
	if c.Query.EPGMode != models.EPGModeNow || c.Query.Limit != 100 {
		t.Errorf("guide-now query misconfigured: %+v", c.Query)
	}
}

func TestStore_UnknownCollection(t *testing.T) {
	store := NewStore(snapshotFixture())

	_, err := store.Collection("definitely-not-a-thing")
	if !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestStore_EmptySnapshot(t *testing.T) {
	store := NewStore(models.Snapshot{})

	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d records", store.Len())
	}
	if got := store.ByKind(models.KindEpisode); len(got) != 0 {
		t.Errorf("expected no episodes, got %d", len(got))
	}
}
