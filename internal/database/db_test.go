package database

import (
	"context"
	"path/filepath"
	"testing"

	"screenfeed/models"
)

func setupDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(Config{DatabasePath: filepath.Join(t.TempDir(), "catalog.db")})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	air := int64(1_750_000_000_000)
	starts := int64(1_760_000_000_000)
	snap := models.Snapshot{
		Episodes: []models.Episode{
			{
				ID: "ep-1", Title: "Morning Brief", Summary: "Headlines.",
				Genre: "news", Channel: "ch-1", SeriesID: "sr-1",
				SeasonNumber: 1, EpisodeNumber: 3, DurationInSeconds: 1800,
				StreamURL: "https://cdn.example/ep-1.m3u8", AirTimestamp: &air,
				CTA: "Watch", Label: "New",
			},
			{ID: "ep-2", Title: "Deep Space", Genre: "science"},
		},
		Series: []models.Series{
			{ID: "sr-1", Title: "The Brief", StartsOnTimestamp: &starts},
			{ID: "sr-2", Title: "Orbit"},
		},
		Channels: []models.Channel{{ID: "ch-1", Title: "News One", CTA: "Tune in"}},
		Genres:   []models.Genre{{ID: "gn-1", Title: "News"}},
		Seasons:  []models.Season{{ID: "sn-1", Title: "Season 1"}},
		Programs: []models.Program{
			{ID: "pg-1", Title: "Morning Brief", Channel: "ch-1", EpisodeID: "ep-1",
				SeriesID: "sr-1", WeekOffsetMillis: 32_400_000, DurationInSeconds: 1800},
		},
	}

	if err := db.Repository.SaveAll(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	got, err := db.Repository.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}

	if len(got.Episodes) != 2 || len(got.Series) != 2 || len(got.Channels) != 1 ||
		len(got.Genres) != 1 || len(got.Seasons) != 1 || len(got.Programs) != 1 {
		t.Fatalf("unexpected snapshot shape: %+v", got)
	}

	ep := got.Episodes[0]
	if ep.ID != "ep-1" || ep.SeasonNumber != 1 || ep.EpisodeNumber != 3 {
		t.Errorf("episode fields lost: %+v", ep)
	}
	if ep.AirTimestamp == nil || *ep.AirTimestamp != air {
		t.Errorf("air timestamp lost: %v", ep.AirTimestamp)
	}
	if got.Episodes[1].AirTimestamp != nil {
		t.Errorf("nil air timestamp must stay nil, got %v", got.Episodes[1].AirTimestamp)
	}

	sr := got.Series[0]
	if sr.StartsOnTimestamp == nil || *sr.StartsOnTimestamp != starts {
		t.Errorf("starts-on timestamp lost: %v", sr.StartsOnTimestamp)
	}
	if got.Series[1].StartsOnTimestamp != nil {
		t.Errorf("nil starts-on must stay nil, got %v", got.Series[1].StartsOnTimestamp)
	}

	pg := got.Programs[0]
	if pg.WeekOffsetMillis != 32_400_000 || pg.DurationInSeconds != 1800 {
		t.Errorf("program schedule fields lost: %+v", pg)
	}
}

func TestSaveAllReplacesPreviousSnapshot(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	first := models.Snapshot{Episodes: []models.Episode{{ID: "ep-old", Title: "Old"}}}
	if err := db.Repository.SaveAll(ctx, first); err != nil {
		t.Fatalf("save first snapshot: %v", err)
	}

	second := models.Snapshot{Episodes: []models.Episode{{ID: "ep-new", Title: "New"}}}
	if err := db.Repository.SaveAll(ctx, second); err != nil {
		t.Fatalf("save second snapshot: %v", err)
	}

	got, err := db.Repository.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if len(got.Episodes) != 1 || got.Episodes[0].ID != "ep-new" {
		t.Errorf("snapshot not replaced: %+v", got.Episodes)
	}
}

func TestLoadAllEmptyDatabase(t *testing.T) {
	db := setupDB(t)

	got, err := db.Repository.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("expected an empty snapshot, got %d records", got.Len())
	}
}

func TestProgramsLoadInScheduleOrder(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	snap := models.Snapshot{Programs: []models.Program{
		{ID: "pg-late", WeekOffsetMillis: 72_000_000, DurationInSeconds: 600},
		{ID: "pg-early", WeekOffsetMillis: 3_600_000, DurationInSeconds: 600},
		{ID: "pg-mid", WeekOffsetMillis: 36_000_000, DurationInSeconds: 600},
	}}
	if err := db.Repository.SaveAll(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	got, err := db.Repository.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}

	want := []string{"pg-early", "pg-mid", "pg-late"}
	for i, p := range got.Programs {
		if p.ID != want[i] {
			t.Errorf("program %d: expected %s, got %s", i, want[i], p.ID)
		}
	}
}
