package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"screenfeed/models"
)

// CatalogRepository reads and writes whole catalog snapshots. The service
// only ever calls LoadAll once at startup; SaveAll exists for the seed tool.
type CatalogRepository struct {
	conn *sql.DB
}

func NewCatalogRepository(conn *sql.DB) *CatalogRepository {
	return &CatalogRepository{conn: conn}
}

// LoadAll reads every record into memory. The six kinds load concurrently;
// each goroutine fills its own snapshot field.
func (r *CatalogRepository) LoadAll(ctx context.Context) (models.Snapshot, error) {
	var snap models.Snapshot

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		snap.Episodes, err = r.loadEpisodes(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		snap.Series, err = r.loadSeries(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := r.loadThin(ctx, "channels")
		if err != nil {
			return err
		}
		snap.Channels = make([]models.Channel, len(rows))
		for i, t := range rows {
			snap.Channels[i] = models.Channel{ID: t.id, Title: t.title, CTA: t.cta, Label: t.label}
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := r.loadThin(ctx, "genres")
		if err != nil {
			return err
		}
		snap.Genres = make([]models.Genre, len(rows))
		for i, t := range rows {
			snap.Genres[i] = models.Genre{ID: t.id, Title: t.title, CTA: t.cta, Label: t.label}
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := r.loadThin(ctx, "seasons")
		if err != nil {
			return err
		}
		snap.Seasons = make([]models.Season, len(rows))
		for i, t := range rows {
			snap.Seasons[i] = models.Season{ID: t.id, Title: t.title, CTA: t.cta, Label: t.label}
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		snap.Programs, err = r.loadPrograms(ctx)
		return err
	})

	if err := p.Wait(); err != nil {
		return models.Snapshot{}, fmt.Errorf("load catalog: %w", err)
	}
	return snap, nil
}

func (r *CatalogRepository) loadEpisodes(ctx context.Context) ([]models.Episode, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT id, title, summary, genre, channel, series_id, season_number,
		       episode_number, duration_seconds, stream_url, air_timestamp, cta, label
		FROM episodes ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query episodes: %w", err)
	}
	defer rows.Close()

	var out []models.Episode
	for rows.Next() {
		var e models.Episode
		var air sql.NullInt64
		err := rows.Scan(&e.ID, &e.Title, &e.Summary, &e.Genre, &e.Channel,
			&e.SeriesID, &e.SeasonNumber, &e.EpisodeNumber, &e.DurationInSeconds,
			&e.StreamURL, &air, &e.CTA, &e.Label)
		if err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		if air.Valid {
			v := air.Int64
			e.AirTimestamp = &v
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) loadSeries(ctx context.Context) ([]models.Series, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT id, title, summary, genre, channel, starts_on_timestamp, cta, label
		FROM series ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query series: %w", err)
	}
	defer rows.Close()

	var out []models.Series
	for rows.Next() {
		var s models.Series
		var starts sql.NullInt64
		err := rows.Scan(&s.ID, &s.Title, &s.Summary, &s.Genre, &s.Channel,
			&starts, &s.CTA, &s.Label)
		if err != nil {
			return nil, fmt.Errorf("scan series: %w", err)
		}
		if starts.Valid {
			v := starts.Int64
			s.StartsOnTimestamp = &v
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type thinRow struct {
	id, title, cta, label string
}

// loadThin scans one of the reference-entity tables, which all share the
// same shape.
func (r *CatalogRepository) loadThin(ctx context.Context, table string) ([]thinRow, error) {
	rows, err := r.conn.QueryContext(ctx,
		fmt.Sprintf("SELECT id, title, cta, label FROM %s ORDER BY rowid", table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []thinRow
	for rows.Next() {
		var t thinRow
		if err := rows.Scan(&t.id, &t.title, &t.cta, &t.label); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) loadPrograms(ctx context.Context) ([]models.Program, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT id, title, summary, channel, episode_id, series_id,
		       week_offset_ms, duration_seconds
		FROM programs ORDER BY week_offset_ms, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query programs: %w", err)
	}
	defer rows.Close()

	var out []models.Program
	for rows.Next() {
		var p models.Program
		err := rows.Scan(&p.ID, &p.Title, &p.Summary, &p.Channel, &p.EpisodeID,
			&p.SeriesID, &p.WeekOffsetMillis, &p.DurationInSeconds)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveAll replaces the snapshot contents inside one transaction.
func (r *CatalogRepository) SaveAll(ctx context.Context, snap models.Snapshot) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"episodes", "series", "channels", "genres", "seasons", "programs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, e := range snap.Episodes {
		var air any
		if e.AirTimestamp != nil {
			air = *e.AirTimestamp
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO episodes (id, title, summary, genre, channel, series_id,
				season_number, episode_number, duration_seconds, stream_url,
				air_timestamp, cta, label)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.Summary, e.Genre, e.Channel, e.SeriesID,
			e.SeasonNumber, e.EpisodeNumber, e.DurationInSeconds, e.StreamURL,
			air, e.CTA, e.Label)
		if err != nil {
			return fmt.Errorf("insert episode %s: %w", e.ID, err)
		}
	}

	for _, s := range snap.Series {
		var starts any
		if s.StartsOnTimestamp != nil {
			starts = *s.StartsOnTimestamp
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO series (id, title, summary, genre, channel,
				starts_on_timestamp, cta, label)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID, s.Title, s.Summary, s.Genre, s.Channel, starts, s.CTA, s.Label)
		if err != nil {
			return fmt.Errorf("insert series %s: %w", s.ID, err)
		}
	}

	insertThin := func(table, id, title, cta, label string) error {
		_, err := tx.ExecContext(ctx,
			fmt.Sprintf("INSERT INTO %s (id, title, cta, label) VALUES (?, ?, ?, ?)", table),
			id, title, cta, label)
		if err != nil {
			return fmt.Errorf("insert %s %s: %w", table, id, err)
		}
		return nil
	}
	for _, c := range snap.Channels {
		if err := insertThin("channels", c.ID, c.Title, c.CTA, c.Label); err != nil {
			return err
		}
	}
	for _, g := range snap.Genres {
		if err := insertThin("genres", g.ID, g.Title, g.CTA, g.Label); err != nil {
			return err
		}
	}
	for _, s := range snap.Seasons {
		if err := insertThin("seasons", s.ID, s.Title, s.CTA, s.Label); err != nil {
			return err
		}
	}

	for _, p := range snap.Programs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO programs (id, title, summary, channel, episode_id,
				series_id, week_offset_ms, duration_seconds)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Summary, p.Channel, p.EpisodeID, p.SeriesID,
			p.WeekOffsetMillis, p.DurationInSeconds)
		if err != nil {
			return fmt.Errorf("insert program %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}
