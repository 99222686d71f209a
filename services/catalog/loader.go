package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"screenfeed/internal/database"
	"screenfeed/models"
)

const (
	fetchTimeout  = 30 * time.Second
	fetchAttempts = 4
)

// Load reads a catalog snapshot from the configured source: an HTTP(S) URL,
// a JSON fixture file, or a SQLite snapshot database. A load failure is
// fatal at startup; there is no per-query fallback.
func Load(ctx context.Context, fsys afero.Fs, source string) (models.Snapshot, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return Fetch(ctx, source)
	case strings.HasSuffix(source, ".json"):
		return LoadFile(fsys, source)
	default:
		return LoadDB(ctx, source)
	}
}

// LoadFile decodes a JSON snapshot fixture.
func LoadFile(fsys afero.Fs, path string) (models.Snapshot, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var snap models.Snapshot
	dec := json.NewDecoder(f)
	if err := dec.Decode(&snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snap, nil
}

// LoadDB reads a snapshot out of a SQLite catalog database.
func LoadDB(ctx context.Context, path string) (models.Snapshot, error) {
	db, err := database.NewDB(database.Config{DatabasePath: path})
	if err != nil {
		return models.Snapshot{}, err
	}
	defer db.Close()
	return db.Repository.LoadAll(ctx)
}

// Fetch downloads a JSON snapshot from a remote URL, retrying transient
// failures. Used when the catalog is published by an upstream pipeline.
func Fetch(ctx context.Context, url string) (models.Snapshot, error) {
	log := logrus.WithField("component", "catalog")
	client := &http.Client{Timeout: fetchTimeout}

	var snap models.Snapshot
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("snapshot fetch returned HTTP %d", resp.StatusCode)
			}
			snap = models.Snapshot{}
			return json.NewDecoder(resp.Body).Decode(&snap)
		},
		retry.Attempts(fetchAttempts),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			log.WithError(err).Warnf("snapshot fetch attempt %d failed, retrying", n+1)
		}),
	)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch snapshot %s: %w", url, err)
	}
	return snap, nil
}
