// Package catalog holds the immutable in-memory catalog snapshot and the
// loaders that populate it once at process start.
package catalog

import (
	"errors"
	"fmt"

	"screenfeed/models"
)

// ErrCollectionNotFound is returned for grouping names the catalog does not
// define. There is no sensible empty-result fallback for a request naming a
// nonexistent grouping, so this surfaces to the caller as "not found".
var ErrCollectionNotFound = errors.New("collection not found")

// Collection is a predefined grouping: a saved query over one record kind.
type Collection struct {
	Name  string
	Kind  string
	Query models.Query
}

var builtinCollections = []Collection{
	{
		Name:  "live-now",
		Kind:  models.KindEpisode,
		Query: models.Query{Predicates: map[string]string{"isLive": "true"}},
	},
	{
		Name:  "recently-aired",
		Kind:  models.KindEpisode,
		Query: models.Query{SortKeys: []string{"airTimestamp:desc"}},
	},
	{
		Name:  "coming-soon",
		Kind:  models.KindSeries,
		Query: models.Query{SortKeys: []string{"startsOnTimestamp"}},
	},
	{
		Name:  "guide-now",
		Kind:  models.KindProgram,
		Query: models.Query{EPGMode: models.EPGModeNow, Limit: 100},
	},
}

// Store is the process-wide catalog. It is built once from a snapshot and
// never mutated, so any number of queries may read it concurrently without
// locking.
type Store struct {
	records     []models.Record
	byKind      map[string][]models.Record
	byKey       map[string]models.Record
	collections map[string]Collection
}

// NewStore indexes a snapshot into an immutable store.
func NewStore(snap models.Snapshot) *Store {
	records := snap.Records()
	s := &Store{
		records:     records,
		byKind:      make(map[string][]models.Record),
		byKey:       make(map[string]models.Record, len(records)),
		collections: make(map[string]Collection, len(builtinCollections)),
	}
	for _, rec := range records {
		kind := rec.RecordKind()
		s.byKind[kind] = append(s.byKind[kind], rec)
		s.byKey[models.Key(rec)] = rec
	}
	for _, c := range builtinCollections {
		s.collections[c.Name] = c
	}
	return s
}

// Records returns every record in catalog order. Callers must not modify
// the returned slice.
func (s *Store) Records() []models.Record {
	return s.records
}

// ByKind returns all records of one kind in catalog order.
func (s *Store) ByKind(kind string) []models.Record {
	return s.byKind[kind]
}

// Get looks a record up by its kind-scoped id.
func (s *Store) Get(kind, id string) (models.Record, bool) {
	rec, ok := s.byKey[kind+":"+id]
	return rec, ok
}

// Collection resolves a predefined grouping by name.
func (s *Store) Collection(name string) (Collection, error) {
	c, ok := s.collections[name]
	if !ok {
		return Collection{}, fmt.Errorf("%q: %w", name, ErrCollectionNotFound)
	}
	return c, nil
}

// Len reports the total record count.
func (s *Store) Len() int {
	return len(s.records)
}
