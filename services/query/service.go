// Package query implements the feed query engine: predicate filtering,
// fuzzy text search, multi-key sorting, EPG temporal classification and
// pagination over an immutable catalog sequence. Every stage is pure; the
// reference instant is captured once per Execute call and threaded through,
// so concurrent queries need no locking and tests can inject any instant.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"screenfeed/internal/search"
	"screenfeed/models"
)

// Matcher is the pluggable approximate-string-matching capability. It
// returns the indexes of docs matching the query, best match first, with
// score ties in input order.
type Matcher interface {
	Search(docs []search.Doc, query string) ([]int, error)
}

var _ Matcher = (*search.BleveMatcher)(nil)

// Service evaluates declarative queries against catalog sequences.
type Service struct {
	matcher     Matcher
	defaultZone *time.Location
	log         *logrus.Entry
}

// NewService builds a query service. defaultTZ is the zone used when a
// query supplies none; empty or unknown names mean UTC.
func NewService(matcher Matcher, defaultTZ string) *Service {
	s := &Service{
		matcher:     matcher,
		defaultZone: time.UTC,
		log:         logrus.WithField("component", "query"),
	}
	if defaultTZ != "" {
		loc, err := time.LoadLocation(defaultTZ)
		if err != nil {
			s.log.WithField("tz", defaultTZ).Warn("unknown default time zone, falling back to UTC")
		} else {
			s.defaultZone = loc
		}
	}
	return s
}

// Execute runs the query pipeline: place programs into the current week,
// annotate live status, filter by predicates, rank by text match, sort,
// apply the EPG mode, then window the result. now is the single reference
// instant for the whole evaluation.
func (s *Service) Execute(records []models.Record, q models.Query, now time.Time) (models.QueryResult, error) {
	loc := s.loadZone(q.TimeZone)

	seq := Place(records, now, loc)
	seq = Annotate(seq, now)
	seq = Filter(seq, q.Predicates)

	if strings.TrimSpace(q.Text) != "" {
		ranked, err := s.searchStage(seq, q.Text)
		if err != nil {
			return models.QueryResult{}, fmt.Errorf("text search: %w", err)
		}
		seq = ranked
	}

	seq = Sort(seq, q.SortKeys)
	seq = FilterByMode(seq, q.EPGMode, now, q.EPGReferenceDay, loc)

	// EPG queries express their window as a flat limit instead of
	// page/perPage arithmetic.
	if q.Limit > 0 {
		return models.QueryResult{Items: Limit(seq, q.Limit)}, nil
	}

	items, nextPage := Paginate(seq, q.Page, q.PerPage, q.MaxPage)
	result := models.QueryResult{Items: items}
	if nextPage > 0 {
		result.NextPage = &nextPage
	}
	return result, nil
}

func (s *Service) searchStage(records []models.Record, text string) ([]models.Record, error) {
	docs := make([]search.Doc, len(records))
	for i, rec := range records {
		docs[i] = search.Doc{
			ID:      rec.RecordID(),
			Title:   rec.RecordTitle(),
			Summary: rec.RecordSummary(),
		}
	}

	ranked, err := s.matcher.Search(docs, text)
	if err != nil {
		return nil, err
	}

	out := make([]models.Record, 0, len(ranked))
	for _, i := range ranked {
		if i < 0 || i >= len(records) {
			continue
		}
		out = append(out, records[i])
	}
	return out, nil
}

func (s *Service) loadZone(name string) *time.Location {
	if name == "" {
		return s.defaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		s.log.WithField("tz", name).Warn("unknown time zone, falling back to default")
		return s.defaultZone
	}
	return loc
}
