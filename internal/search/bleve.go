// Package search provides approximate text matching over catalog records.
// The scoring backend (bleve) is an implementation detail behind the Doc
// ranking contract: exact and substring hits outrank fuzzy hits, and score
// ties keep input order.
package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/mozillazg/go-unidecode"
)

// Doc is the searchable projection of a catalog record.
type Doc struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

const (
	boostExact     = 10.0
	boostSubstring = 5.0
)

// BleveMatcher ranks docs with a memory-only bleve index built over the
// sequence it is given. Catalogs are small enough that indexing per search
// is cheap, and it keeps the matcher stateless across queries.
type BleveMatcher struct{}

func NewBleveMatcher() *BleveMatcher {
	return &BleveMatcher{}
}

// Search returns the indexes of docs matching q, best match first. Score
// ties fall back to input order. No matches yields an empty slice.
func (m *BleveMatcher) Search(docs []Doc, q string) ([]int, error) {
	q = fold(q)
	if q == "" {
		return nil, nil
	}

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("build search index: %w", err)
	}
	defer idx.Close()

	batch := idx.NewBatch()
	for i, d := range docs {
		err := batch.Index(docID(i), map[string]string{
			"id":      fold(d.ID),
			"title":   fold(d.Title),
			"summary": fold(d.Summary),
		})
		if err != nil {
			return nil, fmt.Errorf("index doc %d: %w", i, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("index batch: %w", err)
	}

	req := bleve.NewSearchRequest(buildQuery(q))
	req.Size = len(docs)
	// Ordinal doc IDs make the secondary _id sort equal input order.
	req.SortBy([]string{"-_score", "_id"})

	res, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	out := make([]int, 0, len(res.Hits))
	for _, hit := range res.Hits {
		i, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue
		}
		out = append(out, i)
	}
	return out, nil
}

// buildQuery layers three match strategies so exact hits always score
// above fuzzy ones: a boosted phrase match, boosted per-field substring
// wildcards, and an edit-distance-1 fuzzy match as the floor.
func buildQuery(q string) query.Query {
	exact := bleve.NewMatchPhraseQuery(q)
	exact.SetBoost(boostExact)

	parts := []query.Query{exact}
	wildcard := "*" + strings.ToLower(q) + "*"
	for _, field := range []string{"id", "title", "summary"} {
		sub := bleve.NewWildcardQuery(wildcard)
		sub.SetField(field)
		sub.SetBoost(boostSubstring)
		parts = append(parts, sub)
	}

	fuzzy := bleve.NewMatchQuery(q)
	fuzzy.SetFuzziness(1)
	parts = append(parts, fuzzy)

	return bleve.NewDisjunctionQuery(parts...)
}

func docID(i int) string {
	return fmt.Sprintf("%08d", i)
}

// fold flattens text to trimmed ASCII so accented titles match unaccented
// queries and vice versa.
func fold(s string) string {
	return strings.TrimSpace(unidecode.Unidecode(s))
}
