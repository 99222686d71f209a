package query

import "screenfeed/models"

const (
	// DefaultPerPage is the page size when the caller supplies none.
	DefaultPerPage = 20
	// MaxPerPage caps the page size regardless of what the caller asks
	// for, bounding response size.
	MaxPerPage = 100
	// DefaultMaxPage bounds how deep a caller may page.
	DefaultMaxPage = 100
	// MaxEPGLimit caps the flat result window of EPG queries.
	MaxEPGLimit = 100
)

// Paginate slices the visible page out of an ordered result set.
// Zero or negative inputs fall back to the defaults. nextPage is 0 when no
// further page exists, either because the records ran out or because the
// next page would exceed maxPage. page > maxPage is a valid empty result,
// not an error.
func Paginate(records []models.Record, page, perPage, maxPage int) (items []models.Record, nextPage int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if maxPage < 1 {
		maxPage = DefaultMaxPage
	}

	if page > maxPage {
		return []models.Record{}, 0
	}

	start := (page - 1) * perPage
	if start >= len(records) {
		return []models.Record{}, 0
	}
	end := start + perPage
	if end > len(records) {
		end = len(records)
	}

	if page < maxPage && len(records) > page*perPage {
		nextPage = page + 1
	}
	return records[start:end], nextPage
}

// Limit truncates an ordered result set to a flat window, as used by EPG
// queries in place of page arithmetic. limit < 1 means the full capped
// window.
func Limit(records []models.Record, limit int) []models.Record {
	if limit < 1 || limit > MaxEPGLimit {
		limit = MaxEPGLimit
	}
	if len(records) <= limit {
		return records
	}
	return records[:limit]
}
