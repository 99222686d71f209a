package models

// Query is a declarative request against a catalog sequence. Zero values
// mean "unset": the engine falls back to its documented defaults rather
// than erroring on missing or malformed input.
type Query struct {
	// Predicates maps field names to expected values as supplied by the
	// caller. Values arrive as strings; the predicate engine applies the
	// boolean and numeric coercions before comparing.
	Predicates map[string]string `json:"predicates,omitempty"`

	// Text is the free-text search query. Empty means no text filtering.
	Text string `json:"q,omitempty"`

	// SortKeys are field names in priority order, each optionally
	// suffixed ":desc".
	SortKeys []string `json:"sort,omitempty"`

	Page    int `json:"page,omitempty"`
	PerPage int `json:"perPage,omitempty"`
	MaxPage int `json:"maxPage,omitempty"`

	// Limit replaces page/perPage for EPG queries (flat window, capped).
	Limit int `json:"limit,omitempty"`

	EPGMode EPGMode `json:"epgMode,omitempty"`
	// EPGReferenceDay anchors the forDay/futureForDay modes, epoch millis.
	EPGReferenceDay *int64 `json:"epgReferenceDay,omitempty"`

	// TimeZone is an IANA zone name for program placement and day
	// comparisons. Empty means UTC.
	TimeZone string `json:"tz,omitempty"`
}

// QueryResult is the ordered page handed to the rendering layer.
type QueryResult struct {
	Items []Record `json:"items"`
	// NextPage is set iff a further page exists within maxPage.
	NextPage *int `json:"nextPage,omitempty"`
}
