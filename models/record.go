package models

// Catalog record kinds.
const (
	KindEpisode = "episode"
	KindSeries  = "series"
	KindChannel = "channel"
	KindGenre   = "genre"
	KindSeason  = "season"
	KindProgram = "program"
)

// Record is any catalog entity served through the feed surface.
// Implementations are plain value structs; the catalog snapshot hands out
// copies, so annotating a record (isLive, placed air times) never mutates
// the store.
type Record interface {
	// RecordID is unique within the record's kind. Cross-kind collisions
	// are allowed (kinds are separate namespaces).
	RecordID() string
	RecordKind() string
	RecordTitle() string
	RecordSummary() string
	// Field resolves a named attribute for predicate and sort evaluation.
	// ok is false when the record's kind does not carry the field or the
	// optional field is unset.
	Field(name string) (any, bool)
}

// Key returns the kind-scoped identity of a record.
func Key(r Record) string {
	return r.RecordKind() + ":" + r.RecordID()
}

// Snapshot is the full catalog as loaded from an external source. It is
// read once at startup and never modified afterwards.
type Snapshot struct {
	Episodes []Episode `json:"episodes"`
	Series   []Series  `json:"series"`
	Channels []Channel `json:"channels"`
	Genres   []Genre   `json:"genres"`
	Seasons  []Season  `json:"seasons"`
	Programs []Program `json:"programs"`
}

// Records flattens the snapshot into catalog order: episodes, series,
// channels, genres, seasons, programs. This order is the tie-break of
// last resort for search and sort, so it must be deterministic.
func (s Snapshot) Records() []Record {
	out := make([]Record, 0, s.Len())
	for _, e := range s.Episodes {
		out = append(out, e)
	}
	for _, sr := range s.Series {
		out = append(out, sr)
	}
	for _, c := range s.Channels {
		out = append(out, c)
	}
	for _, g := range s.Genres {
		out = append(out, g)
	}
	for _, se := range s.Seasons {
		out = append(out, se)
	}
	for _, p := range s.Programs {
		out = append(out, p)
	}
	return out
}

// Len reports the total number of records in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Episodes) + len(s.Series) + len(s.Channels) +
		len(s.Genres) + len(s.Seasons) + len(s.Programs)
}
