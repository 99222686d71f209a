package models

// Episode is a single playable catalog item.
type Episode struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Summary           string `json:"summary,omitempty"`
	Genre             string `json:"genre,omitempty"`
	Channel           string `json:"channel,omitempty"`
	SeriesID          string `json:"seriesId,omitempty"`
	SeasonNumber      int    `json:"seasonNumber,omitempty"`
	EpisodeNumber     int    `json:"episodeNumber,omitempty"`
	DurationInSeconds int    `json:"durationInSeconds,omitempty"`
	StreamURL         string `json:"streamUrl,omitempty"`
	AirTimestamp      *int64 `json:"airTimestamp,omitempty"` // epoch millis
	IsLive            bool   `json:"isLive"`                 // recomputed per query, never persisted
	CTA               string `json:"cta,omitempty"`
	Label             string `json:"label,omitempty"`
}

func (e Episode) RecordID() string      { return e.ID }
func (e Episode) RecordKind() string    { return KindEpisode }
func (e Episode) RecordTitle() string   { return e.Title }
func (e Episode) RecordSummary() string { return e.Summary }

func (e Episode) Field(name string) (any, bool) {
	switch name {
	case "id":
		return e.ID, true
	case "type":
		return KindEpisode, true
	case "title":
		return e.Title, true
	case "summary":
		return e.Summary, true
	case "genre":
		return e.Genre, true
	case "channel":
		return e.Channel, true
	case "seriesId":
		return e.SeriesID, true
	case "seasonNumber":
		return e.SeasonNumber, true
	case "episodeNumber":
		return e.EpisodeNumber, true
	case "durationInSeconds":
		return e.DurationInSeconds, true
	case "streamUrl":
		return e.StreamURL, true
	case "airTimestamp":
		if e.AirTimestamp == nil {
			return nil, false
		}
		return *e.AirTimestamp, true
	case "isLive":
		return e.IsLive, true
	case "cta":
		return e.CTA, true
	case "label":
		return e.Label, true
	}
	return nil, false
}

// Series groups episodes. StartsOnTimestamp distinguishes "coming soon"
// titles from ones that already aired.
type Series struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Summary           string `json:"summary,omitempty"`
	Genre             string `json:"genre,omitempty"`
	Channel           string `json:"channel,omitempty"`
	StartsOnTimestamp *int64 `json:"startsOnTimestamp,omitempty"` // epoch millis
	CTA               string `json:"cta,omitempty"`
	Label             string `json:"label,omitempty"`
}

func (s Series) RecordID() string      { return s.ID }
func (s Series) RecordKind() string    { return KindSeries }
func (s Series) RecordTitle() string   { return s.Title }
func (s Series) RecordSummary() string { return s.Summary }

func (s Series) Field(name string) (any, bool) {
	switch name {
	case "id":
		return s.ID, true
	case "type":
		return KindSeries, true
	case "title":
		return s.Title, true
	case "summary":
		return s.Summary, true
	case "genre":
		return s.Genre, true
	case "channel":
		return s.Channel, true
	case "startsOnTimestamp":
		if s.StartsOnTimestamp == nil {
			return nil, false
		}
		return *s.StartsOnTimestamp, true
	case "cta":
		return s.CTA, true
	case "label":
		return s.Label, true
	}
	return nil, false
}

// Channel is a thin reference entity pointing at a linear channel.
type Channel struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	CTA   string `json:"cta,omitempty"`
	Label string `json:"label,omitempty"`
}

func (c Channel) RecordID() string      { return c.ID }
func (c Channel) RecordKind() string    { return KindChannel }
func (c Channel) RecordTitle() string   { return c.Title }
func (c Channel) RecordSummary() string { return "" }

func (c Channel) Field(name string) (any, bool) {
	return thinField(name, KindChannel, c.ID, c.Title, c.CTA, c.Label)
}

// Genre is a thin reference entity naming a content genre.
type Genre struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	CTA   string `json:"cta,omitempty"`
	Label string `json:"label,omitempty"`
}

func (g Genre) RecordID() string      { return g.ID }
func (g Genre) RecordKind() string    { return KindGenre }
func (g Genre) RecordTitle() string   { return g.Title }
func (g Genre) RecordSummary() string { return "" }

func (g Genre) Field(name string) (any, bool) {
	return thinField(name, KindGenre, g.ID, g.Title, g.CTA, g.Label)
}

// Season is a thin reference entity for a season of a series.
type Season struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	CTA   string `json:"cta,omitempty"`
	Label string `json:"label,omitempty"`
}

func (s Season) RecordID() string      { return s.ID }
func (s Season) RecordKind() string    { return KindSeason }
func (s Season) RecordTitle() string   { return s.Title }
func (s Season) RecordSummary() string { return "" }

func (s Season) Field(name string) (any, bool) {
	return thinField(name, KindSeason, s.ID, s.Title, s.CTA, s.Label)
}

func thinField(name, kind, id, title, cta, label string) (any, bool) {
	switch name {
	case "id":
		return id, true
	case "type":
		return kind, true
	case "title":
		return title, true
	case "cta":
		return cta, true
	case "label":
		return label, true
	}
	return nil, false
}
