package models

// Program is an EPG entry on a channel. The catalog stores a repeating
// weekly schedule: each program carries an offset from the start of the
// week instead of an absolute air time. AirTimestamp and IsLive are derived
// per query from the caller's reference instant and time zone.
type Program struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Summary           string `json:"summary,omitempty"`
	Channel           string `json:"channel,omitempty"`
	EpisodeID         string `json:"episodeId,omitempty"`
	SeriesID          string `json:"seriesId,omitempty"`
	WeekOffsetMillis  int64  `json:"weekOffsetMillis"`
	DurationInSeconds int    `json:"durationInSeconds,omitempty"`
	AirTimestamp      int64  `json:"airTimestamp,omitempty"` // derived: week start + offset
	IsLive            bool   `json:"isLive"`                 // derived per query
}

func (p Program) RecordID() string      { return p.ID }
func (p Program) RecordKind() string    { return KindProgram }
func (p Program) RecordTitle() string   { return p.Title }
func (p Program) RecordSummary() string { return p.Summary }

func (p Program) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "type":
		return KindProgram, true
	case "title":
		return p.Title, true
	case "summary":
		return p.Summary, true
	case "channel":
		return p.Channel, true
	case "episodeId":
		return p.EpisodeID, true
	case "seriesId":
		return p.SeriesID, true
	case "durationInSeconds":
		return p.DurationInSeconds, true
	case "airTimestamp":
		if p.AirTimestamp == 0 {
			return nil, false
		}
		return p.AirTimestamp, true
	case "isLive":
		return p.IsLive, true
	}
	return nil, false
}

// EndTimestamp is the program's derived end instant in epoch millis.
// Only meaningful after the program has been placed into the current week.
func (p Program) EndTimestamp() int64 {
	return p.AirTimestamp + int64(p.DurationInSeconds)*1000
}

// EPGMode selects a temporal slice of the program guide.
type EPGMode string

const (
	EPGModeNone         EPGMode = ""
	EPGModeNow          EPGMode = "now"
	EPGModeUpNext       EPGMode = "upNext"
	EPGModeJustEnded    EPGMode = "justEnded"
	EPGModeForDay       EPGMode = "forDay"
	EPGModeFutureForDay EPGMode = "futureForDay"
)

// ParseEPGMode maps a caller-supplied mode string onto an EPGMode.
// Unrecognized values mean "no temporal filtering".
func ParseEPGMode(s string) EPGMode {
	switch EPGMode(s) {
	case EPGModeNow, EPGModeUpNext, EPGModeJustEnded, EPGModeForDay, EPGModeFutureForDay:
		return EPGMode(s)
	}
	return EPGModeNone
}
