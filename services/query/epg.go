package query

import (
	"time"

	"screenfeed/models"
)

// WeekStart returns the most recent Monday 00:00 in loc at or before now.
// The catalog expresses a repeating weekly schedule, so programs are placed
// relative to this instant rather than carrying absolute dates.
func WeekStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	daysSinceMonday := (int(local.Weekday()) + 6) % 7
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, -daysSinceMonday)
}

// Place derives every program's airTimestamp from its stored weekly offset
// and the week containing now in loc. Non-program records pass through
// untouched.
func Place(records []models.Record, now time.Time, loc *time.Location) []models.Record {
	weekStart := WeekStart(now, loc).UnixMilli()
	out := make([]models.Record, len(records))
	for i, rec := range records {
		if p, ok := rec.(models.Program); ok {
			p.AirTimestamp = weekStart + p.WeekOffsetMillis
			rec = p
		}
		out[i] = rec
	}
	return out
}

// Annotate recomputes isLive for every record carrying an air window:
// a record is live iff airTimestamp <= now <= airTimestamp + duration.
// isLive is never trusted from the snapshot; it is derived here on every
// query so the value can not go stale.
func Annotate(records []models.Record, now time.Time) []models.Record {
	nowMillis := now.UnixMilli()
	out := make([]models.Record, len(records))
	for i, rec := range records {
		switch r := rec.(type) {
		case models.Program:
			r.IsLive = r.AirTimestamp <= nowMillis && nowMillis <= r.EndTimestamp()
			rec = r
		case models.Episode:
			r.IsLive = false
			if r.AirTimestamp != nil {
				air := *r.AirTimestamp
				end := air + int64(r.DurationInSeconds)*1000
				r.IsLive = air <= nowMillis && nowMillis <= end
			}
			rec = r
		}
		out[i] = rec
	}
	return out
}

// FilterByMode applies the selected temporal slice to an annotated,
// placed sequence. Records without an air window never match a mode.
func FilterByMode(records []models.Record, mode models.EPGMode, now time.Time, referenceDay *int64, loc *time.Location) []models.Record {
	if mode == models.EPGModeNone {
		return records
	}

	nowMillis := now.UnixMilli()
	refMillis := nowMillis
	if referenceDay != nil {
		refMillis = *referenceDay
	}

	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		air, end, ok := airWindow(rec)
		if !ok {
			continue
		}
		switch mode {
		case models.EPGModeNow:
			if isLive(rec) {
				out = append(out, rec)
			}
		case models.EPGModeUpNext:
			if air >= nowMillis {
				out = append(out, rec)
			}
		case models.EPGModeJustEnded:
			// The first clause is implied by the second but is kept as
			// the documented boundary condition.
			if air <= nowMillis && end <= nowMillis {
				out = append(out, rec)
			}
		case models.EPGModeForDay:
			if sameDay(air, refMillis, loc) {
				out = append(out, rec)
			}
		case models.EPGModeFutureForDay:
			if sameDay(air, refMillis, loc) && air >= nowMillis {
				out = append(out, rec)
			}
		}
	}

	// justEnded surfaces the most recently ended program first. Programs
	// arrive in schedule order, so reversing gives the recency order the
	// player expects.
	if mode == models.EPGModeJustEnded {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func airWindow(rec models.Record) (air, end int64, ok bool) {
	switch r := rec.(type) {
	case models.Program:
		return r.AirTimestamp, r.EndTimestamp(), true
	case models.Episode:
		if r.AirTimestamp == nil {
			return 0, 0, false
		}
		air = *r.AirTimestamp
		return air, air + int64(r.DurationInSeconds)*1000, true
	}
	return 0, 0, false
}

func isLive(rec models.Record) bool {
	v, ok := rec.Field("isLive")
	if !ok {
		return false
	}
	live, _ := v.(bool)
	return live
}

// sameDay reports whether two instants fall on the same day of year in loc.
func sameDay(aMillis, bMillis int64, loc *time.Location) bool {
	a := time.UnixMilli(aMillis).In(loc)
	b := time.UnixMilli(bMillis).In(loc)
	return a.YearDay() == b.YearDay()
}
