package daystore

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey formats the calendar date of t, as seen in loc, as YYYY-MM-DD.
// A nil loc means t's own location.
func DayKey(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(dayKeyLayout)
}

// StartOfDay returns midnight of t's calendar date in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDayKey is the inverse of DayKey.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(dayKeyLayout, key, loc)
}

// MonthGrid lays out the month containing month for a Sunday-first
// calendar: nil cells pad the first week, then one entry per day.
func MonthGrid(month time.Time) []*time.Time {
	y, m, _ := month.Date()
	loc := month.Location()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	days := time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()

	lead := int(first.Weekday())
	out := make([]*time.Time, 0, lead+days)
	for i := 0; i < lead; i++ {
		out = append(out, nil)
	}
	for d := 1; d <= days; d++ {
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		out = append(out, &day)
	}
	return out
}
