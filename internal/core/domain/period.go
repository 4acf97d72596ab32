package domain

import "time"

// Period math for analytics bucketing. Every function takes the location
// explicitly: one aggregation call must do all of its boundary math in a
// single zone or day buckets drift by one around midnight.

// StartOfDay truncates t to local midnight in loc. Day buckets are half-open:
// [StartOfDay, StartOfDay+24h).
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// NextDay returns the exclusive end of the day bucket containing t.
func NextDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1)
}

// EndOfDay returns the last representable millisecond of the day, 23:59:59.999.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, loc)
}

// WeekRange returns the Monday-first week containing t. A Sunday closes the
// week it belongs to, so it shifts back six days to reach that week's Monday.
// The end is Sunday 23:59:59.999.
func WeekRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	day := StartOfDay(t, loc)

	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}

	monday := day.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	return monday, EndOfDay(sunday, loc)
}

// MonthRange returns the calendar month monthsAgo months before the month
// containing t, as [first of month 00:00, first of next month).
func MonthRange(t time.Time, monthsAgo int, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	start := first.AddDate(0, -monthsAgo, 0)
	return start, start.AddDate(0, 1, 0)
}
