package stats

import "time"

// Date-range helpers shared by the CLI filters and the dashboard.

// WeekRange returns Monday 00:00:00 through Sunday 23:59:59 of now's week.
func WeekRange(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	offset := int(today.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday
	}
	start := today.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end
}

// MonthRange returns the first instant of now's month and one second before
// the next month.
func MonthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// YearRange returns Jan 1 00:00:00 through Dec 31 23:59:59 of now's year.
func YearRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, now.Location())
	return start, end
}

// TrailingRange returns the window starting days before now at midnight and
// ending at now.
func TrailingRange(now time.Time, days int) (time.Time, time.Time) {
	start := now.AddDate(0, 0, -days)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	return start, now
}
