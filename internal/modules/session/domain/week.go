package domain

import "time"

// WeekStart returns midnight of the Sunday beginning the week containing t,
// in t's location. The weekly chart runs Sunday through Saturday.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeeklyMinutes buckets records into per-day studied-minute totals for the
// week starting at weekStart. Records outside the week are ignored.
func WeeklyMinutes(records []Record, weekStart time.Time) [7]int {
	var days [7]int
	weekEnd := weekStart.AddDate(0, 0, 7)
	for _, r := range records {
		at := r.OccurredAt.In(weekStart.Location())
		if at.Before(weekStart) || !at.Before(weekEnd) {
			continue
		}
		day := int(at.Sub(weekStart).Hours() / 24)
		if day >= 0 && day < 7 {
			days[day] += r.MinutesStudied
		}
	}
	return days
}
