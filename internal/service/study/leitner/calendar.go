package leitner

import "time"

// DateLayout is the calendar-date key format used in activity maps.
const DateLayout = "2006-01-02"

// DayStart returns the start of the day containing now in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// AddDays moves a day boundary by n calendar days in tz.
// AddDate keeps local midnight across DST changes, Add(24h) does not.
func AddDays(dayStart time.Time, n int, tz *time.Location) time.Time {
	next := dayStart.In(tz).AddDate(0, 0, n)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, tz).UTC()
}

// DateKey formats t as a calendar date in tz.
func DateKey(t time.Time, tz *time.Location) string {
	return t.In(tz).Format(DateLayout)
}
