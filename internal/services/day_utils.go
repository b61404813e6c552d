package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween counts whole calendar days from a to b; negative when b is
// earlier. The calendar dates are re-anchored in UTC so DST transitions in
// the configured location cannot skew the count.
func DaysBetween(a time.Time, b time.Time) int {
	from := utcMidnight(a)
	to := utcMidnight(b)
	return int(to.Sub(from).Hours() / 24)
}

func utcMidnight(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
