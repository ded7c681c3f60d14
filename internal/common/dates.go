package common

import "time"

// DayLayout is the wire format for calendar dates on the HTTP surface.
const DayLayout = "2006-01-02"

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in UTC.
func Today() time.Time {
	return Day(time.Now())
}

// ParseDay parses a YYYY-MM-DD string into a UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// ClampToDay returns t capped at max, both truncated to calendar days.
func ClampToDay(t, max time.Time) time.Time {
	t = Day(t)
	max = Day(max)
	if t.After(max) {
		return max
	}
	return t
}

// TrailingWindow returns the [end-days, end] calendar-day window.
func TrailingWindow(end time.Time, days int) (time.Time, time.Time) {
	end = Day(end)
	return end.AddDate(0, 0, -days), end
}
