package timetext

import "time"

// Stateless calendar arithmetic. Every function takes and returns plain
// values; there is no shared scratch state.

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonths shifts t by the given number of months, clamping the day to
// the last day of the target month instead of letting it overflow.
func addMonths(t time.Time, months int) time.Time {
	result := t.AddDate(0, months, 0)
	// AddDate normalizes Jan 31 + 1 month into March; pull it back to the
	// last day of the intended month.
	if result.Day() < t.Day() {
		result = result.AddDate(0, 0, -result.Day())
	}
	return result
}

// addYears shifts t by whole years with the same day clamping (Feb 29 on
// a non-leap target year becomes Feb 28).
func addYears(t time.Time, years int) time.Time {
	result := t.AddDate(years, 0, 0)
	if result.Day() < t.Day() {
		result = result.AddDate(0, 0, -result.Day())
	}
	return result
}

// nthWeekdayOfMonth returns the date of the n-th (1-based) occurrence of
// weekday in the month containing t, preserving t's clock and location.
func nthWeekdayOfMonth(t time.Time, n int, weekday time.Weekday) time.Time {
	hour, min, sec := t.Clock()
	first := time.Date(t.Year(), t.Month(), 1, hour, min, sec, t.Nanosecond(), t.Location())
	shift := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, shift+(n-1)*7)
}

// lastOfMonthMinus returns the date days before the last day of the month
// containing t, preserving t's clock and location.
func lastOfMonthMinus(t time.Time, days int) time.Time {
	hour, min, sec := t.Clock()
	last := daysInMonth(t.Year(), t.Month())
	return time.Date(t.Year(), t.Month(), last-days, hour, min, sec, t.Nanosecond(), t.Location())
}

// nearestWeekday shifts t to the closest date with the given weekday,
// at most three days in either direction.
func nearestWeekday(t time.Time, weekday time.Weekday) time.Time {
	diff := (int(weekday) - int(t.Weekday()) + 7) % 7
	if diff > 3 {
		diff -= 7
	}
	return t.AddDate(0, 0, diff)
}
