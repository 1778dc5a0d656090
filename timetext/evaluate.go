package timetext

import (
	"time"
)

// Resolve evaluates the relative instant against a reference point.
// Calendar fields start from the reference and each present field
// overwrites its component, coarsest to finest. The evaluation policy
// then pins the result on the requested side of the reference by
// stepping the coarsest implied unit.
func (r Relative) Resolve(reference time.Time) time.Time {
	loc := reference.Location()
	if r.hasZone && r.loc != nil {
		loc = r.loc
	}
	ref := reference.In(loc)

	c := r.substitute(ref, loc)
	switch r.policy {
	case PolicyPast:
		return r.floorTo(c, ref)
	case PolicyFuture:
		return r.ceilTo(c, ref)
	default:
		floor := r.floorTo(c, ref)
		ceil := r.ceilTo(c, ref)
		if ref.Sub(floor) < ceil.Sub(ref) {
			return floor
		}
		return ceil
	}
}

// substitute overwrites the reference's calendar components with the
// present fields.
func (r Relative) substitute(ref time.Time, loc *time.Location) time.Time {
	year := ref.Year()
	month := int(ref.Month()) - 1
	day := ref.Day()
	hour, minute, second := ref.Hour(), ref.Minute(), ref.Second()
	nsec := ref.Nanosecond()

	if e, ok := r.src.lookup(FieldYear); ok {
		if e.note.width == 2 {
			year = windowYear(e.Value, ref.Year())
		} else {
			year = e.Value
		}
	}
	if e, ok := r.src.lookup(FieldMonth); ok {
		month = e.Value
	}
	if e, ok := r.src.lookup(FieldDay); ok {
		day = e.Value
	}
	if e, ok := r.src.lookup(FieldHour); ok {
		hour = r.resolveHour(e.Value, ref.Hour())
	}
	if e, ok := r.src.lookup(FieldMinute); ok {
		minute = e.Value
	}
	if e, ok := r.src.lookup(FieldSecond); ok {
		second = e.Value
	}
	if e, ok := r.src.lookup(FieldSubSecond); ok {
		nsec = e.Value
	}

	t := time.Date(year, time.Month(month+1), day, hour, minute, second, nsec, loc)
	if e, ok := r.src.lookup(FieldWeekday); ok && !r.src.has(FieldDay) {
		t = nearestWeekday(t, time.Weekday(e.Value))
	}
	return t
}

// windowYear expands a 2-digit year into the century window centered on
// the reference year, rolling by 100 at the edges.
func windowYear(v, refYear int) int {
	y := refYear - refYear%100 + v
	if y < refYear-50 {
		y += 100
	}
	if y > refYear+50 {
		y -= 100
	}
	return y
}

// resolveHour disambiguates a bare clock hour: with a meridiem marker or
// the 24-hour option the value is taken as written, otherwise the AM/PM
// candidate numerically closer to the reference hour wins.
func (r Relative) resolveHour(v, refHour int) int {
	if m, ok := r.src.lookup(FieldAmPm); ok {
		return normalizedHour(v, m.Value, true)
	}
	if r.twentyFourHour || v > 12 || v == 0 {
		return v
	}
	am := v % 12
	pm := am + 12
	if abs(am-refHour) <= abs(pm-refHour) {
		return am
	}
	return pm
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// floorTo steps the candidate to the latest occurrence not after ref.
func (r Relative) floorTo(c, ref time.Time) time.Time {
	for i := 0; c.After(ref) && i < 1024; i++ {
		next, ok := r.bump(c, -1)
		if !ok {
			return c
		}
		c = next
	}
	for i := 0; i < 1024; i++ {
		next, ok := r.bump(c, 1)
		if !ok || next.After(ref) {
			return c
		}
		c = next
	}
	return c
}

// ceilTo steps the candidate to the earliest occurrence not before ref.
func (r Relative) ceilTo(c, ref time.Time) time.Time {
	for i := 0; c.Before(ref) && i < 1024; i++ {
		next, ok := r.bump(c, 1)
		if !ok {
			return c
		}
		c = next
	}
	for i := 0; i < 1024; i++ {
		next, ok := r.bump(c, -1)
		if !ok || next.Before(ref) {
			return c
		}
		c = next
	}
	return c
}

// bump advances the candidate by one cycle of the coarsest unit the
// parsed fields leave implied. An explicit year leaves no implied unit,
// so such a candidate cannot be bumped.
func (r Relative) bump(t time.Time, dir int) (time.Time, bool) {
	switch {
	case r.src.has(FieldYear):
		return t, false
	case r.src.has(FieldMonth):
		return addYears(t, dir), true
	case r.src.has(FieldDay):
		return r.bumpMonthKeepingDay(t, dir), true
	case r.src.has(FieldWeekday):
		return t.AddDate(0, 0, 7*dir), true
	case r.src.has(FieldHour):
		return t.AddDate(0, 0, dir), true
	case r.src.has(FieldMinute):
		return t.Add(time.Duration(dir) * time.Hour), true
	case r.src.has(FieldSecond):
		return t.Add(time.Duration(dir) * time.Minute), true
	case r.src.has(FieldSubSecond):
		return t.Add(time.Duration(dir) * time.Second), true
	default:
		return t, false
	}
}

// bumpMonthKeepingDay moves to the adjacent month carrying the parsed
// day along, skipping months too short to hold it.
func (r Relative) bumpMonthKeepingDay(t time.Time, dir int) time.Time {
	e, _ := r.src.lookup(FieldDay)
	year, month := t.Year(), int(t.Month())
	for i := 0; i < 48; i++ {
		month += dir
		for month < 1 {
			month += 12
			year--
		}
		for month > 12 {
			month -= 12
			year++
		}
		if daysInMonth(year, time.Month(month)) >= e.Value {
			break
		}
	}
	return time.Date(year, time.Month(month), e.Value,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
