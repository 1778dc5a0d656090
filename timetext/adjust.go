package timetext

import (
	"time"
)

// Add returns a copy of the instant with delta units added to the given
// field. Absolute instants use calendar arithmetic; the month and year
// cases clamp the day to the end of shorter target months.
func (a Absolute) Add(field FieldKind, delta int) (Instant, error) {
	if _, ok := a.src.lookup(field); !ok {
		return nil, fieldAbsentError(field)
	}

	t := a.at
	switch field {
	case FieldYear:
		t = addYears(t, delta)
	case FieldMonth:
		t = addMonths(t, delta)
	case FieldDay, FieldWeekday:
		t = t.AddDate(0, 0, delta)
	case FieldHour:
		t = t.Add(time.Duration(delta) * time.Hour)
	case FieldMinute:
		t = t.Add(time.Duration(delta) * time.Minute)
	case FieldSecond:
		t = t.Add(time.Duration(delta) * time.Second)
	case FieldSubSecond:
		e, _ := a.src.lookup(FieldSubSecond)
		unit := time.Nanosecond
		for i := 0; i < 9-e.note.width; i++ {
			unit *= 10
		}
		t = t.Add(time.Duration(delta) * unit)
	default:
		return nil, fieldAbsentError(field)
	}

	src := renderFromTime(a.src, t)
	return Absolute{at: t, max: precisionUpperBound(t, src), loc: a.loc, src: src}, nil
}

// renderFromTime regenerates every field element from the calendar point,
// each in its original notation. Text is derived from the field values,
// never spliced.
func renderFromTime(src sourceText, t time.Time) sourceText {
	out := src.clone()
	hasMeridiem := src.has(FieldAmPm)
	for i := range out.elems {
		e := &out.elems[i]
		switch e.Kind {
		case FieldYear:
			if e.note.width == 2 {
				e.Value = t.Year() % 100
			} else {
				e.Value = t.Year()
			}
		case FieldMonth:
			e.Value = int(t.Month()) - 1
		case FieldDay:
			e.Value = t.Day()
		case FieldWeekday:
			e.Value = int(t.Weekday())
		case FieldHour:
			if hasMeridiem {
				e.Value = (t.Hour()+11)%12 + 1
			} else {
				e.Value = t.Hour()
			}
		case FieldAmPm:
			if t.Hour() >= 12 {
				e.Value = 1
			} else {
				e.Value = 0
			}
		case FieldMinute:
			e.Value = t.Minute()
		case FieldSecond:
			e.Value = t.Second()
		case FieldSubSecond:
			e.Value = t.Nanosecond()
		case FieldZone:
			continue
		}
		e.Text = e.render(e.Value)
	}
	out.reindex()
	return out
}

// carryTarget returns the coarser field a wrapped adjustment carries
// into, honoring which superior fields are actually present.
func carryTarget(kind FieldKind, src sourceText) (FieldKind, bool) {
	switch kind {
	case FieldSubSecond:
		if src.has(FieldSecond) {
			return FieldSecond, true
		}
	case FieldSecond:
		if src.has(FieldMinute) {
			return FieldMinute, true
		}
	case FieldMinute:
		if src.has(FieldHour) {
			return FieldHour, true
		}
	case FieldDay:
		if src.has(FieldMonth) {
			return FieldMonth, true
		}
		if src.has(FieldYear) {
			return FieldYear, true
		}
	case FieldMonth:
		if src.has(FieldYear) {
			return FieldYear, true
		}
	}
	return 0, false
}

// wrap computes the adjusted value of a field with external base (the
// minimum legal value) and modulus, returning the new value and the carry
// into the superior field.
func wrap(value, delta, base, modulus int) (int, int) {
	shifted := value - base + delta
	carry := shifted / modulus
	rem := shifted % modulus
	if rem < 0 {
		rem += modulus
		carry--
	}
	return rem + base, carry
}

// Add returns a copy with delta added to the given field. Adjustment is
// purely field-local: each field wraps by its modulus and the carry
// propagates upward until it resolves or reaches the coarsest present
// field.
func (r Relative) Add(field FieldKind, delta int) (Instant, error) {
	if _, ok := r.src.lookup(field); !ok {
		return nil, fieldAbsentError(field)
	}

	src := r.src.clone()
	kind := field
	for delta != 0 {
		e, ok := src.lookup(kind)
		if !ok {
			break
		}
		var carry int
		switch kind {
		case FieldYear:
			if e.note.width == 2 {
				v, _ := wrap(e.Value, delta, 0, 100)
				src = src.withValue(FieldYear, v)
			} else {
				src = src.withValue(FieldYear, e.Value+delta)
			}
		case FieldMonth:
			v, c := wrap(e.Value, delta, 0, 12)
			src = src.withValue(FieldMonth, v)
			carry = c
		case FieldDay:
			v, c := wrap(e.Value, delta, 1, 31)
			src = src.withValue(FieldDay, v)
			carry = c
		case FieldWeekday:
			v, _ := wrap(e.Value, delta, 0, 7)
			src = src.withValue(FieldWeekday, v)
		case FieldHour:
			src = r.addHours(src, e, delta)
		case FieldMinute:
			v, c := wrap(e.Value, delta, 0, 60)
			src = src.withValue(FieldMinute, v)
			carry = c
		case FieldSecond:
			v, c := wrap(e.Value, delta, 0, 60)
			src = src.withValue(FieldSecond, v)
			carry = c
		case FieldSubSecond:
			unit := 1
			for i := 0; i < 9-e.note.width; i++ {
				unit *= 10
			}
			v, c := wrap(e.Value/unit, delta, 0, 1_000_000_000/unit)
			src = src.withValue(FieldSubSecond, v*unit)
			carry = c
		default:
			return nil, fieldAbsentError(field)
		}

		if carry == 0 {
			break
		}
		next, ok := carryTarget(kind, src)
		if !ok {
			break
		}
		kind = next
		delta = carry
		continue
	}

	out := r
	out.src = src
	return out, nil
}

// addHours handles the 12-hour clock: with a meridiem marker present the
// carry flips am/pm instead of propagating further.
func (r Relative) addHours(src sourceText, hour Element, delta int) sourceText {
	if m, ok := src.lookup(FieldAmPm); ok {
		h24 := normalizedHour(hour.Value, m.Value, true)
		n, _ := wrap(h24, delta, 0, 24)
		meridiem := 0
		if n >= 12 {
			meridiem = 1
		}
		src = src.withValue(FieldHour, (n+11)%12+1)
		return src.withValue(FieldAmPm, meridiem)
	}
	v, _ := wrap(hour.Value, delta, 0, 24)
	return src.withValue(FieldHour, v)
}
