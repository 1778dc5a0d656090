package timetext

import (
	"fmt"
	"strings"
	"time"
)

// Recurrence is a repeating schedule. Every repeats at a fixed span;
// LastOfMonth and NthWeekdayOfMonth are anchored to calendar months and
// follow month-length irregularities.
type Recurrence interface {
	// AdjacentOccurrence returns the occurrence strictly after t when
	// next is true, strictly before t otherwise.
	AdjacentOccurrence(t time.Time, next bool) time.Time

	// Occurrence returns the occurrence of the schedule anchored at
	// relativeTo that sits next to reference: the earliest one at or
	// after it when after is true, the latest one at or before it
	// otherwise. With strict set, an occurrence landing exactly on the
	// reference is skipped.
	Occurrence(reference, relativeTo time.Time, after, strict bool) time.Time

	String() string

	sealedRecurrence()
}

// Every repeats at a fixed span from the anchor point.
type Every struct {
	Span Span
}

func (Every) sealedRecurrence() {}

func (e Every) String() string { return e.Span.String() }

func (e Every) AdjacentOccurrence(t time.Time, next bool) time.Time {
	if next {
		return e.Span.AddTo(t, 1)
	}
	return e.Span.AddTo(t, -1)
}

func (e Every) Occurrence(reference, relativeTo time.Time, after, strict bool) time.Time {
	step := e.Span.AsDuration()
	if step == 0 {
		return relativeTo
	}
	k := int(reference.Sub(relativeTo) / step)
	return walkOccurrence(func(k int) time.Time {
		return e.Span.AddTo(relativeTo, k)
	}, k, reference, after, strict)
}

// LastOfMonth repeats on the day a fixed distance before each month's
// last day, every IntervalMonths months.
type LastOfMonth struct {
	IntervalMonths int
	DaysBeforeEnd  int
}

func (LastOfMonth) sealedRecurrence() {}

func (l LastOfMonth) String() string {
	return fmt.Sprintf("%dmo-", l.IntervalMonths)
}

func (l LastOfMonth) inMonth(t time.Time) time.Time {
	return lastOfMonthMinus(t, l.DaysBeforeEnd)
}

func (l LastOfMonth) AdjacentOccurrence(t time.Time, next bool) time.Time {
	return adjacentMonthAnchored(l.inMonth, l.IntervalMonths, t, next)
}

func (l LastOfMonth) Occurrence(reference, relativeTo time.Time, after, strict bool) time.Time {
	return monthAnchoredOccurrence(l.inMonth, l.IntervalMonths, reference, relativeTo, after, strict)
}

// NthWeekdayOfMonth repeats on the WeekIndex-th (1-based) Weekday of the
// month, every IntervalMonths months.
type NthWeekdayOfMonth struct {
	IntervalMonths int
	WeekIndex      int
	Weekday        time.Weekday
}

func (NthWeekdayOfMonth) sealedRecurrence() {}

func (n NthWeekdayOfMonth) String() string {
	return fmt.Sprintf("%dmo#", n.IntervalMonths)
}

func (n NthWeekdayOfMonth) inMonth(t time.Time) time.Time {
	return nthWeekdayOfMonth(t, n.WeekIndex, n.Weekday)
}

func (n NthWeekdayOfMonth) AdjacentOccurrence(t time.Time, next bool) time.Time {
	return adjacentMonthAnchored(n.inMonth, n.IntervalMonths, t, next)
}

func (n NthWeekdayOfMonth) Occurrence(reference, relativeTo time.Time, after, strict bool) time.Time {
	return monthAnchoredOccurrence(n.inMonth, n.IntervalMonths, reference, relativeTo, after, strict)
}

// firstOfMonth pins t to day 1, keeping the clock, so month stepping
// never clamps.
func firstOfMonth(t time.Time) time.Time {
	hour, min, sec := t.Clock()
	return time.Date(t.Year(), t.Month(), 1, hour, min, sec, t.Nanosecond(), t.Location())
}

// adjacentMonthAnchored finds the occurrence strictly adjacent to t for a
// month-anchored schedule whose grid is aligned to t's month.
func adjacentMonthAnchored(inMonth func(time.Time) time.Time, interval int, t time.Time, next bool) time.Time {
	base := firstOfMonth(t)
	at := func(k int) time.Time {
		return inMonth(addMonths(base, k*interval))
	}
	if next {
		return walkOccurrence(at, 0, t, true, true)
	}
	return walkOccurrence(at, 0, t, false, true)
}

func monthAnchoredOccurrence(inMonth func(time.Time) time.Time, interval int, reference, relativeTo time.Time, after, strict bool) time.Time {
	base := firstOfMonth(relativeTo)
	months := (reference.Year()-base.Year())*12 + int(reference.Month()) - int(base.Month())
	at := func(k int) time.Time {
		return inMonth(addMonths(base, k*interval))
	}
	return walkOccurrence(at, months/interval, reference, after, strict)
}

// walkOccurrence starts from an estimated grid index and steps one
// occurrence at a time until the reference constraint holds. at must be
// monotonically increasing in k; the iteration bounds keep a broken
// stepper from spinning forever.
func walkOccurrence(at func(int) time.Time, k int, reference time.Time, after, strict bool) time.Time {
	satisfied := func(o time.Time) bool {
		if after {
			if strict {
				return o.After(reference)
			}
			return !o.Before(reference)
		}
		if strict {
			return o.Before(reference)
		}
		return !o.After(reference)
	}
	step := 1
	if !after {
		step = -1
	}
	for i := 0; satisfied(at(k-step)) && i < 1<<16; i++ {
		k -= step
	}
	for i := 0; !satisfied(at(k)) && i < 1<<16; i++ {
		k += step
	}
	return at(k)
}

// ParseRecurrence parses a recurrence description: a duration, optionally
// suffixed with "-" (same distance from month end as the occurrence) or
// "#" (same weekday and week index as the occurrence). The suffixed forms
// accept year and month components only.
func ParseRecurrence(text string, occurrence time.Time) (Recurrence, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, newParseError(ErrUnrecognizedToken, 0, "")
	}
	suffix := trimmed[len(trimmed)-1]
	if suffix != '-' && suffix != '#' {
		span, err := ParseSpan(trimmed)
		if err != nil {
			return nil, err
		}
		if span.Negative() || span.IsZero() {
			return nil, fmt.Errorf("recurrence %q: span must be positive", trimmed)
		}
		return Every{Span: span}, nil
	}

	span, err := ParseSpan(trimmed[:len(trimmed)-1])
	if err != nil {
		return nil, err
	}
	months := 0
	for _, c := range span.Components() {
		switch c.Unit {
		case SpanYear:
			months += 12 * int(c.Value)
		case SpanMonth:
			months += int(c.Value)
		default:
			return nil, fmt.Errorf("anchored recurrence %q: only year and month units are allowed", trimmed)
		}
	}
	if months <= 0 || span.Negative() {
		return nil, fmt.Errorf("anchored recurrence %q: interval must be at least one month", trimmed)
	}

	if suffix == '-' {
		days := daysInMonth(occurrence.Year(), occurrence.Month()) - occurrence.Day()
		return LastOfMonth{IntervalMonths: months, DaysBeforeEnd: days}, nil
	}
	return NthWeekdayOfMonth{
		IntervalMonths: months,
		WeekIndex:      (occurrence.Day()-1)/7 + 1,
		Weekday:        occurrence.Weekday(),
	}, nil
}
