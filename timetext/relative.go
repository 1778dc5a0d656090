package timetext

import (
	"strconv"
	"strings"
	"time"
)

// Strategy selects how a time difference is split into fields.
type Strategy int

const (
	// StrategyCalendar subtracts calendar months and years first, then
	// divides the remainder into days and clock units.
	StrategyCalendar Strategy = iota
	// StrategyWeek divides pure elapsed time into weeks, days and clock
	// units.
	StrategyWeek
	// StrategyNone divides pure elapsed time into days and clock units.
	StrategyNone
)

// PrintOptions controls relative-time and span rendering. A nil options
// pointer prints calendar-style, full precision, unlimited elements,
// pluralized full unit names and an " ago" suffix for past differences.
type PrintOptions struct {
	Strategy Strategy

	// MaxPrecision is the finest unit printed. Zero means no bound.
	MaxPrecision SpanUnit

	// MaxElements caps how many components appear. Zero means no cap.
	MaxElements int

	// Abbreviate switches to compact unit suffixes ("3d" over "3 days").
	Abbreviate bool

	// Plural appends "s" to full unit names when the value is not one.
	// Ignored when abbreviating.
	Plural bool

	// AgoSuffix is appended for negative differences. Empty means " ago".
	AgoSuffix string

	// ZeroText replaces an all-zero difference. Empty means "just now".
	ZeroText string
}

func (o *PrintOptions) maxPrecision() SpanUnit {
	if o == nil || o.MaxPrecision == 0 {
		return SpanNanosecond
	}
	return o.MaxPrecision
}

func (o *PrintOptions) maxElements() int {
	if o == nil || o.MaxElements == 0 {
		return int(SpanNanosecond) + 1
	}
	return o.MaxElements
}

func (o *PrintOptions) strategy() Strategy {
	if o == nil {
		return StrategyCalendar
	}
	return o.Strategy
}

func (o *PrintOptions) agoSuffix() string {
	if o == nil || o.AgoSuffix == "" {
		return " ago"
	}
	return o.AgoSuffix
}

func (o *PrintOptions) zeroText() string {
	if o == nil || o.ZeroText == "" {
		return "just now"
	}
	return o.ZeroText
}

// FormatRelative renders the difference between target and reference as
// human text, "3 days ago" style. Targets before the reference carry the
// ago suffix.
func FormatRelative(target, reference time.Time, opts *PrintOptions) string {
	past := target.Before(reference)
	earlier, later := target, reference
	if !past {
		earlier, later = reference, target
	}

	comps := splitDifference(earlier, later, opts.strategy())
	text := printComponents(comps, opts)
	if text == "" {
		return opts.zeroText()
	}
	if past {
		text += opts.agoSuffix()
	}
	return text
}

// Format renders the span through the same precision-window printer used
// for relative differences.
func (s Span) Format(opts *PrintOptions) string {
	text := printComponents(s.Components(), opts)
	if text == "" {
		return opts.zeroText()
	}
	if s.negative {
		text += opts.agoSuffix()
	}
	return text
}

// splitDifference produces the ordered field deltas between two points,
// earlier before later, per the chosen strategy. Zero components are kept
// so the precision window sees every unit.
func splitDifference(earlier, later time.Time, strategy Strategy) []SpanComponent {
	var comps []SpanComponent
	rest := later.Sub(earlier)
	if strategy == StrategyCalendar {
		months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
		if months > 0 && addMonths(earlier, months).After(later) {
			months--
		}
		rest = later.Sub(addMonths(earlier, months))
		comps = append(comps,
			SpanComponent{Unit: SpanYear, Value: uint64(months / 12)},
			SpanComponent{Unit: SpanMonth, Value: uint64(months % 12)},
		)
	} else if strategy == StrategyWeek {
		comps = append(comps, SpanComponent{Unit: SpanWeek, Value: uint64(rest / (7 * 24 * time.Hour))})
		rest %= 7 * 24 * time.Hour
	}
	comps = append(comps,
		SpanComponent{Unit: SpanDay, Value: uint64(rest / (24 * time.Hour))},
		SpanComponent{Unit: SpanHour, Value: uint64(rest % (24 * time.Hour) / time.Hour)},
		SpanComponent{Unit: SpanMinute, Value: uint64(rest % time.Hour / time.Minute)},
		SpanComponent{Unit: SpanSecond, Value: uint64(rest % time.Minute / time.Second)},
	)
	return comps
}

// unitThreshold is how many of a unit make one of the next coarser unit,
// used for half-unit rounding and carry after rounding.
func unitThreshold(u SpanUnit) uint64 {
	switch u {
	case SpanMonth:
		return 12
	case SpanWeek:
		return 4
	case SpanDay:
		return 30
	case SpanHour:
		return 24
	case SpanMinute, SpanSecond:
		return 60
	case SpanMillisecond, SpanMicrosecond, SpanNanosecond:
		return 1000
	default:
		return 0
	}
}

// printComponents applies the precision window and renders what is left.
// The window starts at the coarsest non-zero component, is bounded by the
// max-precision unit and element cap, and rounds up when the first
// excluded component is at least half its threshold.
func printComponents(comps []SpanComponent, opts *PrintOptions) string {
	start := -1
	for i, c := range comps {
		if c.Value != 0 {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := start
	count := 1
	for end+1 < len(comps) && count < opts.maxElements() && comps[end+1].Unit <= opts.maxPrecision() {
		end++
		count++
	}

	window := append([]SpanComponent(nil), comps[start:end+1]...)
	if end+1 < len(comps) {
		next := comps[end+1]
		if t := unitThreshold(next.Unit); t > 0 && next.Value*2 >= t {
			window = roundUpLast(window)
		}
	}

	var parts []string
	for _, c := range window {
		if c.Value == 0 {
			continue
		}
		parts = append(parts, formatComponent(c, opts))
	}
	return strings.Join(parts, " ")
}

// roundUpLast increments the finest window component, carrying overflow
// into the coarser components.
func roundUpLast(window []SpanComponent) []SpanComponent {
	window[len(window)-1].Value++
	for i := len(window) - 1; i > 0; i-- {
		t := unitThreshold(window[i].Unit)
		if t == 0 || window[i].Value < t {
			break
		}
		window[i].Value -= t
		window[i-1].Value++
	}
	return window
}

func formatComponent(c SpanComponent, opts *PrintOptions) string {
	digits := strconv.FormatUint(c.Value, 10)
	if opts != nil && opts.Abbreviate {
		return digits + spanUnitShort[c.Unit]
	}
	name := spanUnitLong[c.Unit]
	if (opts == nil || opts.Plural) && c.Value != 1 {
		name += "s"
	}
	return digits + " " + name
}
