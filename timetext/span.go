package timetext

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// SpanUnit identifies one duration component, coarsest first.
type SpanUnit int

const (
	SpanYear SpanUnit = iota
	SpanMonth
	SpanWeek
	SpanDay
	SpanHour
	SpanMinute
	SpanSecond
	SpanMillisecond
	SpanMicrosecond
	SpanNanosecond
)

// spanUnitNanos holds each unit's canonical length. Years use the mean
// Gregorian year of 365.2425 days and months one twelfth of that.
var spanUnitNanos = [...]int64{
	SpanYear:        31556952_000_000_000,
	SpanMonth:       2629746_000_000_000,
	SpanWeek:        604800_000_000_000,
	SpanDay:         86400_000_000_000,
	SpanHour:        3600_000_000_000,
	SpanMinute:      60_000_000_000,
	SpanSecond:      1_000_000_000,
	SpanMillisecond: 1_000_000,
	SpanMicrosecond: 1_000,
	SpanNanosecond:  1,
}

var spanUnitShort = [...]string{"y", "mo", "w", "d", "h", "m", "s", "ms", "us", "ns"}

var spanUnitLong = [...]string{
	"year", "month", "week", "day", "hour", "minute", "second",
	"millisecond", "microsecond", "nanosecond",
}

func (u SpanUnit) String() string {
	if u < SpanYear || u > SpanNanosecond {
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
	return spanUnitLong[u]
}

// spanUnitWords maps normalized unit words (trailing "s" already
// stripped) to their unit.
var spanUnitWords = map[string]SpanUnit{
	"y": SpanYear, "yr": SpanYear, "year": SpanYear,
	"mo": SpanMonth, "mon": SpanMonth, "month": SpanMonth,
	"w": SpanWeek, "wk": SpanWeek, "week": SpanWeek,
	"d": SpanDay, "day": SpanDay,
	"h": SpanHour, "hr": SpanHour, "hour": SpanHour,
	"m": SpanMinute, "min": SpanMinute, "minute": SpanMinute,
	"s": SpanSecond, "sec": SpanSecond, "second": SpanSecond,
	"ms": SpanMillisecond, "milli": SpanMillisecond, "millisecond": SpanMillisecond,
	"us": SpanMicrosecond, "micro": SpanMicrosecond, "microsecond": SpanMicrosecond,
	"ns": SpanNanosecond, "nano": SpanNanosecond, "nanosecond": SpanNanosecond,
}

type spanComponent struct {
	unit     SpanUnit
	value    uint64
	frac     string // decimal digits as written, only on second/millisecond
	unitText string
	unitSep  string // whitespace between the digits and the unit word
	sep      string // separator preceding this component in the source
}

// fracValue converts the decimal digits into the next finer canonical
// unit: nanoseconds under a second, microseconds under a millisecond.
func (c spanComponent) fracValue() (SpanUnit, uint64) {
	var unit SpanUnit
	var width int
	switch c.unit {
	case SpanSecond:
		unit, width = SpanNanosecond, 9
	case SpanMillisecond:
		unit, width = SpanMicrosecond, 3
	default:
		return 0, 0
	}
	digits := c.frac
	if len(digits) > width {
		digits = digits[:width]
	}
	v, _ := strconv.ParseUint(digits, 10, 64)
	for i := len(digits); i < width; i++ {
		v *= 10
	}
	return unit, v
}

// Span is a parsed duration: at most one component per unit, magnitudes
// unsigned with the sign held externally. The zero Span is a zero-length
// duration.
type Span struct {
	negative bool
	comps    []spanComponent
}

// SpanComponent is one (unit, magnitude) pair of a span.
type SpanComponent struct {
	Unit  SpanUnit
	Value uint64
}

// Negative reports whether the span points into the past.
func (s Span) Negative() bool { return s.negative }

// IsZero reports whether every component is zero.
func (s Span) IsZero() bool {
	for _, c := range s.comps {
		if c.value != 0 || c.frac != "" {
			return false
		}
	}
	return true
}

// Value returns the magnitude of the given unit and whether the unit is
// present at all.
func (s Span) Value(unit SpanUnit) (uint64, bool) {
	for _, c := range s.comps {
		if c.unit == unit {
			return c.value, true
		}
	}
	return 0, false
}

func (s Span) has(unit SpanUnit) bool {
	_, ok := s.Value(unit)
	return ok
}

// Components lists the span's components coarsest first. Decimal
// fractions appear as an extra finer component, so "1.5s" lists a second
// and a nanosecond entry.
func (s Span) Components() []SpanComponent {
	vals := s.unitValues()
	out := make([]SpanComponent, 0, len(vals))
	for u := SpanYear; u <= SpanNanosecond; u++ {
		if v, ok := vals[u]; ok {
			out = append(out, SpanComponent{Unit: u, Value: v})
		}
	}
	return out
}

// unitValues expands fractions and merges them into a per-unit map.
func (s Span) unitValues() map[SpanUnit]uint64 {
	vals := make(map[SpanUnit]uint64, len(s.comps)+1)
	for _, c := range s.comps {
		vals[c.unit] += c.value
		if c.frac != "" {
			u, v := c.fracValue()
			vals[u] += v
		}
	}
	return vals
}

// String renders the span as parsed: original separators, digit text and
// unit words survive the round trip. Spans produced by arithmetic render
// with canonical short units.
func (s Span) String() string {
	if len(s.comps) == 0 {
		return "0s"
	}
	var b strings.Builder
	if s.negative {
		b.WriteByte('-')
	}
	for _, c := range s.comps {
		b.WriteString(c.sep)
		b.WriteString(strconv.FormatUint(c.value, 10))
		if c.frac != "" {
			b.WriteByte('.')
			b.WriteString(c.frac)
		}
		b.WriteString(c.unitSep)
		b.WriteString(c.unitText)
	}
	return b.String()
}

// AsDuration collapses the span into a fixed-length duration using the
// canonical unit conversions.
func (s Span) AsDuration() time.Duration {
	var total int64
	for u, v := range s.unitValues() {
		total += int64(v) * spanUnitNanos[u]
	}
	if s.negative {
		total = -total
	}
	return time.Duration(total)
}

// ParseSpan parses a duration string such as "2mo 3d" or "-1h30m".
// Whitespace between components is optional and preserved for String.
func ParseSpan(text string) (Span, error) {
	s, end, perr := parseSpanPrefix(text)
	if perr != nil {
		return Span{}, perr
	}
	if rest := strings.TrimSpace(text[end:]); rest != "" {
		return Span{}, newParseError(ErrUnrecognizedToken, end, rest)
	}
	return s, nil
}

// DetectSpan is the non-failing form of ParseSpan: it reports whether
// the text is a duration at all.
func DetectSpan(text string) (Span, bool) {
	s, err := ParseSpan(text)
	if err != nil {
		return Span{}, false
	}
	return s, true
}

// ParseSpanPrefix parses the leading duration of text and returns the
// byte offset where scanning stopped, leaving the remainder to the
// caller. It is the span counterpart of InstantOptions.AllowPrefix.
func ParseSpanPrefix(text string) (Span, int, error) {
	s, end, perr := parseSpanPrefix(text)
	if perr != nil {
		return Span{}, 0, perr
	}
	return s, end, nil
}

// parseSpanPrefix consumes the longest duration prefix of text and
// returns the offset where scanning stopped.
func parseSpanPrefix(text string) (Span, int, *ParseError) {
	var s Span
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	lead := text[:i]
	if i < len(text) && (text[i] == '-' || text[i] == '+') {
		s.negative = text[i] == '-'
		i++
	}
	for {
		sepStart := i
		for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
		sep := text[sepStart:i]
		if len(s.comps) == 0 {
			sep = lead + sep
		}
		digStart := i
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		if i == digStart {
			if len(s.comps) == 0 {
				return Span{}, 0, newParseError(ErrUnrecognizedToken, i, "")
			}
			return s, sepStart, nil
		}
		value, err := strconv.ParseUint(text[digStart:i], 10, 64)
		if err != nil {
			return Span{}, 0, newParseError(ErrUnrecognizedToken, digStart, text[digStart:i])
		}

		frac := ""
		if i < len(text) && text[i] == '.' {
			fracStart := i + 1
			i++
			for i < len(text) && text[i] >= '0' && text[i] <= '9' {
				i++
			}
			if i == fracStart {
				return Span{}, 0, newParseError(ErrUnrecognizedToken, fracStart, ".")
			}
			frac = text[fracStart:i]
		}

		unitSepStart := i
		for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
		unitStart := i
		for i < len(text) && isLetter(text[i]) {
			i++
		}
		word := text[unitStart:i]
		if word == "" {
			return Span{}, 0, newParseError(ErrUnrecognizedUnit, unitStart, "")
		}
		normalized := strings.ToLower(word)
		if len(normalized) > 1 {
			normalized = strings.TrimSuffix(normalized, "s")
		}
		unit, ok := spanUnitWords[normalized]
		if !ok {
			return Span{}, 0, newParseError(ErrUnrecognizedUnit, unitStart, word)
		}
		if s.has(unit) {
			return Span{}, 0, newParseError(ErrDuplicateUnit, digStart, word)
		}
		if frac != "" && unit != SpanSecond && unit != SpanMillisecond {
			return Span{}, 0, newParseError(ErrUnsupportedDecimalUnit, digStart, word)
		}
		s.comps = append(s.comps, spanComponent{
			unit:     unit,
			value:    value,
			frac:     frac,
			unitText: word,
			unitSep:  text[unitSepStart:unitStart],
			sep:      sep,
		})
		if i >= len(text) {
			return s, i, nil
		}
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Negate flips the span's direction.
func (s Span) Negate() Span {
	out := s
	out.negative = !s.negative
	return out
}

// Plus adds another span component-wise, carrying overflow into present
// coarser components. Opposite-sign operands collapse to fixed-unit
// arithmetic since component-wise subtraction could go negative.
func (s Span) Plus(o Span) Span {
	if o.IsZero() {
		return s
	}
	if s.IsZero() {
		return o
	}
	if s.negative != o.negative {
		return SpanFromDuration(s.AsDuration() + o.AsDuration())
	}
	vals := s.unitValues()
	for u, v := range o.unitValues() {
		vals[u] += v
	}
	return rebuildSpan(s.negative, vals)
}

// Times multiplies every magnitude by |n|, flipping the sign for
// negative n.
func (s Span) Times(n int) Span {
	if n == 0 {
		return Span{}
	}
	neg := s.negative
	if n < 0 {
		neg = !neg
		n = -n
	}
	vals := s.unitValues()
	for u := range vals {
		vals[u] *= uint64(n)
	}
	return rebuildSpan(neg, vals)
}

// spanAPDContext provides the decimal context for fractional span
// arithmetic.
var spanAPDContext = apd.BaseContext.WithPrecision(34)

// TimesFloat multiplies the span by a real factor. The exact product is
// computed in decimal nanoseconds and redistributed over the span's own
// units, with any remainder pushed into finer canonical units.
func (s Span) TimesFloat(f float64) (Span, error) {
	factor := new(apd.Decimal)
	if _, err := factor.SetFloat64(f); err != nil {
		return Span{}, fmt.Errorf("setting span factor: %w", err)
	}
	total := new(apd.Decimal)
	if _, err := spanAPDContext.Mul(total, s.totalNanosDecimal(), factor); err != nil {
		return Span{}, fmt.Errorf("scaling span: %w", err)
	}
	rounded := new(apd.Decimal)
	if _, err := spanAPDContext.RoundToIntegralValue(rounded, total); err != nil {
		return Span{}, fmt.Errorf("rounding span: %w", err)
	}
	nanos, err := rounded.Int64()
	if err != nil {
		return Span{}, fmt.Errorf("span product out of range: %w", err)
	}
	neg := false
	if nanos < 0 {
		neg = true
		nanos = -nanos
	}
	units := make([]SpanUnit, 0, len(s.comps))
	for _, c := range s.comps {
		units = append(units, c.unit)
	}
	return decomposeNanos(neg, uint64(nanos), units), nil
}

// Divide returns the real ratio of two spans. Single-component operands
// use the exact conversion table (a year is twelve months or 365.2425
// days, a month thirty days); mixed spans divide their fixed-unit
// lengths.
func (s Span) Divide(o Span) (*apd.Decimal, error) {
	if o.IsZero() {
		return nil, fmt.Errorf("dividing span by zero duration")
	}
	q := new(apd.Decimal)
	a, aOne := s.singleComponent()
	b, bOne := o.singleComponent()
	if aOne && bOne {
		num := new(apd.Decimal).SetInt64(int64(a.Value))
		den := new(apd.Decimal).SetInt64(int64(b.Value))
		ratio, err := unitRatio(a.Unit, b.Unit)
		if err != nil {
			return nil, err
		}
		if _, err := spanAPDContext.Mul(num, num, ratio); err != nil {
			return nil, fmt.Errorf("converting span units: %w", err)
		}
		if _, err := spanAPDContext.Quo(q, num, den); err != nil {
			return nil, fmt.Errorf("dividing spans: %w", err)
		}
	} else {
		if _, err := spanAPDContext.Quo(q, s.totalNanosDecimal(), o.totalNanosDecimal()); err != nil {
			return nil, fmt.Errorf("dividing spans: %w", err)
		}
	}
	return q, nil
}

// unitRatio gives the length of unit a expressed in unit b.
func unitRatio(a, b SpanUnit) (*apd.Decimal, error) {
	switch {
	case a == b:
		return apd.New(1, 0), nil
	case a == SpanYear && b == SpanMonth:
		return apd.New(12, 0), nil
	case a == SpanMonth && b == SpanYear:
		r := new(apd.Decimal)
		if _, err := spanAPDContext.Quo(r, apd.New(1, 0), apd.New(12, 0)); err != nil {
			return nil, err
		}
		return r, nil
	case a == SpanMonth && b == SpanDay:
		return apd.New(30, 0), nil
	case a == SpanDay && b == SpanMonth:
		r := new(apd.Decimal)
		if _, err := spanAPDContext.Quo(r, apd.New(1, 0), apd.New(30, 0)); err != nil {
			return nil, err
		}
		return r, nil
	case a == SpanYear && b == SpanDay:
		return apd.New(3652425, -4), nil
	case a == SpanDay && b == SpanYear:
		r := new(apd.Decimal)
		if _, err := spanAPDContext.Quo(r, apd.New(1, 0), apd.New(3652425, -4)); err != nil {
			return nil, err
		}
		return r, nil
	default:
		r := new(apd.Decimal)
		num := new(apd.Decimal).SetInt64(spanUnitNanos[a])
		den := new(apd.Decimal).SetInt64(spanUnitNanos[b])
		if _, err := spanAPDContext.Quo(r, num, den); err != nil {
			return nil, err
		}
		return r, nil
	}
}

func (s Span) singleComponent() (SpanComponent, bool) {
	comps := s.Components()
	if len(comps) != 1 {
		return SpanComponent{}, false
	}
	return comps[0], true
}

func (s Span) totalNanosDecimal() *apd.Decimal {
	total := new(apd.Decimal)
	term := new(apd.Decimal)
	for u, v := range s.unitValues() {
		term.SetInt64(int64(v))
		scale := new(apd.Decimal).SetInt64(spanUnitNanos[u])
		_, _ = spanAPDContext.Mul(term, term, scale)
		_, _ = spanAPDContext.Add(total, total, term)
	}
	if s.negative {
		total.Neg(total)
	}
	return total
}

// AddTo shifts t by n repetitions of the span. Year and month components
// move by calendar months (clamping at short month ends); every other
// component is a fixed offset.
func (s Span) AddTo(t time.Time, n int) time.Time {
	if s.negative {
		n = -n
	}
	vals := s.unitValues()
	months := int(vals[SpanYear])*12 + int(vals[SpanMonth])
	if months != 0 {
		t = addMonths(t, months*n)
	}
	days := int(vals[SpanWeek])*7 + int(vals[SpanDay])
	if days != 0 {
		t = t.AddDate(0, 0, days*n)
	}
	var clock int64
	for u := SpanHour; u <= SpanNanosecond; u++ {
		clock += int64(vals[u]) * spanUnitNanos[u]
	}
	if clock != 0 {
		t = t.Add(time.Duration(clock) * time.Duration(n))
	}
	return t
}

// SpanFromDuration decomposes a fixed duration into day/hour/minute/
// second/sub-second components. Calendar units never appear since their
// lengths are not fixed.
func SpanFromDuration(d time.Duration) Span {
	neg := d < 0
	if neg {
		d = -d
	}
	return decomposeNanos(neg, uint64(d), nil)
}

// decomposeNanos distributes nanos over the preferred units coarse to
// fine, then over the fixed-length canonical units for the remainder.
func decomposeNanos(neg bool, nanos uint64, preferred []SpanUnit) Span {
	out := Span{negative: neg}
	emit := func(u SpanUnit) {
		size := uint64(spanUnitNanos[u])
		if v := nanos / size; v > 0 {
			out.comps = append(out.comps, newComponent(u, v, len(out.comps) > 0))
			nanos -= v * size
		}
	}
	for _, u := range preferred {
		emit(u)
	}
	for u := SpanDay; u <= SpanNanosecond && nanos > 0; u++ {
		if !out.has(u) {
			emit(u)
		}
	}
	return out
}

// rebuildSpan renders a unit-value map back into canonical components,
// applying the carry table: overflow moves into a present coarser unit
// and zero components disappear.
func rebuildSpan(neg bool, vals map[SpanUnit]uint64) Span {
	carry := func(from, to SpanUnit, modulus uint64) {
		if _, ok := vals[to]; !ok {
			return
		}
		if v := vals[from]; v >= modulus {
			vals[to] += v / modulus
			vals[from] = v % modulus
		}
	}
	carry(SpanNanosecond, SpanMicrosecond, 1000)
	carry(SpanMicrosecond, SpanMillisecond, 1000)
	carry(SpanMillisecond, SpanSecond, 1000)
	carry(SpanSecond, SpanMinute, 60)
	carry(SpanMinute, SpanHour, 60)
	carry(SpanHour, SpanDay, 24)
	if _, ok := vals[SpanWeek]; ok {
		carry(SpanDay, SpanWeek, 7)
	} else if _, ok := vals[SpanMonth]; ok {
		carry(SpanDay, SpanMonth, 30)
	} else {
		carry(SpanDay, SpanYear, 365)
	}
	carry(SpanMonth, SpanYear, 12)

	out := Span{negative: neg}
	for u := SpanYear; u <= SpanNanosecond; u++ {
		if v, ok := vals[u]; ok && v > 0 {
			out.comps = append(out.comps, newComponent(u, v, len(out.comps) > 0))
		}
	}
	return out
}

func newComponent(u SpanUnit, v uint64, spaced bool) spanComponent {
	sep := ""
	if spaced {
		sep = " "
	}
	return spanComponent{unit: u, value: v, unitText: spanUnitShort[u], sep: sep}
}
