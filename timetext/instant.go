package timetext

import (
	"time"
)

// Policy selects how a relative instant resolves against a reference when
// the substituted fields land on the wrong side of it.
type Policy int

const (
	// PolicyClosest picks whichever candidate is nearest the reference.
	PolicyClosest Policy = iota
	// PolicyPast forces the resolved instant at or before the reference.
	PolicyPast
	// PolicyFuture forces the resolved instant at or after the reference.
	PolicyFuture
)

// InstantOptions carry per-call parse settings. The zero value means UTC,
// 12-hour interpretation allowed, full resolution, closest policy, whole
// text required.
type InstantOptions struct {
	// Location applies when the text names no timezone.
	Location *time.Location
	// TwentyFourHour forces bare hours to be read on a 24-hour clock.
	TwentyFourHour bool
	// MaxResolution drops fields finer than the given kind. Unset keeps
	// everything.
	MaxResolution FieldKind
	// Policy is the default evaluation policy for relative instants.
	Policy Policy
	// AllowPrefix accepts input with trailing unparseable text and
	// consumes only the leading instant.
	AllowPrefix bool
	// Catalog overrides the format catalog, usually to add externally
	// configured formats. Nil means DefaultCatalog.
	Catalog *Catalog
}

func (o *InstantOptions) location() *time.Location {
	if o != nil && o.Location != nil {
		return o.Location
	}
	return time.UTC
}

func (o *InstantOptions) maxResolution() FieldKind {
	if o == nil || o.MaxResolution == fieldNone {
		return FieldSubSecond
	}
	return o.MaxResolution
}

func (o *InstantOptions) catalog() *Catalog {
	if o != nil && o.Catalog != nil {
		return o.Catalog
	}
	return defaultCatalog()
}

// Instant is a parsed date/time value: either an Absolute with a resolved
// precision range, or a Relative that needs a reference to resolve.
type Instant interface {
	// String returns the exact source text, updated by adjustments.
	String() string
	// Elements returns the parsed fields in source order.
	Elements() []Element
	// Add returns a copy with delta added to the given field, carrying
	// into coarser fields as needed.
	Add(field FieldKind, delta int) (Instant, error)
	// Resolve returns the instant as a point in time. Absolute instants
	// ignore the reference.
	Resolve(reference time.Time) time.Time

	sealedInstant()
}

// Absolute is a fully resolved instant covering the half-open range
// [Time, Max) sized by its coarsest unset field.
type Absolute struct {
	at  time.Time
	max time.Time
	loc *time.Location
	src sourceText
}

func (a Absolute) sealedInstant() {}

// Time returns the start of the instant's precision range.
func (a Absolute) Time() time.Time { return a.at }

// Max returns the exclusive end of the instant's precision range.
func (a Absolute) Max() time.Time { return a.max }

func (a Absolute) String() string { return a.src.String() }

func (a Absolute) Elements() []Element {
	out := make([]Element, len(a.src.elems))
	copy(out, a.src.elems)
	return out
}

func (a Absolute) Resolve(time.Time) time.Time { return a.at }

// Relative is a partially specified instant. It cannot be interpreted
// without a reference; Resolve applies the instant's policy.
type Relative struct {
	src            sourceText
	loc            *time.Location
	hasZone        bool
	twentyFourHour bool
	policy         Policy
}

func (r Relative) sealedInstant() {}

func (r Relative) String() string { return r.src.String() }

func (r Relative) Elements() []Element {
	out := make([]Element, len(r.src.elems))
	copy(out, r.src.elems)
	return out
}

// Policy returns the evaluation policy the instant was parsed with.
func (r Relative) Policy() Policy { return r.policy }

// Field returns the value of the given field and whether it is present.
func (r Relative) Field(kind FieldKind) (int, bool) {
	e, ok := r.src.lookup(kind)
	return e.Value, ok
}

// ParseInstant parses text into an Absolute or Relative instant. The
// returned error is a *ParseError for structural problems.
func ParseInstant(text string, opts *InstantOptions) (Instant, error) {
	mr, perr := matchText(text, opts.catalog(), opts != nil && opts.AllowPrefix)
	if perr != nil {
		return nil, perr
	}
	return buildInstant(mr.src, opts)
}

// DetectInstant is the non-throwing form of ParseInstant: input that is
// not a date is an ordinary outcome, not an error.
func DetectInstant(text string, opts *InstantOptions) (Instant, bool) {
	inst, err := ParseInstant(text, opts)
	if err != nil {
		return nil, false
	}
	return inst, true
}

func buildInstant(src sourceText, opts *InstantOptions) (Instant, error) {
	src = dropFinerThan(src, opts.maxResolution())

	loc := opts.location()
	hasZone := false
	if z, ok := src.lookup(FieldZone); ok {
		l, err := resolveZone(z.Text)
		if err != nil {
			return nil, err
		}
		loc = l
		hasZone = true
	}

	if err := validateFields(src); err != nil {
		return nil, err
	}

	if y, ok := src.lookup(FieldYear); ok && y.note.width >= 4 {
		return buildAbsolute(src, loc)
	}

	if len(presentFields(src)) == 0 {
		return nil, newParseError(ErrNoMatchingFormat, 0, src.String())
	}
	var policy Policy
	var twentyFour bool
	if opts != nil {
		policy = opts.Policy
		twentyFour = opts.TwentyFourHour
	}
	return Relative{
		src:            src,
		loc:            loc,
		hasZone:        hasZone,
		twentyFourHour: twentyFour,
		policy:         policy,
	}, nil
}

// presentFields lists the date/time fields of src, excluding the zone and
// meridiem markers.
func presentFields(src sourceText) []FieldKind {
	var out []FieldKind
	for _, k := range []FieldKind{FieldYear, FieldMonth, FieldDay, FieldWeekday, FieldHour, FieldMinute, FieldSecond, FieldSubSecond} {
		if src.has(k) {
			out = append(out, k)
		}
	}
	return out
}

func dropFinerThan(src sourceText, limit FieldKind) sourceText {
	if limit >= FieldSubSecond {
		return src
	}
	out := sourceText{seps: []string{""}}
	for i, e := range src.elems {
		keep := e.Kind <= limit || e.Kind == FieldWeekday || e.Kind == FieldZone ||
			(e.Kind == FieldAmPm && limit >= FieldHour)
		// A dropped element takes its preceding separator with it.
		if keep {
			out.seps[len(out.seps)-1] += src.seps[i]
			out.elems = append(out.elems, e)
			out.seps = append(out.seps, "")
		}
	}
	out.seps[len(out.seps)-1] += src.seps[len(src.elems)]
	out.reindex()
	return out
}

func validateFields(src sourceText) error {
	hour12 := src.has(FieldAmPm)
	for _, e := range src.elems {
		switch e.Kind {
		case FieldMonth:
			if e.Value < 0 || e.Value > 11 {
				return fieldRangeError(FieldMonth, e.Value, e.Start)
			}
		case FieldDay:
			if e.Value < 1 || e.Value > 31 {
				return fieldRangeError(FieldDay, e.Value, e.Start)
			}
		case FieldHour:
			if hour12 {
				if e.Value < 1 || e.Value > 12 {
					return fieldRangeError(FieldHour, e.Value, e.Start)
				}
			} else if e.Value < 0 || e.Value > 23 {
				return fieldRangeError(FieldHour, e.Value, e.Start)
			}
		case FieldMinute:
			if e.Value < 0 || e.Value > 59 {
				return fieldRangeError(FieldMinute, e.Value, e.Start)
			}
		case FieldSecond:
			if e.Value < 0 || e.Value > 59 {
				return fieldRangeError(FieldSecond, e.Value, e.Start)
			}
		}
	}
	return nil
}

// normalizedHour maps a written hour plus an optional meridiem marker to
// the 24-hour clock. Noon and midnight follow the 12am -> 0 convention.
func normalizedHour(hour int, meridiem int, hasMeridiem bool) int {
	if !hasMeridiem {
		return hour
	}
	if meridiem == 1 { // pm
		if hour < 12 {
			return hour + 12
		}
		return hour
	}
	if hour == 12 { // 12am
		return 0
	}
	return hour
}

func buildAbsolute(src sourceText, loc *time.Location) (Instant, error) {
	year := 0
	month := time.January
	day := 1
	hour, min, sec, nsec := 0, 0, 0, 0

	if e, ok := src.lookup(FieldYear); ok {
		year = e.Value
	}
	if e, ok := src.lookup(FieldMonth); ok {
		month = time.Month(e.Value + 1)
	}
	if e, ok := src.lookup(FieldDay); ok {
		if e.Value > daysInMonth(year, month) {
			return nil, fieldRangeError(FieldDay, e.Value, e.Start)
		}
		day = e.Value
	}
	if e, ok := src.lookup(FieldHour); ok {
		m, hasM := src.lookup(FieldAmPm)
		hour = normalizedHour(e.Value, m.Value, hasM)
	}
	if e, ok := src.lookup(FieldMinute); ok {
		min = e.Value
	}
	if e, ok := src.lookup(FieldSecond); ok {
		sec = e.Value
	}
	if e, ok := src.lookup(FieldSubSecond); ok {
		nsec = e.Value
	}

	at := time.Date(year, month, day, hour, min, sec, nsec, loc)

	if e, ok := src.lookup(FieldWeekday); ok {
		if at.Weekday() != time.Weekday(e.Value) {
			return nil, fieldRangeError(FieldWeekday, e.Value, e.Start)
		}
	}

	return Absolute{at: at, max: precisionUpperBound(at, src), loc: loc, src: src}, nil
}

// precisionUpperBound bumps the point by one unit of the finest present
// field, which sizes the half-open range the instant represents.
func precisionUpperBound(at time.Time, src sourceText) time.Time {
	finest := FieldYear
	for _, k := range presentFields(src) {
		if k != FieldWeekday && k > finest {
			finest = k
		}
	}
	switch finest {
	case FieldYear:
		return addYears(at, 1)
	case FieldMonth:
		return addMonths(at, 1)
	case FieldDay:
		return at.AddDate(0, 0, 1)
	case FieldHour:
		return at.Add(time.Hour)
	case FieldMinute:
		return at.Add(time.Minute)
	case FieldSecond:
		return at.Add(time.Second)
	default:
		e, _ := src.lookup(FieldSubSecond)
		unit := time.Nanosecond
		for i := 0; i < 9-e.note.width; i++ {
			unit *= 10
		}
		return at.Add(unit)
	}
}

var fieldOrder = []FieldKind{FieldYear, FieldMonth, FieldDay, FieldWeekday, FieldHour, FieldMinute, FieldSecond, FieldSubSecond}

// coarsestField returns the coarsest present date/time field.
func coarsestField(elems []Element) (FieldKind, bool) {
	for _, k := range fieldOrder {
		for _, e := range elems {
			if e.Kind == k {
				return k, true
			}
		}
	}
	return fieldNone, false
}

// Compare orders two instants of the same shape. The second result is
// false when the instants do not expose the same coarsest field kind, in
// which case no ordering is defined.
func Compare(a, b Instant) (int, bool) {
	ca, okA := coarsestField(a.Elements())
	cb, okB := coarsestField(b.Elements())
	if !okA || !okB || ca != cb {
		return 0, false
	}

	switch av := a.(type) {
	case Absolute:
		bv, ok := b.(Absolute)
		if !ok {
			return 0, false
		}
		return av.at.Compare(bv.at), true
	case Relative:
		bv, ok := b.(Relative)
		if !ok {
			return 0, false
		}
		return compareRelative(av, bv)
	}
	return 0, false
}

func compareRelative(a, b Relative) (int, bool) {
	for _, k := range fieldOrder {
		if k == FieldWeekday {
			continue
		}
		av, aok := a.Field(k)
		bv, bok := b.Field(k)
		if !aok && !bok {
			continue
		}
		if aok != bok {
			return 0, false
		}
		if k == FieldHour {
			am, amOK := a.Field(FieldAmPm)
			bm, bmOK := b.Field(FieldAmPm)
			av = normalizedHour(av, am, amOK)
			bv = normalizedHour(bv, bm, bmOK)
		}
		if av != bv {
			if av < bv {
				return -1, true
			}
			return 1, true
		}
	}
	return 0, true
}
