package timetext

import (
	"fmt"
	"strings"
)

// FieldKind identifies a date or time field, ordered coarsest first.
type FieldKind int

const (
	// fieldNone is the zero FieldKind: a slot that consumes tokens
	// without producing a field, or an unset option.
	fieldNone FieldKind = iota
	FieldYear
	FieldMonth
	FieldDay
	FieldWeekday
	FieldHour
	FieldMinute
	FieldSecond
	FieldSubSecond
	FieldAmPm
	FieldZone
)

func (k FieldKind) String() string {
	switch k {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldWeekday:
		return "weekday"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	case FieldSubSecond:
		return "subsecond"
	case FieldAmPm:
		return "ampm"
	case FieldZone:
		return "zone"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

type caseStyle int

const (
	caseLower caseStyle = iota
	caseTitle
	caseUpper
)

func detectCase(s string) caseStyle {
	if s == strings.ToUpper(s) && s != strings.ToLower(s) {
		return caseUpper
	}
	if len(s) > 0 && s[:1] == strings.ToUpper(s[:1]) {
		return caseTitle
	}
	return caseLower
}

func applyCase(s string, cs caseStyle) string {
	switch cs {
	case caseUpper:
		return strings.ToUpper(s)
	case caseTitle:
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	default:
		return s
	}
}

// notation records how a field was written so an adjusted value can be
// rendered back in the same shape.
type notation struct {
	numeric bool
	width   int       // zero-padded digit width for numeric notations
	nameLen int       // rune count for abbreviated names, 0 for full names
	style   caseStyle // capitalization of name notations
	ordinal bool      // digits carry an ordinal suffix ("1st", "22nd")
}

// Element is one parsed field: its source span, kind, value and the
// notation needed to re-render it. The source text is always re-derivable
// from Value through the notation.
type Element struct {
	Kind  FieldKind
	Value int
	Start int
	End   int
	Text  string
	note  notation
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// render produces the element's text for a (possibly adjusted) value, in
// the original notation.
func (e Element) render(value int) string {
	switch e.Kind {
	case FieldMonth:
		if e.note.numeric {
			return e.renderNumber(value + 1)
		}
		return e.renderName(monthNames[value])
	case FieldWeekday:
		if e.note.numeric {
			return e.renderNumber(value)
		}
		return e.renderName(weekdayNames[value])
	case FieldAmPm:
		s := "am"
		if value == 1 {
			s = "pm"
		}
		return applyCase(s, e.note.style)
	case FieldSubSecond:
		// Value is nanoseconds; notation width is the digit count written.
		scale := 1
		for i := 0; i < 9-e.note.width; i++ {
			scale *= 10
		}
		return fmt.Sprintf("%0*d", e.note.width, value/scale)
	case FieldZone:
		return e.Text
	default:
		return e.renderNumber(value)
	}
}

func (e Element) renderNumber(n int) string {
	s := fmt.Sprintf("%0*d", e.note.width, n)
	if e.note.ordinal {
		s += ordinalSuffix(n)
	}
	return s
}

func (e Element) renderName(full string) string {
	s := full
	if e.note.nameLen > 0 && e.note.nameLen < len(full) {
		s = full[:e.note.nameLen]
	}
	return applyCase(s, e.note.style)
}

// sourceText keeps the parsed elements together with the separator
// fragments around them, so the whole value can be re-rendered after an
// adjustment without splicing into the original string.
type sourceText struct {
	elems []Element
	seps  []string // len(elems)+1: leading, between each pair, trailing
}

func (s sourceText) String() string {
	var b strings.Builder
	for i, e := range s.elems {
		b.WriteString(s.seps[i])
		b.WriteString(e.Text)
	}
	b.WriteString(s.seps[len(s.elems)])
	return b.String()
}

// withValue returns a copy with the given field set to value, its text
// re-rendered and all spans shifted to stay consistent.
func (s sourceText) withValue(kind FieldKind, value int) sourceText {
	out := s.clone()
	for i := range out.elems {
		if out.elems[i].Kind == kind {
			out.elems[i].Value = value
			out.elems[i].Text = out.elems[i].render(value)
		}
	}
	out.reindex()
	return out
}

func (s sourceText) clone() sourceText {
	out := sourceText{
		elems: make([]Element, len(s.elems)),
		seps:  make([]string, len(s.seps)),
	}
	copy(out.elems, s.elems)
	copy(out.seps, s.seps)
	return out
}

func (s *sourceText) reindex() {
	pos := 0
	for i := range s.elems {
		pos += len(s.seps[i])
		s.elems[i].Start = pos
		pos += len(s.elems[i].Text)
		s.elems[i].End = pos
	}
}

func (s sourceText) lookup(kind FieldKind) (Element, bool) {
	for _, e := range s.elems {
		if e.Kind == kind {
			return e, true
		}
	}
	return Element{}, false
}

func (s sourceText) has(kind FieldKind) bool {
	_, ok := s.lookup(kind)
	return ok
}
