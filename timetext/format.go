package timetext

import (
	"strings"
	"sync"
	"unicode"
)

// Slot is one position in a format: the token type it consumes, structural
// constraints on the token, and the field it yields. Kind is fieldNone for
// pure separators. An unmet optional slot is skipped; an unmet required
// slot fails the whole format.
type Slot struct {
	Kind     FieldKind
	Type     tokenType
	MinLen   int    // minimum digit count (digits slots)
	MaxLen   int    // maximum digit count, 0 for unbounded
	MinValue int    // minimum numeric value (digits slots)
	MaxValue int    // maximum numeric value, 0 for unbounded
	Chars    string // permitted separator characters, "" for any
	Optional bool
}

func (s Slot) matches(tok token) bool {
	if tok.typ != s.Type {
		return false
	}
	switch tok.typ {
	case tokenDigits:
		n := len(tok.text)
		if s.MinLen > 0 && n < s.MinLen {
			return false
		}
		if s.MaxLen > 0 && n > s.MaxLen {
			return false
		}
		if tok.value < s.MinValue {
			return false
		}
		if s.MaxValue > 0 && tok.value > s.MaxValue {
			return false
		}
	case tokenSeparator:
		if s.Chars != "" {
			for _, r := range tok.text {
				if !unicode.IsSpace(r) && !strings.ContainsRune(s.Chars, r) {
					return false
				}
			}
		}
	}
	return true
}

// Format is an ordered slot list. The catalog tries formats in declaration
// order; the first format whose required slots are all satisfied wins.
type Format struct {
	Name  string
	Slots []Slot
}

func req(kind FieldKind, typ tokenType) Slot {
	return Slot{Kind: kind, Type: typ}
}

func opt(s Slot) Slot {
	s.Optional = true
	return s
}

func digits(kind FieldKind, minLen, maxLen, minValue, maxValue int) Slot {
	return Slot{Kind: kind, Type: tokenDigits, MinLen: minLen, MaxLen: maxLen, MinValue: minValue, MaxValue: maxValue}
}

func sep(chars string) Slot {
	return Slot{Kind: fieldNone, Type: tokenSeparator, Chars: chars}
}

// match walks the token stream and the slot list in parallel. It returns
// the produced elements and the number of tokens consumed.
func (f Format) match(tokens []token) ([]Element, int, bool, *ParseError) {
	var elems []Element
	ti := 0
	for _, slot := range f.Slots {
		if ti < len(tokens) && slot.matches(tokens[ti]) {
			tok := tokens[ti]
			ti++
			if slot.Kind == fieldNone {
				continue
			}
			elem, perr := makeElement(slot.Kind, tok)
			if perr != nil {
				return nil, 0, false, perr
			}
			// Fold a trailing ordinal suffix into day elements so "3rd"
			// re-renders as "4th" after adjustment.
			if slot.Kind == FieldDay && ti < len(tokens) && tokens[ti].typ == tokenOrdinalSuffix {
				suffix := tokens[ti]
				ti++
				elem.Text += suffix.text
				elem.End = suffix.end
				elem.note.ordinal = true
			}
			elems = append(elems, elem)
			continue
		}
		if slot.Optional {
			continue
		}
		return nil, 0, false, nil
	}
	if len(elems) == 0 {
		return nil, 0, false, nil
	}
	return elems, ti, true, nil
}

func makeElement(kind FieldKind, tok token) (Element, *ParseError) {
	e := Element{Kind: kind, Start: tok.start, End: tok.end, Text: tok.text}
	switch kind {
	case FieldMonth:
		if tok.typ == tokenMonthName {
			e.Value = tok.value
			e.note = nameNotation(tok.text, monthNames[tok.value])
		} else {
			if tok.value < 1 || tok.value > 12 {
				return e, fieldRangeError(FieldMonth, tok.value-1, tok.start)
			}
			e.Value = tok.value - 1
			e.note = notation{numeric: true, width: len(tok.text)}
		}
	case FieldWeekday:
		e.Value = tok.value
		e.note = nameNotation(tok.text, weekdayNames[tok.value])
	case FieldAmPm:
		e.Value = tok.value
		e.note = notation{style: detectCase(tok.text)}
	case FieldSubSecond:
		if len(tok.text) > 9 {
			return e, fieldRangeError(FieldSubSecond, tok.value, tok.start)
		}
		scale := 1
		for i := 0; i < 9-len(tok.text); i++ {
			scale *= 10
		}
		e.Value = tok.value * scale
		e.note = notation{numeric: true, width: len(tok.text)}
	case FieldZone:
		e.Value = 0
		e.note = notation{style: detectCase(tok.text)}
	default:
		e.Value = tok.value
		e.note = notation{numeric: true, width: len(tok.text)}
	}
	return e, nil
}

func nameNotation(text, full string) notation {
	n := notation{style: detectCase(text)}
	if len(text) < len(full) {
		n.nameLen = len(text)
	}
	return n
}

// Catalog is an ordered set of formats. Order encodes specificity: literal
// 4-digit-year formats first, then month-name formats, then generic
// numeric formats, then time-only formats.
type Catalog struct {
	formats []Format
}

// DefaultCatalog returns a fresh catalog with the built-in formats.
func DefaultCatalog() *Catalog {
	return &Catalog{formats: builtinFormats()}
}

var (
	sharedCatalogOnce sync.Once
	sharedCatalog     *Catalog
)

// defaultCatalog returns the shared built-in catalog used when options
// name none. It is never extended, so sharing it is safe.
func defaultCatalog() *Catalog {
	sharedCatalogOnce.Do(func() {
		sharedCatalog = DefaultCatalog()
	})
	return sharedCatalog
}

// Extend appends formats to the catalog. Appended formats are tried after
// the built-in ones.
func (c *Catalog) Extend(formats ...Format) {
	c.formats = append(c.formats, formats...)
}

func (c *Catalog) match(tokens []token) ([]Element, int, *ParseError) {
	for _, f := range c.formats {
		elems, consumed, ok, perr := f.match(tokens)
		if perr != nil {
			return nil, 0, perr
		}
		if ok {
			return elems, consumed, nil
		}
	}
	return nil, 0, nil
}

func builtinFormats() []Format {
	anySep := opt(sep(""))
	return []Format{
		{Name: "iso-date", Slots: []Slot{
			digits(FieldYear, 4, 4, 0, 0),
			sep("-/"),
			digits(FieldMonth, 1, 2, 1, 12),
			sep("-/"),
			digits(FieldDay, 1, 2, 1, 31),
		}},
		{Name: "dotted-dmy", Slots: []Slot{
			digits(FieldDay, 1, 2, 1, 31),
			sep("."),
			digits(FieldMonth, 1, 2, 1, 12),
			sep("."),
			digits(FieldYear, 4, 4, 0, 0),
		}},
		{Name: "day-month-name", Slots: []Slot{
			digits(FieldDay, 1, 2, 1, 31),
			anySep,
			req(FieldMonth, tokenMonthName),
			anySep,
			opt(digits(FieldYear, 4, 4, 0, 0)),
			opt(digits(FieldYear, 2, 2, 0, 0)),
		}},
		{Name: "month-name-day", Slots: []Slot{
			req(FieldMonth, tokenMonthName),
			anySep,
			opt(digits(FieldDay, 1, 2, 1, 31)),
			anySep,
			opt(digits(FieldYear, 4, 4, 0, 0)),
			opt(digits(FieldYear, 2, 2, 0, 0)),
		}},
		{Name: "slash-mdy", Slots: []Slot{
			digits(FieldMonth, 1, 2, 1, 12),
			sep("/"),
			digits(FieldDay, 1, 2, 1, 31),
			sep("/"),
			digits(FieldYear, 4, 4, 0, 0),
		}},
		{Name: "slash-dmy", Slots: []Slot{
			digits(FieldDay, 1, 2, 13, 31),
			sep("/"),
			digits(FieldMonth, 1, 2, 1, 12),
			sep("/"),
			digits(FieldYear, 4, 4, 0, 0),
		}},
		{Name: "slash-mdy-short", Slots: []Slot{
			digits(FieldMonth, 1, 2, 1, 12),
			sep("/"),
			digits(FieldDay, 1, 2, 1, 31),
			sep("/"),
			digits(FieldYear, 2, 2, 0, 0),
		}},
		{Name: "slash-dmy-short", Slots: []Slot{
			digits(FieldDay, 1, 2, 13, 31),
			sep("/"),
			digits(FieldMonth, 1, 2, 1, 12),
			sep("/"),
			digits(FieldYear, 2, 2, 0, 0),
		}},
		{Name: "slash-md", Slots: []Slot{
			digits(FieldMonth, 1, 2, 1, 12),
			sep("/"),
			digits(FieldDay, 1, 2, 1, 31),
		}},
		{Name: "weekday", Slots: []Slot{
			req(FieldWeekday, tokenWeekdayName),
		}},
		{Name: "year-only", Slots: []Slot{
			digits(FieldYear, 4, 4, 1000, 0),
		}},
		{Name: "clock", Slots: []Slot{
			digits(FieldHour, 1, 2, 0, 0),
			sep(":"),
			digits(FieldMinute, 2, 2, 0, 0),
			opt(sep(":")),
			opt(digits(FieldSecond, 2, 2, 0, 0)),
			opt(sep(".")),
			opt(digits(FieldSubSecond, 1, 9, 0, 0)),
			anySep,
			opt(req(FieldAmPm, tokenMeridiem)),
			anySep,
			opt(req(FieldZone, tokenZoneName)),
		}},
		{Name: "hour-meridiem", Slots: []Slot{
			digits(FieldHour, 1, 2, 1, 12),
			anySep,
			req(FieldAmPm, tokenMeridiem),
			anySep,
			opt(req(FieldZone, tokenZoneName)),
		}},
		{Name: "zone-only", Slots: []Slot{
			req(FieldZone, tokenZoneName),
		}},
	}
}

// matchResult is everything the matcher extracts from one input.
type matchResult struct {
	src      sourceText
	consumed int // byte offset into the input up to which text was used
}

// matchText tokenizes text and runs the catalog over it up to twice: once
// for the leading date or time component and once for the remainder. A
// lone 'T', ':' or '.' between the two parses is consumed silently.
func matchText(text string, catalog *Catalog, allowPrefix bool) (matchResult, *ParseError) {
	tokens, scanned := tokenize(text)

	// Leading whitespace is tolerated ahead of the first format.
	start := 0
	if len(tokens) > 0 && tokens[0].typ == tokenSeparator {
		start = 1
	}

	elems, consumed, perr := catalog.match(tokens[start:])
	if perr != nil {
		return matchResult{}, perr
	}
	if elems == nil {
		if scanned < len(text) && len(tokens) == 0 {
			return matchResult{}, newParseError(ErrUnrecognizedToken, scanned, text[scanned:scanned+1])
		}
		return matchResult{}, newParseError(ErrNoMatchingFormat, 0, text)
	}
	ti := start + consumed

	// Second pass over the remainder, for combined date+time input.
	rest := tokens[ti:]
	shift := 0
	if len(rest) == 0 && scanned < len(text) {
		// Tokenization stopped at a connector such as the 'T' in
		// 2021-05-18T06:15. Consume it and rescan.
		if c := text[scanned]; c == 'T' || c == 't' {
			more, moreEnd := tokenize(text[scanned+1:])
			shift = scanned + 1
			rest = more
			scanned = shift + moreEnd
		}
	}
	if len(rest) > 0 {
		ri := 0
		if rest[0].typ == tokenSeparator {
			ri = 1
		}
		more, _, perr := catalog.match(rest[ri:])
		if perr != nil {
			return matchResult{}, perr
		}
		if more != nil {
			for i := range more {
				more[i].Start += shift
				more[i].End += shift
			}
			for _, m := range more {
				for _, e := range elems {
					if e.Kind == m.Kind {
						return matchResult{}, &ParseError{Kind: ErrAmbiguousFormat, Pos: m.Start, Field: m.Kind, Text: text}
					}
				}
			}
			elems = append(elems, more...)
		}
	}

	// Figure out how much of the input the match used.
	end := 0
	for _, e := range elems {
		if e.End > end {
			end = e.End
		}
	}
	trailing := strings.TrimRight(text, " \t")
	if !allowPrefix && end < len(trailing) {
		if scanned < len(text) {
			return matchResult{}, newParseError(ErrUnrecognizedToken, scanned, string(text[scanned]))
		}
		return matchResult{}, newParseError(ErrNoMatchingFormat, end, text[end:])
	}

	return matchResult{src: buildSourceText(text, elems, end), consumed: end}, nil
}

// buildSourceText assembles elements plus the separator fragments between
// them, straight from the original input, so String() round-trips.
func buildSourceText(text string, elems []Element, end int) sourceText {
	ordered := make([]Element, len(elems))
	copy(ordered, elems)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].Start < ordered[j-1].Start; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	src := sourceText{elems: ordered, seps: make([]string, len(ordered)+1)}
	pos := 0
	for i, e := range ordered {
		src.seps[i] = text[pos:e.Start]
		pos = e.End
	}
	src.seps[len(ordered)] = text[pos:end]
	return src
}
