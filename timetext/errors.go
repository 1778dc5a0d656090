package timetext

import (
	"fmt"
)

// ErrorKind classifies structural parse failures.
type ErrorKind int

const (
	// ErrUnrecognizedToken reports input that matches no lexical atom.
	ErrUnrecognizedToken ErrorKind = iota
	// ErrNoMatchingFormat reports input no catalog format could consume.
	ErrNoMatchingFormat
	// ErrAmbiguousFormat reports two partial matches claiming the same field.
	ErrAmbiguousFormat
	// ErrFieldOutOfRange reports a field value outside its valid range.
	ErrFieldOutOfRange
	// ErrUnsupportedDecimalUnit reports a decimal value on a unit other than
	// second or millisecond.
	ErrUnsupportedDecimalUnit
	// ErrUnrecognizedTimeZone reports a timezone name missing from the table.
	ErrUnrecognizedTimeZone
	// ErrUnrecognizedUnit reports an unknown duration unit word.
	ErrUnrecognizedUnit
	// ErrDuplicateUnit reports the same duration unit appearing twice.
	ErrDuplicateUnit
	// ErrFieldNotPresent reports an adjustment or query on an absent field.
	ErrFieldNotPresent
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnrecognizedToken:
		return "unrecognized token"
	case ErrNoMatchingFormat:
		return "no matching format"
	case ErrAmbiguousFormat:
		return "ambiguous format combination"
	case ErrFieldOutOfRange:
		return "field out of range"
	case ErrUnsupportedDecimalUnit:
		return "unsupported decimal unit"
	case ErrUnrecognizedTimeZone:
		return "unrecognized time zone"
	case ErrUnrecognizedUnit:
		return "unrecognized unit"
	case ErrDuplicateUnit:
		return "duplicate unit"
	case ErrFieldNotPresent:
		return "field not present"
	default:
		return "parse error"
	}
}

// ParseError is the structured error returned by all parse entry points.
// Pos is a byte offset into the original input. Field and Value are only
// meaningful for field-level kinds such as ErrFieldOutOfRange.
type ParseError struct {
	Kind  ErrorKind
	Pos   int
	Field FieldKind
	Value int
	Text  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrFieldOutOfRange:
		return fmt.Sprintf("%s: %s %d at offset %d", e.Kind, e.Field, e.Value, e.Pos)
	case ErrFieldNotPresent:
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	case ErrNoMatchingFormat, ErrAmbiguousFormat:
		if e.Text != "" {
			return fmt.Sprintf("%s: %q", e.Kind, e.Text)
		}
		return e.Kind.String()
	default:
		if e.Text != "" {
			return fmt.Sprintf("%s: %q at offset %d", e.Kind, e.Text, e.Pos)
		}
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Pos)
	}
}

func newParseError(kind ErrorKind, pos int, text string) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, Text: text}
}

func fieldRangeError(kind FieldKind, value, pos int) *ParseError {
	return &ParseError{Kind: ErrFieldOutOfRange, Pos: pos, Field: kind, Value: value}
}

func fieldAbsentError(kind FieldKind) *ParseError {
	return &ParseError{Kind: ErrFieldNotPresent, Field: kind}
}
